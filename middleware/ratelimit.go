package middleware

import (
	controller "bloghive/controller/Common"

	"github.com/gin-gonic/gin"
	"github.com/juju/ratelimit"
)

// RateLimit rejects requests once the token bucket is empty.
//
// rate is the refill rate as a fraction of capacity per second, e.g.
// rate = 0.1 refills 0.1 * capacity tokens each second.
func RateLimit(rate float64, capacity int64) gin.HandlerFunc {
	bucket := ratelimit.NewBucketWithRate(rate, capacity)
	return func(ctx *gin.Context) {
		if bucket.TakeAvailable(1) != 1 {
			controller.ResponseError(ctx, controller.CodeServerBusy)
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
