package middleware

import (
	common "bloghive/controller/Common"
	"bloghive/logger"
	"bloghive/logic"

	"github.com/gin-gonic/gin"
)

// VerifyToken checks the context's access_token against the one mirrored in
// redis, so that a newer login invalidates older sessions.
func VerifyToken() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		userID := ctx.GetInt64("user_id")
		accessToken := ctx.GetString("access_token")

		rAccessToken, err := logic.GetUserAccessToken(userID)
		if err != nil {
			logger.ErrorWithStack(err)
			common.ResponseError(ctx, common.CodeInternalErr)
			ctx.Abort()
			return
		}
		if accessToken != rAccessToken {
			common.ResponseError(ctx, common.CodeNeedLogin)
			ctx.Abort()
			return
		}
		ctx.Next()
	}
}
