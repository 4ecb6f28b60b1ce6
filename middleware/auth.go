package middleware

import (
	"strings"

	controller "bloghive/controller/Common"
	bloghive "bloghive/errors"
	"bloghive/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// Auth authenticates the request with a Bearer access token and stores
// user_id and access_token in the gin context.
func Auth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.Request.Header.Get("Authorization")
		if len(header) == 0 {
			controller.ResponseError(ctx, controller.CodeNeedLogin)
			ctx.Abort()
			return
		}

		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			controller.ResponseError(ctx, controller.CodeUnsupportedAuthProtocol)
			ctx.Abort()
			return
		}
		if parts[1] == "null" {
			controller.ResponseError(ctx, controller.CodeInvalidToken)
			ctx.Abort()
			return
		}

		userID, err := utils.ParseToken(parts[1])
		if err != nil {
			if errors.Is(err, bloghive.ErrInvalidToken) {
				controller.ResponseError(ctx, controller.CodeInvalidToken)
			} else if errors.Is(err, bloghive.ErrExpiredToken) {
				controller.ResponseError(ctx, controller.CodeExpiredToken)
			} else {
				controller.ResponseErrorWithMsg(ctx, controller.CodeInternalErr, "failed to parse token")
			}
			ctx.Abort()
			return
		}

		ctx.Set("user_id", userID)
		ctx.Set("access_token", parts[1]) // single-session enforcement
		ctx.Next()
	}
}

// OptionalAuth resolves user_id when a valid Bearer token is present but
// never rejects the request. Used on public reads that personalize output
// (private blog visibility, read dedup by user).
func OptionalAuth() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.Request.Header.Get("Authorization")
		parts := strings.Split(header, " ")
		if len(parts) == 2 && parts[0] == "Bearer" && parts[1] != "null" {
			if userID, err := utils.ParseToken(parts[1]); err == nil {
				ctx.Set("user_id", userID)
			}
		}
		ctx.Next()
	}
}
