package controller

import (
	"strings"

	common "bloghive/controller/Common"
	bloghive "bloghive/errors"
	"bloghive/internal/utils"
	"bloghive/logger"
	"bloghive/logic"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// RefreshTokenHandler exchanges a valid refresh token for a new access token
// once the old access token has expired.
func RefreshTokenHandler(ctx *gin.Context) {
	header := ctx.Request.Header.Get("Authorization")
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		common.ResponseError(ctx, common.CodeUnsupportedAuthProtocol)
		return
	}
	aTokenStr := ctx.Query("access_token")

	accessToken, err := logic.RefreshToken(parts[1], aTokenStr)
	if err != nil {
		if errors.Is(err, bloghive.ErrExpiredToken) {
			common.ResponseError(ctx, common.CodeExpiredLogin)
		} else if errors.Is(err, bloghive.ErrInvalidToken) {
			common.ResponseError(ctx, common.CodeInvalidToken)
		} else {
			common.ResponseError(ctx, common.CodeInternalErr)
			logger.ErrorWithStack(err)
		}
		return
	}

	userID, _ := utils.ParseToken(accessToken)

	if err := logic.SetUserAccessToken(userID, accessToken, utils.GetAccessTokenExpireDuration()); err != nil {
		common.ResponseError(ctx, common.CodeInternalErr)
		logger.ErrorWithStack(err)
		return
	}

	common.ResponseSuccess(ctx, common.ResponseTokens{
		AccessToken: accessToken,
	})
}
