package controller

import (
	"strconv"

	common "bloghive/controller/Common"
	bloghive "bloghive/errors"
	"bloghive/internal/utils"
	"bloghive/logger"
	"bloghive/logic"
	"bloghive/models"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

func UserRegisterHandler(ctx *gin.Context) {
	var params models.ParamUserRegist
	if err := ctx.ShouldBindJSON(&params); err != nil {
		msg := utils.ParseToValidationError(err)
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, msg)
		return
	}

	accessToken, refreshToken, err := logic.UserRegist(&models.User{
		UserName: params.Username,
		Password: params.Password,
		Email:    params.Email,
		Avatar:   params.Avatar,
	})
	if err != nil {
		if errors.Is(err, bloghive.ErrUserExist) {
			common.ResponseError(ctx, common.CodeUserExist)
		} else if errors.Is(err, bloghive.ErrEmailExist) {
			common.ResponseErrorWithMsg(ctx, common.CodeUserExist, "email already registered")
		} else {
			common.ResponseError(ctx, common.CodeInternalErr)
			logger.ErrorWithStack(err)
		}
		return
	}

	common.ResponseSuccess(ctx, common.ResponseTokens{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

func UserLoginHandler(ctx *gin.Context) {
	var params models.ParamUserLogin
	if err := ctx.ShouldBindJSON(&params); err != nil {
		msg := utils.ParseToValidationError(err)
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, msg)
		return
	}

	usr, accessToken, refreshToken, err := logic.UserLogin(&params)
	if err != nil {
		if errors.Is(err, bloghive.ErrUserNotExist) {
			common.ResponseError(ctx, common.CodeUserNotExist)
		} else if errors.Is(err, bloghive.ErrWrongPassword) {
			common.ResponseError(ctx, common.CodeWrongPassword)
		} else {
			common.ResponseError(ctx, common.CodeInternalErr)
			logger.ErrorWithStack(err)
		}
		return
	}

	common.ResponseSuccess(ctx, common.ResponseUserLogin{
		UserName:     usr.UserName,
		UserID:       usr.UserID,
		Avatar:       usr.Avatar,
		Email:        usr.Email,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

func UserInfoHandler(ctx *gin.Context) {
	userIDStr := ctx.Param("user_id")
	userID, err := strconv.ParseInt(userIDStr, 10, 64)
	if err != nil {
		common.ResponseError(ctx, common.CodeInvalidParam)
		return
	}

	info, err := logic.UserGetInfo(userID)
	if err != nil {
		if errors.Is(err, bloghive.ErrUserNotExist) {
			common.ResponseError(ctx, common.CodeUserNotExist)
		} else {
			common.ResponseError(ctx, common.CodeInternalErr)
			logger.ErrorWithStack(err)
		}
		return
	}

	common.ResponseSuccess(ctx, info)
}
