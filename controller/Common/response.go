package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Code    `json:"code"`
	Success bool `json:"success"`
	Message any  `json:"message"`
	Data    any  `json:"data,omitempty"`
}

func ResponseSuccess(ctx *gin.Context, data any) {
	ctx.JSON(http.StatusOK, &Response{
		Code:    CodeSuccess,
		Success: true,
		Message: CodeSuccess.getMsg(),
		Data:    data,
	})
}

func ResponseError(ctx *gin.Context, code Code) {
	ctx.JSON(http.StatusOK, &Response{
		Code:    code,
		Message: code.getMsg(),
	})
}

func ResponseErrorWithMsg(ctx *gin.Context, code Code, msg any) {
	ctx.JSON(http.StatusOK, &Response{
		Code:    code,
		Message: msg,
	})
}
