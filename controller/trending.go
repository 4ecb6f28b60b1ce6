package controller

import (
	common "bloghive/controller/Common"
	"bloghive/internal/utils"
	"bloghive/logger"
	"bloghive/logic"
	"bloghive/models"

	"github.com/gin-gonic/gin"
)

// TrendingListHandler serves the trending feed from cached scores. It never
// computes scores inline; the batch job and per-event refreshes keep the
// cached column current.
func TrendingListHandler(ctx *gin.Context) {
	var params models.ParamTrendingList
	if err := ctx.ShouldBindQuery(&params); err != nil {
		msg := utils.ParseToValidationError(err)
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, msg)
		return
	}

	list, err := logic.GetTrendingBlogs(params)
	if err != nil {
		common.ResponseError(ctx, common.CodeInternalErr)
		logger.ErrorWithStack(err)
		return
	}

	common.ResponseSuccess(ctx, list)
}

// TrendingRefreshHandler triggers a full recomputation on demand, in addition
// to the scheduled runs.
func TrendingRefreshHandler(ctx *gin.Context) {
	updated, err := logic.RefreshTrendingScores()
	if err != nil {
		common.ResponseError(ctx, common.CodeInternalErr)
		logger.ErrorWithStack(err)
		return
	}

	common.ResponseSuccess(ctx, gin.H{"updated": updated})
}
