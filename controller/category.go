package controller

import (
	common "bloghive/controller/Common"
	bloghive "bloghive/errors"
	"bloghive/internal/utils"
	"bloghive/logger"
	"bloghive/logic"
	"bloghive/models"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

func CategoryCreateHandler(ctx *gin.Context) {
	var params models.ParamCreateCategory
	if err := ctx.ShouldBindJSON(&params); err != nil {
		msg := utils.ParseToValidationError(err)
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, msg)
		return
	}

	category, err := logic.CreateCategory(&params)
	if err != nil {
		if errors.Is(err, bloghive.ErrCategoryExist) {
			common.ResponseError(ctx, common.CodeCategoryExist)
		} else {
			common.ResponseError(ctx, common.CodeInternalErr)
			logger.ErrorWithStack(err)
		}
		return
	}

	common.ResponseSuccess(ctx, common.ResponseCategoryCreate{
		CategoryID: category.CategoryID,
		Slug:       category.Slug,
	})
}

func CategoryListHandler(ctx *gin.Context) {
	categories, err := logic.GetCategoryList()
	if err != nil {
		common.ResponseError(ctx, common.CodeInternalErr)
		logger.ErrorWithStack(err)
		return
	}

	common.ResponseSuccess(ctx, categories)
}

func CategoryBlogsHandler(ctx *gin.Context) {
	slug := ctx.Param("slug")
	if slug == "" {
		common.ResponseError(ctx, common.CodeInvalidParam)
		return
	}

	params := models.ParamBlogList{PageNum: 1, PageSize: 10}
	if err := ctx.ShouldBindQuery(&params); err != nil {
		msg := utils.ParseToValidationError(err)
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, msg)
		return
	}

	blogs, err := logic.GetBlogsByCategorySlug(slug, params.PageNum, params.PageSize)
	if err != nil {
		if errors.Is(err, bloghive.ErrNoSuchCategory) {
			common.ResponseError(ctx, common.CodeNoSuchCategory)
		} else {
			common.ResponseError(ctx, common.CodeInternalErr)
			logger.ErrorWithStack(err)
		}
		return
	}

	common.ResponseSuccess(ctx, common.ResponseUserBlogs{Blogs: blogs})
}
