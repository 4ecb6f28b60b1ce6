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

func CommentCreateHandler(ctx *gin.Context) {
	blogID, ok := parseBlogID(ctx)
	if !ok {
		return
	}

	var params models.ParamCommentCreate
	if err := ctx.ShouldBindJSON(&params); err != nil {
		msg := utils.ParseToValidationError(err)
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, msg)
		return
	}

	userID := ctx.GetInt64("user_id")
	comment, err := logic.AddComment(blogID, userID, &params)
	if err != nil {
		if errors.Is(err, bloghive.ErrNoSuchBlog) {
			common.ResponseError(ctx, common.CodeNoSuchBlog)
		} else {
			common.ResponseError(ctx, common.CodeInternalErr)
			logger.ErrorWithStack(err)
		}
		return
	}

	common.ResponseSuccess(ctx, common.ResponseCommentCreate{CommentID: comment.CommentID})
}

func CommentListHandler(ctx *gin.Context) {
	blogID, ok := parseBlogID(ctx)
	if !ok {
		return
	}

	comments, err := logic.GetBlogComments(blogID)
	if err != nil {
		if errors.Is(err, bloghive.ErrNoSuchBlog) {
			common.ResponseError(ctx, common.CodeNoSuchBlog)
		} else {
			common.ResponseError(ctx, common.CodeInternalErr)
			logger.ErrorWithStack(err)
		}
		return
	}

	common.ResponseSuccess(ctx, comments)
}

func UserCommentsHandler(ctx *gin.Context) {
	userID := ctx.GetInt64("user_id")
	comments, err := logic.GetUserComments(userID)
	if err != nil {
		common.ResponseError(ctx, common.CodeInternalErr)
		logger.ErrorWithStack(err)
		return
	}

	common.ResponseSuccess(ctx, comments)
}

func CommentDeleteHandler(ctx *gin.Context) {
	commentIDStr := ctx.Param("comment_id")
	commentID, err := strconv.ParseInt(commentIDStr, 10, 64)
	if err != nil {
		common.ResponseError(ctx, common.CodeInvalidParam)
		return
	}

	userID := ctx.GetInt64("user_id")
	if err := logic.DeleteComment(commentID, userID); err != nil {
		if errors.Is(err, bloghive.ErrNoSuchComment) {
			common.ResponseError(ctx, common.CodeNoSuchComment)
		} else if errors.Is(err, bloghive.ErrNotCommentAuthor) {
			common.ResponseError(ctx, common.CodeNotCommentAuthor)
		} else {
			common.ResponseError(ctx, common.CodeInternalErr)
			logger.ErrorWithStack(err)
		}
		return
	}

	common.ResponseSuccess(ctx, nil)
}
