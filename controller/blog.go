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

func BlogCreateHandler(ctx *gin.Context) {
	var params models.ParamCreateBlog
	if err := ctx.ShouldBindJSON(&params); err != nil {
		msg := utils.ParseToValidationError(err)
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, msg)
		return
	}

	userID := ctx.GetInt64("user_id")
	blog, err := logic.CreateBlog(userID, &params)
	if err != nil {
		if errors.Is(err, bloghive.ErrNoSuchCategory) {
			common.ResponseError(ctx, common.CodeNoSuchCategory)
		} else if errors.Is(err, bloghive.ErrSlugExist) {
			common.ResponseError(ctx, common.CodeSlugExist)
		} else {
			common.ResponseError(ctx, common.CodeInternalErr)
			logger.ErrorWithStack(err)
		}
		return
	}

	common.ResponseSuccess(ctx, common.ResponseBlogCreate{
		BlogID: blog.BlogID,
		Slug:   blog.Slug,
	})
}

func BlogUpdateHandler(ctx *gin.Context) {
	blogID, ok := parseBlogID(ctx)
	if !ok {
		return
	}

	var params models.ParamUpdateBlog
	if err := ctx.ShouldBindJSON(&params); err != nil {
		msg := utils.ParseToValidationError(err)
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, msg)
		return
	}

	userID := ctx.GetInt64("user_id")
	if err := logic.UpdateBlog(userID, blogID, &params); err != nil {
		responseBlogError(ctx, err)
		return
	}

	common.ResponseSuccess(ctx, nil)
}

func BlogDeleteHandler(ctx *gin.Context) {
	blogID, ok := parseBlogID(ctx)
	if !ok {
		return
	}

	userID := ctx.GetInt64("user_id")
	if err := logic.DeleteBlog(userID, blogID); err != nil {
		responseBlogError(ctx, err)
		return
	}

	common.ResponseSuccess(ctx, nil)
}

// BlogDetailHandler serves the blog detail by slug. Anonymous viewers are
// identified by client IP for read dedup.
func BlogDetailHandler(ctx *gin.Context) {
	slug := ctx.Param("slug")
	if slug == "" {
		common.ResponseError(ctx, common.CodeInvalidParam)
		return
	}

	viewerID := ctx.GetInt64("user_id")
	viewer := ctx.ClientIP()
	if viewerID != 0 {
		viewer = strconv.FormatInt(viewerID, 10)
	}

	detail, err := logic.GetBlogBySlug(slug, viewer, viewerID)
	if err != nil {
		responseBlogError(ctx, err)
		return
	}

	common.ResponseSuccess(ctx, detail)
}

func BlogListHandler(ctx *gin.Context) {
	params := models.ParamBlogList{PageNum: 1, PageSize: 10}
	if err := ctx.ShouldBindQuery(&params); err != nil {
		msg := utils.ParseToValidationError(err)
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, msg)
		return
	}

	list, err := logic.GetPublicBlogList(params.PageNum, params.PageSize)
	if err != nil {
		common.ResponseError(ctx, common.CodeInternalErr)
		logger.ErrorWithStack(err)
		return
	}

	common.ResponseSuccess(ctx, list)
}

func BlogLikeHandler(ctx *gin.Context) {
	blogID, ok := parseBlogID(ctx)
	if !ok {
		return
	}

	userID := ctx.GetInt64("user_id")
	liked, likeCount, err := logic.ToggleLike(blogID, userID)
	if err != nil {
		responseBlogError(ctx, err)
		return
	}

	common.ResponseSuccess(ctx, common.ResponseBlogLike{
		Liked:     liked,
		LikeCount: likeCount,
	})
}

func BlogLikedHandler(ctx *gin.Context) {
	blogID, ok := parseBlogID(ctx)
	if !ok {
		return
	}

	userID := ctx.GetInt64("user_id")
	liked, err := logic.CheckUserLiked(blogID, userID)
	if err != nil {
		common.ResponseError(ctx, common.CodeInternalErr)
		logger.ErrorWithStack(err)
		return
	}

	common.ResponseSuccess(ctx, gin.H{"liked": liked})
}

func BlogShareHandler(ctx *gin.Context) {
	blogID, ok := parseBlogID(ctx)
	if !ok {
		return
	}

	shareCount, err := logic.ShareBlog(blogID)
	if err != nil {
		responseBlogError(ctx, err)
		return
	}

	common.ResponseSuccess(ctx, common.ResponseBlogShare{ShareCount: shareCount})
}

func BlogBookmarkHandler(ctx *gin.Context) {
	blogID, ok := parseBlogID(ctx)
	if !ok {
		return
	}

	userID := ctx.GetInt64("user_id")
	bookmarked, err := logic.ToggleBookmark(blogID, userID)
	if err != nil {
		responseBlogError(ctx, err)
		return
	}

	common.ResponseSuccess(ctx, common.ResponseBlogBookmark{Bookmarked: bookmarked})
}

// MyBlogsHandler lists the authenticated user's own blogs, private included.
func MyBlogsHandler(ctx *gin.Context) {
	userID := ctx.GetInt64("user_id")

	params := models.ParamBlogList{PageNum: 1, PageSize: 10}
	if err := ctx.ShouldBindQuery(&params); err != nil {
		msg := utils.ParseToValidationError(err)
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, msg)
		return
	}

	blogs, err := logic.GetUserBlogs(userID, params.PageNum, params.PageSize, false)
	if err != nil {
		common.ResponseError(ctx, common.CodeInternalErr)
		logger.ErrorWithStack(err)
		return
	}

	common.ResponseSuccess(ctx, common.ResponseUserBlogs{Blogs: blogs})
}

func UserBlogsHandler(ctx *gin.Context) {
	authorIDStr := ctx.Param("user_id")
	authorID, err := strconv.ParseInt(authorIDStr, 10, 64)
	if err != nil {
		common.ResponseError(ctx, common.CodeInvalidParam)
		return
	}

	params := models.ParamBlogList{PageNum: 1, PageSize: 10}
	if err := ctx.ShouldBindQuery(&params); err != nil {
		msg := utils.ParseToValidationError(err)
		common.ResponseErrorWithMsg(ctx, common.CodeInvalidParam, msg)
		return
	}

	blogs, err := logic.GetUserBlogs(authorID, params.PageNum, params.PageSize, true)
	if err != nil {
		common.ResponseError(ctx, common.CodeInternalErr)
		logger.ErrorWithStack(err)
		return
	}

	common.ResponseSuccess(ctx, common.ResponseUserBlogs{Blogs: blogs})
}

func UserLikedBlogsHandler(ctx *gin.Context) {
	userID := ctx.GetInt64("user_id")
	blogs, err := logic.GetLikedBlogs(userID)
	if err != nil {
		common.ResponseError(ctx, common.CodeInternalErr)
		logger.ErrorWithStack(err)
		return
	}

	common.ResponseSuccess(ctx, common.ResponseUserBlogs{Blogs: blogs})
}

func UserBookmarksHandler(ctx *gin.Context) {
	userID := ctx.GetInt64("user_id")
	blogs, err := logic.GetBookmarkedBlogs(userID)
	if err != nil {
		common.ResponseError(ctx, common.CodeInternalErr)
		logger.ErrorWithStack(err)
		return
	}

	common.ResponseSuccess(ctx, common.ResponseUserBlogs{Blogs: blogs})
}

func parseBlogID(ctx *gin.Context) (int64, bool) {
	blogIDStr := ctx.Param("blog_id")
	blogID, err := strconv.ParseInt(blogIDStr, 10, 64)
	if err != nil {
		common.ResponseError(ctx, common.CodeInvalidParam)
		return 0, false
	}
	return blogID, true
}

func responseBlogError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, bloghive.ErrNoSuchBlog):
		common.ResponseError(ctx, common.CodeNoSuchBlog)
	case errors.Is(err, bloghive.ErrNotBlogAuthor):
		common.ResponseError(ctx, common.CodeNotBlogAuthor)
	case errors.Is(err, bloghive.ErrNoSuchCategory):
		common.ResponseError(ctx, common.CodeNoSuchCategory)
	case errors.Is(err, bloghive.ErrSlugExist):
		common.ResponseError(ctx, common.CodeSlugExist)
	default:
		common.ResponseError(ctx, common.CodeInternalErr)
		logger.ErrorWithStack(err)
	}
}
