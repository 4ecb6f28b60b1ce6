package router

import (
	"fmt"
	"net/http"

	"bloghive/controller"
	"bloghive/logger"
	"bloghive/middleware"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

var router *gin.Engine

func Init() {
	if !viper.GetBool("server.develop_mode") {
		gin.SetMode(gin.ReleaseMode)
	}

	router = gin.New()
	frontendPath := viper.GetString("cors.frontend_path")
	router.Use(logger.GinLogger(), logger.GinRecovery(true), middleware.RateLimit(0.6, 5000), middleware.CORS(frontendPath))

	v1 := router.Group("/api/v1")

	/* Token */
	v1.GET("/token/refresh", controller.RefreshTokenHandler)

	/* User */
	usrGrp := v1.Group("/user")
	usrGrp.POST("/register", controller.UserRegisterHandler)
	usrGrp.POST("/login", controller.UserLoginHandler)
	usrGrp.GET("/:user_id", controller.UserInfoHandler)
	usrGrp.GET("/:user_id/blogs", controller.UserBlogsHandler)

	/* Blog, public reads */
	v1.GET("/blog/list", controller.BlogListHandler)
	v1.GET("/blog/trending", controller.TrendingListHandler)
	v1.GET("/blog/slug/:slug", middleware.OptionalAuth(), controller.BlogDetailHandler)
	v1.GET("/blog/:blog_id/comments", controller.CommentListHandler)
	v1.GET("/blog/:blog_id/like-status", middleware.OptionalAuth(), controller.BlogLikedHandler)
	v1.POST("/blog/:blog_id/share", controller.BlogShareHandler)

	/* Blog, authenticated */
	blogGrp := v1.Group("/blog")
	blogGrp.Use(middleware.Auth(), middleware.VerifyToken())
	blogGrp.POST("/create", controller.BlogCreateHandler)
	blogGrp.PATCH("/:blog_id", controller.BlogUpdateHandler)
	blogGrp.DELETE("/:blog_id", controller.BlogDeleteHandler)
	blogGrp.GET("/mine", controller.MyBlogsHandler)
	blogGrp.GET("/liked", controller.UserLikedBlogsHandler)
	blogGrp.GET("/bookmarked", controller.UserBookmarksHandler)
	blogGrp.GET("/comments/mine", controller.UserCommentsHandler)
	blogGrp.POST("/:blog_id/like", controller.BlogLikeHandler)
	blogGrp.POST("/:blog_id/bookmark", controller.BlogBookmarkHandler)
	blogGrp.POST("/:blog_id/comment", controller.CommentCreateHandler)
	blogGrp.DELETE("/comment/:comment_id", controller.CommentDeleteHandler)

	/* Category */
	v1.GET("/category/list", controller.CategoryListHandler)
	v1.GET("/category/:slug/blogs", controller.CategoryBlogsHandler)
	categoryGrp := v1.Group("/category")
	categoryGrp.Use(middleware.Auth(), middleware.VerifyToken())
	categoryGrp.POST("/create", controller.CategoryCreateHandler)

	/* Trending maintenance */
	trendingGrp := v1.Group("/trending")
	trendingGrp.Use(middleware.Auth(), middleware.VerifyToken())
	trendingGrp.POST("/refresh", controller.TrendingRefreshHandler)
}

func GetServer() *http.Server {
	return &http.Server{
		Addr:    fmt.Sprintf("%s:%d", viper.GetString("server.ip"), viper.GetInt("server.port")),
		Handler: router,
	}
}
