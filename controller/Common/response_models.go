package controller

import "bloghive/models"

type ResponseTokens struct {
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

type ResponseUserLogin struct {
	UserName     string `json:"user_name"`
	UserID       int64  `json:"user_id,string"`
	Avatar       string `json:"avatar"`
	Email        string `json:"email"`
	AccessToken  string `json:"access_token,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}

type ResponseBlogCreate struct {
	BlogID int64  `json:"blog_id,string"`
	Slug   string `json:"slug"`
}

type ResponseBlogLike struct {
	Liked     bool  `json:"liked"`
	LikeCount int64 `json:"like_count"`
}

type ResponseBlogShare struct {
	ShareCount int64 `json:"share_count"`
}

type ResponseBlogBookmark struct {
	Bookmarked bool `json:"bookmarked"`
}

type ResponseCommentCreate struct {
	CommentID int64 `json:"comment_id,string"`
}

type ResponseCategoryCreate struct {
	CategoryID int64  `json:"category_id,string"`
	Slug       string `json:"slug"`
}

type ResponseUserBlogs struct {
	Blogs []*models.BlogDTO `json:"blogs"`
}
