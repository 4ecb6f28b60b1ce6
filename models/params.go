package models

/*
	Request parameter structs, validated by gin binding.
*/

/* User */
type ParamUserRegist struct {
	Username   string `json:"username" binding:"required,min=3,max=64"`
	Password   string `json:"password" binding:"required,min=6,max=64"`
	RePassword string `json:"re_password" binding:"required,eqfield=Password"`
	Email      string `json:"email" binding:"required,email"`
	Avatar     string `json:"avatar"`
}

type ParamUserLogin struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Password string `json:"password" binding:"required,min=6,max=64"`
}

/* Blog */
type ParamCreateBlog struct {
	CategoryID int64  `json:"category_id" binding:"required"`
	Title      string `json:"title" binding:"required,min=1,max=128"`
	Content    string `json:"content" binding:"required,max=65536"`
	Slug       string `json:"slug" binding:"required,min=1,max=128"`
	Visibility string `json:"visibility" binding:"omitempty,oneof=public private"`
}

type ParamUpdateBlog struct {
	CategoryID int64  `json:"category_id"`
	Title      string `json:"title" binding:"omitempty,min=1,max=128"`
	Content    string `json:"content" binding:"omitempty,max=65536"`
	Slug       string `json:"slug" binding:"omitempty,min=1,max=128"`
	Visibility string `json:"visibility" binding:"omitempty,oneof=public private"`
}

type ParamBlogList struct {
	PageNum  int64 `form:"page" binding:"gt=0" example:"1"`
	PageSize int64 `form:"size" binding:"gt=0" example:"10"`
}

type ParamTrendingList struct {
	Page     int64   `form:"page" binding:"omitempty,gt=0" example:"1"`
	Limit    int64   `form:"limit" binding:"omitempty,gt=0" example:"10"`
	Category int64   `form:"category" example:"1"`
	MinScore float64 `form:"min_score" binding:"omitempty,gte=0"`
}

/* Comment */
type ParamCommentCreate struct {
	Content string `json:"content" binding:"required,min=1,max=8192"`
}

/* Category */
type ParamCreateCategory struct {
	Name string `json:"name" binding:"required,min=1,max=64"`
	Slug string `json:"slug" binding:"required,min=1,max=64"`
}
