package bloghive

import "github.com/pkg/errors"

var (
	// user
	ErrUserExist     = errors.New("user already exists")
	ErrEmailExist    = errors.New("email already registered")
	ErrUserNotExist  = errors.New("user does not exist")
	ErrWrongPassword = errors.New("wrong password")

	// common
	ErrGenToken     = errors.New("generate token failed")
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("expired token")
	ErrInternal     = errors.New("server busy")
	ErrTimeout      = errors.New("request timed out")

	// category
	ErrNoSuchCategory = errors.New("no such category")
	ErrCategoryExist  = errors.New("category already exists")

	// blog
	ErrNoSuchBlog    = errors.New("no such blog")
	ErrSlugExist     = errors.New("slug already taken")
	ErrNotBlogAuthor = errors.New("not the author of this blog")

	// comment
	ErrNoSuchComment    = errors.New("no such comment")
	ErrNotCommentAuthor = errors.New("not the author of this comment")

	// trending
	ErrInvalidCreatedAt = errors.New("invalid blog creation time")
)
