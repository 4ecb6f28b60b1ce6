package models

import "time"

const (
	VisibilityPublic  = "public"
	VisibilityPrivate = "private"
)

type Blog struct {
	ID         int64  `gorm:"type:bigint;auto_increment" json:"id"`
	BlogID     int64  `gorm:"type:bigint;not null;unique" json:"blog_id,string"`
	AuthorID   int64  `gorm:"type:bigint;not null;index" json:"author_id"`
	CategoryID int64  `gorm:"type:bigint;not null;index" json:"category_id"`
	Title      string `gorm:"type:varchar(128);not null" json:"title"`
	Content    string `gorm:"type:longtext;not null" json:"content"`
	Slug       string `gorm:"type:varchar(128);not null;unique" json:"slug"`
	Visibility string `gorm:"type:varchar(16);not null;default:public;index" json:"visibility"`

	LikeCount    int64 `gorm:"type:bigint;not null;default:0" json:"like_count"`
	CommentCount int64 `gorm:"type:bigint;not null;default:0" json:"comment_count"`
	ShareCount   int64 `gorm:"type:bigint;not null;default:0" json:"share_count"`
	ReadCount    int64 `gorm:"type:bigint;not null;default:0" json:"read_count"`

	// Cached engagement score. Written only by the trending service; always
	// recomputable from the counters above plus CreatedAt.
	TrendingScore          float64   `gorm:"type:double;not null;default:0;index" json:"trending_score"`
	TrendingScoreUpdatedAt time.Time `json:"trending_score_updated_at"`

	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BlogDTO struct {
	BlogID     int64  `json:"blog_id,string"`
	AuthorID   int64  `json:"author_id,string"`
	CategoryID int64  `json:"category_id"`
	AuthorName string `json:"author_name"`
	Avatar     string `json:"author_avatar"`

	CategoryName string `json:"category_name"`
	CategorySlug string `json:"category_slug"`

	Title      string `json:"title"`
	Content    string `json:"content"`
	Slug       string `json:"slug"`
	Visibility string `json:"visibility"`

	LikeCount    int64 `json:"like_count"`
	CommentCount int64 `json:"comment_count"`
	ShareCount   int64 `json:"share_count"`
	ReadCount    int64 `json:"read_count"`

	TrendingScore float64 `json:"trending_score"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BlogListDTO struct {
	Total int64      `json:"total"`
	Blogs []*BlogDTO `json:"blogs"`
}

type Pagination struct {
	CurrentPage int64 `json:"currentPage"`
	TotalPages  int64 `json:"totalPages"`
	TotalBlogs  int64 `json:"totalBlogs"`
	HasMore     bool  `json:"hasMore"`
}

type TrendingListDTO struct {
	Blogs      []*Blog    `json:"blogs"`
	Pagination Pagination `json:"pagination"`
}
