package models

import "time"

type BlogComment struct {
	ID        int64     `gorm:"type:bigint;auto_increment" json:"id"`
	CommentID int64     `gorm:"type:bigint;not null;unique" json:"comment_id,string"`
	BlogID    int64     `gorm:"type:bigint;not null;index" json:"blog_id,string"`
	UserID    int64     `gorm:"type:bigint;not null;index" json:"user_id,string"`
	Content   string    `gorm:"type:varchar(8192);not null" json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BlogLike struct {
	ID        int64     `gorm:"type:bigint;auto_increment" json:"id"`
	BlogID    int64     `gorm:"type:bigint;not null;index:idx_bid_uid,unique" json:"blog_id"`
	UserID    int64     `gorm:"type:bigint;not null;index:idx_bid_uid,unique" json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type CommentDTO struct {
	CommentID int64     `json:"comment_id,string"`
	BlogID    int64     `json:"blog_id,string"`
	UserID    int64     `json:"user_id,string"`
	UserName  string    `json:"username"`
	Avatar    string    `json:"avatar"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
