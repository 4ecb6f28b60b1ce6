package models

import "time"

type User struct {
	ID        int64     `gorm:"type:bigint;auto_increment" json:"id,string"`
	UserID    int64     `gorm:"type:bigint;not null;unique" json:"user_id"`
	UserName  string    `gorm:"type:varchar(64);not null;unique" json:"username"`
	Password  string    `gorm:"type:varchar(64);not null" json:"password"`
	Email     string    `gorm:"type:varchar(64);not null;unique" json:"email"`
	Avatar    string    `gorm:"type:varchar(256)" json:"avatar"`
	Intro     string    `gorm:"type:varchar(128)" json:"intro"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UserDTO struct {
	UserID   int64  `json:"user_id,string"`
	UserName string `json:"username"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar"`
	Intro    string `json:"intro"`
}

// Bookmark maps a user to a blog they saved.
type Bookmark struct {
	ID        int64     `gorm:"type:bigint;auto_increment" json:"id"`
	UserID    int64     `gorm:"type:bigint;not null;index:idx_uid_bid,unique" json:"user_id"`
	BlogID    int64     `gorm:"type:bigint;not null;index:idx_uid_bid,unique" json:"blog_id"`
	CreatedAt time.Time `json:"created_at"`
}
