package models

import "time"

type Category struct {
	ID           int64     `gorm:"type:bigint;auto_increment" json:"id"`
	CategoryID   int64     `gorm:"type:bigint;not null;unique" json:"category_id"`
	CategoryName string    `gorm:"type:varchar(64);not null;unique" json:"category_name" binding:"required"`
	Slug         string    `gorm:"type:varchar(64);not null;unique" json:"slug" binding:"required"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type CategoryDTO struct {
	CategoryID   int64  `json:"category_id"`
	CategoryName string `json:"category_name"`
	Slug         string `json:"slug"`
}
