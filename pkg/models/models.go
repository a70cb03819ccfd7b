package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primary_key" json:"id"`
	Name      string    `json:"name"`
	Email     string    `gorm:"unique_index" json:"email"`
	Password  string    `json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Transform describes the display variant the media host is asked to render.
type Transform struct {
	Width   int `json:"width"`
	Height  int `json:"height"`
	Quality int `json:"quality"`
}

type Video struct {
	ID           uint      `gorm:"primary_key" json:"id"`
	UserID       uint      `json:"userId"`
	VideoURL     string    `json:"videoUrl"`
	Title        string    `json:"title"`
	Description  string    `gorm:"size:2200" json:"description"`
	ThumbnailURL string    `json:"thumbnailUrl"`
	Transform    Transform `gorm:"embedded;embedded_prefix:transform_" json:"transform"`
	OwnerName    string    `gorm:"-" json:"ownerName,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
