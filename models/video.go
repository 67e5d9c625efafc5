package models

import "time"

// Video is a published YouTube embed managed from the admin dashboard.
type Video struct {
	ID           string    `json:"id"`
	Title        string    `json:"title" binding:"required"`
	YoutubeURL   string    `json:"youtubeUrl" binding:"required,url"`
	ThumbnailURL string    `json:"thumbnailUrl" binding:"required,url"`
	CreatedAt    time.Time `json:"createdAt"`
}
