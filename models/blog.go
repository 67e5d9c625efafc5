package models

import "time"

// BlogPost is a published article shown on the content pages.
type BlogPost struct {
	ID              string    `json:"id"`
	Title           string    `json:"title" binding:"required"`
	Slug            string    `json:"slug" binding:"required"`
	Excerpt         string    `json:"excerpt" binding:"required"`
	Content         string    `json:"content" binding:"required"`
	Category        string    `json:"category" binding:"required"`
	FeaturedImage   string    `json:"featuredImage" binding:"required"`
	Author          string    `json:"author" binding:"required"`
	ReadTime        int       `json:"readTime" binding:"required"` // minutes
	MetaDescription string    `json:"metaDescription" binding:"required"`
	PublishedAt     time.Time `json:"publishedAt"`
}
