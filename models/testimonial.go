package models

// Testimonial is a customer review shown on the landing page.
type Testimonial struct {
	ID       string `json:"id"`
	Name     string `json:"name" binding:"required"`
	Location string `json:"location" binding:"required"`
	Rating   int    `json:"rating" binding:"required,min=1,max=5"`
	Review   string `json:"review" binding:"required"`
	Avatar   string `json:"avatar" binding:"required"`
	Verified bool   `json:"verified"`
}
