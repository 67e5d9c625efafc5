package models

// Product represents a catalog item (gemstones, bracelets, rudraksha, yantras, rings, remedies).
type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Price       string   `json:"price" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Images      []string `json:"images" binding:"required,min=1"`
	Benefits    []string `json:"benefits" binding:"required,min=1"`
	Certified   bool     `json:"certified"`
	InStock     bool     `json:"inStock"`
	Rating      string   `json:"rating,omitempty"`
	ReviewCount int      `json:"reviewCount"`
}
