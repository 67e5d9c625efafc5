package models

// CartItem is one product line inside a cart session.
type CartItem struct {
	ProductID string  `json:"productId" binding:"required"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price" binding:"required,gt=0"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Image     string  `json:"image"`
}

// Cart is a short-lived shopping session kept in Redis.
type Cart struct {
	ID    string     `json:"id"`
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}
