package models

import "time"

// Order is a placed purchase. Items is the cart contents serialized as JSON,
// mirroring what the storefront submits; no per-item relation is kept.
type Order struct {
	ID              string    `json:"id"`
	CustomerName    string    `json:"customerName"`
	CustomerEmail   string    `json:"customerEmail"`
	CustomerPhone   string    `json:"customerPhone"`
	ShippingAddress string    `json:"shippingAddress"`
	Items           string    `json:"items"`
	TotalAmount     string    `json:"totalAmount"`
	PaymentStatus   string    `json:"paymentStatus"`
	CreatedAt       time.Time `json:"createdAt"`
}

// OrderInput is the checkout submission.
type OrderInput struct {
	CustomerName    string `json:"customerName" binding:"required,min=2"`
	CustomerEmail   string `json:"customerEmail" binding:"required,email"`
	CustomerPhone   string `json:"customerPhone" binding:"required,min=10"`
	ShippingAddress string `json:"shippingAddress" binding:"required"`
	Items           string `json:"items" binding:"required"`
	TotalAmount     string `json:"totalAmount" binding:"required"`
}

// PaymentOrderInput requests a (stubbed) gateway order for the given amount.
type PaymentOrderInput struct {
	Amount   float64 `json:"amount" binding:"required,gt=0"`
	Currency string  `json:"currency"`
}

// PaymentOrder mirrors the Razorpay order shape the storefront expects.
type PaymentOrder struct {
	ID       string  `json:"id"`
	Amount   float64 `json:"amount"` // in paise
	Currency string  `json:"currency"`
	Status   string  `json:"status"`
}

// PaymentVerification is the gateway callback payload.
type PaymentVerification struct {
	RazorpayOrderID   string `json:"razorpay_order_id"`
	RazorpayPaymentID string `json:"razorpay_payment_id"`
	RazorpaySignature string `json:"razorpay_signature"`
}
