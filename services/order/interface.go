package order

import (
	"context"

	"divineastro/database/repository"
	"divineastro/models"
)

// OrderService manages checkout orders and the stubbed payment gateway.
type OrderService interface {
	CreateOrder(ctx context.Context, input models.OrderInput) (*models.Order, error)
	GetOrder(ctx context.Context, id string) (*models.Order, error)
	ListOrders(ctx context.Context) ([]models.Order, error)

	// CreatePaymentOrder returns a gateway order in the Razorpay shape.
	// The gateway itself is out of scope; ids are generated locally.
	CreatePaymentOrder(input models.PaymentOrderInput) models.PaymentOrder
	// VerifyPayment acknowledges a gateway callback without signature checks.
	VerifyPayment(v models.PaymentVerification) bool
}

// DefaultOrderService is the production implementation.
type DefaultOrderService struct {
	Repo repository.OrderRepository
}
