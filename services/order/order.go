package order

import (
	"context"
	"fmt"
	"time"

	"divineastro/models"
	"divineastro/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultOrderService) CreateOrder(ctx context.Context, input models.OrderInput) (*models.Order, error) {
	ord := &models.Order{
		ID:              uuid.NewString(),
		CustomerName:    input.CustomerName,
		CustomerEmail:   input.CustomerEmail,
		CustomerPhone:   input.CustomerPhone,
		ShippingAddress: input.ShippingAddress,
		Items:           input.Items,
		TotalAmount:     input.TotalAmount,
		PaymentStatus:   "pending",
		CreatedAt:       time.Now().UTC(),
	}
	if err := s.Repo.Create(ctx, ord); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}
	utils.GetLogger().Info("order placed",
		zap.String("id", ord.ID),
		zap.String("total", ord.TotalAmount))
	return ord, nil
}

func (s *DefaultOrderService) GetOrder(ctx context.Context, id string) (*models.Order, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultOrderService) ListOrders(ctx context.Context) ([]models.Order, error) {
	return s.Repo.GetAll(ctx)
}
