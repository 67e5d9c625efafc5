package cart

import (
	"context"
	"errors"
	"time"

	"divineastro/models"

	"github.com/go-redis/redis/v8"
)

// ErrCartNotFound is returned when a cart session is missing or expired.
var ErrCartNotFound = errors.New("cart session not found or expired")

// CartService manages short-lived shopping sessions in Redis.
type CartService interface {
	CreateCart(ctx context.Context, items []models.CartItem) (*models.Cart, error)
	GetCart(ctx context.Context, id string) (*models.Cart, error)
	// UpdateItems replaces the cart contents and refreshes the session TTL.
	UpdateItems(ctx context.Context, id string, items []models.CartItem) (*models.Cart, error)
	DeleteCart(ctx context.Context, id string) error
}

// DefaultCartService is the production implementation.
type DefaultCartService struct {
	Cache *redis.Client
	TTL   time.Duration
}
