package cart

import (
	"context"
	"encoding/json"
	"fmt"

	"divineastro/models"
	"divineastro/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

func (s *DefaultCartService) CreateCart(ctx context.Context, items []models.CartItem) (*models.Cart, error) {
	c := &models.Cart{
		ID:    uuid.NewString(),
		Items: items,
		Total: total(items),
	}
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *DefaultCartService) GetCart(ctx context.Context, id string) (*models.Cart, error) {
	data, err := s.Cache.Get(ctx, utils.CartCachePrefix+id).Result()
	if err == redis.Nil {
		return nil, ErrCartNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch cart session: %w", err)
	}
	var c models.Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("failed to parse cart session: %w", err)
	}
	return &c, nil
}

func (s *DefaultCartService) UpdateItems(ctx context.Context, id string, items []models.CartItem) (*models.Cart, error) {
	c, err := s.GetCart(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Items = items
	c.Total = total(items)
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *DefaultCartService) DeleteCart(ctx context.Context, id string) error {
	if err := s.Cache.Del(ctx, utils.CartCachePrefix+id).Err(); err != nil {
		return fmt.Errorf("failed to delete cart session: %w", err)
	}
	return nil
}

func (s *DefaultCartService) save(ctx context.Context, c *models.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal cart session: %w", err)
	}
	if err := s.Cache.Set(ctx, utils.CartCachePrefix+c.ID, data, s.TTL).Err(); err != nil {
		return fmt.Errorf("failed to cache cart session: %w", err)
	}
	return nil
}

func total(items []models.CartItem) float64 {
	var sum float64
	for _, it := range items {
		sum += it.Price * float64(it.Quantity)
	}
	return sum
}
