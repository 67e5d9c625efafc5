package repository

import (
	"context"
	"net/url"
	"sort"

	"divineastro/database"
	"divineastro/models"
	"divineastro/utils"

	"go.uber.org/zap"
)

// OrderRepository defines methods for order data access.
type OrderRepository interface {
	GetAll(ctx context.Context) ([]models.Order, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	Create(ctx context.Context, order *models.Order) error
}

// FailoverOrderRepo serves orders from Supabase with a memory fallback.
type FailoverOrderRepo struct {
	db  *database.SupabaseClient
	mem *memCollection[models.Order]
}

func NewFailoverOrderRepo(db *database.SupabaseClient) *FailoverOrderRepo {
	return &FailoverOrderRepo{db: db, mem: newMemCollection[models.Order]()}
}

func (r *FailoverOrderRepo) GetAll(ctx context.Context) ([]models.Order, error) {
	var orders []models.Order
	fetched := false
	if r.db != nil {
		if err := r.db.Select(ctx, "orders", "", &orders); err == nil {
			fetched = true
		} else {
			utils.GetLogger().Warn("orders: store read failed, using memory fallback", zap.Error(err))
		}
	}
	if !fetched {
		orders = r.mem.all()
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func (r *FailoverOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	if r.db != nil {
		var out models.Order
		err := r.db.SelectSingle(ctx, "orders", "id=eq."+url.QueryEscape(id), &out)
		if err == nil {
			return &out, nil
		}
		if err != database.ErrNoRows {
			utils.GetLogger().Warn("orders: store read failed, using memory fallback", zap.String("id", id), zap.Error(err))
		}
	}
	if o, ok := r.mem.get(id); ok {
		return &o, nil
	}
	return nil, ErrNotFound
}

func (r *FailoverOrderRepo) Create(ctx context.Context, order *models.Order) error {
	if r.db != nil {
		if err := r.db.Insert(ctx, "orders", order, order); err == nil {
			return nil
		} else {
			utils.GetLogger().Warn("orders: store write failed, using memory fallback", zap.Error(err))
		}
	}
	r.mem.put(order.ID, *order)
	return nil
}
