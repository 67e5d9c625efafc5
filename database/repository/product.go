package repository

import (
	"context"
	"net/url"
	"strings"

	"divineastro/database"
	"divineastro/models"
	"divineastro/utils"

	"go.uber.org/zap"
)

// ProductRepository defines methods for catalog data access.
type ProductRepository interface {
	GetAll(ctx context.Context) ([]models.Product, error)
	GetByCategory(ctx context.Context, category string) ([]models.Product, error)
	GetByID(ctx context.Context, id string) (*models.Product, error)
	Create(ctx context.Context, product *models.Product) error
	Update(ctx context.Context, product *models.Product) error
	Delete(ctx context.Context, id string) error
}

// FailoverProductRepo serves products from Supabase, degrading to the seeded
// memory table when the store is unreachable.
type FailoverProductRepo struct {
	db  *database.SupabaseClient
	mem *memCollection[models.Product]
}

// NewFailoverProductRepo builds the repo; db may be nil to run memory-only.
func NewFailoverProductRepo(db *database.SupabaseClient) *FailoverProductRepo {
	r := &FailoverProductRepo{db: db, mem: newMemCollection[models.Product]()}
	for _, p := range seedProducts() {
		r.mem.put(p.ID, p)
	}
	return r
}

func (r *FailoverProductRepo) GetAll(ctx context.Context) ([]models.Product, error) {
	if r.db != nil {
		var out []models.Product
		if err := r.db.Select(ctx, "products", "", &out); err == nil {
			return out, nil
		} else {
			utils.GetLogger().Warn("products: store read failed, using memory fallback", zap.Error(err))
		}
	}
	return r.mem.all(), nil
}

func (r *FailoverProductRepo) GetByCategory(ctx context.Context, category string) ([]models.Product, error) {
	all, err := r.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	var out []models.Product
	for _, p := range all {
		if strings.EqualFold(p.Category, category) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *FailoverProductRepo) GetByID(ctx context.Context, id string) (*models.Product, error) {
	if r.db != nil {
		var out models.Product
		err := r.db.SelectSingle(ctx, "products", "id=eq."+url.QueryEscape(id), &out)
		if err == nil {
			return &out, nil
		}
		if err != database.ErrNoRows {
			utils.GetLogger().Warn("products: store read failed, using memory fallback", zap.String("id", id), zap.Error(err))
		}
	}
	if p, ok := r.mem.get(id); ok {
		return &p, nil
	}
	return nil, ErrNotFound
}

func (r *FailoverProductRepo) Create(ctx context.Context, product *models.Product) error {
	if r.db != nil {
		if err := r.db.Insert(ctx, "products", product, product); err == nil {
			return nil
		} else {
			utils.GetLogger().Warn("products: store write failed, using memory fallback", zap.Error(err))
		}
	}
	r.mem.put(product.ID, *product)
	return nil
}

func (r *FailoverProductRepo) Update(ctx context.Context, product *models.Product) error {
	if r.db != nil {
		err := r.db.Update(ctx, "products", "id=eq."+url.QueryEscape(product.ID), product, product)
		if err == nil {
			return nil
		}
		if err != database.ErrNoRows {
			utils.GetLogger().Warn("products: store write failed, using memory fallback", zap.Error(err))
		}
	}
	if _, ok := r.mem.get(product.ID); !ok {
		return ErrNotFound
	}
	r.mem.put(product.ID, *product)
	return nil
}

func (r *FailoverProductRepo) Delete(ctx context.Context, id string) error {
	if r.db != nil {
		if err := r.db.Delete(ctx, "products", "id=eq."+url.QueryEscape(id)); err == nil {
			r.mem.remove(id)
			return nil
		} else {
			utils.GetLogger().Warn("products: store delete failed, using memory fallback", zap.Error(err))
		}
	}
	if !r.mem.remove(id) {
		return ErrNotFound
	}
	return nil
}
