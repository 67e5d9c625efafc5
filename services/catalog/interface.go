package catalog

import (
	"context"

	"divineastro/database/repository"
	"divineastro/models"
)

// CatalogService manages the product catalog.
type CatalogService interface {
	// GetProducts lists products, optionally filtered by category.
	// An empty category or "featured" returns the full catalog.
	GetProducts(ctx context.Context, category string) ([]models.Product, error)
	GetProduct(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, product models.Product) (*models.Product, error)
	UpdateProduct(ctx context.Context, product models.Product) (*models.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

// DefaultCatalogService is the production implementation.
type DefaultCatalogService struct {
	Repo repository.ProductRepository
}
