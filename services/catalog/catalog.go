package catalog

import (
	"context"
	"fmt"
	"strings"

	"divineastro/models"

	"github.com/google/uuid"
)

func (s *DefaultCatalogService) GetProducts(ctx context.Context, category string) ([]models.Product, error) {
	// "featured" is the storefront's alias for the full catalog.
	if category == "" || strings.EqualFold(category, "featured") {
		return s.Repo.GetAll(ctx)
	}
	return s.Repo.GetByCategory(ctx, category)
}

func (s *DefaultCatalogService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultCatalogService) CreateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	product.ID = uuid.NewString()
	if err := s.Repo.Create(ctx, &product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}
	return &product, nil
}

func (s *DefaultCatalogService) UpdateProduct(ctx context.Context, product models.Product) (*models.Product, error) {
	if product.ID == "" {
		return nil, fmt.Errorf("product id is required for update")
	}
	if err := s.Repo.Update(ctx, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (s *DefaultCatalogService) DeleteProduct(ctx context.Context, id string) error {
	return s.Repo.Delete(ctx, id)
}
