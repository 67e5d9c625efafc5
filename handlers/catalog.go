package handlers

import (
	"errors"
	"net/http"

	"divineastro/database/repository"
	"divineastro/models"
	"divineastro/services/catalog"
	"divineastro/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CatalogHandler exposes the product catalog endpoints.
type CatalogHandler struct {
	Service catalog.CatalogService
}

// ListProductsHandler handles GET /api/products. A category query parameter
// narrows the listing; "featured" and an empty value return everything.
func (h *CatalogHandler) ListProductsHandler(c *gin.Context) {
	logger := utils.GetLogger()
	category := c.Query("category")
	products, err := h.Service.GetProducts(c.Request.Context(), category)
	if err != nil {
		logger.Error("Failed to list products", zap.String("category", category), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProductHandler handles GET /api/products/:id.
func (h *CatalogHandler) GetProductHandler(c *gin.Context) {
	id := c.Param("id")
	product, err := h.Service.GetProduct(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		utils.GetLogger().Error("Failed to fetch product", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch product"})
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProductHandler handles POST /api/products (admin only).
func (h *CatalogHandler) CreateProductHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		utils.BindingError(c, err)
		return
	}
	created, err := h.Service.CreateProduct(c.Request.Context(), product)
	if err != nil {
		logger.Error("Failed to create product", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateProductHandler handles PUT /api/products/:id (admin only).
func (h *CatalogHandler) UpdateProductHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var product models.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		utils.BindingError(c, err)
		return
	}
	product.ID = c.Param("id")
	updated, err := h.Service.UpdateProduct(c.Request.Context(), product)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		logger.Error("Failed to update product", zap.String("id", product.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteProductHandler handles DELETE /api/products/:id (admin only).
func (h *CatalogHandler) DeleteProductHandler(c *gin.Context) {
	logger := utils.GetLogger()
	id := c.Param("id")
	if err := h.Service.DeleteProduct(c.Request.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		logger.Error("Failed to delete product", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted"})
}
