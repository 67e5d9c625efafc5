package handlers

import (
	"errors"
	"net/http"

	"divineastro/models"
	"divineastro/services/cart"
	"divineastro/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// CartHandler exposes the Redis-backed cart session endpoints.
type CartHandler struct {
	Service cart.CartService
}

type cartItemsRequest struct {
	Items []models.CartItem `json:"items" binding:"required,dive"`
}

// CreateCartHandler handles POST /api/cart.
func (h *CartHandler) CreateCartHandler(c *gin.Context) {
	var req cartItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindingError(c, err)
		return
	}
	created, err := h.Service.CreateCart(c.Request.Context(), req.Items)
	if err != nil {
		utils.GetLogger().Error("Failed to create cart", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create cart"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetCartHandler handles GET /api/cart/:id.
func (h *CartHandler) GetCartHandler(c *gin.Context) {
	id := c.Param("id")
	crt, err := h.Service.GetCart(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, cart.ErrCartNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
			return
		}
		utils.GetLogger().Error("Failed to fetch cart", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch cart"})
		return
	}
	c.JSON(http.StatusOK, crt)
}

// UpdateCartHandler handles PUT /api/cart/:id/items.
func (h *CartHandler) UpdateCartHandler(c *gin.Context) {
	id := c.Param("id")
	var req cartItemsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BindingError(c, err)
		return
	}
	updated, err := h.Service.UpdateItems(c.Request.Context(), id, req.Items)
	if err != nil {
		if errors.Is(err, cart.ErrCartNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "cart not found"})
			return
		}
		utils.GetLogger().Error("Failed to update cart", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update cart"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteCartHandler handles DELETE /api/cart/:id.
func (h *CartHandler) DeleteCartHandler(c *gin.Context) {
	id := c.Param("id")
	if err := h.Service.DeleteCart(c.Request.Context(), id); err != nil {
		utils.GetLogger().Error("Failed to delete cart", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete cart"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart deleted"})
}
