package handlers

import (
	"errors"
	"net/http"

	"divineastro/database/repository"
	"divineastro/models"
	"divineastro/services/order"
	"divineastro/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// OrderHandler exposes the checkout and payment endpoints.
type OrderHandler struct {
	Service order.OrderService
}

// CreateOrderHandler handles POST /api/orders.
func (h *OrderHandler) CreateOrderHandler(c *gin.Context) {
	logger := utils.GetLogger()
	var input models.OrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindingError(c, err)
		return
	}
	created, err := h.Service.CreateOrder(c.Request.Context(), input)
	if err != nil {
		logger.Error("Failed to create order", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to place order"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListOrdersHandler handles GET /api/orders (admin only).
func (h *OrderHandler) ListOrdersHandler(c *gin.Context) {
	orders, err := h.Service.ListOrders(c.Request.Context())
	if err != nil {
		utils.GetLogger().Error("Failed to list orders", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch orders"})
		return
	}
	c.JSON(http.StatusOK, orders)
}

// GetOrderHandler handles GET /api/orders/:id.
func (h *OrderHandler) GetOrderHandler(c *gin.Context) {
	id := c.Param("id")
	ord, err := h.Service.GetOrder(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		utils.GetLogger().Error("Failed to fetch order", zap.String("id", id), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch order"})
		return
	}
	c.JSON(http.StatusOK, ord)
}

// CreatePaymentOrderHandler handles POST /api/payment/create-order.
func (h *OrderHandler) CreatePaymentOrderHandler(c *gin.Context) {
	var input models.PaymentOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindingError(c, err)
		return
	}
	c.JSON(http.StatusOK, h.Service.CreatePaymentOrder(input))
}

// VerifyPaymentHandler handles POST /api/payment/verify.
func (h *OrderHandler) VerifyPaymentHandler(c *gin.Context) {
	var v models.PaymentVerification
	if err := c.ShouldBindJSON(&v); err != nil {
		utils.BindingError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"verified": h.Service.VerifyPayment(v)})
}
