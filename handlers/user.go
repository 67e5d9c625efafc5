package handlers

import (
	"errors"
	"net/http"

	"divineastro/database/repository"
	"divineastro/middleware"
	"divineastro/models"
	"divineastro/services/user"
	"divineastro/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler exposes the profile sync endpoints for authenticated customers.
type UserHandler struct {
	Service user.UserService
}

// SyncUserHandler handles POST /api/users/sync. The identity comes from the
// verified credential, never from the request body.
func (h *UserHandler) SyncUserHandler(c *gin.Context) {
	logger := utils.GetLogger()
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
		return
	}

	var input models.UserSyncInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.BindingError(c, err)
		return
	}

	usr, err := h.Service.SyncUser(c.Request.Context(), ident, input)
	if err != nil {
		logger.Error("Failed to sync user", zap.String("id", ident.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to sync user"})
		return
	}
	c.JSON(http.StatusOK, usr)
}

// CurrentUserHandler handles GET /api/users/me.
func (h *UserHandler) CurrentUserHandler(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
		return
	}

	usr, err := h.Service.GetUserByID(c.Request.Context(), ident.ID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		utils.GetLogger().Error("Failed to fetch user", zap.String("id", ident.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch user"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": usr, "admin": ident.Admin})
}
