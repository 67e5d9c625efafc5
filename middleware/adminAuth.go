package middleware

import (
	"fmt"
	"net/http"

	"divineastro/config"

	"github.com/gin-gonic/gin"
)

// RequireAdmin rejects authenticated callers whose identity does not carry
// the admin flag. It must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		ident, ok := GetIdentity(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		if !ident.Admin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": adminDeniedMessage()})
			return
		}
		c.Next()
	}
}

func adminDeniedMessage() string {
	allow := config.AdminAllowList()
	if len(allow) == 0 {
		return "Admin access required."
	}
	return fmt.Sprintf("Admin access required. Only %s can perform this action.", allow[0])
}
