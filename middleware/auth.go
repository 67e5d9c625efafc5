package middleware

import (
	"net/http"
	"strings"

	"divineastro/services/identity"

	"github.com/gin-gonic/gin"
)

const identityKey = "identity"

// AuthMiddleware extracts the bearer token from the Authorization header,
// resolves it through the verifier and stores the resulting identity in the
// request context. Requests without a valid credential are rejected with 401.
func AuthMiddleware(verifier identity.Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		ident, err := verifier.Verify(c.Request.Context(), tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		c.Set(identityKey, *ident)
		c.Next()
	}
}

// GetIdentity returns the identity stored by AuthMiddleware, if any.
func GetIdentity(c *gin.Context) (identity.Identity, bool) {
	v, exists := c.Get(identityKey)
	if !exists {
		return identity.Identity{}, false
	}
	ident, ok := v.(identity.Identity)
	return ident, ok
}
