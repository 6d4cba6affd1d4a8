package middleware

import (
	"context"  // Request context
	"net/http" // HTTP status codes

	"library_system/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
)

// UserGetter resolves a user by ID; satisfied by the identity service.
type UserGetter interface {
	Get(ctx context.Context, id uint) (*domain.User, error)
}

// AdminOnlyMiddleware checks the acting user's role from the database on
// each request. Runs after JWTAuthMiddleware, which sets userID.
func AdminOnlyMiddleware(users UserGetter) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get("userID") // Get userID from context
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		user, err := users.Get(c.Request.Context(), userID.(uint))
		if err != nil {
			// User not found or any error: deny
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		if user.Role != "admin" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin access required"})
			return
		}
		c.Next() // If admin, proceed to the next handler
	}
}
