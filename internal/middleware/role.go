package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"glambook/internal/pkg/response"
)

// RequireRole ensures that the authenticated user has the specified role.
// This is the fast UX gate only: every service re-checks ownership
// against the row before mutating anything.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if role.(string) != requiredRole {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// ArtistOnly middleware requires the artist role
func ArtistOnly() gin.HandlerFunc {
	return RequireRole("artist")
}

// ClientOnly middleware requires the client role
func ClientOnly() gin.HandlerFunc {
	return RequireRole("client")
}
