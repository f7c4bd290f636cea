package auth

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"forecast-market/internal/models"
)

// AuthMiddleware validates JWT tokens and puts the caller principal into the
// request context for protected routes.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")

		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authorization header required",
			})
			c.Abort()
			return
		}

		// Extract token from "Bearer <token>" format
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid authorization header format. Expected: Bearer <token>",
			})
			c.Abort()
			return
		}

		claims, err := ValidateToken(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set("principal", claims.Principal)
		c.Next()
	}
}

// GetPrincipal retrieves the caller principal from the context.
func GetPrincipal(c *gin.Context) (models.Principal, bool) {
	value, exists := c.Get("principal")
	if !exists {
		return "", false
	}

	principal, ok := value.(string)
	if !ok || principal == "" {
		return "", false
	}
	return models.Principal(principal), true
}
