package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/gangasingh/uniconnect-backend/models"
	"github.com/gangasingh/uniconnect-backend/services"
)

// RequireAdmin gates the admin-only mutations (subject/resource
// create/update/delete). Must run after AuthMiddleware.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		roleValue, exists := c.Get("role")
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Could not determine user role"})
			c.Abort()
			return
		}

		role, ok := roleValue.(string)
		if !ok || !services.IsAdmin(models.UserRole(role)) {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Admins only."})
			c.Abort()
			return
		}

		c.Next()
	}
}
