package rmiddleware

import (
	"net/http"
	"strings"

	"github.com/DhavalSuthar-24/musclemyths/internal/middleware"
	"github.com/gin-gonic/gin"
)

// RoleMiddleware allows the request through when the authenticated role is one
// of requiredRoles. It must run after middleware.Authenticate.
func RoleMiddleware(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := middleware.GetRoleFromContext(c)
		if role == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "Unauthorized", "code": http.StatusUnauthorized})
			return
		}

		for _, required := range requiredRoles {
			if strings.EqualFold(role, required) {
				c.Next()
				return
			}
		}

		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
			"status":   "error",
			"message":  "You don't have permission to access this resource",
			"code":     http.StatusForbidden,
			"required": requiredRoles,
		})
	}
}

// SuperAdminMiddleware is a convenience middleware for super-admin-only access
func SuperAdminMiddleware() gin.HandlerFunc {
	return RoleMiddleware("super_admin")
}
