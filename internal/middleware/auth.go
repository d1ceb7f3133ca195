package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/DhavalSuthar-24/musclemyths/pkg/token"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const (
	AuthUserIDKey = "auth_user_id"
	AuthRoleKey   = "auth_role"
)

// RoleLookup returns the current role of an active user, or "" when the user
// no longer exists.
type RoleLookup func(userID uint) (string, error)

// DBRoleLookup reads the role from the users table.
func DBRoleLookup(db *gorm.DB) RoleLookup {
	return func(userID uint) (string, error) {
		var role string
		err := db.Table("users").Select("role").Where("id = ? AND deleted_at IS NULL", userID).Scan(&role).Error
		return role, err
	}
}

func AuthMiddleware(jwtSecret string, db *gorm.DB) gin.HandlerFunc {
	return Authenticate(jwtSecret, DBRoleLookup(db))
}

// Authenticate validates the bearer token and stores the user id and role in
// the context.
func Authenticate(jwtSecret string, lookup RoleLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, "Not authorized, no token")
			return
		}

		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			abort(c, "Invalid Authorization header format. Expected: Bearer <token>")
			return
		}

		claims, err := token.ValidateJWT(parts[1], jwtSecret)
		if err != nil {
			abort(c, "Not authorized, token failed: "+err.Error())
			return
		}

		role, err := lookup(claims.UserID)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"status": "fail", "message": "Failed to load user", "code": http.StatusInternalServerError})
			return
		}
		if role == "" {
			abort(c, "User not found or inactive")
			return
		}

		c.Set(AuthUserIDKey, claims.UserID)
		c.Set(AuthRoleKey, role)
		c.Next()
	}
}

func abort(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"status": "error", "message": message, "code": http.StatusUnauthorized})
}

// GetUserIDFromContext extracts the user ID from the context
func GetUserIDFromContext(c *gin.Context) (uint, error) {
	userID, exists := c.Get(AuthUserIDKey)
	if !exists {
		return 0, errors.New("user ID not found in context")
	}

	uid, ok := userID.(uint)
	if !ok {
		return 0, fmt.Errorf("user ID has unexpected type: %T", userID)
	}

	return uid, nil
}

// GetRoleFromContext returns the role stored by Authenticate.
func GetRoleFromContext(c *gin.Context) string {
	return c.GetString(AuthRoleKey)
}
