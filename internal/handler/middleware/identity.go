package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Identity is established by the gateway in front of this service, which
// authenticates the caller and forwards an opaque user identifier. The
// identifier is never interpreted here beyond presence and role checks.
const (
	userIDHeader   = "X-User-ID"
	userRoleHeader = "X-User-Role"

	ctxUserIDKey   = "user_id"
	ctxUserRoleKey = "user_role"

	RoleAdmin = "admin"
)

// RequireUser rejects requests that arrive without a forwarded identity.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := strings.TrimSpace(c.GetHeader(userIDHeader))
		if userID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "User identity required",
			})
			c.Abort()
			return
		}

		c.Set(ctxUserIDKey, userID)
		c.Set(ctxUserRoleKey, strings.TrimSpace(c.GetHeader(userRoleHeader)))
		c.Next()
	}
}

// RequireAdmin must run after RequireUser.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetUserRole(c)
		if !ok {
			// Unexpected error: should be used after RequireUser()
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if role != RoleAdmin {
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxUserIDKey)
	if !exists {
		return "", false
	}
	id, ok := v.(string)
	return id, ok && id != ""
}

func GetUserRole(c *gin.Context) (string, bool) {
	v, exists := c.Get(ctxUserRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(string)
	return role, ok
}
