package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shiftcrew/shift-management-api/internal/constants"
	apierrors "github.com/shiftcrew/shift-management-api/internal/errors"
	"github.com/shiftcrew/shift-management-api/internal/utils"
)

// RequireAuth verifies the bearer token and exposes the staff ID to handlers.
// A missing token is 401; a token that fails signature or expiry checks is 403.
func RequireAuth(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(secret, tokenString)
		if err != nil {
			apierrors.Forbidden(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyStaffID, claims.StaffID)
		c.Set(constants.ContextKeyRole, claims.Role)
		c.Next()
	}
}

// RequireAdmin verifies the bearer token and rejects non-admin roles.
func RequireAdmin(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		claims, err := utils.ValidateToken(secret, tokenString)
		if err != nil {
			apierrors.Forbidden(c, "Invalid or expired token")
			c.Abort()
			return
		}
		if claims.Role != constants.RoleAdmin {
			apierrors.Forbidden(c, "Administrator access required")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyRole, claims.Role)
		c.Next()
	}
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// GetStaffID retrieves the authenticated staff ID from context.
func GetStaffID(c *gin.Context) (string, bool) {
	value, exists := c.Get(constants.ContextKeyStaffID)
	if !exists {
		return "", false
	}
	staffID, ok := value.(string)
	if !ok || staffID == "" {
		return "", false
	}
	return staffID, true
}
