package middleware

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RequireAdmin lets the request through only when the caller's stored account can administer.
// The role is read from storage rather than the token so a demotion takes effect immediately.
func RequireAdmin(authorizer portssvc.AdminAuthorizerSvc) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())

		identity, ok := GetIdentityFromContext(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		isAdmin, err := authorizer.IsAdmin(c.Request.Context(), identity.AccountID)
		if err != nil {
			logger.Error("Failed to check admin capability", slog.String("error", err.Error()))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "Failed to check permissions"})
			return
		}
		if !isAdmin {
			logger.Warn("Non-admin attempted an admin operation")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
			return
		}

		c.Next()
	}
}
