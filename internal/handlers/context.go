package handlers

import (
	"net/http"
	"strconv"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// callerFrom returns the authenticated identity or writes a 401.
func callerFrom(c *gin.Context) (domain.Identity, bool) {
	identity, ok := middleware.GetIdentityFromContext(c)
	if !ok {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Caller identity not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return domain.Identity{}, false
	}
	return identity, true
}

// idParam parses a positive numeric path parameter or writes a 400.
func idParam(c *gin.Context, name, label string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + label + " ID"})
		return 0, false
	}
	return id, true
}
