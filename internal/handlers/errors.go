package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondWithError maps a service error onto a status and a public message.
// Storage failures never leak their cause; fallback is shown instead.
func respondWithError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	switch {
	case errors.Is(err, apperrors.ErrValidation):
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": detail(err, apperrors.ErrValidation, "Invalid request")})
	case errors.Is(err, apperrors.ErrInvalidAttribution):
		logger.Warn("Attribution rejected", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": detail(err, apperrors.ErrInvalidAttribution, "Invalid attribution")})
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Warn("Duplicate resource", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is already registered"})
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		logger.Warn("Invalid credentials")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email or password"})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
	case errors.Is(err, apperrors.ErrForbidden):
		logger.Warn("Forbidden", slog.String("error", err.Error()))
		c.JSON(http.StatusForbidden, gin.H{"error": detail(err, apperrors.ErrForbidden, "Forbidden")})
	case errors.Is(err, apperrors.ErrNotFound):
		logger.Warn("Resource not found", slog.String("error", err.Error()))
		c.JSON(http.StatusNotFound, gin.H{"error": detail(err, apperrors.ErrNotFound, "Not found")})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": fallback})
	}
}

// detail returns the text after the sentinel in a wrapped error chain, e.g.
// "add expense: validation error: title is required" -> "title is required".
func detail(err, sentinel error, fallback string) string {
	msg := err.Error()
	marker := sentinel.Error() + ": "
	if i := strings.LastIndex(msg, marker); i >= 0 {
		if d := msg[i+len(marker):]; d != "" {
			return d
		}
	}
	return fallback
}

func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
}
