package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// adminHandler serves account administration. Routes are mounted behind RequireAdmin.
type adminHandler struct {
	adminService portssvc.AdminSvc
}

func registerAdminRoutes(rg *gin.RouterGroup, as portssvc.AdminSvc) {
	h := &adminHandler{adminService: as}

	admin := rg.Group("/admin", middleware.RequireAdmin(as))
	{
		admin.GET("/users", h.listUsers)
		admin.PUT("/user-password/:userID", h.resetPassword)
		admin.PUT("/user-role/:userID", h.setRole)
		admin.DELETE("/user/:userID", h.deleteUser)
	}
}

// listUsers godoc
// @Summary List all accounts
// @Tags admin
// @Produce json
// @Success 200 {array} dto.AdminAccountResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/users [get]
func (h *adminHandler) listUsers(c *gin.Context) {
	accounts, err := h.adminService.ListAccounts(c.Request.Context())
	if err != nil {
		respondWithError(c, err, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, dto.ToAdminAccountResponses(accounts))
}

// resetPassword godoc
// @Summary Set another account's password
// @Tags admin
// @Accept json
// @Produce json
// @Param userID path int true "Account ID"
// @Param request body dto.AdminResetPasswordRequest true "New password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/user-password/{userID} [put]
func (h *adminHandler) resetPassword(c *gin.Context) {
	accountID, ok := idParam(c, "userID", "user")
	if !ok {
		return
	}
	var req dto.AdminResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters long"})
		return
	}
	if err := h.adminService.ResetPassword(c.Request.Context(), accountID, req.NewPassword); err != nil {
		respondWithError(c, err, "Failed to reset password")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Password reset by admin", slog.Int64("account_id", accountID))
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password updated successfully"})
}

// setRole godoc
// @Summary Grant or revoke the admin role
// @Tags admin
// @Accept json
// @Produce json
// @Param userID path int true "Account ID"
// @Param request body dto.AdminSetRoleRequest true "Role"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/user-role/{userID} [put]
func (h *adminHandler) setRole(c *gin.Context) {
	accountID, ok := idParam(c, "userID", "user")
	if !ok {
		return
	}
	var req dto.AdminSetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if err := h.adminService.SetRole(c.Request.Context(), accountID, req.Role); err != nil {
		respondWithError(c, err, "Failed to update role")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Role updated successfully"})
}

// deleteUser godoc
// @Summary Delete an account
// @Description Removes the account and its expenses. A paired spouse is left unpaired.
// @Tags admin
// @Produce json
// @Param userID path int true "Account ID"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /admin/user/{userID} [delete]
func (h *adminHandler) deleteUser(c *gin.Context) {
	accountID, ok := idParam(c, "userID", "user")
	if !ok {
		return
	}
	if err := h.adminService.DeleteAccount(c.Request.Context(), accountID); err != nil {
		respondWithError(c, err, "Failed to delete user")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Account deleted by admin", slog.Int64("account_id", accountID))
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted successfully"})
}
