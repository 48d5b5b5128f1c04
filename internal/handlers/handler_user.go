package handlers

import (
	"log/slog"
	"net/http"
	"os"

	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/SscSPs/household_ledger/internal/platform/filestore"
	"github.com/gin-gonic/gin"
)

// userHandler serves the caller's own account and household.
type userHandler struct {
	accountService portssvc.AccountSvcFacade
	budgetService  portssvc.BudgetSvc
	tokenService   portssvc.TokenSvcFacade
	avatars        *filestore.LocalStore
	maxAvatarBytes int64
}

func registerUserRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer, avatars *filestore.LocalStore, maxAvatarBytes int64) {
	h := &userHandler{
		accountService: services.Account,
		budgetService:  services.Budget,
		tokenService:   services.Token,
		avatars:        avatars,
		maxAvatarBytes: maxAvatarBytes,
	}

	rg.POST("/spouse", h.createSpouse)

	user := rg.Group("/user")
	{
		user.GET("", h.getUser)
		user.PUT("/budget", h.updateBudget)
		user.PUT("/password", h.updatePassword)
		user.PUT("/profile", h.updateProfile)
		user.POST("/avatar", h.uploadAvatar)
	}
}

// createSpouse godoc
// @Summary Create the paired spouse account
// @Description Creates a second account paired with the caller. The returned token replaces the caller's, since it carries the new pairing.
// @Tags user
// @Accept json
// @Produce json
// @Param spouse body dto.RegisterRequest true "Spouse account details"
// @Success 201 {object} dto.SpouseResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Spouse account already exists"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /spouse [post]
func (h *userHandler) createSpouse(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	spouse, creator, err := h.accountService.CreateSpouse(c.Request.Context(), caller, req)
	if err != nil {
		respondWithError(c, err, "Failed to create spouse account")
		return
	}

	token, _, err := h.tokenService.GenerateAccessToken(c.Request.Context(), creator)
	if err != nil {
		respondWithError(c, err, "Failed to issue token")
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Spouse account created", slog.Int64("spouse_id", spouse.AccountID))
	c.JSON(http.StatusCreated, dto.SpouseResponse{
		AccountResponse: dto.ToAccountResponse(spouse),
		Token:           token,
	})
}

// getUser godoc
// @Summary Get the caller and their spouse
// @Tags user
// @Produce json
// @Success 200 {object} dto.HouseholdResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /user [get]
func (h *userHandler) getUser(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	household, err := h.accountService.GetHousehold(c.Request.Context(), caller.AccountID)
	if err != nil {
		respondWithError(c, err, "Failed to load user")
		return
	}
	c.JSON(http.StatusOK, dto.ToHouseholdResponse(household))
}

// updateBudget godoc
// @Summary Change the caller's monthly budget
// @Tags user
// @Accept json
// @Produce json
// @Param budget body dto.UpdateBudgetRequest true "New budget"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /user/budget [put]
func (h *userHandler) updateBudget(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req dto.UpdateBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid monthly budget is required"})
		return
	}
	if err := h.budgetService.UpdateMonthlyBudget(c.Request.Context(), caller.AccountID, *req.MonthlyBudget); err != nil {
		respondWithError(c, err, "Failed to update budget")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Budget updated successfully"})
}

// updatePassword godoc
// @Summary Change the caller's password
// @Tags user
// @Accept json
// @Produce json
// @Param password body dto.UpdatePasswordRequest true "New password"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse "Password must be at least 6 characters long"
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /user/password [put]
func (h *userHandler) updatePassword(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req dto.UpdatePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters long"})
		return
	}
	if err := h.accountService.UpdatePassword(c.Request.Context(), caller.AccountID, req.Password); err != nil {
		respondWithError(c, err, "Failed to update password")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password updated successfully"})
}

// updateProfile godoc
// @Summary Change the caller's display name
// @Tags user
// @Accept json
// @Produce json
// @Param profile body dto.UpdateProfileRequest true "New name"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Security BearerAuth
// @Router /user/profile [put]
func (h *userHandler) updateProfile(c *gin.Context) {
	caller, ok := callerFrom(c)
	if !ok {
		return
	}
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Valid name is required"})
		return
	}
	if err := h.accountService.UpdateName(c.Request.Context(), caller.AccountID, req.Name); err != nil {
		respondWithError(c, err, "Failed to update name")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Name updated successfully"})
}

// uploadAvatar godoc
// @Summary Upload an avatar image
// @Tags user
// @Accept multipart/form-data
// @Produce json
// @Param avatar formData file true "Image file (jpg, png, gif, webp)"
// @Success 200 {object} dto.AvatarResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /user/avatar [post]
func (h *userHandler) uploadAvatar(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	caller, ok := callerFrom(c)
	if !ok {
		return
	}

	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxAvatarBytes+(1<<20))
	file, err := c.FormFile("avatar")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "No file uploaded"})
		return
	}
	if file.Size > h.maxAvatarBytes {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Avatar file is too large"})
		return
	}

	diskPath, publicURL, err := h.avatars.NewAvatarTarget(caller.AccountID, file.Filename)
	if err != nil {
		respondWithError(c, err, "Failed to store avatar")
		return
	}
	if err := c.SaveUploadedFile(file, diskPath); err != nil {
		logger.Error("Failed to write avatar file", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to store avatar"})
		return
	}

	if err := h.accountService.UpdateAvatar(c.Request.Context(), caller.AccountID, publicURL); err != nil {
		if rmErr := os.Remove(diskPath); rmErr != nil {
			logger.Warn("Failed to remove orphaned avatar file", slog.String("path", diskPath), slog.String("error", rmErr.Error()))
		}
		respondWithError(c, err, "Failed to update avatar")
		return
	}

	logger.Info("Avatar uploaded", slog.String("avatar_url", publicURL))
	c.JSON(http.StatusOK, dto.AvatarResponse{Message: "Avatar uploaded successfully", AvatarURL: publicURL})
}
