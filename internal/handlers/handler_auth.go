package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// authHandler handles registration and the login flows.
type authHandler struct {
	accountService portssvc.AccountSvcFacade
	tokenService   portssvc.TokenSvcFacade
}

func newAuthHandler(as portssvc.AccountSvcFacade, ts portssvc.TokenSvcFacade) *authHandler {
	return &authHandler{accountService: as, tokenService: ts}
}

// registerAuthRoutes sets up the public authentication routes behind the per-IP limiter.
func registerAuthRoutes(rg *gin.RouterGroup, limit gin.HandlerFunc, as portssvc.AccountSvcFacade, ts portssvc.TokenSvcFacade) {
	h := newAuthHandler(as, ts)

	rg.POST("/register", limit, h.register)
	rg.POST("/login", limit, h.login)
	rg.POST("/login/google", limit, h.loginGoogle)
	rg.POST("/forgot-password", limit, h.forgotPassword)
}

// issue signs a token for account and writes the auth response.
func (h *authHandler) issue(c *gin.Context, status int, account *domain.Account) {
	token, expiresAt, err := h.tokenService.GenerateAccessToken(c.Request.Context(), account)
	if err != nil {
		respondWithError(c, err, "Failed to issue token")
		return
	}
	c.JSON(status, dto.AuthResponse{
		User:      dto.ToAccountResponse(account),
		Token:     token,
		ExpiresAt: expiresAt,
	})
}

// register godoc
// @Summary Register a new account
// @Description Creates an account and returns it with an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "Account details"
// @Success 201 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse "Missing fields or email already registered"
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /register [post]
func (h *authHandler) register(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	account, err := h.accountService.Register(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to register account")
		return
	}

	logger.Info("Account registered", slog.Int64("account_id", account.AccountID))
	h.issue(c, http.StatusCreated, account)
}

// login godoc
// @Summary Log in with email and password
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse "Invalid email or password"
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /login [post]
func (h *authHandler) login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	account, err := h.accountService.Authenticate(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondWithError(c, err, "Failed to log in")
		return
	}
	h.issue(c, http.StatusOK, account)
}

// loginGoogle godoc
// @Summary Log in with a Google ID token
// @Description The token's verified email must belong to an existing account
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.GoogleLoginRequest true "Google ID token"
// @Success 200 {object} dto.AuthResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /login/google [post]
func (h *authHandler) loginGoogle(c *gin.Context) {
	var req dto.GoogleLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	account, err := h.accountService.AuthenticateGoogle(c.Request.Context(), req.IDToken)
	if err != nil {
		respondWithError(c, err, "Failed to log in with Google")
		return
	}
	h.issue(c, http.StatusOK, account)
}

// forgotPassword godoc
// @Summary Request a password reset
// @Description Delivery is simulated. The answer does not reveal whether the email exists.
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.ForgotPasswordRequest true "Email"
// @Success 200 {object} dto.MessageResponse
// @Failure 400 {object} ErrorResponse
// @Router /forgot-password [post]
func (h *authHandler) forgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}
	if err := h.accountService.RequestPasswordReset(c.Request.Context(), req.Email); err != nil {
		respondWithError(c, err, "Failed to request password reset")
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Password reset email sent (simulated)"})
}
