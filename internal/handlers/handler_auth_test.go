package handlers_test

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/utils"
	"github.com/stretchr/testify/mock"
)

func registration() dto.RegisterRequest {
	return dto.RegisterRequest{Name: "Ana", Email: "ana@example.com", Password: "secret1", MonthlyBudget: int64Ptr(1000000)}
}

func (suite *HandlerTestSuite) TestRegister_Success() {
	req := registration()
	account := ana()
	account.PairedAccountID = nil
	suite.accountService.On("Register", mock.Anything, req).Return(account, nil).Once()

	w := suite.do(http.MethodPost, "/api/register", req, "")

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.AuthResponse
	suite.decode(w, &resp)
	suite.Equal(int64(1), resp.User.ID)
	suite.Nil(resp.User.PairedAccountID)

	claims, err := utils.ParseAndValidateJWT(resp.Token, testSecret, testIssuer)
	suite.Require().NoError(err)
	suite.Equal("1", claims.Subject)
	suite.Equal("ana@example.com", claims.Email)
}

func (suite *HandlerTestSuite) TestRegister_Duplicate() {
	req := registration()
	suite.accountService.On("Register", mock.Anything, req).Return(nil, fmt.Errorf("save account: %w", apperrors.ErrDuplicate)).Once()

	w := suite.do(http.MethodPost, "/api/register", req, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Email is already registered", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestRegister_MissingFields() {
	w := suite.do(http.MethodPost, "/api/register", map[string]any{"name": "Ana", "email": "ana@example.com", "password": "secret1"}, "")
	suite.Equal(http.StatusBadRequest, w.Code)

	w = suite.do(http.MethodPost, "/api/register", map[string]any{"name": "Ana", "email": "ana@example.com", "password": "secret1", "monthlyBudget": -1}, "")
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestRegister_ZeroBudgetAccepted() {
	req := registration()
	req.MonthlyBudget = int64Ptr(0)
	account := ana()
	account.MonthlyBudget = 0
	suite.accountService.On("Register", mock.Anything, req).Return(account, nil).Once()

	w := suite.do(http.MethodPost, "/api/register", req, "")
	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
}

func (suite *HandlerTestSuite) TestLogin_Success() {
	suite.accountService.On("Authenticate", mock.Anything, "ana@example.com", "secret1").Return(ana(), nil).Once()

	w := suite.do(http.MethodPost, "/api/login", dto.LoginRequest{Email: "ana@example.com", Password: "secret1"}, "")

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.AuthResponse
	suite.decode(w, &resp)
	claims, err := utils.ParseAndValidateJWT(resp.Token, testSecret, testIssuer)
	suite.Require().NoError(err)
	suite.Require().NotNil(claims.PairedAccountID)
	suite.Equal(int64(2), *claims.PairedAccountID)
}

func (suite *HandlerTestSuite) TestLogin_InvalidCredentials() {
	suite.accountService.On("Authenticate", mock.Anything, "ana@example.com", "wrong").Return(nil, apperrors.ErrInvalidCredentials).Once()

	w := suite.do(http.MethodPost, "/api/login", dto.LoginRequest{Email: "ana@example.com", Password: "wrong"}, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Invalid email or password", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestLoginGoogle_Disabled() {
	err := fmt.Errorf("%w: google sign-in is not enabled", apperrors.ErrValidation)
	suite.accountService.On("AuthenticateGoogle", mock.Anything, "id-token").Return(nil, err).Once()

	w := suite.do(http.MethodPost, "/api/login/google", dto.GoogleLoginRequest{IDToken: "id-token"}, "")

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("google sign-in is not enabled", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestLoginGoogle_Success() {
	suite.accountService.On("AuthenticateGoogle", mock.Anything, "id-token").Return(ana(), nil).Once()

	w := suite.do(http.MethodPost, "/api/login/google", dto.GoogleLoginRequest{IDToken: "id-token"}, "")
	suite.Equal(http.StatusOK, w.Code, w.Body.String())
}

func (suite *HandlerTestSuite) TestForgotPassword() {
	suite.accountService.On("RequestPasswordReset", mock.Anything, "nobody@example.com").Return(nil).Once()

	w := suite.do(http.MethodPost, "/api/forgot-password", dto.ForgotPasswordRequest{Email: "nobody@example.com"}, "")

	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodPost, "/api/forgot-password", map[string]any{}, "")
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Email is required", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestAuthRoutesAreRateLimited() {
	cfg := *suite.cfg
	cfg.AuthRateLimit = "2-M"
	suite.router = suite.newRouter(&cfg)
	suite.accountService.On("Authenticate", mock.Anything, "ana@example.com", "wrong").Return(nil, apperrors.ErrInvalidCredentials).Twice()

	body := dto.LoginRequest{Email: "ana@example.com", Password: "wrong"}
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/api/login", body, "").Code)
	suite.Equal(http.StatusBadRequest, suite.do(http.MethodPost, "/api/login", body, "").Code)
	suite.Equal(http.StatusTooManyRequests, suite.do(http.MethodPost, "/api/login", body, "").Code)
}
