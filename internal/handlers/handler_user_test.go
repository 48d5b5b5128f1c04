package handlers_test

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/utils"
	"github.com/SscSPs/household_ledger/internal/utils/accounting"
	"github.com/stretchr/testify/mock"
)

func (suite *HandlerTestSuite) TestGetUser() {
	a, b := ana(), ben()
	a.CurrentSpending = 200000
	b.CurrentSpending = 50000
	household := &domain.Household{Account: a, Spouse: b, Budget: accounting.Overview(a.MonthlyBudget, a.CurrentSpending, b.CurrentSpending)}
	suite.accountService.On("GetHousehold", mock.Anything, int64(1)).Return(household, nil).Once()

	w := suite.do(http.MethodGet, "/api/user", nil, suite.tokenFor(ana()))

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.HouseholdResponse
	suite.decode(w, &resp)
	suite.Equal("ana@example.com", resp.User.Email)
	suite.Require().NotNil(resp.Spouse)
	suite.Equal("ben@example.com", resp.Spouse.Email)
	suite.Equal(int64(250000), resp.Budget.CombinedSpending)
	suite.Equal(int64(750000), resp.Budget.Remaining)
}

func (suite *HandlerTestSuite) TestGetUser_NoSpouse() {
	a := ana()
	a.PairedAccountID = nil
	suite.accountService.On("GetHousehold", mock.Anything, int64(1)).
		Return(&domain.Household{Account: a, Budget: accounting.Overview(a.MonthlyBudget)}, nil).Once()

	w := suite.do(http.MethodGet, "/api/user", nil, suite.tokenFor(a))

	suite.Require().Equal(http.StatusOK, w.Code)
	suite.Contains(w.Body.String(), `"spouse":null`)
}

func (suite *HandlerTestSuite) TestCreateSpouse_Success() {
	single := ana()
	single.PairedAccountID = nil
	req := dto.RegisterRequest{Name: "Ben", Email: "ben@example.com", Password: "secret2", MonthlyBudget: int64Ptr(1000000)}
	suite.accountService.On("CreateSpouse", mock.Anything, callerIs(1), req).Return(ben(), ana(), nil).Once()

	w := suite.do(http.MethodPost, "/api/spouse", req, suite.tokenFor(single))

	suite.Require().Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.SpouseResponse
	suite.decode(w, &resp)
	suite.Equal(int64(2), resp.ID)
	suite.Require().NotNil(resp.PairedAccountID)
	suite.Equal(int64(1), *resp.PairedAccountID)

	// The returned token belongs to the creator and already carries the pairing.
	claims, err := utils.ParseAndValidateJWT(resp.Token, testSecret, testIssuer)
	suite.Require().NoError(err)
	suite.Equal("1", claims.Subject)
	suite.Require().NotNil(claims.PairedAccountID)
	suite.Equal(int64(2), *claims.PairedAccountID)
}

func (suite *HandlerTestSuite) TestCreateSpouse_AlreadyPaired() {
	req := dto.RegisterRequest{Name: "Ben", Email: "ben2@example.com", Password: "secret2", MonthlyBudget: int64Ptr(0)}
	err := fmt.Errorf("create spouse: %w: spouse account already exists", apperrors.ErrForbidden)
	suite.accountService.On("CreateSpouse", mock.Anything, callerIs(1), req).Return(nil, nil, err).Once()

	w := suite.do(http.MethodPost, "/api/spouse", req, suite.tokenFor(ana()))

	suite.Equal(http.StatusForbidden, w.Code)
	suite.Equal("spouse account already exists", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestUpdateBudget() {
	suite.budgetService.On("UpdateMonthlyBudget", mock.Anything, int64(1), int64(0)).Return(nil).Once()

	w := suite.do(http.MethodPut, "/api/user/budget", dto.UpdateBudgetRequest{MonthlyBudget: int64Ptr(0)}, suite.tokenFor(ana()))
	suite.Equal(http.StatusOK, w.Code, w.Body.String())

	w = suite.do(http.MethodPut, "/api/user/budget", map[string]any{"monthlyBudget": -10}, suite.tokenFor(ana()))
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Valid monthly budget is required", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestUpdatePassword() {
	suite.accountService.On("UpdatePassword", mock.Anything, int64(1), "longenough").Return(nil).Once()

	w := suite.do(http.MethodPut, "/api/user/password", dto.UpdatePasswordRequest{Password: "longenough"}, suite.tokenFor(ana()))
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodPut, "/api/user/password", dto.UpdatePasswordRequest{Password: "abc"}, suite.tokenFor(ana()))
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("Password must be at least 6 characters long", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestUpdateProfile() {
	suite.accountService.On("UpdateName", mock.Anything, int64(1), "Ana Maria").Return(nil).Once()

	w := suite.do(http.MethodPut, "/api/user/profile", dto.UpdateProfileRequest{Name: "Ana Maria"}, suite.tokenFor(ana()))
	suite.Equal(http.StatusOK, w.Code)

	w = suite.do(http.MethodPut, "/api/user/profile", map[string]any{}, suite.tokenFor(ana()))
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) uploadAvatar(filename string, content []byte) *httptest.ResponseRecorder {
	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if filename != "" {
		part, err := form.CreateFormFile("avatar", filename)
		suite.Require().NoError(err)
		_, err = part.Write(content)
		suite.Require().NoError(err)
	}
	suite.Require().NoError(form.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/user/avatar", &body)
	req.Header.Set("Content-Type", form.FormDataContentType())
	req.Header.Set("Authorization", "Bearer "+suite.tokenFor(ana()))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *HandlerTestSuite) TestUploadAvatar_Success() {
	isAvatarURL := mock.MatchedBy(func(url string) bool {
		return strings.HasPrefix(url, "/uploads/avatar-1-") && strings.HasSuffix(url, ".png")
	})
	suite.accountService.On("UpdateAvatar", mock.Anything, int64(1), isAvatarURL).Return(nil).Once()

	w := suite.uploadAvatar("me.PNG", []byte("\x89PNG fake image"))

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.AvatarResponse
	suite.decode(w, &resp)
	suite.Equal("Avatar uploaded successfully", resp.Message)

	stored := filepath.Join(suite.avatars.Dir(), strings.TrimPrefix(resp.AvatarURL, "/uploads/"))
	content, err := os.ReadFile(stored)
	suite.Require().NoError(err)
	suite.Equal("\x89PNG fake image", string(content))

	// Uploaded files are served back under the public prefix.
	served := httptest.NewRecorder()
	suite.router.ServeHTTP(served, httptest.NewRequest(http.MethodGet, resp.AvatarURL, nil))
	suite.Equal(http.StatusOK, served.Code)
}

func (suite *HandlerTestSuite) TestUploadAvatar_NoFile() {
	w := suite.uploadAvatar("", nil)
	suite.Equal(http.StatusBadRequest, w.Code)
	suite.Equal("No file uploaded", suite.errorMessage(w))
}

func (suite *HandlerTestSuite) TestUploadAvatar_RejectsExtension() {
	w := suite.uploadAvatar("script.sh", []byte("#!/bin/sh"))
	suite.Equal(http.StatusBadRequest, w.Code)

	entries, err := os.ReadDir(suite.avatars.Dir())
	suite.Require().NoError(err)
	suite.Empty(entries)
}

func (suite *HandlerTestSuite) TestUploadAvatar_TooLarge() {
	w := suite.uploadAvatar("big.jpg", bytes.Repeat([]byte{1}, int(suite.cfg.MaxAvatarBytes)+1))
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestUploadAvatar_RemovesFileWhenUpdateFails() {
	suite.accountService.On("UpdateAvatar", mock.Anything, int64(1), mock.Anything).
		Return(fmt.Errorf("update avatar: %w: account not found", apperrors.ErrNotFound)).Once()

	w := suite.uploadAvatar("me.jpg", []byte("jpeg"))

	suite.Equal(http.StatusNotFound, w.Code)
	entries, err := os.ReadDir(suite.avatars.Dir())
	suite.Require().NoError(err)
	suite.Empty(entries)
}
