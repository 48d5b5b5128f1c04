package handlers_test

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

func admin() *domain.Account {
	return &domain.Account{AccountID: 10, Email: "root@example.com", Name: "Root", Role: domain.RoleAdmin}
}

func (suite *HandlerTestSuite) TestAdmin_RejectsNonAdmin() {
	suite.adminService.On("IsAdmin", mock.Anything, int64(1)).Return(false, nil).Once()

	w := suite.do(http.MethodGet, "/api/admin/users", nil, suite.tokenFor(ana()))

	suite.Equal(http.StatusForbidden, w.Code)
	suite.adminService.AssertNotCalled(suite.T(), "ListAccounts", mock.Anything)
}

func (suite *HandlerTestSuite) TestAdmin_RoleClaimIsNotTrusted() {
	// A token minted while the caller was admin does not help after a demotion.
	suite.adminService.On("IsAdmin", mock.Anything, int64(10)).Return(false, nil).Once()

	w := suite.do(http.MethodGet, "/api/admin/users", nil, suite.tokenFor(admin()))
	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *HandlerTestSuite) TestAdmin_ListUsers() {
	suite.adminService.On("IsAdmin", mock.Anything, int64(10)).Return(true, nil).Once()
	suite.adminService.On("ListAccounts", mock.Anything).Return([]domain.Account{*ana(), *ben(), *admin()}, nil).Once()

	w := suite.do(http.MethodGet, "/api/admin/users", nil, suite.tokenFor(admin()))

	suite.Require().Equal(http.StatusOK, w.Code, w.Body.String())
	var resp []dto.AdminAccountResponse
	suite.decode(w, &resp)
	suite.Len(resp, 3)
	suite.NotContains(w.Body.String(), "password")
}

func (suite *HandlerTestSuite) TestAdmin_ResetPassword() {
	suite.adminService.On("IsAdmin", mock.Anything, int64(10)).Return(true, nil).Twice()
	suite.adminService.On("ResetPassword", mock.Anything, int64(1), "newsecret").Return(nil).Once()

	w := suite.do(http.MethodPut, "/api/admin/user-password/1", dto.AdminResetPasswordRequest{NewPassword: "newsecret"}, suite.tokenFor(admin()))
	suite.Equal(http.StatusOK, w.Code, w.Body.String())

	w = suite.do(http.MethodPut, "/api/admin/user-password/1", dto.AdminResetPasswordRequest{NewPassword: "abc"}, suite.tokenFor(admin()))
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestAdmin_SetRole() {
	suite.adminService.On("IsAdmin", mock.Anything, int64(10)).Return(true, nil).Twice()
	suite.adminService.On("SetRole", mock.Anything, int64(1), domain.RoleAdmin).Return(nil).Once()

	w := suite.do(http.MethodPut, "/api/admin/user-role/1", dto.AdminSetRoleRequest{Role: domain.RoleAdmin}, suite.tokenFor(admin()))
	suite.Equal(http.StatusOK, w.Code, w.Body.String())

	w = suite.do(http.MethodPut, "/api/admin/user-role/1", map[string]any{"role": "OWNER"}, suite.tokenFor(admin()))
	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *HandlerTestSuite) TestAdmin_DeleteUser() {
	suite.adminService.On("IsAdmin", mock.Anything, int64(10)).Return(true, nil).Twice()
	suite.adminService.On("DeleteAccount", mock.Anything, int64(2)).Return(nil).Once()
	suite.adminService.On("DeleteAccount", mock.Anything, int64(99)).
		Return(fmt.Errorf("delete account: %w: account not found", apperrors.ErrNotFound)).Once()

	w := suite.do(http.MethodDelete, "/api/admin/user/2", nil, suite.tokenFor(admin()))
	suite.Equal(http.StatusOK, w.Code, w.Body.String())

	w = suite.do(http.MethodDelete, "/api/admin/user/99", nil, suite.tokenFor(admin()))
	suite.Equal(http.StatusNotFound, w.Code)
}
