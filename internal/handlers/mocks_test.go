package handlers_test

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/stretchr/testify/mock"
)

// --- Mock AccountService ---
type MockAccountService struct {
	mock.Mock
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetHousehold(ctx context.Context, accountID int64) (*domain.Household, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Household), args.Error(1)
}

func (m *MockAccountService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.Account, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) CreateSpouse(ctx context.Context, caller domain.Identity, req dto.RegisterRequest) (*domain.Account, *domain.Account, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*domain.Account), args.Get(1).(*domain.Account), args.Error(2)
}

func (m *MockAccountService) UpdatePassword(ctx context.Context, accountID int64, password string) error {
	return m.Called(ctx, accountID, password).Error(0)
}

func (m *MockAccountService) UpdateName(ctx context.Context, accountID int64, name string) error {
	return m.Called(ctx, accountID, name).Error(0)
}

func (m *MockAccountService) UpdateAvatar(ctx context.Context, accountID int64, avatarURL string) error {
	return m.Called(ctx, accountID, avatarURL).Error(0)
}

func (m *MockAccountService) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) AuthenticateGoogle(ctx context.Context, idToken string) (*domain.Account, error) {
	args := m.Called(ctx, idToken)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) RequestPasswordReset(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

// Ensure mock implements the interface
var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

// --- Mock LedgerService ---
type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) ListExpenses(ctx context.Context, caller domain.Identity, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	args := m.Called(ctx, caller, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockLedgerService) AddExpense(ctx context.Context, caller domain.Identity, req dto.ExpenseRequest) (*domain.Expense, error) {
	args := m.Called(ctx, caller, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockLedgerService) EditExpense(ctx context.Context, caller domain.Identity, expenseID int64, req dto.ExpenseRequest) (*domain.Expense, error) {
	args := m.Called(ctx, caller, expenseID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockLedgerService) DeleteExpense(ctx context.Context, caller domain.Identity, expenseID int64) error {
	return m.Called(ctx, caller, expenseID).Error(0)
}

var _ portssvc.LedgerSvcFacade = (*MockLedgerService)(nil)

// --- Mock BudgetService ---
type MockBudgetService struct {
	mock.Mock
}

func (m *MockBudgetService) CloseMonth(ctx context.Context, caller domain.Identity, newMonthlyBudget int64) (*domain.CloseMonthSummary, error) {
	args := m.Called(ctx, caller, newMonthlyBudget)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CloseMonthSummary), args.Error(1)
}

func (m *MockBudgetService) UpdateMonthlyBudget(ctx context.Context, accountID int64, monthlyBudget int64) error {
	return m.Called(ctx, accountID, monthlyBudget).Error(0)
}

var _ portssvc.BudgetSvc = (*MockBudgetService)(nil)

// --- Mock AdminService ---
type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) IsAdmin(ctx context.Context, accountID int64) (bool, error) {
	args := m.Called(ctx, accountID)
	return args.Bool(0), args.Error(1)
}

func (m *MockAdminService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAdminService) ResetPassword(ctx context.Context, accountID int64, newPassword string) error {
	return m.Called(ctx, accountID, newPassword).Error(0)
}

func (m *MockAdminService) DeleteAccount(ctx context.Context, accountID int64) error {
	return m.Called(ctx, accountID).Error(0)
}

func (m *MockAdminService) SetRole(ctx context.Context, accountID int64, role domain.Role) error {
	return m.Called(ctx, accountID, role).Error(0)
}

var _ portssvc.AdminSvc = (*MockAdminService)(nil)
