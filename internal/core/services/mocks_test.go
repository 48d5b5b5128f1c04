package services_test

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/core/ports"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// MockAccountRepository is a mock type for the AccountRepositoryFacade interface
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account *domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockAccountRepository) UpdateMonthlyBudget(ctx context.Context, accountID int64, monthlyBudget int64) error {
	return m.Called(ctx, accountID, monthlyBudget).Error(0)
}

func (m *MockAccountRepository) UpdatePasswordHash(ctx context.Context, accountID int64, passwordHash string) error {
	return m.Called(ctx, accountID, passwordHash).Error(0)
}

func (m *MockAccountRepository) UpdateName(ctx context.Context, accountID int64, name string) error {
	return m.Called(ctx, accountID, name).Error(0)
}

func (m *MockAccountRepository) UpdateAvatarURL(ctx context.Context, accountID int64, avatarURL string) error {
	return m.Called(ctx, accountID, avatarURL).Error(0)
}

func (m *MockAccountRepository) UpdateRole(ctx context.Context, accountID int64, role domain.Role) error {
	return m.Called(ctx, accountID, role).Error(0)
}

var _ portsrepo.AccountRepositoryFacade = (*MockAccountRepository)(nil)

// MockExpenseRepository is a mock type for the ExpenseRepositoryFacade interface
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListExpenses(ctx context.Context, ownerIDs []int64, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	args := m.Called(ctx, ownerIDs, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

var _ portsrepo.ExpenseRepositoryFacade = (*MockExpenseRepository)(nil)

// MockLedgerTx records the writes issued inside a transaction.
type MockLedgerTx struct {
	mock.Mock
}

func (m *MockLedgerTx) FindExpenseForUpdate(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	args := m.Called(ctx, expenseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockLedgerTx) InsertExpense(ctx context.Context, expense *domain.Expense) error {
	return m.Called(ctx, expense).Error(0)
}

func (m *MockLedgerTx) UpdateExpense(ctx context.Context, expense *domain.Expense) error {
	return m.Called(ctx, expense).Error(0)
}

func (m *MockLedgerTx) DeleteExpense(ctx context.Context, expenseID int64) error {
	return m.Called(ctx, expenseID).Error(0)
}

func (m *MockLedgerTx) DeleteExpensesByOwner(ctx context.Context, accountID int64) error {
	return m.Called(ctx, accountID).Error(0)
}

func (m *MockLedgerTx) AdjustSpending(ctx context.Context, accountID int64, delta int64) error {
	return m.Called(ctx, accountID, delta).Error(0)
}

func (m *MockLedgerTx) ResetBudgetPeriod(ctx context.Context, accountID int64, monthlyBudget int64, periodStart string) error {
	return m.Called(ctx, accountID, monthlyBudget, periodStart).Error(0)
}

func (m *MockLedgerTx) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockLedgerTx) InsertAccount(ctx context.Context, account *domain.Account) error {
	return m.Called(ctx, account).Error(0)
}

func (m *MockLedgerTx) SetPairedAccount(ctx context.Context, accountID int64, pairedAccountID int64) error {
	return m.Called(ctx, accountID, pairedAccountID).Error(0)
}

func (m *MockLedgerTx) ClearPairReferences(ctx context.Context, accountID int64) error {
	return m.Called(ctx, accountID).Error(0)
}

func (m *MockLedgerTx) DeleteAccount(ctx context.Context, accountID int64) error {
	return m.Called(ctx, accountID).Error(0)
}

var _ portsrepo.LedgerTx = (*MockLedgerTx)(nil)

// fakeTxManager hands the same MockLedgerTx to every unit of work and
// records whether each one committed.
type fakeTxManager struct {
	tx        *MockLedgerTx
	committed int
	rolled    int
}

func (f *fakeTxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx portsrepo.LedgerTx) error) error {
	if err := fn(ctx, f.tx); err != nil {
		f.rolled++
		return err
	}
	f.committed++
	return nil
}

var _ portsrepo.TransactionManager = (*fakeTxManager)(nil)

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	events []domain.LedgerEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event domain.LedgerEvent) error {
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

var _ ports.EventPublisher = (*recordingPublisher)(nil)

func int64Ptr(v int64) *int64 { return &v }
