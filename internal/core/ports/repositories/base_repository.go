package repositories

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// LedgerTx is the set of writes available inside one storage transaction.
type LedgerTx interface {
	// FindExpenseForUpdate reads an entry and locks it until the transaction ends.
	FindExpenseForUpdate(ctx context.Context, expenseID int64) (*domain.Expense, error)
	// InsertExpense persists a new entry and sets its ExpenseID and audit fields.
	InsertExpense(ctx context.Context, expense *domain.Expense) error
	// UpdateExpense overwrites every mutable field of an entry, owner included.
	UpdateExpense(ctx context.Context, expense *domain.Expense) error
	DeleteExpense(ctx context.Context, expenseID int64) error
	// DeleteExpensesByOwner removes every entry owned by the account.
	DeleteExpensesByOwner(ctx context.Context, accountID int64) error

	// AdjustSpending adds delta to the account's current spending, flooring the result at zero.
	AdjustSpending(ctx context.Context, accountID int64, delta int64) error
	// ResetBudgetPeriod starts a new budget period with zero spending.
	ResetBudgetPeriod(ctx context.Context, accountID int64, monthlyBudget int64, periodStart string) error

	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)
	// InsertAccount persists a new account and sets its AccountID.
	InsertAccount(ctx context.Context, account *domain.Account) error
	SetPairedAccount(ctx context.Context, accountID int64, pairedAccountID int64) error
	// ClearPairReferences unsets paired_account_id on every account pointing at accountID.
	ClearPairReferences(ctx context.Context, accountID int64) error
	DeleteAccount(ctx context.Context, accountID int64) error
}

// TransactionManager runs a unit of work atomically.
type TransactionManager interface {
	// WithinTransaction commits when fn returns nil and rolls back otherwise.
	WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx LedgerTx) error) error
}
