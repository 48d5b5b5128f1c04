package repositories

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// ExpenseReader defines read operations for ledger entries
type ExpenseReader interface {
	// FindExpenseByID retrieves a specific ledger entry.
	FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error)

	// ListExpenses retrieves the entries owned by any of ownerIDs, newest ID first.
	ListExpenses(ctx context.Context, ownerIDs []int64, filter domain.ExpenseFilter) ([]domain.Expense, error)
}

// ExpenseRepositoryFacade combines all expense-related repository interfaces.
// Writes go through LedgerTx so the owner's spending counter moves with them.
type ExpenseRepositoryFacade interface {
	ExpenseReader
}
