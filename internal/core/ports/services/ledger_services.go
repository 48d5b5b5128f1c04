package services

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/dto"
)

// LedgerReaderSvc defines read operations over the household ledger
type LedgerReaderSvc interface {
	// ListExpenses returns the entries of the caller and their partner, newest first.
	ListExpenses(ctx context.Context, caller domain.Identity, filter domain.ExpenseFilter) ([]domain.Expense, error)
}

// LedgerWriterSvc defines the ledger mutations. Each one moves the owner's
// spending counter in the same transaction as the entry write.
type LedgerWriterSvc interface {
	AddExpense(ctx context.Context, caller domain.Identity, req dto.ExpenseRequest) (*domain.Expense, error)
	EditExpense(ctx context.Context, caller domain.Identity, expenseID int64, req dto.ExpenseRequest) (*domain.Expense, error)
	DeleteExpense(ctx context.Context, caller domain.Identity, expenseID int64) error
}

// LedgerSvcFacade combines all ledger-related service interfaces
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
