package services

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// BudgetSvc defines operations on budget figures and periods
type BudgetSvc interface {
	// CloseMonth resets budget and spending for the caller and then the partner.
	CloseMonth(ctx context.Context, caller domain.Identity, newMonthlyBudget int64) (*domain.CloseMonthSummary, error)

	// UpdateMonthlyBudget changes the budget figure of one account within the current period.
	UpdateMonthlyBudget(ctx context.Context, accountID int64, monthlyBudget int64) error
}
