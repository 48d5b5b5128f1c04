package accounting

import (
	"fmt"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ResolveOwner maps an attribution to the account whose spending the expense is billed to.
// Shared expenses are billed to the creator. Edits pass allowShared=false since they only
// move entries between the two members.
func ResolveOwner(attribution domain.Attribution, caller domain.Identity, allowShared bool) (int64, error) {
	switch attribution {
	case domain.AttributionSelf:
		return caller.AccountID, nil
	case domain.AttributionSpouse:
		if caller.PairedAccountID == nil {
			return 0, fmt.Errorf("%w: no paired account to attribute the expense to", apperrors.ErrInvalidAttribution)
		}
		return *caller.PairedAccountID, nil
	case domain.AttributionShared:
		if !allowShared {
			return 0, fmt.Errorf("%w: shared is not a valid target when editing an expense", apperrors.ErrInvalidAttribution)
		}
		return caller.AccountID, nil
	default:
		return 0, fmt.Errorf("%w: unknown attribution %q", apperrors.ErrInvalidAttribution, attribution)
	}
}

// Overview computes the household budget position from the shared budget figure and each member's spending.
func Overview(monthlyBudget int64, spendings ...int64) domain.BudgetOverview {
	var combined int64
	for _, s := range spendings {
		combined += s
	}
	used := decimal.Zero
	if monthlyBudget > 0 {
		used = decimal.NewFromInt(combined).Mul(hundred).Div(decimal.NewFromInt(monthlyBudget)).Round(2)
	}
	return domain.BudgetOverview{
		MonthlyBudget:    monthlyBudget,
		CombinedSpending: combined,
		Remaining:        monthlyBudget - combined,
		UsedPercent:      used,
	}
}
