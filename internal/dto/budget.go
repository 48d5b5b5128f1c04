package dto

import "github.com/SscSPs/household_ledger/internal/core/domain"

// CloseMonthRequest starts a new budget period for the household.
type CloseMonthRequest struct {
	NewMonthlyBudget *int64 `json:"newMonthlyBudget" binding:"required,min=0"`
}

// CloseMonthResponse confirms a month close.
type CloseMonthResponse struct {
	Message           string  `json:"message"`
	MonthlyBudget     int64   `json:"monthlyBudget"`
	BudgetPeriodStart string  `json:"budgetPeriodStart"`
	AccountIDs        []int64 `json:"accountIds"`
}

// ToCloseMonthResponse converts a domain.CloseMonthSummary to a CloseMonthResponse DTO
func ToCloseMonthResponse(s *domain.CloseMonthSummary) CloseMonthResponse {
	return CloseMonthResponse{
		Message:           "Month closed and budget reset",
		MonthlyBudget:     s.MonthlyBudget,
		BudgetPeriodStart: s.BudgetPeriodStart,
		AccountIDs:        s.AccountIDs,
	}
}
