package dto

import (
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// ExpenseRequest is the body for adding and editing an expense.
type ExpenseRequest struct {
	Title       string             `json:"title" binding:"required"`
	Amount      int64              `json:"amount" binding:"required,gt=0,lte=1000000000000"`
	Category    domain.Category    `json:"category" binding:"required,category"`
	Date        string             `json:"date" binding:"required,isodate"`
	Attribution domain.Attribution `json:"attribution" binding:"required,attribution"`
}

// ToDomain builds an unowned expense from the request fields.
func (r ExpenseRequest) ToDomain() domain.Expense {
	return domain.Expense{
		Title:       r.Title,
		Amount:      r.Amount,
		Category:    r.Category,
		Date:        r.Date,
		Attribution: r.Attribution,
	}
}

// ListExpensesParams defines query parameters for listing expenses.
type ListExpensesParams struct {
	Year  int    `form:"year" binding:"omitempty,min=1,max=9999"`
	Month int    `form:"month" binding:"omitempty,min=1,max=12"`
	From  string `form:"from" binding:"omitempty,isodate"`
	To    string `form:"to" binding:"omitempty,isodate"`
}

// ToFilter converts the query parameters to a domain filter.
func (p ListExpensesParams) ToFilter() domain.ExpenseFilter {
	return domain.ExpenseFilter{Year: p.Year, Month: p.Month, From: p.From, To: p.To}
}

// ExpenseResponse is the public view of a ledger entry.
type ExpenseResponse struct {
	ID          int64              `json:"id"`
	AccountID   int64              `json:"accountId"`
	Title       string             `json:"title"`
	Amount      int64              `json:"amount"`
	Category    domain.Category    `json:"category"`
	Date        string             `json:"date"`
	Attribution domain.Attribution `json:"attribution"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

// ToExpenseResponse converts a domain.Expense to an ExpenseResponse DTO
func ToExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          e.ExpenseID,
		AccountID:   e.AccountID,
		Title:       e.Title,
		Amount:      e.Amount,
		Category:    e.Category,
		Date:        e.Date,
		Attribution: e.Attribution,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.LastUpdatedAt,
	}
}

// ToExpenseResponses converts a slice, never returning nil so it encodes as [].
func ToExpenseResponses(expenses []domain.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		out[i] = ToExpenseResponse(&expenses[i])
	}
	return out
}
