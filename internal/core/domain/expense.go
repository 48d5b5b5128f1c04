package domain

import (
	"fmt"
	"strings"

	"github.com/SscSPs/household_ledger/internal/apperrors"
)

// Category classifies an expense.
type Category string

const (
	CategoryFood          Category = "food"
	CategoryBills         Category = "bills"
	CategoryTransport     Category = "transport"
	CategoryClothing      Category = "clothing"
	CategoryEntertainment Category = "entertainment"
	CategoryOther         Category = "other"
)

// Categories lists every accepted category.
var Categories = []Category{
	CategoryFood,
	CategoryBills,
	CategoryTransport,
	CategoryClothing,
	CategoryEntertainment,
	CategoryOther,
}

// IsValid checks if the category is one of the known categories.
func (c Category) IsValid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Attribution records which household member an expense was assigned to.
type Attribution string

const (
	AttributionSelf   Attribution = "self"
	AttributionSpouse Attribution = "spouse"
	AttributionShared Attribution = "shared"
)

// IsValid checks if the attribution is one of the known attributions.
func (a Attribution) IsValid() bool {
	switch a {
	case AttributionSelf, AttributionSpouse, AttributionShared:
		return true
	}
	return false
}

// Bounds on ledger figures. MaxSpending leaves room to add two members' counters
// without overflowing int64.
const (
	MaxExpenseAmount int64 = 1_000_000_000_000
	MaxSpending      int64 = 1 << 62
)

// Expense is a single ledger entry owned by one account.
type Expense struct {
	ExpenseID   int64       `json:"id"`
	AccountID   int64       `json:"accountId"` // Owner whose spending counter reflects Amount
	Title       string      `json:"title"`
	Amount      int64       `json:"amount"` // Smallest currency unit, always positive
	Category    Category    `json:"category"`
	Date        string      `json:"date"` // DateLayout
	Attribution Attribution `json:"attribution"`
	AuditFields
}

// Validate checks the user-supplied fields of the expense.
func (e *Expense) Validate() error {
	if strings.TrimSpace(e.Title) == "" {
		return fmt.Errorf("%w: title is required", apperrors.ErrValidation)
	}
	if e.Amount <= 0 {
		return fmt.Errorf("%w: amount must be a positive integer", apperrors.ErrValidation)
	}
	if e.Amount > MaxExpenseAmount {
		return fmt.Errorf("%w: amount must not exceed %d", apperrors.ErrValidation, MaxExpenseAmount)
	}
	if !e.Category.IsValid() {
		return fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, e.Category)
	}
	if !IsValidDate(e.Date) {
		return fmt.Errorf("%w: date must be formatted as YYYY-MM-DD", apperrors.ErrValidation)
	}
	if !e.Attribution.IsValid() {
		return fmt.Errorf("%w: unknown attribution %q", apperrors.ErrValidation, e.Attribution)
	}
	return nil
}

// ExpenseFilter narrows a ledger listing. The zero value matches everything.
type ExpenseFilter struct {
	Year  int
	Month int
	From  string // Inclusive, DateLayout
	To    string // Inclusive, DateLayout
}

// Validate checks that year and month come together and that the range is well formed.
func (f ExpenseFilter) Validate() error {
	if (f.Year == 0) != (f.Month == 0) {
		return fmt.Errorf("%w: year and month must be given together", apperrors.ErrValidation)
	}
	if f.Year != 0 && (f.Year < 1 || f.Year > 9999) {
		return fmt.Errorf("%w: year out of range", apperrors.ErrValidation)
	}
	if f.Month != 0 && (f.Month < 1 || f.Month > 12) {
		return fmt.Errorf("%w: month must be between 1 and 12", apperrors.ErrValidation)
	}
	if f.From != "" && !IsValidDate(f.From) {
		return fmt.Errorf("%w: from must be formatted as YYYY-MM-DD", apperrors.ErrValidation)
	}
	if f.To != "" && !IsValidDate(f.To) {
		return fmt.Errorf("%w: to must be formatted as YYYY-MM-DD", apperrors.ErrValidation)
	}
	if f.From != "" && f.To != "" && f.From > f.To {
		return fmt.Errorf("%w: from must not be after to", apperrors.ErrValidation)
	}
	return nil
}

// MonthPrefix returns the YYYY-MM prefix selected by the filter, or "" when unset.
func (f ExpenseFilter) MonthPrefix() string {
	if f.Year == 0 || f.Month == 0 {
		return ""
	}
	return fmt.Sprintf("%04d-%02d", f.Year, f.Month)
}
