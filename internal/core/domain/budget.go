package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// BudgetOverview summarises a household's position in the current budget period.
type BudgetOverview struct {
	MonthlyBudget    int64           `json:"monthlyBudget"`
	CombinedSpending int64           `json:"combinedSpending"`
	Remaining        int64           `json:"remaining"` // Negative when over budget
	UsedPercent      decimal.Decimal `json:"usedPercent"`
}

// CloseMonthSummary describes the outcome of a month close.
type CloseMonthSummary struct {
	MonthlyBudget     int64
	BudgetPeriodStart string
	AccountIDs        []int64
}

// LedgerEventType names a committed change to the ledger or the budget.
type LedgerEventType string

const (
	EventExpenseAdded   LedgerEventType = "expense.added"
	EventExpenseEdited  LedgerEventType = "expense.edited"
	EventExpenseDeleted LedgerEventType = "expense.deleted"
	EventMonthClosed    LedgerEventType = "budget.month_closed"
)

// LedgerEvent is published after a ledger mutation commits.
type LedgerEvent struct {
	Type       LedgerEventType `json:"type"`
	AccountID  int64           `json:"accountId"`
	ExpenseID  int64           `json:"expenseId,omitempty"`
	Amount     int64           `json:"amount,omitempty"`
	OccurredAt time.Time       `json:"occurredAt"`
}
