package models

// Expense is the persisted form of a ledger entry.
type Expense struct {
	ExpenseID   int64  `db:"id"`
	AccountID   int64  `db:"account_id"`
	Title       string `db:"title"`
	Amount      int64  `db:"amount"`
	Category    string `db:"category"`
	Date        string `db:"expense_date"`
	Attribution string `db:"attribution"`
	AuditFields
}
