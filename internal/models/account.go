package models

import "database/sql"

// Account is the persisted form of a household member.
type Account struct {
	AccountID         int64          `db:"id"`
	Email             string         `db:"email"`
	Name              string         `db:"name"`
	PasswordHash      string         `db:"password_hash"`
	AvatarURL         sql.NullString `db:"avatar_url"`
	MonthlyBudget     int64          `db:"monthly_budget"`
	CurrentSpending   int64          `db:"current_spending"`
	PairedAccountID   sql.NullInt64  `db:"paired_account_id"`
	BudgetPeriodStart string         `db:"budget_period_start"`
	Role              string         `db:"role"`
	AuditFields
}
