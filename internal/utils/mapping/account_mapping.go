package mapping

import (
	"database/sql"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	m := models.Account{
		AccountID:         d.AccountID,
		Email:             d.Email,
		Name:              d.Name,
		PasswordHash:      d.PasswordHash,
		MonthlyBudget:     d.MonthlyBudget,
		CurrentSpending:   d.CurrentSpending,
		BudgetPeriodStart: d.BudgetPeriodStart,
		Role:              string(d.Role),
		AuditFields:       ToModelAuditFields(d.AuditFields),
	}
	if d.AvatarURL != nil {
		m.AvatarURL = sql.NullString{String: *d.AvatarURL, Valid: true}
	}
	if d.PairedAccountID != nil {
		m.PairedAccountID = sql.NullInt64{Int64: *d.PairedAccountID, Valid: true}
	}
	return m
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	d := domain.Account{
		AccountID:         m.AccountID,
		Email:             m.Email,
		Name:              m.Name,
		PasswordHash:      m.PasswordHash,
		MonthlyBudget:     m.MonthlyBudget,
		CurrentSpending:   m.CurrentSpending,
		BudgetPeriodStart: m.BudgetPeriodStart,
		Role:              domain.Role(m.Role),
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
	if m.AvatarURL.Valid {
		avatar := m.AvatarURL.String
		d.AvatarURL = &avatar
	}
	if m.PairedAccountID.Valid {
		paired := m.PairedAccountID.Int64
		d.PairedAccountID = &paired
	}
	return d
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
