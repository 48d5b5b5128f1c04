package services

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// AdminAuthorizerSvc answers capability checks for administrative routes
type AdminAuthorizerSvc interface {
	IsAdmin(ctx context.Context, accountID int64) (bool, error)
}

// AdminSvc defines operations reserved for administrators
type AdminSvc interface {
	AdminAuthorizerSvc

	ListAccounts(ctx context.Context) ([]domain.Account, error)
	ResetPassword(ctx context.Context, accountID int64, newPassword string) error

	// DeleteAccount removes the account with its ledger entries and unpairs its partner.
	DeleteAccount(ctx context.Context, accountID int64) error

	SetRole(ctx context.Context, accountID int64, role domain.Role) error
}
