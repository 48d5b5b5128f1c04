package repositories

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its ID.
	FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// FindAccountByEmail retrieves an account by its exact email.
	FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error)

	// ListAccounts retrieves every account ordered by ID.
	ListAccounts(ctx context.Context) ([]domain.Account, error)
}

// AccountWriter defines write operations for account data.
// None of these touch current_spending; that counter only moves inside a LedgerTx.
type AccountWriter interface {
	// SaveAccount persists a new account and sets its AccountID.
	SaveAccount(ctx context.Context, account *domain.Account) error

	UpdateMonthlyBudget(ctx context.Context, accountID int64, monthlyBudget int64) error
	UpdatePasswordHash(ctx context.Context, accountID int64, passwordHash string) error
	UpdateName(ctx context.Context, accountID int64, name string) error
	UpdateAvatarURL(ctx context.Context, accountID int64, avatarURL string) error
	UpdateRole(ctx context.Context, accountID int64, role domain.Role) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
