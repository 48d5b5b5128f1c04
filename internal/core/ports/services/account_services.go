package services

import (
	"context"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/SscSPs/household_ledger/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error)

	// GetHousehold returns the account, its partner if any, and the budget position.
	GetHousehold(ctx context.Context, accountID int64) (*domain.Household, error)
}

// AccountWriterSvc defines write operations for account data
type AccountWriterSvc interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*domain.Account, error)

	// CreateSpouse creates a partner account paired with the caller.
	// It returns the new account and the refreshed caller.
	CreateSpouse(ctx context.Context, caller domain.Identity, req dto.RegisterRequest) (*domain.Account, *domain.Account, error)

	UpdatePassword(ctx context.Context, accountID int64, password string) error
	UpdateName(ctx context.Context, accountID int64, name string) error
	UpdateAvatar(ctx context.Context, accountID int64, avatarURL string) error
}

// AccountAuthSvc defines operations for account authentication
type AccountAuthSvc interface {
	Authenticate(ctx context.Context, email, password string) (*domain.Account, error)

	// AuthenticateGoogle resolves a verified Google ID token to an existing account.
	AuthenticateGoogle(ctx context.Context, idToken string) (*domain.Account, error)

	// RequestPasswordReset records a reset request. Delivery is simulated.
	RequestPasswordReset(ctx context.Context, email string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
	AccountAuthSvc
}
