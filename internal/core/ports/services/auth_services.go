package services

import (
	"context"
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// TokenSvcFacade issues access tokens
type TokenSvcFacade interface {
	// GenerateAccessToken signs a token carrying the account's id, pairing, email and role.
	GenerateAccessToken(ctx context.Context, account *domain.Account) (string, time.Time, error)
}

// GoogleIDTokenVerifier validates Google ID tokens
type GoogleIDTokenVerifier interface {
	// VerifyIDToken returns the verified email address carried by the token.
	VerifyIDToken(ctx context.Context, idToken string) (string, error)
}
