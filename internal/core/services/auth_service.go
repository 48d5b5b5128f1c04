package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/platform/config"
	"github.com/SscSPs/household_ledger/internal/utils"
	"google.golang.org/api/idtoken"
)

// tokenService issues the HS256 access tokens verified by middleware.AuthMiddleware.
type tokenService struct {
	cfg *config.Config
}

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// GenerateAccessToken creates a new JWT access token for the given account.
func (s *tokenService) GenerateAccessToken(ctx context.Context, account *domain.Account) (string, time.Time, error) {
	token, expiresAt, err := utils.GenerateJWT(account, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign access token: %w", err)
	}
	return token, expiresAt, nil
}

// IDTokenValidator matches idtoken.Validate.
type IDTokenValidator func(ctx context.Context, idToken string, audience string) (*idtoken.Payload, error)

// googleIDTokenVerifier checks ID tokens minted by Google for this application's client ID.
type googleIDTokenVerifier struct {
	clientID string
	validate IDTokenValidator
}

// NewGoogleIDTokenVerifier returns nil when no client ID is configured.
func NewGoogleIDTokenVerifier(clientID string, validate IDTokenValidator) portssvc.GoogleIDTokenVerifier {
	if clientID == "" {
		return nil
	}
	if validate == nil {
		validate = idtoken.Validate
	}
	return &googleIDTokenVerifier{clientID: clientID, validate: validate}
}

func (v *googleIDTokenVerifier) VerifyIDToken(ctx context.Context, idToken string) (string, error) {
	payload, err := v.validate(ctx, idToken, v.clientID)
	if err != nil {
		return "", fmt.Errorf("validate google id token: %w", err)
	}
	email, _ := payload.Claims["email"].(string)
	verified, _ := payload.Claims["email_verified"].(bool)
	if email == "" || !verified {
		return "", errors.New("google account has no verified email")
	}
	return email, nil
}
