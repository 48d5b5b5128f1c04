package utils

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
)

// HouseholdClaims are the access token claims. The subject is the account ID.
type HouseholdClaims struct {
	PairedAccountID *int64      `json:"pairedAccountId"`
	Email           string      `json:"email"`
	Role            domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// Identity converts the claims into the caller identity used by services.
func (c *HouseholdClaims) Identity() (domain.Identity, error) {
	accountID, err := strconv.ParseInt(c.Subject, 10, 64)
	if err != nil || accountID <= 0 {
		return domain.Identity{}, fmt.Errorf("invalid subject %q", c.Subject)
	}
	return domain.Identity{
		AccountID:       accountID,
		PairedAccountID: c.PairedAccountID,
		Email:           c.Email,
		Role:            c.Role,
	}, nil
}

// GenerateJWT generates a new HS256 access token for the account.
func GenerateJWT(account *domain.Account, secret string, expiryDuration time.Duration, issuer string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(expiryDuration)
	claims := HouseholdClaims{
		PairedAccountID: account.PairedAccountID,
		Email:           account.Email,
		Role:            account.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatInt(account.AccountID, 10),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseAndValidateJWT parses a token string and validates its signature, issuer and expiry.
func ParseAndValidateJWT(tokenString string, secretKey string, issuer string) (*HouseholdClaims, error) {
	claims := &HouseholdClaims{}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if issuer != "" {
		opts = append(opts, jwt.WithIssuer(issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	}, opts...)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("token is invalid")
	}
	return claims, nil
}
