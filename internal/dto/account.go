package dto

import (
	"time"

	"github.com/SscSPs/household_ledger/internal/core/domain"
)

// RegisterRequest creates an account. It is also the body for creating a spouse account.
type RegisterRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required"`
	MonthlyBudget *int64 `json:"monthlyBudget" binding:"required,min=0"`
}

// LoginRequest carries email/password credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// GoogleLoginRequest carries a Google ID token obtained by the client.
type GoogleLoginRequest struct {
	IDToken string `json:"idToken" binding:"required"`
}

// ForgotPasswordRequest asks for a password reset email.
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// UpdateBudgetRequest changes the caller's monthly budget without closing the period.
type UpdateBudgetRequest struct {
	MonthlyBudget *int64 `json:"monthlyBudget" binding:"required,min=0"`
}

// UpdatePasswordRequest changes the caller's password.
type UpdatePasswordRequest struct {
	Password string `json:"password" binding:"required,min=6"`
}

// UpdateProfileRequest changes the caller's display name.
type UpdateProfileRequest struct {
	Name string `json:"name" binding:"required"`
}

// AdminResetPasswordRequest sets another account's password.
type AdminResetPasswordRequest struct {
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

// AccountResponse is the public view of an account.
type AccountResponse struct {
	ID                int64       `json:"id"`
	Name              string      `json:"name"`
	Email             string      `json:"email"`
	MonthlyBudget     int64       `json:"monthlyBudget"`
	CurrentSpending   int64       `json:"currentSpending"`
	PairedAccountID   *int64      `json:"pairedAccountId"`
	BudgetPeriodStart string      `json:"budgetPeriodStart"`
	AvatarURL         *string     `json:"avatarUrl"`
	Role              domain.Role `json:"role"`
}

// ToAccountResponse converts a domain.Account to an AccountResponse DTO
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		ID:                a.AccountID,
		Name:              a.Name,
		Email:             a.Email,
		MonthlyBudget:     a.MonthlyBudget,
		CurrentSpending:   a.CurrentSpending,
		PairedAccountID:   a.PairedAccountID,
		BudgetPeriodStart: a.BudgetPeriodStart,
		AvatarURL:         a.AvatarURL,
		Role:              a.Role,
	}
}

// AuthResponse is returned by register and the login endpoints.
type AuthResponse struct {
	User      AccountResponse `json:"user"`
	Token     string          `json:"token"`
	ExpiresAt time.Time       `json:"expiresAt"`
}

// SpouseResponse describes a newly created spouse account. Token is a fresh
// access token for the creator that already carries the new pairing.
type SpouseResponse struct {
	AccountResponse
	Token string `json:"token"`
}

// HouseholdResponse is the caller together with their partner and the budget position.
type HouseholdResponse struct {
	User   AccountResponse       `json:"user"`
	Spouse *AccountResponse      `json:"spouse"`
	Budget domain.BudgetOverview `json:"budget"`
}

// ToHouseholdResponse converts a domain.Household to a HouseholdResponse DTO
func ToHouseholdResponse(h *domain.Household) HouseholdResponse {
	resp := HouseholdResponse{
		User:   ToAccountResponse(h.Account),
		Budget: h.Budget,
	}
	if h.Spouse != nil {
		spouse := ToAccountResponse(h.Spouse)
		resp.Spouse = &spouse
	}
	return resp
}

// AvatarResponse returns the public URL of an uploaded avatar.
type AvatarResponse struct {
	Message   string `json:"message"`
	AvatarURL string `json:"avatarUrl"`
}

// AdminAccountResponse is the account listing entry shown to administrators.
type AdminAccountResponse struct {
	ID              int64       `json:"id"`
	Name            string      `json:"name"`
	Email           string      `json:"email"`
	PairedAccountID *int64      `json:"pairedAccountId"`
	Role            domain.Role `json:"role"`
}

// ToAdminAccountResponses converts accounts to their administrative listing form.
func ToAdminAccountResponses(accounts []domain.Account) []AdminAccountResponse {
	out := make([]AdminAccountResponse, len(accounts))
	for i, a := range accounts {
		out[i] = AdminAccountResponse{
			ID:              a.AccountID,
			Name:            a.Name,
			Email:           a.Email,
			PairedAccountID: a.PairedAccountID,
			Role:            a.Role,
		}
	}
	return out
}

// MessageResponse is a plain confirmation.
type MessageResponse struct {
	Message string `json:"message"`
}

// AdminSetRoleRequest grants or revokes the admin role.
type AdminSetRoleRequest struct {
	Role domain.Role `json:"role" binding:"required,oneof=USER ADMIN"`
}
