package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/utils"
	"github.com/SscSPs/household_ledger/internal/utils/accounting"
)

type accountService struct {
	BaseService
	accountRepo    portsrepo.AccountRepositoryFacade
	txManager      portsrepo.TransactionManager
	googleVerifier portssvc.GoogleIDTokenVerifier
	adminEmails    map[string]struct{}
}

// AccountServiceParams groups the collaborators of the account service.
type AccountServiceParams struct {
	AccountRepo portsrepo.AccountRepositoryFacade
	TxManager   portsrepo.TransactionManager
	// GoogleVerifier is optional; Google sign-in is rejected without it.
	GoogleVerifier portssvc.GoogleIDTokenVerifier
	// AdminEmails are granted the admin role when they register.
	AdminEmails []string
}

// NewAccountService creates the account service.
func NewAccountService(params AccountServiceParams, options ...ServiceOption) portssvc.AccountSvcFacade {
	svc := &accountService{
		accountRepo:    params.AccountRepo,
		txManager:      params.TxManager,
		googleVerifier: params.GoogleVerifier,
		adminEmails:    make(map[string]struct{}, len(params.AdminEmails)),
	}
	for _, email := range params.AdminEmails {
		svc.adminEmails[email] = struct{}{}
	}
	svc.apply(options)
	return svc
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// newAccount validates a registration request and builds the account to persist.
func (s *accountService) newAccount(req dto.RegisterRequest) (*domain.Account, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || req.Password == "" || req.MonthlyBudget == nil {
		return nil, fmt.Errorf("%w: missing required fields", apperrors.ErrValidation)
	}
	if *req.MonthlyBudget < 0 {
		return nil, fmt.Errorf("%w: monthlyBudget must be a non-negative integer", apperrors.ErrValidation)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	role := domain.RoleUser
	if _, ok := s.adminEmails[email]; ok {
		role = domain.RoleAdmin
	}
	now := s.clock()
	return &domain.Account{
		Email:             email,
		Name:              name,
		PasswordHash:      hash,
		MonthlyBudget:     *req.MonthlyBudget,
		BudgetPeriodStart: domain.FormatDate(now),
		Role:              role,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}, nil
}

func (s *accountService) Register(ctx context.Context, req dto.RegisterRequest) (*domain.Account, error) {
	account, err := s.newAccount(req)
	if err != nil {
		return nil, err
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			s.LogInfo(ctx, "Registration rejected for existing email")
			return nil, err
		}
		s.LogError(ctx, err, "Failed to save account")
		return nil, storageFailure("register account", err)
	}

	s.LogInfo(ctx, "Account registered", slog.Int64("account_id", account.AccountID), slog.String("role", string(account.Role)))
	return account, nil
}

func (s *accountService) CreateSpouse(ctx context.Context, caller domain.Identity, req dto.RegisterRequest) (*domain.Account, *domain.Account, error) {
	spouse, err := s.newAccount(req)
	if err != nil {
		return nil, nil, err
	}
	spouse.Role = domain.RoleUser

	var creator *domain.Account
	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		current, err := tx.FindAccountByID(ctx, caller.AccountID)
		if err != nil {
			return fmt.Errorf("load creator: %w", err)
		}
		if current.IsPaired() {
			return fmt.Errorf("%w: spouse account already exists", apperrors.ErrForbidden)
		}

		spouse.PairedAccountID = &current.AccountID
		if err := tx.InsertAccount(ctx, spouse); err != nil {
			return fmt.Errorf("insert spouse: %w", err)
		}
		if err := tx.SetPairedAccount(ctx, current.AccountID, spouse.AccountID); err != nil {
			return fmt.Errorf("pair creator: %w", err)
		}
		current.PairedAccountID = &spouse.AccountID
		creator = current
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create spouse account")
		return nil, nil, passThrough("create spouse", err, apperrors.ErrForbidden, apperrors.ErrDuplicate, apperrors.ErrNotFound)
	}

	s.LogInfo(ctx, "Spouse account created", slog.Int64("spouse_id", spouse.AccountID))
	return spouse, creator, nil
}

func (s *accountService) GetAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account", slog.Int64("account_id", accountID))
		}
		return nil, passThrough("get account", err, apperrors.ErrNotFound)
	}
	return account, nil
}

func (s *accountService) GetHousehold(ctx context.Context, accountID int64) (*domain.Household, error) {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	household := &domain.Household{Account: account}
	spendings := []int64{account.CurrentSpending}
	if account.IsPaired() {
		spouse, err := s.accountRepo.FindAccountByID(ctx, *account.PairedAccountID)
		switch {
		case err == nil:
			household.Spouse = spouse
			spendings = append(spendings, spouse.CurrentSpending)
		case errors.Is(err, apperrors.ErrNotFound):
			s.LogInfo(ctx, "Paired account no longer exists", slog.Int64("paired_account_id", *account.PairedAccountID))
		default:
			s.LogError(ctx, err, "Failed to load paired account")
			return nil, storageFailure("get spouse", err)
		}
	}

	household.Budget = accounting.Overview(account.MonthlyBudget, spendings...)
	return household, nil
}

func (s *accountService) Authenticate(ctx context.Context, email, password string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogInfo(ctx, "Login failed: unknown email")
			return nil, apperrors.ErrInvalidCredentials
		}
		s.LogError(ctx, err, "Failed to load account for login")
		return nil, storageFailure("authenticate", err)
	}
	if !utils.CheckPasswordHash(password, account.PasswordHash) {
		s.LogInfo(ctx, "Login failed: password mismatch", slog.Int64("account_id", account.AccountID))
		return nil, apperrors.ErrInvalidCredentials
	}
	return account, nil
}

func (s *accountService) AuthenticateGoogle(ctx context.Context, idToken string) (*domain.Account, error) {
	if s.googleVerifier == nil {
		return nil, fmt.Errorf("%w: google sign-in is not enabled", apperrors.ErrValidation)
	}
	email, err := s.googleVerifier.VerifyIDToken(ctx, idToken)
	if err != nil {
		s.LogInfo(ctx, "Google ID token rejected", slog.String("reason", err.Error()))
		return nil, apperrors.ErrInvalidCredentials
	}
	account, err := s.accountRepo.FindAccountByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, storageFailure("authenticate with google", err)
	}
	return account, nil
}

func (s *accountService) RequestPasswordReset(ctx context.Context, email string) error {
	if strings.TrimSpace(email) == "" {
		return fmt.Errorf("%w: email is required", apperrors.ErrValidation)
	}
	// Delivery is simulated; the response never reveals whether the email exists.
	s.LogInfo(ctx, "Password reset requested", slog.String("email", email))
	return nil
}

func (s *accountService) UpdatePassword(ctx context.Context, accountID int64, password string) error {
	if err := utils.ValidatePasswordLength(password); err != nil {
		return err
	}
	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.accountRepo.UpdatePasswordHash(ctx, accountID, hash); err != nil {
		return passThrough("update password", err, apperrors.ErrNotFound)
	}
	s.LogInfo(ctx, "Password updated", slog.Int64("account_id", accountID))
	return nil
}

func (s *accountService) UpdateName(ctx context.Context, accountID int64, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("%w: valid name is required", apperrors.ErrValidation)
	}
	if err := s.accountRepo.UpdateName(ctx, accountID, name); err != nil {
		return passThrough("update name", err, apperrors.ErrNotFound)
	}
	return nil
}

func (s *accountService) UpdateAvatar(ctx context.Context, accountID int64, avatarURL string) error {
	if err := s.accountRepo.UpdateAvatarURL(ctx, accountID, avatarURL); err != nil {
		return passThrough("update avatar", err, apperrors.ErrNotFound)
	}
	return nil
}
