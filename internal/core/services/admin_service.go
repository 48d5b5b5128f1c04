package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/utils"
)

type adminService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryFacade
	txManager   portsrepo.TransactionManager
}

// NewAdminService creates the admin service.
func NewAdminService(accountRepo portsrepo.AccountRepositoryFacade, txManager portsrepo.TransactionManager, options ...ServiceOption) portssvc.AdminSvc {
	svc := &adminService{
		accountRepo: accountRepo,
		txManager:   txManager,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.AdminSvc = (*adminService)(nil)

func (s *adminService) IsAdmin(ctx context.Context, accountID int64) (bool, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, storageFailure("check admin", err)
	}
	return account.CanAdminister(), nil
}

func (s *adminService) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts")
		return nil, storageFailure("list accounts", err)
	}
	return accounts, nil
}

func (s *adminService) ResetPassword(ctx context.Context, accountID int64, newPassword string) error {
	if err := utils.ValidatePasswordLength(newPassword); err != nil {
		return err
	}
	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	if err := s.accountRepo.UpdatePasswordHash(ctx, accountID, hash); err != nil {
		return passThrough("reset password", err, apperrors.ErrNotFound)
	}
	s.LogInfo(ctx, "Password reset by administrator", slog.Int64("target_account_id", accountID))
	return nil
}

// DeleteAccount removes the account, its ledger entries and the partner's reference to it in one transaction.
func (s *adminService) DeleteAccount(ctx context.Context, accountID int64) error {
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		if _, err := tx.FindAccountByID(ctx, accountID); err != nil {
			return fmt.Errorf("load account %d: %w", accountID, err)
		}
		if err := tx.ClearPairReferences(ctx, accountID); err != nil {
			return fmt.Errorf("unpair account %d: %w", accountID, err)
		}
		if err := tx.DeleteExpensesByOwner(ctx, accountID); err != nil {
			return fmt.Errorf("delete expenses of account %d: %w", accountID, err)
		}
		if err := tx.DeleteAccount(ctx, accountID); err != nil {
			return fmt.Errorf("delete account %d: %w", accountID, err)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete account", slog.Int64("target_account_id", accountID))
		return passThrough("delete account", err, apperrors.ErrNotFound)
	}
	s.LogInfo(ctx, "Account deleted by administrator", slog.Int64("target_account_id", accountID))
	return nil
}

func (s *adminService) SetRole(ctx context.Context, accountID int64, role domain.Role) error {
	if !role.IsValid() {
		return fmt.Errorf("%w: unknown role %q", apperrors.ErrValidation, role)
	}
	if err := s.accountRepo.UpdateRole(ctx, accountID, role); err != nil {
		return passThrough("set role", err, apperrors.ErrNotFound)
	}
	s.LogInfo(ctx, "Account role changed", slog.Int64("target_account_id", accountID), slog.String("role", string(role)))
	return nil
}
