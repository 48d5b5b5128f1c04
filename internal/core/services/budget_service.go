package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
)

type budgetService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	accountRepo portsrepo.AccountWriter
}

// NewBudgetService creates the budget service.
func NewBudgetService(txManager portsrepo.TransactionManager, accountRepo portsrepo.AccountWriter, options ...ServiceOption) portssvc.BudgetSvc {
	svc := &budgetService{
		txManager:   txManager,
		accountRepo: accountRepo,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.BudgetSvc = (*budgetService)(nil)

// CloseMonth resets the caller first and the partner second, each in its own
// transaction. A partner failure is reported but the caller's reset stays committed.
func (s *budgetService) CloseMonth(ctx context.Context, caller domain.Identity, newMonthlyBudget int64) (*domain.CloseMonthSummary, error) {
	if newMonthlyBudget < 0 {
		return nil, fmt.Errorf("%w: newMonthlyBudget must be a non-negative integer", apperrors.ErrValidation)
	}

	summary := &domain.CloseMonthSummary{
		MonthlyBudget:     newMonthlyBudget,
		BudgetPeriodStart: domain.FormatDate(s.clock()),
		AccountIDs:        []int64{caller.AccountID},
	}

	if err := s.resetPeriod(ctx, caller.AccountID, summary); err != nil {
		s.LogError(ctx, err, "Failed to close month for caller")
		return nil, passThrough("close month", err, apperrors.ErrNotFound)
	}
	s.publish(ctx, domain.LedgerEvent{Type: domain.EventMonthClosed, AccountID: caller.AccountID, Amount: newMonthlyBudget})

	if caller.PairedAccountID != nil {
		partnerID := *caller.PairedAccountID
		if err := s.resetPeriod(ctx, partnerID, summary); err != nil {
			s.LogError(ctx, err, "Failed to close month for partner; caller reset remains committed",
				slog.Int64("partner_id", partnerID))
			return nil, storageFailure(fmt.Sprintf("close month for partner %d", partnerID), err)
		}
		summary.AccountIDs = append(summary.AccountIDs, partnerID)
		s.publish(ctx, domain.LedgerEvent{Type: domain.EventMonthClosed, AccountID: partnerID, Amount: newMonthlyBudget})
	}

	s.LogInfo(ctx, "Month closed",
		slog.Int64("monthly_budget", newMonthlyBudget),
		slog.String("period_start", summary.BudgetPeriodStart),
		slog.Int("accounts", len(summary.AccountIDs)))
	return summary, nil
}

func (s *budgetService) resetPeriod(ctx context.Context, accountID int64, summary *domain.CloseMonthSummary) error {
	return s.txManager.WithinTransaction(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		if err := tx.ResetBudgetPeriod(ctx, accountID, summary.MonthlyBudget, summary.BudgetPeriodStart); err != nil {
			return fmt.Errorf("reset budget period of account %d: %w", accountID, err)
		}
		return nil
	})
}

func (s *budgetService) UpdateMonthlyBudget(ctx context.Context, accountID int64, monthlyBudget int64) error {
	if monthlyBudget < 0 {
		return fmt.Errorf("%w: monthlyBudget must be a non-negative integer", apperrors.ErrValidation)
	}
	if err := s.accountRepo.UpdateMonthlyBudget(ctx, accountID, monthlyBudget); err != nil {
		s.LogError(ctx, err, "Failed to update monthly budget", slog.Int64("account_id", accountID))
		return passThrough("update monthly budget", err, apperrors.ErrNotFound)
	}
	s.LogInfo(ctx, "Monthly budget updated", slog.Int64("account_id", accountID), slog.Int64("monthly_budget", monthlyBudget))
	return nil
}
