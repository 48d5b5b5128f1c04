package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/utils/accounting"
)

// ledgerService is the only writer of current_spending. Every mutation runs the
// entry write and the counter adjustments in one transaction.
type ledgerService struct {
	BaseService
	txManager   portsrepo.TransactionManager
	expenseRepo portsrepo.ExpenseReader
}

// NewLedgerService creates the ledger service.
func NewLedgerService(txManager portsrepo.TransactionManager, expenseRepo portsrepo.ExpenseReader, options ...ServiceOption) portssvc.LedgerSvcFacade {
	svc := &ledgerService{
		txManager:   txManager,
		expenseRepo: expenseRepo,
	}
	svc.apply(options)
	return svc
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// engineErrors are the outcomes callers can act on; anything else is reported as a storage failure.
var engineErrors = []error{
	apperrors.ErrValidation,
	apperrors.ErrInvalidAttribution,
	apperrors.ErrNotFound,
	apperrors.ErrForbidden,
}

func (s *ledgerService) AddExpense(ctx context.Context, caller domain.Identity, req dto.ExpenseRequest) (*domain.Expense, error) {
	expense := req.ToDomain()
	if err := expense.Validate(); err != nil {
		return nil, err
	}

	ownerID, err := accounting.ResolveOwner(expense.Attribution, caller, true)
	if err != nil {
		return nil, err
	}
	now := s.clock()
	expense.AccountID = ownerID
	expense.CreatedAt = now
	expense.LastUpdatedAt = now

	err = s.txManager.WithinTransaction(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		if err := tx.InsertExpense(ctx, &expense); err != nil {
			return fmt.Errorf("insert expense: %w", err)
		}
		if err := tx.AdjustSpending(ctx, ownerID, expense.Amount); err != nil {
			return fmt.Errorf("increment spending of account %d: %w", ownerID, err)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to add expense", slog.Int64("owner_id", ownerID))
		return nil, passThrough("add expense", err, engineErrors...)
	}

	s.LogInfo(ctx, "Expense added", slog.Int64("expense_id", expense.ExpenseID), slog.Int64("owner_id", ownerID), slog.Int64("amount", expense.Amount))
	s.publish(ctx, domain.LedgerEvent{Type: domain.EventExpenseAdded, AccountID: ownerID, ExpenseID: expense.ExpenseID, Amount: expense.Amount})
	return &expense, nil
}

func (s *ledgerService) EditExpense(ctx context.Context, caller domain.Identity, expenseID int64, req dto.ExpenseRequest) (*domain.Expense, error) {
	updated := req.ToDomain()
	if err := updated.Validate(); err != nil {
		return nil, err
	}

	var previous domain.Expense
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		current, err := tx.FindExpenseForUpdate(ctx, expenseID)
		if err != nil {
			return fmt.Errorf("load expense %d: %w", expenseID, err)
		}
		if !caller.Owns(current.AccountID) {
			return fmt.Errorf("%w: expense %d belongs to another household", apperrors.ErrForbidden, expenseID)
		}
		newOwnerID, err := accounting.ResolveOwner(updated.Attribution, caller, false)
		if err != nil {
			return err
		}
		previous = *current

		if err := tx.AdjustSpending(ctx, current.AccountID, -current.Amount); err != nil {
			return fmt.Errorf("decrement spending of account %d: %w", current.AccountID, err)
		}
		if err := tx.AdjustSpending(ctx, newOwnerID, updated.Amount); err != nil {
			return fmt.Errorf("increment spending of account %d: %w", newOwnerID, err)
		}

		updated.ExpenseID = current.ExpenseID
		updated.AccountID = newOwnerID
		updated.CreatedAt = current.CreatedAt
		updated.LastUpdatedAt = s.clock()
		if err := tx.UpdateExpense(ctx, &updated); err != nil {
			return fmt.Errorf("update expense %d: %w", expenseID, err)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to edit expense", slog.Int64("expense_id", expenseID))
		return nil, passThrough("edit expense", err, engineErrors...)
	}

	s.LogInfo(ctx, "Expense edited",
		slog.Int64("expense_id", expenseID),
		slog.Int64("old_owner_id", previous.AccountID),
		slog.Int64("new_owner_id", updated.AccountID))
	s.publish(ctx, domain.LedgerEvent{Type: domain.EventExpenseEdited, AccountID: updated.AccountID, ExpenseID: expenseID, Amount: updated.Amount})
	return &updated, nil
}

func (s *ledgerService) DeleteExpense(ctx context.Context, caller domain.Identity, expenseID int64) error {
	var deleted domain.Expense
	err := s.txManager.WithinTransaction(ctx, func(ctx context.Context, tx portsrepo.LedgerTx) error {
		current, err := tx.FindExpenseForUpdate(ctx, expenseID)
		if err != nil {
			return fmt.Errorf("load expense %d: %w", expenseID, err)
		}
		if !caller.Owns(current.AccountID) {
			return fmt.Errorf("%w: expense %d belongs to another household", apperrors.ErrForbidden, expenseID)
		}
		deleted = *current

		if err := tx.AdjustSpending(ctx, current.AccountID, -current.Amount); err != nil {
			return fmt.Errorf("decrement spending of account %d: %w", current.AccountID, err)
		}
		if err := tx.DeleteExpense(ctx, expenseID); err != nil {
			return fmt.Errorf("delete expense %d: %w", expenseID, err)
		}
		return nil
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to delete expense", slog.Int64("expense_id", expenseID))
		return passThrough("delete expense", err, engineErrors...)
	}

	s.LogInfo(ctx, "Expense deleted", slog.Int64("expense_id", expenseID), slog.Int64("owner_id", deleted.AccountID))
	s.publish(ctx, domain.LedgerEvent{Type: domain.EventExpenseDeleted, AccountID: deleted.AccountID, ExpenseID: expenseID, Amount: deleted.Amount})
	return nil
}

func (s *ledgerService) ListExpenses(ctx context.Context, caller domain.Identity, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	expenses, err := s.expenseRepo.ListExpenses(ctx, caller.HouseholdIDs(), filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list expenses")
		return nil, storageFailure("list expenses", err)
	}
	if expenses == nil {
		expenses = []domain.Expense{}
	}

	s.LogDebug(ctx, "Expenses listed", slog.Int("count", len(expenses)))
	return expenses, nil
}
