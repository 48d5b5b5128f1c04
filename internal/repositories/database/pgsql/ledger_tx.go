package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/household_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxTransactionManager runs units of work in a pgx transaction. Entries read
// for mutation are locked with SELECT ... FOR UPDATE.
type PgxTransactionManager struct {
	BaseRepository
}

func newPgxTransactionManager(pool *pgxpool.Pool) *PgxTransactionManager {
	return &PgxTransactionManager{BaseRepository{Pool: pool}}
}

var _ portsrepo.TransactionManager = (*PgxTransactionManager)(nil)

// WithinTransaction commits when fn returns nil and rolls back otherwise.
func (m *PgxTransactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx portsrepo.LedgerTx) error) (err error) {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = m.Rollback(ctx, tx)
			panic(p)
		}
		if err != nil {
			if rbErr := m.Rollback(ctx, tx); rbErr != nil {
				err = fmt.Errorf("%w (rollback: %v)", err, rbErr)
			}
		}
	}()

	if err = fn(ctx, &pgxLedgerTx{tx: tx}); err != nil {
		return err
	}
	return m.Commit(ctx, tx)
}

type pgxLedgerTx struct {
	tx pgx.Tx
}

var _ portsrepo.LedgerTx = (*pgxLedgerTx)(nil)

func (t *pgxLedgerTx) FindExpenseForUpdate(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	return findExpense(ctx, t.tx, expenseID, true)
}

func (t *pgxLedgerTx) InsertExpense(ctx context.Context, expense *domain.Expense) error {
	if expense.CreatedAt.IsZero() {
		now := time.Now()
		expense.CreatedAt = now
		expense.LastUpdatedAt = now
	}
	m := mapping.ToModelExpense(*expense)
	query := `
		INSERT INTO expenses (account_id, title, amount, category, expense_date, attribution, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5::date, $6, $7, $8)
		RETURNING id`
	err := t.tx.QueryRow(ctx, query,
		m.AccountID, m.Title, m.Amount, m.Category, m.Date, m.Attribution, m.CreatedAt, m.LastUpdatedAt,
	).Scan(&expense.ExpenseID)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return nil
}

func (t *pgxLedgerTx) UpdateExpense(ctx context.Context, expense *domain.Expense) error {
	m := mapping.ToModelExpense(*expense)
	query := `
		UPDATE expenses
		SET account_id = $1, title = $2, amount = $3, category = $4, expense_date = $5::date, attribution = $6, updated_at = $7
		WHERE id = $8`
	tag, err := t.tx.Exec(ctx, query,
		m.AccountID, m.Title, m.Amount, m.Category, m.Date, m.Attribution, m.LastUpdatedAt, m.ExpenseID)
	if err != nil {
		return fmt.Errorf("failed to update expense %d: %w", m.ExpenseID, err)
	}
	return requireAffected(tag, "expense", m.ExpenseID)
}

func (t *pgxLedgerTx) DeleteExpense(ctx context.Context, expenseID int64) error {
	tag, err := t.tx.Exec(ctx, `DELETE FROM expenses WHERE id = $1`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %d: %w", expenseID, err)
	}
	return requireAffected(tag, "expense", expenseID)
}

func (t *pgxLedgerTx) DeleteExpensesByOwner(ctx context.Context, accountID int64) error {
	if _, err := t.tx.Exec(ctx, `DELETE FROM expenses WHERE account_id = $1`, accountID); err != nil {
		return fmt.Errorf("failed to delete expenses of account %d: %w", accountID, err)
	}
	return nil
}

func (t *pgxLedgerTx) AdjustSpending(ctx context.Context, accountID int64, delta int64) error {
	query := `
		UPDATE accounts SET current_spending = GREATEST(0, current_spending + $1), updated_at = $2
		WHERE id = $3 AND current_spending <= $4 - GREATEST($1, 0)`
	tag, err := t.tx.Exec(ctx, query, delta, time.Now(), accountID, domain.MaxSpending)
	if err != nil {
		return fmt.Errorf("failed to adjust spending of account %d: %w", accountID, err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}
	// Nothing matched: either the account is gone or the increment would pass MaxSpending.
	if _, err := t.FindAccountByID(ctx, accountID); err != nil {
		return err
	}
	return fmt.Errorf("%w: spending of account %d would exceed %d", apperrors.ErrValidation, accountID, domain.MaxSpending)
}

func (t *pgxLedgerTx) ResetBudgetPeriod(ctx context.Context, accountID int64, monthlyBudget int64, periodStart string) error {
	query := `
		UPDATE accounts
		SET monthly_budget = $1, current_spending = 0, budget_period_start = $2::date, updated_at = $3
		WHERE id = $4`
	tag, err := t.tx.Exec(ctx, query, monthlyBudget, periodStart, time.Now(), accountID)
	if err != nil {
		return fmt.Errorf("failed to reset budget period of account %d: %w", accountID, err)
	}
	return requireAffected(tag, "account", accountID)
}

func (t *pgxLedgerTx) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	return findAccount(ctx, t.tx, accountID, true)
}

func (t *pgxLedgerTx) InsertAccount(ctx context.Context, account *domain.Account) error {
	return insertAccount(ctx, t.tx, account)
}

func (t *pgxLedgerTx) SetPairedAccount(ctx context.Context, accountID int64, pairedAccountID int64) error {
	tag, err := t.tx.Exec(ctx, `UPDATE accounts SET paired_account_id = $1, updated_at = $2 WHERE id = $3`,
		pairedAccountID, time.Now(), accountID)
	if err != nil {
		return fmt.Errorf("failed to pair account %d: %w", accountID, err)
	}
	return requireAffected(tag, "account", accountID)
}

func (t *pgxLedgerTx) ClearPairReferences(ctx context.Context, accountID int64) error {
	_, err := t.tx.Exec(ctx, `UPDATE accounts SET paired_account_id = NULL, updated_at = $1 WHERE paired_account_id = $2`,
		time.Now(), accountID)
	if err != nil {
		return fmt.Errorf("failed to unpair references to account %d: %w", accountID, err)
	}
	return nil
}

func (t *pgxLedgerTx) DeleteAccount(ctx context.Context, accountID int64) error {
	tag, err := t.tx.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account %d: %w", accountID, err)
	}
	return requireAffected(tag, "account", accountID)
}
