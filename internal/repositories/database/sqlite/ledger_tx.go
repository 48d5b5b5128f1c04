package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/household_ledger/internal/utils/mapping"
)

// SQLiteTransactionManager runs units of work on the shared handle. The pool
// holds a single connection, so an open transaction excludes every other writer.
type SQLiteTransactionManager struct {
	BaseRepository
}

func newSQLiteTransactionManager(db *sql.DB) *SQLiteTransactionManager {
	return &SQLiteTransactionManager{BaseRepository{DB: db}}
}

var _ portsrepo.TransactionManager = (*SQLiteTransactionManager)(nil)

// WithinTransaction commits when fn returns nil and rolls back otherwise.
func (m *SQLiteTransactionManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context, tx portsrepo.LedgerTx) error) (err error) {
	tx, err := m.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if p := recover(); p != nil {
			_ = m.Rollback(tx)
			panic(p)
		}
		if err != nil {
			if rbErr := m.Rollback(tx); rbErr != nil {
				err = fmt.Errorf("%w (rollback: %v)", err, rbErr)
			}
		}
	}()

	if err = fn(ctx, &sqliteLedgerTx{tx: tx}); err != nil {
		return err
	}
	return m.Commit(tx)
}

type sqliteLedgerTx struct {
	tx *sql.Tx
}

var _ portsrepo.LedgerTx = (*sqliteLedgerTx)(nil)

func (t *sqliteLedgerTx) FindExpenseForUpdate(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	return findExpense(ctx, t.tx, expenseID)
}

func (t *sqliteLedgerTx) InsertExpense(ctx context.Context, expense *domain.Expense) error {
	if expense.CreatedAt.IsZero() {
		now := time.Now()
		expense.CreatedAt = now
		expense.LastUpdatedAt = now
	}
	m := mapping.ToModelExpense(*expense)
	query := `
		INSERT INTO expenses (account_id, title, amount, category, expense_date, attribution, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := t.tx.ExecContext(ctx, query,
		m.AccountID, m.Title, m.Amount, m.Category, m.Date, m.Attribution,
		formatTime(m.CreatedAt), formatTime(m.LastUpdatedAt))
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new expense id: %w", err)
	}
	expense.ExpenseID = id
	return nil
}

func (t *sqliteLedgerTx) UpdateExpense(ctx context.Context, expense *domain.Expense) error {
	m := mapping.ToModelExpense(*expense)
	query := `
		UPDATE expenses
		SET account_id = ?, title = ?, amount = ?, category = ?, expense_date = ?, attribution = ?, updated_at = ?
		WHERE id = ?`
	res, err := t.tx.ExecContext(ctx, query,
		m.AccountID, m.Title, m.Amount, m.Category, m.Date, m.Attribution,
		formatTime(m.LastUpdatedAt), m.ExpenseID)
	if err != nil {
		return fmt.Errorf("failed to update expense %d: %w", m.ExpenseID, err)
	}
	return requireAffected(res, "expense", m.ExpenseID)
}

func (t *sqliteLedgerTx) DeleteExpense(ctx context.Context, expenseID int64) error {
	res, err := t.tx.ExecContext(ctx, `DELETE FROM expenses WHERE id = ?`, expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %d: %w", expenseID, err)
	}
	return requireAffected(res, "expense", expenseID)
}

func (t *sqliteLedgerTx) DeleteExpensesByOwner(ctx context.Context, accountID int64) error {
	if _, err := t.tx.ExecContext(ctx, `DELETE FROM expenses WHERE account_id = ?`, accountID); err != nil {
		return fmt.Errorf("failed to delete expenses of account %d: %w", accountID, err)
	}
	return nil
}

func (t *sqliteLedgerTx) AdjustSpending(ctx context.Context, accountID int64, delta int64) error {
	query := `
		UPDATE accounts SET current_spending = MAX(0, current_spending + ?), updated_at = ?
		WHERE id = ? AND current_spending <= ? - MAX(?, 0)`
	res, err := t.tx.ExecContext(ctx, query, delta, formatTime(time.Now()), accountID, domain.MaxSpending, delta)
	if err != nil {
		return fmt.Errorf("failed to adjust spending of account %d: %w", accountID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected for account %d: %w", accountID, err)
	}
	if n > 0 {
		return nil
	}
	// Nothing matched: either the account is gone or the increment would pass MaxSpending.
	if _, err := findAccount(ctx, t.tx, accountID); err != nil {
		return err
	}
	return fmt.Errorf("%w: spending of account %d would exceed %d", apperrors.ErrValidation, accountID, domain.MaxSpending)
}

func (t *sqliteLedgerTx) ResetBudgetPeriod(ctx context.Context, accountID int64, monthlyBudget int64, periodStart string) error {
	query := `
		UPDATE accounts
		SET monthly_budget = ?, current_spending = 0, budget_period_start = ?, updated_at = ?
		WHERE id = ?`
	res, err := t.tx.ExecContext(ctx, query, monthlyBudget, periodStart, formatTime(time.Now()), accountID)
	if err != nil {
		return fmt.Errorf("failed to reset budget period of account %d: %w", accountID, err)
	}
	return requireAffected(res, "account", accountID)
}

func (t *sqliteLedgerTx) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	return findAccount(ctx, t.tx, accountID)
}

func (t *sqliteLedgerTx) InsertAccount(ctx context.Context, account *domain.Account) error {
	return insertAccount(ctx, t.tx, account)
}

func (t *sqliteLedgerTx) SetPairedAccount(ctx context.Context, accountID int64, pairedAccountID int64) error {
	res, err := t.tx.ExecContext(ctx, `UPDATE accounts SET paired_account_id = ?, updated_at = ? WHERE id = ?`,
		pairedAccountID, formatTime(time.Now()), accountID)
	if err != nil {
		return fmt.Errorf("failed to pair account %d: %w", accountID, err)
	}
	return requireAffected(res, "account", accountID)
}

func (t *sqliteLedgerTx) ClearPairReferences(ctx context.Context, accountID int64) error {
	_, err := t.tx.ExecContext(ctx, `UPDATE accounts SET paired_account_id = NULL, updated_at = ? WHERE paired_account_id = ?`,
		formatTime(time.Now()), accountID)
	if err != nil {
		return fmt.Errorf("failed to unpair references to account %d: %w", accountID, err)
	}
	return nil
}

func (t *sqliteLedgerTx) DeleteAccount(ctx context.Context, accountID int64) error {
	res, err := t.tx.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, accountID)
	if err != nil {
		return fmt.Errorf("failed to delete account %d: %w", accountID, err)
	}
	return requireAffected(res, "account", accountID)
}
