package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/household_ledger/internal/models"
	"github.com/SscSPs/household_ledger/internal/utils/mapping"
)

const expenseColumns = `id, account_id, title, amount, category, expense_date, attribution, created_at, updated_at`

// SQLiteExpenseRepository reads ledger entries. Writes go through sqliteLedgerTx.
type SQLiteExpenseRepository struct {
	BaseRepository
}

func newSQLiteExpenseRepository(db *sql.DB) *SQLiteExpenseRepository {
	return &SQLiteExpenseRepository{BaseRepository{DB: db}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*SQLiteExpenseRepository)(nil)

func scanExpense(row rowScanner) (*domain.Expense, error) {
	var m models.Expense
	var createdAt, updatedAt string
	err := row.Scan(
		&m.ExpenseID,
		&m.AccountID,
		&m.Title,
		&m.Amount,
		&m.Category,
		&m.Date,
		&m.Attribution,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}
	if m.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if m.LastUpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	expense := mapping.ToDomainExpense(m)
	return &expense, nil
}

func findExpense(ctx context.Context, q querier, expenseID int64) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = ?`
	expense, err := scanExpense(q.QueryRowContext(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: expense %d", apperrors.ErrNotFound, expenseID)
		}
		return nil, fmt.Errorf("failed to find expense %d: %w", expenseID, err)
	}
	return expense, nil
}

// FindExpenseByID retrieves a specific ledger entry.
func (r *SQLiteExpenseRepository) FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	return findExpense(ctx, r.DB, expenseID)
}

// ListExpenses retrieves the entries owned by any of ownerIDs, newest ID first.
func (r *SQLiteExpenseRepository) ListExpenses(ctx context.Context, ownerIDs []int64, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	expenses := []domain.Expense{}
	if len(ownerIDs) == 0 {
		return expenses, nil
	}

	var sb strings.Builder
	args := make([]any, 0, len(ownerIDs)+3)
	sb.WriteString(`SELECT ` + expenseColumns + ` FROM expenses WHERE account_id IN (` + inPlaceholders(len(ownerIDs)) + `)`)
	for _, id := range ownerIDs {
		args = append(args, id)
	}
	if prefix := filter.MonthPrefix(); prefix != "" {
		sb.WriteString(` AND substr(expense_date, 1, 7) = ?`)
		args = append(args, prefix)
	}
	if filter.From != "" {
		sb.WriteString(` AND expense_date >= ?`)
		args = append(args, filter.From)
	}
	if filter.To != "" {
		sb.WriteString(` AND expense_date <= ?`)
		args = append(args, filter.To)
	}
	sb.WriteString(` ORDER BY id DESC`)

	rows, err := r.DB.QueryContext(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, *expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}
	return expenses, nil
}
