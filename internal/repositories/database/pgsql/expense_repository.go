package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/household_ledger/internal/models"
	"github.com/SscSPs/household_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const expenseColumns = `id, account_id, title, amount, category, to_char(expense_date, 'YYYY-MM-DD'), attribution, created_at, updated_at`

type PgxExpenseRepository struct {
	BaseRepository
}

func newPgxExpenseRepository(pool *pgxpool.Pool) *PgxExpenseRepository {
	return &PgxExpenseRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.ExpenseRepositoryFacade = (*PgxExpenseRepository)(nil)

func scanExpense(row pgx.Row) (*domain.Expense, error) {
	var m models.Expense
	err := row.Scan(
		&m.ExpenseID,
		&m.AccountID,
		&m.Title,
		&m.Amount,
		&m.Category,
		&m.Date,
		&m.Attribution,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	expense := mapping.ToDomainExpense(m)
	return &expense, nil
}

func findExpense(ctx context.Context, q querier, expenseID int64, lock bool) (*domain.Expense, error) {
	query := `SELECT ` + expenseColumns + ` FROM expenses WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}
	expense, err := scanExpense(q.QueryRow(ctx, query, expenseID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: expense %d", apperrors.ErrNotFound, expenseID)
		}
		return nil, fmt.Errorf("failed to find expense %d: %w", expenseID, err)
	}
	return expense, nil
}

// FindExpenseByID retrieves a specific ledger entry.
func (r *PgxExpenseRepository) FindExpenseByID(ctx context.Context, expenseID int64) (*domain.Expense, error) {
	return findExpense(ctx, r.Pool, expenseID, false)
}

// ListExpenses retrieves the entries owned by any of ownerIDs, newest ID first.
func (r *PgxExpenseRepository) ListExpenses(ctx context.Context, ownerIDs []int64, filter domain.ExpenseFilter) ([]domain.Expense, error) {
	expenses := []domain.Expense{}
	if len(ownerIDs) == 0 {
		return expenses, nil
	}

	var sb strings.Builder
	args := []any{ownerIDs}
	sb.WriteString(`SELECT ` + expenseColumns + ` FROM expenses WHERE account_id = ANY($1)`)
	if prefix := filter.MonthPrefix(); prefix != "" {
		args = append(args, prefix)
		fmt.Fprintf(&sb, ` AND to_char(expense_date, 'YYYY-MM') = $%d`, len(args))
	}
	if filter.From != "" {
		args = append(args, filter.From)
		fmt.Fprintf(&sb, ` AND expense_date >= $%d::date`, len(args))
	}
	if filter.To != "" {
		args = append(args, filter.To)
		fmt.Fprintf(&sb, ` AND expense_date <= $%d::date`, len(args))
	}
	sb.WriteString(` ORDER BY id DESC`)

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		expense, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense row: %w", err)
		}
		expenses = append(expenses, *expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expense rows: %w", err)
	}
	return expenses, nil
}
