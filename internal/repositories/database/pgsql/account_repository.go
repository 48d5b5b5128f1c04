package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/household_ledger/internal/models"
	"github.com/SscSPs/household_ledger/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const accountColumns = `id, email, name, password_hash, avatar_url, monthly_budget, current_spending,
	paired_account_id, to_char(budget_period_start, 'YYYY-MM-DD'), role, created_at, updated_at`

type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository{Pool: pool}}
}

var _ portsrepo.AccountRepositoryFacade = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.Email,
		&m.Name,
		&m.PasswordHash,
		&m.AvatarURL,
		&m.MonthlyBudget,
		&m.CurrentSpending,
		&m.PairedAccountID,
		&m.BudgetPeriodStart,
		&m.Role,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

func findAccount(ctx context.Context, q querier, accountID int64, lock bool) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`
	if lock {
		query += ` FOR UPDATE`
	}
	account, err := scanAccount(q.QueryRow(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account %d", apperrors.ErrNotFound, accountID)
		}
		return nil, fmt.Errorf("failed to find account %d: %w", accountID, err)
	}
	return account, nil
}

func insertAccount(ctx context.Context, q querier, account *domain.Account) error {
	if account.CreatedAt.IsZero() {
		now := time.Now()
		account.CreatedAt = now
		account.LastUpdatedAt = now
	}
	m := mapping.ToModelAccount(*account)
	query := `
		INSERT INTO accounts (email, name, password_hash, avatar_url, monthly_budget, current_spending,
			paired_account_id, budget_period_start, role, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8::date, $9, $10, $11)
		RETURNING id`
	err := q.QueryRow(ctx, query,
		m.Email,
		m.Name,
		m.PasswordHash,
		m.AvatarURL,
		m.MonthlyBudget,
		m.CurrentSpending,
		m.PairedAccountID,
		m.BudgetPeriodStart,
		m.Role,
		m.CreatedAt,
		m.LastUpdatedAt,
	).Scan(&account.AccountID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: an account with email %s already exists", apperrors.ErrDuplicate, m.Email)
		}
		return fmt.Errorf("failed to save account %s: %w", m.Email, err)
	}
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	return findAccount(ctx, r.Pool, accountID, false)
}

// FindAccountByEmail retrieves an account by its exact email.
func (r *PgxAccountRepository) FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`
	account, err := scanAccount(r.Pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: account with email %s", apperrors.ErrNotFound, email)
		}
		return nil, fmt.Errorf("failed to find account by email: %w", err)
	}
	return account, nil
}

func (r *PgxAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.Pool.Query(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, *account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// SaveAccount inserts a new account and sets its ID.
func (r *PgxAccountRepository) SaveAccount(ctx context.Context, account *domain.Account) error {
	return insertAccount(ctx, r.Pool, account)
}

func (r *PgxAccountRepository) updateColumn(ctx context.Context, accountID int64, column string, value any) error {
	query := fmt.Sprintf(`UPDATE accounts SET %s = $1, updated_at = $2 WHERE id = $3`, column)
	tag, err := r.Pool.Exec(ctx, query, value, time.Now(), accountID)
	if err != nil {
		return fmt.Errorf("failed to update %s of account %d: %w", column, accountID, err)
	}
	return requireAffected(tag, "account", accountID)
}

func (r *PgxAccountRepository) UpdateMonthlyBudget(ctx context.Context, accountID int64, monthlyBudget int64) error {
	return r.updateColumn(ctx, accountID, "monthly_budget", monthlyBudget)
}

func (r *PgxAccountRepository) UpdatePasswordHash(ctx context.Context, accountID int64, passwordHash string) error {
	return r.updateColumn(ctx, accountID, "password_hash", passwordHash)
}

func (r *PgxAccountRepository) UpdateName(ctx context.Context, accountID int64, name string) error {
	return r.updateColumn(ctx, accountID, "name", name)
}

func (r *PgxAccountRepository) UpdateAvatarURL(ctx context.Context, accountID int64, avatarURL string) error {
	return r.updateColumn(ctx, accountID, "avatar_url", avatarURL)
}

func (r *PgxAccountRepository) UpdateRole(ctx context.Context, accountID int64, role domain.Role) error {
	return r.updateColumn(ctx, accountID, "role", string(role))
}
