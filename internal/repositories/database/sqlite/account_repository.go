package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/household_ledger/internal/apperrors"
	"github.com/SscSPs/household_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/household_ledger/internal/models"
	"github.com/SscSPs/household_ledger/internal/utils/mapping"
)

const accountColumns = `id, email, name, password_hash, avatar_url, monthly_budget, current_spending,
	paired_account_id, budget_period_start, role, created_at, updated_at`

// SQLiteAccountRepository stores household members.
type SQLiteAccountRepository struct {
	BaseRepository
}

func newSQLiteAccountRepository(db *sql.DB) *SQLiteAccountRepository {
	return &SQLiteAccountRepository{BaseRepository{DB: db}}
}

var _ portsrepo.AccountRepositoryFacade = (*SQLiteAccountRepository)(nil)

func scanAccount(row rowScanner) (*domain.Account, error) {
	var m models.Account
	var createdAt, updatedAt string
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
	account := mapping.ToDomainAccount(m)
	return &account, nil
}

func findAccount(ctx context.Context, q querier, accountID int64) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = ?`
	account, err := scanAccount(q.QueryRowContext(ctx, query, accountID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
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
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := q.ExecContext(ctx, query,
		m.Email,
		m.Name,
		m.PasswordHash,
		m.AvatarURL,
		m.MonthlyBudget,
		m.CurrentSpending,
		m.PairedAccountID,
		m.BudgetPeriodStart,
		m.Role,
		formatTime(m.CreatedAt),
		formatTime(m.LastUpdatedAt),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: an account with email %s already exists", apperrors.ErrDuplicate, m.Email)
		}
		return fmt.Errorf("failed to save account %s: %w", m.Email, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read new account id: %w", err)
	}
	account.AccountID = id
	return nil
}

// FindAccountByID retrieves an account by its ID.
func (r *SQLiteAccountRepository) FindAccountByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	return findAccount(ctx, r.DB, accountID)
}

// FindAccountByEmail retrieves an account by its exact email.
func (r *SQLiteAccountRepository) FindAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = ?`
	account, err := scanAccount(r.DB.QueryRowContext(ctx, query, email))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: account with email %s", apperrors.ErrNotFound, email)
		}
		return nil, fmt.Errorf("failed to find account by email: %w", err)
	}
	return account, nil
}

func (r *SQLiteAccountRepository) ListAccounts(ctx context.Context) ([]domain.Account, error) {
	rows, err := r.DB.QueryContext(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, *account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating accounts: %w", err)
	}
	return accounts, nil
}

// SaveAccount inserts a new account and sets its ID.
func (r *SQLiteAccountRepository) SaveAccount(ctx context.Context, account *domain.Account) error {
	return insertAccount(ctx, r.DB, account)
}

func (r *SQLiteAccountRepository) updateColumn(ctx context.Context, accountID int64, column string, value any) error {
	query := fmt.Sprintf(`UPDATE accounts SET %s = ?, updated_at = ? WHERE id = ?`, column)
	res, err := r.DB.ExecContext(ctx, query, value, formatTime(time.Now()), accountID)
	if err != nil {
		return fmt.Errorf("failed to update %s of account %d: %w", column, accountID, err)
	}
	return requireAffected(res, "account", accountID)
}

func (r *SQLiteAccountRepository) UpdateMonthlyBudget(ctx context.Context, accountID int64, monthlyBudget int64) error {
	return r.updateColumn(ctx, accountID, "monthly_budget", monthlyBudget)
}

func (r *SQLiteAccountRepository) UpdatePasswordHash(ctx context.Context, accountID int64, passwordHash string) error {
	return r.updateColumn(ctx, accountID, "password_hash", passwordHash)
}

func (r *SQLiteAccountRepository) UpdateName(ctx context.Context, accountID int64, name string) error {
	return r.updateColumn(ctx, accountID, "name", name)
}

func (r *SQLiteAccountRepository) UpdateAvatarURL(ctx context.Context, accountID int64, avatarURL string) error {
	return r.updateColumn(ctx, accountID, "avatar_url", avatarURL)
}

func (r *SQLiteAccountRepository) UpdateRole(ctx context.Context, accountID int64, role domain.Role) error {
	return r.updateColumn(ctx, accountID, "role", string(role))
}
