package sqlite

import (
	"database/sql"

	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
)

// NewRepositoryProvider wires the SQLite repositories on one shared handle.
func NewRepositoryProvider(db *sql.DB) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: newSQLiteAccountRepository(db),
		ExpenseRepo: newSQLiteExpenseRepository(db),
		TxManager:   newSQLiteTransactionManager(db),
	}
}
