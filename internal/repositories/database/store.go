// Package database opens the configured backend, applies its migrations and
// exposes the repositories built on it.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/household_ledger/internal/core/ports/repositories"
	"github.com/SscSPs/household_ledger/internal/platform/config"
	"github.com/SscSPs/household_ledger/internal/repositories/database/migrations"
	"github.com/SscSPs/household_ledger/internal/repositories/database/pgsql"
	"github.com/SscSPs/household_ledger/internal/repositories/database/sqlite"
	pkgdb "github.com/SscSPs/household_ledger/pkg/database"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver for migrations
)

// Store is an open database with its repositories.
type Store struct {
	Repos portsrepo.RepositoryProvider
	close func()
}

// Close releases the underlying connections.
func (s *Store) Close() {
	if s != nil && s.close != nil {
		s.close()
	}
}

// Open connects to the backend selected by cfg.DBDriver. When migrate is true
// pending migrations are applied before the repositories are returned.
func Open(ctx context.Context, cfg *config.Config, migrate bool) (*Store, error) {
	switch cfg.DBDriver {
	case config.DriverSQLite:
		return openSQLite(ctx, cfg.SQLitePath, migrate)
	case config.DriverPostgres:
		return openPostgres(ctx, cfg.DatabaseURL, cfg.EnableDBCheck, migrate)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

func openSQLite(ctx context.Context, path string, migrate bool) (*Store, error) {
	db, err := pkgdb.OpenSQLite(ctx, path)
	if err != nil {
		return nil, err
	}
	if migrate {
		if err := migrations.RunSQLite(db); err != nil {
			pkgdb.CloseSQLite(db)
			return nil, fmt.Errorf("migrate sqlite: %w", err)
		}
	}
	return &Store{
		Repos: sqlite.NewRepositoryProvider(db),
		close: func() { pkgdb.CloseSQLite(db) },
	}, nil
}

func openPostgres(ctx context.Context, databaseURL string, ping, migrate bool) (*Store, error) {
	if migrate {
		// Migrations run on a short-lived database/sql handle; the app uses the pool.
		migrationDB, err := sql.Open("pgx", databaseURL)
		if err != nil {
			return nil, fmt.Errorf("open migration connection: %w", err)
		}
		if err := migrationDB.PingContext(ctx); err != nil {
			_ = migrationDB.Close()
			return nil, fmt.Errorf("ping database for migrations: %w", err)
		}
		if err := migrations.RunPostgres(migrationDB); err != nil {
			return nil, fmt.Errorf("migrate postgres: %w", err)
		}
		slog.Info("Postgres migrations complete")
	}

	pool, err := pkgdb.NewPgxPool(ctx, databaseURL, ping)
	if err != nil {
		return nil, err
	}
	return &Store{
		Repos: pgsql.NewRepositoryProvider(pool),
		close: func() { pkgdb.ClosePgxPool(pool) },
	}, nil
}
