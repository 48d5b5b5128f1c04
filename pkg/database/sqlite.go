package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/url"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// OpenSQLite opens the SQLite database at path with foreign keys enforced.
// Writers are serialized through a single connection.
func OpenSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite path cannot be empty")
	}

	params := url.Values{}
	params.Add("_pragma", "foreign_keys(1)")
	params.Add("_pragma", "busy_timeout(5000)")
	dsn := "file:" + path + "?" + params.Encode()
	if path == ":memory:" {
		dsn = "file::memory:?" + params.Encode()
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}
	slog.Info("Opened SQLite database", slog.String("path", path))
	return db, nil
}

// CloseSQLite closes the SQLite handle.
func CloseSQLite(db *sql.DB) {
	if db != nil {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close SQLite database", slog.String("error", err.Error()))
			return
		}
		slog.Info("SQLite database closed")
	}
}
