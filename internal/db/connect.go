package db

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/pressly/goose/v3"
)

// FileName is the durable store's file name inside the data directory.
const FileName = "wabot.db"

// Connect opens the durable store under dataDir and applies any pending
// migrations.
func Connect(ctx context.Context, dataDir string) (*sql.DB, error) {
	if dataDir == "" {
		return nil, fmt.Errorf("data directory not set")
	}
	dbPath := filepath.Join(dataDir, FileName)
	conn, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		slog.Error("Failed to open database", "error", err)
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	pragmas := []string{
		"PRAGMA foreign_keys = ON;",
		"PRAGMA journal_mode = WAL;",
		"PRAGMA page_size = 4096;",
		"PRAGMA busy_timeout = 5000;",
	}
	for _, pragma := range pragmas {
		if _, err := conn.ExecContext(ctx, pragma); err != nil {
			slog.Error("Failed to set pragma", "pragma", pragma, "error", err)
			conn.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	goose.SetBaseFS(FS)
	if err := goose.SetDialect("sqlite3"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to set dialect: %w", err)
	}
	if err := goose.Up(conn, "migrations"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to apply migrations: %w", err)
	}

	return conn, nil
}

// OpenScratch opens a downloaded session bundle as a read-only database.
// No migrations are applied; the bundle carries its own schema.
func OpenScratch(path string) (*sql.DB, error) {
	conn, err := sql.Open("sqlite3", "file:"+path+"?mode=ro")
	if err != nil {
		return nil, fmt.Errorf("failed to open scratch database: %w", err)
	}
	return conn, nil
}
