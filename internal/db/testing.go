package db

import (
	"context"
	"database/sql"
	"testing"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/require"
)

// SetupTestDB creates an in-memory SQLite database with all migrations applied.
// It returns a clean database connection that will be automatically closed
// when the test completes.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	// Create in-memory SQLite database
	conn, err := sql.Open("sqlite3", ":memory:")
	require.NoError(t, err)

	// Verify connection
	require.NoError(t, conn.PingContext(context.Background()))

	// Set essential pragmas for testing
	pragmas := []string{
		"PRAGMA foreign_keys = ON;",
		"PRAGMA journal_mode = MEMORY;", // Faster for testing
		"PRAGMA synchronous = OFF;",     // Faster for testing
	}

	for _, pragma := range pragmas {
		_, err = conn.ExecContext(context.Background(), pragma)
		require.NoError(t, err)
	}

	// Set up goose with embedded migrations
	goose.SetBaseFS(FS)
	require.NoError(t, goose.SetDialect("sqlite3"))

	// Apply all migrations
	err = goose.Up(conn, "migrations")
	require.NoError(t, err)

	// Register cleanup to close the database
	t.Cleanup(func() {
		conn.Close()
	})

	return conn
}

// SetupTestDBWithData creates a test database and allows custom data setup.
// The setupFunc will be called after migrations are applied.
func SetupTestDBWithData(t *testing.T, setupFunc func(*sql.DB)) *sql.DB {
	t.Helper()

	conn := SetupTestDB(t)
	if setupFunc != nil {
		setupFunc(conn)
	}
	return conn
}

// CreateTestChat inserts a chat summary row with fixed counters.
func CreateTestChat(conn *sql.DB, jid string, messageCount, lastMessageTs int64) error {
	_, err := conn.ExecContext(context.Background(), `
		INSERT INTO chats (jid, message_count, last_message_ts)
		VALUES (?, ?, ?)
	`, jid, messageCount, lastMessageTs)
	return err
}

// CreateTestGroupMember inserts a group member activity row.
func CreateTestGroupMember(conn *sql.DB, groupJid, memberJid, name string, messageCount, lastActiveTs int64) error {
	_, err := conn.ExecContext(context.Background(), `
		INSERT INTO group_members (group_jid, member_jid, display_name, message_count, last_active_ts)
		VALUES (?, ?, ?, ?, ?)
	`, groupJid, memberJid, name, messageCount, lastActiveTs)
	return err
}

// CreateTestSessionRow inserts one session key/value row.
func CreateTestSessionRow(conn *sql.DB, sessionID, key, value string) error {
	_, err := conn.ExecContext(context.Background(), `
		INSERT INTO session (session_id, data_key, data_value)
		VALUES (?, ?, ?)
	`, sessionID, key, value)
	return err
}
