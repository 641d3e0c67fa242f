package db

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConnectAppliesMigrations(t *testing.T) {
	dir := t.TempDir()

	conn, err := Connect(context.Background(), dir)
	require.NoError(t, err)
	defer conn.Close()

	require.FileExists(t, filepath.Join(dir, FileName))

	for _, table := range []string{"session", "chats", "group_members"} {
		var name string
		err := conn.QueryRowContext(context.Background(),
			"SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?", table).Scan(&name)
		require.NoError(t, err, "table %s missing", table)
	}
}

func TestConnectIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	conn, err := Connect(context.Background(), dir)
	require.NoError(t, err)
	require.NoError(t, conn.Close())

	conn, err = Connect(context.Background(), dir)
	require.NoError(t, err)
	require.NoError(t, conn.Close())
}

func TestConnectRequiresDataDir(t *testing.T) {
	_, err := Connect(context.Background(), "")
	require.Error(t, err)
}
