package chat

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wabot-sh/wabot/internal/db"
)

const (
	selfJID   = "15550000000@s.whatsapp.net"
	aliceJID  = "15551234567@s.whatsapp.net"
	bobJID    = "15557654321@s.whatsapp.net"
	groupJID  = "120363041234567890@g.us"
	group2JID = "120363049876543210@g.us"
	newsJID   = "120363040000000000@newsletter"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return db.SetupTestDB(t)
}

func staticResolver(names map[string]string) NameResolver {
	return ResolverFunc(func(_ context.Context, jid string) (string, error) {
		name, ok := names[jid]
		if !ok {
			return "", errors.New("metadata lookup failed")
		}
		return name, nil
	})
}

func TestDirectSummaryExclusions(t *testing.T) {
	t.Parallel()

	conn := setupTestDB(t)
	for jid, count := range map[string]int64{
		aliceJID:           40,
		bobJID:             10,
		groupJID:           99,
		newsJID:            50,
		"status@broadcast": 30,
		selfJID:            20,
	} {
		require.NoError(t, db.CreateTestChat(conn, jid, count, 1700000000000))
	}

	service := NewService(db.New(conn))
	rows, err := service.DirectSummary(context.Background(), selfJID)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	require.Equal(t, aliceJID, rows[0].JID)
	require.EqualValues(t, 40, rows[0].MessageCount)
	require.Equal(t, bobJID, rows[1].JID)
	require.Equal(t, time.UnixMilli(1700000000000), rows[1].LastMessageAt)
}

func TestDirectSummaryEmpty(t *testing.T) {
	t.Parallel()

	conn := setupTestDB(t)
	service := NewService(db.New(conn))

	rows, err := service.DirectSummary(context.Background(), selfJID)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestGroupSummaryResolvesNames(t *testing.T) {
	t.Parallel()

	conn := setupTestDB(t)
	require.NoError(t, db.CreateTestChat(conn, groupJID, 80, 1700000000000))
	require.NoError(t, db.CreateTestChat(conn, group2JID, 20, 1700000100000))
	require.NoError(t, db.CreateTestChat(conn, aliceJID, 500, 1700000200000))

	service := NewService(db.New(conn))
	rows, err := service.GroupSummary(context.Background(), staticResolver(map[string]string{
		groupJID:  "Gophers",
		group2JID: "Family",
	}))
	require.NoError(t, err)

	require.Len(t, rows, 2)
	require.Equal(t, "Gophers", rows[0].Name)
	require.Equal(t, "Family", rows[1].Name)
}

func TestGroupSummaryLookupFailureDegrades(t *testing.T) {
	t.Parallel()

	conn := setupTestDB(t)
	require.NoError(t, db.CreateTestChat(conn, groupJID, 80, 1700000000000))
	require.NoError(t, db.CreateTestChat(conn, group2JID, 20, 1700000100000))

	service := NewService(db.New(conn))
	rows, err := service.GroupSummary(context.Background(), staticResolver(map[string]string{
		group2JID: "Family",
	}))
	require.NoError(t, err)

	require.Len(t, rows, 2)
	// The failed lookup degrades to the placeholder; counters stay intact.
	require.Equal(t, UnknownGroupName, rows[0].Name)
	require.EqualValues(t, 80, rows[0].MessageCount)
	require.Equal(t, time.UnixMilli(1700000000000), rows[0].LastMessageAt)
	// The other lookup is unaffected.
	require.Equal(t, "Family", rows[1].Name)
}

func TestActiveMembersRanked(t *testing.T) {
	t.Parallel()

	conn := setupTestDB(t)
	require.NoError(t, db.CreateTestGroupMember(conn, groupJID, aliceJID, "Ana", 30, 1700000000000))
	require.NoError(t, db.CreateTestGroupMember(conn, groupJID, bobJID, "Bo", 70, 1700000100000))
	require.NoError(t, db.CreateTestGroupMember(conn, groupJID, selfJID, "", 0, 0))
	require.NoError(t, db.CreateTestGroupMember(conn, group2JID, aliceJID, "Ana", 5, 1700000000000))

	service := NewService(db.New(conn))
	rows, err := service.ActiveMembers(context.Background(), groupJID)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	require.Equal(t, bobJID, rows[0].JID)
	require.EqualValues(t, 70, rows[0].MessageCount)
	require.Equal(t, aliceJID, rows[1].JID)
}

func TestActiveMembersEmpty(t *testing.T) {
	t.Parallel()

	conn := setupTestDB(t)
	service := NewService(db.New(conn))

	rows, err := service.ActiveMembers(context.Background(), groupJID)
	require.NoError(t, err)
	require.Empty(t, rows)
}

func TestInactiveMembers(t *testing.T) {
	t.Parallel()

	conn := setupTestDB(t)
	cutoff := time.UnixMilli(1700000000000)

	require.NoError(t, db.CreateTestGroupMember(conn, groupJID, aliceJID, "Ana", 30, cutoff.Add(time.Hour).UnixMilli()))
	require.NoError(t, db.CreateTestGroupMember(conn, groupJID, bobJID, "Bo", 3, cutoff.Add(-time.Hour).UnixMilli()))
	require.NoError(t, db.CreateTestGroupMember(conn, groupJID, selfJID, "", 0, 0))

	service := NewService(db.New(conn))
	rows, err := service.InactiveMembers(context.Background(), groupJID, cutoff)
	require.NoError(t, err)

	require.Len(t, rows, 2)
	jids := []string{rows[0].JID, rows[1].JID}
	require.Contains(t, jids, bobJID)
	require.Contains(t, jids, selfJID)
	require.NotContains(t, jids, aliceJID)
}
