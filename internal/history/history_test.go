package history

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/wabot-sh/wabot/internal/db"
)

func TestRecordDirectMessage(t *testing.T) {
	t.Parallel()

	conn := db.SetupTestDB(t)
	service := NewService(db.New(conn))

	ts := time.UnixMilli(1700000000000)
	msg := Message{ChatJID: "15551234567@s.whatsapp.net", Timestamp: ts}

	require.NoError(t, service.Record(context.Background(), msg))
	require.NoError(t, service.Record(context.Background(), Message{
		ChatJID:   "15551234567@s.whatsapp.net",
		Timestamp: ts.Add(time.Minute),
	}))

	chat, err := db.New(conn).GetChat(context.Background(), "15551234567@s.whatsapp.net")
	require.NoError(t, err)
	require.EqualValues(t, 2, chat.MessageCount)
	require.Equal(t, ts.Add(time.Minute).UnixMilli(), chat.LastMessageTs)

	// Direct messages never create group member rows.
	members, err := db.New(conn).ListGroupMembers(context.Background(), "15551234567@s.whatsapp.net")
	require.NoError(t, err)
	require.Empty(t, members)
}

func TestRecordGroupMessage(t *testing.T) {
	t.Parallel()

	conn := db.SetupTestDB(t)
	service := NewService(db.New(conn))

	group := "120363041234567890@g.us"
	ts := time.UnixMilli(1700000000000)

	require.NoError(t, service.Record(context.Background(), Message{
		ChatJID:    group,
		SenderJID:  "15551234567@s.whatsapp.net",
		SenderName: "Ana",
		Timestamp:  ts,
	}))
	require.NoError(t, service.Record(context.Background(), Message{
		ChatJID:   group,
		SenderJID: "15551234567@s.whatsapp.net",
		Timestamp: ts.Add(time.Hour),
	}))

	members, err := db.New(conn).ListGroupMembers(context.Background(), group)
	require.NoError(t, err)
	require.Len(t, members, 1)
	require.Equal(t, "15551234567@s.whatsapp.net", members[0].MemberJid)
	require.EqualValues(t, 2, members[0].MessageCount)
	// Empty sender name on the second message keeps the earlier name.
	require.Equal(t, "Ana", members[0].DisplayName)
	require.Equal(t, ts.Add(time.Hour).UnixMilli(), members[0].LastActiveTs)
}

func TestRecordPublishesEvent(t *testing.T) {
	t.Parallel()

	conn := db.SetupTestDB(t)
	service := NewService(db.New(conn))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	events := service.Subscribe(ctx)

	msg := Message{ChatJID: "15551234567@s.whatsapp.net", Timestamp: time.Now()}
	require.NoError(t, service.Record(context.Background(), msg))

	select {
	case ev := <-events:
		require.Equal(t, msg.ChatJID, ev.Payload.ChatJID)
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for recorded event")
	}
}

func TestRegisterMemberKeepsCounters(t *testing.T) {
	t.Parallel()

	conn := db.SetupTestDB(t)
	service := NewService(db.New(conn))

	group := "120363041234567890@g.us"
	member := "15551234567@s.whatsapp.net"

	require.NoError(t, service.Record(context.Background(), Message{
		ChatJID:   group,
		SenderJID: member,
		Timestamp: time.Now(),
	}))

	// Re-registering an active member must not reset its counters.
	require.NoError(t, service.RegisterMember(context.Background(), group, member, "Ana"))

	members, err := db.New(conn).ListGroupMembers(context.Background(), group)
	require.NoError(t, err)
	require.Len(t, members, 1)
	require.EqualValues(t, 1, members[0].MessageCount)

	require.NoError(t, service.RegisterMember(context.Background(), group, "15557654321@s.whatsapp.net", "Bo"))
	members, err = db.New(conn).ListGroupMembers(context.Background(), group)
	require.NoError(t, err)
	require.Len(t, members, 2)
}
