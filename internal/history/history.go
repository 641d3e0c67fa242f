// Package history records chat activity into the durable store. It is the
// write side behind the summary reports: every delivered message bumps the
// chat's counters and, in groups, the sender's counters.
package history

import (
	"context"
	"time"

	"github.com/wabot-sh/wabot/internal/db"
	"github.com/wabot-sh/wabot/internal/pubsub"
	"github.com/wabot-sh/wabot/internal/wa"
)

// Message is the slice of an incoming message the recorder cares about.
type Message struct {
	ChatJID    string
	SenderJID  string
	SenderName string
	Timestamp  time.Time
}

type Service interface {
	pubsub.Suscriber[Message]
	Record(ctx context.Context, msg Message) error
	RegisterMember(ctx context.Context, groupJID, memberJID, name string) error
}

type service struct {
	*pubsub.Broker[Message]
	q db.Querier
}

func NewService(q db.Querier) Service {
	return &service{
		Broker: pubsub.NewBroker[Message](),
		q:      q,
	}
}

func (s *service) Record(ctx context.Context, msg Message) error {
	ts := msg.Timestamp.UnixMilli()
	err := s.q.UpsertChatActivity(ctx, db.UpsertChatActivityParams{
		Jid:           msg.ChatJID,
		LastMessageTs: ts,
	})
	if err != nil {
		return err
	}

	if wa.IsGroup(msg.ChatJID) && msg.SenderJID != "" {
		err = s.q.UpsertGroupMemberActivity(ctx, db.UpsertGroupMemberActivityParams{
			GroupJid:     msg.ChatJID,
			MemberJid:    msg.SenderJID,
			DisplayName:  msg.SenderName,
			LastActiveTs: ts,
		})
		if err != nil {
			return err
		}
	}

	s.Publish(pubsub.CreatedEvent, msg)
	return nil
}

// RegisterMember adds a group member with zero recorded activity, so roster
// syncs make silent members visible to the inactive-members report.
func (s *service) RegisterMember(ctx context.Context, groupJID, memberJID, name string) error {
	return s.q.CreateGroupMember(ctx, db.CreateGroupMemberParams{
		GroupJid:    groupJID,
		MemberJid:   memberJID,
		DisplayName: name,
	})
}
