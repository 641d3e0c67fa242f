// Package chat builds the read-only summary reports over the recorded
// message history.
package chat

import (
	"context"
	"sync"
	"time"

	"github.com/wabot-sh/wabot/internal/db"
	"github.com/wabot-sh/wabot/internal/wa"
)

// UnknownGroupName is the placeholder used when a group's metadata lookup
// fails.
const UnknownGroupName = "Unknown Group"

// Summary is one direct chat's line in the direct-message report.
type Summary struct {
	JID           string
	MessageCount  int64
	LastMessageAt time.Time
}

// GroupSummary is one group's line in the group-chat report.
type GroupSummary struct {
	JID           string
	Name          string
	MessageCount  int64
	LastMessageAt time.Time
}

// MemberActivity is one member's line in the member reports.
type MemberActivity struct {
	JID          string
	Name         string
	MessageCount int64
}

// NameResolver resolves a group jid to its display name. It is backed by
// the message transport's metadata lookup, which lives outside this
// repository.
type NameResolver interface {
	GroupName(ctx context.Context, jid string) (string, error)
}

// ResolverFunc adapts a function to the NameResolver interface.
type ResolverFunc func(ctx context.Context, jid string) (string, error)

func (f ResolverFunc) GroupName(ctx context.Context, jid string) (string, error) {
	return f(ctx, jid)
}

type Service interface {
	DirectSummary(ctx context.Context, self string) ([]Summary, error)
	GroupSummary(ctx context.Context, resolver NameResolver) ([]GroupSummary, error)
	ActiveMembers(ctx context.Context, groupJID string) ([]MemberActivity, error)
	InactiveMembers(ctx context.Context, groupJID string, cutoff time.Time) ([]MemberActivity, error)
}

type service struct {
	q db.Querier
}

func NewService(q db.Querier) Service {
	return &service{q: q}
}

// DirectSummary lists direct chats ranked by message count. Groups,
// newsletters, the status broadcast, and the requester's own jid are
// excluded.
func (s *service) DirectSummary(ctx context.Context, self string) ([]Summary, error) {
	chats, err := s.q.ListChats(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]Summary, 0, len(chats))
	for _, c := range chats {
		if wa.IsGroup(c.Jid) || wa.IsNewsletter(c.Jid) || wa.IsStatusBroadcast(c.Jid) {
			continue
		}
		if c.Jid == self {
			continue
		}
		summaries = append(summaries, Summary{
			JID:           c.Jid,
			MessageCount:  c.MessageCount,
			LastMessageAt: time.UnixMilli(c.LastMessageTs),
		})
	}
	return summaries, nil
}

// GroupSummary lists group chats ranked by message count, resolving each
// group's display name concurrently. A failed or empty lookup degrades
// that row to UnknownGroupName; it never fails the report and never
// cancels the other lookups.
func (s *service) GroupSummary(ctx context.Context, resolver NameResolver) ([]GroupSummary, error) {
	chats, err := s.q.ListChats(ctx)
	if err != nil {
		return nil, err
	}

	summaries := make([]GroupSummary, 0, len(chats))
	for _, c := range chats {
		if !wa.IsGroup(c.Jid) {
			continue
		}
		summaries = append(summaries, GroupSummary{
			JID:           c.Jid,
			MessageCount:  c.MessageCount,
			LastMessageAt: time.UnixMilli(c.LastMessageTs),
		})
	}

	var wg sync.WaitGroup
	for i := range summaries {
		wg.Add(1)
		go func() {
			defer wg.Done()
			name, err := resolver.GroupName(ctx, summaries[i].JID)
			if err != nil || name == "" {
				name = UnknownGroupName
			}
			summaries[i].Name = name
		}()
	}
	wg.Wait()

	return summaries, nil
}

// ActiveMembers lists the members of one group that have recorded
// messages, ranked by message count.
func (s *service) ActiveMembers(ctx context.Context, groupJID string) ([]MemberActivity, error) {
	members, err := s.q.ListGroupMembers(ctx, groupJID)
	if err != nil {
		return nil, err
	}

	active := make([]MemberActivity, 0, len(members))
	for _, m := range members {
		if m.MessageCount == 0 {
			continue
		}
		active = append(active, MemberActivity{
			JID:          m.MemberJid,
			Name:         m.DisplayName,
			MessageCount: m.MessageCount,
		})
	}
	return active, nil
}

// InactiveMembers lists the members of one group with no messages at all
// or no activity since the cutoff.
func (s *service) InactiveMembers(ctx context.Context, groupJID string, cutoff time.Time) ([]MemberActivity, error) {
	members, err := s.q.ListInactiveGroupMembers(ctx, db.ListInactiveGroupMembersParams{
		GroupJid:     groupJID,
		LastActiveTs: cutoff.UnixMilli(),
	})
	if err != nil {
		return nil, err
	}

	inactive := make([]MemberActivity, 0, len(members))
	for _, m := range members {
		inactive = append(inactive, MemberActivity{
			JID:          m.MemberJid,
			Name:         m.DisplayName,
			MessageCount: m.MessageCount,
		})
	}
	return inactive, nil
}
