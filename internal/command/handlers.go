package command

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/wabot-sh/wabot/internal/chat"
	"github.com/wabot-sh/wabot/internal/wa"
)

const timeFormat = "2006-01-02 15:04"

const (
	noDirectChats     = "No direct message chats found"
	noGroupChats      = "No group chats found"
	noActiveMembers   = "No active members found"
	noInactiveMembers = "No inactive members found"
	groupsOnly        = "This command can only be used in a group chat"
)

// Handlers owns the four summary commands. The transport registers them
// under their command words and dispatches matched messages here.
type Handlers struct {
	Chats    chat.Service
	Resolver chat.NameResolver

	// InactiveWindow is how far back a member's last activity may lie
	// before the inactive report lists them.
	InactiveWindow time.Duration
}

func (h *Handlers) Register(r *Registry) {
	r.Register("chatsdm", h.DirectChats)
	r.Register("chatsgc", h.GroupChats)
	r.Register("gactive", h.ActiveMembers)
	r.Register("inactive", h.InactiveMembers)
}

// DirectChats answers `chatsdm` with the ranked direct-message summary.
func (h *Handlers) DirectChats(ctx context.Context, c *Context) error {
	rows, err := h.Chats.DirectSummary(ctx, c.Sender)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return c.Reply(noDirectChats, nil)
	}

	var b strings.Builder
	b.WriteString("*Direct message chats:*")
	mentions := make([]string, 0, len(rows))
	for i, row := range rows {
		fmt.Fprintf(&b, "\n%d. %s: %d messages, last %s",
			i+1, wa.Mention(row.JID), row.MessageCount, row.LastMessageAt.Format(timeFormat))
		mentions = append(mentions, row.JID)
	}
	return c.Reply(b.String(), mentions)
}

// GroupChats answers `chatsgc` with the ranked group-chat summary.
func (h *Handlers) GroupChats(ctx context.Context, c *Context) error {
	rows, err := h.Chats.GroupSummary(ctx, h.Resolver)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return c.Reply(noGroupChats, nil)
	}

	var b strings.Builder
	b.WriteString("*Group chats:*")
	for i, row := range rows {
		fmt.Fprintf(&b, "\n%d. %s: %d messages, last %s",
			i+1, row.Name, row.MessageCount, row.LastMessageAt.Format(timeFormat))
	}
	return c.Reply(b.String(), nil)
}

// ActiveMembers answers `gactive` with the invoking group's ranked member
// activity.
func (h *Handlers) ActiveMembers(ctx context.Context, c *Context) error {
	if !wa.IsGroup(c.ChatJID) {
		return c.Reply(groupsOnly, nil)
	}

	rows, err := h.Chats.ActiveMembers(ctx, c.ChatJID)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return c.Reply(noActiveMembers, nil)
	}

	var b strings.Builder
	b.WriteString("*Active members:*")
	mentions := make([]string, 0, len(rows))
	for i, row := range rows {
		name := row.Name
		if name == "" {
			name = wa.Mention(row.JID)
		}
		fmt.Fprintf(&b, "\n%d. %s: %d messages", i+1, name, row.MessageCount)
		mentions = append(mentions, row.JID)
	}
	return c.Reply(b.String(), mentions)
}

// InactiveMembers answers `inactive` with the invoking group's silent
// members and their total count.
func (h *Handlers) InactiveMembers(ctx context.Context, c *Context) error {
	if !wa.IsGroup(c.ChatJID) {
		return c.Reply(groupsOnly, nil)
	}

	cutoff := time.Now().Add(-h.InactiveWindow)
	rows, err := h.Chats.InactiveMembers(ctx, c.ChatJID, cutoff)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return c.Reply(noInactiveMembers, nil)
	}

	var b strings.Builder
	b.WriteString("*Inactive members:*")
	mentions := make([]string, 0, len(rows))
	for i, row := range rows {
		fmt.Fprintf(&b, "\n%d. %s", i+1, wa.Mention(row.JID))
		mentions = append(mentions, row.JID)
	}
	fmt.Fprintf(&b, "\nTotal: %d", len(rows))
	return c.Reply(b.String(), mentions)
}
