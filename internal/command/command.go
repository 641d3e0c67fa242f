// Package command implements the bot's chat commands. Registration and
// dispatch are intentionally small: the message transport matches the
// command word and calls Dispatch with a reply-capable context.
package command

import (
	"context"
	"fmt"
	"sort"
)

// Replier sends text back into the chat a command came from. Mentions list
// the jids tagged in the text so clients linkify them.
type Replier interface {
	Reply(text string, mentions []string) error
}

// Context carries the invocation surface a handler sees: who asked, where,
// and how to answer.
type Context struct {
	Sender  string
	ChatJID string
	Replier
}

type Handler func(ctx context.Context, c *Context) error

type Registry struct {
	handlers map[string]Handler
}

func NewRegistry() *Registry {
	return &Registry{handlers: make(map[string]Handler)}
}

func (r *Registry) Register(name string, h Handler) {
	r.handlers[name] = h
}

// Dispatch runs the handler registered under name. Handler errors
// propagate to the router's own failure handling.
func (r *Registry) Dispatch(ctx context.Context, name string, c *Context) error {
	h, ok := r.handlers[name]
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	return h(ctx, c)
}

func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
