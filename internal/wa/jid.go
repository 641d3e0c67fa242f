// Package wa holds the jid conventions of the WhatsApp network: a jid is
// "<user>@<server>", and the server part distinguishes direct, group,
// newsletter, and broadcast conversations.
package wa

import "strings"

const (
	// UserServer is the server part of a direct-chat jid.
	UserServer = "s.whatsapp.net"
	// GroupServer is the server part of a group-chat jid.
	GroupServer = "g.us"
	// NewsletterServer is the server part of a newsletter/channel jid.
	NewsletterServer = "newsletter"
	// StatusBroadcast is the jid of the status broadcast pseudo-chat.
	StatusBroadcast = "status@broadcast"
)

func IsGroup(jid string) bool {
	return strings.HasSuffix(jid, "@"+GroupServer)
}

func IsNewsletter(jid string) bool {
	return strings.HasSuffix(jid, "@"+NewsletterServer)
}

func IsStatusBroadcast(jid string) bool {
	return jid == StatusBroadcast
}

// User returns the user part of a jid, without the server suffix.
func User(jid string) string {
	if i := strings.IndexByte(jid, '@'); i >= 0 {
		return jid[:i]
	}
	return jid
}

// Mention returns the inline mention form of a jid for outgoing text.
// The jid itself still has to be listed in the message's mentions for
// clients to linkify it.
func Mention(jid string) string {
	return "@" + User(jid)
}
