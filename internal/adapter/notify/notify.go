// Package notify delivers moderation notices to users.
package notify

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// ViolationNotice describes a log removed by moderation.
type ViolationNotice struct {
	Email     string
	Username  string
	Title     string
	Author    string
	Date      time.Time
	Reason    string
	FlaggedAt time.Time
}

// AccountFrozenNotice tells a user an administrator froze their account.
type AccountFrozenNotice struct {
	Email    string
	Username string
	FrozenAt time.Time
}

// Noop discards every notice. It is used when notifications are disabled.
type Noop struct{}

// NotifyViolation implements the moderation notifier.
func (Noop) NotifyViolation(context.Context, ViolationNotice) error { return nil }

// NotifyAccountFrozen implements the administration notifier.
func (Noop) NotifyAccountFrozen(context.Context, AccountFrozenNotice) error { return nil }

// renderBody builds the plain-text notice sent to the owner.
func renderBody(appName string, n ViolationNotice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", n.Username)
	fmt.Fprintf(&b, "Your reading log for %q by %s dated %s was removed from %s.\n",
		n.Title, n.Author, n.Date.Format(time.DateOnly), appName)
	fmt.Fprintf(&b, "Reason: %s\n\n", n.Reason)
	b.WriteString("If you believe this was a mistake, reply to this message and an administrator will review it.\n")
	return b.String()
}

func renderFrozenBody(appName string, n AccountFrozenNotice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hello %s,\n\n", n.Username)
	fmt.Fprintf(&b, "Your %s account was frozen on %s.\n", appName, n.FrozenAt.Format(time.DateOnly))
	b.WriteString("You can no longer create or change reading logs. Reply to this message to contact an administrator.\n")
	return b.String()
}
