// Package mail delivers verification emails through a transactional-email
// HTTP API. Sending is fire-and-forget from the caller's point of view: the
// boolean result is logged, never surfaced.
package mail

import "context"

// Var is a template variable passed to the mail provider as a "v:"-prefixed
// form field.
type Var struct {
	Key   string
	Value string
}

// Notifier sends a verification email given an address and a code.
type Notifier interface {
	SendVerificationMail(ctx context.Context, email, code string) bool
}

// NoopNotifier drops every mail. Used when mail delivery is disabled.
type NoopNotifier struct{}

func (NoopNotifier) SendVerificationMail(ctx context.Context, email, code string) bool {
	return true
}
