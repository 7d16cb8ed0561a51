// Package mail defines the outbound transactional email surface. Providers
// live in subpackages so their SDK dependencies stay out of callers.
package mail

import "context"

// Message is one outbound email.
type Message struct {
	From     string
	To       []string
	ReplyTo  string
	Subject  string
	TextBody string
	HTMLBody string
}

// Sender sends a single email.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
