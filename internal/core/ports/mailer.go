package ports

import "context"

// Email is a single outbound HTML message.
type Email struct {
	Subject  string
	HTMLBody string
	To       string
	From     string
	ReplyTo  string // optional
}

// Mailer delivers email synchronously; a non-nil error means the message
// was not accepted by the relay.
type Mailer interface {
	Send(ctx context.Context, email Email) error
}
