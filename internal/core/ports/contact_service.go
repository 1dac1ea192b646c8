package ports

import "context"

// ContactService forwards a signed-in user's message to the support inbox.
type ContactService interface {
	Send(ctx context.Context, userID, subject, message string) error
}
