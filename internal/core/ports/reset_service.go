package ports

import "context"

// ResetService runs the forgot-password / reset-password handshake.
type ResetService interface {
	// RequestReset issues a fresh reset credential for the account and emails it.
	RequestReset(ctx context.Context, email string) error
	// ConsumeReset redeems a credential once and sets the new password.
	ConsumeReset(ctx context.Context, credential, newPassword string) error
}
