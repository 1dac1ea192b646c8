package domain

import "time"

// ResetTokenTTL is how long an issued reset credential stays redeemable.
const ResetTokenTTL = 30 * time.Minute

// ResetToken is the persisted half of a password-reset handshake. Only the
// SHA-256 digest of the emailed credential is stored. A user has at most one
// ResetToken; its presence is the "issued" state and it is removed on
// redemption or superseded by a new request.
type ResetToken struct {
	ID        string
	UserID    string
	TokenHash string
	CreatedAt time.Time
	ExpiresAt time.Time
}

// Expired reports whether the token can no longer be redeemed at now.
func (t *ResetToken) Expired(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}
