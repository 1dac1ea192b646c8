package ports

import (
	"context"
	"time"

	"github.com/j88moja/inventory-system/internal/core/domain"
)

// ResetTokenRepository persists password-reset token digests.
type ResetTokenRepository interface {
	Create(ctx context.Context, token *domain.ResetToken) error
	// DeleteByUser removes every token belonging to userID.
	DeleteByUser(ctx context.Context, userID string) error
	// Consume atomically finds the token with the given hash that expires
	// after now and deletes it. No match returns domain.ErrInvalidResetToken.
	Consume(ctx context.Context, tokenHash string, now time.Time) (*domain.ResetToken, error)
}
