package ports

import (
	"context"
	"time"

	"github.com/j88moja/inventory-system/internal/core/domain"
)

// RegisterInput carries the fields accepted at sign-up.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// Session is a signed bearer token and the instant it stops being valid.
type Session struct {
	Token     string
	ExpiresAt time.Time
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	HashPassword(plaintext string) (string, error)
	VerifyPassword(plaintext, hash string) bool
}

// SessionVerifier resolves a session token to a user id.
type SessionVerifier interface {
	VerifySessionToken(token string) (string, error)
}

// CredentialService owns passwords and session tokens.
type CredentialService interface {
	PasswordHasher
	SessionVerifier
	IssueSessionToken(userID string) (*Session, error)
	Register(ctx context.Context, input RegisterInput) (*domain.User, *Session, error)
	Login(ctx context.Context, email, password string) (*domain.User, *Session, error)
	LoginStatus(token string) bool
}
