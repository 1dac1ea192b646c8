package ports

import (
	"context"

	"github.com/j88moja/inventory-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user and returns it with its assigned ID.
	// A duplicate email returns domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// Update overwrites the mutable fields (profile and password hash).
	Update(ctx context.Context, user *domain.User) error
}
