package ports

import (
	"context"

	"github.com/j88moja/inventory-system/internal/core/domain"
)

// ProfileUpdate carries optional profile changes; empty fields are left as they are.
type ProfileUpdate struct {
	Name  string
	Phone string
	Bio   string
	Photo string
}

// AccountService manages an authenticated user's own account.
type AccountService interface {
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	UpdateUser(ctx context.Context, userID string, update ProfileUpdate) (*domain.User, error)
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
}
