package ports

import (
	"context"

	"github.com/j88moja/inventory-system/internal/core/domain"
)

// ProductRepository defines persistence operations for products.
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) (*domain.Product, error)
	// FindByID returns domain.ErrProductNotFound for unknown or malformed ids.
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// ListByUser returns the user's products, newest first.
	ListByUser(ctx context.Context, userID string) ([]*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
}
