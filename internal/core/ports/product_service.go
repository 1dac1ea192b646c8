package ports

import (
	"context"

	"github.com/j88moja/inventory-system/internal/core/domain"
)

// ProductInput carries product fields from the transport layer.
// SKU is only honoured on create.
type ProductInput struct {
	Name        string
	SKU         string
	Category    string
	Quantity    string
	Price       string
	Description string
}

// ProductService defines use-case operations for products. Every operation
// is scoped to the calling user.
type ProductService interface {
	Create(ctx context.Context, userID string, input ProductInput, image *FileUpload) (*domain.Product, error)
	List(ctx context.Context, userID string) ([]*domain.Product, error)
	Get(ctx context.Context, userID, productID string) (*domain.Product, error)
	Update(ctx context.Context, userID, productID string, input ProductInput, image *FileUpload) (*domain.Product, error)
	Delete(ctx context.Context, userID, productID string) error
}
