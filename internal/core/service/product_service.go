package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/j88moja/inventory-system/internal/core/domain"
	"github.com/j88moja/inventory-system/internal/core/ports"
)

type ProductService struct {
	repo   ports.ProductRepository
	blobs  ports.BlobStore
	now    func() time.Time
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, blobs ports.BlobStore, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, blobs: blobs, now: time.Now, logger: logger}
}

// Create stores a new product for userID, uploading image first when given.
func (s *ProductService) Create(ctx context.Context, userID string, input ports.ProductInput, image *ports.FileUpload) (*domain.Product, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.SKU) == "" ||
		input.Quantity == "" || input.Price == "" || strings.TrimSpace(input.Description) == "" {
		return nil, domain.Invalid("please fill in the required fields")
	}

	var file domain.FileData
	if image != nil {
		stored, err := s.upload(ctx, image)
		if err != nil {
			return nil, err
		}
		file = *stored
	}

	now := s.now().UTC()
	product := &domain.Product{
		UserID:      userID,
		Name:        input.Name,
		SKU:         input.SKU,
		Category:    input.Category,
		Quantity:    input.Quantity,
		Price:       input.Price,
		Description: input.Description,
		Image:       file,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, product)
	if err != nil {
		s.logger.Error().Err(err).Str("user_id", userID).Msg("failed to create product")
		return nil, err
	}

	s.logger.Info().Str("product_id", created.ID).Str("user_id", userID).Msg("product created")
	return created, nil
}

func (s *ProductService) List(ctx context.Context, userID string) ([]*domain.Product, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *ProductService) Get(ctx context.Context, userID, productID string) (*domain.Product, error) {
	return s.owned(ctx, userID, productID)
}

// Update overwrites the editable fields. The stored image is kept unless a
// new one is supplied; SKU never changes.
func (s *ProductService) Update(ctx context.Context, userID, productID string, input ports.ProductInput, image *ports.FileUpload) (*domain.Product, error) {
	product, err := s.owned(ctx, userID, productID)
	if err != nil {
		return nil, err
	}

	if image != nil {
		stored, err := s.upload(ctx, image)
		if err != nil {
			return nil, err
		}
		product.Image = *stored
	}

	product.Name = input.Name
	product.Category = input.Category
	product.Quantity = input.Quantity
	product.Price = input.Price
	product.Description = input.Description
	product.UpdatedAt = s.now().UTC()

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *ProductService) Delete(ctx context.Context, userID, productID string) error {
	if _, err := s.owned(ctx, userID, productID); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, productID); err != nil {
		return err
	}
	s.logger.Info().Str("product_id", productID).Str("user_id", userID).Msg("product deleted")
	return nil
}

// owned loads a product and checks that userID owns it.
func (s *ProductService) owned(ctx context.Context, userID, productID string) (*domain.Product, error) {
	product, err := s.repo.FindByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product.UserID != userID {
		return nil, domain.ErrNotOwner
	}
	return product, nil
}

func (s *ProductService) upload(ctx context.Context, image *ports.FileUpload) (*domain.FileData, error) {
	stored, err := s.blobs.Upload(ctx, *image)
	if err != nil {
		s.logger.Error().Err(err).Str("file_name", image.Name).Msg("image upload failed")
		return nil, fmt.Errorf("%w: %w", domain.ErrUpload, err)
	}
	return &domain.FileData{
		FileName: image.Name,
		FilePath: stored.URL,
		FileType: stored.MimeType,
		FileSize: humanize.Bytes(uint64(stored.Size)),
	}, nil
}
