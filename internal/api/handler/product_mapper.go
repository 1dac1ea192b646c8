package handler

import (
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/j88moja/inventory-system/internal/core/domain"
	"github.com/j88moja/inventory-system/internal/core/ports"
)

// allowedImageTypes lists the MIME types accepted for product images.
var allowedImageTypes = map[string]struct{}{
	"image/png":  {},
	"image/jpg":  {},
	"image/jpeg": {},
}

// --- Request → Service input ---

func toProductInput(req productRequest) ports.ProductInput {
	return ports.ProductInput{
		Name:        strings.TrimSpace(req.Name),
		SKU:         strings.TrimSpace(req.SKU),
		Category:    strings.TrimSpace(req.Category),
		Quantity:    strings.TrimSpace(req.Quantity),
		Price:       strings.TrimSpace(req.Price),
		Description: req.Description,
	}
}

// formImage opens the optional "image" part. The returned closer is nil when
// no file was sent.
func formImage(c echo.Context) (*ports.FileUpload, io.Closer, error) {
	fh, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return nil, nil, nil
		}
		return nil, nil, domain.Invalid("invalid image upload")
	}
	return openImage(fh)
}

func openImage(fh *multipart.FileHeader) (*ports.FileUpload, io.Closer, error) {
	contentType := fh.Header.Get(echo.HeaderContentType)
	if _, ok := allowedImageTypes[contentType]; !ok {
		return nil, nil, domain.Invalid("only .png, .jpg and .jpeg images are allowed")
	}

	f, err := fh.Open()
	if err != nil {
		return nil, nil, domain.Invalid("invalid image upload")
	}
	return &ports.FileUpload{
		Name:        fh.Filename,
		ContentType: contentType,
		Size:        fh.Size,
		Content:     f,
	}, f, nil
}

// --- Domain → Response ---

func toProductResponse(p *domain.Product) productResponse {
	return productResponse{
		ID:          p.ID,
		User:        p.UserID,
		Name:        p.Name,
		SKU:         p.SKU,
		Category:    p.Category,
		Quantity:    p.Quantity,
		Price:       p.Price,
		Description: p.Description,
		Image:       p.Image,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toProductResponses(ps []*domain.Product) []productResponse {
	out := make([]productResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, toProductResponse(p))
	}
	return out
}
