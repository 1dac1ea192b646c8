package handler

import (
	"time"

	"github.com/j88moja/inventory-system/internal/core/domain"
)

// productRequest is bound from a multipart form; the optional file travels
// in the "image" field.
type productRequest struct {
	Name        string `form:"name"        json:"name"`
	SKU         string `form:"sku"         json:"sku"`
	Category    string `form:"category"    json:"category"`
	Quantity    string `form:"quantity"    json:"quantity"`
	Price       string `form:"price"       json:"price"`
	Description string `form:"description" json:"description"`
}

type productResponse struct {
	ID          string          `json:"_id"`
	User        string          `json:"user"`
	Name        string          `json:"name"`
	SKU         string          `json:"sku"`
	Category    string          `json:"category"`
	Quantity    string          `json:"quantity"`
	Price       string          `json:"price"`
	Description string          `json:"description"`
	Image       domain.FileData `json:"image"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
}
