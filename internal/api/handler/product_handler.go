package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/j88moja/inventory-system/internal/api/metrics"
	"github.com/j88moja/inventory-system/internal/core/domain"
	"github.com/j88moja/inventory-system/internal/core/ports"
)

// ProductHandler handles HTTP requests for the caller's products.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

// Create handles POST /api/products.
//
// @Summary      Create a product
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Param        name         formData  string  true   "Product name"
// @Param        sku          formData  string  true   "Stock keeping unit"
// @Param        category     formData  string  false  "Category"
// @Param        quantity     formData  string  true   "Quantity"
// @Param        price        formData  string  true   "Price"
// @Param        description  formData  string  true   "Description"
// @Param        image        formData  file    false  "Product image (png, jpg, jpeg)"
// @Success      201  {object}  productResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("invalid payload")
	}

	image, closer, err := formImage(c)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	product, err := h.service.Create(c.Request().Context(), userID, toProductInput(req), image)
	recordUpload(image, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, toProductResponse(product))
}

// List handles GET /api/products.
//
// @Summary      List products
// @Tags         products
// @Produce      json
// @Success      200  {array}   productResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	products, err := h.service.List(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponses(products))
}

// Get handles GET /api/products/:id.
//
// @Summary      Get a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  productResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{id} [get]
func (h *ProductHandler) Get(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	product, err := h.service.Get(c.Request().Context(), userID, c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Update handles PATCH /api/products/:id.
//
// @Summary      Update a product
// @Tags         products
// @Accept       multipart/form-data
// @Produce      json
// @Param        id           path      string  true   "Product id"
// @Param        name         formData  string  false  "Product name"
// @Param        category     formData  string  false  "Category"
// @Param        quantity     formData  string  false  "Quantity"
// @Param        price        formData  string  false  "Price"
// @Param        description  formData  string  false  "Description"
// @Param        image        formData  file    false  "Replacement image"
// @Success      200  {object}  productResponse
// @Failure      400  {object}  errorResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{id} [patch]
func (h *ProductHandler) Update(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req productRequest
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("invalid payload")
	}

	image, closer, err := formImage(c)
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	product, err := h.service.Update(c.Request().Context(), userID, c.Param("id"), toProductInput(req), image)
	recordUpload(image, err)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProductResponse(product))
}

// Delete handles DELETE /api/products/:id.
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), userID, c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "product deleted"})
}

// recordUpload counts image uploads that reached the blob store.
func recordUpload(image *ports.FileUpload, err error) {
	if image == nil {
		return
	}
	switch {
	case err == nil:
		metrics.ImageUploadsTotal.WithLabelValues(metrics.ResultSuccess).Inc()
	case errors.Is(err, domain.ErrUpload):
		metrics.ImageUploadsTotal.WithLabelValues(metrics.ResultFailure).Inc()
	}
}
