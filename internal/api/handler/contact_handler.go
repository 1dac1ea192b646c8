package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/j88moja/inventory-system/internal/core/domain"
	"github.com/j88moja/inventory-system/internal/core/ports"
)

type ContactHandler struct {
	contact ports.ContactService
}

func NewContactHandler(contact ports.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// Send handles POST /api/contactus.
//
// @Summary      Contact support
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        body  body      contactRequest  true  "Subject and message"
// @Success      200   {object}  messageResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /api/contactus [post]
func (h *ContactHandler) Send(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return domain.Invalid("invalid payload")
	}

	if err := h.contact.Send(c.Request().Context(), userID, req.Subject, req.Message); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Success: true, Message: "email sent"})
}
