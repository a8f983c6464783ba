package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"dapurkita/internal/usecase"
	"dapurkita/pkg/response"
)

type ContactHandler struct {
	contactUseCase *usecase.ContactUseCase
}

func NewContactHandler(contactUseCase *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{
		contactUseCase: contactUseCase,
	}
}

// ListContacts returns the role-compatible contacts for the caller,
// optionally filtered by a search term
func (h *ContactHandler) ListContacts(c echo.Context) error {
	userID := c.Get("uid").(string)
	search := c.QueryParam("search")

	limit := 20
	if limitStr := c.QueryParam("limit"); limitStr != "" {
		if parsedLimit, err := strconv.Atoi(limitStr); err == nil && parsedLimit > 0 && parsedLimit <= 100 {
			limit = parsedLimit
		}
	}

	contacts, err := h.contactUseCase.ListContacts(c.Request().Context(), userID, search, limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, contacts)
}

// ResolveUser returns a single contact snapshot for composer prefill
func (h *ContactHandler) ResolveUser(c echo.Context) error {
	contact, err := h.contactUseCase.ResolveContact(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, contact)
}
