package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"portfolio/internal/service"
)

// ContactHandler serves the contact form endpoint.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// ContactRequest represents a contact form submission.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject"`
	Message string `json:"message" validate:"required"`
}

// ContactResponse acknowledges a contact form submission.
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Send godoc
// @Summary Submit the contact form
// @Tags contact
// @Accept json
// @Produce json
// @Param request body ContactRequest true "Contact message"
// @Success 200 {object} ContactResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} ContactResponse
// @Router /contact [post]
func (h *ContactHandler) Send(c echo.Context) error {
	var req ContactRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	err := h.contactService.Send(c.Request().Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ContactResponse{
			Success: false,
			Message: "Erreur lors de l'envoi du message. Veuillez réessayer ou me contacter directement.",
		})
	}
	return c.JSON(http.StatusOK, ContactResponse{
		Success: true,
		Message: "Message envoyé avec succès ! Vous recevrez une confirmation par email.",
	})
}
