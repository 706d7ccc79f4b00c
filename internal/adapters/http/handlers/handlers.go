package handlers

import (
	"errors"
	"strings"

	"soshopay-mockapi/internal/core/domain"
	"soshopay-mockapi/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// handleError maps domain errors onto the mobile API error envelope
func handleError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrValidation):
		return response.ValidationError(c, validationMessage(err))
	case errors.Is(err, domain.ErrClientNotFound):
		return response.NotFound(c, "Client not found")
	case errors.Is(err, domain.ErrLoanNotFound):
		return response.NotFound(c, "Loan not found")
	case errors.Is(err, domain.ErrSettledLoanNotFound):
		return response.NotFound(c, "Settled loan not found")
	case errors.Is(err, domain.ErrPaymentNotFound):
		return response.NotFound(c, "Payment not found")
	case errors.Is(err, domain.ErrNotificationNotFound):
		return response.NotFound(c, "Notification not found")
	case errors.Is(err, domain.ErrProductNotFound):
		return response.NotFound(c, "Product not found")
	case errors.Is(err, domain.ErrInvalidPIN):
		return response.Unauthorized(c, "Invalid PIN")
	case errors.Is(err, domain.ErrTokenInvalid):
		return response.Unauthorized(c, "Invalid or expired refresh token")
	default:
		return response.InternalServerError(c, "Something went wrong")
	}
}

// validationMessage strips the wrapping sentinel prefix from a validation
// error, leaving the field message for the client
func validationMessage(err error) string {
	return strings.TrimPrefix(err.Error(), domain.ErrValidation.Error()+": ")
}
