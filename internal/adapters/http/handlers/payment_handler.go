package handlers

import (
	"soshopay-mockapi/internal/core/services"
	"soshopay-mockapi/internal/pkg/pagination"
	"soshopay-mockapi/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// PaymentHandler handles payment endpoints
type PaymentHandler struct {
	paymentService *services.PaymentService
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// Dashboard returns the payment dashboard aggregate
// @Summary Payment dashboard
// @Description Aggregated view of outstanding balances, upcoming and overdue payments
// @Tags Payments
// @Produce json
// @Success 200 {object} services.Dashboard
// @Security BearerAuth
// @Router /payments/dashboard [get]
func (h *PaymentHandler) Dashboard(c *fiber.Ctx) error {
	dashboard, err := h.paymentService.BuildDashboard(c.Context())
	if err != nil {
		return handleError(c, err)
	}

	return response.JSON(c, dashboard)
}

// History returns paginated payment history
// @Summary Payment history
// @Tags Payments
// @Produce json
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /payments/history [get]
func (h *PaymentHandler) History(c *fiber.Ctx) error {
	params := pagination.GetParams(c)

	payments, meta, err := h.paymentService.History(c.Context(), params)
	if err != nil {
		return handleError(c, err)
	}

	// Meta fields sit flat beside the collection in this envelope
	return response.JSON(c, fiber.Map{
		"payments":     payments,
		"current_page": meta.CurrentPage,
		"total_pages":  meta.TotalPages,
		"total_count":  meta.TotalCount,
		"has_next":     meta.HasNext,
		"has_previous": meta.HasPrevious,
	})
}

// Methods returns available payment methods
// @Summary Payment methods
// @Tags Payments
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /payments/methods [get]
func (h *PaymentHandler) Methods(c *fiber.Ctx) error {
	return response.JSON(c, fiber.Map{"methods": h.paymentService.Methods()})
}

// Process initiates a payment
// @Summary Process payment
// @Description Initiate a payment against a loan
// @Tags Payments
// @Accept json
// @Produce json
// @Param body body services.ProcessInput true "Payment details"
// @Success 200 {object} services.ProcessResult
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Security BearerAuth
// @Router /payments/process [post]
func (h *PaymentHandler) Process(c *fiber.Ctx) error {
	var req services.ProcessInput
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body")
	}

	result, err := h.paymentService.Process(c.Context(), &req)
	if err != nil {
		return handleError(c, err)
	}

	return response.JSON(c, result)
}

// Status returns the status of a submitted payment
// @Summary Payment status
// @Tags Payments
// @Produce json
// @Param paymentId path string true "Payment ID"
// @Success 200 {object} services.StatusResult
// @Failure 404 {object} response.ErrorBody
// @Security BearerAuth
// @Router /payments/{paymentId}/status [get]
func (h *PaymentHandler) Status(c *fiber.Ctx) error {
	result, err := h.paymentService.Status(c.Context(), c.Params("paymentId"))
	if err != nil {
		return handleError(c, err)
	}

	return response.JSON(c, result)
}

// Receipt returns a receipt download link
// @Summary Payment receipt
// @Tags Payments
// @Produce json
// @Param receiptNumber path string true "Receipt number"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /payments/receipt/{receiptNumber} [get]
func (h *PaymentHandler) Receipt(c *fiber.Ctx) error {
	receiptNumber := c.Params("receiptNumber")

	return response.JSON(c, fiber.Map{
		"receipt_number": receiptNumber,
		"download_url":   "https://api.soshopay.co.zw/receipts/" + receiptNumber + ".pdf",
		"message":        "Receipt ready for download",
	})
}
