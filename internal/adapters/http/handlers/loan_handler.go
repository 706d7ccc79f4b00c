package handlers

import (
	"strconv"

	"soshopay-mockapi/internal/core/services"
	"soshopay-mockapi/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// LoanHandler handles loan endpoints
type LoanHandler struct {
	loanService *services.LoanService
	calculator  *services.CalculatorService
}

// NewLoanHandler creates a new loan handler
func NewLoanHandler(loanService *services.LoanService, calculator *services.CalculatorService) *LoanHandler {
	return &LoanHandler{
		loanService: loanService,
		calculator:  calculator,
	}
}

// List returns the client's loans
// @Summary List loans
// @Description List loans, optionally filtered by raw status code
// @Tags Loans
// @Produce json
// @Param status query int false "Raw status code filter"
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /mobile/client/loans [get]
func (h *LoanHandler) List(c *fiber.Ctx) error {
	var statusCode *int
	if raw := c.Query("status"); raw != "" {
		if code, err := strconv.Atoi(raw); err == nil {
			statusCode = &code
		}
	}

	loans, err := h.loanService.ListLoans(c.Context(), statusCode)
	if err != nil {
		return handleError(c, err)
	}

	return response.JSON(c, fiber.Map{"loans": loans})
}

// Get returns a loan by id
// @Summary Get loan
// @Tags Loans
// @Produce json
// @Param id path string true "Loan ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} response.ErrorBody
// @Security BearerAuth
// @Router /mobile/client/loans/{id} [get]
func (h *LoanHandler) Get(c *fiber.Ctx) error {
	loan, err := h.loanService.GetLoan(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}

	return response.JSON(c, fiber.Map{"loan": loan})
}

// ListSettled returns all settled loans
// @Summary List settled loans
// @Tags Loans
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /mobile/client/loans/settled [get]
func (h *LoanHandler) ListSettled(c *fiber.Ctx) error {
	settled, err := h.loanService.ListSettledLoans(c.Context())
	if err != nil {
		return handleError(c, err)
	}

	return response.JSON(c, fiber.Map{"settled_loans": settled})
}

// GetSettled returns a settled loan by id
// @Summary Get settled loan
// @Tags Loans
// @Produce json
// @Param id path string true "Settled loan ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} response.ErrorBody
// @Security BearerAuth
// @Router /mobile/client/loans/settled/{id} [get]
func (h *LoanHandler) GetSettled(c *fiber.Ctx) error {
	settled, err := h.loanService.GetSettledLoan(c.Context(), c.Params("id"))
	if err != nil {
		return handleError(c, err)
	}

	return response.JSON(c, fiber.Map{"settled_loan": settled})
}

// CashQuote computes a cash loan quote
// @Summary Cash loan quote
// @Description Compute repayment terms for a lump-sum cash loan
// @Tags Loans
// @Accept json
// @Produce json
// @Param body body services.CashQuoteInput true "Quote inputs"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Router /mobile/client/loans/cash/calculate [post]
func (h *LoanHandler) CashQuote(c *fiber.Ctx) error {
	var req services.CashQuoteInput
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body")
	}

	quote, err := h.calculator.CashLoanQuote(&req)
	if err != nil {
		return handleError(c, err)
	}

	return response.JSON(c, fiber.Map{"quote": quote})
}

// PayGoQuote computes a PayGo loan quote
// @Summary PayGo loan quote
// @Description Compute repayment terms for a pay-per-use asset loan
// @Tags Loans
// @Accept json
// @Produce json
// @Param body body services.PayGoQuoteInput true "Quote inputs"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /mobile/client/loans/paygo/calculate [post]
func (h *LoanHandler) PayGoQuote(c *fiber.Ctx) error {
	var req services.PayGoQuoteInput
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body")
	}

	quote, err := h.calculator.PayGoLoanQuote(c.Context(), &req)
	if err != nil {
		return handleError(c, err)
	}

	return response.JSON(c, fiber.Map{"quote": quote})
}

// ApplyCash submits a cash loan application
// @Summary Apply for a cash loan
// @Tags Loans
// @Accept json
// @Produce json
// @Param body body services.CashQuoteInput true "Application data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Security BearerAuth
// @Router /mobile/client/loans/cash/apply [post]
func (h *LoanHandler) ApplyCash(c *fiber.Ctx) error {
	var req services.CashQuoteInput
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body")
	}

	result, err := h.loanService.ApplyCash(c.Context(), &req)
	if err != nil {
		return handleError(c, err)
	}

	return response.JSON(c, result)
}

// ApplyPayGo submits a PayGo loan application
// @Summary Apply for a PayGo loan
// @Tags Loans
// @Accept json
// @Produce json
// @Param body body services.PayGoQuoteInput true "Application data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Security BearerAuth
// @Router /mobile/client/loans/paygo/apply [post]
func (h *LoanHandler) ApplyPayGo(c *fiber.Ctx) error {
	var req services.PayGoQuoteInput
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body")
	}

	result, err := h.loanService.ApplyPayGo(c.Context(), &req)
	if err != nil {
		return handleError(c, err)
	}

	return response.JSON(c, result)
}
