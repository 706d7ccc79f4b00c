package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"soshopay-mockapi/internal/adapters/persistence/repositories"
	"soshopay-mockapi/internal/core/domain"
)

// LoanService handles loan listing and loan applications
type LoanService struct {
	loanRepo    repositories.LoanRepository
	settledRepo repositories.SettledLoanRepository
	calculator  *CalculatorService

	now func() time.Time
}

// NewLoanService creates a new loan service
func NewLoanService(
	loanRepo repositories.LoanRepository,
	settledRepo repositories.SettledLoanRepository,
	calculator *CalculatorService,
) *LoanService {
	return &LoanService{
		loanRepo:    loanRepo,
		settledRepo: settledRepo,
		calculator:  calculator,
		now:         time.Now,
	}
}

// ListLoans returns loans, optionally filtered by raw status code
func (s *LoanService) ListLoans(ctx context.Context, statusCode *int) ([]*domain.Loan, error) {
	return s.loanRepo.List(ctx, statusCode)
}

// GetLoan returns a loan by id
func (s *LoanService) GetLoan(ctx context.Context, id string) (*domain.Loan, error) {
	return s.loanRepo.GetByID(ctx, id)
}

// ListSettledLoans returns all settled loans
func (s *LoanService) ListSettledLoans(ctx context.Context) ([]*domain.SettledLoan, error) {
	return s.settledRepo.List(ctx)
}

// GetSettledLoan returns a settled loan by id
func (s *LoanService) GetSettledLoan(ctx context.Context, id string) (*domain.SettledLoan, error) {
	return s.settledRepo.GetByID(ctx, id)
}

// ApplicationResult acknowledges a submitted loan application. Application
// state is not persisted beyond this response.
type ApplicationResult struct {
	ApplicationID string      `json:"application_id"`
	Reference     string      `json:"reference"`
	Status        string      `json:"status"`
	SubmittedAt   string      `json:"submitted_at"`
	Quote         interface{} `json:"quote"`
}

// ApplyCash validates and acknowledges a cash loan application
func (s *LoanService) ApplyCash(ctx context.Context, input *CashQuoteInput) (*ApplicationResult, error) {
	quote, err := s.calculator.CashLoanQuote(input)
	if err != nil {
		return nil, err
	}

	result := s.newApplicationResult("CASH", quote)
	log.Printf("✅ Cash loan application received: %s (amount: %.2f)", result.Reference, input.LoanAmount)
	return result, nil
}

// ApplyPayGo validates and acknowledges a PayGo loan application
func (s *LoanService) ApplyPayGo(ctx context.Context, input *PayGoQuoteInput) (*ApplicationResult, error) {
	quote, err := s.calculator.PayGoLoanQuote(ctx, input)
	if err != nil {
		return nil, err
	}

	result := s.newApplicationResult("PAYGO", quote)
	log.Printf("✅ PayGo loan application received: %s (product: %s)", result.Reference, input.ProductID)
	return result, nil
}

func (s *LoanService) newApplicationResult(kind string, quote interface{}) *ApplicationResult {
	now := s.now().UTC()
	id := uuid.New().String()
	reference := fmt.Sprintf("APP-%s-%s", kind, strings.ToUpper(id[:8]))

	return &ApplicationResult{
		ApplicationID: id,
		Reference:     reference,
		Status:        "pending_review",
		SubmittedAt:   now.Format(time.RFC3339),
		Quote:         quote,
	}
}
