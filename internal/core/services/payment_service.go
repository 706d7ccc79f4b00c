package services

import (
	"context"
	"fmt"
	"log"
	"math"
	"time"

	"soshopay-mockapi/internal/adapters/persistence/repositories"
	"soshopay-mockapi/internal/core/domain"
	"soshopay-mockapi/internal/pkg/pagination"
)

// PaymentService handles payment aggregation and processing
type PaymentService struct {
	loanRepo    repositories.LoanRepository
	paymentRepo repositories.PaymentRepository

	now func() time.Time
}

// NewPaymentService creates a new payment service
func NewPaymentService(loanRepo repositories.LoanRepository, paymentRepo repositories.PaymentRepository) *PaymentService {
	return &PaymentService{
		loanRepo:    loanRepo,
		paymentRepo: paymentRepo,
		now:         time.Now,
	}
}

// PaymentView is a payment record with its status translated to the
// canonical enumeration. Date fields pass through as stored.
type PaymentView struct {
	ID            string                  `json:"id"`
	LoanID        string                  `json:"loan_id"`
	PaymentID     string                  `json:"payment_id"`
	Amount        float64                 `json:"amount"`
	Method        string                  `json:"method"`
	PhoneNumber   string                  `json:"phone_number"`
	ReceiptNumber string                  `json:"receipt_number"`
	Status        domain.Status           `json:"status"`
	ProcessedAt   string                  `json:"processed_at"`
	CreatedAt     string                  `json:"created_at"`
	Breakdown     domain.PaymentBreakdown `json:"breakdown"`
}

// NewPaymentView projects a payment through the binary status collapse
func NewPaymentView(p *domain.Payment) *PaymentView {
	return &PaymentView{
		ID:            p.ID,
		LoanID:        p.LoanID,
		PaymentID:     p.PaymentID,
		Amount:        p.Amount,
		Method:        p.Method,
		PhoneNumber:   p.PhoneNumber,
		ReceiptNumber: p.ReceiptNumber,
		Status:        domain.PaymentStatusFromRaw(p.Status),
		ProcessedAt:   p.ProcessedAt,
		CreatedAt:     p.CreatedAt,
		Breakdown:     p.Breakdown,
	}
}

// PaymentSummary is the per-loan repayment line on the dashboard
type PaymentSummary struct {
	LoanID       string          `json:"loan_id"`
	LoanType     domain.LoanType `json:"loan_type"`
	ProductName  string          `json:"product_name"`
	AmountDue    float64         `json:"amount_due"`
	DueDate      string          `json:"due_date"`
	Status       domain.Status   `json:"status"`
	DaysUntilDue int             `json:"days_until_due"`
	DaysOverdue  int             `json:"days_overdue"`
	Penalties    float64         `json:"penalties"`
}

// Dashboard is the aggregated payment view of a client's loans
type Dashboard struct {
	TotalOutstanding  float64           `json:"total_outstanding"`
	NextPaymentAmount float64           `json:"next_payment_amount"`
	NextPaymentDate   string            `json:"next_payment_date"`
	OverdueAmount     float64           `json:"overdue_amount"`
	OverdueCount      int               `json:"overdue_count"`
	PaymentSummaries  []*PaymentSummary `json:"payment_summaries"`
	RecentPayments    []*PaymentView    `json:"recent_payments"`
}

// BuildDashboard aggregates loans and payments into the dashboard view.
// Read-side projection only; nothing is written.
func (s *PaymentService) BuildDashboard(ctx context.Context) (*Dashboard, error) {
	loans, err := s.loanRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	dashboard := &Dashboard{
		PaymentSummaries: make([]*PaymentSummary, 0, len(loans)),
	}

	// A loan is overdue when its next-payment date is strictly before now.
	// The status code deliberately plays no part in the test; see the
	// lookahead below for where status does matter.
	for _, loan := range loans {
		dashboard.TotalOutstanding += loan.OutstandingBalance

		due, hasDue := parseDate(loan.NextPaymentDate)
		if hasDue && due.Before(now) {
			dashboard.OverdueAmount += loan.NextPaymentAmount
			dashboard.OverdueCount++
		}

		daysUntilDue := 0
		if hasDue {
			daysUntilDue = ceilDays(due.Sub(now))
		}
		daysOverdue := 0
		if daysUntilDue < 0 {
			daysOverdue = -daysUntilDue
		}

		dashboard.PaymentSummaries = append(dashboard.PaymentSummaries, &PaymentSummary{
			LoanID:       loan.ID,
			LoanType:     domain.LoanTypeFromRaw(loan.LoanType),
			ProductName:  loan.ProductName,
			AmountDue:    loan.NextPaymentAmount,
			DueDate:      loan.NextPaymentDate,
			Status:       domain.StatusFromCode(loan.Status),
			DaysUntilDue: daysUntilDue,
			DaysOverdue:  daysOverdue,
			Penalties:    loan.Penalties,
		})
	}

	// Headline next payment: earliest due date among active loans
	var nextDue time.Time
	for _, loan := range loans {
		if loan.Status != domain.StatusCodeCurrent {
			continue
		}
		due, ok := parseDate(loan.NextPaymentDate)
		if !ok {
			continue
		}
		if dashboard.NextPaymentDate == "" || due.Before(nextDue) {
			nextDue = due
			dashboard.NextPaymentAmount = loan.NextPaymentAmount
			dashboard.NextPaymentDate = loan.NextPaymentDate
		}
	}

	// Last five payments in storage order, newest first
	start := len(payments) - 5
	if start < 0 {
		start = 0
	}
	recent := payments[start:]
	dashboard.RecentPayments = make([]*PaymentView, 0, len(recent))
	for i := len(recent) - 1; i >= 0; i-- {
		dashboard.RecentPayments = append(dashboard.RecentPayments, NewPaymentView(recent[i]))
	}

	dashboard.TotalOutstanding = round2(dashboard.TotalOutstanding)
	dashboard.OverdueAmount = round2(dashboard.OverdueAmount)

	return dashboard, nil
}

// History returns translated payment records, paginated in storage order
func (s *PaymentService) History(ctx context.Context, params *pagination.Params) ([]*PaymentView, *pagination.Meta, error) {
	payments, err := s.paymentRepo.List(ctx)
	if err != nil {
		return nil, nil, err
	}

	views := make([]*PaymentView, len(payments))
	for i, p := range payments {
		views[i] = NewPaymentView(p)
	}

	page, meta := pagination.Paginate(views, params)
	return page, meta, nil
}

// Methods returns the available payment channels
func (s *PaymentService) Methods() []*domain.PaymentMethod {
	return []*domain.PaymentMethod{
		{
			ID:             "ecocash",
			Name:           "EcoCash",
			Type:           "mobile_money",
			Provider:       "Econet",
			IsAvailable:    true,
			MinimumAmount:  1.0,
			MaximumAmount:  500000.0,
			TransactionFee: 0.0,
			ProcessingTime: "2-5 minutes",
		},
	}
}

// ProcessInput represents a payment processing request
type ProcessInput struct {
	LoanID        string  `json:"loan_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
	PhoneNumber   string  `json:"phone_number"`
}

// ProcessResult acknowledges an accepted payment
type ProcessResult struct {
	PaymentID           string `json:"payment_id"`
	ReceiptNumber       string `json:"receipt_number"`
	Status              string `json:"status"`
	Message             string `json:"message"`
	EstimatedCompletion string `json:"estimated_completion"`
}

// Process accepts a payment and records it as processing. The settlement
// sweep completes it later; no gateway is involved.
func (s *PaymentService) Process(ctx context.Context, input *ProcessInput) (*ProcessResult, error) {
	if input.LoanID == "" || input.Amount == 0 || input.PaymentMethod == "" || input.PhoneNumber == "" {
		return nil, fmt.Errorf("%w: all payment fields are required", domain.ErrValidation)
	}

	now := s.now()
	ms := now.UnixMilli()
	paymentID := fmt.Sprintf("PAY%d", ms)
	receiptNumber := fmt.Sprintf("REC%d", ms)
	estimatedCompletion := now.Add(3 * time.Minute).UTC().Format(time.RFC3339)

	payment := &domain.Payment{
		ID:            paymentID,
		LoanID:        input.LoanID,
		PaymentID:     paymentID,
		Amount:        input.Amount,
		Method:        input.PaymentMethod,
		PhoneNumber:   input.PhoneNumber,
		ReceiptNumber: receiptNumber,
		Status:        "processing",
		CreatedAt:     now.UTC().Format(time.RFC3339),
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	log.Printf("✅ Payment accepted: %s (loan: %s, amount: %.2f)", paymentID, input.LoanID, input.Amount)

	return &ProcessResult{
		PaymentID:           paymentID,
		ReceiptNumber:       receiptNumber,
		Status:              "processing",
		Message:             "Payment is being processed. Please wait 2-5 minutes.",
		EstimatedCompletion: estimatedCompletion,
	}, nil
}

// StatusResult represents a payment status lookup
type StatusResult struct {
	PaymentID     string        `json:"payment_id"`
	Status        domain.Status `json:"status"`
	Amount        float64       `json:"amount"`
	ReceiptNumber string        `json:"receipt_number"`
	ProcessedAt   string        `json:"processed_at"`
}

// Status returns the translated status of a payment by payment id
func (s *PaymentService) Status(ctx context.Context, paymentID string) (*StatusResult, error) {
	payment, err := s.paymentRepo.GetByPaymentID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	return &StatusResult{
		PaymentID:     payment.PaymentID,
		Status:        domain.PaymentStatusFromRaw(payment.Status),
		Amount:        payment.Amount,
		ReceiptNumber: payment.ReceiptNumber,
		ProcessedAt:   payment.ProcessedAt,
	}, nil
}

// parseDate parses a stored date string. Records carry either full
// ISO-8601 timestamps or bare dates.
func parseDate(value string) (time.Time, bool) {
	if value == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, true
	}
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// ceilDays converts a duration to whole days, rounding up
func ceilDays(d time.Duration) int {
	return int(math.Ceil(d.Hours() / 24))
}
