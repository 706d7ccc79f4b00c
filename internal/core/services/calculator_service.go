package services

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"soshopay-mockapi/internal/adapters/persistence/repositories"
	"soshopay-mockapi/internal/core/domain"
)

// Cash loan rate tiers (annual percent)
const (
	cashBaseRate      = 15.0
	cashMidTierRate   = 12.0 // principal > 10,000
	cashTopTierRate   = 10.0 // principal > 25,000
	cashLongTermCut   = 1.0  // total months > 12
	cashLongerTermCut = 0.5  // total months > 18
)

// PayGo amortization markup (flat, baked into the daily payment)
const paygoMarkup = 1.15

// ApprovalScorer estimates approval likelihood from collateral coverage.
// Presentation-only heuristic; swappable, never a gate.
type ApprovalScorer func(principal, collateralValue float64) string

// SavingsEstimator estimates PayGo savings from usage. Presentation-only
// heuristic, independent of the repayment math.
type SavingsEstimator func(dailyUsage float64, months int) float64

// DefaultApprovalScorer reports "High" when collateral covers 1.5x principal
func DefaultApprovalScorer(principal, collateralValue float64) string {
	if collateralValue >= 1.5*principal {
		return "High"
	}
	return "Medium"
}

// DefaultSavingsEstimator assumes half a dollar saved per usage unit per day
func DefaultSavingsEstimator(dailyUsage float64, months int) float64 {
	return dailyUsage * 0.5 * float64(months) * 30
}

// CalculatorService computes loan repayment quotes
type CalculatorService struct {
	productRepo repositories.ProductRepository

	ScoreApproval   ApprovalScorer
	EstimateSavings SavingsEstimator

	now func() time.Time
}

// NewCalculatorService creates a new calculator service
func NewCalculatorService(productRepo repositories.ProductRepository) *CalculatorService {
	return &CalculatorService{
		productRepo:     productRepo,
		ScoreApproval:   DefaultApprovalScorer,
		EstimateSavings: DefaultSavingsEstimator,
		now:             time.Now,
	}
}

// CashQuoteInput represents a cash loan quote request
type CashQuoteInput struct {
	LoanAmount       float64 `json:"loan_amount"`
	RepaymentPeriod  string  `json:"repayment_period"`
	EmployerIndustry string  `json:"employer_industry"`
	CollateralValue  float64 `json:"collateral_value"`
	MonthlyIncome    float64 `json:"monthly_income"`
}

// CashQuote is a computed cash loan quote. Payment dates are epoch
// milliseconds; token and payment timestamps elsewhere are ISO-8601
// strings. Clients rely on the per-field distinction.
type CashQuote struct {
	LoanAmount         float64 `json:"loan_amount"`
	RepaymentMonths    int     `json:"repayment_months"`
	InterestRate       float64 `json:"interest_rate"`
	InterestAmount     float64 `json:"interest_amount"`
	TotalRepayable     float64 `json:"total_repayable"`
	MonthlyPayment     float64 `json:"monthly_payment"`
	ProcessingFee      float64 `json:"processing_fee"`
	InsuranceFee       float64 `json:"insurance_fee"`
	TotalFees          float64 `json:"total_fees"`
	LoanToValueRatio   float64 `json:"loan_to_value_ratio"`
	ApprovalLikelihood string  `json:"approval_likelihood"`
	FirstPaymentDate   int64   `json:"first_payment_date"`
	LastPaymentDate    int64   `json:"last_payment_date"`
}

// CashLoanQuote computes repayment terms for a lump-sum cash loan
func (s *CalculatorService) CashLoanQuote(input *CashQuoteInput) (*CashQuote, error) {
	if input.LoanAmount == 0 {
		return nil, fmt.Errorf("%w: loan_amount is required", domain.ErrValidation)
	}
	if input.RepaymentPeriod == "" {
		return nil, fmt.Errorf("%w: repayment_period is required", domain.ErrValidation)
	}
	if input.EmployerIndustry == "" {
		return nil, fmt.Errorf("%w: employer_industry is required", domain.ErrValidation)
	}
	if input.CollateralValue == 0 {
		return nil, fmt.Errorf("%w: collateral_value is required", domain.ErrValidation)
	}
	if input.MonthlyIncome == 0 {
		return nil, fmt.Errorf("%w: monthly_income is required", domain.ErrValidation)
	}

	principal := input.LoanAmount
	months := ParseRepaymentMonths(input.RepaymentPeriod)

	// Principal tiers are absolute overrides; term discounts subtract from
	// whichever tier applied and stack with each other.
	rate := cashBaseRate
	if principal > 10000 {
		rate = cashMidTierRate
	}
	if principal > 25000 {
		rate = cashTopTierRate
	}
	if months > 12 {
		rate -= cashLongTermCut
	}
	if months > 18 {
		rate -= cashLongerTermCut
	}

	// Simple interest over the whole term
	interest := principal * rate * float64(months) / 1200
	total := principal + interest
	monthly := total / float64(months)

	now := s.now()

	return &CashQuote{
		LoanAmount:         round2(principal),
		RepaymentMonths:    months,
		InterestRate:       rate,
		InterestAmount:     round2(interest),
		TotalRepayable:     round2(total),
		MonthlyPayment:     round2(monthly),
		ProcessingFee:      round2(principal * 0.02),
		InsuranceFee:       round2(principal * 0.01),
		TotalFees:          round2(principal * 0.03),
		LoanToValueRatio:   round2(principal / input.CollateralValue * 100),
		ApprovalLikelihood: s.ScoreApproval(principal, input.CollateralValue),
		FirstPaymentDate:   now.Add(30 * 24 * time.Hour).UnixMilli(),
		LastPaymentDate:    now.Add(time.Duration(months) * 30 * 24 * time.Hour).UnixMilli(),
	}, nil
}

// PayGoQuoteInput represents a PayGo loan quote request
type PayGoQuoteInput struct {
	ProductID       string  `json:"product_id"`
	DailyUsage      float64 `json:"daily_usage"`
	RepaymentMonths int     `json:"repayment_months"`
	SalaryBand      string  `json:"salary_band"`
}

// PayGoQuote is a computed PayGo loan quote
type PayGoQuote struct {
	ProductID        string  `json:"product_id"`
	ProductName      string  `json:"product_name"`
	ProductPrice     float64 `json:"product_price"`
	DailyPayment     float64 `json:"daily_payment"`
	MonthlyPayment   float64 `json:"monthly_payment"`
	TotalAmount      float64 `json:"total_amount"`
	InterestAmount   float64 `json:"interest_amount"`
	NumberOfPayments int     `json:"number_of_payments"`
	RepaymentMonths  int     `json:"repayment_months"`
	EstimatedSavings float64 `json:"estimated_savings"`
}

// PayGoLoanQuote computes repayment terms for a pay-per-use asset loan.
// One payment per day over the whole term.
func (s *CalculatorService) PayGoLoanQuote(ctx context.Context, input *PayGoQuoteInput) (*PayGoQuote, error) {
	if input.ProductID == "" {
		return nil, fmt.Errorf("%w: product_id is required", domain.ErrValidation)
	}
	if input.DailyUsage == 0 {
		return nil, fmt.Errorf("%w: daily_usage is required", domain.ErrValidation)
	}
	if input.RepaymentMonths == 0 {
		return nil, fmt.Errorf("%w: repayment_months is required", domain.ErrValidation)
	}
	if input.SalaryBand == "" {
		return nil, fmt.Errorf("%w: salary_band is required", domain.ErrValidation)
	}

	product, err := s.productRepo.GetByID(ctx, input.ProductID)
	if err != nil {
		return nil, err
	}

	months := input.RepaymentMonths
	days := float64(months) * 30
	daily := product.Price / days * paygoMarkup
	total := daily * days

	return &PayGoQuote{
		ProductID:        product.ID,
		ProductName:      product.Name,
		ProductPrice:     round2(product.Price),
		DailyPayment:     round2(daily),
		MonthlyPayment:   round2(daily * 30),
		TotalAmount:      round2(total),
		InterestAmount:   round2(total - product.Price),
		NumberOfPayments: months * 30,
		RepaymentMonths:  months,
		EstimatedSavings: round2(s.EstimateSavings(input.DailyUsage, months)),
	}, nil
}

// ParseRepaymentMonths parses a repayment period descriptor such as
// "6 months" or "2 years" into a total month count. A descriptor with no
// numeric token defaults to 12 months.
func ParseRepaymentMonths(period string) int {
	months := 0
	for _, field := range strings.Fields(period) {
		if n, err := strconv.Atoi(field); err == nil {
			months = n
			break
		}
	}
	if months == 0 {
		return 12
	}
	if strings.Contains(strings.ToLower(period), "year") {
		months *= 12
	}
	return months
}

// round2 rounds a monetary value to 2 decimal places at the output boundary
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
