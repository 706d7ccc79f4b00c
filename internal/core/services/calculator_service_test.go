package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soshopay-mockapi/internal/adapters/persistence/memstore"
	"soshopay-mockapi/internal/core/domain"
)

func newTestCalculator(products ...*domain.Product) *CalculatorService {
	data := &memstore.Dataset{Products: products}
	svc := NewCalculatorService(memstore.New(data).Repositories().Products)
	svc.now = func() time.Time { return time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func validCashInput() *CashQuoteInput {
	return &CashQuoteInput{
		LoanAmount:       20000,
		RepaymentPeriod:  "12 months",
		EmployerIndustry: "mining",
		CollateralValue:  35000,
		MonthlyIncome:    2500,
	}
}

func TestCashLoanQuote(t *testing.T) {
	svc := newTestCalculator()

	quote, err := svc.CashLoanQuote(validCashInput())
	require.NoError(t, err)

	assert.Equal(t, 12, quote.RepaymentMonths)
	assert.Equal(t, 12.0, quote.InterestRate)
	assert.Equal(t, 2400.0, quote.InterestAmount)
	assert.Equal(t, 22400.0, quote.TotalRepayable)
	assert.Equal(t, 1866.67, quote.MonthlyPayment)
	assert.Equal(t, 400.0, quote.ProcessingFee)
	assert.Equal(t, 200.0, quote.InsuranceFee)
	assert.Equal(t, 600.0, quote.TotalFees)
	assert.Equal(t, 57.14, quote.LoanToValueRatio)

	// Collateral 35000 covers 1.5x the 20000 principal
	assert.Equal(t, "High", quote.ApprovalLikelihood)

	base := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, base.Add(30*24*time.Hour).UnixMilli(), quote.FirstPaymentDate)
	assert.Equal(t, base.Add(12*30*24*time.Hour).UnixMilli(), quote.LastPaymentDate)
}

func TestCashLoanQuoteRateTiers(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		period   string
		wantRate float64
	}{
		{"base rate", 5000, "6 months", 15.0},
		{"at mid tier boundary", 10000, "6 months", 15.0},
		{"mid tier", 10001, "6 months", 12.0},
		{"at top tier boundary", 25000, "6 months", 12.0},
		{"top tier", 25001, "6 months", 10.0},
		{"long term cut", 5000, "18 months", 14.0},
		{"longer term stacks", 5000, "24 months", 13.5},
		{"top tier long term", 30000, "2 years", 8.5},
	}

	svc := newTestCalculator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validCashInput()
			input.LoanAmount = tt.amount
			input.RepaymentPeriod = tt.period

			quote, err := svc.CashLoanQuote(input)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRate, quote.InterestRate)
		})
	}
}

func TestCashLoanQuoteValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*CashQuoteInput)
	}{
		{"missing loan_amount", func(in *CashQuoteInput) { in.LoanAmount = 0 }},
		{"missing repayment_period", func(in *CashQuoteInput) { in.RepaymentPeriod = "" }},
		{"missing employer_industry", func(in *CashQuoteInput) { in.EmployerIndustry = "" }},
		{"missing collateral_value", func(in *CashQuoteInput) { in.CollateralValue = 0 }},
		{"missing monthly_income", func(in *CashQuoteInput) { in.MonthlyIncome = 0 }},
	}

	svc := newTestCalculator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validCashInput()
			tt.mutate(input)

			_, err := svc.CashLoanQuote(input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCashLoanQuoteApprovalLikelihood(t *testing.T) {
	tests := []struct {
		name       string
		collateral float64
		want       string
	}{
		{"at 1.5x boundary", 30000, "High"},
		{"above boundary", 35000, "High"},
		{"below boundary", 29999, "Medium"},
	}

	svc := newTestCalculator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validCashInput()
			input.CollateralValue = tt.collateral

			quote, err := svc.CashLoanQuote(input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, quote.ApprovalLikelihood)
		})
	}
}

func TestPayGoLoanQuote(t *testing.T) {
	svc := newTestCalculator(&domain.Product{
		ID:    "prod-solar-50",
		Name:  "Solar Home System 50W",
		Price: 420,
	})

	quote, err := svc.PayGoLoanQuote(context.Background(), &PayGoQuoteInput{
		ProductID:       "prod-solar-50",
		DailyUsage:      4,
		RepaymentMonths: 12,
		SalaryBand:      "200-500",
	})
	require.NoError(t, err)

	assert.Equal(t, "prod-solar-50", quote.ProductID)
	assert.Equal(t, 420.0, quote.ProductPrice)
	assert.Equal(t, 1.34, quote.DailyPayment)
	assert.Equal(t, 40.25, quote.MonthlyPayment)
	assert.Equal(t, 483.0, quote.TotalAmount)
	assert.Equal(t, 63.0, quote.InterestAmount)
	assert.Equal(t, 360, quote.NumberOfPayments)
	assert.Equal(t, 720.0, quote.EstimatedSavings)
}

func TestPayGoLoanQuoteUnknownProduct(t *testing.T) {
	svc := newTestCalculator()

	_, err := svc.PayGoLoanQuote(context.Background(), &PayGoQuoteInput{
		ProductID:       "prod-missing",
		DailyUsage:      4,
		RepaymentMonths: 12,
		SalaryBand:      "200-500",
	})
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
}

func TestPayGoLoanQuoteValidation(t *testing.T) {
	svc := newTestCalculator()

	_, err := svc.PayGoLoanQuote(context.Background(), &PayGoQuoteInput{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestParseRepaymentMonths(t *testing.T) {
	tests := []struct {
		period string
		want   int
	}{
		{"6 months", 6},
		{"12 months", 12},
		{"1 year", 12},
		{"2 years", 24},
		{"18", 18},
		{"monthly", 12},
		{"", 12},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, ParseRepaymentMonths(tt.period), "period %q", tt.period)
	}
}
