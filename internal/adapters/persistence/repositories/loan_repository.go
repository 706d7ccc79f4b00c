package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"soshopay-mockapi/internal/adapters/persistence/models"
	"soshopay-mockapi/internal/core/domain"
)

// loanRepository implements LoanRepository over MySQL
type loanRepository struct {
	db *gorm.DB
}

// NewLoanRepository creates a new loan repository
func NewLoanRepository(db *gorm.DB) LoanRepository {
	return &loanRepository{db: db}
}

func (r *loanRepository) List(ctx context.Context, statusCode *int) ([]*domain.Loan, error) {
	query := r.db.WithContext(ctx).Model(&models.Loan{})
	if statusCode != nil {
		query = query.Where("status = ?", *statusCode)
	}

	var loans []models.Loan
	if err := query.Find(&loans).Error; err != nil {
		return nil, err
	}

	result := make([]*domain.Loan, len(loans))
	for i := range loans {
		result[i] = loans[i].ToDomain()
	}
	return result, nil
}

func (r *loanRepository) GetByID(ctx context.Context, id string) (*domain.Loan, error) {
	var loan models.Loan
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&loan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrLoanNotFound
		}
		return nil, err
	}
	return loan.ToDomain(), nil
}

// settledLoanRepository implements SettledLoanRepository over MySQL
type settledLoanRepository struct {
	db *gorm.DB
}

// NewSettledLoanRepository creates a new settled loan repository
func NewSettledLoanRepository(db *gorm.DB) SettledLoanRepository {
	return &settledLoanRepository{db: db}
}

func (r *settledLoanRepository) List(ctx context.Context) ([]*domain.SettledLoan, error) {
	var loans []models.SettledLoan
	if err := r.db.WithContext(ctx).Find(&loans).Error; err != nil {
		return nil, err
	}

	result := make([]*domain.SettledLoan, len(loans))
	for i := range loans {
		result[i] = loans[i].ToDomain()
	}
	return result, nil
}

func (r *settledLoanRepository) GetByID(ctx context.Context, id string) (*domain.SettledLoan, error) {
	var loan models.SettledLoan
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&loan).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrSettledLoanNotFound
		}
		return nil, err
	}
	return loan.ToDomain(), nil
}
