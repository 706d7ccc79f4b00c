package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"soshopay-mockapi/internal/adapters/persistence/models"
	"soshopay-mockapi/internal/core/domain"
)

// paymentRepository implements PaymentRepository over MySQL
type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// List returns payments in storage (insertion) order
func (r *paymentRepository) List(ctx context.Context) ([]*domain.Payment, error) {
	var payments []models.Payment
	if err := r.db.WithContext(ctx).Order("seq ASC").Find(&payments).Error; err != nil {
		return nil, err
	}

	result := make([]*domain.Payment, len(payments))
	for i := range payments {
		result[i] = payments[i].ToDomain()
	}
	return result, nil
}

func (r *paymentRepository) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	var payment models.Payment
	err := r.db.WithContext(ctx).Where("payment_id = ?", paymentID).First(&payment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, err
	}
	return payment.ToDomain(), nil
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	return r.db.WithContext(ctx).Create(models.PaymentFromDomain(payment)).Error
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, paymentID, status, processedAt string) error {
	result := r.db.WithContext(ctx).Model(&models.Payment{}).
		Where("payment_id = ?", paymentID).
		Updates(map[string]interface{}{
			"status":       status,
			"processed_at": processedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrPaymentNotFound
	}
	return nil
}
