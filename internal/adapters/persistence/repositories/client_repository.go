package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"soshopay-mockapi/internal/adapters/persistence/models"
	"soshopay-mockapi/internal/core/domain"
	"soshopay-mockapi/internal/pkg/phone"
)

// clientRepository implements ClientRepository over MySQL
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	var client models.Client
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	return client.ToDomain(), nil
}

// GetByMobile compares normalized keys in Go. Stored numbers may carry any
// of the three regional formats, so the comparison cannot run in SQL.
// The mock dataset is small enough to scan.
func (r *clientRepository) GetByMobile(ctx context.Context, mobile string) (*domain.Client, error) {
	normalized := phone.Normalize(mobile)
	if normalized == "" {
		return nil, domain.ErrClientNotFound
	}

	var clients []models.Client
	if err := r.db.WithContext(ctx).Find(&clients).Error; err != nil {
		return nil, err
	}

	for i := range clients {
		if phone.Normalize(clients[i].Mobile) == normalized {
			return clients[i].ToDomain(), nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *clientRepository) First(ctx context.Context) (*domain.Client, error) {
	var client models.Client
	err := r.db.WithContext(ctx).Order("id ASC").First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrClientNotFound
		}
		return nil, err
	}
	return client.ToDomain(), nil
}

func (r *clientRepository) UpdatePIN(ctx context.Context, id, pin string) error {
	result := r.db.WithContext(ctx).Model(&models.Client{}).Where("id = ?", id).Update("pin", pin)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrClientNotFound
	}
	return nil
}
