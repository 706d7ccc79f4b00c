package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"soshopay-mockapi/internal/adapters/persistence/models"
	"soshopay-mockapi/internal/core/domain"
)

// notificationRepository implements NotificationRepository over MySQL
type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) List(ctx context.Context) ([]*domain.Notification, error) {
	var notifications []models.Notification
	if err := r.db.WithContext(ctx).Order("created_at ASC").Find(&notifications).Error; err != nil {
		return nil, err
	}

	result := make([]*domain.Notification, len(notifications))
	for i := range notifications {
		result[i] = notifications[i].ToDomain()
	}
	return result, nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	var notification models.Notification
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&notification).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotificationNotFound
		}
		return nil, err
	}
	return notification.ToDomain(), nil
}

func (r *notificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	return r.db.WithContext(ctx).Create(models.NotificationFromDomain(notification)).Error
}

func (r *notificationRepository) MarkRead(ctx context.Context, id, readAt string) error {
	result := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": readAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, readAt string) error {
	return r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("is_read = ?", false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": readAt,
		}).Error
}

func (r *notificationRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Notification{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrNotificationNotFound
	}
	return nil
}

func (r *notificationRepository) CountUnread(ctx context.Context) (int, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Notification{}).
		Where("is_read = ?", false).
		Count(&count).Error
	return int(count), err
}

// productRepository implements ProductRepository over MySQL
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *gorm.DB) ProductRepository {
	return &productRepository{db: db}
}

func (r *productRepository) List(ctx context.Context) ([]*domain.Product, error) {
	var products []models.Product
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}

	result := make([]*domain.Product, len(products))
	for i := range products {
		result[i] = products[i].ToDomain()
	}
	return result, nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var product models.Product
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&product).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrProductNotFound
		}
		return nil, err
	}
	return product.ToDomain(), nil
}

// NewGormStore bundles the MySQL repositories
func NewGormStore(db *gorm.DB) *Store {
	return &Store{
		Clients:       NewClientRepository(db),
		Loans:         NewLoanRepository(db),
		SettledLoans:  NewSettledLoanRepository(db),
		Payments:      NewPaymentRepository(db),
		Notifications: NewNotificationRepository(db),
		Products:      NewProductRepository(db),
	}
}
