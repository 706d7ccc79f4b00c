package memstore

import (
	"context"

	"soshopay-mockapi/internal/core/domain"
	"soshopay-mockapi/internal/pkg/phone"
)

// clientRepository implements repositories.ClientRepository
type clientRepository struct {
	store *Memstore
}

func (r *clientRepository) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, client := range r.store.data.Clients {
		if client.ID == id {
			c := *client
			return &c, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *clientRepository) GetByMobile(ctx context.Context, mobile string) (*domain.Client, error) {
	normalized := phone.Normalize(mobile)
	if normalized == "" {
		return nil, domain.ErrClientNotFound
	}

	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, client := range r.store.data.Clients {
		if phone.Normalize(client.Mobile) == normalized {
			c := *client
			return &c, nil
		}
	}
	return nil, domain.ErrClientNotFound
}

func (r *clientRepository) First(ctx context.Context) (*domain.Client, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	if len(r.store.data.Clients) == 0 {
		return nil, domain.ErrClientNotFound
	}
	c := *r.store.data.Clients[0]
	return &c, nil
}

func (r *clientRepository) UpdatePIN(ctx context.Context, id, pin string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, client := range r.store.data.Clients {
		if client.ID == id {
			client.PIN = pin
			return nil
		}
	}
	return domain.ErrClientNotFound
}

// loanRepository implements repositories.LoanRepository
type loanRepository struct {
	store *Memstore
}

func (r *loanRepository) List(ctx context.Context, statusCode *int) ([]*domain.Loan, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	loans := make([]*domain.Loan, 0, len(r.store.data.Loans))
	for _, loan := range r.store.data.Loans {
		if statusCode != nil && loan.Status != *statusCode {
			continue
		}
		l := *loan
		loans = append(loans, &l)
	}
	return loans, nil
}

func (r *loanRepository) GetByID(ctx context.Context, id string) (*domain.Loan, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, loan := range r.store.data.Loans {
		if loan.ID == id {
			l := *loan
			return &l, nil
		}
	}
	return nil, domain.ErrLoanNotFound
}

// settledLoanRepository implements repositories.SettledLoanRepository
type settledLoanRepository struct {
	store *Memstore
}

func (r *settledLoanRepository) List(ctx context.Context) ([]*domain.SettledLoan, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	loans := make([]*domain.SettledLoan, 0, len(r.store.data.SettledLoans))
	for _, loan := range r.store.data.SettledLoans {
		l := *loan
		loans = append(loans, &l)
	}
	return loans, nil
}

func (r *settledLoanRepository) GetByID(ctx context.Context, id string) (*domain.SettledLoan, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, loan := range r.store.data.SettledLoans {
		if loan.ID == id {
			l := *loan
			return &l, nil
		}
	}
	return nil, domain.ErrSettledLoanNotFound
}

// paymentRepository implements repositories.PaymentRepository
type paymentRepository struct {
	store *Memstore
}

func (r *paymentRepository) List(ctx context.Context) ([]*domain.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	payments := make([]*domain.Payment, 0, len(r.store.data.Payments))
	for _, payment := range r.store.data.Payments {
		p := *payment
		payments = append(payments, &p)
	}
	return payments, nil
}

func (r *paymentRepository) GetByPaymentID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, payment := range r.store.data.Payments {
		if payment.PaymentID == paymentID {
			p := *payment
			return &p, nil
		}
	}
	return nil, domain.ErrPaymentNotFound
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	p := *payment
	r.store.data.Payments = append(r.store.data.Payments, &p)
	return nil
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, paymentID, status, processedAt string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, payment := range r.store.data.Payments {
		if payment.PaymentID == paymentID {
			payment.Status = status
			payment.ProcessedAt = processedAt
			return nil
		}
	}
	return domain.ErrPaymentNotFound
}

// notificationRepository implements repositories.NotificationRepository
type notificationRepository struct {
	store *Memstore
}

func (r *notificationRepository) List(ctx context.Context) ([]*domain.Notification, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	notifications := make([]*domain.Notification, 0, len(r.store.data.Notifications))
	for _, notification := range r.store.data.Notifications {
		n := *notification
		notifications = append(notifications, &n)
	}
	return notifications, nil
}

func (r *notificationRepository) GetByID(ctx context.Context, id string) (*domain.Notification, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, notification := range r.store.data.Notifications {
		if notification.ID == id {
			n := *notification
			return &n, nil
		}
	}
	return nil, domain.ErrNotificationNotFound
}

func (r *notificationRepository) Create(ctx context.Context, notification *domain.Notification) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	n := *notification
	r.store.data.Notifications = append(r.store.data.Notifications, &n)
	return nil
}

func (r *notificationRepository) MarkRead(ctx context.Context, id, readAt string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, notification := range r.store.data.Notifications {
		if notification.ID == id {
			notification.IsRead = true
			notification.ReadAt = readAt
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}

func (r *notificationRepository) MarkAllRead(ctx context.Context, readAt string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, notification := range r.store.data.Notifications {
		if !notification.IsRead {
			notification.IsRead = true
			notification.ReadAt = readAt
		}
	}
	return nil
}

func (r *notificationRepository) Delete(ctx context.Context, id string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for i, notification := range r.store.data.Notifications {
		if notification.ID == id {
			r.store.data.Notifications = append(r.store.data.Notifications[:i], r.store.data.Notifications[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotificationNotFound
}

func (r *notificationRepository) CountUnread(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	count := 0
	for _, notification := range r.store.data.Notifications {
		if !notification.IsRead {
			count++
		}
	}
	return count, nil
}

// productRepository implements repositories.ProductRepository
type productRepository struct {
	store *Memstore
}

func (r *productRepository) List(ctx context.Context) ([]*domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	products := make([]*domain.Product, 0, len(r.store.data.Products))
	for _, product := range r.store.data.Products {
		p := *product
		products = append(products, &p)
	}
	return products, nil
}

func (r *productRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, product := range r.store.data.Products {
		if product.ID == id {
			p := *product
			return &p, nil
		}
	}
	return nil, domain.ErrProductNotFound
}
