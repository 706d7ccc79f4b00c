package repositories

import (
	"context"

	"soshopay-mockapi/internal/core/domain"
)

// ClientRepository defines client record access
type ClientRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Client, error)
	// GetByMobile looks up a client by normalized mobile key. Stored
	// numbers may be in any of the three common formats; implementations
	// normalize both sides before comparing.
	GetByMobile(ctx context.Context, mobile string) (*domain.Client, error)
	First(ctx context.Context) (*domain.Client, error)
	UpdatePIN(ctx context.Context, id, pin string) error
}

// LoanRepository defines active loan record access (read-only)
type LoanRepository interface {
	List(ctx context.Context, statusCode *int) ([]*domain.Loan, error)
	GetByID(ctx context.Context, id string) (*domain.Loan, error)
}

// SettledLoanRepository defines settled loan record access (read-only)
type SettledLoanRepository interface {
	List(ctx context.Context) ([]*domain.SettledLoan, error)
	GetByID(ctx context.Context, id string) (*domain.SettledLoan, error)
}

// PaymentRepository defines payment record access. List returns records in
// storage order; the dashboard depends on that ordering.
type PaymentRepository interface {
	List(ctx context.Context) ([]*domain.Payment, error)
	GetByPaymentID(ctx context.Context, paymentID string) (*domain.Payment, error)
	Create(ctx context.Context, payment *domain.Payment) error
	UpdateStatus(ctx context.Context, paymentID, status, processedAt string) error
}

// NotificationRepository defines notification record access
type NotificationRepository interface {
	List(ctx context.Context) ([]*domain.Notification, error)
	GetByID(ctx context.Context, id string) (*domain.Notification, error)
	Create(ctx context.Context, notification *domain.Notification) error
	MarkRead(ctx context.Context, id, readAt string) error
	MarkAllRead(ctx context.Context, readAt string) error
	Delete(ctx context.Context, id string) error
	CountUnread(ctx context.Context) (int, error)
}

// ProductRepository defines PayGo product catalog access (read-only)
type ProductRepository interface {
	List(ctx context.Context) ([]*domain.Product, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
}

// Store bundles every repository behind one injection point
type Store struct {
	Clients       ClientRepository
	Loans         LoanRepository
	SettledLoans  SettledLoanRepository
	Payments      PaymentRepository
	Notifications NotificationRepository
	Products      ProductRepository
}
