package models

import (
	"gorm.io/gorm"

	"soshopay-mockapi/internal/core/domain"
)

// Client represents the clients table
type Client struct {
	ID                 string `gorm:"primaryKey;size:36" json:"id"`
	FirstName          string `gorm:"size:50" json:"first_name"`
	LastName           string `gorm:"size:50" json:"last_name"`
	Mobile             string `gorm:"size:20;index" json:"mobile"`
	Email              string `gorm:"size:100" json:"email"`
	IDNumber           string `gorm:"size:30" json:"id_number"`
	DateOfBirth        string `gorm:"size:10" json:"date_of_birth"`
	Address            string `gorm:"size:255" json:"address"`
	VerificationStatus string `gorm:"size:20" json:"verification_status"`
	PIN                string `gorm:"column:pin;size:64" json:"pin"`
}

func (Client) TableName() string { return "clients" }

func (m *Client) ToDomain() *domain.Client {
	return &domain.Client{
		ID:                 m.ID,
		FirstName:          m.FirstName,
		LastName:           m.LastName,
		Mobile:             m.Mobile,
		Email:              m.Email,
		IDNumber:           m.IDNumber,
		DateOfBirth:        m.DateOfBirth,
		Address:            m.Address,
		VerificationStatus: m.VerificationStatus,
		PIN:                m.PIN,
	}
}

// Loan represents the loans table
type Loan struct {
	ID                 string  `gorm:"primaryKey;size:36" json:"id"`
	ClientID           string  `gorm:"size:36;index" json:"client_id"`
	LoanType           string  `gorm:"size:20" json:"loan_type"`
	ProductName        string  `gorm:"size:100" json:"product_name"`
	Status             int     `gorm:"index" json:"status"`
	PrincipalAmount    float64 `gorm:"type:decimal(12,2)" json:"principal_amount"`
	OutstandingBalance float64 `gorm:"type:decimal(12,2)" json:"outstanding_balance"`
	NextPaymentAmount  float64 `gorm:"type:decimal(12,2)" json:"next_payment_amount"`
	NextPaymentDate    string  `gorm:"size:30" json:"next_payment_date"`
	Penalties          float64 `gorm:"type:decimal(12,2)" json:"penalties"`
	StartDate          string  `gorm:"size:30" json:"start_date"`
}

func (Loan) TableName() string { return "loans" }

func (m *Loan) ToDomain() *domain.Loan {
	return &domain.Loan{
		ID:                 m.ID,
		ClientID:           m.ClientID,
		LoanType:           m.LoanType,
		ProductName:        m.ProductName,
		Status:             m.Status,
		PrincipalAmount:    m.PrincipalAmount,
		OutstandingBalance: m.OutstandingBalance,
		NextPaymentAmount:  m.NextPaymentAmount,
		NextPaymentDate:    m.NextPaymentDate,
		Penalties:          m.Penalties,
		StartDate:          m.StartDate,
	}
}

// SettledLoan represents the settled_loans table
type SettledLoan struct {
	ID             string  `gorm:"primaryKey;size:36" json:"id"`
	ClientID       string  `gorm:"size:36;index" json:"client_id"`
	LoanType       string  `gorm:"size:20" json:"loan_type"`
	ProductName    string  `gorm:"size:100" json:"product_name"`
	OriginalAmount float64 `gorm:"type:decimal(12,2)" json:"original_amount"`
	TotalPaid      float64 `gorm:"type:decimal(12,2)" json:"total_paid"`
	SettledAt      string  `gorm:"size:30" json:"settled_at"`
}

func (SettledLoan) TableName() string { return "settled_loans" }

func (m *SettledLoan) ToDomain() *domain.SettledLoan {
	return &domain.SettledLoan{
		ID:             m.ID,
		ClientID:       m.ClientID,
		LoanType:       m.LoanType,
		ProductName:    m.ProductName,
		OriginalAmount: m.OriginalAmount,
		TotalPaid:      m.TotalPaid,
		SettledAt:      m.SettledAt,
	}
}

// Payment represents the payments table. Seq preserves storage order for
// the dashboard's recent-activity slice.
type Payment struct {
	Seq           uint    `gorm:"primaryKey;autoIncrement" json:"-"`
	ID            string  `gorm:"size:36;index" json:"id"`
	ClientID      string  `gorm:"size:36;index" json:"client_id"`
	LoanID        string  `gorm:"size:36;index" json:"loan_id"`
	PaymentID     string  `gorm:"size:40;uniqueIndex" json:"payment_id"`
	Amount        float64 `gorm:"type:decimal(12,2)" json:"amount"`
	Method        string  `gorm:"size:30" json:"method"`
	PhoneNumber   string  `gorm:"size:20" json:"phone_number"`
	ReceiptNumber string  `gorm:"size:40" json:"receipt_number"`
	Status        string  `gorm:"size:20" json:"status"`
	ProcessedAt   string  `gorm:"size:30" json:"processed_at"`
	CreatedAt     string  `gorm:"size:30" json:"created_at"`
	Principal     float64 `gorm:"type:decimal(12,2)" json:"principal"`
	Interest      float64 `gorm:"type:decimal(12,2)" json:"interest"`
	Penalties     float64 `gorm:"type:decimal(12,2)" json:"penalties"`
}

func (Payment) TableName() string { return "payments" }

func (m *Payment) ToDomain() *domain.Payment {
	return &domain.Payment{
		ID:            m.ID,
		ClientID:      m.ClientID,
		LoanID:        m.LoanID,
		PaymentID:     m.PaymentID,
		Amount:        m.Amount,
		Method:        m.Method,
		PhoneNumber:   m.PhoneNumber,
		ReceiptNumber: m.ReceiptNumber,
		Status:        m.Status,
		ProcessedAt:   m.ProcessedAt,
		CreatedAt:     m.CreatedAt,
		Breakdown: domain.PaymentBreakdown{
			Principal: m.Principal,
			Interest:  m.Interest,
			Penalties: m.Penalties,
		},
	}
}

func PaymentFromDomain(p *domain.Payment) *Payment {
	return &Payment{
		ID:            p.ID,
		ClientID:      p.ClientID,
		LoanID:        p.LoanID,
		PaymentID:     p.PaymentID,
		Amount:        p.Amount,
		Method:        p.Method,
		PhoneNumber:   p.PhoneNumber,
		ReceiptNumber: p.ReceiptNumber,
		Status:        p.Status,
		ProcessedAt:   p.ProcessedAt,
		CreatedAt:     p.CreatedAt,
		Principal:     p.Breakdown.Principal,
		Interest:      p.Breakdown.Interest,
		Penalties:     p.Breakdown.Penalties,
	}
}

// Notification represents the notifications table
type Notification struct {
	ID        string `gorm:"primaryKey;size:36" json:"id"`
	ClientID  string `gorm:"size:36;index" json:"client_id"`
	Type      string `gorm:"size:30" json:"type"`
	Title     string `gorm:"size:100" json:"title"`
	Message   string `gorm:"type:text" json:"message"`
	IsRead    bool   `gorm:"index" json:"is_read"`
	ReadAt    string `gorm:"size:30" json:"read_at"`
	CreatedAt string `gorm:"size:30" json:"created_at"`
}

func (Notification) TableName() string { return "notifications" }

func (m *Notification) ToDomain() *domain.Notification {
	return &domain.Notification{
		ID:        m.ID,
		ClientID:  m.ClientID,
		Type:      m.Type,
		Title:     m.Title,
		Message:   m.Message,
		IsRead:    m.IsRead,
		ReadAt:    m.ReadAt,
		CreatedAt: m.CreatedAt,
	}
}

func NotificationFromDomain(n *domain.Notification) *Notification {
	return &Notification{
		ID:        n.ID,
		ClientID:  n.ClientID,
		Type:      n.Type,
		Title:     n.Title,
		Message:   n.Message,
		IsRead:    n.IsRead,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}

// Product represents the products table (PayGo catalog)
type Product struct {
	ID       string  `gorm:"primaryKey;size:36" json:"id"`
	Name     string  `gorm:"size:100" json:"name"`
	Category string  `gorm:"size:50" json:"category"`
	Price    float64 `gorm:"type:decimal(12,2)" json:"price"`
}

func (Product) TableName() string { return "products" }

func (m *Product) ToDomain() *domain.Product {
	return &domain.Product{
		ID:       m.ID,
		Name:     m.Name,
		Category: m.Category,
		Price:    m.Price,
	}
}

// AutoMigrate creates all tables if they do not exist
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&Client{},
		&Loan{},
		&SettledLoan{},
		&Payment{},
		&Notification{},
		&Product{},
	)
}
