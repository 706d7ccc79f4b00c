package domain

// Client represents a mobile app client record
type Client struct {
	ID                 string `json:"id"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Mobile             string `json:"mobile"`
	Email              string `json:"email"`
	IDNumber           string `json:"id_number"`
	DateOfBirth        string `json:"date_of_birth"`
	Address            string `json:"address"`
	VerificationStatus string `json:"verification_status"`
	PIN                string `json:"pin"`
}

// Loan represents an active loan record. Status is the raw storage code;
// NextPaymentDate is an ISO-8601 string as stored in the dataset.
type Loan struct {
	ID                 string  `json:"id"`
	ClientID           string  `json:"client_id"`
	LoanType           string  `json:"loan_type"`
	ProductName        string  `json:"product_name"`
	Status             int     `json:"status"`
	PrincipalAmount    float64 `json:"principal_amount"`
	OutstandingBalance float64 `json:"outstanding_balance"`
	NextPaymentAmount  float64 `json:"next_payment_amount"`
	NextPaymentDate    string  `json:"next_payment_date"`
	Penalties          float64 `json:"penalties"`
	StartDate          string  `json:"start_date"`
}

// SettledLoan is the terminal snapshot of a fully repaid loan
type SettledLoan struct {
	ID             string  `json:"id"`
	ClientID       string  `json:"client_id"`
	LoanType       string  `json:"loan_type"`
	ProductName    string  `json:"product_name"`
	OriginalAmount float64 `json:"original_amount"`
	TotalPaid      float64 `json:"total_paid"`
	SettledAt      string  `json:"settled_at"`
}

// PaymentBreakdown splits a payment into its components
type PaymentBreakdown struct {
	Principal float64 `json:"principal"`
	Interest  float64 `json:"interest"`
	Penalties float64 `json:"penalties"`
}

// Payment represents a payment record. Status is the raw storage string
// ("completed", "processing", ...); the core translates it, never rewrites it.
type Payment struct {
	ID            string           `json:"id"`
	ClientID      string           `json:"client_id"`
	LoanID        string           `json:"loan_id"`
	PaymentID     string           `json:"payment_id"`
	Amount        float64          `json:"amount"`
	Method        string           `json:"method"`
	PhoneNumber   string           `json:"phone_number"`
	ReceiptNumber string           `json:"receipt_number"`
	Status        string           `json:"status"`
	ProcessedAt   string           `json:"processed_at"`
	CreatedAt     string           `json:"created_at"`
	Breakdown     PaymentBreakdown `json:"breakdown"`
}

// Notification represents an in-app notification
type Notification struct {
	ID        string `json:"id"`
	ClientID  string `json:"client_id"`
	Type      string `json:"type"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read"`
	ReadAt    string `json:"read_at"`
	CreatedAt string `json:"created_at"`
}

// Product represents a PayGo product catalog entry
type Product struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Price    float64 `json:"price"`
}

// PaymentMethod represents an available payment channel
type PaymentMethod struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Type           string  `json:"type"`
	Provider       string  `json:"provider"`
	IsAvailable    bool    `json:"is_available"`
	MinimumAmount  float64 `json:"minimum_amount"`
	MaximumAmount  float64 `json:"maximum_amount"`
	TransactionFee float64 `json:"transaction_fee"`
	ProcessingTime string  `json:"processing_time"`
}
