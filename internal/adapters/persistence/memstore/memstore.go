package memstore

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"soshopay-mockapi/internal/adapters/persistence/repositories"
	"soshopay-mockapi/internal/core/domain"
)

// Dataset is the static JSON dataset backing the mock store
type Dataset struct {
	Clients       []*domain.Client       `json:"clients"`
	Loans         []*domain.Loan         `json:"loans"`
	SettledLoans  []*domain.SettledLoan  `json:"settled_loans"`
	Payments      []*domain.Payment      `json:"payments"`
	Notifications []*domain.Notification `json:"notifications"`
	Products      []*domain.Product      `json:"products"`
}

// Memstore holds the dataset in memory. Writes mutate the in-memory copy
// only; durability is out of scope for the mock.
type Memstore struct {
	mu   sync.RWMutex
	data *Dataset
}

// New creates a memstore over a dataset
func New(data *Dataset) *Memstore {
	if data == nil {
		data = &Dataset{}
	}
	return &Memstore{data: data}
}

// LoadDataset reads a dataset from a JSON file
func LoadDataset(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}

	var data Dataset
	if err := json.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return &data, nil
}

// Repositories exposes the memstore through the repository interfaces
func (m *Memstore) Repositories() *repositories.Store {
	return &repositories.Store{
		Clients:       &clientRepository{store: m},
		Loans:         &loanRepository{store: m},
		SettledLoans:  &settledLoanRepository{store: m},
		Payments:      &paymentRepository{store: m},
		Notifications: &notificationRepository{store: m},
		Products:      &productRepository{store: m},
	}
}
