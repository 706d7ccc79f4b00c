package services

import (
	"context"

	"soshopay-mockapi/internal/adapters/persistence/repositories"
	"soshopay-mockapi/internal/core/domain"
)

// ClientService handles client profile operations
type ClientService struct {
	clientRepo repositories.ClientRepository
}

// NewClientService creates a new client service
func NewClientService(clientRepo repositories.ClientRepository) *ClientService {
	return &ClientService{clientRepo: clientRepo}
}

// Profile is the client profile projection. The PIN never crosses the
// boundary.
type Profile struct {
	ID                 string `json:"id"`
	FirstName          string `json:"first_name"`
	LastName           string `json:"last_name"`
	Mobile             string `json:"mobile"`
	Email              string `json:"email"`
	IDNumber           string `json:"id_number"`
	DateOfBirth        string `json:"date_of_birth"`
	Address            string `json:"address"`
	VerificationStatus string `json:"verification_status"`
}

// NewProfile projects a client record into its profile view
func NewProfile(client *domain.Client) *Profile {
	return &Profile{
		ID:                 client.ID,
		FirstName:          client.FirstName,
		LastName:           client.LastName,
		Mobile:             client.Mobile,
		Email:              client.Email,
		IDNumber:           client.IDNumber,
		DateOfBirth:        client.DateOfBirth,
		Address:            client.Address,
		VerificationStatus: client.VerificationStatus,
	}
}

// GetProfile returns the current client's profile. The mock dataset holds a
// single client, so "current" is the first record.
func (s *ClientService) GetProfile(ctx context.Context) (*Profile, error) {
	client, err := s.clientRepo.First(ctx)
	if err != nil {
		return nil, err
	}
	return NewProfile(client), nil
}
