package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"soshopay-mockapi/internal/adapters/persistence/repositories"
	"soshopay-mockapi/internal/config"
	"soshopay-mockapi/internal/core/domain"
	"soshopay-mockapi/internal/pkg/phone"
	"soshopay-mockapi/internal/pkg/pin"
	"soshopay-mockapi/internal/pkg/token"
)

// AuthService handles the mock session lifecycle
type AuthService struct {
	clientRepo repositories.ClientRepository
	accessTTL  time.Duration
	refreshTTL time.Duration
	hashPINs   bool

	now func() time.Time
}

// NewAuthService creates a new auth service
func NewAuthService(clientRepo repositories.ClientRepository, cfg *config.Config) *AuthService {
	return &AuthService{
		clientRepo: clientRepo,
		accessTTL:  time.Duration(cfg.Auth.AccessTokenMins) * time.Minute,
		refreshTTL: time.Duration(cfg.Auth.RefreshTokenHrs) * time.Hour,
		hashPINs:   cfg.Auth.HashPINs,
		now:        time.Now,
	}
}

// LoginInput represents login input
type LoginInput struct {
	Mobile string `json:"mobile"`
	PIN    string `json:"pin"`
}

// Session represents an issued token pair plus the authenticated client
type Session struct {
	Tokens token.Pair
	Client *domain.Client
}

// Login authenticates a client by normalized mobile key and PIN
func (s *AuthService) Login(ctx context.Context, input *LoginInput) (*Session, error) {
	if input.Mobile == "" || input.PIN == "" {
		return nil, fmt.Errorf("%w: mobile and pin are required", domain.ErrValidation)
	}

	normalized := phone.Normalize(input.Mobile)

	client, err := s.clientRepo.GetByMobile(ctx, input.Mobile)
	if err != nil {
		log.Printf("[LOGIN] Client not found for mobile: %s (normalized: %s)", input.Mobile, normalized)
		return nil, err
	}

	if !pin.Verify(input.PIN, client.PIN) {
		log.Printf("[LOGIN] Invalid PIN for client: %s", client.ID)
		return nil, domain.ErrInvalidPIN
	}

	log.Printf("[LOGIN] Successful login for client: %s (%s %s)", client.ID, client.FirstName, client.LastName)

	return &Session{
		Tokens: token.MintPair(client.ID, s.now(), s.accessTTL, s.refreshTTL),
		Client: client,
	}, nil
}

// SetPINInput represents first-time PIN setup input
type SetPINInput struct {
	Mobile     string `json:"mobile"`
	NewPIN     string `json:"new_pin"`
	ConfirmPIN string `json:"confirm_pin"`
}

// SetPINResult represents the single session token returned by set-pin
type SetPINResult struct {
	Token     string
	ExpiresAt time.Time
	Client    *domain.Client
}

// SetPIN sets a client's PIN by mobile lookup and issues a session token
func (s *AuthService) SetPIN(ctx context.Context, input *SetPINInput) (*SetPINResult, error) {
	if input.Mobile == "" || input.NewPIN == "" || input.ConfirmPIN == "" {
		return nil, fmt.Errorf("%w: mobile, new_pin, and confirm_pin are required", domain.ErrValidation)
	}
	if input.NewPIN != input.ConfirmPIN {
		return nil, fmt.Errorf("%w: PINs do not match", domain.ErrValidation)
	}
	if !pin.ValidateFormat(input.NewPIN) {
		return nil, fmt.Errorf("%w: PIN must be 4 digits", domain.ErrValidation)
	}

	client, err := s.clientRepo.GetByMobile(ctx, input.Mobile)
	if err != nil {
		log.Printf("[SET-PIN] Client not found for mobile: %s", input.Mobile)
		return nil, err
	}

	stored, err := s.storablePIN(input.NewPIN)
	if err != nil {
		return nil, err
	}
	if err := s.clientRepo.UpdatePIN(ctx, client.ID, stored); err != nil {
		return nil, err
	}

	sessionToken, expiresAt := token.MintSingle(client.ID, s.now(), s.accessTTL)

	log.Printf("[SET-PIN] PIN set successfully for client: %s", client.ID)

	return &SetPINResult{
		Token:     sessionToken,
		ExpiresAt: expiresAt,
		Client:    client,
	}, nil
}

// ChangePINInput represents PIN change input for an authenticated client
type ChangePINInput struct {
	CurrentPIN string `json:"current_pin"`
	NewPIN     string `json:"new_pin"`
	ConfirmPIN string `json:"confirm_pin"`
}

// ChangePIN overwrites the stored PIN after verifying the current one.
// The mock session carries no identity, so "current client" is the first
// record, the same client every protected route serves.
func (s *AuthService) ChangePIN(ctx context.Context, input *ChangePINInput) error {
	if input.CurrentPIN == "" || input.NewPIN == "" || input.ConfirmPIN == "" {
		return fmt.Errorf("%w: all PIN fields are required", domain.ErrValidation)
	}
	if input.NewPIN != input.ConfirmPIN {
		return fmt.Errorf("%w: new PINs do not match", domain.ErrValidation)
	}
	if !pin.ValidateFormat(input.NewPIN) {
		return fmt.Errorf("%w: PIN must be 4 digits", domain.ErrValidation)
	}

	client, err := s.clientRepo.First(ctx)
	if err != nil {
		return err
	}

	if !pin.Verify(input.CurrentPIN, client.PIN) {
		return domain.ErrInvalidPIN
	}

	stored, err := s.storablePIN(input.NewPIN)
	if err != nil {
		return err
	}
	return s.clientRepo.UpdatePIN(ctx, client.ID, stored)
}

// Refresh exchanges a refresh token for a freshly minted pair. Tokens are
// opaque in the mock; only the sentinel literals are rejected.
func (s *AuthService) Refresh(refreshToken string) (*token.Pair, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("%w: refresh token is required", domain.ErrValidation)
	}
	if token.IsSentinel(refreshToken) {
		return nil, domain.ErrTokenInvalid
	}

	pair := token.MintRefreshedPair(s.now(), s.accessTTL, s.refreshTTL)
	return &pair, nil
}

// AccessTTLSeconds returns the access token lifetime in seconds
func (s *AuthService) AccessTTLSeconds() int {
	return int(s.accessTTL.Seconds())
}

// storablePIN returns the value to persist for a new PIN
func (s *AuthService) storablePIN(newPIN string) (string, error) {
	if !s.hashPINs {
		return newPIN, nil
	}
	return pin.Hash(newPIN)
}
