package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soshopay-mockapi/internal/adapters/persistence/memstore"
	"soshopay-mockapi/internal/config"
	"soshopay-mockapi/internal/core/domain"
)

func authTestConfig() *config.Config {
	return &config.Config{
		Auth: config.AuthConfig{
			AccessTokenMins: 60,
			RefreshTokenHrs: 24,
		},
	}
}

func newTestAuthService(clients ...*domain.Client) *AuthService {
	store := memstore.New(&memstore.Dataset{Clients: clients}).Repositories()
	svc := NewAuthService(store.Clients, authTestConfig())
	svc.now = func() time.Time { return testNow }
	return svc
}

func testClient() *domain.Client {
	return &domain.Client{
		ID:        "client-001",
		FirstName: "Tendai",
		LastName:  "Moyo",
		Mobile:    "+263 77 123 4567",
		PIN:       "1234",
	}
}

func TestLogin(t *testing.T) {
	svc := newTestAuthService(testClient())

	session, err := svc.Login(context.Background(), &LoginInput{Mobile: "0771234567", PIN: "1234"})
	require.NoError(t, err)

	assert.Equal(t, "client-001", session.Client.ID)
	assert.Contains(t, session.Tokens.AccessToken, "mock_access_token_client-001_")
	assert.Contains(t, session.Tokens.RefreshToken, "mock_refresh_token_client-001_")
	assert.Equal(t, testNow.Add(time.Hour), session.Tokens.AccessExpiresAt)
	assert.Equal(t, testNow.Add(24*time.Hour), session.Tokens.RefreshExpiresAt)
}

func TestLoginMobileFormats(t *testing.T) {
	// The stored mobile carries spaces and a plus prefix; every client-side
	// format of the same subscriber number must authenticate.
	formats := []string{"0771234567", "+263771234567", "263771234567", "771234567", "077 123 4567"}

	svc := newTestAuthService(testClient())
	for _, mobile := range formats {
		_, err := svc.Login(context.Background(), &LoginInput{Mobile: mobile, PIN: "1234"})
		assert.NoError(t, err, "mobile %q", mobile)
	}
}

func TestLoginFailures(t *testing.T) {
	svc := newTestAuthService(testClient())

	_, err := svc.Login(context.Background(), &LoginInput{Mobile: "0779999999", PIN: "1234"})
	assert.ErrorIs(t, err, domain.ErrClientNotFound)

	_, err = svc.Login(context.Background(), &LoginInput{Mobile: "0771234567", PIN: "9999"})
	assert.ErrorIs(t, err, domain.ErrInvalidPIN)

	_, err = svc.Login(context.Background(), &LoginInput{Mobile: "", PIN: "1234"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Login(context.Background(), &LoginInput{Mobile: "0771234567", PIN: ""})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSetPIN(t *testing.T) {
	svc := newTestAuthService(testClient())

	result, err := svc.SetPIN(context.Background(), &SetPINInput{
		Mobile:     "0771234567",
		NewPIN:     "5678",
		ConfirmPIN: "5678",
	})
	require.NoError(t, err)

	assert.Contains(t, result.Token, "mock_token_client-001_")
	assert.Equal(t, testNow.Add(time.Hour), result.ExpiresAt)

	// New PIN is live immediately
	_, err = svc.Login(context.Background(), &LoginInput{Mobile: "0771234567", PIN: "5678"})
	assert.NoError(t, err)

	_, err = svc.Login(context.Background(), &LoginInput{Mobile: "0771234567", PIN: "1234"})
	assert.ErrorIs(t, err, domain.ErrInvalidPIN)
}

func TestSetPINValidation(t *testing.T) {
	tests := []struct {
		name  string
		input SetPINInput
	}{
		{"missing fields", SetPINInput{Mobile: "0771234567"}},
		{"mismatch", SetPINInput{Mobile: "0771234567", NewPIN: "5678", ConfirmPIN: "8765"}},
		{"bad format", SetPINInput{Mobile: "0771234567", NewPIN: "56789", ConfirmPIN: "56789"}},
	}

	svc := newTestAuthService(testClient())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.SetPIN(context.Background(), &tt.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestSetPINUnknownMobile(t *testing.T) {
	svc := newTestAuthService(testClient())

	_, err := svc.SetPIN(context.Background(), &SetPINInput{
		Mobile:     "0779999999",
		NewPIN:     "5678",
		ConfirmPIN: "5678",
	})
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestChangePIN(t *testing.T) {
	svc := newTestAuthService(testClient())

	err := svc.ChangePIN(context.Background(), &ChangePINInput{
		CurrentPIN: "1234",
		NewPIN:     "4321",
		ConfirmPIN: "4321",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &LoginInput{Mobile: "0771234567", PIN: "4321"})
	assert.NoError(t, err)
}

func TestChangePINWrongCurrent(t *testing.T) {
	svc := newTestAuthService(testClient())

	err := svc.ChangePIN(context.Background(), &ChangePINInput{
		CurrentPIN: "0000",
		NewPIN:     "4321",
		ConfirmPIN: "4321",
	})
	assert.ErrorIs(t, err, domain.ErrInvalidPIN)
}

func TestRefresh(t *testing.T) {
	svc := newTestAuthService(testClient())

	pair, err := svc.Refresh("mock_refresh_token_client-001_1717243200000")
	require.NoError(t, err)

	assert.Contains(t, pair.AccessToken, "mock_access_token_refreshed_")
	assert.Contains(t, pair.RefreshToken, "mock_refresh_token_refreshed_")
	assert.Equal(t, testNow.Add(time.Hour), pair.AccessExpiresAt)
	assert.Equal(t, testNow.Add(24*time.Hour), pair.RefreshExpiresAt)
}

func TestRefreshRejectsSentinels(t *testing.T) {
	svc := newTestAuthService(testClient())

	_, err := svc.Refresh("expired")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, err = svc.Refresh("invalid")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, err = svc.Refresh("")
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestRefreshAcceptsAnyOpaqueToken(t *testing.T) {
	// Tokens carry no signature, so any non-sentinel value refreshes
	svc := newTestAuthService(testClient())

	pair, err := svc.Refresh("anything-at-all")
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
}

func TestHashedPINRoundTrip(t *testing.T) {
	cfg := authTestConfig()
	cfg.Auth.HashPINs = true

	store := memstore.New(&memstore.Dataset{Clients: []*domain.Client{testClient()}}).Repositories()
	svc := NewAuthService(store.Clients, cfg)
	svc.now = func() time.Time { return testNow }

	_, err := svc.SetPIN(context.Background(), &SetPINInput{
		Mobile:     "0771234567",
		NewPIN:     "5678",
		ConfirmPIN: "5678",
	})
	require.NoError(t, err)

	// Stored value is a bcrypt hash, not the PIN itself
	stored, err := store.Clients.GetByID(context.Background(), "client-001")
	require.NoError(t, err)
	assert.NotEqual(t, "5678", stored.PIN)

	_, err = svc.Login(context.Background(), &LoginInput{Mobile: "0771234567", PIN: "5678"})
	assert.NoError(t, err)
}
