package memstore

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soshopay-mockapi/internal/core/domain"
)

func testDataset() *Dataset {
	return &Dataset{
		Clients: []*domain.Client{
			{ID: "client-001", Mobile: "+263 77 123 4567", PIN: "1234"},
		},
		Loans: []*domain.Loan{
			{ID: "loan-001", Status: domain.StatusCodeCurrent},
			{ID: "loan-002", Status: domain.StatusCodeOverdue},
		},
		Payments: []*domain.Payment{
			{ID: "pmt-001", PaymentID: "PAY001", Status: "completed"},
		},
		Notifications: []*domain.Notification{
			{ID: "notif-001", IsRead: false},
		},
	}
}

func TestLoadDataset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	raw := `{
		"clients": [{"id": "client-001", "mobile": "0771234567", "pin": "1234"}],
		"loans": [{"id": "loan-001", "status": 6, "outstanding_balance": 1500.5}],
		"products": [{"id": "prod-solar-50", "name": "Solar Home System 50W", "price": 420}]
	}`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	data, err := LoadDataset(path)
	require.NoError(t, err)

	require.Len(t, data.Clients, 1)
	assert.Equal(t, "client-001", data.Clients[0].ID)
	require.Len(t, data.Loans, 1)
	assert.Equal(t, domain.StatusCodeCurrent, data.Loans[0].Status)
	assert.Equal(t, 1500.5, data.Loans[0].OutstandingBalance)
	require.Len(t, data.Products, 1)
	assert.Equal(t, 420.0, data.Products[0].Price)
}

func TestLoadDatasetMissingFile(t *testing.T) {
	_, err := LoadDataset(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestClientGetByMobileNormalizes(t *testing.T) {
	repos := New(testDataset()).Repositories()
	ctx := context.Background()

	for _, mobile := range []string{"0771234567", "+263771234567", "263 77 123 4567", "771234567"} {
		client, err := repos.Clients.GetByMobile(ctx, mobile)
		require.NoError(t, err, "mobile %q", mobile)
		assert.Equal(t, "client-001", client.ID)
	}

	_, err := repos.Clients.GetByMobile(ctx, "0779999999")
	assert.ErrorIs(t, err, domain.ErrClientNotFound)

	_, err = repos.Clients.GetByMobile(ctx, "")
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}

func TestClientReadsCopyOut(t *testing.T) {
	repos := New(testDataset()).Repositories()
	ctx := context.Background()

	client, err := repos.Clients.GetByID(ctx, "client-001")
	require.NoError(t, err)
	client.PIN = "9999"

	// Mutating the returned record must not touch the store
	again, err := repos.Clients.GetByID(ctx, "client-001")
	require.NoError(t, err)
	assert.Equal(t, "1234", again.PIN)
}

func TestClientUpdatePIN(t *testing.T) {
	repos := New(testDataset()).Repositories()
	ctx := context.Background()

	require.NoError(t, repos.Clients.UpdatePIN(ctx, "client-001", "5678"))

	client, err := repos.Clients.GetByID(ctx, "client-001")
	require.NoError(t, err)
	assert.Equal(t, "5678", client.PIN)

	assert.ErrorIs(t, repos.Clients.UpdatePIN(ctx, "client-999", "5678"), domain.ErrClientNotFound)
}

func TestLoanListStatusFilter(t *testing.T) {
	repos := New(testDataset()).Repositories()
	ctx := context.Background()

	all, err := repos.Loans.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	current := domain.StatusCodeCurrent
	filtered, err := repos.Loans.List(ctx, &current)
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, "loan-001", filtered[0].ID)
}

func TestPaymentCreateAndUpdateStatus(t *testing.T) {
	repos := New(testDataset()).Repositories()
	ctx := context.Background()

	require.NoError(t, repos.Payments.Create(ctx, &domain.Payment{
		ID:        "pmt-002",
		PaymentID: "PAY002",
		Status:    "processing",
	}))

	// New records append; storage order is insertion order
	payments, err := repos.Payments.List(ctx)
	require.NoError(t, err)
	require.Len(t, payments, 2)
	assert.Equal(t, "PAY002", payments[1].PaymentID)

	require.NoError(t, repos.Payments.UpdateStatus(ctx, "PAY002", "completed", "2024-06-15T12:00:00Z"))

	updated, err := repos.Payments.GetByPaymentID(ctx, "PAY002")
	require.NoError(t, err)
	assert.Equal(t, "completed", updated.Status)
	assert.Equal(t, "2024-06-15T12:00:00Z", updated.ProcessedAt)

	assert.ErrorIs(t, repos.Payments.UpdateStatus(ctx, "PAY999", "completed", ""), domain.ErrPaymentNotFound)
}

func TestNotificationLifecycle(t *testing.T) {
	repos := New(testDataset()).Repositories()
	ctx := context.Background()

	count, err := repos.Notifications.CountUnread(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	require.NoError(t, repos.Notifications.MarkRead(ctx, "notif-001", "2024-06-15T12:00:00Z"))

	read, err := repos.Notifications.GetByID(ctx, "notif-001")
	require.NoError(t, err)
	assert.True(t, read.IsRead)
	assert.Equal(t, "2024-06-15T12:00:00Z", read.ReadAt)

	require.NoError(t, repos.Notifications.Delete(ctx, "notif-001"))
	_, err = repos.Notifications.GetByID(ctx, "notif-001")
	assert.ErrorIs(t, err, domain.ErrNotificationNotFound)
}

func TestNilDataset(t *testing.T) {
	repos := New(nil).Repositories()
	ctx := context.Background()

	loans, err := repos.Loans.List(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, loans)

	_, err = repos.Clients.First(ctx)
	assert.ErrorIs(t, err, domain.ErrClientNotFound)
}
