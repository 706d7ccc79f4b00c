package routes

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"soshopay-mockapi/internal/adapters/persistence/memstore"
	"soshopay-mockapi/internal/config"
	"soshopay-mockapi/internal/core/domain"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	cfg := &config.Config{
		AppMode: "dev",
		Port:    "8080",
		Store:   config.StoreConfig{Driver: "memory"},
		Auth:    config.AuthConfig{AccessTokenMins: 60, RefreshTokenHrs: 24},
	}
	config.AppConfig = cfg

	store := memstore.New(&memstore.Dataset{
		Clients: []*domain.Client{
			{ID: "client-001", FirstName: "Tendai", LastName: "Moyo", Mobile: "+263 77 123 4567", PIN: "1234"},
		},
		Loans: []*domain.Loan{
			{ID: "loan-001", LoanType: "cash", Status: domain.StatusCodeCurrent, OutstandingBalance: 1500.50, NextPaymentAmount: 250, NextPaymentDate: "2099-01-01"},
		},
		SettledLoans: []*domain.SettledLoan{
			{ID: "settled-001", LoanType: "cash"},
		},
		Notifications: []*domain.Notification{
			{ID: "notif-001", Title: "Payment due soon", IsRead: false},
		},
		Products: []*domain.Product{
			{ID: "prod-solar-50", Name: "Solar Home System 50W", Price: 420},
		},
	}).Repositories()

	app := fiber.New()
	Setup(app, store, cfg)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, body, bearer string) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reqBody io.Reader
	if body != "" {
		reqBody = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reqBody)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]interface{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &decoded))
	}
	return resp, decoded
}

func TestLoginEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, "POST", "/api/mobile/client/login",
		`{"mobile": "0771234567", "pin": "1234"}`, "")

	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body["access_token"], "mock_access_token_client-001_")
	assert.Equal(t, "Bearer", body["access_token_type"])
	assert.Contains(t, body["refresh_token"], "mock_refresh_token_client-001_")
	assert.Equal(t, "unknown", body["device_id"])

	client := body["client"].(map[string]interface{})
	assert.Equal(t, "Tendai", client["first_name"])
}

func TestLoginEndpointFailures(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, "POST", "/api/mobile/client/login",
		`{"mobile": "0771234567", "pin": "9999"}`, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid PIN", body["message"])

	resp, _ = doJSON(t, app, "POST", "/api/mobile/client/login",
		`{"mobile": "0779999999", "pin": "1234"}`, "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, _ = doJSON(t, app, "POST", "/api/mobile/client/login",
		`{"mobile": "0771234567"}`, "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestAuthMiddleware(t *testing.T) {
	app := newTestApp(t)

	resp, _ := doJSON(t, app, "GET", "/api/mobile/client/me", "", "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", "/api/mobile/client/me", "", "expired")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	resp, _ = doJSON(t, app, "GET", "/api/mobile/client/me", "", "invalid")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)

	// Any other opaque bearer value passes
	resp, body := doJSON(t, app, "GET", "/api/mobile/client/me", "", "anything")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	client := body["client"].(map[string]interface{})
	assert.Equal(t, "client-001", client["id"])
}

func TestRefreshTokenEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, "POST", "/api/mobile/client/refresh-token",
		`{"refresh_token": "mock_refresh_token_client-001_123"}`, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Contains(t, body["access_token"], "mock_access_token_refreshed_")

	resp, _ = doJSON(t, app, "POST", "/api/mobile/client/refresh-token",
		`{"refresh_token": "expired"}`, "")
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestSettledLoansRouteOrdering(t *testing.T) {
	app := newTestApp(t)

	// "settled" must not be swallowed by the :id parameter route
	resp, body := doJSON(t, app, "GET", "/api/mobile/client/loans/settled", "", "tok")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, body["settled_loans"], 1)

	resp, body = doJSON(t, app, "GET", "/api/mobile/client/loans/loan-001", "", "tok")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	loan := body["loan"].(map[string]interface{})
	assert.Equal(t, "loan-001", loan["id"])

	resp, _ = doJSON(t, app, "GET", "/api/mobile/client/loans/loan-999", "", "tok")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func TestCashCalculateEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, "POST", "/api/mobile/client/loans/cash/calculate",
		`{"loan_amount": 20000, "repayment_period": "12 months", "employer_industry": "mining", "collateral_value": 35000, "monthly_income": 2500}`, "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	quote := body["quote"].(map[string]interface{})
	assert.Equal(t, 12.0, quote["interest_rate"])
	assert.Equal(t, 1866.67, quote["monthly_payment"])
}

func TestDashboardEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, "GET", "/api/payments/dashboard", "", "tok")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, 1500.50, body["total_outstanding"])
	assert.Equal(t, "2099-01-01", body["next_payment_date"])
}

func TestNotificationsEndpoint(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, "GET", "/api/notifications?filter=unread", "", "tok")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, body["notifications"], 1)
	assert.Equal(t, 1.0, body["unread_count"])

	// Pagination meta is flat at the top level, not nested
	assert.Equal(t, 1.0, body["current_page"])
	assert.Equal(t, 1.0, body["total_pages"])
	assert.Equal(t, 1.0, body["total_count"])
	assert.Equal(t, false, body["has_previous"])
}

func TestPaymentHistoryEnvelope(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, "GET", "/api/payments/history?page=1&limit=20", "", "tok")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	// Meta fields sit flat beside the payments collection
	assert.Contains(t, body, "payments")
	assert.Equal(t, 1.0, body["current_page"])
	assert.Equal(t, false, body["has_next"])
	assert.Equal(t, false, body["has_previous"])
	assert.NotContains(t, body, "pagination")
}
