package handlers

import (
	"errors"
	"time"

	"soshopay-mockapi/internal/core/domain"
	"soshopay-mockapi/internal/core/services"
	"soshopay-mockapi/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// AuthHandler handles mobile client authentication endpoints
type AuthHandler struct {
	authService *services.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// clientSummary is the client block embedded in auth responses
type clientSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Mobile    string `json:"mobile"`
}

func newClientSummary(client *domain.Client) clientSummary {
	return clientSummary{
		ID:        client.ID,
		FirstName: client.FirstName,
		LastName:  client.LastName,
		Mobile:    client.Mobile,
	}
}

// Login handles mobile client login
// @Summary Client login
// @Description Authenticate a client by mobile number and PIN
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.LoginInput true "Login credentials"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /mobile/client/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req services.LoginInput
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body")
	}

	if req.Mobile == "" || req.PIN == "" {
		return response.ValidationError(c, "Mobile and PIN are required")
	}

	session, err := h.authService.Login(c.Context(), &req)
	if err != nil {
		return handleError(c, err)
	}

	deviceID := c.Get("X-Device-ID")
	if deviceID == "" {
		deviceID = "unknown"
	}

	return response.JSON(c, fiber.Map{
		"access_token":       session.Tokens.AccessToken,
		"access_token_type":  "Bearer",
		"access_expires_at":  session.Tokens.AccessExpiresAt.UTC().Format(time.RFC3339),
		"refresh_token":      session.Tokens.RefreshToken,
		"refresh_expires_at": session.Tokens.RefreshExpiresAt.UTC().Format(time.RFC3339),
		"device_id":          deviceID,
		"client":             newClientSummary(session.Client),
	})
}

// SetPIN handles first-time PIN setup
// @Summary Set client PIN
// @Description Set a client's PIN by mobile number and issue a session token
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.SetPINInput true "PIN setup data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Failure 404 {object} response.ErrorBody
// @Router /mobile/client/set-pin [post]
func (h *AuthHandler) SetPIN(c *fiber.Ctx) error {
	var req services.SetPINInput
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body")
	}

	if req.Mobile == "" || req.NewPIN == "" || req.ConfirmPIN == "" {
		return response.ValidationError(c, "Mobile, new_pin, and confirm_pin are required")
	}

	result, err := h.authService.SetPIN(c.Context(), &req)
	if err != nil {
		return handleError(c, err)
	}

	return response.JSON(c, fiber.Map{
		"token":      result.Token,
		"token_type": "Bearer",
		"expires_at": result.ExpiresAt.UTC().Format(time.RFC3339),
		"expires_in": h.authService.AccessTTLSeconds(),
		"client":     newClientSummary(result.Client),
	})
}

// ChangePIN handles PIN change for the authenticated client
// @Summary Change client PIN
// @Description Change the current client's PIN
// @Tags Auth
// @Accept json
// @Produce json
// @Param body body services.ChangePINInput true "PIN change data"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Security BearerAuth
// @Router /mobile/client/pin [post]
func (h *AuthHandler) ChangePIN(c *fiber.Ctx) error {
	var req services.ChangePINInput
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body")
	}

	if req.CurrentPIN == "" || req.NewPIN == "" || req.ConfirmPIN == "" {
		return response.ValidationError(c, "All PIN fields are required")
	}

	if err := h.authService.ChangePIN(c.Context(), &req); err != nil {
		if errors.Is(err, domain.ErrInvalidPIN) {
			return response.Unauthorized(c, "Current PIN is incorrect")
		}
		return handleError(c, err)
	}

	return response.Message(c, "PIN updated successfully")
}

// RefreshToken handles refresh token rotation
// @Summary Refresh tokens
// @Description Exchange a refresh token for a new token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Failure 401 {object} response.ErrorBody
// @Router /mobile/client/refresh-token [post]
func (h *AuthHandler) RefreshToken(c *fiber.Ctx) error {
	var req struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := c.BodyParser(&req); err != nil {
		return response.ValidationError(c, "Invalid request body")
	}

	if req.RefreshToken == "" {
		return response.ValidationError(c, "Refresh token is required")
	}

	pair, err := h.authService.Refresh(req.RefreshToken)
	if err != nil {
		return handleError(c, err)
	}

	return response.JSON(c, fiber.Map{
		"access_token":       pair.AccessToken,
		"refresh_token":      pair.RefreshToken,
		"access_expires_at":  pair.AccessExpiresAt.UTC().Format(time.RFC3339),
		"refresh_expires_at": pair.RefreshExpiresAt.UTC().Format(time.RFC3339),
	})
}

// Logout handles client logout
// @Summary Logout
// @Description End the current session
// @Tags Auth
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /mobile/client/logout [post]
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	// Tokens are opaque and stateless in the mock; nothing to revoke
	return response.Message(c, "Logged out successfully")
}
