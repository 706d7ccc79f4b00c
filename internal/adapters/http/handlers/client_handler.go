package handlers

import (
	"soshopay-mockapi/internal/core/services"
	"soshopay-mockapi/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// ClientHandler handles client profile endpoints
type ClientHandler struct {
	clientService *services.ClientService
}

// NewClientHandler creates a new client handler
func NewClientHandler(clientService *services.ClientService) *ClientHandler {
	return &ClientHandler{clientService: clientService}
}

// Me returns the current client's profile
// @Summary Current client profile
// @Description Returns the authenticated client's profile
// @Tags Client
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} response.ErrorBody
// @Security BearerAuth
// @Router /mobile/client/me [get]
func (h *ClientHandler) Me(c *fiber.Ctx) error {
	profile, err := h.clientService.GetProfile(c.Context())
	if err != nil {
		return handleError(c, err)
	}

	return response.JSON(c, fiber.Map{"client": profile})
}
