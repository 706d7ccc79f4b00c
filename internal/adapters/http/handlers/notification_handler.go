package handlers

import (
	"soshopay-mockapi/internal/core/services"
	"soshopay-mockapi/internal/pkg/pagination"
	"soshopay-mockapi/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// NotificationHandler handles notification endpoints
type NotificationHandler struct {
	notificationService *services.NotificationService
}

// NewNotificationHandler creates a new notification handler
func NewNotificationHandler(notificationService *services.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

// List returns paginated notifications
// @Summary List notifications
// @Description List notifications with optional read-state filter
// @Tags Notifications
// @Produce json
// @Param filter query string false "Filter: all, unread or read" default(all)
// @Param page query int false "Page number"
// @Param limit query int false "Items per page"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorBody
// @Security BearerAuth
// @Router /notifications [get]
func (h *NotificationHandler) List(c *fiber.Ctx) error {
	filter := c.Query("filter", services.FilterAll)
	params := pagination.GetParams(c)

	page, err := h.notificationService.List(c.Context(), filter, params)
	if err != nil {
		return handleError(c, err)
	}

	// Meta fields sit flat beside the collection in this envelope
	return response.JSON(c, fiber.Map{
		"notifications": page.Notifications,
		"current_page":  page.Meta.CurrentPage,
		"total_pages":   page.Meta.TotalPages,
		"total_count":   page.Meta.TotalCount,
		"has_next":      page.Meta.HasNext,
		"has_previous":  page.Meta.HasPrevious,
		"unread_count":  page.UnreadCount,
	})
}

// MarkRead marks a notification as read
// @Summary Mark notification read
// @Tags Notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} response.ErrorBody
// @Security BearerAuth
// @Router /notifications/{id}/read [put]
func (h *NotificationHandler) MarkRead(c *fiber.Ctx) error {
	if err := h.notificationService.MarkRead(c.Context(), c.Params("id")); err != nil {
		return handleError(c, err)
	}

	return response.Message(c, "Notification marked as read")
}

// MarkAllRead marks every notification as read
// @Summary Mark all notifications read
// @Tags Notifications
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /notifications/mark-all-read [put]
func (h *NotificationHandler) MarkAllRead(c *fiber.Ctx) error {
	if err := h.notificationService.MarkAllRead(c.Context()); err != nil {
		return handleError(c, err)
	}

	return response.Message(c, "All notifications marked as read")
}

// Delete removes a notification
// @Summary Delete notification
// @Tags Notifications
// @Produce json
// @Param id path string true "Notification ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} response.ErrorBody
// @Security BearerAuth
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) Delete(c *fiber.Ctx) error {
	if err := h.notificationService.Delete(c.Context(), c.Params("id")); err != nil {
		return handleError(c, err)
	}

	return response.Message(c, "Notification deleted")
}

// UnreadCount returns the unread notification count
// @Summary Unread notification count
// @Tags Notifications
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /notifications/unread/count [get]
func (h *NotificationHandler) UnreadCount(c *fiber.Ctx) error {
	count, err := h.notificationService.UnreadCount(c.Context())
	if err != nil {
		return handleError(c, err)
	}

	return response.JSON(c, fiber.Map{"unread_count": count})
}
