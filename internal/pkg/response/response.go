package response

import "github.com/gofiber/fiber/v2"

// ErrorBody is the error envelope the mobile app expects
type ErrorBody struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

// JSON sends a 200 response with the given body
func JSON(c *fiber.Ctx, body interface{}) error {
	return c.Status(fiber.StatusOK).JSON(body)
}

// Message sends a 200 response with a plain message body
func Message(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"message": message})
}

// Error sends an error response
func Error(c *fiber.Ctx, statusCode int, label, message string) error {
	return c.Status(statusCode).JSON(ErrorBody{
		Error:   label,
		Message: message,
	})
}

// ValidationError sends a 400 validation error response
func ValidationError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, "Validation Error", message)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, "Unauthorized", message)
}

// NotFound sends a 404 not found response
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, "Not Found", message)
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, "Internal Server Error", message)
}
