package utils

import "github.com/gofiber/fiber/v2"

// ErrorResponse is the common envelope for failed requests. Success bodies
// are endpoint-specific and written by the handlers directly.
type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// SendError sends an error JSON response with the given status code.
func SendError(c *fiber.Ctx, status int, message string) error {
	if message == "" {
		message = "error"
	}

	return c.Status(status).JSON(ErrorResponse{
		OK:    false,
		Error: message,
	})
}
