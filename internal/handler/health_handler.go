package handler

import "github.com/gofiber/fiber/v2"

// serviceName is part of the health contract and fixed regardless of the
// configured application name.
const serviceName = "special-ed-platform-backend"

// HealthResponse represents the payload returned by the health endpoint.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// HealthCheck returns a handler that reports application health information.
func HealthCheck() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(HealthResponse{
			Status:  "ok",
			Service: serviceName,
		})
	}
}
