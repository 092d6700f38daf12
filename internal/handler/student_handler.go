package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/noah-isme/daily-feed-api/internal/roster"
)

// StudentHandler serves the static roster.
type StudentHandler struct {
	roster *roster.Roster
}

// NewStudentHandler builds a student handler instance.
func NewStudentHandler(students *roster.Roster) *StudentHandler {
	return &StudentHandler{roster: students}
}

// List handles GET /students and returns the roster in order.
func (h *StudentHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.roster.List())
}
