package handler

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/noah-isme/daily-feed-api/internal/dto"
	"github.com/noah-isme/daily-feed-api/internal/middleware"
	"github.com/noah-isme/daily-feed-api/internal/service"
	"github.com/noah-isme/daily-feed-api/internal/utils"
)

// FeedHandler manages the daily feed endpoints.
type FeedHandler struct {
	service service.FeedService
	logger  zerolog.Logger
}

// NewFeedHandler builds a feed handler instance.
func NewFeedHandler(service service.FeedService, logger zerolog.Logger) *FeedHandler {
	return &FeedHandler{
		service: service,
		logger:  logger.With().Str("component", "feed_handler").Logger(),
	}
}

// Create handles POST /students/:student_id/daily-feed.
func (h *FeedHandler) Create(c *fiber.Ctx) error {
	studentID, err := parseStudentID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	var payload dto.FeedEntryCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "invalid request body")
	}

	role := middleware.UserRoleFromContext(c)

	entry, err := h.service.CreateEntry(c.Context(), studentID, payload, role)
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(dto.FeedEntryCreatedResponse{OK: true, Entry: entry})
}

// List handles GET /students/:student_id/daily-feed.
func (h *FeedHandler) List(c *fiber.Ctx) error {
	studentID, err := parseStudentID(c)
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, err.Error())
	}

	feed, err := h.service.ListEntries(c.Context(), studentID, middleware.UserRoleFromContext(c))
	if err != nil {
		return h.handleError(c, err)
	}

	return c.JSON(feed)
}

func (h *FeedHandler) handleError(c *fiber.Ctx, err error) error {
	var validationErrors validator.ValidationErrors
	switch {
	case errors.Is(err, service.ErrStudentNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "student not found")
	case errors.Is(err, service.ErrNoteEmpty):
		return utils.SendError(c, fiber.StatusBadRequest, "note cannot be empty")
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	default:
		h.logger.Error().Err(err).Str("correlation_id", middleware.GetCorrelationID(c)).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}

func parseStudentID(c *fiber.Ctx) (uint, error) {
	value := c.Params("student_id")
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, errors.New("invalid student id")
	}
	return uint(parsed), nil
}
