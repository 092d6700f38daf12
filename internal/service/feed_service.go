package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/daily-feed-api/internal/dto"
	"github.com/noah-isme/daily-feed-api/internal/models"
	"github.com/noah-isme/daily-feed-api/internal/repository"
	"github.com/noah-isme/daily-feed-api/internal/roster"
)

// ErrStudentNotFound indicates the student id is not on the roster.
var ErrStudentNotFound = errors.New("student not found")

// ErrNoteEmpty indicates the note is empty or whitespace-only after trimming.
var ErrNoteEmpty = errors.New("note cannot be empty")

// FeedService orchestrates feed entry workflows.
type FeedService interface {
	CreateEntry(ctx context.Context, studentID uint, payload dto.FeedEntryCreateRequest, createdByRole string) (dto.FeedEntryResponse, error)
	ListEntries(ctx context.Context, studentID uint, viewerRole string) (dto.FeedListResponse, error)
}

type feedService struct {
	entries   repository.FeedEntryRepository
	roster    *roster.Roster
	validator *validator.Validate
	logger    zerolog.Logger
	now       func() time.Time
}

// NewFeedService constructs a FeedService instance.
func NewFeedService(entryRepo repository.FeedEntryRepository, students *roster.Roster, validate *validator.Validate, logger zerolog.Logger) FeedService {
	return &feedService{
		entries:   entryRepo,
		roster:    students,
		validator: validate,
		logger:    logger.With().Str("component", "feed_service").Logger(),
		now:       time.Now,
	}
}

func (s *feedService) CreateEntry(ctx context.Context, studentID uint, payload dto.FeedEntryCreateRequest, createdByRole string) (dto.FeedEntryResponse, error) {
	if !s.roster.Exists(studentID) {
		return dto.FeedEntryResponse{}, ErrStudentNotFound
	}

	if err := s.validator.Struct(payload); err != nil {
		return dto.FeedEntryResponse{}, err
	}

	note := strings.TrimSpace(payload.Note)
	if note == "" {
		return dto.FeedEntryResponse{}, ErrNoteEmpty
	}

	// Captured once: the same timestamp goes into the row and the response.
	createdAt := s.now().UTC().Format(time.RFC3339)

	entry := models.FeedEntry{
		StudentID:    studentID,
		Type:         models.EntryTypeNote,
		Note:         note,
		CreatedAtUTC: createdAt,
	}

	if err := s.entries.Create(ctx, &entry); err != nil {
		return dto.FeedEntryResponse{}, err
	}

	s.logger.Info().
		Uint("entry_id", entry.ID).
		Uint("student_id", studentID).
		Msg("feed entry created")

	return dto.NewFeedEntryResponse(entry, createdByRole), nil
}

func (s *feedService) ListEntries(ctx context.Context, studentID uint, viewerRole string) (dto.FeedListResponse, error) {
	if !s.roster.Exists(studentID) {
		return dto.FeedListResponse{}, ErrStudentNotFound
	}

	entries, err := s.entries.ListByStudent(ctx, studentID)
	if err != nil {
		return dto.FeedListResponse{}, err
	}

	return dto.FeedListResponse{
		OK:         true,
		StudentID:  studentID,
		ViewerRole: viewerRole,
		Entries:    dto.NewFeedEntryResponseSlice(entries),
	}, nil
}
