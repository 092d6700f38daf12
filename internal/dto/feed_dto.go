package dto

import "github.com/noah-isme/daily-feed-api/internal/models"

// FeedEntryCreateRequest is the body of POST /students/:student_id/daily-feed.
type FeedEntryCreateRequest struct {
	Note string `json:"note" validate:"required"`
}

// FeedEntryResponse mirrors a persisted feed entry. CreatedByRole is attached
// transiently on creation when the caller's identity is known; it is never
// stored.
type FeedEntryResponse struct {
	ID            uint   `json:"id"`
	StudentID     uint   `json:"student_id"`
	Type          string `json:"type"`
	Note          string `json:"note"`
	CreatedAtUTC  string `json:"created_at_utc"`
	CreatedByRole string `json:"created_by_role,omitempty"`
}

// NewFeedEntryResponse shapes a persisted entry for the API, stamping the
// creator's role when provided.
func NewFeedEntryResponse(entry models.FeedEntry, createdByRole string) FeedEntryResponse {
	return FeedEntryResponse{
		ID:            entry.ID,
		StudentID:     entry.StudentID,
		Type:          entry.Type,
		Note:          entry.Note,
		CreatedAtUTC:  entry.CreatedAtUTC,
		CreatedByRole: createdByRole,
	}
}

// NewFeedEntryResponseSlice shapes a list of persisted entries. Listed entries
// never carry a creator role.
func NewFeedEntryResponseSlice(entries []models.FeedEntry) []FeedEntryResponse {
	out := make([]FeedEntryResponse, 0, len(entries))
	for _, entry := range entries {
		out = append(out, NewFeedEntryResponse(entry, ""))
	}
	return out
}

// FeedEntryCreatedResponse is the success envelope for entry creation.
type FeedEntryCreatedResponse struct {
	OK    bool              `json:"ok"`
	Entry FeedEntryResponse `json:"entry"`
}

// FeedListResponse is the success envelope for listing a student's feed.
type FeedListResponse struct {
	OK         bool                `json:"ok"`
	StudentID  uint                `json:"student_id"`
	ViewerRole string              `json:"viewer_role,omitempty"`
	Entries    []FeedEntryResponse `json:"entries"`
}
