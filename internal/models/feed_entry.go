package models

// EntryTypeNote is the only entry type current behavior creates.
const EntryTypeNote = "note"

// FeedEntry is one timestamped note about a student. Entries are immutable
// once created; there are no update or delete paths.
//
// The creator's role is intentionally not part of this model: it is never
// persisted, only attached to the in-process create response.
type FeedEntry struct {
	ID           uint   `gorm:"primaryKey" json:"id"`
	StudentID    uint   `gorm:"not null;index" json:"student_id"`
	Type         string `gorm:"size:32;not null" json:"type"`
	Note         string `gorm:"not null" json:"note"`
	CreatedAtUTC string `gorm:"size:64;not null" json:"created_at_utc"`
}

// TableName keeps the historical table name.
func (FeedEntry) TableName() string {
	return "daily_feed_entries"
}
