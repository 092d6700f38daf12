// Package roster holds the fixed, authoritative list of students the service
// recognizes. The roster is injected at construction and read-only afterwards;
// every feed operation checks it before touching storage.
package roster

import "github.com/noah-isme/daily-feed-api/internal/models"

// Roster is an immutable lookup of valid students.
type Roster struct {
	students []models.Student
	byID     map[uint]struct{}
}

// New builds a roster from the provided students, preserving their order.
func New(students []models.Student) *Roster {
	r := &Roster{
		students: make([]models.Student, len(students)),
		byID:     make(map[uint]struct{}, len(students)),
	}
	copy(r.students, students)
	for _, s := range students {
		r.byID[s.ID] = struct{}{}
	}
	return r
}

// Default returns the built-in roster.
func Default() *Roster {
	return New([]models.Student{
		{ID: 1, Name: "Ayse"},
		{ID: 2, Name: "Memo"},
	})
}

// List returns the students in roster order. The returned slice is a copy.
func (r *Roster) List() []models.Student {
	out := make([]models.Student, len(r.students))
	copy(out, r.students)
	return out
}

// Exists reports whether a student with the given id is on the roster.
func (r *Roster) Exists(id uint) bool {
	_, ok := r.byID[id]
	return ok
}
