package models

// Student is one entry in the static roster. The roster is fixed at process
// start; students are never created, updated, or deleted at runtime, so this
// type is not a database model.
type Student struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}
