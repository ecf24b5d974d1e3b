package db

import "github.com/google/uuid"

// NewRecordID returns a time-ordered identifier (UUIDv7), falling back to a
// random UUID if the clock source fails.
func NewRecordID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
