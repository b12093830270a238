package domain

import "time"

// Review represents feedback on a completed rental. Reviews are
// append-only, they are never mutated or deleted.
type Review struct {
	ID    string
	CarID string

	// UserName is a snapshot of the reviewer's display name at
	// creation time, it is not refreshed on rename
	UserID   string
	UserName string

	Rating  int
	Comment string
	Date    time.Time
}
