package domain

import "time"

// Clock abstracts the wall clock for deterministic testing.
type Clock interface {
	Now() time.Time
}

// Fortune is a generated (or canned) text for a single name.
type Fortune struct {
	Name      string
	Text      string
	Mocked    bool
	CreatedAt time.Time
}
