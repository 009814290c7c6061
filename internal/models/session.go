package models

import (
	"time"
)

// Session identifies the lifetime of one shoe. A reset starts a new session.
type Session struct {
	// ID is the unique identifier for this session
	ID string

	// DeckCount is the number of decks the shoe was built from
	DeckCount int

	// CreatedAt is when the shoe was built
	CreatedAt time.Time
}
