package ledger

import (
	"errors"

	"github.com/KirkDiggler/dragontiger/internal/models"
)

var (
	// ErrNilEntry is returned when an append is attempted without an entry
	ErrNilEntry = errors.New("input and entry cannot be nil")

	// ErrMissingSessionID is returned when a call has no session to address
	ErrMissingSessionID = errors.New("session ID cannot be empty")

	// ErrMissingEntryID is returned when an entry has no ID
	ErrMissingEntryID = errors.New("ledger entry ID cannot be empty")
)

// AppendEntryInput contains parameters for appending a ledger entry
type AppendEntryInput struct {
	Entry *models.LedgerEntry
}

// ListEntriesInput contains parameters for listing a session's entries
type ListEntriesInput struct {
	SessionID string
}

// ListEntriesOutput contains a session's entries in insertion order
type ListEntriesOutput struct {
	Entries []*models.LedgerEntry
}

// ClearEntriesInput contains parameters for clearing a session's entries
type ClearEntriesInput struct {
	SessionID string
}

func validateEntry(input *AppendEntryInput) error {
	if input == nil || input.Entry == nil {
		return ErrNilEntry
	}
	if input.Entry.ID == "" {
		return ErrMissingEntryID
	}
	if input.Entry.SessionID == "" {
		return ErrMissingSessionID
	}
	return nil
}
