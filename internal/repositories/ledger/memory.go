package ledger

import (
	"context"
	"sync"

	"github.com/KirkDiggler/dragontiger/internal/models"
)

// memoryRepository keeps ledgers in process memory. It is the default store,
// matching the tracker's session-lifetime persistence.
type memoryRepository struct {
	mu       sync.RWMutex
	sessions map[string][]models.LedgerEntry
}

// NewMemory creates an empty in-memory ledger repository
func NewMemory() *memoryRepository {
	return &memoryRepository{
		sessions: make(map[string][]models.LedgerEntry),
	}
}

// AppendEntry stores a copy of the entry
func (r *memoryRepository) AppendEntry(ctx context.Context, input *AppendEntryInput) error {
	if err := validateEntry(input); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	sessionID := input.Entry.SessionID
	r.sessions[sessionID] = append(r.sessions[sessionID], *input.Entry)
	return nil
}

// ListEntries returns copies so callers cannot rewrite history
func (r *memoryRepository) ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error) {
	if input == nil || input.SessionID == "" {
		return nil, ErrMissingSessionID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.sessions[input.SessionID]
	entries := make([]*models.LedgerEntry, 0, len(stored))
	for i := range stored {
		entry := stored[i]
		entries = append(entries, &entry)
	}

	return &ListEntriesOutput{
		Entries: entries,
	}, nil
}

// ClearEntries forgets the session
func (r *memoryRepository) ClearEntries(ctx context.Context, input *ClearEntriesInput) error {
	if input == nil || input.SessionID == "" {
		return ErrMissingSessionID
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, input.SessionID)
	return nil
}
