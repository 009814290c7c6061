package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/dragontiger/internal/repositories/ledger Repository

import (
	"context"
)

// Repository defines the interface for round ledger persistence
type Repository interface {
	// AppendEntry adds a settled round to the end of a session's ledger
	AppendEntry(ctx context.Context, input *AppendEntryInput) error

	// ListEntries returns a session's ledger, oldest first
	ListEntries(ctx context.Context, input *ListEntriesInput) (*ListEntriesOutput, error)

	// ClearEntries drops every entry for a session
	ClearEntries(ctx context.Context, input *ClearEntriesInput) error
}
