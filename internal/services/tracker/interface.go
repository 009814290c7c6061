package tracker

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/dragontiger/internal/services/tracker Service

import "context"

// Service defines the operations a presentation layer drives the tracker with
type Service interface {
	// NewSession builds a fresh shoe and an empty ledger from validated settings
	NewSession(ctx context.Context, input *NewSessionInput) (*NewSessionOutput, error)

	// Reset replaces the session's shoe and clears its ledger. The bankroll is kept.
	Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error)

	// GetDisplay returns probabilities and EVs for the next round. It never mutates the session.
	GetDisplay(ctx context.Context, input *GetDisplayInput) (*GetDisplayOutput, error)

	// SubmitRound settles a dealt round against the shoe, bankroll and ledger
	SubmitRound(ctx context.Context, input *SubmitRoundInput) (*SubmitRoundOutput, error)

	// GetHistory returns the session's settled rounds, oldest first
	GetHistory(ctx context.Context, input *GetHistoryInput) (*GetHistoryOutput, error)

	// UpdateSettings changes payouts, tie rule or bankroll mid-shoe
	UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*UpdateSettingsOutput, error)
}
