package models

import (
	"time"
)

// LedgerEntry records one settled round. Entries are append-only.
type LedgerEntry struct {
	// ID is the unique identifier for the entry
	ID string

	// SessionID is the shoe session the round was dealt from
	SessionID string

	// Sequence is the 1-based position of the round within the session
	Sequence int

	// DragonCard is the card dealt to Dragon
	DragonCard Card

	// TigerCard is the card dealt to Tiger
	TigerCard Card

	// Result is the outcome of the round
	Result RoundResult

	// BetSide is what the player wagered on
	BetSide BetSide

	// BetAmount is the stake
	BetAmount float64

	// BankrollDelta is the net change applied to the bankroll
	BankrollDelta float64

	// BankrollAfter is the bankroll once the delta was applied
	BankrollAfter float64

	// CreatedAt is when the round was settled
	CreatedAt time.Time
}
