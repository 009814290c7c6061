package tracker

import (
	"github.com/KirkDiggler/dragontiger/internal/common/clock"
	"github.com/KirkDiggler/dragontiger/internal/common/uuid"
	"github.com/KirkDiggler/dragontiger/internal/models"
	"github.com/KirkDiggler/dragontiger/internal/odds"
	"github.com/KirkDiggler/dragontiger/internal/repositories/ledger"
	"github.com/KirkDiggler/dragontiger/internal/shoe"
	"github.com/rs/zerolog"
)

// Config holds configuration for the tracker service
type Config struct {
	// Repository dependencies
	LedgerRepo ledger.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID

	// Logger is optional; a nop logger is used when nil
	Logger *zerolog.Logger

	// Optional shuffle seed for testing. Zero shuffles from the clock.
	Seed int64
}

// Session is the complete mutable state of one tracked table: the shoe,
// the bankroll, the active settings and the ledger namespace. It is owned by
// a single caller and is not safe for concurrent use.
type Session struct {
	info     models.Session
	shoe     *shoe.Shoe
	bankroll float64
	settings Settings
	rounds   int
}

// Info returns the identity of the current shoe
func (s *Session) Info() models.Session {
	return s.info
}

// Bankroll returns the running bankroll
func (s *Session) Bankroll() float64 {
	return s.bankroll
}

// Settings returns the active settings. Settings.Bankroll is the seed value,
// not the running total.
func (s *Session) Settings() Settings {
	return s.settings
}

// RemainingCards returns the number of undealt cards
func (s *Session) RemainingCards() int {
	return s.shoe.RemainingCount()
}

// Rounds returns how many rounds have been settled from the current shoe
func (s *Session) Rounds() int {
	return s.rounds
}

// NewSessionInput contains parameters for starting a session
type NewSessionInput struct {
	Settings Settings
}

// NewSessionOutput contains the started session
type NewSessionOutput struct {
	Session *Session
}

// ResetInput contains parameters for resetting a session's shoe
type ResetInput struct {
	Session *Session

	// DeckCount for the new shoe. Nil keeps the current deck count.
	DeckCount *int
}

// ResetOutput contains the identity of the new shoe
type ResetOutput struct {
	Info models.Session
}

// GetDisplayInput contains parameters for computing the display
type GetDisplayInput struct {
	Session *Session
}

// GetDisplayOutput contains everything needed to render the next round
type GetDisplayOutput struct {
	Probabilities *odds.Probabilities
	EVs           *odds.EVTable

	// BestBet is the side with the highest EV; BestBetPositive reports whether it beats the house
	BestBet         models.BetSide
	BestBetPositive bool

	// RemainingCards is the shoe size
	RemainingCards int

	// RemainingByRank is indexed by rank-1
	RemainingByRank [models.RanksPerDeck]int

	Bankroll float64
	Payouts  models.PayoutTable
	TieRule  models.TieRule
}

// SubmitRoundInput contains a dealt round and the player's bet
type SubmitRoundInput struct {
	Session *Session

	DragonCard models.Card
	TigerCard  models.Card

	// BetSide is models.BetSideNone (or empty) when no bet was placed
	BetSide   models.BetSide
	BetAmount float64
}

// SubmitRoundOutput contains the settled round
type SubmitRoundOutput struct {
	Entry *models.LedgerEntry

	// DragonFound and TigerFound report whether each card was still in the shoe.
	// A missing card is tolerated and leaves the shoe unchanged.
	DragonFound bool
	TigerFound  bool
}

// GetHistoryInput contains parameters for reading the ledger
type GetHistoryInput struct {
	Session *Session
}

// GetHistoryOutput contains settled rounds, oldest first
type GetHistoryOutput struct {
	Entries []*models.LedgerEntry
}

// UpdateSettingsInput contains the settings to change. Nil fields are left as is.
type UpdateSettingsInput struct {
	Session *Session

	Payouts *models.PayoutTable
	TieRule *models.TieRule

	// Bankroll replaces the running bankroll and the seed value
	Bankroll *float64
}

// UpdateSettingsOutput contains the settings now in effect
type UpdateSettingsOutput struct {
	Settings Settings
	Bankroll float64
}
