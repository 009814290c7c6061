package tracker

import (
	"fmt"

	"github.com/KirkDiggler/dragontiger/internal/models"
)

const (
	MinDecks = 1
	MaxDecks = 20

	MinBankroll = 1
	MaxBankroll = 10000

	MinMainPayout = 1
	MaxMainPayout = 10

	MinSidePayout = 1
	MaxSidePayout = 50

	MinBetAmount = 0
	MaxBetAmount = 1000
)

// Settings is the user-facing configuration of a session
type Settings struct {
	// DeckCount is the number of decks in a fresh shoe
	DeckCount int

	// Bankroll is the starting bankroll
	Bankroll float64

	// Payouts are the to-one multipliers per bet side
	Payouts models.PayoutTable

	// TieRule decides how Dragon/Tiger bets settle on a tie
	TieRule models.TieRule
}

// DefaultSettings returns an eight-deck shoe, 100 bankroll, standard payouts
// and main bets forfeited on a tie
func DefaultSettings() Settings {
	return Settings{
		DeckCount: 8,
		Bankroll:  100,
		Payouts:   models.DefaultPayoutTable(),
		TieRule:   models.TieRuleLose,
	}
}

// Validate checks every field against its accepted range. Values are never clamped.
func (s Settings) Validate() error {
	if err := validateDeckCount(s.DeckCount); err != nil {
		return err
	}
	if err := validateBankroll(s.Bankroll); err != nil {
		return err
	}
	if err := validatePayouts(s.Payouts); err != nil {
		return err
	}
	return validateTieRule(s.TieRule)
}

func validateDeckCount(n int) error {
	if n < MinDecks || n > MaxDecks {
		return fmt.Errorf("%w: deck count %d outside [%d, %d]", ErrInvalidConfig, n, MinDecks, MaxDecks)
	}
	return nil
}

func validateBankroll(v float64) error {
	if v < MinBankroll || v > MaxBankroll {
		return fmt.Errorf("%w: bankroll %g outside [%d, %d]", ErrInvalidConfig, v, MinBankroll, MaxBankroll)
	}
	return nil
}

func validatePayouts(p models.PayoutTable) error {
	for _, side := range models.BetSides() {
		lo, hi := float64(MinMainPayout), float64(MaxMainPayout)
		if !side.IsMain() {
			lo, hi = MinSidePayout, MaxSidePayout
		}
		if v := p.For(side); v < lo || v > hi {
			return fmt.Errorf("%w: %s payout %g outside [%g, %g]", ErrInvalidConfig, side, v, lo, hi)
		}
	}
	return nil
}

func validateTieRule(rule models.TieRule) error {
	if !rule.Valid() {
		return fmt.Errorf("%w: unknown tie rule %q", ErrInvalidConfig, rule)
	}
	return nil
}
