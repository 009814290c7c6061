package models

import (
	"fmt"
	"strings"
)

// RoundResult is the outcome of comparing the Dragon and Tiger cards
type RoundResult string

const (
	// RoundResultDragon indicates the Dragon card won
	RoundResultDragon RoundResult = "Dragon"

	// RoundResultTiger indicates the Tiger card won
	RoundResultTiger RoundResult = "Tiger"

	// RoundResultTie indicates both cards matched in rank and suit
	RoundResultTie RoundResult = "Tie"
)

// BetSide is what the player wagered on for a round
type BetSide string

const (
	// BetSideNone indicates no wager was placed
	BetSideNone BetSide = "None"

	// BetSideDragon is a wager on Dragon winning
	BetSideDragon BetSide = "Dragon"

	// BetSideTiger is a wager on Tiger winning
	BetSideTiger BetSide = "Tiger"

	// BetSideTie is a wager on a tie
	BetSideTie BetSide = "Tie"

	// BetSidePair is a side wager on both cards sharing a rank
	BetSidePair BetSide = "Pair"
)

// BetSides lists every side that can be wagered on, in display order
func BetSides() []BetSide {
	return []BetSide{BetSideDragon, BetSideTiger, BetSideTie, BetSidePair}
}

// IsMain reports whether the side is one of the two head-to-head bets
func (b BetSide) IsMain() bool {
	return b == BetSideDragon || b == BetSideTiger
}

// Valid reports whether the side is a known value, including None
func (b BetSide) Valid() bool {
	switch b {
	case BetSideNone, BetSideDragon, BetSideTiger, BetSideTie, BetSidePair:
		return true
	}
	return false
}

// ParseBetSide parses a bet side name, case-insensitive
func ParseBetSide(s string) (BetSide, error) {
	for _, side := range append([]BetSide{BetSideNone}, BetSides()...) {
		if strings.EqualFold(s, string(side)) {
			return side, nil
		}
	}
	return "", fmt.Errorf("unknown bet side %q", s)
}

// TieRule governs how Dragon and Tiger bets settle when the round ties
type TieRule string

const (
	// TieRulePush refunds Dragon/Tiger bets on a tie
	TieRulePush TieRule = "push"

	// TieRuleLose forfeits Dragon/Tiger bets on a tie
	TieRuleLose TieRule = "lose"
)

// Valid reports whether the rule is push or lose
func (t TieRule) Valid() bool {
	return t == TieRulePush || t == TieRuleLose
}

// PayoutTable holds the to-one payout multiplier for each bet side
type PayoutTable struct {
	Dragon float64
	Tiger  float64
	Tie    float64
	Pair   float64
}

// DefaultPayoutTable returns the standard house odds
func DefaultPayoutTable() PayoutTable {
	return PayoutTable{
		Dragon: 1,
		Tiger:  1,
		Tie:    11,
		Pair:   11,
	}
}

// For returns the multiplier for a bet side. BetSideNone pays nothing.
func (p PayoutTable) For(side BetSide) float64 {
	switch side {
	case BetSideDragon:
		return p.Dragon
	case BetSideTiger:
		return p.Tiger
	case BetSideTie:
		return p.Tie
	case BetSidePair:
		return p.Pair
	}
	return 0
}

// With returns a copy of the table with one side's multiplier replaced
func (p PayoutTable) With(side BetSide, multiplier float64) PayoutTable {
	switch side {
	case BetSideDragon:
		p.Dragon = multiplier
	case BetSideTiger:
		p.Tiger = multiplier
	case BetSideTie:
		p.Tie = multiplier
	case BetSidePair:
		p.Pair = multiplier
	}
	return p
}
