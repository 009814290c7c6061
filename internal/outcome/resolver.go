// Package outcome decides who wins a Dragon vs. Tiger round.
package outcome

import "github.com/KirkDiggler/dragontiger/internal/models"

// Resolve compares the Dragon and Tiger cards. The higher rank wins. On equal
// ranks the lower suit in models.Suits order wins, and only an exact match of
// rank and suit is a tie.
func Resolve(dragon, tiger models.Card) models.RoundResult {
	switch {
	case dragon.Rank > tiger.Rank:
		return models.RoundResultDragon
	case tiger.Rank > dragon.Rank:
		return models.RoundResultTiger
	case dragon.Suit == tiger.Suit:
		return models.RoundResultTie
	case dragon.Suit < tiger.Suit:
		return models.RoundResultDragon
	default:
		return models.RoundResultTiger
	}
}

// IsPair reports whether the two cards share a rank
func IsPair(a, b models.Card) bool {
	return a.Rank == b.Rank
}
