// Package odds computes exact next-round probabilities for a Dragon vs. Tiger
// shoe and turns them into per-unit expected values.
package odds

import (
	"github.com/KirkDiggler/dragontiger/internal/models"
	"github.com/KirkDiggler/dragontiger/internal/outcome"
	"github.com/KirkDiggler/dragontiger/internal/shoe"
)

// Compute enumerates every ordered (Dragon, Tiger) draw of two distinct cards
// from the shoe and classifies each with outcome.Resolve.
//
// Cards are grouped by kind, so a pair of kinds (a, b) stands for
// counts[a]*counts[b] positional draws, or counts[a]*(counts[a]-1) when a == b.
// The tallies are identical to walking every position pair i != j.
func Compute(counts shoe.Counts) (*Probabilities, error) {
	n := int64(counts.Total())
	if n < 2 {
		return nil, ErrInsufficientShoe
	}

	tally := PairCounts{Total: n * (n - 1)}

	for a, ca := range counts {
		if ca == 0 {
			continue
		}
		dragon := models.CardFromIndex(a)

		for b, cb := range counts {
			if cb == 0 {
				continue
			}

			ways := int64(ca) * int64(cb)
			if a == b {
				ways = int64(ca) * int64(ca-1)
			}
			if ways == 0 {
				continue
			}

			tiger := models.CardFromIndex(b)
			switch outcome.Resolve(dragon, tiger) {
			case models.RoundResultDragon:
				tally.Dragon += ways
			case models.RoundResultTiger:
				tally.Tiger += ways
			case models.RoundResultTie:
				tally.Tie += ways
			}

			if outcome.IsPair(dragon, tiger) {
				tally.Pair += ways
			}
		}
	}

	total := float64(tally.Total)
	return &Probabilities{
		Dragon: float64(tally.Dragon) / total,
		Tiger:  float64(tally.Tiger) / total,
		Tie:    float64(tally.Tie) / total,
		Pair:   float64(tally.Pair) / total,
		Counts: tally,
	}, nil
}
