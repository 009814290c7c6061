package odds

import "github.com/KirkDiggler/dragontiger/internal/models"

// PairCounts holds the raw ordered-pair tallies behind a set of probabilities
type PairCounts struct {
	// Total is n*(n-1), the number of ordered (Dragon, Tiger) draws
	Total int64

	Dragon int64
	Tiger  int64
	Tie    int64

	// Pair counts ordered draws where both cards share a rank
	Pair int64
}

// Probabilities is the exact distribution of the next round over the current shoe
type Probabilities struct {
	Dragon float64
	Tiger  float64
	Tie    float64
	Pair   float64

	// Counts are the tallies the probabilities were derived from
	Counts PairCounts
}

// For returns the probability that a bet on side wins outright
func (p *Probabilities) For(side models.BetSide) float64 {
	switch side {
	case models.BetSideDragon:
		return p.Dragon
	case models.BetSideTiger:
		return p.Tiger
	case models.BetSideTie:
		return p.Tie
	case models.BetSidePair:
		return p.Pair
	}
	return 0
}

// EVTable is the expected net profit per unit wagered on each side
type EVTable struct {
	Dragon float64
	Tiger  float64
	Tie    float64
	Pair   float64
}

// For returns the EV of a bet on side
func (e *EVTable) For(side models.BetSide) float64 {
	switch side {
	case models.BetSideDragon:
		return e.Dragon
	case models.BetSideTiger:
		return e.Tiger
	case models.BetSideTie:
		return e.Tie
	case models.BetSidePair:
		return e.Pair
	}
	return 0
}

// Best returns the side with the highest EV and whether that EV is positive.
// Ties go to the earlier side in models.BetSides order.
func (e *EVTable) Best() (models.BetSide, bool) {
	sides := models.BetSides()
	best := sides[0]
	for _, side := range sides[1:] {
		if e.For(side) > e.For(best) {
			best = side
		}
	}
	return best, e.For(best) > 0
}
