package tracker

import (
	"github.com/KirkDiggler/dragontiger/internal/models"
)

// bankrollDelta is the net result of a bet on a settled round. Only a bet
// naming the round result wins, so a Pair bet never pays.
func bankrollDelta(result models.RoundResult, side models.BetSide, amount float64, payouts models.PayoutTable, tieRule models.TieRule) float64 {
	if side == models.BetSideNone || side == "" || amount <= 0 {
		return 0
	}

	switch {
	case string(side) == string(result):
		return amount * payouts.For(side)
	case side.IsMain() && result == models.RoundResultTie:
		if tieRule == models.TieRulePush {
			return 0
		}
		return -amount
	default:
		return -amount
	}
}
