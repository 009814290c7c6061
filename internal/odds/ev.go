package odds

import "github.com/KirkDiggler/dragontiger/internal/models"

// ComputeEV converts probabilities into the expected net result of a one-unit
// bet on each side. Dragon and Tiger bets lose their stake on a tie only under
// models.TieRuleLose.
func ComputeEV(probs *Probabilities, payouts models.PayoutTable, tieRule models.TieRule) (*EVTable, error) {
	if probs == nil {
		return nil, ErrInsufficientShoe
	}

	tieLoss := 0.0
	if tieRule == models.TieRuleLose {
		tieLoss = probs.Tie
	}

	return &EVTable{
		Dragon: probs.Dragon*payouts.Dragon - probs.Tiger - tieLoss,
		Tiger:  probs.Tiger*payouts.Tiger - probs.Dragon - tieLoss,
		Tie:    probs.Tie*payouts.Tie - (1 - probs.Tie),
		Pair:   probs.Pair*payouts.Pair - (1 - probs.Pair),
	}, nil
}
