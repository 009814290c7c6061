package odds

import (
	"testing"

	"github.com/KirkDiggler/dragontiger/internal/models"
	"github.com/KirkDiggler/dragontiger/internal/shoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeEV(t *testing.T) {
	probs := &Probabilities{Dragon: 0.45, Tiger: 0.45, Tie: 0.1, Pair: 0.08}
	payouts := models.DefaultPayoutTable()

	tests := []struct {
		name    string
		tieRule models.TieRule
		want    EVTable
	}{
		{
			name:    "push refunds main bets on tie",
			tieRule: models.TieRulePush,
			want: EVTable{
				Dragon: 0.45 - 0.45,
				Tiger:  0.45 - 0.45,
				Tie:    0.1*11 - 0.9,
				Pair:   0.08*11 - 0.92,
			},
		},
		{
			name:    "lose forfeits main bets on tie",
			tieRule: models.TieRuleLose,
			want: EVTable{
				Dragon: 0.45 - 0.45 - 0.1,
				Tiger:  0.45 - 0.45 - 0.1,
				Tie:    0.1*11 - 0.9,
				Pair:   0.08*11 - 0.92,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ComputeEV(probs, payouts, tt.tieRule)
			require.NoError(t, err)
			assert.InDelta(t, tt.want.Dragon, got.Dragon, 1e-12)
			assert.InDelta(t, tt.want.Tiger, got.Tiger, 1e-12)
			assert.InDelta(t, tt.want.Tie, got.Tie, 1e-12)
			assert.InDelta(t, tt.want.Pair, got.Pair, 1e-12)
		})
	}
}

func TestComputeEVAsymmetricPayouts(t *testing.T) {
	probs := &Probabilities{Dragon: 0.5, Tiger: 0.3, Tie: 0.2}
	payouts := models.PayoutTable{Dragon: 2, Tiger: 3, Tie: 11, Pair: 11}

	got, err := ComputeEV(probs, payouts, models.TieRulePush)
	require.NoError(t, err)
	assert.InDelta(t, 0.5*2-0.3, got.Dragon, 1e-12)
	assert.InDelta(t, 0.3*3-0.5, got.Tiger, 1e-12)
}

func TestComputeEVInsufficientShoe(t *testing.T) {
	_, err := ComputeEV(nil, models.DefaultPayoutTable(), models.TieRuleLose)
	assert.ErrorIs(t, err, ErrInsufficientShoe)
}

func TestTieBetHasHouseEdgeOnFreshShoe(t *testing.T) {
	fresh, err := shoe.New(&shoe.Config{DeckCount: 8})
	require.NoError(t, err)

	probs, err := Compute(fresh.Counts())
	require.NoError(t, err)

	for _, rule := range []models.TieRule{models.TieRulePush, models.TieRuleLose} {
		evs, err := ComputeEV(probs, models.DefaultPayoutTable(), rule)
		require.NoError(t, err)
		assert.Less(t, evs.Tie, 0.0)
		assert.Less(t, evs.Pair, 0.0)
	}
}

func TestEVTableBest(t *testing.T) {
	evs := &EVTable{Dragon: -0.02, Tiger: 0.01, Tie: -0.8, Pair: -0.1}
	side, positive := evs.Best()
	assert.Equal(t, models.BetSideTiger, side)
	assert.True(t, positive)

	evs = &EVTable{Dragon: -0.05, Tiger: -0.05, Tie: -0.8, Pair: -0.1}
	side, positive = evs.Best()
	assert.Equal(t, models.BetSideDragon, side)
	assert.False(t, positive)
}
