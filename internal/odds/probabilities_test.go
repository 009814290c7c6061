package odds

import (
	"testing"

	"github.com/KirkDiggler/dragontiger/internal/models"
	"github.com/KirkDiggler/dragontiger/internal/outcome"
	"github.com/KirkDiggler/dragontiger/internal/shoe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ProbabilitiesTestSuite struct {
	suite.Suite
	fresh *shoe.Shoe
}

func (s *ProbabilitiesTestSuite) SetupTest() {
	fresh, err := shoe.New(&shoe.Config{DeckCount: 8, Seed: 1})
	s.Require().NoError(err)
	s.fresh = fresh
}

func TestProbabilitiesTestSuite(t *testing.T) {
	suite.Run(t, new(ProbabilitiesTestSuite))
}

// enumerate walks every ordered pair of shoe positions directly
func enumerate(cards []models.Card) PairCounts {
	var tally PairCounts
	for i, d := range cards {
		for j, t := range cards {
			if i == j {
				continue
			}
			tally.Total++
			switch outcome.Resolve(d, t) {
			case models.RoundResultDragon:
				tally.Dragon++
			case models.RoundResultTiger:
				tally.Tiger++
			case models.RoundResultTie:
				tally.Tie++
			}
			if d.Rank == t.Rank {
				tally.Pair++
			}
		}
	}
	return tally
}

func (s *ProbabilitiesTestSuite) TestFreshEightDeckShoeExactValues() {
	probs, err := Compute(s.fresh.Counts())
	s.Require().NoError(err)

	// 416 cards, 8 copies of each of the 52 kinds, 32 of each rank
	s.Equal(int64(416*415), probs.Counts.Total)
	s.Equal(int64(52*8*7), probs.Counts.Tie)
	s.Equal(int64(13*32*31), probs.Counts.Pair)
	s.Equal(probs.Counts.Dragon, probs.Counts.Tiger)

	s.InDelta(2912.0/172640.0, probs.Tie, 1e-15)
	s.InDelta(12896.0/172640.0, probs.Pair, 1e-15)
	s.InDelta((1-probs.Tie)/2, probs.Dragon, 1e-15)

	// without replacement a matching rank matches suit 7 times in 31
	s.InDelta(7.0/31.0, float64(probs.Counts.Tie)/float64(probs.Counts.Pair), 1e-15)
}

func (s *ProbabilitiesTestSuite) TestOutcomesSumToOne() {
	cards := s.fresh.Cards()
	for _, cut := range []int{416, 300, 97, 10, 3, 2} {
		sub := shoe.FromCards(cards[:cut])
		probs, err := Compute(sub.Counts())
		s.Require().NoError(err)
		s.InDelta(1.0, probs.Dragon+probs.Tiger+probs.Tie, 1e-12, "cut %d", cut)
		s.Equal(probs.Counts.Total, probs.Counts.Dragon+probs.Counts.Tiger+probs.Counts.Tie)
	}
}

func (s *ProbabilitiesTestSuite) TestMatchesPositionEnumeration() {
	cards := s.fresh.Cards()
	for _, cut := range []int{2, 5, 52, 150} {
		sub := shoe.FromCards(cards[:cut])
		probs, err := Compute(sub.Counts())
		s.Require().NoError(err)
		s.Equal(enumerate(sub.Cards()), probs.Counts, "cut %d", cut)
	}
}

func (s *ProbabilitiesTestSuite) TestInsufficientShoe() {
	_, err := Compute(shoe.FromCards(nil).Counts())
	s.ErrorIs(err, ErrInsufficientShoe)

	one := shoe.FromCards([]models.Card{models.NewCard(4, models.SuitClubs)})
	_, err = Compute(one.Counts())
	s.ErrorIs(err, ErrInsufficientShoe)
}

func (s *ProbabilitiesTestSuite) TestTwoIdenticalCardsAlwaysTie() {
	card := models.NewCard(models.RankKing, models.SuitHearts)
	probs, err := Compute(shoe.FromCards([]models.Card{card, card}).Counts())
	s.Require().NoError(err)

	s.Equal(1.0, probs.Tie)
	s.Equal(1.0, probs.Pair)
	s.Equal(0.0, probs.Dragon)
}

func (s *ProbabilitiesTestSuite) TestSuitTieBreakFoldsIntoSides() {
	probs, err := Compute(shoe.FromCards([]models.Card{
		models.NewCard(5, models.SuitSpades),
		models.NewCard(5, models.SuitDiamonds),
	}).Counts())
	s.Require().NoError(err)

	s.Equal(0.0, probs.Tie)
	s.Equal(1.0, probs.Pair)
	s.Equal(0.5, probs.Dragon)
	s.Equal(0.5, probs.Tiger)
}

func (s *ProbabilitiesTestSuite) TestComputeIsPure() {
	counts := s.fresh.Counts()
	first, err := Compute(counts)
	s.Require().NoError(err)
	second, err := Compute(counts)
	s.Require().NoError(err)
	s.Equal(first, second)
}

func TestProbabilitiesFor(t *testing.T) {
	probs := &Probabilities{Dragon: 0.4, Tiger: 0.5, Tie: 0.1, Pair: 0.07}
	assert.Equal(t, 0.4, probs.For(models.BetSideDragon))
	assert.Equal(t, 0.07, probs.For(models.BetSidePair))
	assert.Equal(t, 0.0, probs.For(models.BetSideNone))
}

func TestResolveAgreesWithEnumeration(t *testing.T) {
	for i := 0; i < models.CardsPerDeck; i++ {
		for j := 0; j < models.CardsPerDeck; j++ {
			if i == j {
				continue
			}
			d := models.CardFromIndex(i)
			tg := models.CardFromIndex(j)

			var counts shoe.Counts
			counts[i]++
			counts[j]++

			// a two-card shoe holds the (d, tg) and (tg, d) draws
			probs, err := Compute(counts)
			require.NoError(t, err)

			var want PairCounts
			want.Total = 2
			for _, r := range []models.RoundResult{outcome.Resolve(d, tg), outcome.Resolve(tg, d)} {
				switch r {
				case models.RoundResultDragon:
					want.Dragon++
				case models.RoundResultTiger:
					want.Tiger++
				case models.RoundResultTie:
					want.Tie++
				}
			}
			if d.Rank == tg.Rank {
				want.Pair = 2
			}
			assert.Equal(t, want, probs.Counts)
		}
	}
}
