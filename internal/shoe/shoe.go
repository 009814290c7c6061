package shoe

import (
	"math/rand"
	"time"

	"github.com/KirkDiggler/dragontiger/internal/models"
)

// Counts holds how many copies of each card remain, indexed by models.Card.Index
type Counts [models.CardsPerDeck]int

// Total returns the number of cards represented
func (c *Counts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Config for building a shoe
type Config struct {
	// DeckCount is the number of 52-card decks in the shoe
	DeckCount int

	// Optional seed for testing
	Seed int64
}

// Shoe is the ordered pool of undealt cards
type Shoe struct {
	cards  []models.Card
	counts Counts
}

// New builds DeckCount full decks and shuffles them
func New(cfg *Config) (*Shoe, error) {
	if cfg == nil || cfg.DeckCount < 1 {
		return nil, ErrInvalidDeckCount
	}

	var seed int64
	if cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = time.Now().UnixNano()
	}
	random := rand.New(rand.NewSource(seed))

	cards := make([]models.Card, 0, cfg.DeckCount*models.CardsPerDeck)
	for d := 0; d < cfg.DeckCount; d++ {
		for rank := models.RankAce; rank <= models.RankKing; rank++ {
			for _, suit := range models.Suits() {
				cards = append(cards, models.NewCard(rank, suit))
			}
		}
	}

	random.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	return FromCards(cards), nil
}

// FromCards builds a shoe holding exactly the given cards in the given order.
// Invalid cards are skipped.
func FromCards(cards []models.Card) *Shoe {
	s := &Shoe{
		cards: make([]models.Card, 0, len(cards)),
	}
	for _, card := range cards {
		if !card.Valid() {
			continue
		}
		s.cards = append(s.cards, card)
		s.counts[card.Index()]++
	}
	return s
}

// Remove takes one occurrence of card out of the shoe. It returns false and
// leaves the shoe unchanged when no copy of the card remains.
func (s *Shoe) Remove(card models.Card) bool {
	if !card.Valid() || s.counts[card.Index()] == 0 {
		return false
	}

	for i, c := range s.cards {
		if c == card {
			s.cards = append(s.cards[:i], s.cards[i+1:]...)
			s.counts[card.Index()]--
			return true
		}
	}

	return false
}

// RemainingCount returns the number of undealt cards
func (s *Shoe) RemainingCount() int {
	return len(s.cards)
}

// RemainingOfRank returns how many cards of the given rank are left
func (s *Shoe) RemainingOfRank(rank models.Rank) int {
	if !rank.Valid() {
		return 0
	}
	total := 0
	for _, suit := range models.Suits() {
		total += s.counts[models.NewCard(rank, suit).Index()]
	}
	return total
}

// Cards returns a copy of the remaining cards in shoe order
func (s *Shoe) Cards() []models.Card {
	out := make([]models.Card, len(s.cards))
	copy(out, s.cards)
	return out
}

// Counts returns the per-card multiplicities of the remaining cards
func (s *Shoe) Counts() Counts {
	return s.counts
}
