package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Rank is the face value of a card, 1 (Ace, lowest) through 13 (King, highest)
type Rank int

const (
	RankAce   Rank = 1
	RankJack  Rank = 11
	RankQueen Rank = 12
	RankKing  Rank = 13
)

// Suit is a card suit. The numeric value is the house tie-break order:
// a lower suit beats a higher suit when ranks are equal.
type Suit int

const (
	SuitSpades Suit = iota
	SuitHearts
	SuitClubs
	SuitDiamonds
)

const (
	// RanksPerDeck is the number of distinct ranks
	RanksPerDeck = 13

	// SuitsPerDeck is the number of distinct suits
	SuitsPerDeck = 4

	// CardsPerDeck is the size of a single deck
	CardsPerDeck = RanksPerDeck * SuitsPerDeck
)

var suitSymbols = [SuitsPerDeck]string{"♠", "♥", "♣", "♦"}

var suitLetters = map[string]Suit{
	"s": SuitSpades,
	"h": SuitHearts,
	"c": SuitClubs,
	"d": SuitDiamonds,
}

// Suits returns every suit in tie-break order
func Suits() []Suit {
	return []Suit{SuitSpades, SuitHearts, SuitClubs, SuitDiamonds}
}

// Valid reports whether the suit is one of the four known suits
func (s Suit) Valid() bool {
	return s >= SuitSpades && s <= SuitDiamonds
}

// String returns the suit glyph
func (s Suit) String() string {
	if !s.Valid() {
		return "?"
	}
	return suitSymbols[s]
}

// Valid reports whether the rank is within Ace..King
func (r Rank) Valid() bool {
	return r >= RankAce && r <= RankKing
}

// String returns the short rank label (A, 2-10, J, Q, K)
func (r Rank) String() string {
	switch r {
	case RankAce:
		return "A"
	case RankJack:
		return "J"
	case RankQueen:
		return "Q"
	case RankKing:
		return "K"
	}
	if r.Valid() {
		return strconv.Itoa(int(r))
	}
	return "?"
}

// Card is a single playing card
type Card struct {
	// Rank is the face value of the card
	Rank Rank

	// Suit is the suit of the card
	Suit Suit
}

// NewCard builds a card
func NewCard(rank Rank, suit Suit) Card {
	return Card{Rank: rank, Suit: suit}
}

// Valid reports whether both rank and suit are in range
func (c Card) Valid() bool {
	return c.Rank.Valid() && c.Suit.Valid()
}

// Index maps the card onto 0..51, ordered by rank then suit
func (c Card) Index() int {
	return (int(c.Rank)-1)*SuitsPerDeck + int(c.Suit)
}

// CardFromIndex is the inverse of Card.Index
func CardFromIndex(i int) Card {
	return Card{
		Rank: Rank(i/SuitsPerDeck + 1),
		Suit: Suit(i % SuitsPerDeck),
	}
}

// String renders the card the way the tracker displays it, e.g. "A♠" or "10♦"
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// ParseCard parses card notation such as "A♠", "10h", "KD" or "qc"
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Card{}, fmt.Errorf("empty card")
	}

	var suit Suit
	var rankPart string
	found := false

	for i, sym := range suitSymbols {
		if strings.HasSuffix(s, sym) {
			suit = Suit(i)
			rankPart = strings.TrimSuffix(s, sym)
			found = true
			break
		}
	}

	if !found {
		last := strings.ToLower(s[len(s)-1:])
		letter, ok := suitLetters[last]
		if !ok {
			return Card{}, fmt.Errorf("unknown suit in card %q", s)
		}
		suit = letter
		rankPart = s[:len(s)-1]
	}

	rank, err := ParseRank(rankPart)
	if err != nil {
		return Card{}, fmt.Errorf("card %q: %w", s, err)
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseRank parses a rank label (A, 1-10, J, Q, K), case-insensitive
func ParseRank(s string) (Rank, error) {
	label := strings.ToUpper(strings.TrimSpace(s))
	switch label {
	case "A":
		return RankAce, nil
	case "J":
		return RankJack, nil
	case "Q":
		return RankQueen, nil
	case "K":
		return RankKing, nil
	case "T":
		return 10, nil
	}

	n, err := strconv.Atoi(label)
	if err != nil || !Rank(n).Valid() {
		return 0, fmt.Errorf("unknown rank %q", s)
	}
	return Rank(n), nil
}
