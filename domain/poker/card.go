package poker

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
)

// Card suit constants (0-3)
const (
	Club    = 0 // ♣ (black)
	Diamond = 1 // ♦ (red)
	Heart   = 2 // ♥ (red)
	Spade   = 3 // ♠ (black)
)

// Card rank constants for face cards and ace
const (
	Jack  = 11 // J
	Queen = 12 // Q
	King  = 13 // K
	Ace   = 1  // A (valued 1 in every rank comparison)
)

// FaceDown is the display character for hidden cards
const (
	FaceDown = "▓"
)

// Card represents a playing card with suit and rank.
// Rank 0 indicates a face-down or uninitialized card.
type Card struct {
	suit uint8 // 0-3: clubs, diamonds, hearts, spades
	rank uint8 // 1-13: ace through king (0 = face down)
}

// NewCard creates a new Card with validation.
//
// Parameters:
//   - suit: 0-3 (Club, Diamond, Heart, Spade)
//   - rank: 1-13 (Ace=1, 2-10=face value, Jack=11, Queen=12, King=13)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(suit uint8, rank uint8) (Card, error) {
	if suit > 3 || rank == 0 || rank > 13 {
		return Card{}, fmt.Errorf("invalid card %d, %d", suit, rank)
	}

	return Card{
		suit: suit,
		rank: rank,
	}, nil
}

// ParseCard converts a short card string such as "As", "Td", "10h" or "Kc" to a Card.
// The last character is the suit (c, d, h, s), the rest is the rank.
func ParseCard(s string) (Card, error) {
	if len(s) < 2 {
		return Card{}, fmt.Errorf("invalid card string: %q", s)
	}

	var suit uint8
	switch s[len(s)-1] {
	case 'c', 'C':
		suit = Club
	case 'd', 'D':
		suit = Diamond
	case 'h', 'H':
		suit = Heart
	case 's', 'S':
		suit = Spade
	default:
		return Card{}, fmt.Errorf("invalid suit in %q", s)
	}

	var rank uint8
	switch r := strings.ToUpper(s[:len(s)-1]); r {
	case "A":
		rank = Ace
	case "K":
		rank = King
	case "Q":
		rank = Queen
	case "J":
		rank = Jack
	case "T", "10":
		rank = 10
	default:
		if len(r) != 1 || r[0] < '2' || r[0] > '9' {
			return Card{}, fmt.Errorf("invalid rank in %q", s)
		}
		rank = r[0] - '0'
	}
	return NewCard(suit, rank)
}

// ParseCards parses every string with ParseCard, stopping at the first error.
func ParseCards(ss ...string) ([]Card, error) {
	cards := make([]Card, 0, len(ss))
	for _, s := range ss {
		c, err := ParseCard(s)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// Suit returns the suit value of the Card (0-3: clubs, diamonds, hearts, spades).
func (c Card) Suit() uint8 {
	return c.suit
}

// Rank returns the rank value of the Card (1-13: ace through king).
func (c Card) Rank() uint8 {
	return c.rank
}

// IsFaceDown reports whether the card has not been dealt or revealed.
func (c Card) IsFaceDown() bool {
	return c.rank == 0
}

// valid reports whether the card is a real, face-up card of the 52-card model.
func (c Card) valid() bool {
	return c.suit <= Spade && c.rank >= 1 && c.rank <= King
}

// Short returns the two-character notation accepted by ParseCard ("As", "Td").
func (c Card) Short() string {
	if c.rank == 0 {
		return FaceDown
	}
	r := rankSymbol(c.rank)
	if c.rank == 10 {
		r = "T"
	}
	return r + string("cdhs"[c.suit&3])
}

// String returns a human-readable representation of the Card using suit symbols
// (♣, ♦, ♥, ♠) and rank abbreviations (A, J, Q, K, or number).
func (c Card) String() string {
	var suit string
	switch c.suit {
	case 0:
		suit = pterm.Black("♣")
	case 1:
		suit = pterm.LightRed("♦")
	case 2:
		suit = pterm.LightRed("♥")
	case 3:
		suit = pterm.Black("♠")
	default:
		suit = "?"
	}

	if c.rank == 0 {
		return FaceDown
	}
	return rankSymbol(c.rank) + suit
}

func rankSymbol(rank uint8) string {
	switch rank {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", rank)
	}
}
