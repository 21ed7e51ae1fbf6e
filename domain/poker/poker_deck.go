package poker

import (
	"errors"

	"github.com/luca-patrignani/holdem-showdown/domain/deck"
)

// PokerDeck wraps a generic numbered deck and converts its cards to poker
// Cards.
type PokerDeck struct {
	*deck.Deck
}

// NewPokerDeck creates a new poker deck with 52 cards. A nil seed gives a
// non-deterministic shuffle, any other seed a reproducible one.
func NewPokerDeck(seed []byte) PokerDeck {
	return PokerDeck{
		Deck: deck.New(52, seed),
	}
}

// IntToCard converts a raw card number (1-52) to a Card. Card numbers map to suits in order
// (clubs, diamonds, hearts, spades) with ranks 1-13 within each suit.
//
// Card numbering:
//   - 1-13: Clubs (Ace through King)
//   - 14-26: Diamonds (Ace through King)
//   - 27-39: Hearts (Ace through King)
//   - 40-52: Spades (Ace through King)
//
// Returns the corresponding Card or an error if the number is outside valid range.
func IntToCard(rawCard int) (Card, error) {
	if rawCard > 52 || rawCard < 1 {
		return Card{}, errors.New("the card to convert have an invalid value")
	}

	suit := uint8(((rawCard - 1) / 13))
	rank := uint8(((rawCard - 1) % 13) + 1)
	return NewCard(suit, rank)
}

// CardToInt converts a Card to its integer representation (1-52).
// This is the inverse operation of IntToCard.
func CardToInt(card Card) int {
	return int(card.Suit())*13 + int(card.Rank())
}

// Deal draws n cards from the top of the deck.
func (d PokerDeck) Deal(n int) ([]Card, error) {
	raw, err := d.Deck.Deal(n)
	if err != nil {
		return nil, err
	}
	cards := make([]Card, len(raw))
	for i, r := range raw {
		cards[i], err = IntToCard(r)
		if err != nil {
			return nil, err
		}
	}
	return cards, nil
}
