package deck

import (
	"crypto/cipher"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"

	"go.dedis.ch/kyber/v4/suites"
)

// ErrDeckExhausted is returned when more cards are requested than remain in the deck.
var ErrDeckExhausted = errors.New("deck exhausted")

var suite suites.Suite = suites.MustFind("Ed25519")

// Deck is an ordered set of cards numbered 1..DeckSize. Cards are drawn from
// the top and never repeated until the next Shuffle.
type Deck struct {
	DeckSize      int
	cards         []int
	stream        cipher.Stream
	lastDrawnCard int
}

// New creates a deck of size cards in natural order. With a nil seed the
// shuffles draw from the suite's random stream; with a seed they are fully
// reproducible.
func New(size int, seed []byte) *Deck {
	d := &Deck{DeckSize: size}
	if seed == nil {
		d.stream = suite.RandomStream()
	} else {
		d.stream = suite.XOF(seed)
	}
	d.reset()
	return d
}

func (d *Deck) reset() {
	d.cards = make([]int, d.DeckSize)
	for i := range d.cards {
		d.cards[i] = i + 1
	}
	d.lastDrawnCard = 0
}

// DrawCard returns the card on top of the deck.
func (d *Deck) DrawCard() (int, error) {
	if d.lastDrawnCard >= len(d.cards) {
		return 0, ErrDeckExhausted
	}
	c := d.cards[d.lastDrawnCard]
	d.lastDrawnCard++
	return c, nil
}

// Deal draws n cards. Either all n cards are dealt or none is.
func (d *Deck) Deal(n int) ([]int, error) {
	if n < 0 || n > d.Remaining() {
		return nil, fmt.Errorf("cannot deal %d cards, %d left: %w", n, d.Remaining(), ErrDeckExhausted)
	}
	out := make([]int, 0, n)
	for i := 0; i < n; i++ {
		c, err := d.DrawCard()
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

// Remaining returns how many cards can still be drawn.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.lastDrawnCard
}

// Commitment returns a digest of the current card order, so that a hand can
// be audited after the fact against the recorded order.
func (d *Deck) Commitment() string {
	h := suite.Hash()
	buf := make([]byte, 2)
	for _, c := range d.cards {
		binary.BigEndian.PutUint16(buf, uint16(c))
		h.Write(buf)
	}
	return hex.EncodeToString(h.Sum(nil))
}
