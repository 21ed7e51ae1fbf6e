package deck

import (
	"crypto/cipher"
	"math/big"

	"go.dedis.ch/kyber/v4/util/random"
)

// Shuffle puts every drawn card back and permutes the whole deck uniformly.
func (d *Deck) Shuffle() {
	d.reset()
	perm := permutation(d.DeckSize, d.stream)
	for i, p := range perm {
		d.cards[i] = p + 1
	}
}

// permutation returns a uniform random permutation of 0..permSize-1 using a
// Fisher-Yates shuffle driven by rand.
func permutation(permSize int, rand cipher.Stream) []int {
	perm := make([]int, permSize)
	for i := range perm {
		perm[i] = i
	}
	for i := permSize - 1; i > 0; i-- {
		j := int(random.Int(big.NewInt(int64(i+1)), rand).Int64())
		perm[i], perm[j] = perm[j], perm[i]
	}
	return perm
}
