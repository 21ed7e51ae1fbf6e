package poker

// EvaluatedHand is the best 5-card hand found for a player.
type EvaluatedHand struct {
	Category HandCategory
	Cards    [5]Card
	Owner    int // Player.Id
}

// combinations7 lists the 21 index subsets of size 5 out of 7 cards in
// lexicographic order.
var combinations7 = func() [][5]int {
	out := make([][5]int, 0, 21)
	for a := 0; a < 3; a++ {
		for b := a + 1; b < 4; b++ {
			for c := b + 1; c < 5; c++ {
				for d := c + 1; d < 6; d++ {
					for e := d + 1; e < 7; e++ {
						out = append(out, [5]int{a, b, c, d, e})
					}
				}
			}
		}
	}
	return out
}()

// BestHand selects the strongest 5-card combination out of the 2 pocket cards
// and the 5 community cards.
//
// All 21 combinations are classified. A combination replaces the current best
// when its category is strictly higher, or when the categories are equal and it
// wins the category's tie-break. On an exact tie the first combination found
// is kept.
func BestHand(pocket [2]Card, board [5]Card) EvaluatedHand {
	all := [7]Card{pocket[0], pocket[1], board[0], board[1], board[2], board[3], board[4]}

	var best EvaluatedHand
	for i, idx := range combinations7 {
		var hand [5]Card
		for j, k := range idx {
			hand[j] = all[k]
		}
		category := Classify(hand)
		if i == 0 || category > best.Category ||
			(category == best.Category && compareTieBreak(category, hand, best.Cards) > 0) {
			best = EvaluatedHand{Category: category, Cards: hand}
		}
	}
	return best
}
