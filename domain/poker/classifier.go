package poker

import "sort"

// HandCategory is one of the ten poker hand categories. Values are totally
// ordered by strength: a larger value always beats a smaller one.
type HandCategory uint8

const (
	// NoCategory is reported when a pot was won without evaluating any hand.
	NoCategory HandCategory = iota
	HighCard
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

var categoryNames = map[HandCategory]string{
	NoCategory:    "No Showdown",
	HighCard:      "High Card",
	Pair:          "Pair",
	TwoPair:       "Two Pair",
	ThreeOfAKind:  "Three of a Kind",
	Straight:      "Straight",
	Flush:         "Flush",
	FullHouse:     "Full House",
	FourOfAKind:   "Four of a Kind",
	StraightFlush: "Straight Flush",
	RoyalFlush:    "Royal Flush",
}

func (h HandCategory) String() string {
	if name, ok := categoryNames[h]; ok {
		return name
	}
	return "Unknown"
}

// Classify returns the category of a 5-card hand.
//
// The categories are checked in a fixed priority order and the first match
// wins: royal flush, straight flush, four of a kind, full house, flush,
// straight, three of a kind, two pair, pair, high card. Every count check is
// an exact match ("occurs exactly 3 times"), never "at least".
//
// Ace is valued 1, so A-2-3-4-5 is a straight while an unsuited 10-J-Q-K-A is
// not; the suited version is caught by the royal flush rule.
func Classify(cards [5]Card) HandCategory {
	ranks := sortedRanks(cards)
	counts := rankCounts(ranks)
	flush := sameSuit(cards)
	run := isRun(ranks)

	switch {
	case flush && royalRanks(ranks):
		return RoyalFlush
	case flush && run:
		return StraightFlush
	case len(counts) == 2 && hasCount(counts, 4):
		return FourOfAKind
	case len(counts) == 2 && hasCount(counts, 3):
		return FullHouse
	case flush:
		return Flush
	case run:
		return Straight
	case hasCount(counts, 3):
		return ThreeOfAKind
	case len(counts) == 3:
		return TwoPair
	case hasCount(counts, 2):
		return Pair
	default:
		return HighCard
	}
}

// sortedRanks returns the five ranks in ascending order.
func sortedRanks(cards [5]Card) [5]uint8 {
	var ranks [5]uint8
	for i, c := range cards {
		ranks[i] = c.rank
	}
	sort.Slice(ranks[:], func(i, j int) bool { return ranks[i] < ranks[j] })
	return ranks
}

// rankCounts maps each distinct rank to the number of cards holding it.
func rankCounts(ranks [5]uint8) map[uint8]int {
	counts := make(map[uint8]int, 5)
	for _, r := range ranks {
		counts[r]++
	}
	return counts
}

func hasCount(counts map[uint8]int, n int) bool {
	for _, c := range counts {
		if c == n {
			return true
		}
	}
	return false
}

func sameSuit(cards [5]Card) bool {
	for _, c := range cards[1:] {
		if c.suit != cards[0].suit {
			return false
		}
	}
	return true
}

// isRun reports whether the sorted ranks ascend by exactly one from the lowest.
func isRun(ranks [5]uint8) bool {
	for i, r := range ranks {
		if r != ranks[0]+uint8(i) {
			return false
		}
	}
	return true
}

func royalRanks(ranks [5]uint8) bool {
	for _, r := range ranks {
		switch r {
		case 10, Jack, Queen, King, Ace:
		default:
			return false
		}
	}
	return true
}
