package poker

import "fmt"

// ShowdownResult is the outcome of resolving a single pot.
type ShowdownResult struct {
	Winners   []int // Player IDs, unique, in seat order of first appearance
	Category  HandCategory
	Hands     map[int]EvaluatedHand // best hand of every evaluated player
	Pot       uint
	PotShare  uint // Pot / len(Winners)
	Remainder uint // chips left over by the integer split
	Contested bool // false when the pot was won without a showdown
}

// Payouts returns how many chips each winner receives. The remainder of the
// integer split goes to the first winner.
func (r ShowdownResult) Payouts() map[int]uint {
	out := make(map[int]uint, len(r.Winners))
	for i, id := range r.Winners {
		out[id] += r.PotShare
		if i == 0 {
			out[id] += r.Remainder
		}
	}
	return out
}

// IsSplit reports whether the pot is shared by more than one player.
func (r ShowdownResult) IsSplit() bool {
	return len(r.Winners) > 1
}

// Resolve determines the winners of a pot among the players still in the hand.
//
// A single player takes the whole pot without any evaluation. If the board on
// its own is a royal flush every player shares the pot. Otherwise the players'
// best hands are compared in order: a stronger hand replaces the winner set, an
// identical one joins it.
//
// Errors are returned only for malformed input (no players, face-down or invalid
// cards); they signal a bug in the caller, not a game condition.
func Resolve(players []Player, board [5]Card, pot uint) (ShowdownResult, error) {
	if len(players) == 0 {
		return ShowdownResult{}, ErrNoPlayers
	}
	if len(players) == 1 {
		return uncontested(players[0].Id, pot), nil
	}
	if err := checkShowdownCards(players, board); err != nil {
		return ShowdownResult{}, err
	}

	res := ShowdownResult{
		Pot:       pot,
		Contested: true,
		Hands:     make(map[int]EvaluatedHand, len(players)),
	}
	for _, p := range players {
		h := BestHand(p.Hand, board)
		h.Owner = p.Id
		res.Hands[p.Id] = h
	}

	if Classify(board) == RoyalFlush {
		draw := newDrawSet()
		for _, p := range players {
			draw.add(p.Id)
		}
		res.Category = RoyalFlush
		res.Winners = draw.members()
		res.PotShare, res.Remainder = splitPot(pot, len(res.Winners))
		return res, nil
	}

	best := res.Hands[players[0].Id]
	draw := newDrawSet(best.Owner)
	for _, p := range players[1:] {
		h := res.Hands[p.Id]
		switch c := CompareHands(h, best); {
		case c > 0:
			best = h
			draw = newDrawSet(h.Owner)
		case c == 0:
			draw.add(h.Owner)
		}
	}

	res.Category = best.Category
	res.Winners = draw.members()
	res.PotShare, res.Remainder = splitPot(pot, len(res.Winners))
	return res, nil
}

func uncontested(id int, pot uint) ShowdownResult {
	return ShowdownResult{
		Winners:  []int{id},
		Category: NoCategory,
		Pot:      pot,
		PotShare: pot,
	}
}

func splitPot(pot uint, n int) (share, remainder uint) {
	return pot / uint(n), pot % uint(n)
}

func checkShowdownCards(players []Player, board [5]Card) error {
	for i, c := range board {
		if !c.valid() {
			return fmt.Errorf("board card %d: %w", i, ErrFaceDownCard)
		}
	}
	for _, p := range players {
		for i, c := range p.Hand {
			if !c.valid() {
				return fmt.Errorf("player %d pocket card %d: %w", p.Id, i, ErrFaceDownCard)
			}
		}
	}
	return nil
}

// CompareHands orders two evaluated hands: positive if a beats b, negative if b
// beats a and zero for a draw.
func CompareHands(a, b EvaluatedHand) int {
	if a.Category != b.Category {
		if a.Category > b.Category {
			return 1
		}
		return -1
	}
	return compareTieBreak(a.Category, a.Cards, b.Cards)
}

// compareTieBreak compares two hands of the same category. Ranks are taken in
// ascending order with Ace valued 1.
func compareTieBreak(category HandCategory, a, b [5]Card) int {
	ra, rb := sortedRanks(a), sortedRanks(b)

	switch category {
	case RoyalFlush, StraightFlush, Straight:
		return compareRank(ra[4], rb[4])
	case FourOfAKind:
		return compareSeq(
			[]uint8{rankGroup(ra, 4)[0], rankGroup(ra, 1)[0]},
			[]uint8{rankGroup(rb, 4)[0], rankGroup(rb, 1)[0]},
		)
	case FullHouse:
		return compareSeq(
			[]uint8{rankGroup(ra, 3)[0], rankGroup(ra, 2)[0]},
			[]uint8{rankGroup(rb, 3)[0], rankGroup(rb, 2)[0]},
		)
	case ThreeOfAKind:
		if c := compareRank(rankGroup(ra, 3)[0], rankGroup(rb, 3)[0]); c != 0 {
			return c
		}
		return compareSeq(rankGroup(ra, 1), rankGroup(rb, 1))
	case TwoPair:
		if c := compareSeq(rankGroup(ra, 2), rankGroup(rb, 2)); c != 0 {
			return c
		}
		return compareSeq(rankGroup(ra, 1), rankGroup(rb, 1))
	case Pair:
		if c := compareRank(rankGroup(ra, 2)[0], rankGroup(rb, 2)[0]); c != 0 {
			return c
		}
		return compareSeq(rankGroup(ra, 1), rankGroup(rb, 1))
	default: // Flush, HighCard
		return compareSeq(ra[:], rb[:])
	}
}

// rankGroup returns, in ascending order, the ranks that occur exactly n times.
func rankGroup(ranks [5]uint8, n int) []uint8 {
	counts := rankCounts(ranks)
	var out []uint8
	for i, r := range ranks {
		if counts[r] == n && (i == 0 || ranks[i-1] != r) {
			out = append(out, r)
		}
	}
	return out
}

func compareRank(a, b uint8) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	}
	return 0
}

// compareSeq walks both sequences position by position; the first position
// that differs decides.
func compareSeq(a, b []uint8) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := compareRank(a[i], b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// drawSet keeps the players sharing the best hand. Members are reported in
// insertion order and added only once.
type drawSet struct {
	order []int
	seen  map[int]struct{}
}

func newDrawSet(ids ...int) *drawSet {
	d := &drawSet{seen: make(map[int]struct{})}
	for _, id := range ids {
		d.add(id)
	}
	return d
}

func (d *drawSet) add(id int) {
	if _, ok := d.seen[id]; ok {
		return
	}
	d.seen[id] = struct{}{}
	d.order = append(d.order, id)
}

func (d *drawSet) members() []int {
	return append([]int(nil), d.order...)
}
