package poker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func seat(t *testing.T, id int, a, b string) Player {
	t.Helper()
	return Player{Name: "p" + string(rune('0'+id)), Id: id, Hand: pocket(t, a, b)}
}

func TestResolveSinglePlayerTakesPot(t *testing.T) {
	// no evaluation: neither pocket nor board cards are looked at
	res, err := Resolve([]Player{{Id: 7}}, [5]Card{}, 250)
	require.NoError(t, err)
	require.Equal(t, []int{7}, res.Winners)
	require.Equal(t, uint(250), res.PotShare)
	require.Equal(t, NoCategory, res.Category)
	require.False(t, res.Contested)
	require.Equal(t, map[int]uint{7: 250}, res.Payouts())
}

func TestResolveMalformedInput(t *testing.T) {
	_, err := Resolve(nil, [5]Card{}, 10)
	require.ErrorIs(t, err, ErrNoPlayers)

	board := hand5(t, "2c", "5d", "7h", "9s", "Jc")
	_, err = Resolve([]Player{seat(t, 1, "Ac", "Ad"), {Id: 2}}, board, 10)
	require.True(t, errors.Is(err, ErrFaceDownCard))

	_, err = Resolve([]Player{seat(t, 1, "Ac", "Ad"), seat(t, 2, "Kc", "Kd")}, [5]Card{}, 10)
	require.ErrorIs(t, err, ErrFaceDownCard)
}

func TestResolveHigherCategoryWins(t *testing.T) {
	board := hand5(t, "Kh", "7c", "4d", "9s", "2h")
	players := []Player{
		seat(t, 1, "Kd", "3c"), // pair of kings
		seat(t, 2, "7d", "4c"), // two pair
		seat(t, 3, "Ac", "Qd"), // high card
	}
	res, err := Resolve(players, board, 90)
	require.NoError(t, err)
	require.Equal(t, []int{2}, res.Winners)
	require.Equal(t, TwoPair, res.Category)
	require.Equal(t, uint(90), res.PotShare)
	require.True(t, res.Contested)
	require.Len(t, res.Hands, 3)
}

func TestResolveIdenticalPairsSplit(t *testing.T) {
	board := hand5(t, "Kh", "7c", "4d", "9s", "2h")
	players := []Player{
		seat(t, 1, "Kd", "3c"),
		seat(t, 2, "Ks", "3d"),
	}
	res, err := Resolve(players, board, 100)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, res.Winners)
	require.Equal(t, Pair, res.Category)
	require.Equal(t, uint(50), res.PotShare)
	require.Equal(t, map[int]uint{1: 50, 2: 50}, res.Payouts())
	require.True(t, res.IsSplit())
}

func TestResolveBoardRoyalFlushSplitsBetweenEveryone(t *testing.T) {
	board := hand5(t, "Ts", "Js", "Qs", "Ks", "As")
	players := []Player{
		seat(t, 1, "2c", "3d"),
		seat(t, 2, "Ac", "Ad"),
		seat(t, 3, "9s", "8s"),
	}
	res, err := Resolve(players, board, 100)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2, 3}, res.Winners)
	require.Equal(t, RoyalFlush, res.Category)
	require.Equal(t, uint(33), res.PotShare)
	require.Equal(t, uint(1), res.Remainder)
	require.Equal(t, map[int]uint{1: 34, 2: 33, 3: 33}, res.Payouts())
}

func TestResolveTieBreaks(t *testing.T) {
	tests := []struct {
		name     string
		board    []string
		players  [][2]string
		winners  []int
		category HandCategory
	}{
		{
			name:     "straight: higher top card",
			board:    []string{"5c", "6d", "7h", "2s", "2c"},
			players:  [][2]string{{"8s", "4c"}, {"8d", "9d"}},
			winners:  []int{2},
			category: Straight,
		},
		{
			name:     "straight: same top card draws",
			board:    []string{"5c", "6d", "7h", "2s", "2c"},
			players:  [][2]string{{"8s", "4c"}, {"8d", "4h"}},
			winners:  []int{1, 2},
			category: Straight,
		},
		{
			name:     "four of a kind: kicker",
			board:    []string{"9c", "9d", "9h", "9s", "2c"},
			players:  [][2]string{{"Qc", "3h"}, {"Kc", "3d"}},
			winners:  []int{2},
			category: FourOfAKind,
		},
		{
			name:     "four of a kind: ace kicker is low",
			board:    []string{"9c", "9d", "9h", "9s", "2c"},
			players:  [][2]string{{"Qc", "3h"}, {"Ac", "3s"}},
			winners:  []int{1},
			category: FourOfAKind,
		},
		{
			name:     "full house: trips rank",
			board:    []string{"Kc", "Kd", "5h", "5s", "2c"},
			players:  [][2]string{{"5c", "3d"}, {"Kh", "3c"}},
			winners:  []int{2},
			category: FullHouse,
		},
		{
			name:     "full house: pair rank",
			board:    []string{"8c", "8d", "8h", "2s", "3c"},
			players:  [][2]string{{"Kc", "Kd"}, {"Qc", "Qd"}},
			winners:  []int{1},
			category: FullHouse,
		},
		{
			name:     "flush: compared from the lowest card",
			board:    []string{"2h", "5h", "9h", "Jh", "3c"},
			players:  [][2]string{{"Ah", "3h"}, {"Kh", "4h"}},
			winners:  []int{2},
			category: Flush,
		},
		{
			name:     "three of a kind: kickers",
			board:    []string{"7c", "7d", "7h", "2s", "9c"},
			players:  [][2]string{{"Qc", "4d"}, {"Kc", "3d"}},
			winners:  []int{2},
			category: ThreeOfAKind,
		},
		{
			name:     "two pair: pair ranks",
			board:    []string{"Jc", "Jd", "4h", "4s", "2c"},
			players:  [][2]string{{"8c", "8d"}, {"9c", "9d"}},
			winners:  []int{2},
			category: TwoPair,
		},
		{
			name:     "two pair: kicker",
			board:    []string{"Jc", "Jd", "4h", "4s", "2c"},
			players:  [][2]string{{"Kc", "3d"}, {"Qc", "3h"}},
			winners:  []int{1},
			category: TwoPair,
		},
		{
			name:     "pair: kickers",
			board:    []string{"Kh", "7c", "4d", "9s", "2h"},
			players:  [][2]string{{"Ks", "6c"}, {"Kd", "8c"}},
			winners:  []int{2},
			category: Pair,
		},
		{
			name:     "high card: last position decides",
			board:    []string{"2c", "5d", "7h", "9s", "Jc"},
			players:  [][2]string{{"Qd", "3s"}, {"Kd", "3h"}},
			winners:  []int{2},
			category: HighCard,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var players []Player
			for i, p := range tt.players {
				players = append(players, seat(t, i+1, p[0], p[1]))
			}
			res, err := Resolve(players, hand5(t, tt.board...), 100)
			require.NoError(t, err)
			require.Equal(t, tt.category, res.Category)
			require.Equal(t, tt.winners, res.Winners)
		})
	}
}

// TestResolveStrongerPlayerReplacesDraw checks that a later, better hand clears the draw set
func TestResolveStrongerPlayerReplacesDraw(t *testing.T) {
	board := hand5(t, "Kh", "7c", "4d", "9s", "2h")
	players := []Player{
		seat(t, 1, "Kd", "3c"),
		seat(t, 2, "Ks", "3d"),
		seat(t, 3, "7d", "4c"),
	}
	res, err := Resolve(players, board, 100)
	require.NoError(t, err)
	require.Equal(t, []int{3}, res.Winners)
	require.Equal(t, uint(100), res.PotShare)
}

// TestResolveWeakerPlayerKeepsDraw checks that a later, worse hand leaves the draw set untouched
func TestResolveWeakerPlayerKeepsDraw(t *testing.T) {
	board := hand5(t, "Kh", "7c", "4d", "9s", "2h")
	players := []Player{
		seat(t, 1, "Kd", "3c"),
		seat(t, 2, "Ks", "3d"),
		seat(t, 3, "Qc", "Jd"),
	}
	res, err := Resolve(players, board, 101)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, res.Winners)
	require.Equal(t, uint(50), res.PotShare)
	require.Equal(t, uint(1), res.Remainder)
}

// TestResolveComparesAgainstNewLeader checks that after a tie-break win the
// next players are compared with the new leader's hand, not the old one.
func TestResolveComparesAgainstNewLeader(t *testing.T) {
	board := hand5(t, "Kh", "7c", "4d", "9s", "2h")
	players := []Player{
		seat(t, 1, "Kd", "3c"), // K K 9 7 4
		seat(t, 2, "Ks", "8c"), // K K 9 8 7
		seat(t, 3, "Kc", "3d"), // same as player 1
	}
	res, err := Resolve(players, board, 100)
	require.NoError(t, err)
	require.Equal(t, []int{2}, res.Winners)
}

func TestResolveDuplicatePlayerCountedOnce(t *testing.T) {
	board := hand5(t, "Kh", "7c", "4d", "9s", "2h")
	alice := seat(t, 1, "Kd", "3c")
	res, err := Resolve([]Player{alice, seat(t, 2, "Ks", "3d"), alice}, board, 100)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, res.Winners)
	require.Equal(t, uint(50), res.PotShare)
}

// TestCompareHandsIsConsistent samples random hands and checks antisymmetry and transitivity
func TestCompareHandsIsConsistent(t *testing.T) {
	d := NewPokerDeck([]byte("transitivity"))
	var hands []EvaluatedHand
	for i := 0; i < 60; i++ {
		d.Shuffle()
		pool, err := d.Deal(7)
		require.NoError(t, err)
		var board [5]Card
		copy(board[:], pool[2:])
		hands = append(hands, BestHand([2]Card{pool[0], pool[1]}, board))
	}
	for _, a := range hands {
		for _, b := range hands {
			require.Equal(t, CompareHands(a, b), -CompareHands(b, a))
			if CompareHands(a, b) <= 0 {
				continue
			}
			for _, c := range hands {
				if CompareHands(b, c) > 0 {
					require.Positive(t, CompareHands(a, c), "%v > %v > %v", a.Cards, b.Cards, c.Cards)
				}
			}
		}
	}
}

// TestResolveStraightDrawDecidedAfterFullComparison checks that equal straights
// only join the draw once every position matched, and that a higher straight
// seen later leaves no stale draw behind.
func TestResolveStraightDrawDecidedAfterFullComparison(t *testing.T) {
	board := hand5(t, "5c", "6d", "7h", "2s", "2c")
	players := []Player{
		seat(t, 1, "8s", "4c"),
		seat(t, 2, "8d", "4h"),
		seat(t, 3, "9c", "8h"),
		seat(t, 4, "8c", "4d"),
	}
	res, err := Resolve(players, board, 100)
	require.NoError(t, err)
	require.Equal(t, []int{3}, res.Winners)
	require.Equal(t, Straight, res.Category)
	require.Equal(t, uint(100), res.PotShare)
}
