package poker

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTable(t *testing.T, bankrolls ...uint) *Session {
	t.Helper()
	players := make([]Player, len(bankrolls))
	for i, b := range bankrolls {
		players[i] = Player{Name: string(rune('A' + i)), Id: i + 1, BankRoll: b}
	}
	return NewSession(players, NewPokerDeck([]byte(t.Name())))
}

func chips(s *Session) uint {
	total := uint(0)
	for _, p := range s.Players {
		total += p.BankRoll + p.Bet
	}
	return total
}

func TestSessionStartDealsPocketCards(t *testing.T) {
	s := newTable(t, 100, 100, 100)
	require.NoError(t, s.Start())
	require.Equal(t, PreFlop, s.Round)
	require.NotEmpty(t, s.RoundID)

	seen := map[Card]bool{}
	for _, p := range s.Players {
		for _, c := range p.Hand {
			require.False(t, c.IsFaceDown())
			require.False(t, seen[c], "card %s dealt twice", c.Short())
			seen[c] = true
		}
	}
	require.Equal(t, 52-6, s.Deck.Remaining())

	first := s.RoundID
	require.NoError(t, s.Start())
	require.NotEqual(t, first, s.RoundID)
}

func TestSessionStartNeedsTwoPlayers(t *testing.T) {
	s := newTable(t, 100)
	require.Error(t, s.Start())
}

func TestSessionStreets(t *testing.T) {
	s := newTable(t, 100, 100)
	require.NoError(t, s.Start())

	for _, want := range []struct {
		round Round
		board int
	}{{Flop, 3}, {Turn, 4}, {River, 5}, {Showdown, 5}} {
		r, err := s.NextRound()
		require.NoError(t, err)
		require.Equal(t, want.round, r)
		require.Len(t, s.Board, want.board)
	}

	_, err := s.NextRound()
	require.Error(t, err)
}

func TestSessionFoldToOne(t *testing.T) {
	s := newTable(t, 100, 100, 100)
	before := chips(s)
	require.NoError(t, s.Start())

	require.NoError(t, s.Bet(1, 20))
	require.NoError(t, s.Bet(2, 20))
	require.NoError(t, s.Fold(3))
	require.NoError(t, s.Fold(2))

	r, err := s.NextRound()
	require.NoError(t, err)
	require.Equal(t, Showdown, r)
	require.Empty(t, s.Board)

	out, err := s.FinishRound()
	require.NoError(t, err)
	require.Equal(t, []int{1}, out.Winners())
	require.Equal(t, map[int]uint{1: 40}, out.Payouts)
	require.Len(t, out.Pots, 1)
	require.False(t, out.Pots[0].Contested)
	require.Equal(t, uint(120), s.Players[0].BankRoll)
	require.Equal(t, before, chips(s))
}

func TestSessionShowdownConservesChips(t *testing.T) {
	s := newTable(t, 100, 100, 100)
	before := chips(s)
	require.NoError(t, s.Start())
	for _, id := range []int{1, 2, 3} {
		require.NoError(t, s.Bet(id, 10))
	}
	for s.Round != Showdown {
		_, err := s.NextRound()
		require.NoError(t, err)
	}

	out, err := s.FinishRound()
	require.NoError(t, err)
	require.Equal(t, uint(30), out.Total())
	require.NotEmpty(t, out.Winners())
	require.Len(t, out.Board, 5)
	require.True(t, out.Pots[0].Contested)
	require.Equal(t, before, chips(s))
	require.Equal(t, uint(1), s.Dealer)
}

func TestSessionSidePot(t *testing.T) {
	s := newTable(t, 50, 200, 200)
	before := chips(s)
	require.NoError(t, s.Start())

	require.NoError(t, s.Apply(PokerAction{RoundID: s.RoundID, PlayerID: 1, Type: ActionAllIn, Amount: 50}))
	require.NoError(t, s.Bet(2, 100))
	require.NoError(t, s.Apply(PokerAction{RoundID: s.RoundID, PlayerID: 3, Type: ActionCall}))
	require.Len(t, s.Pots, 2)

	for s.Round != Showdown {
		_, err := s.NextRound()
		require.NoError(t, err)
	}
	out, err := s.FinishRound()
	require.NoError(t, err)
	require.Len(t, out.Pots, 2)
	require.Equal(t, uint(150), out.Pots[0].Pot)
	require.Equal(t, uint(100), out.Pots[1].Pot)
	for _, id := range out.Pots[1].Winners {
		require.Contains(t, []int{2, 3}, id)
	}
	require.Equal(t, before, chips(s))
}

func TestSessionRejectsInvalidActions(t *testing.T) {
	s := newTable(t, 100, 100)
	require.NoError(t, s.Start())

	err := s.Apply(PokerAction{RoundID: "stale", PlayerID: 1, Type: ActionCheck})
	require.Error(t, err)

	err = s.Bet(42, 10)
	require.ErrorIs(t, err, ErrPlayerNotFound)

	err = s.Bet(1, 500)
	require.ErrorIs(t, err, ErrInsufficientFunds)

	_, err = s.FinishRound()
	require.Error(t, err)
}

func TestSessionStandardRuleset(t *testing.T) {
	players := []Player{{Name: "A", Id: 1, BankRoll: 10}, {Name: "B", Id: 2, BankRoll: 10}}
	s := NewSession(players, NewPokerDeck([]byte("standard")), WithRuleset(Standard))
	require.NoError(t, s.Start())
	require.NoError(t, s.Bet(1, 5))
	require.NoError(t, s.Bet(2, 5))
	for s.Round != Showdown {
		_, err := s.NextRound()
		require.NoError(t, err)
	}
	desc, err := s.DescribeHand(0)
	require.NoError(t, err)
	require.NotEmpty(t, desc)

	out, err := s.FinishRound()
	require.NoError(t, err)
	require.Equal(t, uint(10), out.Total())
	require.Equal(t, uint(20), s.Players[0].BankRoll+s.Players[1].BankRoll)
}

func TestSessionLastPlayerWinsWithoutBetting(t *testing.T) {
	s := newTable(t, 100, 100)
	require.NoError(t, s.Start())

	require.NoError(t, s.Apply(PokerAction{RoundID: s.RoundID, PlayerID: 2, Type: ActionCheck}))
	require.NoError(t, s.Bet(1, 10))
	require.NoError(t, s.Fold(1))

	r, err := s.NextRound()
	require.NoError(t, err)
	require.Equal(t, Showdown, r)

	out, err := s.FinishRound()
	require.NoError(t, err)
	require.Equal(t, map[int]uint{2: 10}, out.Payouts)
	require.Equal(t, uint(90), s.Players[0].BankRoll)
	require.Equal(t, uint(110), s.Players[1].BankRoll)
}

func TestSessionFinishRoundNeedsFullBoard(t *testing.T) {
	s := newTable(t, 100, 100)
	_, err := s.FinishRound()
	require.ErrorIs(t, err, ErrIncompleteBoard)
}
