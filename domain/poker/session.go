package poker

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"
)

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithLogger sets the logger used to trace the hands played in the session.
func WithLogger(l *slog.Logger) SessionOption {
	return func(s *Session) {
		s.logger = l
	}
}

// WithRuleset selects how pots are resolved at showdown.
func WithRuleset(r Ruleset) SessionOption {
	return func(s *Session) {
		s.Ruleset = r
	}
}

// Outcome is what a finished hand paid out: one ShowdownResult per pot, main
// pot first.
type Outcome struct {
	RoundID string
	Board   []Card
	Pots    []ShowdownResult
	Payouts map[int]uint // Player ID -> chips won
}

// Winners returns the IDs of every player that won chips, main pot winners first.
func (o Outcome) Winners() []int {
	d := newDrawSet()
	for _, p := range o.Pots {
		for _, id := range p.Winners {
			d.add(id)
		}
	}
	return d.members()
}

// Total returns the chips paid out by the hand.
func (o Outcome) Total() uint {
	total := uint(0)
	for _, p := range o.Pots {
		total += p.Pot
	}
	return total
}

// NewSession seats the players at a table using the given deck.
func NewSession(players []Player, d PokerDeck, opts ...SessionOption) *Session {
	s := &Session{
		Players: players,
		Deck:    d,
		Round:   Showdown,
		Ruleset: Classic,
		logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start begins a new hand: the table is cleared, the deck shuffled and every
// player receives two pocket cards.
func (s *Session) Start() error {
	if len(s.Players) < 2 {
		return fmt.Errorf("at least 2 players are required, got %d", len(s.Players))
	}
	s.RoundID = uuid.NewString()
	s.Round = PreFlop
	s.Board = nil
	s.Pots = nil
	s.HighestBet = 0
	for i := range s.Players {
		s.Players[i].ResetHand()
		s.Players[i].Bet = 0
		s.Players[i].HasFolded = false
	}

	s.Deck.Shuffle()
	n := len(s.Players)
	for k := 1; k <= n; k++ {
		idx := (int(s.Dealer) + k) % n
		cards, err := s.Deck.Deal(2)
		if err != nil {
			return err
		}
		if err := s.Players[idx].AddToHand(cards...); err != nil {
			return err
		}
	}
	s.logger.Debug("hand started",
		"round_id", s.RoundID,
		"dealer", s.Players[s.Dealer].Name,
		"deck", s.Deck.Commitment(),
	)
	return nil
}

// Apply validates and applies a betting action of the current hand.
func (s *Session) Apply(pa PokerAction) error {
	if pa.RoundID != s.RoundID {
		return fmt.Errorf("wrong round: expected %s, got %s", s.RoundID, pa.RoundID)
	}
	if s.Round == Showdown {
		return fmt.Errorf("hand %s is at showdown", s.RoundID)
	}
	idx := s.FindPlayerIndex(pa.PlayerID)
	if idx == -1 {
		return fmt.Errorf("player %d: %w", pa.PlayerID, ErrPlayerNotFound)
	}
	if err := CheckPokerLogic(pa.Type, pa.Amount, s, idx); err != nil {
		return err
	}
	if err := applyAction(pa.Type, pa.Amount, s, idx); err != nil {
		return err
	}
	s.logger.Debug("action applied",
		"player", s.Players[idx].Name,
		"action", string(pa.Type),
		"amount", pa.Amount,
		"pot", s.totalPot(),
	)
	return nil
}

// Bet commits amount chips of the player to the pot.
func (s *Session) Bet(playerID int, amount uint) error {
	return s.Apply(PokerAction{RoundID: s.RoundID, PlayerID: playerID, Type: ActionBet, Amount: amount})
}

// Fold removes the player from the current hand.
func (s *Session) Fold(playerID int) error {
	return s.Apply(PokerAction{RoundID: s.RoundID, PlayerID: playerID, Type: ActionFold})
}

// NextRound deals the community cards of the next street. When a single
// player is left the hand skips straight to the showdown.
func (s *Session) NextRound() (Round, error) {
	if s.Round == Showdown {
		return s.Round, fmt.Errorf("hand %s is already at showdown", s.RoundID)
	}
	if len(s.activePlayers()) <= 1 {
		s.Round = Showdown
		return s.Round, nil
	}

	next := nextRound(s.Round)
	if n := cardsPerRound[next]; n > 0 {
		cards, err := s.Deck.Deal(n)
		if err != nil {
			return s.Round, err
		}
		s.Board = append(s.Board, cards...)
	}
	s.Round = next
	s.logger.Debug("street dealt", "round", string(next), "board", fmt.Sprint(s.Board))
	return s.Round, nil
}

// FinishRound resolves every pot of the hand at showdown and credits the
// winners. The remainder of a split pot goes to the first winner in seat order.
func (s *Session) FinishRound() (Outcome, error) {
	if s.Round != Showdown {
		return Outcome{}, fmt.Errorf("cannot finish round %s before showdown", s.Round)
	}
	resolve, err := s.Ruleset.Resolver()
	if err != nil {
		return Outcome{}, err
	}

	s.recalculatePots()
	var board [5]Card
	if len(s.activePlayers()) > 1 {
		board, err = s.fullBoard()
		if err != nil {
			return Outcome{}, err
		}
	}

	out := Outcome{
		RoundID: s.RoundID,
		Board:   append([]Card(nil), s.Board...),
		Payouts: make(map[int]uint),
	}
	for i, pot := range s.Pots {
		players := make([]Player, 0, len(pot.Eligible))
		for _, idx := range pot.Eligible {
			players = append(players, s.Players[idx])
		}
		res, err := resolve(players, board, pot.Amount)
		if err != nil {
			return Outcome{}, fmt.Errorf("pot %d: %w", i, err)
		}
		for id, amount := range res.Payouts() {
			s.Players[s.FindPlayerIndex(id)].AddCash(amount)
			out.Payouts[id] += amount
		}
		out.Pots = append(out.Pots, res)
		s.logger.Info("pot awarded",
			"round_id", s.RoundID,
			"pot", i,
			"amount", pot.Amount,
			"winners", s.names(res.Winners),
			"hand", res.Category.String(),
		)
	}

	for i := range s.Players {
		s.Players[i].Bet = 0
	}
	s.HighestBet = 0
	s.Pots = nil
	s.setNextMatchDealer()
	return out, nil
}

func (s *Session) fullBoard() ([5]Card, error) {
	var board [5]Card
	if len(s.Board) != 5 {
		return board, fmt.Errorf("got %d cards: %w", len(s.Board), ErrIncompleteBoard)
	}
	copy(board[:], s.Board)
	return board, nil
}

func (s *Session) names(ids []int) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if idx := s.FindPlayerIndex(id); idx != -1 {
			out = append(out, s.Players[idx].Name)
		}
	}
	return out
}
