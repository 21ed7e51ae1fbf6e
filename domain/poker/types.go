package poker

import (
	"fmt"
	"log/slog"
)

// Player is a seat at the table. Id is the stable identity used to report
// winners and to recognise the same player in a split pot.
type Player struct {
	Name      string
	Id        int
	Hand      [2]Card
	HasFolded bool
	Bet       uint // chips committed to the current hand
	BankRoll  uint
}

// AddToHand deals pocket cards to the first face-down slots of the hand.
func (p *Player) AddToHand(cards ...Card) error {
	for _, c := range cards {
		switch {
		case p.Hand[0].IsFaceDown():
			p.Hand[0] = c
		case p.Hand[1].IsFaceDown():
			p.Hand[1] = c
		default:
			return fmt.Errorf("player %d already holds two cards", p.Id)
		}
	}
	return nil
}

// ResetHand turns both pocket cards face down.
func (p *Player) ResetHand() {
	p.Hand = [2]Card{}
}

// AddCash credits chips to the player's bankroll.
func (p *Player) AddCash(amount uint) {
	p.BankRoll += amount
}

// PokerAction is a single betting decision of a player.
type PokerAction struct {
	RoundID  string     `json:"round_id"`
	PlayerID int        `json:"player_id"`
	Type     ActionType `json:"type"`
	Amount   uint       `json:"amount"`
}

type ActionType string

const (
	ActionBet   ActionType = "bet"
	ActionCall  ActionType = "call"
	ActionRaise ActionType = "raise"
	ActionAllIn ActionType = "allin"
	ActionFold  ActionType = "fold"
	ActionCheck ActionType = "check"
)

// Ruleset selects how pots are resolved at showdown.
type Ruleset string

const (
	// Classic uses this package's classifier and tie-break tables.
	Classic Ruleset = "classic"
	// Standard ranks the 7 cards with a full poker evaluator (ace high and low).
	Standard Ruleset = "standard"
)

// Session is the state of a table: players, board, deck and pots of the hand
// currently being played.
type Session struct {
	Board      []Card
	Players    []Player
	Deck       PokerDeck
	Pots       []Pot
	HighestBet uint
	Dealer     uint
	Round      Round
	RoundID    string // identifier of the current hand
	Ruleset    Ruleset

	logger *slog.Logger
}

type Pot struct {
	Amount   uint
	Eligible []int // player indexes that can win this pot
}
