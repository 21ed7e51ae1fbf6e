package poker

import (
	"fmt"

	"github.com/paulhankin/poker"
)

// ResolveStandard resolves a pot with a full 7-card poker evaluator instead of
// the classic tables: aces play both high and low and ties are broken on every
// kicker. The result has the same shape as Resolve; Category and Hands are
// still filled with the classic evaluation of each player for reporting.
func ResolveStandard(players []Player, board [5]Card, pot uint) (ShowdownResult, error) {
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
	var bestScore int16
	var draw *drawSet
	for i, p := range players {
		finalHand, err := makeFinalHand(p.Hand, board)
		if err != nil {
			return ShowdownResult{}, err
		}
		score := poker.Eval7(&finalHand)

		h := BestHand(p.Hand, board)
		h.Owner = p.Id
		res.Hands[p.Id] = h

		switch {
		case i == 0 || score > bestScore:
			bestScore = score
			draw = newDrawSet(p.Id)
			res.Category = h.Category
		case score == bestScore:
			draw.add(p.Id)
		}
	}

	res.Winners = draw.members()
	res.PotShare, res.Remainder = splitPot(pot, len(res.Winners))
	return res, nil
}

// Resolver returns the pot resolution function of the ruleset.
func (r Ruleset) Resolver() (func([]Player, [5]Card, uint) (ShowdownResult, error), error) {
	switch r {
	case Classic, "":
		return Resolve, nil
	case Standard:
		return ResolveStandard, nil
	default:
		return nil, fmt.Errorf("unknown ruleset %q", r)
	}
}

// Describe returns a textual description of the best standard poker hand made
// from the pocket cards and the board, e.g. "pair of kings".
func Describe(pocket [2]Card, board [5]Card) (string, error) {
	c, err := makeFinalHand(pocket, board)
	if err != nil {
		return "", err
	}
	return poker.Describe(c[:])
}

// DescribeHand describes the hand of the player at index player using the
// current board.
func (s Session) DescribeHand(player int) (string, error) {
	board, err := s.fullBoard()
	if err != nil {
		return "", err
	}
	return Describe(s.Players[player].Hand, board)
}

func makeFinalHand(pocket [2]Card, board [5]Card) ([7]poker.Card, error) {
	var finalHand [7]poker.Card
	for i := 0; i < 5; i++ {
		c := board[i]
		card, err := poker.MakeCard(poker.Suit(c.suit), poker.Rank(c.rank))
		if err != nil {
			return [7]poker.Card{}, fmt.Errorf("invalid board card at idx %d: %w", i, err)
		}
		finalHand[i] = card
	}

	for i, c := range pocket {
		card, err := poker.MakeCard(poker.Suit(c.suit), poker.Rank(c.rank))
		if err != nil {
			return [7]poker.Card{}, fmt.Errorf("invalid player card: %w", err)
		}
		finalHand[5+i] = card
	}
	return finalHand, nil
}
