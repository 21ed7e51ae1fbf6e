package ledger

import "github.com/luca-patrignani/holdem-showdown/domain/poker"

// NewRoundRecord builds the ledger entry of a finished hand. The category is
// the one of the main pot.
func NewRoundRecord(out poker.Outcome, deckCommitment string) RoundRecord {
	board := make([]string, len(out.Board))
	for i, c := range out.Board {
		board[i] = c.Short()
	}
	category := poker.NoCategory
	if len(out.Pots) > 0 {
		category = out.Pots[0].Category
	}
	payouts := make(map[int]uint, len(out.Payouts))
	for id, amount := range out.Payouts {
		payouts[id] = amount
	}
	return RoundRecord{
		RoundID:        out.RoundID,
		Board:          board,
		Winners:        out.Winners(),
		Category:       category.String(),
		Pot:            out.Total(),
		Payouts:        payouts,
		DeckCommitment: deckCommitment,
	}
}
