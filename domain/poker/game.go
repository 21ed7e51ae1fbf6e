package poker

import (
	"fmt"
)

// recalculatePots recomputes the pot structure based on current player bets. It creates a main
// pot for the smallest contribution and side pots for the chips above it, determining eligibility
// based on non-folded players. Handles all-in scenarios where players contribute different amounts.
func (s *Session) recalculatePots() {
	s.Pots = nil

	// copy bets
	bets := make([]uint, len(s.Players))
	for i, p := range s.Players {
		bets[i] = p.Bet
	}

	// chips of folded players below the first pot anyone can still win
	carry := uint(0)
	for {
		// players with remaining bet
		contributors := []int{}
		for i, b := range bets {
			if b > 0 {
				contributors = append(contributors, i)
			}
		}
		if len(contributors) == 0 {
			break
		}

		// min bet among contributors
		minBet := bets[contributors[0]]
		for _, idx := range contributors {
			if bets[idx] < minBet {
				minBet = bets[idx]
			}
		}

		potAmount := uint(0)
		for _, idx := range contributors {
			potAmount += minBet
			bets[idx] -= minBet
		}

		eligible := []int{}
		for _, idx := range contributors {
			if !s.Players[idx].HasFolded {
				eligible = append(eligible, idx)
			}
		}

		// chips of a layer nobody can win any more (every contributor folded)
		// belong to the layer below, or to the next one when there is none.
		if len(eligible) == 0 {
			if len(s.Pots) > 0 {
				s.Pots[len(s.Pots)-1].Amount += potAmount
			} else {
				carry += potAmount
			}
			continue
		}
		s.Pots = append(s.Pots, Pot{
			Amount:   potAmount + carry,
			Eligible: eligible,
		})
		carry = 0
	}
	if carry > 0 {
		s.Pots = append(s.Pots, Pot{
			Amount:   carry,
			Eligible: s.activePlayers(),
		})
	}

	// a single player left in the hand wins every chip, bet or not
	if active := s.activePlayers(); len(active) == 1 && len(s.Pots) > 0 {
		s.Pots = []Pot{{
			Amount:   s.totalPot(),
			Eligible: active,
		}}
		return
	}

	if onePlayerRemained(s.Pots) {
		totalPot := uint(0)
		for _, p := range s.Pots {
			totalPot += p.Amount
		}
		s.Pots = []Pot{{
			Amount:   totalPot,
			Eligible: []int{s.Pots[0].Eligible[0]},
		}}
	}
}

// onePlayerRemained checks if all pots have exactly one and the same eligible player, in which
// case the pots are consolidated into a single pot for that player.
func onePlayerRemained(lists []Pot) bool {
	if len(lists) == 0 {
		return false
	}
	for _, pot := range lists {
		if len(pot.Eligible) != 1 || pot.Eligible[0] != lists[0].Eligible[0] {
			return false
		}
	}
	return true
}

// totalPot returns the chips in every pot of the hand.
func (s *Session) totalPot() uint {
	total := uint(0)
	for _, p := range s.Pots {
		total += p.Amount
	}
	return total
}

// applyAction applies a poker action to the session state. Supports fold, bet, raise, call,
// all-in and check actions. Returns an error if the action type is unknown.
func applyAction(a ActionType, amount uint, session *Session, idx int) error {
	p := &session.Players[idx]
	switch a {
	case ActionFold:
		p.HasFolded = true
	case ActionBet:
		p.Bet += amount
		p.BankRoll -= amount
		if p.Bet > session.HighestBet {
			session.HighestBet = p.Bet
		}
	case ActionRaise:
		p.Bet += amount
		p.BankRoll -= amount
		session.HighestBet = p.Bet
	case ActionCall:
		diff := session.HighestBet - p.Bet
		p.Bet += diff
		p.BankRoll -= diff
	case ActionAllIn:
		p.Bet += p.BankRoll
		p.BankRoll = 0
		if p.Bet >= session.HighestBet {
			session.HighestBet = p.Bet
		}
	case ActionCheck:
	default:
		return fmt.Errorf("%q: %w", a, ErrUnknownAction)
	}
	session.recalculatePots()
	return nil
}
