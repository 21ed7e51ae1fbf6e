package poker

import "fmt"

// CheckPokerLogic verifies that the player at index idx can perform action a
// with the given amount. It does not enforce turn order.
func CheckPokerLogic(a ActionType, amount uint, session *Session, idx int) error {
	if idx < 0 || idx >= len(session.Players) {
		return fmt.Errorf("index %d: %w", idx, ErrPlayerNotFound)
	}
	p := session.Players[idx]
	if p.HasFolded && a != ActionFold {
		return fmt.Errorf("player %s has already folded", p.Name)
	}
	switch a {
	case ActionFold:
		return nil
	case ActionBet:
		if p.BankRoll < amount {
			return fmt.Errorf("player %s cannot bet %d: %w", p.Name, amount, ErrInsufficientFunds)
		}
	case ActionRaise:
		if p.Bet+amount <= session.HighestBet {
			return fmt.Errorf("raise must exceed highest bet %d", session.HighestBet)
		}
		if p.BankRoll < amount {
			return fmt.Errorf("player %s cannot raise %d: %w", p.Name, amount, ErrInsufficientFunds)
		}
	case ActionCall:
		diff := session.HighestBet - p.Bet
		if diff > p.BankRoll {
			return fmt.Errorf("player %s cannot call %d: %w", p.Name, diff, ErrInsufficientFunds)
		}
	case ActionAllIn:
		if p.BankRoll != amount {
			return fmt.Errorf("allin amount must match player's bankroll %d", p.BankRoll)
		}
	case ActionCheck:
		if p.Bet != session.HighestBet {
			return fmt.Errorf("cannot check, must call, raise or fold")
		}
	default:
		return fmt.Errorf("%q: %w", a, ErrUnknownAction)
	}
	return nil
}
