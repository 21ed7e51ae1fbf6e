package poker

type Round string

const (
	PreFlop  Round = "preflop"
	Flop     Round = "flop"
	Turn     Round = "turn"
	River    Round = "river"
	Showdown Round = "showdown"
)

// cardsPerRound is how many community cards are dealt when entering a round.
var cardsPerRound = map[Round]int{
	Flop:  3,
	Turn:  1,
	River: 1,
}

// Returns the next round name. After the showdown a new hand starts at PreFlop.
func nextRound(current Round) Round {
	rounds := []Round{PreFlop, Flop, Turn, River, Showdown}

	for i, r := range rounds {
		if r == current {
			if i < len(rounds)-1 {
				return rounds[i+1]
			}
			return rounds[0]
		}
	}
	// Not found, default to first
	return PreFlop
}

// activePlayers returns the indexes of the players that have not folded.
func (s *Session) activePlayers() []int {
	var idx []int
	for i, p := range s.Players {
		if !p.HasFolded {
			idx = append(idx, i)
		}
	}
	return idx
}

// FindPlayerIndex returns the session index of the player with the given ID, or -1 if not found.
func (s *Session) FindPlayerIndex(playerID int) int {
	for i, p := range s.Players {
		if p.Id == playerID {
			return i
		}
	}
	return -1
}

func (s *Session) setNextMatchDealer() {
	l := uint(len(s.Players))
	if l == 0 {
		return
	}
	s.Dealer = (s.Dealer + 1) % l
}
