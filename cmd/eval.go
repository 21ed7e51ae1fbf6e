package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/luca-patrignani/holdem-showdown/domain/poker"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval CARD...",
		Short: "Classify 5 cards, or find the best hand of 2 pocket cards and 5 board cards",
		Example: `  holdem eval As Ks Qs Js Ts
  holdem eval Kd 3c Kh 7c 4d 9s 2h`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 5 && len(args) != 7 {
				return fmt.Errorf("expected 5 or 7 cards, got %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cards, err := poker.ParseCards(args...)
			if err != nil {
				return err
			}
			return evaluate(cmd.OutOrStdout(), cards)
		},
	}
}

func evaluate(out io.Writer, cards []poker.Card) error {
	seen := make(map[poker.Card]bool, len(cards))
	for _, c := range cards {
		if seen[c] {
			return fmt.Errorf("card %s appears twice", c.Short())
		}
		seen[c] = true
	}

	if len(cards) == 5 {
		var hand [5]poker.Card
		copy(hand[:], cards)
		_, err := fmt.Fprintf(out, "Category: %s\nCards: %s\n", poker.Classify(hand), shortCards(hand[:]))
		return err
	}

	pocket := [2]poker.Card{cards[0], cards[1]}
	var board [5]poker.Card
	copy(board[:], cards[2:])
	best := poker.BestHand(pocket, board)
	desc, err := poker.Describe(pocket, board)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "Category: %s\nCards: %s\nStandard: %s\n", best.Category, shortCards(best.Cards[:]), desc)
	return err
}

func shortCards(cards []poker.Card) string {
	s := make([]string, len(cards))
	for i, c := range cards {
		s[i] = c.Short()
	}
	return strings.Join(s, " ")
}
