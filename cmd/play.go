package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/luca-patrignani/holdem-showdown/domain/poker"
	"github.com/luca-patrignani/holdem-showdown/ledger"
)

func newPlayCmd(v *viper.Viper, cfgFile *string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Deal hands between the configured players and resolve every showdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v, *cfgFile)
			if err != nil {
				return err
			}
			logger := newLogger(cfg.LogLevel, cmd.ErrOrStderr())
			_, err = play(cmd.OutOrStdout(), cfg, logger)
			return err
		},
	}

	f := cmd.Flags()
	f.StringSlice("players", nil, "player names")
	f.Uint("bankroll", 1000, "starting chips of every player")
	f.Uint("ante", 10, "chips every player puts in before the cards are dealt")
	f.Int("rounds", 5, "number of hands to play")
	f.String("seed", "", "shuffle seed, empty for a random shuffle")
	f.String("ruleset", string(poker.Classic), "showdown rules: classic or standard")
	cobra.CheckErr(v.BindPFlags(f))
	return cmd
}

// play runs the configured number of hands and returns the round history.
// It stops early when fewer than two players can still pay the ante.
func play(out io.Writer, cfg Config, logger *slog.Logger) (*ledger.Blockchain, error) {
	players := make([]poker.Player, len(cfg.Players))
	for i, name := range cfg.Players {
		players[i] = poker.Player{
			Name:     name,
			Id:       i,
			BankRoll: cfg.Bankroll,
		}
	}
	var seed []byte
	if cfg.Seed != "" {
		seed = []byte(cfg.Seed)
	}
	ruleset := poker.Ruleset(cfg.Ruleset)
	session := poker.NewSession(players, poker.NewPokerDeck(seed),
		poker.WithLogger(logger),
		poker.WithRuleset(ruleset),
	)
	history := ledger.NewBlockchain()
	if err := renderBanner(out); err != nil {
		return history, err
	}

	for r := 0; r < cfg.Rounds; r++ {
		if funded(session.Players) < 2 {
			logger.Info("not enough players with chips left", "round", r)
			break
		}
		outcome, commitment, err := playHand(session, cfg.Ante)
		if err != nil {
			return history, fmt.Errorf("hand %d: %w", r+1, err)
		}
		if err := renderHand(out, session, outcome); err != nil {
			return history, err
		}
		if _, err := history.Append(ledger.NewRoundRecord(outcome, commitment), string(ruleset)); err != nil {
			return history, err
		}
	}

	if err := history.Verify(); err != nil {
		return history, fmt.Errorf("round history: %w", err)
	}
	if err := renderHistory(out, session, history); err != nil {
		return history, err
	}
	return history, nil
}

// playHand deals a whole hand where every funded player antes and then checks
// down to the showdown.
func playHand(s *poker.Session, ante uint) (poker.Outcome, string, error) {
	if err := s.Start(); err != nil {
		return poker.Outcome{}, "", err
	}
	commitment := s.Deck.Commitment()

	for _, p := range s.Players {
		var err error
		switch {
		case p.BankRoll == 0:
			err = s.Fold(p.Id)
		case p.BankRoll <= ante:
			err = s.Apply(poker.PokerAction{RoundID: s.RoundID, PlayerID: p.Id, Type: poker.ActionAllIn, Amount: p.BankRoll})
		default:
			err = s.Bet(p.Id, ante)
		}
		if err != nil {
			return poker.Outcome{}, "", err
		}
	}

	for s.Round != poker.Showdown {
		if _, err := s.NextRound(); err != nil {
			return poker.Outcome{}, "", err
		}
	}
	outcome, err := s.FinishRound()
	return outcome, commitment, err
}

func funded(players []poker.Player) int {
	n := 0
	for _, p := range players {
		if p.BankRoll > 0 {
			n++
		}
	}
	return n
}
