package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/luca-patrignani/holdem-showdown/domain/poker"
)

const (
	defaultLogLevel = "info"
	// 23 pockets and a board use 51 of the 52 cards.
	maxPlayers = 23
)

// Config holds the settings of a play session.
type Config struct {
	Players  []string `mapstructure:"players"`
	Bankroll uint     `mapstructure:"bankroll"`
	Ante     uint     `mapstructure:"ante"`
	Rounds   int      `mapstructure:"rounds"`
	Seed     string   `mapstructure:"seed"`
	Ruleset  string   `mapstructure:"ruleset"`
	LogLevel string   `mapstructure:"log-level"`
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("players", []string{"Alice", "Bob", "Carol", "Dave"})
	v.SetDefault("bankroll", 1000)
	v.SetDefault("ante", 10)
	v.SetDefault("rounds", 5)
	v.SetDefault("seed", "")
	v.SetDefault("ruleset", string(poker.Classic))
	v.SetDefault("log-level", defaultLogLevel)

	v.SetEnvPrefix("HOLDEM")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

// loadConfig reads the optional config file and decodes every source
// (flags, env, file, defaults) into a validated Config.
func loadConfig(v *viper.Viper, path string) (Config, error) {
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
	}
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that a table can be dealt with the configuration.
func (c Config) Validate() error {
	var errs []error
	if len(c.Players) < 2 {
		errs = append(errs, fmt.Errorf("at least 2 players are required, got %d", len(c.Players)))
	}
	if len(c.Players) > maxPlayers {
		errs = append(errs, fmt.Errorf("at most %d players fit a deck, got %d", maxPlayers, len(c.Players)))
	}
	if c.Ante == 0 {
		errs = append(errs, errors.New("ante must be positive"))
	}
	if c.Rounds < 0 {
		errs = append(errs, fmt.Errorf("rounds must not be negative, got %d", c.Rounds))
	}
	if _, err := poker.Ruleset(c.Ruleset).Resolver(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
