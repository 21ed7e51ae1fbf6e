package main

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	v := newViper()
	var cfgFile string

	root := &cobra.Command{
		Use:           "holdem",
		Short:         "Texas Hold'em showdown engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (yaml, toml or json)")
	root.PersistentFlags().String("log-level", defaultLogLevel, "debug, info, warn or error")
	cobra.CheckErr(v.BindPFlag("log-level", root.PersistentFlags().Lookup("log-level")))

	root.AddCommand(
		newPlayCmd(v, &cfgFile),
		newEvalCmd(),
	)
	return root
}

// newLogger returns a slog logger backed by the pterm logger.
func newLogger(level string, w io.Writer) *slog.Logger {
	lvl := pterm.LogLevelInfo
	switch strings.ToLower(level) {
	case "debug":
		lvl = pterm.LogLevelDebug
	case "warn":
		lvl = pterm.LogLevelWarn
	case "error":
		lvl = pterm.LogLevelError
	}
	handler := pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(lvl).WithWriter(w))
	return slog.New(handler)
}
