// tetris-window plays tetris in a desktop window.
//
// Usage:
//
//	tetris-window [--config <path>] [--seed <value>] [--log-level <level>]
//
// Arrow keys or WASD move and rotate, R restarts after game over and
// Esc or Q closes the window. Logs go to stderr.
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/logging"
	"github.com/vovakirdan/tui-tetris/internal/platform/window"
)

var (
	flagConfig   string
	flagSeed     int64
	flagLogLevel string
)

var rootCmd = &cobra.Command{
	Use:           "tetris-window",
	Short:         "Play tetris in a 480x640 window",
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	logger, closer, err := logging.New(cfg.Log, os.Stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	g, err := window.New(window.Options{
		Config: cfg,
		Seed:   flagSeed,
		Logger: logger,
	})
	if err != nil {
		return err
	}
	return window.Run(g)
}
