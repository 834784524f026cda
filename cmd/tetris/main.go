// tetris plays a falling-block puzzle game in the terminal.
//
// Usage:
//
//	tetris play              - Play in this terminal
//	tetris serve             - Start SSH server for remote play
//	tetris config            - Print the effective configuration
//	tetris shapes [letters]  - Show every shape in its four orientations
//
// Global flags:
//
//	--config <path>     - Custom config YAML
//	--fps <rate>        - Set frame rate (default: 60)
//	--seed <value>      - Set RNG seed for a reproducible piece sequence
//	--log-file <path>   - Append logs to this file
//	--log-level <level> - debug, info, warn or error
package main

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/logging"
)

var (
	// Global flags
	flagConfig   string
	flagFPS      int
	flagSeed     int64
	flagLogFile  string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fail(err)
	}
}

// fail prints err in red and exits with status 1.
func fail(err error) {
	color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - the falling-block puzzle in your terminal",
	Long: `Tetris drops one of seven pieces at a time onto a 10x20 board.
Steer and rotate it; full rows vanish; the game ends when a new
piece has no room to appear.

Available commands:
  play     - Play in this terminal
  serve    - Start SSH server for remote play
  config   - Print the effective configuration
  shapes   - Show the seven shapes and their rotations

Examples:
  tetris play
  tetris play --seed 42
  tetris serve --ssh :2222
  tetris config --config ./my-tetris.yaml
  tetris shapes T I`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Frame rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Append logs to this file (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(shapesCmd)
}

// loadConfig reads the configuration and applies the logging flags.
func loadConfig() (config.Config, config.Source, error) {
	cfg, src, err := config.LoadWithSource(flagConfig)
	if err != nil {
		return cfg, src, err
	}
	if flagLogFile != "" {
		cfg.Log.File = flagLogFile
	}
	if flagLogLevel != "" {
		cfg.Log.Level = flagLogLevel
	}
	return cfg, src, cfg.Validate()
}

// newLogger builds the logger for cfg, writing to fallback when no log file
// is configured.
func newLogger(cfg config.Config, fallback io.Writer) (*log.Logger, io.Closer, error) {
	return logging.New(cfg.Log, fallback)
}
