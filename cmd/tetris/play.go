package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in this terminal",
	Long: `Start a game in the current terminal.

Controls:
  Up/W/Space  - Rotate
  Left/A      - Move left
  Right/D     - Move right
  R           - Restart (after game over)
  Ctrl+S      - Save a text screenshot to ~/.tetris/screenshots
  ?           - Show all keys
  Q/Ctrl+C    - Quit

Terminals report key presses but not releases, so a press counts as
held for input.hold_ms (see 'tetris config').

Examples:
  tetris play
  tetris play --seed 42 --fps 30
  tetris play --log-file ~/.tetris/tetris.log --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, _, err := loadConfig()
	if err != nil {
		return err
	}

	// stdout belongs to the TUI; only a log file gets output.
	logger, closer, err := newLogger(cfg, io.Discard)
	if err != nil {
		return err
	}
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	runtime := core.DefaultConfig()
	runtime.ScreenW = width
	runtime.ScreenH = height
	runtime.TickRate = flagFPS
	runtime.Seed = flagSeed
	runtime.Hold = cfg.Hold()

	return tui.Run(tui.Options{
		Config:  cfg,
		Runtime: runtime,
		Logger:  logger,
	})
}
