package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Options configures a game Model.
type Options struct {
	Config  config.Config
	Runtime core.RuntimeConfig
	Logger  *log.Logger  // Host and engine events; nil discards them
	Clock   tetris.Clock // nil means tetris.SystemClock
	Title   string       // Shown in the status panel
}

// Model is the Bubble Tea model for one tetris session.
type Model struct {
	game     *tetris.Game
	view     *BoardView
	screen   *core.Screen
	held     *core.HeldKeys
	keys     KeyMap
	help     help.Model
	clock    tetris.Clock
	logger   *log.Logger
	config   core.RuntimeConfig
	timing   tetris.Timing
	fixed    bool // Seed came from the caller; reuse it on restart
	quitting bool
}

// NewModel creates a new Bubble Tea model and starts a game.
func NewModel(opts Options) (Model, error) {
	colors, err := opts.Config.ShapeColors()
	if err != nil {
		return Model{}, err
	}

	cfg := opts.Runtime
	fixed := cfg.Seed != 0
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.Hold <= 0 {
		cfg.Hold = opts.Config.Hold()
	}

	clock := opts.Clock
	if clock == nil {
		clock = tetris.SystemClock{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	view := NewBoardView(opts.Config.Display.Glyph, colors, opts.Config.Display.ShowNext)
	view.SetTitle(opts.Title)

	h := help.New()
	h.ShowAll = false

	m := Model{
		view:   view,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		held:   core.NewHeldKeys(cfg.Hold),
		keys:   DefaultKeyMap(),
		help:   h,
		clock:  clock,
		logger: logger,
		config: cfg,
		timing: opts.Config.EngineTiming(),
		fixed:  fixed,
	}
	m.game = m.newGame()
	return m, nil
}

func (m Model) newGame() *tetris.Game {
	m.logger.Info("game started", "seed", m.config.Seed)
	return tetris.NewGame(tetris.Options{
		Seed:   m.config.Seed,
		Timing: m.timing,
		Logger: m.logger,
	}, m.clock.Now())
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Screenshot) {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "error", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	switch action := m.keys.Action(msg); action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionRestart:
		if m.game.Over() {
			m.restart()
		}
	case core.ActionLeft:
		m.held.Release(core.ActionRight)
		m.held.Press(action, m.clock.Now())
	case core.ActionRight:
		m.held.Release(core.ActionLeft)
		m.held.Press(action, m.clock.Now())
	case core.ActionRotate:
		m.held.Press(action, m.clock.Now())
	}
	return m, nil
}

func (m *Model) restart() {
	if !m.fixed {
		m.config.Seed = time.Now().UnixNano()
	}
	m.held.Reset()
	m.game = m.newGame()
}

// handleTick runs one engine frame with the currently held keys.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if !m.game.Over() {
		now := m.clock.Now()
		in := tetris.Input{
			Rotate: m.held.Held(core.ActionRotate, now),
			Left:   m.held.Held(core.ActionLeft, now),
			Right:  m.held.Held(core.ActionRight, now),
		}
		if m.game.Frame(in, now) {
			snap := m.game.Snapshot()
			m.logger.Info("game over", "seed", snap.Seed, "frames", snap.Frames)
		}
	}
	return m, tickCmd(m.config.TickRate)
}

// Game returns the running game.
func (m Model) Game() *tetris.Game {
	return m.game
}

// IsQuitting returns true if user requested to quit.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// frame draws the board into the screen buffer, leaving footerLines rows
// free at the bottom.
func (m Model) frame(footerLines int) *core.Screen {
	m.screen.Resize(m.config.ScreenW, core.Max(m.config.ScreenH-footerLines, 0))
	m.screen.Clear()
	m.view.Draw(m.screen, m.game)
	return m.screen
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	footer := m.help.View(m.keys)
	screen := m.frame(strings.Count(footer, "\n") + 1)
	return RenderScreen(screen) + "\n" + footer
}

// saveScreenshot writes the plain-text board to ~/.tetris/screenshots.
func (m Model) saveScreenshot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".tetris", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("cannot create screenshot directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("tetris_%d_%s.txt", m.config.Seed, timestamp))
	if err := os.WriteFile(path, []byte(m.frame(0).String()), 0o600); err != nil {
		return "", fmt.Errorf("cannot write screenshot: %w", err)
	}
	return path, nil
}

// Run starts the Bubble Tea program in the current terminal.
func Run(opts Options) error {
	model, err := NewModel(opts)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
