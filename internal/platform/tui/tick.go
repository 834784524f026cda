// Package tui provides the Bubble Tea host for the tetris engine.
// It handles the terminal UI loop, key mapping, drawing and the SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// TickMsg is sent to trigger one engine frame.
type TickMsg time.Time

// Frame rate bounds. Zero or negative rates fall back to defaultTickRate.
const (
	defaultTickRate = 60
	maxTickRate     = 240
)

// tickInterval returns the delay between frames at tickRate frames per second.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = defaultTickRate
	}
	return time.Second / time.Duration(core.Clamp(tickRate, 1, maxTickRate))
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
