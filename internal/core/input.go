package core

import "time"

// Action represents a semantic player action, abstracted from physical key presses.
type Action int

const (
	ActionNone    Action = iota
	ActionRotate         // W, Up arrow, Space - rotate the piece
	ActionLeft           // A, Left arrow - shift left
	ActionRight          // D, Right arrow - shift right
	ActionRestart        // R key - start over after game over
	ActionHelp           // ? - toggle the full help footer
	ActionQuit           // Q, Ctrl+C - exit game/session
)

// actionCount bounds the Action enumeration.
const actionCount = int(ActionQuit) + 1

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionRotate:
		return "Rotate"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRestart:
		return "Restart"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// HeldKeys emulates held buttons for terminals, which report key presses but
// never releases. A press counts as held until hold has passed without
// another press of the same action; key auto-repeat keeps refreshing it.
type HeldKeys struct {
	hold    time.Duration
	pressed [actionCount]time.Time
}

// NewHeldKeys creates a tracker with the given hold window.
func NewHeldKeys(hold time.Duration) *HeldKeys {
	return &HeldKeys{hold: hold}
}

// Press records a press of a at now.
func (h *HeldKeys) Press(a Action, now time.Time) {
	if a <= ActionNone || int(a) >= actionCount {
		return
	}
	h.pressed[a] = now
}

// Held reports whether a was pressed within the hold window before now.
func (h *HeldKeys) Held(a Action, now time.Time) bool {
	if a <= ActionNone || int(a) >= actionCount {
		return false
	}
	last := h.pressed[a]
	if last.IsZero() {
		return false
	}
	return now.Sub(last) < h.hold
}

// Release forgets any press of a.
func (h *HeldKeys) Release(a Action) {
	if a <= ActionNone || int(a) >= actionCount {
		return
	}
	h.pressed[a] = time.Time{}
}

// Reset releases every action.
func (h *HeldKeys) Reset() {
	h.pressed = [actionCount]time.Time{}
}
