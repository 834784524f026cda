package core

import "time"

// RuntimeConfig contains the host settings a session starts with.
type RuntimeConfig struct {
	ScreenW  int           // Screen width in characters
	ScreenH  int           // Screen height in characters
	TickRate int           // Host frames per second (default 60)
	Seed     int64         // RNG seed for the piece queue
	Hold     time.Duration // How long a key press counts as held
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		Hold:     150 * time.Millisecond,
	}
}
