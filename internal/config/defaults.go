package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultTetrisYAML))
	copy(out, defaultTetrisYAML)
	return out
}
