// Package tetris implements the rules engine of a falling-block puzzle game:
// piece shapes and rotation, a fixed 20x10 playfield, collision detection,
// locking, line clearing, a random piece supply and the timed controller
// that ties them together.
//
// The package has no knowledge of terminals, windows or keyboards. Hosts feed
// it held-button snapshots and timestamps, and receive draw commands through
// the Renderer interface.
package tetris

import (
	"errors"
	"fmt"
	"strings"
)

// Board dimensions.
const (
	Cols = 10
	Rows = 20
)

// ErrInvalidShape is returned when a piece is built from Empty or an unknown shape.
var ErrInvalidShape = errors.New("tetris: invalid shape")

// Shape identifies a tetromino. Empty marks an unoccupied board cell and is
// never carried by a piece.
type Shape uint8

const (
	Empty Shape = iota
	O
	L
	J
	S
	Z
	T
	I
)

// Shapes lists every shape a piece can take, in enumeration order.
var Shapes = [...]Shape{O, L, J, S, Z, T, I}

// Valid reports whether s can be assigned to a piece.
func (s Shape) Valid() bool {
	return s >= O && s <= I
}

// String returns the single-letter name of the shape.
func (s Shape) String() string {
	switch s {
	case Empty:
		return "."
	case O:
		return "O"
	case L:
		return "L"
	case J:
		return "J"
	case S:
		return "S"
	case Z:
		return "Z"
	case T:
		return "T"
	case I:
		return "I"
	default:
		return fmt.Sprintf("Shape(%d)", uint8(s))
	}
}

// ParseShape converts a single-letter name back into a Shape. Case is
// ignored.
func ParseShape(name string) (Shape, error) {
	want := strings.ToUpper(strings.TrimSpace(name))
	for _, s := range Shapes {
		if s.String() == want {
			return s, nil
		}
	}
	return Empty, fmt.Errorf("%w: %q", ErrInvalidShape, name)
}

// span is the side of the active square region of the mask.
func (s Shape) span() int {
	if s == I {
		return 4
	}
	return 3
}

// offset is subtracted from anchor+mask index to get a board coordinate.
// The asymmetry between I and the rest keeps spawn alignment.
func (s Shape) offset() int {
	if s == I {
		return 3
	}
	return 2
}

// Mask is a 4x4 occupancy grid indexed [row][col].
type Mask [4][4]bool

// masks holds the spawn orientation of every shape. Read-only after init.
var masks = map[Shape]Mask{
	O: {
		{false, true, true, false},
		{false, true, true, false},
	},
	L: {
		{false, true, false, false},
		{false, true, false, false},
		{false, true, true, false},
	},
	J: {
		{false, true, false, false},
		{false, true, false, false},
		{true, true, false, false},
	},
	T: {
		{false, true, false, false},
		{true, true, true, false},
	},
	S: {
		{false, true, true, false},
		{true, true, false, false},
	},
	Z: {
		{true, true, false, false},
		{false, true, true, false},
	},
	I: {
		{},
		{true, true, true, true},
	},
}

// SpawnMask returns the canonical orientation of s.
func SpawnMask(s Shape) (Mask, error) {
	m, ok := masks[s]
	if !ok {
		return Mask{}, fmt.Errorf("%w: %s", ErrInvalidShape, s)
	}
	return m, nil
}

// String renders the mask as four lines of '#' and '.'.
func (m Mask) String() string {
	b := make([]byte, 0, 20)
	for i, row := range m {
		if i > 0 {
			b = append(b, '\n')
		}
		for _, on := range row {
			if on {
				b = append(b, '#')
			} else {
				b = append(b, '.')
			}
		}
	}
	return string(b)
}
