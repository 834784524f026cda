package tetris

import (
	"bytes"
	"math/rand"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var t0 = time.Unix(0, 0)

func at(ms int) time.Time {
	return t0.Add(time.Duration(ms) * time.Millisecond)
}

// newController builds a controller whose queue starts with shapes.
func newController(t *testing.T, board *Board, shapes [QueueSize]Shape, opts ...Option) *TimeController {
	t.Helper()
	q := NewPieceQueue(rand.New(rand.NewSource(1)))
	for i, s := range shapes {
		q.pieces[i] = mustPiece(t, s, SpawnAnchor)
	}
	return NewTimeController(board, q, DefaultTiming(), t0, opts...)
}

func activeAnchor(t *testing.T, c *TimeController) Point {
	t.Helper()
	p, ok := c.Active()
	require.True(t, ok)
	return p.Anchor()
}

func TestNewTimeControllerTakesFront(t *testing.T) {
	c := newController(t, NewBoard(), [QueueSize]Shape{L, S, Z})

	p, ok := c.Active()
	require.True(t, ok)
	assert.Equal(t, L, p.Shape())
	assert.Equal(t, SpawnAnchor, p.Anchor())
	assert.Equal(t, StateActive, c.State())

	next := c.queue.Peek()
	assert.Equal(t, S, next[0].Shape())
	assert.Equal(t, Z, next[1].Shape())
}

func TestNewTimeControllerSkipsSpawnCheck(t *testing.T) {
	b := NewBoard()
	for row := 2; row < Rows; row++ {
		fillRow(b, row, Z, 0)
	}
	c := newController(t, b, [QueueSize]Shape{T, O, O})

	// The first piece overlaps locked cells but the game is still running.
	assert.Equal(t, StateActive, c.State())
	_, ok := c.Active()
	require.True(t, ok)

	assert.False(t, c.Step(at(299)))
	assert.Equal(t, StateActive, c.State())

	// Gravity locks it where it stands; the next spawn is blocked.
	assert.True(t, c.Step(at(300)))
	assert.Equal(t, StateGameOver, c.State())
	assert.Equal(t, Z, b.Cell(4, 2), "lock keeps existing cells")
	assert.Equal(t, Empty, b.Cell(0, 2))
}

func TestGravityCooldown(t *testing.T) {
	c := newController(t, NewBoard(), [QueueSize]Shape{T, O, O})

	assert.False(t, c.Step(at(0)))
	assert.False(t, c.Step(at(299)))
	assert.Equal(t, 4, activeAnchor(t, c).Row)

	assert.False(t, c.Step(at(300)))
	assert.Equal(t, 5, activeAnchor(t, c).Row)

	assert.False(t, c.Step(at(599)))
	assert.Equal(t, 5, activeAnchor(t, c).Row)
	assert.False(t, c.Step(at(600)))
	assert.Equal(t, 6, activeAnchor(t, c).Row)
}

func TestMoveCooldownIsShared(t *testing.T) {
	c := newController(t, NewBoard(), [QueueSize]Shape{T, O, O})

	c.Left(at(100))
	assert.Equal(t, 5, activeAnchor(t, c).Col, "move cooldown starts at construction")

	c.Left(at(200))
	assert.Equal(t, 4, activeAnchor(t, c).Col)

	c.Right(at(300))
	assert.Equal(t, 4, activeAnchor(t, c).Col, "right shares the move cooldown with left")

	c.Right(at(400))
	assert.Equal(t, 5, activeAnchor(t, c).Col)
}

func TestCooldownsAreIndependent(t *testing.T) {
	c := newController(t, NewBoard(), [QueueSize]Shape{T, O, O})
	spawn, _ := SpawnMask(T)

	c.Left(at(200))
	c.Spin(at(200))
	c.Step(at(300))

	p, ok := c.Active()
	require.True(t, ok)
	assert.Equal(t, Point{Col: 4, Row: 5}, p.Anchor())
	assert.NotEqual(t, spawn, p.Mask())

	c.Spin(at(399))
	assert.Equal(t, p.Mask(), mustActive(t, c).Mask())
	c.Spin(at(400))
	assert.NotEqual(t, p.Mask(), mustActive(t, c).Mask())
}

func mustActive(t *testing.T, c *TimeController) Piece {
	t.Helper()
	p, ok := c.Active()
	require.True(t, ok)
	return p
}

func TestMoveBlockedByWall(t *testing.T) {
	c := newController(t, NewBoard(), [QueueSize]Shape{T, O, O})

	for i, want := range []int{4, 3, 2, 2} {
		c.Left(at(200 * (i + 1)))
		assert.Equal(t, want, activeAnchor(t, c).Col, "left #%d", i+1)
	}

	// The blocked attempt at 800ms still consumed the cooldown.
	c.Right(at(900))
	assert.Equal(t, 2, activeAnchor(t, c).Col)
	c.Right(at(1000))
	assert.Equal(t, 3, activeAnchor(t, c).Col)
}

func TestMoveBlockedByLockedCell(t *testing.T) {
	board := NewBoard()
	board.SetCell(6, 3, Z)
	c := newController(t, board, [QueueSize]Shape{T, O, O})

	c.Right(at(200))
	assert.Equal(t, 5, activeAnchor(t, c).Col)
}

func TestSpinRevertsOnCollision(t *testing.T) {
	board := NewBoard()
	c := newController(t, board, [QueueSize]Shape{T, O, O})
	board.SetCell(4, 4, Z)
	spawn, _ := SpawnMask(T)

	c.Spin(at(200))

	p := mustActive(t, c)
	assert.Equal(t, spawn, p.Mask())
	assert.Equal(t, SpawnAnchor, p.Anchor())
}

func TestSpinCooldown(t *testing.T) {
	c := newController(t, NewBoard(), [QueueSize]Shape{I, O, O})
	spawn, _ := SpawnMask(I)

	c.Spin(at(199))
	assert.Equal(t, spawn, mustActive(t, c).Mask())

	c.Spin(at(200))
	assert.NotEqual(t, spawn, mustActive(t, c).Mask())
}

func TestPieceLocksAtFloor(t *testing.T) {
	board := NewBoard()
	c := newController(t, board, [QueueSize]Shape{T, L, J})

	for i := 1; i <= 16; i++ {
		require.False(t, c.Step(at(300*i)))
		assert.Equal(t, 4+i, activeAnchor(t, c).Row)
		assert.Equal(t, T, mustActive(t, c).Shape())
	}

	require.False(t, c.Step(at(300*17)))

	for _, pt := range []Point{{4, 18}, {3, 19}, {4, 19}, {5, 19}} {
		assert.Equal(t, T, board.Cell(pt.Col, pt.Row), "cell %v", pt)
	}
	p := mustActive(t, c)
	assert.Equal(t, L, p.Shape())
	assert.Equal(t, SpawnAnchor, p.Anchor())
	assert.Equal(t, J, c.queue.Peek()[0].Shape())
}

func TestPieceLocksOnStack(t *testing.T) {
	board := NewBoard()
	board.SetCell(4, 8, Z)
	c := newController(t, board, [QueueSize]Shape{T, O, O})

	for i := 1; i <= 4; i++ {
		require.False(t, c.Step(at(300*i)))
	}
	assert.Equal(t, 8, activeAnchor(t, c).Row)

	require.False(t, c.Step(at(300*5)))
	for _, pt := range []Point{{4, 6}, {3, 7}, {4, 7}, {5, 7}} {
		assert.Equal(t, T, board.Cell(pt.Col, pt.Row), "cell %v", pt)
	}
	assert.Equal(t, O, mustActive(t, c).Shape())
}

func TestLockClearsFullLine(t *testing.T) {
	board := NewBoard()
	for col := range Cols {
		if col < 3 || col > 5 {
			board.SetCell(col, 19, J)
		}
	}
	c := newController(t, board, [QueueSize]Shape{T, O, O})

	for i := 1; i <= 17; i++ {
		require.False(t, c.Step(at(300*i)))
	}

	row := board.Cells()[19]
	for col := range Cols {
		want := Empty
		if col == 4 {
			want = T
		}
		assert.Equal(t, want, row[col], "col %d", col)
	}
	assert.Equal(t, [Rows]bool{}, board.FullLines())
}

func TestGameOverWhenSpawnCollides(t *testing.T) {
	board := NewBoard()
	for row := 5; row < Rows; row++ {
		for col := 1; col < Cols; col++ {
			board.SetCell(col, row, Z)
		}
	}
	c := newController(t, board, [QueueSize]Shape{T, O, L})

	require.False(t, c.Step(at(300)))
	assert.Equal(t, 5, activeAnchor(t, c).Row)

	assert.True(t, c.Step(at(600)))
	assert.Equal(t, StateGameOver, c.State())
	for _, pt := range []Point{{4, 3}, {3, 4}, {4, 4}, {5, 4}} {
		assert.Equal(t, T, board.Cell(pt.Col, pt.Row), "cell %v", pt)
	}

	peek := c.queue.Peek()
	before := mustActive(t, c)
	assert.Equal(t, O, before.Shape())

	assert.True(t, c.Step(at(900)))
	assert.True(t, c.Step(at(5000)))
	c.Left(at(5000))
	c.Right(at(6000))
	c.Spin(at(7000))

	assert.Equal(t, peek, c.queue.Peek(), "queue must not advance after game over")
	assert.Equal(t, before, mustActive(t, c))
}

func TestStepWithoutActivePiece(t *testing.T) {
	c := newController(t, NewBoard(), [QueueSize]Shape{T, O, O})
	c.active = nil

	assert.True(t, c.Step(at(300)))
	c.Left(at(200))
	c.Spin(at(200))
	_, ok := c.Active()
	assert.False(t, ok)
}

func TestControllerLogsEvents(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	c := newController(t, NewBoard(), [QueueSize]Shape{T, O, O}, WithLogger(logger))

	for i := 1; i <= 17; i++ {
		c.Step(at(300 * i))
	}

	out := buf.String()
	assert.Contains(t, out, "new piece")
	assert.Contains(t, out, "landed")
}

func TestWithNilLoggerKeepsDefault(t *testing.T) {
	c := newController(t, NewBoard(), [QueueSize]Shape{T, O, O}, WithLogger(nil))
	assert.NotNil(t, c.logger)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "active", StateActive.String())
	assert.Equal(t, "game_over", StateGameOver.String())
	assert.Equal(t, "barrier", CollisionBarrier.String())
}
