package tetris

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Options configures a new Game.
type Options struct {
	Seed   int64
	Timing Timing
	Logger *log.Logger
}

// Game bundles a board, a piece queue and the controller driving them.
// Hosts create one Game per player and call Frame once per frame.
type Game struct {
	board      *Board
	queue      *PieceQueue
	controller *TimeController
	seed       int64
	frames     uint64
	over       bool
}

// NewGame starts a game at now. A zero Timing falls back to DefaultTiming.
func NewGame(opts Options, now time.Time) *Game {
	timing := opts.Timing
	if timing == (Timing{}) {
		timing = DefaultTiming()
	}
	board := NewBoard()
	queue := NewPieceQueue(rand.New(rand.NewSource(opts.Seed)))

	var ctrlOpts []Option
	if opts.Logger != nil {
		ctrlOpts = append(ctrlOpts, WithLogger(opts.Logger.With("seed", opts.Seed)))
	}

	return &Game{
		board:      board,
		queue:      queue,
		controller: NewTimeController(board, queue, timing, now, ctrlOpts...),
		seed:       opts.Seed,
	}
}

// Frame runs one host frame: rotate, then left or right, then gravity.
// Left wins over Right when both are held. Frame returns true once the game
// is over; later calls do nothing.
func (g *Game) Frame(in Input, now time.Time) bool {
	if g.over {
		return true
	}
	g.frames++

	if in.Rotate {
		g.controller.Spin(now)
	}
	if in.Left {
		g.controller.Left(now)
	} else if in.Right {
		g.controller.Right(now)
	}
	g.over = g.controller.Step(now)
	return g.over
}

// Drive samples src and clock once and runs a frame.
func Drive(g *Game, src InputSource, clock Clock) bool {
	return g.Frame(src.Held(), clock.Now())
}

// Render draws the locked cells and then the active piece.
func (g *Game) Render(r Renderer, sprite Sprite) {
	g.board.Render(r, sprite)
	if p, ok := g.controller.Active(); ok {
		g.board.RenderPiece(p, r, sprite)
	}
}

// Board returns the playfield.
func (g *Game) Board() *Board { return g.board }

// Queue returns the piece supply.
func (g *Game) Queue() *PieceQueue { return g.queue }

// Controller returns the controller.
func (g *Game) Controller() *TimeController { return g.controller }

// Over reports whether Frame has signalled game over.
func (g *Game) Over() bool { return g.over }
