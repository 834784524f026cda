package tetris

import (
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// State is the controller's lifecycle state.
type State int

const (
	StateActive State = iota
	StateGameOver
)

// String returns a short name for the state.
func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Timing holds the cooldown of each action category.
type Timing struct {
	Gravity time.Duration
	Move    time.Duration
	Spin    time.Duration
}

// DefaultTiming returns the stock cooldowns.
func DefaultTiming() Timing {
	return Timing{
		Gravity: 300 * time.Millisecond,
		Move:    200 * time.Millisecond,
		Spin:    200 * time.Millisecond,
	}
}

// Option configures a TimeController.
type Option func(*TimeController)

// WithLogger sends engine events to logger at debug level.
func WithLogger(logger *log.Logger) Option {
	return func(c *TimeController) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// TimeController owns the active piece and applies gravity and player
// commands to it, each behind its own cooldown.
//
// Every command is checked against the Board and reverted when it collides,
// so an illegal move is a silent no-op. Step is the only call that can end
// the game.
type TimeController struct {
	board  *Board
	queue  *PieceQueue
	timing Timing
	logger *log.Logger

	active *Piece
	state  State

	lastTick time.Time
	lastMove time.Time
	lastSpin time.Time
}

// NewTimeController takes the first piece from queue. All cooldowns start
// counting at now. The first piece is not checked against board; on a board
// the caller has filled, it may start inside locked cells and is locked in
// place by the first Step whose gravity cooldown has elapsed.
func NewTimeController(board *Board, queue *PieceQueue, timing Timing, now time.Time, opts ...Option) *TimeController {
	c := &TimeController{
		board:    board,
		queue:    queue,
		timing:   timing,
		logger:   log.New(io.Discard),
		lastTick: now,
		lastMove: now,
		lastSpin: now,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.spawn()
	return c
}

// spawn moves the front of the queue into play.
func (c *TimeController) spawn() {
	p := c.queue.Take()
	c.active = &p
	c.logger.Debug("new piece", "shape", p.Shape(), "next", c.queue.Peek()[0].Shape())
}

// due reports whether wait has elapsed since last.
func due(now, last time.Time, wait time.Duration) bool {
	return now.Sub(last) >= wait
}

// Step applies gravity when its cooldown has elapsed. A piece that cannot
// descend is locked, full lines are cleared and the next piece spawns.
// Step returns true when the game is over.
func (c *TimeController) Step(now time.Time) bool {
	if c.state == StateGameOver {
		return true
	}
	if c.active == nil {
		return true
	}
	if !due(now, c.lastTick, c.timing.Gravity) {
		return false
	}
	c.lastTick = now

	c.active.Translate(0, 1)
	kind := c.board.Collision(*c.active)
	if kind == CollisionNone {
		return false
	}
	c.active.Translate(0, -1)
	c.lock(kind)

	c.spawn()
	if kind := c.board.Collision(*c.active); kind != CollisionNone {
		c.state = StateGameOver
		c.logger.Debug("game over", "shape", c.active.Shape(), "collision", kind)
		return true
	}
	return false
}

// lock commits the active piece and compacts the board.
func (c *TimeController) lock(kind Collision) {
	p := *c.active
	c.active = nil
	c.board.Lock(p)
	c.logger.Debug("landed",
		"shape", p.Shape(),
		"col", p.Anchor().Col,
		"row", p.Anchor().Row,
		"collision", kind,
	)

	full := c.board.FullLines()
	for row, isFull := range full {
		if isFull {
			c.logger.Debug("full line", "row", row)
		}
	}
	if n := c.board.ClearFullLines(); n > 0 {
		c.logger.Debug("lines cleared", "count", n)
	}
}

// Left moves the active piece one column left when the move cooldown allows.
func (c *TimeController) Left(now time.Time) {
	c.shift(now, -1)
}

// Right moves the active piece one column right when the move cooldown allows.
func (c *TimeController) Right(now time.Time) {
	c.shift(now, 1)
}

// shift is the shared body of Left and Right.
func (c *TimeController) shift(now time.Time, dx int) {
	if c.state == StateGameOver || c.active == nil {
		return
	}
	if !due(now, c.lastMove, c.timing.Move) {
		return
	}
	c.lastMove = now

	c.active.Translate(dx, 0)
	if kind := c.board.Collision(*c.active); kind != CollisionNone {
		c.active.Translate(-dx, 0)
		c.logger.Debug("move blocked", "dx", dx, "collision", kind)
	}
}

// Spin rotates the active piece clockwise when the spin cooldown allows.
func (c *TimeController) Spin(now time.Time) {
	if c.state == StateGameOver || c.active == nil {
		return
	}
	if !due(now, c.lastSpin, c.timing.Spin) {
		return
	}
	c.lastSpin = now

	c.active.RotateClockwise()
	if kind := c.board.Collision(*c.active); kind != CollisionNone {
		c.active.RotateCounterclockwise()
		c.logger.Debug("spin blocked", "collision", kind)
	}
}

// Active returns a copy of the piece in flight.
func (c *TimeController) Active() (Piece, bool) {
	if c.active == nil {
		return Piece{}, false
	}
	return *c.active, true
}

// State returns the controller state.
func (c *TimeController) State() State {
	return c.state
}
