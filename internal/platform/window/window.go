// Package window runs the tetris engine in a 480x640 ebiten window.
package window

import (
	"image/color"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Window dimensions in pixels.
const (
	ScreenWidth  = 480
	ScreenHeight = 640
)

var (
	background = color.RGBA{255, 255, 255, 255}
	outline    = color.RGBA{0, 0, 0, 255}
	panel      = color.RGBA{40, 40, 40, 255}
)

// Options configures a window Game.
type Options struct {
	Config config.Config
	Seed   int64 // 0 picks a time-based seed
	Logger *log.Logger
}

// Game adapts a tetris.Game to ebiten.Game. It also implements
// tetris.Renderer, drawing each cell as a filled square.
type Game struct {
	game   *tetris.Game
	layout core.Layout
	colors map[tetris.Shape]core.Color
	timing tetris.Timing
	input  tetris.InputSource
	clock  tetris.Clock
	logger *log.Logger

	seed  int64
	fixed bool

	canvas *ebiten.Image // target of DrawSprite during Draw
}

// New builds the window game and starts the first round.
func New(opts Options) (*Game, error) {
	colors, err := opts.Config.ShapeColors()
	if err != nil {
		return nil, err
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{
		layout: core.PixelLayout(),
		colors: colors,
		timing: opts.Config.EngineTiming(),
		input:  keyboard{},
		clock:  tetris.SystemClock{},
		logger: logger,
		seed:   opts.Seed,
		fixed:  opts.Seed != 0,
	}
	g.restart()
	return g, nil
}

func (g *Game) restart() {
	if !g.fixed {
		g.seed = time.Now().UnixNano()
	}
	g.logger.Info("game started", "seed", g.seed)
	g.game = tetris.NewGame(tetris.Options{
		Seed:   g.seed,
		Timing: g.timing,
		Logger: g.logger,
	}, g.clock.Now())
}

// Update runs one engine frame per ebiten tick.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyEscape) || ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if g.game.Over() {
		if ebiten.IsKeyPressed(ebiten.KeyR) {
			g.restart()
		}
		return nil
	}
	if tetris.Drive(g.game, g.input, g.clock) {
		g.logger.Info("game over", "seed", g.seed, "frames", g.game.Snapshot().Frames)
	}
	return nil
}

// Draw paints the white background, the board outline, the cells, the queue
// preview and the game-over banner.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(background)

	board := g.layout.BoardRect(tetris.Cols, tetris.Rows)
	vector.StrokeRect(screen, float32(board.X), float32(board.Y), float32(board.W), float32(board.H), 2, outline, false)

	g.canvas = screen
	g.game.Render(g, tetris.SpriteBlock)
	g.drawQueue(screen, board.Right()+20, board.Y)

	if g.game.Over() {
		y := board.Y + board.H/2 - 20
		vector.FillRect(screen, float32(board.X), float32(y), float32(board.W), 40, panel, false)
		ebitenutil.DebugPrintAt(screen, "GAME OVER", board.X+70, y+6)
		ebitenutil.DebugPrintAt(screen, "R to restart", board.X+62, y+22)
	}
	g.canvas = nil
}

// DrawSprite fills the 20x20 square of one board cell.
func (g *Game) DrawSprite(_ tetris.Sprite, at tetris.Cell) {
	g.fillCell(g.canvas, g.layout.CellRect(at.Col, at.Row), g.colors[at.Shape])
}

func (g *Game) fillCell(dst *ebiten.Image, r core.Rect, c core.Color) {
	if dst == nil {
		return
	}
	vector.FillRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), c.Pixel(), false)
	vector.StrokeRect(dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), 1, background, false)
}

// drawQueue previews the lookahead buffer at 20 px per cell.
func (g *Game) drawQueue(screen *ebiten.Image, x, y int) {
	vector.FillRect(screen, float32(x), float32(y), 80, 16, panel, false)
	ebitenutil.DebugPrintAt(screen, "NEXT", x+4, y)

	for i, p := range g.game.Queue().Peek() {
		preview := core.Layout{OriginX: x, OriginY: y + 24 + i*80, CellW: 20, CellH: 20}
		mask := p.Mask()
		for r := range mask {
			for c := range mask[r] {
				if mask[r][c] {
					g.fillCell(screen, preview.CellRect(c, r), g.colors[p.Shape()])
				}
			}
		}
	}
}

// Layout fixes the logical screen at 480x640.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return ScreenWidth, ScreenHeight
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle("Tetris")
	return ebiten.RunGame(g)
}

// keyboard samples held keys straight from ebiten.
type keyboard struct{}

func (keyboard) Held() tetris.Input {
	return tetris.Input{
		Rotate: anyPressed(ebiten.KeyUp, ebiten.KeyW, ebiten.KeySpace),
		Left:   anyPressed(ebiten.KeyLeft, ebiten.KeyA),
		Right:  anyPressed(ebiten.KeyRight, ebiten.KeyD),
	}
}

func anyPressed(keys ...ebiten.Key) bool {
	for _, k := range keys {
		if ebiten.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
