package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/tetris"
)

// Terminal cells are two characters wide so blocks look square.
const (
	cellW = 2
	cellH = 1
)

// BoardView draws a game into a core.Screen. It implements tetris.Renderer.
type BoardView struct {
	glyph    string
	colors   map[tetris.Shape]core.Color
	showNext bool
	title    string

	screen *core.Screen
	layout core.Layout
}

// NewBoardView creates a view using glyph for every block and colors per shape.
func NewBoardView(glyph string, colors map[tetris.Shape]core.Color, showNext bool) *BoardView {
	if glyph == "" {
		glyph = "██"
	}
	return &BoardView{
		glyph:    glyph,
		colors:   colors,
		showNext: showNext,
	}
}

// SetTitle sets the text shown above the status panel (player or session name).
func (v *BoardView) SetTitle(title string) {
	v.title = title
}

// DrawSprite fills the screen rectangle of one board cell.
func (v *BoardView) DrawSprite(_ tetris.Sprite, at tetris.Cell) {
	v.screen.FillRect(v.layout.CellRect(at.Col, at.Row), v.glyph, v.colors[at.Shape])
}

// Draw renders the whole frame: outline, locked cells, the active piece, the
// queue preview, the status panel and, when the game is over, the overlay.
func (v *BoardView) Draw(s *core.Screen, g *tetris.Game) {
	v.screen = s
	v.layout = core.CenteredLayout(s.Width(), s.Height(), tetris.Cols, tetris.Rows, cellW, cellH)

	box := v.layout.BoardRect(tetris.Cols, tetris.Rows).Inset(1)
	s.DrawBox(box, core.ColorGray)

	g.Render(v, tetris.SpriteBlock)

	if v.showNext {
		v.drawQueue(s, g, box.Right()+2, box.Y)
	}
	v.drawStatus(s, g, box)

	if g.Over() {
		mid := v.layout.OriginY + tetris.Rows/2
		s.DrawTextCentered(box, mid-1, "GAME OVER", core.ColorBrightRed)
		s.DrawTextCentered(box, mid+1, "r restart", core.ColorWhite)
	}
}

// drawQueue lists the upcoming pieces top to bottom, front first.
func (v *BoardView) drawQueue(s *core.Screen, g *tetris.Game, x, y int) {
	s.DrawTextColor(x, y, "NEXT", core.ColorWhite)
	for i, p := range g.Queue().Peek() {
		preview := core.Layout{OriginX: x, OriginY: y + 2 + i*4, CellW: cellW, CellH: cellH}
		mask := p.Mask()
		for r := range mask {
			for c := range mask[r] {
				if mask[r][c] {
					s.FillRect(preview.CellRect(c, r), v.glyph, v.colors[p.Shape()])
				}
			}
		}
	}
}

// drawStatus prints title, seed and state to the left of the board.
func (v *BoardView) drawStatus(s *core.Screen, g *tetris.Game, box core.Rect) {
	snap := g.Snapshot()
	lines := []string{
		"TETRIS",
		v.title,
		"",
		fmt.Sprintf("seed %d", snap.Seed),
		fmt.Sprintf("state %s", snap.State),
	}
	width := 0
	for _, l := range lines {
		width = core.Max(width, len([]rune(l)))
	}
	x := box.X - width - 2
	if x < 0 {
		return
	}
	for i, l := range lines {
		color := core.ColorGray
		if i == 0 {
			color = core.ColorBrightCyan
		}
		s.DrawTextColor(x, box.Y+i, l, color)
	}
}
