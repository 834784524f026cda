// Package core provides host-side drawing and input primitives shared by the
// terminal and window front ends. It has no dependency on Bubble Tea or ebiten
// so the layout math stays testable on its own.
package core

// Rect is an axis-aligned rectangle in screen units (characters or pixels).
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Inset grows the rectangle by d on every side (shrinks for negative d).
func (r Rect) Inset(d int) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}

// Layout maps board cells to screen rectangles: cell (col, row) occupies
// CellW x CellH units starting at (OriginX+col*CellW, OriginY+row*CellH).
type Layout struct {
	OriginX, OriginY int
	CellW, CellH     int
}

// PixelLayout is the window geometry: 20 px cells with the board's top-left
// corner at (150, 150).
func PixelLayout() Layout {
	return Layout{OriginX: 150, OriginY: 150, CellW: 20, CellH: 20}
}

// CenteredLayout centres a cols x rows board on a screen, keeping one unit of
// margin for the outline.
func CenteredLayout(screenW, screenH, cols, rows, cellW, cellH int) Layout {
	boardW, boardH := cols*cellW, rows*cellH
	return Layout{
		OriginX: Max((screenW-boardW)/2, 1),
		OriginY: Max((screenH-boardH)/2, 1),
		CellW:   cellW,
		CellH:   cellH,
	}
}

// CellRect returns the screen rectangle of board cell (col, row).
func (l Layout) CellRect(col, row int) Rect {
	return NewRect(l.OriginX+col*l.CellW, l.OriginY+row*l.CellH, l.CellW, l.CellH)
}

// BoardRect returns the rectangle covering a cols x rows board.
func (l Layout) BoardRect(cols, rows int) Rect {
	return NewRect(l.OriginX, l.OriginY, cols*l.CellW, rows*l.CellH)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
