package tetris

import (
	"fmt"
	"math"
)

// Point is a board coordinate. Columns grow right, rows grow down.
type Point struct {
	Col, Row int
}

// SpawnAnchor is where every new piece starts.
var SpawnAnchor = Point{Col: 5, Row: 4}

// Piece is a movable tetromino. The anchor is a reference cell combined with
// a shape-dependent offset to find the occupied board cells; it is not the
// top-left corner of the mask.
//
// Translate and rotate never check legality. Callers test the result against
// a Board and undo the move when it collides.
type Piece struct {
	shape  Shape
	mask   Mask
	anchor Point
}

// NewPiece builds a piece of the given shape in its spawn orientation.
func NewPiece(shape Shape, anchor Point) (Piece, error) {
	if !shape.Valid() {
		return Piece{}, fmt.Errorf("new piece: %w: %s", ErrInvalidShape, shape)
	}
	return Piece{shape: shape, mask: masks[shape], anchor: anchor}, nil
}

// Shape returns the piece's shape.
func (p Piece) Shape() Shape { return p.shape }

// Mask returns the current orientation.
func (p Piece) Mask() Mask { return p.mask }

// Anchor returns the current anchor cell.
func (p Piece) Anchor() Point { return p.anchor }

// Translate shifts the anchor by (dx, dy).
func (p *Piece) Translate(dx, dy int) {
	p.anchor.Col += dx
	p.anchor.Row += dy
}

// RotateClockwise transposes the active region and reverses its rows.
// O pieces are left unchanged.
func (p *Piece) RotateClockwise() {
	if p.shape == O {
		return
	}
	n := p.shape.span()
	t := p.mask.transpose(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			p.mask[r][c] = t[n-1-r][c]
		}
	}
}

// RotateCounterclockwise transposes the active region and reverses its
// columns. It undoes RotateClockwise exactly.
func (p *Piece) RotateCounterclockwise() {
	if p.shape == O {
		return
	}
	n := p.shape.span()
	t := p.mask.transpose(n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			p.mask[r][c] = t[r][n-1-c]
		}
	}
}

// transpose returns the mask with its top-left n x n region transposed.
func (m Mask) transpose(n int) Mask {
	var t Mask
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			t[r][c] = m[c][r]
		}
	}
	return t
}

// Blocks returns the board cells covered by the piece, including cells that
// fall outside the board.
func (p Piece) Blocks() []Point {
	n := p.shape.span()
	off := p.shape.offset()
	blocks := make([]Point, 0, 4)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if !p.mask[r][c] {
				continue
			}
			blocks = append(blocks, Point{
				Col: p.anchor.Col - off + c,
				Row: p.anchor.Row - off + r,
			})
		}
	}
	return blocks
}

// Bottom returns the lowest row the piece occupies.
func (p Piece) Bottom() int {
	bottom := math.MinInt
	for _, b := range p.Blocks() {
		if b.Row > bottom {
			bottom = b.Row
		}
	}
	return bottom
}
