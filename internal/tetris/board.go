package tetris

// Collision describes why a piece cannot occupy its current position.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionBarrier
	CollisionPiece
)

// String returns a short name for the collision kind.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionBarrier:
		return "barrier"
	case CollisionPiece:
		return "piece"
	default:
		return "unknown"
	}
}

// Board is the 20x10 grid of locked cells.
//
// A cell becomes non-Empty only when a piece is locked over it. Locked cells
// move only when a full line below them is cleared.
type Board struct {
	cells     [Rows][Cols]Shape
	fullLines [Rows]bool
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// inBounds reports whether (col, row) lies on the board.
func inBounds(col, row int) bool {
	return col >= 0 && col < Cols && row >= 0 && row < Rows
}

// Cell returns the shape locked at (col, row). Off-board cells read as Empty.
func (b *Board) Cell(col, row int) Shape {
	if !inBounds(col, row) {
		return Empty
	}
	return b.cells[row][col]
}

// SetCell overwrites one cell. Off-board coordinates are ignored.
// Full-line markers are not touched; they are recomputed on the next Lock.
func (b *Board) SetCell(col, row int, s Shape) {
	if !inBounds(col, row) {
		return
	}
	b.cells[row][col] = s
}

// Cells returns a copy of the grid.
func (b *Board) Cells() [Rows][Cols]Shape {
	return b.cells
}

// FullLines returns a copy of the full-row markers.
func (b *Board) FullLines() [Rows]bool {
	return b.fullLines
}

// Collision reports whether p fits. A block outside [0,Cols)x[0,Rows) is a
// barrier collision; a block over a locked cell is a piece collision.
func (b *Board) Collision(p Piece) Collision {
	for _, blk := range p.Blocks() {
		if !inBounds(blk.Col, blk.Row) {
			return CollisionBarrier
		}
		if b.cells[blk.Row][blk.Col] != Empty {
			return CollisionPiece
		}
	}
	return CollisionNone
}

// Collides reports whether p overlaps the walls, the floor or a locked cell.
func (b *Board) Collides(p Piece) bool {
	return b.Collision(p) != CollisionNone
}

// Lock copies p into the grid and recomputes the full-line markers.
// Cells that are off the board or already occupied are skipped.
func (b *Board) Lock(p Piece) {
	for _, blk := range p.Blocks() {
		if !inBounds(blk.Col, blk.Row) {
			continue
		}
		if b.cells[blk.Row][blk.Col] == Empty {
			b.cells[blk.Row][blk.Col] = p.Shape()
		}
	}
	b.markFullLines()
}

// markFullLines sets fullLines[row] iff every column of row is occupied.
func (b *Board) markFullLines() {
	for row := range Rows {
		full := true
		for col := range Cols {
			if b.cells[row][col] == Empty {
				full = false
				break
			}
		}
		b.fullLines[row] = full
	}
}

// ClearFullLines removes marked rows one at a time, top to bottom. Each pass
// shifts everything above the first marked row down by one, together with the
// markers, and resets row 0. It returns the number of rows removed.
func (b *Board) ClearFullLines() int {
	cleared := 0
	for {
		row := b.firstFullLine()
		if row < 0 {
			return cleared
		}
		copy(b.cells[1:row+1], b.cells[:row])
		b.cells[0] = [Cols]Shape{}
		copy(b.fullLines[1:row+1], b.fullLines[:row])
		b.fullLines[0] = false
		cleared++
	}
}

// firstFullLine returns the topmost marked row, or -1.
func (b *Board) firstFullLine() int {
	for row, full := range b.fullLines {
		if full {
			return row
		}
	}
	return -1
}

// Render issues one draw command per locked cell.
func (b *Board) Render(r Renderer, sprite Sprite) {
	for row := range Rows {
		for col := range Cols {
			if s := b.cells[row][col]; s != Empty {
				r.DrawSprite(sprite, Cell{Col: col, Row: row, Shape: s})
			}
		}
	}
}

// RenderPiece draws the on-board blocks of p. Blocks outside the board are
// skipped.
func (b *Board) RenderPiece(p Piece, r Renderer, sprite Sprite) {
	for _, blk := range p.Blocks() {
		if !inBounds(blk.Col, blk.Row) {
			continue
		}
		r.DrawSprite(sprite, Cell{Col: blk.Col, Row: blk.Row, Shape: p.Shape()})
	}
}
