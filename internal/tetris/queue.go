package tetris

import "math/rand"

// QueueSize is the number of upcoming pieces kept in the lookahead buffer.
const QueueSize = 3

// PieceQueue is an endless supply of pieces with a fixed lookahead buffer.
// Every draw picks one of the seven shapes uniformly and independently;
// repeats are allowed.
type PieceQueue struct {
	pieces [QueueSize]Piece
	rng    *rand.Rand
}

// NewPieceQueue fills the buffer from rng.
func NewPieceQueue(rng *rand.Rand) *PieceQueue {
	q := &PieceQueue{rng: rng}
	for i := range q.pieces {
		q.pieces[i] = q.draw()
	}
	return q
}

// draw returns a fresh piece at the spawn anchor.
func (q *PieceQueue) draw() Piece {
	shape := Shapes[q.rng.Intn(len(Shapes))]
	// Shapes only holds valid shapes, so construction cannot fail.
	return Piece{shape: shape, mask: masks[shape], anchor: SpawnAnchor}
}

// Take removes and returns the front piece, then refills the last slot.
// The caller owns the returned piece.
func (q *PieceQueue) Take() Piece {
	front := q.pieces[0]
	copy(q.pieces[:], q.pieces[1:])
	q.pieces[QueueSize-1] = q.draw()
	return front
}

// Peek returns the buffered pieces, front first.
func (q *PieceQueue) Peek() [QueueSize]Piece {
	return q.pieces
}

// Len returns the buffer size, which is always QueueSize.
func (q *PieceQueue) Len() int {
	return len(q.pieces)
}
