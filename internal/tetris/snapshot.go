package tetris

// Snapshot captures the complete game state for determinism testing and
// host-side display.
type Snapshot struct {
	Seed      int64
	Frames    uint64
	State     State
	Cells     [Rows][Cols]Shape
	FullLines [Rows]bool
	Active    Shape // Empty when no piece is in flight
	Anchor    Point
	Mask      Mask
	Next      [QueueSize]Shape
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Seed:      g.seed,
		Frames:    g.frames,
		State:     g.controller.State(),
		Cells:     g.board.Cells(),
		FullLines: g.board.FullLines(),
	}
	if p, ok := g.controller.Active(); ok {
		snap.Active = p.Shape()
		snap.Anchor = p.Anchor()
		snap.Mask = p.Mask()
	}
	for i, p := range g.queue.Peek() {
		snap.Next[i] = p.Shape()
	}
	return snap
}
