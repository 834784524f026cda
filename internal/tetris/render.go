package tetris

import "time"

// Sprite identifies the image a host draws for a cell. The engine never
// interprets it.
type Sprite int

// SpriteBlock is the default block sprite.
const SpriteBlock Sprite = 0

// Cell is a draw target: a board coordinate and the shape occupying it.
type Cell struct {
	Col, Row int
	Shape    Shape
}

// Renderer accepts draw commands addressed by board cell. Mapping cells to
// screen space belongs to the host.
type Renderer interface {
	DrawSprite(sprite Sprite, at Cell)
}

// Input is the held state of the gameplay buttons for one frame.
type Input struct {
	Rotate bool
	Left   bool
	Right  bool
}

// InputSource reports which buttons are currently held.
type InputSource interface {
	Held() Input
}

// Clock is a monotonic time source.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the process clock.
type SystemClock struct{}

// Now returns time.Now, which carries a monotonic reading.
func (SystemClock) Now() time.Time { return time.Now() }
