package core

import (
	"fmt"

	"sprite-engine/math"
)

type Color struct {
	R, G, B, A float32
}

var (
	ColorWhite  = Color{1, 1, 1, 1}
	ColorBlack  = Color{0, 0, 0, 1}
	ColorRed    = Color{1, 0, 0, 1}
	ColorGreen  = Color{0, 1, 0, 1}
	ColorBlue   = Color{0, 0, 1, 1}
	ColorYellow = Color{1, 1, 0, 1}
)

func (c Color) Vec4() math.Vec4 {
	return math.Vec4{X: c.R, Y: c.G, Z: c.B, W: c.A}
}

// Vertex is the interleaved layout uploaded to the GPU. Field order matters:
// attribute offsets are derived from it with unsafe.Offsetof, and the shader
// binds position/uv/color at locations 0/1/2 in the same order.
type Vertex struct {
	Position math.Vec2
	UV       math.Vec2
	Color    Color
}

// Rect is a general purpose pixel-space rectangle, position plus size.
type Rect struct {
	X, Y          int
	Width, Height int
}

func (r Rect) String() string {
	return fmt.Sprintf("[%d, %d, %d, %d]", r.X, r.Y, r.Width, r.Height)
}

// CanFit reports whether other fits inside this rectangle.
func (r Rect) CanFit(other Rect) bool {
	return other.X >= r.X &&
		other.Y >= r.Y &&
		other.Width <= r.Width &&
		other.Height <= r.Height
}
