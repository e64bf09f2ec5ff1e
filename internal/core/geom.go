// Package core provides fundamental types shared by the simulation and the
// terminal front end. It has no Bubble Tea dependency so simulation code
// stays pure and testable.
package core

// Rect is an axis-aligned box: a vehicle footprint in world pixels or a
// region of terminal cells.
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

// Scale maps r from a world of worldW x worldH into a grid of cols x rows.
// Edges are floored so adjacent rects stay adjacent; every non-empty rect
// covers at least one cell.
func (r Rect) Scale(worldW, worldH, cols, rows int) Rect {
	x0 := floorDiv(r.X*cols, worldW)
	y0 := floorDiv(r.Y*rows, worldH)
	x1 := floorDiv(r.Right()*cols, worldW)
	y1 := floorDiv(r.Bottom()*rows, worldH)
	if x1 <= x0 && r.W > 0 {
		x1 = x0 + 1
	}
	if y1 <= y0 && r.H > 0 {
		y1 = y0 + 1
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// floorDiv divides rounding toward negative infinity, so off-screen
// coordinates stay off-screen after scaling.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
