package fighter

import "fmt"

// Axis selects the movement axis a collision pass works on.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

func (a Axis) String() string {
	switch a {
	case AxisX:
		return "x"
	case AxisY:
		return "y"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Shape is an axis-aligned rectangle in world space.
type Shape struct {
	X, Y, W, H float64
}

// Overlaps reports whether s and o share interior area. Shapes that only
// touch along an edge do not overlap.
func (s Shape) Overlaps(o Shape) bool {
	return s.X < o.X+o.W && o.X < s.X+s.W &&
		s.Y < o.Y+o.H && o.Y < s.Y+s.H
}

// Offset returns a copy of s moved by (dx, dy).
func (s Shape) Offset(dx, dy float64) Shape {
	s.X += dx
	s.Y += dy
	return s
}

// Extent is the size of s along axis.
func (s Shape) Extent(axis Axis) float64 {
	if axis == AxisY {
		return s.H
	}
	return s.W
}

func (s *Shape) translate(axis Axis, d float64) {
	if axis == AxisY {
		s.Y += d
		return
	}
	s.X += d
}

func (s Shape) Bottom() float64 { return s.Y + s.H }
func (s Shape) Right() float64  { return s.X + s.W }

// Obstacles is the static terrain a character collides with.
type Obstacles interface {
	Collides(s Shape) bool
}

// ShapeSet is the simplest Obstacles implementation: a linear scan over a
// fixed list of rectangles.
type ShapeSet []Shape

func (set ShapeSet) Collides(s Shape) bool {
	for _, o := range set {
		if s.Overlaps(o) {
			return true
		}
	}
	return false
}
