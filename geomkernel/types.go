package geomkernel

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for geomkernel operations.
var (
	// ErrDegenerateSegment indicates a segment was constructed with coincident endpoints.
	ErrDegenerateSegment = errors.New("geomkernel: segment endpoints are identical")

	// ErrIdenticalPoints indicates an operation needed two distinct points but received equal ones.
	ErrIdenticalPoints = errors.New("geomkernel: points are identical")
)

// Point is an exact 2-D point. Coordinates are float64 but every predicate
// that must be exact (Orient, SegmentIntersection) promotes them to
// math/big.Rat before comparing signs, so the predicate itself never loses
// precision.
type Point struct {
	X, Y float64
}

// String renders p as "(x, y)" for diagnostics.
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Equal reports whether p and q have identical coordinates.
func (p Point) Equal(q Point) bool {
	return p.X == q.X && p.Y == q.Y
}

// Sub returns p - q as a vector.
func (p Point) Sub(q Point) Vector { return Vector{p.X - q.X, p.Y - q.Y} }

// Add returns p + v.
func (p Point) Add(v Vector) Point { return Point{p.X + v.X, p.Y + v.Y} }

// Vector is a 2-D displacement.
type Vector struct {
	X, Y float64
}

// Length returns the Euclidean length of v.
func (v Vector) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// Scale returns v scaled by s.
func (v Vector) Scale(s float64) Vector { return Vector{v.X * s, v.Y * s} }

// Perpendicular returns v rotated 90 degrees counter-clockwise (left turn).
func (v Vector) Perpendicular() Vector { return Vector{-v.Y, v.X} }

// Add returns v + w.
func (v Vector) Add(w Vector) Vector { return Vector{v.X + w.X, v.Y + w.Y} }

// Normalized returns v scaled to unit length; the zero vector is returned
// unchanged.
func (v Vector) Normalized() Vector {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Segment is an oriented line segment from A to B. Two segments that
// connect the same endpoints in opposite order are considered the same
// site (see Segment.Key), matching the "identified modulo orientation"
// rule of the segment Voronoi diagram's site index.
type Segment struct {
	A, B Point
}

// NewSegment constructs a Segment, returning ErrDegenerateSegment if the
// endpoints coincide.
func NewSegment(a, b Point) (Segment, error) {
	if a.Equal(b) {
		return Segment{}, ErrDegenerateSegment
	}
	return Segment{A: a, B: b}, nil
}

// Reversed returns the segment with endpoints swapped.
func (s Segment) Reversed() Segment { return Segment{A: s.B, B: s.A} }

// Vector returns B - A.
func (s Segment) Vector() Vector { return s.B.Sub(s.A) }

// Line returns the infinite line carrying s.
func (s Segment) Line() Line { return LineThrough(s.A, s.B) }

// Midpoint returns the point halfway between A and B.
func (s Segment) Midpoint() Point {
	return Point{(s.A.X + s.B.X) / 2, (s.A.Y + s.B.Y) / 2}
}

// Key returns a canonical, orientation-independent identity for s, used by
// the site indices that look up a segment's Voronoi vertex regardless of
// which endpoint was named first.
func (s Segment) Key() Segment {
	if s.A.X < s.B.X || (s.A.X == s.B.X && s.A.Y < s.B.Y) {
		return s
	}
	return s.Reversed()
}

// Line is an infinite line in point-direction form.
type Line struct {
	Through    Point
	Direction  Vector
}

// LineThrough returns the line passing through a and b.
func LineThrough(a, b Point) Line {
	return Line{Through: a, Direction: b.Sub(a)}
}

// Translated returns l shifted by v.
func (l Line) Translated(v Vector) Line {
	return Line{Through: l.Through.Add(v), Direction: l.Direction}
}

// Projection returns the orthogonal projection of p onto l.
func (l Line) Projection(p Point) Point {
	d := l.Direction
	lenSq := d.X*d.X + d.Y*d.Y
	if lenSq == 0 {
		return l.Through
	}
	w := p.Sub(l.Through)
	t := (w.X*d.X + w.Y*d.Y) / lenSq
	return l.Through.Add(d.Scale(t))
}

// Orientation is the sign of the cross product (b-a) x (c-a).
type Orientation int

const (
	// Collinear means a, b, c lie on a common line.
	Collinear Orientation = iota
	// Left means c is to the left of the directed line a->b (counter-clockwise turn).
	Left
	// Right means c is to the right of the directed line a->b (clockwise turn).
	Right
)

// String renders the orientation label.
func (o Orientation) String() string {
	switch o {
	case Left:
		return "LEFT"
	case Right:
		return "RIGHT"
	default:
		return "COLLINEAR"
	}
}
