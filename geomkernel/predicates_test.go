package geomkernel

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrient(t *testing.T) {
	a := Point{0, 0}
	b := Point{1, 0}

	require.Equal(t, Left, Orient(a, b, Point{0.5, 1}))
	require.Equal(t, Right, Orient(a, b, Point{0.5, -1}))
	require.Equal(t, Collinear, Orient(a, b, Point{2, 0}))
}

func TestSegmentIntersectionCrossing(t *testing.T) {
	s1 := Segment{Point{0, 0}, Point{2, 2}}
	s2 := Segment{Point{0, 2}, Point{2, 0}}

	got := SegmentIntersection(s1, s2)
	require.Equal(t, PointIntersection, got.Kind)
	require.InDelta(t, 1, got.Point.X, 1e-9)
	require.InDelta(t, 1, got.Point.Y, 1e-9)
}

func TestSegmentIntersectionParallelNoOverlap(t *testing.T) {
	s1 := Segment{Point{0, 0}, Point{1, 0}}
	s2 := Segment{Point{0, 1}, Point{1, 1}}

	got := SegmentIntersection(s1, s2)
	require.Equal(t, NoIntersection, got.Kind)
}

func TestSegmentIntersectionCollinearOverlap(t *testing.T) {
	s1 := Segment{Point{0, 0}, Point{2, 0}}
	s2 := Segment{Point{1, 0}, Point{3, 0}}

	got := SegmentIntersection(s1, s2)
	require.Equal(t, SegmentOverlap, got.Kind)
	require.InDelta(t, 1, got.Overlap.A.X, 1e-9)
	require.InDelta(t, 2, got.Overlap.B.X, 1e-9)
}

func TestSignedAreaSquare(t *testing.T) {
	// Clockwise unit square: signed area should be negative under the
	// standard shoelace convention.
	pts := []Point{{0, 0}, {0, 1}, {1, 1}, {1, 0}}
	require.InDelta(t, -1, SignedArea(pts), 1e-9)
	require.InDelta(t, 1, Area(pts), 1e-9)
}

func TestSegmentKeyOrientationIndependent(t *testing.T) {
	s1 := Segment{Point{1, 1}, Point{0, 0}}
	s2 := Segment{Point{0, 0}, Point{1, 1}}
	require.Equal(t, s1.Key(), s2.Key())
}
