package ladder

import (
	"math"

	"github.com/cartocrow/isosimplify/geomkernel"
)

// AreaPreservationLine returns the unique line parallel to segment (s, v)
// such that replacing the rung (t, u) by any single point p on it leaves
// the signed area of the triangle (s, p, v) equal to that of the
// quadrilateral (s, t, u, v).
//
// The line is (s, v) translated along its left-perpendicular by
// h = 2A/|sv|, where A is the signed area of (s, v, u, t); the sign of A
// puts the line on the correct side for either isoline orientation.
// ErrThreeVertexIsoline is returned when s == v (the rung's isoline has
// shrunk to three points).
func AreaPreservationLine(s, t, u, v geomkernel.Point) (geomkernel.Line, error) {
	if s.Equal(v) {
		return geomkernel.Line{}, ErrThreeVertexIsoline
	}
	area := geomkernel.SignedArea([]geomkernel.Point{s, v, u, t})
	base := geomkernel.LineThrough(s, v)
	baseLength := geomkernel.Distance(s, v)
	height := 2 * area / baseLength

	perp := base.Direction.Perpendicular().Normalized()
	return base.Translated(perp.Scale(height)), nil
}

// SymmetricDifference returns the absolute area between the two 4-chains
// s->t->u->v and s->p->v, found by case analysis over which of the four
// pairwise segment intersections (st x pv, tu x pv, tu x sp, uv x sp)
// exist.
func SymmetricDifference(s, t, u, v, p geomkernel.Point) float64 {
	st, _ := geomkernel.NewSegment(s, t)
	tu, _ := geomkernel.NewSegment(t, u)
	uv, _ := geomkernel.NewSegment(u, v)
	sp, _ := geomkernel.NewSegment(s, p)
	pv, _ := geomkernel.NewSegment(p, v)

	stPv := intersectPoint(st, pv)
	tuPv := intersectPoint(tu, pv)
	tuSp := intersectPoint(tu, sp)
	uvSp := intersectPoint(uv, sp)

	cost := 0.0

	switch {
	case stPv != nil:
		cost += geomkernel.Area([]geomkernel.Point{s, p, *stPv})
		if tuPv != nil {
			cost += geomkernel.Area([]geomkernel.Point{*tuPv, u, v})
			cost += geomkernel.Area([]geomkernel.Point{*stPv, t, *tuPv})
		} else {
			cost += geomkernel.Area([]geomkernel.Point{*stPv, t, u, v})
		}
	case uvSp != nil:
		cost += geomkernel.Area([]geomkernel.Point{*uvSp, p, v})
		if tuSp != nil {
			cost += geomkernel.Area([]geomkernel.Point{s, t, *tuSp})
			cost += geomkernel.Area([]geomkernel.Point{*tuSp, u, *uvSp})
		} else {
			cost += geomkernel.Area([]geomkernel.Point{s, t, u, *uvSp})
		}
	case tuSp == nil && tuPv == nil:
		cost += geomkernel.Area([]geomkernel.Point{s, t, u, v, p})
	case tuSp == nil:
		cost += geomkernel.Area([]geomkernel.Point{p, s, t, *tuPv})
		cost += geomkernel.Area([]geomkernel.Point{*tuPv, u, v})
	case tuPv == nil:
		cost += geomkernel.Area([]geomkernel.Point{s, t, *tuSp})
		cost += geomkernel.Area([]geomkernel.Point{*tuSp, u, v, p})
	default:
		cost += geomkernel.Area([]geomkernel.Point{s, t, *tuSp})
		cost += geomkernel.Area([]geomkernel.Point{*tuPv, u, v})
		cost += geomkernel.Area([]geomkernel.Point{*tuSp, p, *tuPv})
	}

	return cost
}

// intersectPoint returns the single intersection point of a and b, or nil
// if they do not meet at a unique point (no intersection, or a collinear
// overlap, which this case analysis does not distinguish further).
func intersectPoint(a, b geomkernel.Segment) *geomkernel.Point {
	res := geomkernel.SegmentIntersection(a, b)
	if res.Kind != geomkernel.PointIntersection {
		return nil
	}
	p := res.Point
	return &p
}

// ComputeCollapsed fills l.Collapsed by running policy over the whole
// ladder. It returns false, leaving l.Collapsed unset, when the policy
// cannot produce a point for every rung (a missing neighbour or a
// three-vertex isoline), matching the original construction's early
// return.
func ComputeCollapsed(l *Ladder, prev, next func(geomkernel.Point) (geomkernel.Point, bool), policy CollapsePolicy) bool {
	pts, err := policy.CollapseLadder(l, prev, next)
	if err != nil || len(pts) != len(l.Rungs) {
		return false
	}
	l.Collapsed = pts
	return true
}

// ComputeCost assigns l.Cost as the mean per-rung symmetric-difference
// area, or +Inf when l is invalid or its collapsed points are missing.
func ComputeCost(l *Ladder, prev, next func(geomkernel.Point) (geomkernel.Point, bool)) {
	if !l.Valid || len(l.Collapsed) != len(l.Rungs) || len(l.Rungs) == 0 {
		l.Cost = math.Inf(1)
		return
	}

	total := 0.0
	for i, rung := range l.Rungs {
		s, ok := prev(rung.T)
		if !ok {
			l.Cost = math.Inf(1)
			return
		}
		v, ok := next(rung.U)
		if !ok {
			l.Cost = math.Inf(1)
			return
		}
		total += SymmetricDifference(s, rung.T, rung.U, v, l.Collapsed[i])
	}
	l.Cost = total / float64(len(l.Rungs))
}
