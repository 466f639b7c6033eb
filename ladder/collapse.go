package ladder

import (
	"math"
	"sort"

	"github.com/cartocrow/isosimplify/geomkernel"
)

// CollapsePolicy computes the collapsed point for every rung of a ladder.
// prev/next are the isoline store's connectivity lookups, passed in so
// this package never depends on the isoline package directly.
type CollapsePolicy interface {
	CollapseLadder(l *Ladder, prev, next func(geomkernel.Point) (geomkernel.Point, bool)) ([]geomkernel.Point, error)
}

// Midpoint projects each rung's midpoint onto its area-preservation line.
type Midpoint struct{}

func (Midpoint) CollapseLadder(l *Ladder, prev, next func(geomkernel.Point) (geomkernel.Point, bool)) ([]geomkernel.Point, error) {
	out := make([]geomkernel.Point, 0, len(l.Rungs))
	for _, rung := range l.Rungs {
		s, ok := prev(rung.T)
		if !ok {
			return nil, ErrMissingNeighbour
		}
		v, ok := next(rung.U)
		if !ok {
			return nil, ErrMissingNeighbour
		}
		areaLine, err := AreaPreservationLine(s, rung.T, rung.U, v)
		if err != nil {
			return nil, err
		}
		mid := geomkernel.Point{X: (rung.T.X + rung.U.X) / 2, Y: (rung.T.Y + rung.U.Y) / 2}
		out = append(out, areaLine.Projection(mid))
	}
	return out, nil
}

// MinimiseSymmetricDifference samples the area-preservation line around
// the rung's midpoint projection and keeps the sample with the lowest
// symmetric-difference area, per the bounded-search construction.
type MinimiseSymmetricDifference struct {
	// Samples is the number of points tried per rung; Samples <= 0 uses 33.
	Samples int
}

func (p MinimiseSymmetricDifference) CollapseLadder(l *Ladder, prev, next func(geomkernel.Point) (geomkernel.Point, bool)) ([]geomkernel.Point, error) {
	samples := p.Samples
	if samples <= 0 {
		samples = 33
	}
	out := make([]geomkernel.Point, 0, len(l.Rungs))
	for _, rung := range l.Rungs {
		s, ok := prev(rung.T)
		if !ok {
			return nil, ErrMissingNeighbour
		}
		v, ok := next(rung.U)
		if !ok {
			return nil, ErrMissingNeighbour
		}
		areaLine, err := AreaPreservationLine(s, rung.T, rung.U, v)
		if err != nil {
			return nil, err
		}
		mid := geomkernel.Point{X: (rung.T.X + rung.U.X) / 2, Y: (rung.T.Y + rung.U.Y) / 2}
		seed := areaLine.Projection(mid)
		span := geomkernel.Distance(rung.T, rung.U)
		dir := areaLine.Direction.Normalized()

		best := seed
		bestCost := SymmetricDifference(s, rung.T, rung.U, v, seed)
		for i := 0; i < samples; i++ {
			t := -1 + 2*float64(i)/float64(samples-1)
			cand := seed.Add(dir.Scale(t * span))
			cost := SymmetricDifference(s, rung.T, rung.U, v, cand)
			if cost < bestCost {
				bestCost = cost
				best = cand
			}
		}
		out = append(out, best)
	}
	return out, nil
}

// HarmonyLine fits a single "harmony line" through the median direction
// and centroid of all rung midpoints, then intersects it with each
// rung's area-preservation line.
type HarmonyLine struct{}

func (HarmonyLine) CollapseLadder(l *Ladder, prev, next func(geomkernel.Point) (geomkernel.Point, bool)) ([]geomkernel.Point, error) {
	if len(l.Rungs) == 0 {
		return nil, ErrNoRungs
	}

	angles := make([]float64, len(l.Rungs))
	var cx, cy float64
	for i, rung := range l.Rungs {
		d := rung.U.Sub(rung.T)
		angles[i] = math.Atan2(d.Y, d.X)
		mid := geomkernel.Point{X: (rung.T.X + rung.U.X) / 2, Y: (rung.T.Y + rung.U.Y) / 2}
		cx += mid.X
		cy += mid.Y
	}
	sort.Float64s(angles)
	medianAngle := angles[len(angles)/2]
	centroid := geomkernel.Point{X: cx / float64(len(l.Rungs)), Y: cy / float64(len(l.Rungs))}
	harmony := geomkernel.Line{Through: centroid, Direction: geomkernel.Vector{X: math.Cos(medianAngle), Y: math.Sin(medianAngle)}}

	out := make([]geomkernel.Point, 0, len(l.Rungs))
	for _, rung := range l.Rungs {
		s, ok := prev(rung.T)
		if !ok {
			return nil, ErrMissingNeighbour
		}
		v, ok := next(rung.U)
		if !ok {
			return nil, ErrMissingNeighbour
		}
		areaLine, err := AreaPreservationLine(s, rung.T, rung.U, v)
		if err != nil {
			return nil, err
		}
		p, ok := lineIntersection(harmony, areaLine)
		if !ok {
			mid := geomkernel.Point{X: (rung.T.X + rung.U.X) / 2, Y: (rung.T.Y + rung.U.Y) / 2}
			p = areaLine.Projection(mid)
		}
		out = append(out, p)
	}
	return out, nil
}

// BezierLineIntersector is the cubic-Bezier/line intersection primitive
// the spline collapse policy relies on. It is external to this package:
// callers inject a concrete implementation rather than this package
// owning bezier-curve math.
type BezierLineIntersector interface {
	IntersectLine(controls [4]geomkernel.Point, l geomkernel.Line) (geomkernel.Point, bool)
}

// Spline processes the ladder as a whole: it seeds a control polygon from
// the midpoint collapse, then repeatedly intersects a cubic Bezier
// through each rung's neighbours with the rung's area-preservation line.
// Without an Intersector, it degrades to the midpoint seed.
type Spline struct {
	Intersector BezierLineIntersector
	// Iterations is the number of outer refinement passes; <= 0 uses 4.
	Iterations int
}

func (p Spline) CollapseLadder(l *Ladder, prev, next func(geomkernel.Point) (geomkernel.Point, bool)) ([]geomkernel.Point, error) {
	pts, err := (Midpoint{}).CollapseLadder(l, prev, next)
	if err != nil {
		return nil, err
	}
	if p.Intersector == nil {
		return pts, nil
	}

	iterations := p.Iterations
	if iterations <= 0 {
		iterations = 4
	}
	for iter := 0; iter < iterations; iter++ {
		for i, rung := range l.Rungs {
			s, ok := prev(rung.T)
			if !ok {
				continue
			}
			v, ok := next(rung.U)
			if !ok {
				continue
			}
			areaLine, err := AreaPreservationLine(s, rung.T, rung.U, v)
			if err != nil {
				continue
			}
			controls := controlPolygon(l.Rungs, pts, i)
			if ip, ok := p.Intersector.IntersectLine(controls, areaLine); ok {
				pts[i] = ip
			}
		}
	}
	return pts, nil
}

func controlPolygon(rungs []Rung, pts []geomkernel.Point, i int) [4]geomkernel.Point {
	before := pts[i]
	if i > 0 {
		before = pts[i-1]
	}
	after := pts[i]
	if i < len(pts)-1 {
		after = pts[i+1]
	}
	return [4]geomkernel.Point{before, rungs[i].T, rungs[i].U, after}
}

// Hybrid runs HarmonyLine when the ladder has at least two rungs (where a
// single harmony line is well-determined) and falls back to Spline
// otherwise.
type Hybrid struct {
	Spline Spline
}

func (h Hybrid) CollapseLadder(l *Ladder, prev, next func(geomkernel.Point) (geomkernel.Point, bool)) ([]geomkernel.Point, error) {
	if len(l.Rungs) >= 2 {
		return (HarmonyLine{}).CollapseLadder(l, prev, next)
	}
	return h.Spline.CollapseLadder(l, prev, next)
}

// lineIntersection computes the intersection of two infinite lines given
// in point-direction form; ok is false for parallel (or identical) lines.
func lineIntersection(a, b geomkernel.Line) (geomkernel.Point, bool) {
	d1, d2 := a.Direction, b.Direction
	denom := d1.X*d2.Y - d1.Y*d2.X
	if denom == 0 {
		return geomkernel.Point{}, false
	}
	w := b.Through.Sub(a.Through)
	t := (w.X*d2.Y - w.Y*d2.X) / denom
	return a.Through.Add(d1.Scale(t)), true
}
