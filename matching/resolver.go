package matching

import (
	"math"

	"github.com/cartocrow/isosimplify/geomkernel"
	"github.com/cartocrow/isosimplify/isoline"
	"github.com/cartocrow/isosimplify/svd"
)

// Resolve runs the matching resolver over every finite edge of d, against
// the connectivity recorded in store. angleFilter bounds the acute angle
// between two sites' supporting lines; alignmentFilter bounds the
// vertex-alignment angle of a candidate pair. Pass +Inf for either to
// disable that filter.
func Resolve(d *svd.Diagram, store *isoline.Store, angleFilter, alignmentFilter float64) *Graph {
	g := NewGraph()
	for _, e := range d.Edges() {
		resolveEdge(g, e, store, angleFilter, alignmentFilter)
	}
	g.dedupSort()
	return g
}

// VertexAlignment exposes the resolver's pairwise alignment measure for
// callers (such as the simplifier's diagnostics) that only know a matched
// pair and the turn sign its own Graph entry was recorded under; it
// applies that one sign to both ends, which degrades gracefully to the
// resolver's own measure when a match's two sides share a sign and is
// otherwise a reasonable approximation of it.
func VertexAlignment(store *isoline.Store, u, v geomkernel.Point, sign geomkernel.Orientation) float64 {
	return vertexAlignment(store, u, v, sign, sign)
}

func resolveEdge(g *Graph, e *svd.Edge, store *isoline.Store, angleFilter, alignmentFilter float64) {
	p, q := e.A.Site(), e.B.Site()

	pIso := isolineOf(store, p)
	qIso := isolineOf(store, q)
	if pIso == nil || qIso == nil || pIso == qIso {
		return
	}

	pl := supportingLine(store, p)
	ql := supportingLine(store, q)

	angle := acuteAngle(pl.Direction, ql.Direction)
	if angle > angleFilter {
		return
	}

	pPts := projectSnap(p, pl, e)
	qPts := projectSnap(q, ql, e)
	if len(pPts) == 0 || len(qPts) == 0 {
		return
	}

	ref := edgeReferencePoint(e)
	signP := geomkernel.OrientedSide(pl, ref)
	signQ := geomkernel.OrientedSide(ql, ref)

	match := func(pi, qi int) {
		pp, qp := pPts[pi], qPts[qi]

		_, pHasPrev := store.Prev(pp)
		_, pHasNext := store.Next(pp)
		_, qHasPrev := store.Prev(qp)
		_, qHasNext := store.Next(qp)
		if !pHasPrev || !pHasNext || !qHasPrev || !qHasNext {
			return
		}

		if vertexAlignment(store, pp, qp, signP, signQ) > alignmentFilter {
			return
		}

		ppIso := store.IsolineOf(qp)
		qpIso := store.IsolineOf(pp)
		if ppIso == nil || qpIso == nil {
			return
		}
		g.add(pp, signP, ppIso.ID(), qp)
		g.add(qp, signQ, qpIso.ID(), pp)
	}

	for i := 0; i < len(pPts); i++ {
		if i < len(qPts) {
			match(i, i)
		} else {
			match(i, i-1)
		}
		if len(qPts) > len(pPts) {
			match(i, i+1)
		}
	}
}

// isolineOf returns the isoline a site belongs to, using either its point
// or (for a segment site) one of its two endpoints.
func isolineOf(store *isoline.Store, site svd.Site) *isoline.Isoline {
	if site.IsPoint() {
		return store.IsolineOf(site.Point)
	}
	return store.IsolineOf(site.Segment.A)
}

// supportingLine computes a site's supporting line per the resolver's
// rule: the segment's own line for a segment site, or the line
// perpendicular to the local angle-bisector (oriented toward the locally
// convex side) for a point site.
func supportingLine(store *isoline.Store, site svd.Site) geomkernel.Line {
	if site.IsSegment() {
		return site.Segment.Line()
	}
	return supportingLineAtPoint(store, site.Point)
}

func supportingLineAtPoint(store *isoline.Store, p geomkernel.Point) geomkernel.Line {
	prevPt, hasPrev := store.Prev(p)
	nextPt, hasNext := store.Next(p)

	var prev, next geomkernel.Point
	switch {
	case hasPrev && hasNext:
		prev, next = prevPt, nextPt
	case hasPrev:
		prev = prevPt
		next = p.Add(p.Sub(prev))
	case hasNext:
		next = nextPt
		prev = p.Add(p.Sub(next))
	default:
		return geomkernel.Line{Through: p, Direction: geomkernel.Vector{X: 1, Y: 0}}
	}

	switch geomkernel.Orient(prev, p, next) {
	case geomkernel.Left:
		dir := bisectorDirection(p, prev, next).Perpendicular()
		return geomkernel.Line{Through: p, Direction: geomkernel.Vector{X: -dir.X, Y: -dir.Y}}
	case geomkernel.Right:
		dir := bisectorDirection(p, prev, next).Perpendicular()
		return geomkernel.Line{Through: p, Direction: dir}
	default:
		return geomkernel.LineThrough(prev, next)
	}
}

// bisectorDirection returns the direction of the interior angle bisector
// at p between the rays toward prev and next.
func bisectorDirection(p, prev, next geomkernel.Point) geomkernel.Vector {
	v1 := prev.Sub(p).Normalized()
	v2 := next.Sub(p).Normalized()
	sum := v1.Add(v2)
	if sum.Length() == 0 {
		return v1.Perpendicular()
	}
	return sum
}

// projectSnap returns the candidate projected points for site across
// edge e: the point itself for a point site, or up to two points for a
// segment site obtained by projecting e's geometric endpoints onto l and
// clamping the result into the segment's span.
func projectSnap(site svd.Site, l geomkernel.Line, e *svd.Edge) []geomkernel.Point {
	if site.IsPoint() {
		return []geomkernel.Point{site.Point}
	}
	var out []geomkernel.Point
	for _, ep := range primalEdgeEndpoints(e) {
		snapped := clampToSegment(l.Projection(ep), site.Segment)
		out = appendUniquePoint(out, snapped)
	}
	return out
}

func primalEdgeEndpoints(e *svd.Edge) []geomkernel.Point {
	switch e.Carrier {
	case svd.GeomSegment:
		return []geomkernel.Point{e.Seg.A, e.Seg.B}
	case svd.GeomRay:
		return []geomkernel.Point{e.RayOrigin}
	case svd.GeomParabola:
		return []geomkernel.Point{e.ParabolaStart, e.ParabolaEnd}
	default: // GeomLine
		return []geomkernel.Point{e.Line.Through}
	}
}

func edgeReferencePoint(e *svd.Edge) geomkernel.Point {
	switch e.Carrier {
	case svd.GeomSegment:
		return e.Seg.Midpoint()
	case svd.GeomRay:
		return e.RayOrigin.Add(e.RayDir)
	case svd.GeomParabola:
		return e.Focus
	default:
		return e.Line.Through
	}
}

func clampToSegment(p geomkernel.Point, seg geomkernel.Segment) geomkernel.Point {
	dir := seg.Vector()
	lenSq := dir.X*dir.X + dir.Y*dir.Y
	if lenSq == 0 {
		return seg.A
	}
	w := p.Sub(seg.A)
	t := (w.X*dir.X + w.Y*dir.Y) / lenSq
	switch {
	case t < 0:
		return seg.A
	case t > 1:
		return seg.B
	default:
		return p
	}
}

func appendUniquePoint(pts []geomkernel.Point, p geomkernel.Point) []geomkernel.Point {
	for _, q := range pts {
		if q.Equal(p) {
			return pts
		}
	}
	return append(pts, p)
}

// acuteAngle returns the acute angle in [0, pi/2] between two directions,
// treating them as undirected lines.
func acuteAngle(a, b geomkernel.Vector) float64 {
	angle := angleBetween(a, b)
	if angle > math.Pi/2 {
		angle = math.Pi - angle
	}
	return angle
}

func angleBetween(a, b geomkernel.Vector) float64 {
	denom := a.Length() * b.Length()
	if denom == 0 {
		return 0
	}
	cos := (a.X*b.X + a.Y*b.Y) / denom
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return math.Acos(cos)
}

// vertexAlignment measures how well the candidate pair (u, v) aligns with
// the local supporting lines at u and v: the sum of the angles between
// each point's outward normal (oriented toward the turn sign under which
// it was matched) and the segment joining the pair. A small value means
// the pair lines up with both points' local tangents; a large one means
// the match crosses the isolines at a sharp, unreliable angle.
func vertexAlignment(store *isoline.Store, u, v geomkernel.Point, uSide, vSide geomkernel.Orientation) float64 {
	nu := normalToward(store, u, uSide)
	nv := normalToward(store, v, vSide)
	uv := v.Sub(u)
	vu := u.Sub(v)
	return angleBetween(nu, uv) + angleBetween(nv, vu)
}

// normalToward returns the vector perpendicular to p's supporting line,
// oriented so it points toward the given turn sign's side.
func normalToward(store *isoline.Store, p geomkernel.Point, sign geomkernel.Orientation) geomkernel.Vector {
	l := supportingLineAtPoint(store, p)
	perp := l.Direction.Perpendicular()
	if geomkernel.OrientedSide(l, p.Add(perp)) == sign {
		return perp
	}
	return geomkernel.Vector{X: -perp.X, Y: -perp.Y}
}
