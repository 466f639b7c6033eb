package topology

import (
	"github.com/cartocrow/isosimplify/geomkernel"
	"github.com/cartocrow/isosimplify/svd"
)

// CheckSweepOver reports whether replacing original (one of the chain's
// edges st, tu, or uv) with replacement (sp or pv) would sweep over a
// vertex of another isoline: a point site that is not in allowed, lies in
// the region whose SVD edges intersect replacement, and falls on the
// opposite side of replacement from the side it was on relative to
// original. Such a point would silently change which region of the
// isoline it belongs to, without any edge literally crossing it.
//
// It returns the offending point, or ok=false if the region contains no
// such witness.
func CheckSweepOver(d *svd.Diagram, original, replacement geomkernel.Segment, anchor *svd.Vertex, allowed map[*svd.Vertex]bool) (geomkernel.Point, bool) {
	if anchor == nil {
		return geomkernel.Point{}, false
	}

	for v := range floodIntersecting(d, replacement, anchor) {
		if allowed[v] {
			continue
		}
		site := v.Site()
		if !site.IsPoint() {
			continue
		}
		p := site.Point

		before := geomkernel.Orient(original.A, original.B, p)
		after := geomkernel.Orient(replacement.A, replacement.B, p)
		if before != geomkernel.Collinear && after != geomkernel.Collinear && before != after {
			return p, true
		}
	}

	return geomkernel.Point{}, false
}

// floodIntersecting grows the set of SVD vertices reachable from anchor
// by walking only edges whose primal geometry intersects seg.
func floodIntersecting(d *svd.Diagram, seg geomkernel.Segment, anchor *svd.Vertex) map[*svd.Vertex]bool {
	visited := map[*svd.Vertex]bool{anchor: true}
	queue := []*svd.Vertex{anchor}

	for len(queue) > 0 && len(visited) <= maxFloodVertices {
		v := queue[0]
		queue = queue[1:]

		for _, e := range d.IncidentEdges(v) {
			if !edgeIntersectsSegment(e, seg) {
				continue
			}
			other := e.Other(v)
			if !visited[other] {
				visited[other] = true
				queue = append(queue, other)
			}
		}
	}

	return visited
}

// edgeIntersectsSegment tests e's primal geometry against seg, extending
// unbounded carriers (ray, line) to a long finite probe segment since
// geomkernel only tests bounded segments.
func edgeIntersectsSegment(e *svd.Edge, seg geomkernel.Segment) bool {
	const farReach = 1e6

	switch e.Carrier {
	case svd.GeomSegment:
		return geomkernel.SegmentIntersection(e.Seg, seg).Kind != geomkernel.NoIntersection
	case svd.GeomRay:
		probe, err := geomkernel.NewSegment(e.RayOrigin, e.RayOrigin.Add(e.RayDir.Scale(farReach)))
		if err != nil {
			return false
		}
		return geomkernel.SegmentIntersection(probe, seg).Kind != geomkernel.NoIntersection
	case svd.GeomLine:
		a := e.Line.Through.Add(e.Line.Direction.Scale(-farReach))
		b := e.Line.Through.Add(e.Line.Direction.Scale(farReach))
		probe, err := geomkernel.NewSegment(a, b)
		if err != nil {
			return false
		}
		return geomkernel.SegmentIntersection(probe, seg).Kind != geomkernel.NoIntersection
	default: // GeomParabola: never produced by this module's SVD backend.
		return false
	}
}
