package topology

import (
	"github.com/cartocrow/isosimplify/geomkernel"
	"github.com/cartocrow/isosimplify/svd"
)

// CheckSegmentIntersections walks the SVD outward from anchor, looking
// for a segment site that crosses seg. Vertices in allowed are not
// reported even if their site crosses seg (the collapse is already known
// to remove or replace them), but the walk still continues through them
// so vertices beyond an allowed crossing are still reached.
//
// It returns the first offending segment found, or ok=false if none is
// within the flood.
func CheckSegmentIntersections(d *svd.Diagram, seg geomkernel.Segment, anchor *svd.Vertex, allowed map[*svd.Vertex]bool) (witness geomkernel.Segment, ok bool) {
	if anchor == nil {
		return geomkernel.Segment{}, false
	}

	visited := map[*svd.Vertex]bool{anchor: true}
	queue := []*svd.Vertex{anchor}

	for len(queue) > 0 && len(visited) <= maxFloodVertices {
		v := queue[0]
		queue = queue[1:]

		for _, n := range d.IncidentVertices(v) {
			if visited[n] {
				continue
			}
			visited[n] = true

			if site := n.Site(); site.IsSegment() {
				if res := geomkernel.SegmentIntersection(seg, site.Segment); res.Kind != geomkernel.NoIntersection {
					if !allowed[n] {
						return site.Segment, true
					}
				}
			}
			queue = append(queue, n)
		}
	}

	return geomkernel.Segment{}, false
}

// CheckSegmentIntersectionsNaive scans every segment site in the diagram
// directly; it is available as a reference implementation but unused by
// the driver's main loop, which prefers the SVD-guided walk above.
func CheckSegmentIntersectionsNaive(d *svd.Diagram, seg geomkernel.Segment, allowed map[*svd.Vertex]bool) (witness geomkernel.Segment, ok bool) {
	for _, v := range d.Vertices() {
		if allowed[v] {
			continue
		}
		site := v.Site()
		if !site.IsSegment() {
			continue
		}
		if res := geomkernel.SegmentIntersection(seg, site.Segment); res.Kind != geomkernel.NoIntersection {
			return site.Segment, true
		}
	}
	return geomkernel.Segment{}, false
}
