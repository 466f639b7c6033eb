package matching

import (
	"sort"

	"github.com/cartocrow/isosimplify/geomkernel"
)

// Graph is the matching graph: a symmetric relation among isoline points,
// keyed first by point, then by the turn sign under which the match was
// made, then by the isoline the matched points belong to.
type Graph struct {
	m map[geomkernel.Point]map[geomkernel.Orientation]map[int][]geomkernel.Point
}

// NewGraph returns an empty matching graph.
func NewGraph() *Graph {
	return &Graph{m: make(map[geomkernel.Point]map[geomkernel.Orientation]map[int][]geomkernel.Point)}
}

// Matches returns p's full entry: turn sign -> isoline ID -> matched
// points. The returned map must not be mutated; it is nil if p has no
// matches.
func (g *Graph) Matches(p geomkernel.Point) map[geomkernel.Orientation]map[int][]geomkernel.Point {
	return g.m[p]
}

// Points returns every point that has at least one recorded match.
func (g *Graph) Points() []geomkernel.Point {
	out := make([]geomkernel.Point, 0, len(g.m))
	for p := range g.m {
		out = append(out, p)
	}
	return out
}

// add records that p matches q on the given turn sign, with q attributed
// to isoline isoID.
func (g *Graph) add(p geomkernel.Point, sign geomkernel.Orientation, isoID int, q geomkernel.Point) {
	bySign, ok := g.m[p]
	if !ok {
		bySign = make(map[geomkernel.Orientation]map[int][]geomkernel.Point)
		g.m[p] = bySign
	}
	byIso, ok := bySign[sign]
	if !ok {
		byIso = make(map[int][]geomkernel.Point)
		bySign[sign] = byIso
	}
	byIso[isoID] = append(byIso[isoID], q)
}

// MergeFrom folds every entry of other into g, used when a local
// re-resolution (after an edit to the diagram) needs to add its findings
// to the surviving part of the graph.
func (g *Graph) MergeFrom(other *Graph) {
	for p, bySign := range other.m {
		for sign, byIso := range bySign {
			for isoID, pts := range byIso {
				for _, q := range pts {
					g.add(p, sign, isoID, q)
				}
			}
		}
	}
	g.dedupSort()
}

// Delete removes every matching entry keyed by a point in victims, and
// also scrubs victims out of every surviving bucket, so a removed point
// can never still be pointed at from a point that remains in the graph.
func (g *Graph) Delete(victims map[geomkernel.Point]bool) {
	for p := range victims {
		delete(g.m, p)
	}
	for p, bySign := range g.m {
		for sign, byIso := range bySign {
			for isoID, pts := range byIso {
				filtered := pts[:0]
				for _, q := range pts {
					if !victims[q] {
						filtered = append(filtered, q)
					}
				}
				if len(filtered) == 0 {
					delete(byIso, isoID)
				} else {
					byIso[isoID] = filtered
				}
			}
			if len(byIso) == 0 {
				delete(bySign, sign)
			}
		}
		if len(bySign) == 0 {
			delete(g.m, p)
		}
	}
}

// dedupSort sorts and deduplicates every leaf bucket, per the resolver's
// post-processing step.
func (g *Graph) dedupSort() {
	for _, bySign := range g.m {
		for _, byIso := range bySign {
			for isoID, pts := range byIso {
				byIso[isoID] = sortUniquePoints(pts)
			}
		}
	}
}

func sortUniquePoints(pts []geomkernel.Point) []geomkernel.Point {
	sort.Slice(pts, func(i, j int) bool {
		if pts[i].X != pts[j].X {
			return pts[i].X < pts[j].X
		}
		return pts[i].Y < pts[j].Y
	})
	out := pts[:0]
	for i, p := range pts {
		if i == 0 || !p.Equal(out[len(out)-1]) {
			out = append(out, p)
		}
	}
	return out
}
