package svd

import (
	"math"

	"github.com/cartocrow/isosimplify/geomkernel"
)

// triangle is a Delaunay triangle over three site vertices, identified by
// the representative points of those vertices.
type triangle struct {
	v [3]*Vertex
}

// bowyerWatson computes a Delaunay triangulation of the representative
// points of pts using the standard incremental insertion algorithm. When
// the input is degenerate (fewer than three vertices, or all collinear),
// it returns no triangles; the caller falls back to chainAdjacency.
func bowyerWatson(pts []*Vertex) []triangle {
	if len(pts) < 3 {
		return nil
	}

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, v := range pts {
		p := v.site.Representative()
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	dx, dy := maxX-minX, maxY-minY
	deltaMax := math.Max(dx, dy)
	if deltaMax == 0 {
		deltaMax = 1
	}
	midX, midY := (minX+maxX)/2, (minY+maxY)/2

	// Super-triangle large enough to enclose every input point. Negative IDs
	// keep them distinct from every real site (which is assigned a positive
	// ID by Diagram), so the edge-canonicalization below never ties.
	superA := &Vertex{id: -1, site: Site{Kind: SitePoint, Point: geomkernel.Point{X: midX - 20*deltaMax, Y: midY - deltaMax}}}
	superB := &Vertex{id: -2, site: Site{Kind: SitePoint, Point: geomkernel.Point{X: midX, Y: midY + 20*deltaMax}}}
	superC := &Vertex{id: -3, site: Site{Kind: SitePoint, Point: geomkernel.Point{X: midX + 20*deltaMax, Y: midY - deltaMax}}}

	tris := []triangle{{v: [3]*Vertex{superA, superB, superC}}}

	for _, p := range pts {
		tris = insertPointBW(tris, p)
	}

	// Discard triangles sharing a corner with the super-triangle.
	out := make([]triangle, 0, len(tris))
	isSuper := func(v *Vertex) bool { return v == superA || v == superB || v == superC }
	for _, t := range tris {
		if isSuper(t.v[0]) || isSuper(t.v[1]) || isSuper(t.v[2]) {
			continue
		}
		if isDegenerate(t) {
			continue
		}
		out = append(out, t)
	}
	return out
}

func isDegenerate(t triangle) bool {
	a := t.v[0].site.Representative()
	b := t.v[1].site.Representative()
	c := t.v[2].site.Representative()
	return geomkernel.Orient(a, b, c) == geomkernel.Collinear
}

// insertPointBW inserts p into the triangulation tris, removing triangles
// whose circumcircle contains p and retriangulating the resulting cavity.
func insertPointBW(tris []triangle, p *Vertex) []triangle {
	pt := p.site.Representative()

	var bad []triangle
	var good []triangle
	for _, t := range tris {
		if inCircumcircle(t, pt) {
			bad = append(bad, t)
		} else {
			good = append(good, t)
		}
	}

	type edge struct{ a, b *Vertex }
	edgeCount := map[edge]int{}
	canon := func(a, b *Vertex) edge {
		if a.id > b.id {
			return edge{b, a}
		}
		return edge{a, b}
	}
	for _, t := range bad {
		edges := [3]edge{
			canon(t.v[0], t.v[1]),
			canon(t.v[1], t.v[2]),
			canon(t.v[2], t.v[0]),
		}
		for _, e := range edges {
			edgeCount[e]++
		}
	}

	for e, count := range edgeCount {
		if count == 1 {
			good = append(good, triangle{v: [3]*Vertex{e.a, e.b, p}})
		}
	}

	return good
}

// inCircumcircle reports whether pt lies strictly inside the circumcircle
// of t, using the standard determinant-based incircle test.
func inCircumcircle(t triangle, pt geomkernel.Point) bool {
	a := t.v[0].site.Representative()
	b := t.v[1].site.Representative()
	c := t.v[2].site.Representative()

	// Ensure a, b, c are counter-clockwise for the determinant sign to be
	// meaningful.
	if geomkernel.Orient(a, b, c) == geomkernel.Right {
		a, b = b, a
	}

	ax, ay := a.X-pt.X, a.Y-pt.Y
	bx, by := b.X-pt.X, b.Y-pt.Y
	cx, cy := c.X-pt.X, c.Y-pt.Y

	det := (ax*ax+ay*ay)*(bx*cy-cx*by) -
		(bx*bx+by*by)*(ax*cy-cx*ay) +
		(cx*cx+cy*cy)*(ax*by-bx*ay)

	return det > 1e-9
}

// circumcenter computes the circumcenter of the triangle formed by a, b, c.
// Callers must ensure they are not collinear.
func circumcenter(a, b, c geomkernel.Point) geomkernel.Point {
	d := 2 * (a.X*(b.Y-c.Y) + b.X*(c.Y-a.Y) + c.X*(a.Y-b.Y))
	ux := ((a.X*a.X+a.Y*a.Y)*(b.Y-c.Y) + (b.X*b.X+b.Y*b.Y)*(c.Y-a.Y) + (c.X*c.X+c.Y*c.Y)*(a.Y-b.Y)) / d
	uy := ((a.X*a.X+a.Y*a.Y)*(c.X-b.X) + (b.X*b.X+b.Y*b.Y)*(a.X-c.X) + (c.X*c.X+c.Y*c.Y)*(b.X-a.X)) / d
	return geomkernel.Point{X: ux, Y: uy}
}

// chainAdjacency handles the degenerate case where bowyerWatson produced no
// triangles (fewer than 3 sites, or every representative point collinear):
// it connects sites consecutively along their dominant axis, each pair
// sharing a perpendicular-bisector Line edge. This keeps the diagram usable
// (every site has at least its nearest neighbours) for inputs such as a
// single straight isoline, whose point sites and segment midpoints are
// all collinear.
func chainAdjacency(pts []*Vertex) [][2]*Vertex {
	if len(pts) < 2 {
		return nil
	}
	sorted := make([]*Vertex, len(pts))
	copy(sorted, pts)

	// Sort by representative point along X then Y for a stable ordering.
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0; j-- {
			pi := sorted[j].site.Representative()
			pj := sorted[j-1].site.Representative()
			if pi.X < pj.X || (pi.X == pj.X && pi.Y < pj.Y) {
				sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
			} else {
				break
			}
		}
	}

	pairs := make([][2]*Vertex, 0, len(sorted)-1)
	for i := 0; i+1 < len(sorted); i++ {
		pairs = append(pairs, [2]*Vertex{sorted[i], sorted[i+1]})
	}
	return pairs
}
