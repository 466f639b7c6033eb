package svd

import (
	"github.com/cartocrow/isosimplify/geomkernel"
)

// Diagram is a dynamic segment Voronoi diagram. See the package doc for the
// triangulation-based construction this implementation uses.
type Diagram struct {
	vertices map[siteKey]*Vertex
	nextID   int
	faces    []triangle
}

// NewDiagram returns an empty diagram.
func NewDiagram() *Diagram {
	return &Diagram{vertices: make(map[siteKey]*Vertex)}
}

// InsertPoint inserts a point site and returns its new vertex handle.
func (d *Diagram) InsertPoint(p geomkernel.Point) (*Vertex, error) {
	site := Site{Kind: SitePoint, Point: p}
	return d.insert(site)
}

// InsertSegment inserts a segment site between a and b. hint, when
// non-nil, is accepted for interface parity with a true incremental SVD
// (where it seeds the search for the insertion point); this rebuild-based
// backend does not need it.
func (d *Diagram) InsertSegment(a, b geomkernel.Point, hint *Vertex) (*Vertex, error) {
	seg, err := geomkernel.NewSegment(a, b)
	if err != nil {
		return nil, err
	}
	site := Site{Kind: SiteSegment, Segment: seg.Key()}
	_ = hint
	return d.insert(site)
}

func (d *Diagram) insert(site Site) (*Vertex, error) {
	key := site.key()
	if _, exists := d.vertices[key]; exists {
		return nil, ErrSiteExists
	}
	d.nextID++
	v := &Vertex{id: d.nextID, site: site, neighbors: make(map[*Vertex]*Edge)}
	d.vertices[key] = v
	d.rebuild()
	return v, nil
}

// Remove deletes the site behind v from the diagram.
func (d *Diagram) Remove(v *Vertex) error {
	key := v.site.key()
	if _, ok := d.vertices[key]; !ok {
		return ErrVertexNotFound
	}
	delete(d.vertices, key)
	d.rebuild()
	v.neighbors = nil
	return nil
}

// IncidentEdges returns the Voronoi edges incident to v.
func (d *Diagram) IncidentEdges(v *Vertex) []*Edge {
	edges := make([]*Edge, 0, len(v.neighbors))
	for _, e := range v.neighbors {
		edges = append(edges, e)
	}
	return edges
}

// IncidentVertices returns the sites adjacent to v in the diagram.
func (d *Diagram) IncidentVertices(v *Vertex) []*Vertex {
	out := make([]*Vertex, 0, len(v.neighbors))
	for n := range v.neighbors {
		out = append(out, n)
	}
	return out
}

// Vertices returns every vertex currently in the diagram, in no particular
// order.
func (d *Diagram) Vertices() []*Vertex {
	out := make([]*Vertex, 0, len(d.vertices))
	for _, v := range d.vertices {
		out = append(out, v)
	}
	return out
}

// Edges returns every Voronoi edge in the diagram exactly once.
func (d *Diagram) Edges() []*Edge {
	seen := make(map[*Edge]bool)
	var out []*Edge
	for _, v := range d.vertices {
		for _, e := range v.neighbors {
			if !seen[e] {
				seen[e] = true
				out = append(out, e)
			}
		}
	}
	return out
}

// IncidentFaces returns the triangulation faces (Delaunay-dual proxies)
// incident to v.
func (d *Diagram) IncidentFaces(v *Vertex) []*Face {
	var out []*Face
	for _, t := range d.faces {
		if t.v[0] == v || t.v[1] == v || t.v[2] == v {
			tc := t
			out = append(out, &Face{Vertices: tc.v})
		}
	}
	return out
}

// rebuild recomputes the full adjacency structure from the current site
// set. Existing *Vertex objects are reused (only their neighbor maps are
// replaced), so handles held elsewhere remain valid.
func (d *Diagram) rebuild() {
	pts := make([]*Vertex, 0, len(d.vertices))
	for _, v := range d.vertices {
		v.neighbors = make(map[*Vertex]*Edge)
		pts = append(pts, v)
	}

	tris := bowyerWatson(pts)
	d.faces = tris

	if len(tris) == 0 {
		for _, pair := range chainAdjacency(pts) {
			a, b := pair[0], pair[1]
			edge := lineBisectorEdge(a, b)
			a.neighbors[b] = edge
			b.neighbors[a] = edge
		}
		return
	}

	type vpair struct{ a, b *Vertex }
	canon := func(a, b *Vertex) vpair {
		if a.id > b.id {
			return vpair{b, a}
		}
		return vpair{a, b}
	}
	adjTris := make(map[vpair][]triangle)
	for _, t := range tris {
		edges := [3]vpair{
			canon(t.v[0], t.v[1]),
			canon(t.v[1], t.v[2]),
			canon(t.v[2], t.v[0]),
		}
		for _, e := range edges {
			adjTris[e] = append(adjTris[e], t)
		}
	}

	for e, ts := range adjTris {
		var edge *Edge
		switch len(ts) {
		case 2:
			c1 := circumcenter(ts[0].v[0].site.Representative(), ts[0].v[1].site.Representative(), ts[0].v[2].site.Representative())
			c2 := circumcenter(ts[1].v[0].site.Representative(), ts[1].v[1].site.Representative(), ts[1].v[2].site.Representative())
			if c1.Equal(c2) {
				edge = lineBisectorEdge(e.a, e.b)
			} else {
				edge = &Edge{A: e.a, B: e.b, Carrier: GeomSegment, Seg: geomkernel.Segment{A: c1, B: c2}}
			}
		case 1:
			c := circumcenter(ts[0].v[0].site.Representative(), ts[0].v[1].site.Representative(), ts[0].v[2].site.Representative())
			third := thirdCorner(ts[0], e.a, e.b)
			dir := outwardPerpendicular(e.a.site.Representative(), e.b.site.Representative(), third.site.Representative())
			edge = &Edge{A: e.a, B: e.b, Carrier: GeomRay, RayOrigin: c, RayDir: dir}
		default:
			continue
		}
		e.a.neighbors[e.b] = edge
		e.b.neighbors[e.a] = edge
	}
}

// lineBisectorEdge builds a GeomLine Voronoi edge: the full perpendicular
// bisector of the segment joining a and b's representative points.
func lineBisectorEdge(a, b *Vertex) *Edge {
	pa, pb := a.site.Representative(), b.site.Representative()
	mid := geomkernel.Point{X: (pa.X + pb.X) / 2, Y: (pa.Y + pb.Y) / 2}
	dir := pb.Sub(pa).Perpendicular()
	return &Edge{A: a, B: b, Carrier: GeomLine, Line: geomkernel.Line{Through: mid, Direction: dir}}
}

func thirdCorner(t triangle, a, b *Vertex) *Vertex {
	for _, v := range t.v {
		if v != a && v != b {
			return v
		}
	}
	return t.v[0]
}

// outwardPerpendicular returns the direction perpendicular to (b-a) that
// points away from third, i.e. away from the triangle's interior.
func outwardPerpendicular(a, b, third geomkernel.Point) geomkernel.Vector {
	dir := b.Sub(a)
	perp := dir.Perpendicular()
	toThird := third.Sub(a)
	if perp.X*toThird.X+perp.Y*toThird.Y > 0 {
		return geomkernel.Vector{X: -perp.X, Y: -perp.Y}
	}
	return perp
}
