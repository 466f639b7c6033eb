package svd

import (
	"errors"

	"github.com/cartocrow/isosimplify/geomkernel"
)

// Sentinel errors for svd operations.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex handle
	// that is not (or no longer) part of the diagram.
	ErrVertexNotFound = errors.New("svd: vertex not found in diagram")

	// ErrSiteExists indicates an attempt to insert a site that already has
	// a vertex in the diagram (the same point, or the same segment with its
	// endpoints in either order).
	ErrSiteExists = errors.New("svd: site already present")
)

// SiteKind distinguishes point sites from segment sites.
type SiteKind int

const (
	// SitePoint is a single-point site (an isoline vertex).
	SitePoint SiteKind = iota
	// SiteSegment is a segment site (an isoline edge).
	SiteSegment
)

// Site is the geometric input a Vertex carries: either a point or a segment.
type Site struct {
	Kind    SiteKind
	Point   geomkernel.Point   // valid when Kind == SitePoint
	Segment geomkernel.Segment // valid when Kind == SiteSegment
}

// IsPoint reports whether the site is a point site.
func (s Site) IsPoint() bool { return s.Kind == SitePoint }

// IsSegment reports whether the site is a segment site.
func (s Site) IsSegment() bool { return s.Kind == SiteSegment }

// Representative returns the point used to place this site in the
// underlying Delaunay triangulation: the point itself for a point site, or
// the midpoint for a segment site.
func (s Site) Representative() geomkernel.Point {
	if s.IsPoint() {
		return s.Point
	}
	return s.Segment.Midpoint()
}

// key returns a canonical, hashable identity for the site.
func (s Site) key() siteKey {
	if s.IsPoint() {
		return siteKey{kind: SitePoint, p: s.Point}
	}
	return siteKey{kind: SiteSegment, seg: s.Segment.Key()}
}

type siteKey struct {
	kind SiteKind
	p    geomkernel.Point
	seg  geomkernel.Segment
}

// Vertex is a stable handle to one site in the diagram. Its identity
// (pointer) never changes across Insert/Remove calls on other sites; only
// removing the vertex itself invalidates it.
type Vertex struct {
	id        int
	site      Site
	neighbors map[*Vertex]*Edge
}

// Site returns the geometric site this vertex represents.
func (v *Vertex) Site() Site { return v.site }

// EdgeGeometry classifies the primal carrier of a Voronoi edge.
type EdgeGeometry int

const (
	// GeomSegment is a bounded straight segment.
	GeomSegment EdgeGeometry = iota
	// GeomRay is a half-infinite straight ray.
	GeomRay
	// GeomLine is a full infinite straight line.
	GeomLine
	// GeomParabola is a parabolic arc (focus + directrix); defined for
	// interface completeness, never produced by this package's triangulation
	// backend (see doc.go).
	GeomParabola
)

// Edge is one Voronoi edge between two incident sites.
type Edge struct {
	A, B *Vertex

	Carrier EdgeGeometry

	// Seg is populated when Carrier == GeomSegment.
	Seg geomkernel.Segment
	// Ray is populated when Carrier == GeomRay: a half-line from Origin in
	// direction Dir.
	RayOrigin geomkernel.Point
	RayDir    geomkernel.Vector
	// Line is populated when Carrier == GeomLine.
	Line geomkernel.Line

	// Parabola fields, populated only if a future backend emits GeomParabola.
	Focus         geomkernel.Point
	DirectrixA    geomkernel.Point
	DirectrixB    geomkernel.Point
	ParabolaStart geomkernel.Point
	ParabolaEnd   geomkernel.Point
}

// Other returns the endpoint of e that is not v.
func (e *Edge) Other(v *Vertex) *Vertex {
	if e.A == v {
		return e.B
	}
	return e.A
}

// Face is a proxy for an SVD face incident to a vertex: the set of
// triangulation corners (Delaunay-dual) touching it. For this
// representative-point backend, a face corresponds to one Delaunay
// triangle incident to the vertex.
type Face struct {
	Vertices [3]*Vertex
}
