package isoline

import (
	"errors"

	"github.com/cartocrow/isosimplify/geomkernel"
)

// Sentinel errors for isoline store operations.
var (
	// ErrEmptyIsoline indicates an isoline was supplied with fewer than two points.
	ErrEmptyIsoline = errors.New("isoline: isoline has fewer than two points")

	// ErrSharedPoint indicates the same point coordinates appear in more than one isoline.
	ErrSharedPoint = errors.New("isoline: point belongs to more than one isoline")

	// ErrUnknownPoint indicates an operation referenced a point not present in the store.
	ErrUnknownPoint = errors.New("isoline: point not found in store")

	// ErrThreeVertexIsoline indicates an attempted collapse on a closed
	// isoline with only three vertices, which cannot lose another vertex
	// without degenerating (see ladder.AreaPreservationLine).
	ErrThreeVertexIsoline = errors.New("isoline: cannot simplify a closed isoline of three vertices")
)

// Input is the external representation of one polyline or polygon, as
// returned by the loadIsolines collaborator (see the loader package):
// an ordered vertex sequence plus whether it is closed.
type Input struct {
	Points []geomkernel.Point
	Closed bool
}

// Isoline is one polyline or polygon tracked by a Store. Its ordered point
// sequence is available via Store.Points; Isoline itself is an opaque
// handle identifying which sequence a point belongs to.
type Isoline struct {
	id     int
	closed bool
}

// ID returns a stable identifier for the isoline, unique within its Store.
func (l *Isoline) ID() int { return l.id }

// Closed reports whether the isoline is a closed polygon.
func (l *Isoline) Closed() bool { return l.closed }
