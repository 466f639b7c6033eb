package ladder

import (
	"errors"
	"math"

	"github.com/cartocrow/isosimplify/geomkernel"
)

// Sentinel errors for ladder operations.
var (
	// ErrNoRungs indicates an operation was attempted on a ladder with no rungs.
	ErrNoRungs = errors.New("ladder: ladder has no rungs")

	// ErrThreeVertexIsoline mirrors isoline.ErrThreeVertexIsoline for
	// callers that only depend on this package: a rung whose prev(t) and
	// next(u) coincide cannot be area-preservingly collapsed.
	ErrThreeVertexIsoline = errors.New("ladder: rung's isoline has only three vertices")

	// ErrMissingNeighbour indicates a rung's prev(t) or next(u) is undefined.
	ErrMissingNeighbour = errors.New("ladder: rung endpoint has no neighbour")
)

// Rung is one matched edge participating in a ladder: t is the source,
// u the target, with next(t) == u on their shared isoline.
type Rung struct {
	T, U geomkernel.Point
}

// Ladder is a bundle of rungs, at most one per isoline, collapsed
// together as a single candidate edit.
type Ladder struct {
	Rungs []Rung

	// CapFront/CapBack are the cap points terminating the ladder on each
	// side, or nil if that side ran out of matched neighbours without
	// capping.
	CapFront, CapBack *geomkernel.Point

	// Valid is false when some rung's neighbours are not both defined;
	// an invalid ladder always costs +Inf and is never collapsed.
	Valid bool
	// Intersects caches a positive result from the SVD intersection
	// check; it stays set until the driver clears it after a site that
	// blocked the collapse is removed.
	Intersects bool
	// Old marks a ladder invalidated by a past collapse; it may still sit
	// in the priority queue and is discarded, not reused, when popped.
	Old bool

	// Collapsed holds the per-rung replacement point, parallel to Rungs.
	Collapsed []geomkernel.Point
	Cost      float64
}

// NewLadder returns a single-rung ladder seeded from (t, u), uncapped on
// both sides and marked valid; callers normally obtain ladders through
// CreateSlopeLadder rather than directly.
func NewLadder(t, u geomkernel.Point) *Ladder {
	return &Ladder{Rungs: []Rung{{T: t, U: u}}, Valid: true, Cost: math.Inf(1)}
}

// Len returns the number of rungs.
func (l *Ladder) Len() int { return len(l.Rungs) }
