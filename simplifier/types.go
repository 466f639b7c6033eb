package simplifier

import (
	"errors"

	"github.com/cartocrow/isosimplify/geomkernel"
	"github.com/cartocrow/isosimplify/heapqueue"
	"github.com/cartocrow/isosimplify/isoline"
	"github.com/cartocrow/isosimplify/ladder"
	"github.com/cartocrow/isosimplify/matching"
	"github.com/cartocrow/isosimplify/svd"
)

// ErrInvalidTarget indicates Simplify was called with a negative target vertex count.
var ErrInvalidTarget = errors.New("simplifier: target vertex count must be >= 0")

// rungKey canonically identifies an edge for the edgeToIntersectsLadders
// and edgeToVertex indices, independent of which endpoint is named first.
type rungKey struct{ a, b geomkernel.Point }

func keyOf(a, b geomkernel.Point) rungKey {
	if a.X > b.X || (a.X == b.X && a.Y > b.Y) {
		a, b = b, a
	}
	return rungKey{a, b}
}

// Simplifier is the driver described by the package doc. It owns the
// isoline store, the segment Voronoi diagram, the matching graph, the
// ladder priority queue, and every auxiliary index between them.
type Simplifier struct {
	cfg   Config
	store *isoline.Store
	d     *svd.Diagram
	g     *matching.Graph
	queue *heapqueue.Queue

	pointToVertex map[geomkernel.Point]*svd.Vertex
	edgeToVertex  map[rungKey]*svd.Vertex

	handles        map[*ladder.Ladder]*heapqueue.Handle
	// edgeToIntersectsLadders maps a removed-site key (an edge's rungKey,
	// or a point's rungKey{p,p}) to the ladders that were deferred because
	// their replacement crossed or swept over that exact site. When the
	// site is later removed by some other collapse, these ladders are
	// revived: see reviveLadders.
	edgeToIntersectsLadders map[rungKey][]*ladder.Ladder
	pointToLadders          map[geomkernel.Point][]*ladder.Ladder

	vertexCount int
}

// VertexCount returns the current number of points across all isolines.
func (s *Simplifier) VertexCount() int { return s.vertexCount }

// Store exposes the underlying isoline store for inspection (e.g. by a
// caller rendering intermediate state).
func (s *Simplifier) Store() *isoline.Store { return s.store }

// Diagram exposes the underlying segment Voronoi diagram.
func (s *Simplifier) Diagram() *svd.Diagram { return s.d }

// Matching exposes the current matching graph.
func (s *Simplifier) Matching() *matching.Graph { return s.g }

// LadderCount returns the number of ladders currently tracked in the
// priority queue. Ladders that NextLadder defers are reinserted before it
// returns, so they are counted.
func (s *Simplifier) LadderCount() int { return len(s.handles) }
