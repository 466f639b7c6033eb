package simplifier

import (
	"fmt"
	"math"
	"os"

	"github.com/davecgh/go-spew/spew"

	"github.com/cartocrow/isosimplify/geomkernel"
	"github.com/cartocrow/isosimplify/heapqueue"
	"github.com/cartocrow/isosimplify/isoline"
	"github.com/cartocrow/isosimplify/ladder"
	"github.com/cartocrow/isosimplify/matching"
	"github.com/cartocrow/isosimplify/svd"
	"github.com/cartocrow/isosimplify/topology"
)

// New cleans raw input, builds the isoline store, the initial segment
// Voronoi diagram and matching graph, and seeds the ladder queue from
// every edge in the store. The returned Simplifier is ready to drive with
// Step or Simplify.
func New(inputs []isoline.Input, opts ...Option) (*Simplifier, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	store, err := isoline.NewStore(isoline.Clean(inputs))
	if err != nil {
		return nil, err
	}

	d, pointToVertex, edgeToVertex, err := buildDiagram(store)
	if err != nil {
		return nil, err
	}

	s := &Simplifier{
		cfg:           cfg,
		store:         store,
		d:             d,
		g:             matching.Resolve(d, store, cfg.AngleFilter, cfg.AlignmentFilter),
		queue:         heapqueue.New(),
		pointToVertex: pointToVertex,
		edgeToVertex:  edgeToVertex,

		handles:                 make(map[*ladder.Ladder]*heapqueue.Handle),
		edgeToIntersectsLadders: make(map[rungKey][]*ladder.Ladder),
		pointToLadders:          make(map[geomkernel.Point][]*ladder.Ladder),

		vertexCount: store.VertexCount(),
	}

	s.seedAllLadders()
	return s, nil
}

// buildDiagram inserts a point site for every isoline vertex and a segment
// site for every isoline edge, recording each inserted vertex's handle so
// later edits can find it again.
func buildDiagram(store *isoline.Store) (*svd.Diagram, map[geomkernel.Point]*svd.Vertex, map[rungKey]*svd.Vertex, error) {
	d := svd.NewDiagram()
	pointToVertex := make(map[geomkernel.Point]*svd.Vertex)
	edgeToVertex := make(map[rungKey]*svd.Vertex)

	for _, iso := range store.Isolines() {
		pts := store.Points(iso)
		for _, p := range pts {
			if _, ok := pointToVertex[p]; ok {
				continue
			}
			v, err := d.InsertPoint(p)
			if err != nil {
				return nil, nil, nil, err
			}
			pointToVertex[p] = v
		}

		n := len(pts)
		limit := n - 1
		if iso.Closed() {
			limit = n
		}
		for i := 0; i < limit; i++ {
			a, b := pts[i], pts[(i+1)%n]
			v, err := d.InsertSegment(a, b, nil)
			if err != nil {
				return nil, nil, nil, err
			}
			edgeToVertex[keyOf(a, b)] = v
		}
	}

	return d, pointToVertex, edgeToVertex, nil
}

// Simplify drives Step until the store's vertex count falls to target or
// below, or no valid ladder remains. It returns true if the target was
// reached.
func (s *Simplifier) Simplify(target int) (bool, error) {
	if target < 0 {
		return false, ErrInvalidTarget
	}
	for s.vertexCount > target {
		ok, err := s.Step()
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}
	return true, nil
}

// Step pops the cheapest valid ladder and collapses it, returning false
// if the queue is exhausted of valid ladders.
func (s *Simplifier) Step() (bool, error) {
	l, ok := s.NextLadder()
	if !ok {
		return false, nil
	}
	if err := s.collapseLadder(l); err != nil {
		return false, err
	}
	if s.cfg.Debug {
		fmt.Fprintf(os.Stderr, "simplifier: step done, %d vertices remain, cost %.6g\n", s.vertexCount, l.Cost)
	}
	return true, nil
}

// NextLadder pops ladders off the queue, discarding ones invalidated since
// they were pushed, until it finds one still live or the queue empties.
// A ladder whose replacement currently crosses or sweeps over other
// geometry (Intersects) is not discarded: it is deferred to a side list
// and reinserted, with a fresh handle, before this call returns, so a
// later collapse that removes the blocking site can still revive it (see
// reviveLadders). Only Old or structurally !Valid ladders are dropped for
// good.
func (s *Simplifier) NextLadder() (*ladder.Ladder, bool) {
	var deferred []*ladder.Ladder
	defer func() {
		for _, l := range deferred {
			s.handles[l] = s.queue.Push(l, l.Cost)
		}
	}()

	for {
		v, _, ok := s.queue.Pop()
		if !ok {
			return nil, false
		}
		l := v.(*ladder.Ladder)
		delete(s.handles, l)
		if l.Old || !l.Valid {
			continue
		}
		if l.Intersects {
			deferred = append(deferred, l)
			continue
		}
		return l, true
	}
}

// seedAllLadders builds one ladder per distinct isoline edge, deduplicated
// by edge identity since a seed and its reverse describe the same rung.
func (s *Simplifier) seedAllLadders() {
	seen := make(map[rungKey]bool)
	for _, iso := range s.store.Isolines() {
		pts := s.store.Points(iso)
		n := len(pts)
		limit := n - 1
		if iso.Closed() {
			limit = n
		}
		for i := 0; i < limit; i++ {
			s.seedLadder(pts[i], pts[(i+1)%n], seen)
		}
	}
}

func (s *Simplifier) seedLadder(t, u geomkernel.Point, seen map[rungKey]bool) {
	k := keyOf(t, u)
	if seen[k] {
		return
	}
	seen[k] = true
	s.buildAndEnqueue(t, u)
}

// buildAndEnqueue grows, evaluates and indexes a ladder seeded at (t, u).
func (s *Simplifier) buildAndEnqueue(t, u geomkernel.Point) *ladder.Ladder {
	l := ladder.CreateSlopeLadder(s.g, s.store, t, u)
	s.evaluate(l)
	h := s.queue.Push(l, l.Cost)
	s.handles[l] = h
	s.indexLadder(l)
	return l
}

// evaluate fills in a freshly built ladder's collapsed points, its
// topology-intersection flag, and its cost, in that order; each gate
// short-circuits the next on failure.
func (s *Simplifier) evaluate(l *ladder.Ladder) {
	if !l.Valid {
		l.Cost = math.Inf(1)
		return
	}
	if !ladder.ComputeCollapsed(l, s.store.Prev, s.store.Next, s.cfg.Policy) {
		l.Valid = false
		l.Cost = math.Inf(1)
		return
	}
	witnesses := s.intersectWitnesses(l)
	l.Intersects = len(witnesses) > 0
	ladder.ComputeCost(l, s.store.Prev, s.store.Next)
	if l.Intersects {
		l.Cost = math.Inf(1)
		s.indexIntersectWitnesses(l, witnesses)
	}
}

// intersectWitnesses checks, for every rung, whether replacing its two
// flanking edges with the collapsed point's edges would cross or sweep
// over another isoline's geometry, and returns the key of every site
// caught doing so. The rungs' own endpoints are exempted via allowed,
// since they are what the collapse is about to remove.
func (s *Simplifier) intersectWitnesses(l *ladder.Ladder) []rungKey {
	allowed := make(map[*svd.Vertex]bool)
	for _, rung := range l.Rungs {
		if v, ok := s.pointToVertex[rung.T]; ok {
			allowed[v] = true
		}
		if v, ok := s.pointToVertex[rung.U]; ok {
			allowed[v] = true
		}
	}

	var keys []rungKey
	for i, rung := range l.Rungs {
		sp, ok := s.store.Prev(rung.T)
		if !ok {
			continue
		}
		vp, ok := s.store.Next(rung.U)
		if !ok {
			continue
		}
		p := l.Collapsed[i]

		keys = append(keys, s.sideWitnesses(sp, rung.T, p, allowed)...)
		keys = append(keys, s.sideWitnesses(vp, rung.U, p, allowed)...)
	}
	return keys
}

// sideWitnesses checks the single replacement edge (anchorPoint, p)
// against what it replaces, (anchorPoint, oldPoint), for crossings or a
// sweep-over witness, returning the key of each site that caught one. A
// crossed segment site keys on its own two endpoints; a swept-over point
// site keys on itself.
func (s *Simplifier) sideWitnesses(anchorPoint, oldPoint, p geomkernel.Point, allowed map[*svd.Vertex]bool) []rungKey {
	anchor, ok := s.pointToVertex[anchorPoint]
	if !ok {
		return nil
	}
	original, err := geomkernel.NewSegment(anchorPoint, oldPoint)
	if err != nil {
		return nil
	}
	replacement, err := geomkernel.NewSegment(anchorPoint, p)
	if err != nil {
		return nil
	}

	var keys []rungKey
	if seg, hit := topology.CheckSegmentIntersections(s.d, replacement, anchor, allowed); hit {
		keys = append(keys, keyOf(seg.A, seg.B))
	}
	if pt, hit := topology.CheckSweepOver(s.d, original, replacement, anchor, allowed); hit {
		keys = append(keys, keyOf(pt, pt))
	}
	return keys
}

// indexIntersectWitnesses records l against every site key that blocked
// it, so reviveLadders can find it again once that site is removed.
func (s *Simplifier) indexIntersectWitnesses(l *ladder.Ladder, keys []rungKey) {
	for _, k := range keys {
		s.edgeToIntersectsLadders[k] = append(s.edgeToIntersectsLadders[k], l)
	}
}

// indexLadder records l under every rung endpoint it spans, so a later
// collapse elsewhere can find and invalidate it.
func (s *Simplifier) indexLadder(l *ladder.Ladder) {
	for _, rung := range l.Rungs {
		s.pointToLadders[rung.T] = append(s.pointToLadders[rung.T], l)
		s.pointToLadders[rung.U] = append(s.pointToLadders[rung.U], l)
	}
}

// invalidate marks l stale and evicts it from the queue, a no-op if l was
// already invalidated.
func (s *Simplifier) invalidate(l *ladder.Ladder) {
	if l.Old {
		return
	}
	l.Old = true
	if h, ok := s.handles[l]; ok {
		s.queue.Remove(h)
		delete(s.handles, l)
	}
}

// collapseLadder replaces every rung's pair of points with its collapsed
// point, edits the Voronoi diagram and matching graph to match, and
// reseeds ladders around the edit.
func (s *Simplifier) collapseLadder(l *ladder.Ladder) error {
	touched := make(map[geomkernel.Point]bool)
	var fresh []geomkernel.Point

	for i, rung := range l.Rungs {
		p := l.Collapsed[i]

		sp, vp, err := s.store.CollapseRung(rung.T, rung.U, p)
		if err != nil {
			if s.cfg.Debug {
				fmt.Fprintf(os.Stderr, "simplifier: ladder inconsistent with store, discarding:\n%s", spew.Sdump(l))
			}
			s.invalidate(l)
			return nil
		}

		s.editDiagram(sp, rung.T, rung.U, vp, p)

		touched[rung.T] = true
		touched[rung.U] = true
		touched[sp] = true
		touched[vp] = true
		fresh = append(fresh, sp, p, vp)
	}

	s.vertexCount = s.store.VertexCount()
	s.updateMatching(touched)
	s.updateLadders(touched, fresh)
	return nil
}

// editDiagram performs the five-removal, three-insertion Voronoi edit a
// single rung collapse requires: the point sites for t and u and the
// segment sites for (sp,t), (t,u) and (u,vp) are removed; a point site for
// p and segment sites for (sp,p) and (p,vp) are inserted in their place.
// Every site actually removed also revives any ladder deferred because it
// crossed or swept over that exact site.
func (s *Simplifier) editDiagram(sp, t, u, vp, p geomkernel.Point) {
	var removed []rungKey
	if s.removeVertex(s.pointToVertex, t) {
		removed = append(removed, keyOf(t, t))
	}
	if s.removeVertex(s.pointToVertex, u) {
		removed = append(removed, keyOf(u, u))
	}
	if s.removeEdgeVertex(sp, t) {
		removed = append(removed, keyOf(sp, t))
	}
	if s.removeEdgeVertex(t, u) {
		removed = append(removed, keyOf(t, u))
	}
	if s.removeEdgeVertex(u, vp) {
		removed = append(removed, keyOf(u, vp))
	}
	s.reviveLadders(removed)

	if v, err := s.d.InsertPoint(p); err == nil {
		s.pointToVertex[p] = v
	}
	if v, err := s.d.InsertSegment(sp, p, nil); err == nil {
		s.edgeToVertex[keyOf(sp, p)] = v
	}
	if v, err := s.d.InsertSegment(p, vp, nil); err == nil {
		s.edgeToVertex[keyOf(p, vp)] = v
	}
}

func (s *Simplifier) removeVertex(index map[geomkernel.Point]*svd.Vertex, p geomkernel.Point) bool {
	if v, ok := index[p]; ok {
		s.d.Remove(v)
		delete(index, p)
		return true
	}
	return false
}

func (s *Simplifier) removeEdgeVertex(a, b geomkernel.Point) bool {
	k := keyOf(a, b)
	if v, ok := s.edgeToVertex[k]; ok {
		s.d.Remove(v)
		delete(s.edgeToVertex, k)
		return true
	}
	return false
}

// reviveLadders clears the intersects flag and recomputes the cost of
// every ladder recorded in edgeToIntersectsLadders against one of the
// just-removed sites, then reinserts each into the priority queue (with a
// fresh handle if NextLadder had already deferred it out of the queue).
func (s *Simplifier) reviveLadders(removed []rungKey) {
	for _, k := range removed {
		for _, l := range s.edgeToIntersectsLadders[k] {
			if l.Old {
				continue
			}
			l.Intersects = false
			ladder.ComputeCost(l, s.store.Prev, s.store.Next)
			if h, ok := s.handles[l]; ok {
				s.queue.Update(h, l.Cost)
			} else {
				s.handles[l] = s.queue.Push(l, l.Cost)
			}
		}
		delete(s.edgeToIntersectsLadders, k)
	}
}

// updateMatching scrubs touched points out of the matching graph, then
// folds in a fresh full resolution of the edited diagram. A true local
// re-match would only re-resolve the SVD edges incident to the edit, but
// matching.Resolve's per-edge step is unexported; recomputing globally and
// merging keeps the result correct at the cost of doing more work than
// the edit strictly needs.
func (s *Simplifier) updateMatching(touched map[geomkernel.Point]bool) {
	s.g.Delete(touched)
	s.g.MergeFrom(matching.Resolve(s.d, s.store, s.cfg.AngleFilter, s.cfg.AlignmentFilter))
}

// updateLadders invalidates every ladder touching a point the collapse
// removed or introduced, then reseeds ladders at the edges now flanking
// each fresh point.
func (s *Simplifier) updateLadders(touched map[geomkernel.Point]bool, fresh []geomkernel.Point) {
	victims := make(map[*ladder.Ladder]bool)
	for p := range touched {
		for _, l := range s.pointToLadders[p] {
			victims[l] = true
		}
		delete(s.pointToLadders, p)
	}
	for l := range victims {
		s.invalidate(l)
	}

	seen := make(map[rungKey]bool)
	for _, p := range fresh {
		if t, ok := s.store.Prev(p); ok {
			s.seedLadder(t, p, seen)
		}
		if u, ok := s.store.Next(p); ok {
			s.seedLadder(p, u, seen)
		}
	}
}

// TotalSymmetricDifference sums the symmetric-difference cost every
// currently queued, non-stale ladder with a finite cost would incur if
// collapsed. It does not measure the area already changed by collapses
// performed so far.
func (s *Simplifier) TotalSymmetricDifference() float64 {
	total := 0.0
	for l := range s.handles {
		if !l.Old && l.Valid && !math.IsInf(l.Cost, 1) {
			total += l.Cost
		}
	}
	return total
}

// AverageMaxVertexAlignment scans the current matching graph for the mean
// and maximum vertex-alignment angle among matched pairs, per the quality
// diagnostics a caller may want to report alongside a simplification run.
func (s *Simplifier) AverageMaxVertexAlignment() (avg, max float64) {
	count := 0
	for _, p := range s.g.Points() {
		for sign, byIso := range s.g.Matches(p) {
			for _, pts := range byIso {
				for _, q := range pts {
					a := matching.VertexAlignment(s.store, p, q, sign)
					if a > max {
						max = a
					}
					avg += a
					count++
				}
			}
		}
	}
	if count == 0 {
		return 0, 0
	}
	return avg / float64(count), max
}

// Clear drops every ladder from the queue and the ladder indices, then
// reseeds one ladder per isoline edge from the current store and matching
// graph, leaving the store, diagram and matching graph untouched.
func (s *Simplifier) Clear() {
	for s.queue.Len() > 0 {
		s.queue.Pop()
	}
	s.handles = make(map[*ladder.Ladder]*heapqueue.Handle)
	s.edgeToIntersectsLadders = make(map[rungKey][]*ladder.Ladder)
	s.pointToLadders = make(map[geomkernel.Point][]*ladder.Ladder)
	s.seedAllLadders()
}
