package simplifier

import (
	"github.com/cartocrow/isosimplify/geomkernel"
	"github.com/cartocrow/isosimplify/heapqueue"
)

// DykenSimplify runs a reduced-fidelity stand-in for the constrained-
// Delaunay-triangulation polyline simplifier named as an external
// collaborator alongside the ladder-based engine. It shares only the
// isoline store: no Voronoi diagram, matching graph or ladder queue is
// built or touched, and it never uses CreateSlopeLadder.
//
// Each interior vertex v of an isoline (with neighbours a, b) is scored by
// a hybrid cost blending Visvalingam-Whyatt's triangle area with a pure
// squared perpendicular distance from the chord a-b, weighted by R:
//
//	cost(v) = (1-R)*area(a,v,b) + R*SquaredDistance(v, project(v, a-b))
//
// R == 0 reduces to classic Visvalingam-Whyatt; R == 1 reduces to a
// squared-distance (Douglas-Peucker-flavoured) cost. Vertices are removed
// cheapest-first via the shared isoline.Store.CollapseRung primitive: a
// vertex v with neighbours a, b is dropped by collapsing the rung (v, b)
// onto b's own coordinates, which splices a directly to b and leaves b's
// position unchanged.
//
// DykenSimplify returns true if target was reached.
func DykenSimplify(s *Simplifier, target int, R float64) bool {
	if target < 0 {
		return false
	}

	q := heapqueue.New()
	handles := make(map[geomkernel.Point]*heapqueue.Handle)

	evict := func(p geomkernel.Point) {
		if h, ok := handles[p]; ok {
			q.Remove(h)
			delete(handles, p)
		}
	}

	requeue := func(v geomkernel.Point) {
		evict(v)
		a, ok1 := s.store.Prev(v)
		b, ok2 := s.store.Next(v)
		if !ok1 || !ok2 {
			return
		}
		handles[v] = q.Push(v, dykenCost(a, v, b, R))
	}

	for _, iso := range s.store.Isolines() {
		pts := s.store.Points(iso)
		n := len(pts)
		start, end := 0, n
		if !iso.Closed() {
			start, end = 1, n-1
		}
		for i := start; i < end; i++ {
			requeue(pts[i])
		}
	}

	for s.store.VertexCount() > target {
		value, _, ok := q.Pop()
		if !ok {
			break
		}
		v := value.(geomkernel.Point)
		delete(handles, v)

		b, okB := s.store.Next(v)
		if !okB {
			continue
		}

		sp, _, err := s.store.CollapseRung(v, b, b)
		if err != nil {
			continue
		}

		requeue(sp)
		requeue(b)
	}

	s.vertexCount = s.store.VertexCount()
	return s.vertexCount <= target
}

func dykenCost(a, v, b geomkernel.Point, R float64) float64 {
	area := geomkernel.Area([]geomkernel.Point{a, v, b})
	line := geomkernel.LineThrough(a, b)
	foot := line.Projection(v)
	sqDist := geomkernel.SquaredDistance(v, foot)
	return (1-R)*area + R*sqDist
}
