package isoline

import (
	"container/list"

	"github.com/cartocrow/isosimplify/geomkernel"
)

// Store holds a collection of isolines plus the prev/next connectivity
// maps that are the single source of truth for how their points connect.
// The underlying container/list per isoline gives O(1) insertion and
// removal at a known position, without owning connectivity semantics
// itself.
type Store struct {
	isolines []*Isoline
	order    map[int]*list.List // isoline ID -> ordered points

	prev, next     map[geomkernel.Point]geomkernel.Point
	pointToIsoline map[geomkernel.Point]*Isoline
	pointToElem    map[geomkernel.Point]*list.Element

	vertexCount int
	nextID      int
}

// NewStore builds a Store from already-cleaned input (see Clean). It
// returns ErrEmptyIsoline for any isoline with fewer than two points and
// ErrSharedPoint if the same point appears in two different isolines.
func NewStore(inputs []Input) (*Store, error) {
	s := &Store{
		order:          make(map[int]*list.List),
		prev:           make(map[geomkernel.Point]geomkernel.Point),
		next:           make(map[geomkernel.Point]geomkernel.Point),
		pointToIsoline: make(map[geomkernel.Point]*Isoline),
		pointToElem:    make(map[geomkernel.Point]*list.Element),
	}

	for _, in := range inputs {
		if len(in.Points) < 2 {
			return nil, ErrEmptyIsoline
		}
		s.nextID++
		iso := &Isoline{id: s.nextID, closed: in.Closed}
		s.isolines = append(s.isolines, iso)

		l := list.New()
		s.order[iso.id] = l

		for _, p := range in.Points {
			if _, dup := s.pointToIsoline[p]; dup {
				return nil, ErrSharedPoint
			}
			e := l.PushBack(p)
			s.pointToIsoline[p] = iso
			s.pointToElem[p] = e
			s.vertexCount++
		}

		for i, p := range in.Points {
			if i > 0 {
				s.prev[p] = in.Points[i-1]
			} else if in.Closed {
				s.prev[p] = in.Points[len(in.Points)-1]
			}
			if i < len(in.Points)-1 {
				s.next[p] = in.Points[i+1]
			} else if in.Closed {
				s.next[p] = in.Points[0]
			}
		}
	}

	return s, nil
}

// Isolines returns every isoline currently in the store.
func (s *Store) Isolines() []*Isoline { return s.isolines }

// VertexCount returns the total number of points across all isolines.
func (s *Store) VertexCount() int { return s.vertexCount }

// Prev returns the predecessor of p on its isoline, or ok=false if p is an
// open isoline's first point (or unknown).
func (s *Store) Prev(p geomkernel.Point) (geomkernel.Point, bool) {
	v, ok := s.prev[p]
	return v, ok
}

// Next returns the successor of p on its isoline, or ok=false if p is an
// open isoline's last point (or unknown).
func (s *Store) Next(p geomkernel.Point) (geomkernel.Point, bool) {
	v, ok := s.next[p]
	return v, ok
}

// IsolineOf returns the isoline p belongs to, or nil if p is unknown.
func (s *Store) IsolineOf(p geomkernel.Point) *Isoline {
	return s.pointToIsoline[p]
}

// Points returns the ordered point sequence of iso.
func (s *Store) Points(iso *Isoline) []geomkernel.Point {
	l := s.order[iso.id]
	pts := make([]geomkernel.Point, 0, l.Len())
	for e := l.Front(); e != nil; e = e.Next() {
		pts = append(pts, e.Value.(geomkernel.Point))
	}
	return pts
}

// Len returns the number of points on iso.
func (s *Store) Len(iso *Isoline) int {
	return s.order[iso.id].Len()
}

// CollapseRung replaces the two adjacent points t, u (t immediately
// followed by u on their common isoline) with a single point p, splicing p
// into the linked list between prev(t) and next(u) and updating every
// index the store owns. It returns the points s = prev(t) and v = next(u)
// that now flank p.
//
// The caller is responsible for having already verified
// signedArea(s, p, v) == signedArea(s, t, u, v) (area preservation);
// CollapseRung itself only performs the topology edit.
func (s *Store) CollapseRung(t, u, p geomkernel.Point) (sPoint, vPoint geomkernel.Point, err error) {
	iso := s.pointToIsoline[t]
	if iso == nil || s.pointToIsoline[u] != iso {
		return geomkernel.Point{}, geomkernel.Point{}, ErrUnknownPoint
	}
	sp, ok := s.prev[t]
	if !ok {
		return geomkernel.Point{}, geomkernel.Point{}, ErrUnknownPoint
	}
	vp, ok := s.next[u]
	if !ok {
		return geomkernel.Point{}, geomkernel.Point{}, ErrUnknownPoint
	}
	if sp.Equal(vp) {
		return geomkernel.Point{}, geomkernel.Point{}, ErrThreeVertexIsoline
	}

	l := s.order[iso.id]
	tElem, uElem := s.pointToElem[t], s.pointToElem[u]
	newElem := l.InsertBefore(p, uElem)
	l.Remove(tElem)
	l.Remove(uElem)

	delete(s.pointToElem, t)
	delete(s.pointToElem, u)
	s.pointToElem[p] = newElem

	delete(s.pointToIsoline, t)
	delete(s.pointToIsoline, u)
	s.pointToIsoline[p] = iso

	delete(s.prev, t)
	delete(s.next, t)
	delete(s.prev, u)
	delete(s.next, u)

	s.prev[vp] = p
	s.next[sp] = p
	s.prev[p] = sp
	s.next[p] = vp

	s.vertexCount--

	return sp, vp, nil
}
