package ladder

import (
	"sort"

	"github.com/cartocrow/isosimplify/geomkernel"
	"github.com/cartocrow/isosimplify/isoline"
	"github.com/cartocrow/isosimplify/matching"
)

// maxSearchDepth bounds the directional search so a malformed matching
// graph (e.g. a cycle of caps that never terminates) cannot loop forever;
// no real ladder should ever need this many rungs.
const maxSearchDepth = 4096

// CreateSlopeLadder grows a ladder from the seed rung (t, u), with
// next(t) == u on their isoline, by walking the matching graph outward in
// both directions (LEFT and RIGHT as the two initial directions) until
// each side caps or runs out of matched neighbours.
func CreateSlopeLadder(g *matching.Graph, store *isoline.Store, t, u geomkernel.Point) *Ladder {
	l := NewLadder(t, u)
	extend(g, store, l, t, u, geomkernel.Left, true, 0)
	extend(g, store, l, t, u, geomkernel.Right, false, 0)
	l.Valid = validate(store, l)
	return l
}

// extend performs one directional search step from endpoints (a, b) in
// direction dir, growing l on its front (seed side closer to t) or back
// side. It mutates l in place and returns once the side caps, exhausts
// its candidates, or hits maxSearchDepth.
func extend(g *matching.Graph, store *isoline.Store, l *Ladder, a, b geomkernel.Point, dir geomkernel.Orientation, front bool, depth int) {
	if depth >= maxSearchDepth {
		return
	}

	bucketsA := g.Matches(a)
	bucketsB := g.Matches(b)
	if bucketsA == nil || bucketsB == nil {
		return
	}
	byIsoA, ok := bucketsA[dir]
	if !ok {
		return
	}
	byIsoB, ok := bucketsB[dir]
	if !ok {
		return
	}

	isoIDs := make([]int, 0, len(byIsoA))
	for isoID := range byIsoA {
		isoIDs = append(isoIDs, isoID)
	}
	sort.Ints(isoIDs)

	for _, isoID := range isoIDs {
		aPts := byIsoA[isoID]
		bPts, ok := byIsoB[isoID]
		if !ok {
			continue
		}

		for _, ap := range aPts {
			for _, bp := range bPts {
				if !ap.Equal(bp) {
					continue
				}
				if !acceptCap(g, store, a, b, dir, ap) {
					continue
				}
				setCap(l, front, ap)
				return
			}
		}

		for _, ap := range aPts {
			for _, bp := range bPts {
				t, u, ok := adjacentRung(store, ap, bp)
				if !ok {
					continue
				}
				if !acceptAdjacentRung(g, store, a, b, dir, ap, bp) {
					continue
				}
				pushRung(l, front, t, u)
				newDir := directionContaining(g, ap, a)
				extend(g, store, l, ap, bp, newDir, front, depth+1)
				return
			}
		}
	}
}

// forwardPair reorders (a, b) so that next(fa) == fb, i.e. so the pair
// reads in the isoline's own traversal direction regardless of which
// order the caller happened to pass it in.
func forwardPair(store *isoline.Store, a, b geomkernel.Point) (fa, fb geomkernel.Point) {
	if n, ok := store.Next(b); ok && n.Equal(a) {
		return b, a
	}
	return a, b
}

// acceptCap applies the two geometric guards a cap candidate must pass:
// it must lie on the dir side of the current rung (a, b), and — when it
// has both a prev and a next of its own — at least one of its incident
// edges must place each of a and b on the side its own matching implies,
// so a cap whose neighbourhood straddles the rung inconsistently is
// rejected rather than accepted on structural grounds alone.
func acceptCap(g *matching.Graph, store *isoline.Store, a, b geomkernel.Point, dir geomkernel.Orientation, cap geomkernel.Point) bool {
	fa, fb := forwardPair(store, a, b)
	if geomkernel.Orient(fa, fb, cap) != dir {
		return false
	}

	pr, hasPrev := store.Prev(cap)
	ne, hasNext := store.Next(cap)
	if !hasPrev || !hasNext {
		return true
	}
	expected := directionContaining(g, cap, a)
	aSide := geomkernel.Orient(pr, cap, a) == expected || geomkernel.Orient(cap, ne, a) == expected
	bSide := geomkernel.Orient(pr, cap, b) == expected || geomkernel.Orient(cap, ne, b) == expected
	return aSide && bSide
}

// acceptAdjacentRung applies the two geometric guards an adjacent-rung
// candidate (ap, bp) must pass: both ap and bp must lie on the dir side
// of the current rung (a, b), and symmetrically both a and b must lie on
// the expected side of (ap, bp) itself, as seen from ap's own matching
// direction back to a.
func acceptAdjacentRung(g *matching.Graph, store *isoline.Store, a, b geomkernel.Point, dir geomkernel.Orientation, ap, bp geomkernel.Point) bool {
	fa, fb := forwardPair(store, a, b)
	if geomkernel.Orient(fa, fb, ap) != dir || geomkernel.Orient(fa, fb, bp) != dir {
		return false
	}

	fap, fbp := forwardPair(store, ap, bp)
	expected := directionContaining(g, ap, a)
	return geomkernel.Orient(fap, fbp, a) == expected && geomkernel.Orient(fap, fbp, b) == expected
}

// adjacentRung reports whether ap and bp are connected by a store edge
// (either next(ap) == bp or prev(ap) == bp), returning the rung oriented
// so its source's next is its target.
func adjacentRung(store *isoline.Store, ap, bp geomkernel.Point) (t, u geomkernel.Point, ok bool) {
	if n, has := store.Next(ap); has && n.Equal(bp) {
		return ap, bp, true
	}
	if p, has := store.Prev(ap); has && p.Equal(bp) {
		return bp, ap, true
	}
	return geomkernel.Point{}, geomkernel.Point{}, false
}

// directionContaining finds the turn sign under which p is matched to
// target, searching every sign bucket of p's matching entry (Left, then
// Right, then Collinear).
func directionContaining(g *matching.Graph, p, target geomkernel.Point) geomkernel.Orientation {
	matches := g.Matches(p)
	for _, sign := range []geomkernel.Orientation{geomkernel.Left, geomkernel.Right, geomkernel.Collinear} {
		for _, pts := range matches[sign] {
			for _, q := range pts {
				if q.Equal(target) {
					return sign
				}
			}
		}
	}
	return geomkernel.Collinear
}

func setCap(l *Ladder, front bool, p geomkernel.Point) {
	capPoint := p
	if front {
		l.CapFront = &capPoint
	} else {
		l.CapBack = &capPoint
	}
}

func pushRung(l *Ladder, front bool, t, u geomkernel.Point) {
	if front {
		l.Rungs = append([]Rung{{T: t, U: u}}, l.Rungs...)
	} else {
		l.Rungs = append(l.Rungs, Rung{T: t, U: u})
	}
}

// validate reports whether every rung of l has both neighbours defined,
// per the invariant that an otherwise well-formed ladder still requires
// prev(t) and next(u) for every rung.
func validate(store *isoline.Store, l *Ladder) bool {
	for _, rung := range l.Rungs {
		if _, ok := store.Prev(rung.T); !ok {
			return false
		}
		if _, ok := store.Next(rung.U); !ok {
			return false
		}
	}
	return len(l.Rungs) > 0
}
