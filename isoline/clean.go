package isoline

import "github.com/cartocrow/isosimplify/geomkernel"

// Clean prepares raw loader output for the simplifier: it removes
// consecutive duplicate points, concatenates open polylines that share an
// endpoint, and marks polylines whose two ends have come to coincide as
// closed (dropping the now-redundant repeated last point). This is the
// "cleans input" preprocessing step of the simplifier driver's
// initialize operation.
//
// Clean assumes inputs are otherwise simple and consistently oriented: it
// only merges and dedups, it does not repair self-intersections.
func Clean(raw []Input) []Input {
	work := make([]Input, 0, len(raw))
	for _, in := range raw {
		work = append(work, Input{Points: dedupConsecutive(in.Points), Closed: in.Closed})
	}

	merged := true
	for merged {
		merged = false
		for i := 0; i < len(work); i++ {
			if work[i].Closed || len(work[i].Points) == 0 {
				continue
			}
			for j := i + 1; j < len(work); j++ {
				if work[j].Closed || len(work[j].Points) == 0 {
					continue
				}
				if joined, ok := joinSharingEndpoint(work[i], work[j]); ok {
					work[i] = joined
					work = append(work[:j], work[j+1:]...)
					merged = true
					break
				}
			}
			if merged {
				break
			}
		}
	}

	out := make([]Input, 0, len(work))
	for _, in := range work {
		pts := dedupConsecutive(in.Points)
		closed := in.Closed
		if !closed && len(pts) >= 3 && pts[0].Equal(pts[len(pts)-1]) {
			pts = pts[:len(pts)-1]
			closed = true
		}
		if len(pts) >= 2 {
			out = append(out, Input{Points: pts, Closed: closed})
		}
	}
	return out
}

func dedupConsecutive(pts []geomkernel.Point) []geomkernel.Point {
	if len(pts) == 0 {
		return pts
	}
	out := make([]geomkernel.Point, 0, len(pts))
	out = append(out, pts[0])
	for _, p := range pts[1:] {
		if !p.Equal(out[len(out)-1]) {
			out = append(out, p)
		}
	}
	return out
}

// joinSharingEndpoint attempts to concatenate two open polylines that share
// an endpoint, in any of the four possible orientations. Returns ok=false
// if they share no endpoint.
func joinSharingEndpoint(a, b Input) (Input, bool) {
	an, bn := len(a.Points), len(b.Points)
	if an == 0 || bn == 0 {
		return Input{}, false
	}
	aStart, aEnd := a.Points[0], a.Points[an-1]
	bStart, bEnd := b.Points[0], b.Points[bn-1]

	switch {
	case aEnd.Equal(bStart):
		return Input{Points: append(append([]geomkernel.Point{}, a.Points...), b.Points[1:]...)}, true
	case aEnd.Equal(bEnd):
		return Input{Points: append(append([]geomkernel.Point{}, a.Points...), reversed(b.Points)[1:]...)}, true
	case aStart.Equal(bEnd):
		return Input{Points: append(append([]geomkernel.Point{}, b.Points...), a.Points[1:]...)}, true
	case aStart.Equal(bStart):
		return Input{Points: append(reversed(a.Points), b.Points[1:]...)}, true
	default:
		return Input{}, false
	}
}

func reversed(pts []geomkernel.Point) []geomkernel.Point {
	out := make([]geomkernel.Point, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}
