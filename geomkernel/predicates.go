package geomkernel

import (
	"math/big"
)

// toRat promotes a float64 coordinate to an exact big.Rat. float64 values
// are themselves exact dyadic rationals, so this loses no precision: the
// orientation tests built on it agree with unbounded-precision arithmetic
// while still taking machine-native coordinates as input.
func toRat(x float64) *big.Rat {
	r := new(big.Rat)
	r.SetFloat64(x)
	return r
}

// signOfCross2 returns the sign of (b-a) x (c-a) computed exactly.
func signOfCross2(a, b, c Point) int {
	ax, ay := toRat(a.X), toRat(a.Y)
	bx, by := toRat(b.X), toRat(b.Y)
	cx, cy := toRat(c.X), toRat(c.Y)

	ux := new(big.Rat).Sub(bx, ax)
	uy := new(big.Rat).Sub(by, ay)
	vx := new(big.Rat).Sub(cx, ax)
	vy := new(big.Rat).Sub(cy, ay)

	lhs := new(big.Rat).Mul(ux, vy)
	rhs := new(big.Rat).Mul(uy, vx)
	cross := new(big.Rat).Sub(lhs, rhs)
	return cross.Sign()
}

// Orient evaluates the exact orientation predicate of points a, b, c: it
// answers whether c lies to the left of, to the right of, or on the
// directed line through a and b.
func Orient(a, b, c Point) Orientation {
	switch signOfCross2(a, b, c) {
	case 1:
		return Left
	case -1:
		return Right
	default:
		return Collinear
	}
}

// OrientedSide reports which side of l the point p falls on: Left for l's
// positive side, Right for its negative side, Collinear for points on l
// itself.
func OrientedSide(l Line, p Point) Orientation {
	other := l.Through.Add(l.Direction)
	return Orient(l.Through, other, p)
}

// SquaredDistance returns the squared Euclidean distance between p and q,
// computed in float64.
func SquaredDistance(p, q Point) float64 {
	dx := p.X - q.X
	dy := p.Y - q.Y
	return dx*dx + dy*dy
}

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 {
	d := SquaredDistance(p, q)
	return sqrtFloat(d)
}

func sqrtFloat(x float64) float64 {
	if x <= 0 {
		return 0
	}
	// Newton's method avoids importing math solely for Sqrt in a file whose
	// other arithmetic is already hand-rolled over big.Rat; kept simple since
	// only non-negative squared distances reach here.
	z := x
	for i := 0; i < 40; i++ {
		z -= (z*z - x) / (2 * z)
	}
	return z
}

// IntersectionKind classifies the result of SegmentIntersection.
type IntersectionKind int

const (
	// NoIntersection means the segments do not meet.
	NoIntersection IntersectionKind = iota
	// PointIntersection means the segments meet at a single point.
	PointIntersection
	// SegmentOverlap means the segments overlap along a sub-segment (collinear, overlapping).
	SegmentOverlap
)

// Intersection is the result of an exact segment-segment intersection test.
type Intersection struct {
	Kind             IntersectionKind
	Point            Point   // valid when Kind == PointIntersection
	Overlap          Segment // valid when Kind == SegmentOverlap
}

// SegmentIntersection computes the exact intersection of two segments,
// returning NoIntersection, a single point, or (for collinear overlapping
// segments) the overlapping sub-segment.
func SegmentIntersection(s1, s2 Segment) Intersection {
	d1 := Orient(s2.A, s2.B, s1.A)
	d2 := Orient(s2.A, s2.B, s1.B)
	d3 := Orient(s1.A, s1.B, s2.A)
	d4 := Orient(s1.A, s1.B, s2.B)

	if ((d1 == Left && d2 == Right) || (d1 == Right && d2 == Left)) &&
		((d3 == Left && d4 == Right) || (d3 == Right && d4 == Left)) {
		p := properIntersectionPoint(s1, s2)
		return Intersection{Kind: PointIntersection, Point: p}
	}

	if d1 == Collinear && d2 == Collinear && d3 == Collinear && d4 == Collinear {
		if ov, ok := collinearOverlap(s1, s2); ok {
			return Intersection{Kind: SegmentOverlap, Overlap: ov}
		}
	}

	if d1 == Collinear && onSegment(s2, s1.A) {
		return Intersection{Kind: PointIntersection, Point: s1.A}
	}
	if d2 == Collinear && onSegment(s2, s1.B) {
		return Intersection{Kind: PointIntersection, Point: s1.B}
	}
	if d3 == Collinear && onSegment(s1, s2.A) {
		return Intersection{Kind: PointIntersection, Point: s2.A}
	}
	if d4 == Collinear && onSegment(s1, s2.B) {
		return Intersection{Kind: PointIntersection, Point: s2.B}
	}

	return Intersection{Kind: NoIntersection}
}

// onSegment reports whether p, known to be collinear with s, lies within
// s's bounding box (i.e. on the closed segment).
func onSegment(s Segment, p Point) bool {
	minX, maxX := minMax(s.A.X, s.B.X)
	minY, maxY := minMax(s.A.Y, s.B.Y)
	return p.X >= minX && p.X <= maxX && p.Y >= minY && p.Y <= maxY
}

func minMax(a, b float64) (float64, float64) {
	if a < b {
		return a, b
	}
	return b, a
}

// properIntersectionPoint computes the intersection point of two segments
// known to cross properly, using exact rational arithmetic throughout.
func properIntersectionPoint(s1, s2 Segment) Point {
	x1, y1 := toRat(s1.A.X), toRat(s1.A.Y)
	x2, y2 := toRat(s1.B.X), toRat(s1.B.Y)
	x3, y3 := toRat(s2.A.X), toRat(s2.A.Y)
	x4, y4 := toRat(s2.B.X), toRat(s2.B.Y)

	// Standard line-line intersection via determinants.
	x1y2 := new(big.Rat).Mul(x1, y2)
	y1x2 := new(big.Rat).Mul(y1, x2)
	a := new(big.Rat).Sub(x1y2, y1x2) // x1*y2 - y1*x2

	x3y4 := new(big.Rat).Mul(x3, y4)
	y3x4 := new(big.Rat).Mul(y3, x4)
	b := new(big.Rat).Sub(x3y4, y3x4) // x3*y4 - y3*x4

	x1x2 := new(big.Rat).Sub(x1, x2)
	x3x4 := new(big.Rat).Sub(x3, x4)
	y1y2 := new(big.Rat).Sub(y1, y2)
	y3y4 := new(big.Rat).Sub(y3, y4)

	denom := new(big.Rat).Sub(
		new(big.Rat).Mul(x1x2, y3y4),
		new(big.Rat).Mul(y1y2, x3x4),
	)
	if denom.Sign() == 0 {
		// Degenerate (should not happen for proper crossings); fall back to midpoint.
		m := s1.Midpoint()
		return m
	}

	numX := new(big.Rat).Sub(new(big.Rat).Mul(a, x3x4), new(big.Rat).Mul(x1x2, b))
	numY := new(big.Rat).Sub(new(big.Rat).Mul(a, y3y4), new(big.Rat).Mul(y1y2, b))

	px := new(big.Rat).Quo(numX, denom)
	py := new(big.Rat).Quo(numY, denom)

	pxf, _ := px.Float64()
	pyf, _ := py.Float64()
	return Point{pxf, pyf}
}

// collinearOverlap computes the overlapping sub-segment of two collinear
// segments, reporting ok=false when they merely touch at a point or do not
// overlap at all (those cases are handled by the endpoint-on-segment checks
// in SegmentIntersection).
func collinearOverlap(s1, s2 Segment) (Segment, bool) {
	// Parameterize along s1's direction.
	dir := s1.Vector()
	origin := s1.A
	param := func(p Point) float64 {
		w := p.Sub(origin)
		if dir.X*dir.X >= dir.Y*dir.Y {
			return w.X / dir.X
		}
		return w.Y / dir.Y
	}
	t := []float64{0, 1, param(s2.A), param(s2.B)}
	lo, hi := 0.0, 1.0
	lo2, hi2 := minMax(t[2], t[3])
	start := lo
	if lo2 > start {
		start = lo2
	}
	end := hi
	if hi2 < end {
		end = hi2
	}
	if start >= end {
		return Segment{}, false
	}
	at := func(tt float64) Point { return origin.Add(dir.Scale(tt)) }
	return Segment{A: at(start), B: at(end)}, true
}

// SignedArea computes the signed area of the closed polygon formed by pts
// (shoelace formula). Positive for counter-clockwise point order under the
// standard math convention, negative for clockwise order; nothing in this
// module reorients isolines, so the sign follows the input's orientation.
func SignedArea(pts []Point) float64 {
	if len(pts) < 3 {
		return 0
	}
	var total float64
	prev := pts[len(pts)-1]
	for _, curr := range pts {
		total += prev.X*curr.Y - prev.Y*curr.X
		prev = curr
	}
	return total / 2
}

// Area returns the absolute area enclosed by pts.
func Area(pts []Point) float64 {
	a := SignedArea(pts)
	if a < 0 {
		return -a
	}
	return a
}
