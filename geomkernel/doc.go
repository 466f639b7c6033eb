// Package geomkernel implements the GeomKernel external collaborator named
// in the isoline simplification design: points, segments, lines, squared
// distance, exact orientation, and exact segment-segment intersection.
//
// Predicates (Orient, SegmentIntersection) are evaluated with exact
// rational arithmetic (math/big) rather than floating point, because the
// topology and intersection checks built on top of this package require
// the same sign as an unbounded-precision computation would give; a
// filtered floating-point predicate is not substituted here. Constructions
// (midpoints, projections) remain float64, matching the "constructions may
// be filtered" allowance.
//
// Errors:
//
//	ErrDegenerateSegment - a segment was constructed with coincident endpoints.
//	ErrIdenticalPoints    - an operation needs two distinct points but got equal ones.
package geomkernel
