// Package matching implements the matching resolver: given the current
// segment Voronoi diagram and the isoline store it was built from, it
// classifies each finite Voronoi edge as a separator (its two defining
// sites belong to different isolines) or internal, and turns every
// separator edge into zero or more symmetric point-to-point
// correspondences, each annotated with a turn sign.
//
// The result is a Graph: a symmetric map point -> (turn sign -> (isoline
// ID -> set of matched points)). Two points on the same isoline are never
// matched to each other.
//
// Errors: none. A malformed or isolated site simply yields no matches for
// that edge; Resolve never fails.
package matching
