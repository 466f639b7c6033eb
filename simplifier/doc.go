// Package simplifier implements the driver: the state machine that turns
// an isoline store, a segment Voronoi diagram, a matching graph and a
// priority queue of slope ladders into the harmonious isoline
// simplification algorithm itself.
//
// A Simplifier is built once via New, then driven either by repeated
// Step calls or by Simplify(target), which loops Step until the vertex
// count target is reached or no valid ladder remains. DykenSimplify is
// the independent, ladder-free alternative entry point that only shares
// the isoline store with the rest of the package.
//
// Errors:
//
//	ErrInvalidTarget - a negative target vertex count was requested.
package simplifier
