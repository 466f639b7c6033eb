// Package isoline implements the isoline store: a collection of
// independent polylines/polygons in the plane, each a linked vertex
// sequence with prev/next maps for O(1) local edits, as described by the
// harmonious isoline simplification design's data model.
//
// The prev/next maps are the single source of truth for connectivity; any
// other structure built on top of a Store (a segment Voronoi diagram, a
// matching graph) is derived and must be kept in step with them by its
// owner, never treated as authoritative on its own.
//
// Errors:
//
//	ErrEmptyIsoline       - an isoline with fewer than 2 points was supplied.
//	ErrSharedPoint        - the same point appears in more than one isoline.
//	ErrUnknownPoint       - an operation referenced a point absent from the store.
//	ErrThreeVertexIsoline - a closed isoline has only three vertices and cannot shrink further.
package isoline
