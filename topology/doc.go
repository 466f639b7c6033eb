// Package topology implements the two validity checks a candidate ladder
// collapse must pass before it is accepted: an SVD-driven intersection
// check (does a replacement segment cross an existing isoline edge?) and
// a region-flood topology check (does the replacement chain sweep over a
// vertex of another isoline without technically crossing an edge,
// silently changing which side of the isoline that vertex is on?).
//
// Both walk outward from an anchor vertex over the segment Voronoi
// diagram's adjacency rather than scanning every isoline edge, bounded by
// maxFloodVertices so a pathological diagram cannot make either check
// run unbounded.
package topology

// maxFloodVertices bounds the BFS walk of both checks.
const maxFloodVertices = 20000
