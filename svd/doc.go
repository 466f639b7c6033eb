// Package svd implements the segment Voronoi diagram (SVD) external
// collaborator named in the isoline simplification design: a dynamic
// diagram over point and segment sites supporting insertion, deletion, and
// adjacency queries (incident edges and vertices in O(deg); incident faces
// by a scan of every face), plus
// a primal edge oracle classifying each Voronoi edge as a segment, ray,
// line, or parabolic arc.
//
// Reduced fidelity, by design. A true segment Voronoi diagram (as CGAL's
// Segment_Delaunay_graph_2 computes) handles exact parabolic arcs between a
// point site and a segment site, and supports genuinely local incremental
// edits. Reproducing that from scratch is out of scope for this repository
// (SVD is treated purely as an external collaborator, reached only through
// the operations below). This package instead represents every site by a
// representative point (a
// segment site's midpoint), maintains a Delaunay triangulation over those
// representative points, and derives Voronoi adjacency as its dual. Voronoi
// edges are always reported as Segment, Ray, or Line (never Parabola); the
// Parabola case is defined so callers of the primal edge oracle have
// somewhere to handle it, but this reference implementation never produces
// one. Site identity is stable across edits: Insert/Remove mutate the
// existing *Vertex objects' adjacency in place rather than rebuilding
// vertex identity, so handles held by callers (as required by
// simplifier.Simplifier's pointToVertex/edgeToVertex indices) stay valid until the
// vertex they name is itself removed.
//
// Rebuilds are global (the whole triangulation is recomputed on every
// Insert/Remove), trading true incremental locality for a vastly simpler,
// still-correct-for-its-inputs construction. See DESIGN.md for the full
// accounting.
package svd
