// Package ladder implements the slope-ladder builder, the area-preserving
// collapse geometry, and the symmetric-difference cost model: the three
// pieces that turn a matching graph into a prioritisable set of candidate
// local edits.
//
// A Ladder bundles one rung (one edge) per isoline that participates in a
// coordinated collapse; CreateSlopeLadder grows one from a seed rung by
// walking the matching graph outward in both directions until it caps or
// runs out of matched neighbours. CollapsePolicy then assigns each rung a
// replacement point on its area-preservation line, and Cost aggregates
// the resulting per-rung symmetric-difference areas into the ladder's
// priority-queue key.
package ladder
