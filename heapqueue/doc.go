// Package heapqueue implements the simplifier's priority queue: a mutable
// binary min-heap, built on container/heap the way the core graph
// algorithms build theirs, but handle-based rather than lazy. Each Push
// returns a Handle that stays valid for the item's lifetime in the queue,
// so its cost can be revised in place (Update) whenever a ladder's
// collapse cost changes after a neighbouring edit, without leaving a
// stale duplicate entry behind.
package heapqueue
