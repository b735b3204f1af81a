// Package weakset provides the bag-of-reverse-edges primitive used to store
// a DCG node's incoming force and creation edges without keeping their
// sources alive by virtue of being remembered.
//
// A Set never removes a member just because nothing else points at it
// anymore; instead every member is expected to carry its own liveness flag
// (Obsolete), and the set lazily compacts dead members out during Fold.
// This mirrors how lvlath's core.Graph keeps adjacency as nested maps that
// are trimmed during RemoveVertex/RemoveEdge rather than relying on a
// garbage collector to notice a dangling entry.
package weakset
