// Package dcgmemo provides the eviction policies the engine's memo table
// can apply on top of (never instead of) reference counting: None,
// Fifo(k), and Lru(k). A policy only ever prioritizes among memo entries
// whose refcount has already reached zero; it never forces eviction of a
// node something still depends on.
//
// The Lru implementation is grounded on the doubly-linked-list design
// used for query-plan caching in the corpus (container/list plus a
// hash index), the same shape this package uses for Fifo.
package dcgmemo
