// Package grifola is an Adapton-style incremental computation engine:
// a Demanded Computation Graph (DCG) of mutable cells and memoized
// suspension thunks that only re-runs the part of a computation a
// change could actually have affected.
//
// Under the hood, everything is organized under a handful of
// subpackages:
//
//	dcg/       — the engine itself: cells, thunks, memo table, dirty/repair/evaluate
//	dcgmemo/   — memo-table eviction policies (None, Fifo, Lru)
//	dcgname/   — a default Name collaborator (interned labels, pairing, forking, gensym)
//	dcgdata/   — default Data collaborators (Comparable, Cloneable)
//	weakset/   — the non-owning reverse-edge set every DCG node keeps
//	examples/  — worked consumers (listunique, quickhull) exercising the engine
//
// A minimal session:
//
//	eng := dcg.New()
//	c := dcg.NewCell(eng, 1, func(a, b int) bool { return a == b }, func(v int) int { return v })
//	h := dcg.Thunk(eng, func(eng *dcg.Engine) (int, error) {
//	    return c.Force(eng) * 2, nil
//	})
//	v, _ := h.Force(eng) // 2
//	c.Set(eng, 21)
//	v, _ = h.Force(eng) // 42, only h's body re-ran
//
// grifola is single-threaded and cooperative: an Engine is not safe for
// concurrent use: thunk bodies force other nodes through the same Engine
// on the same goroutine, and no other goroutine may call into it
// meanwhile (see dcg's package doc for the full concurrency contract).
package grifola
