// Package dcg implements the core incremental computation engine of
// grifola, an Adapton-style runtime: a Demanded Computation Graph of
// mutable cells and memoized thunks, with change propagation that
// re-evaluates only the thunks whose observed dependencies actually
// changed.
//
// What
//
//   - NewCell(eng, value, eq, sanitize): a mutable input node, written
//     via Set.
//   - Thunk(eng, body): an anonymous memoized suspension.
//   - NewMfn(eng, body, argEq, argHash, valData): a memoized function
//     sharing one memo table across calls, with structural (Art),
//     nominal (Nart), and unmemoized (Data) entry points.
//   - Force observes a node's value, recording a dependency edge in
//     whichever thunk is currently being evaluated, if any.
//   - Flush drains deferred node teardowns.
//
// Why
//
//   - Re-running an entire computation after every small input edit is
//     wasteful. grifola tracks, per thunk, exactly which other nodes it
//     read; on a Set, only the reachable dependents are marked dirty, and
//     a later Force only re-executes the thunks that are both dirty and
//     whose re-check shows their inputs actually changed.
//
// Concurrency
//
//	The engine is single-threaded and cooperative: there is no internal
//	parallelism, and it is not safe to call Engine methods from more than
//	one goroutine at a time (see WithDebugAssert for the debug-assert
//	reentrancy guard this repository adds on top of that contract).
//
// Errors
//
//   - MisuseError for programmer errors: Set returns one during an
//     active force, and the DebugAssert reentrancy guard panics with one.
//   - DCGInconsistencyWarning is never returned; it is reported through
//     the configured Warnf hook and the computation proceeds regardless.
//
// See SPEC_FULL.md at the repository root for the full component design.
package dcg
