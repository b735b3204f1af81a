package dcg

import (
	"errors"
	"fmt"
)

// Sentinel errors for engine misuse. Callers should compare with
// errors.Is against these, not against MisuseError itself, since
// MisuseError wraps one of them with call-specific context.
var (
	// ErrSetDuringForce is returned when Set is called while a force
	// context is active anywhere on the stack.
	ErrSetDuringForce = errors.New("dcg: set called inside an active force context")

	// ErrArgMutationNotNominal names an argument mutation on a thunk
	// that was not created through Nart. Arguments are only ever replaced
	// by Nart itself, so no function in this package returns it.
	ErrArgMutationNotNominal = errors.New("dcg: argument mutation on a non-nominal thunk")

	// ErrSetIDNotGenerative names a set_id call on a thunk without
	// generative identity. This package has no set_id operation and
	// never returns it.
	ErrSetIDNotGenerative = errors.New("dcg: set_id on a non-generative thunk")

	// ErrNilBody names a thunk or memoized function declared with a nil
	// body. No constructor checks for that or returns this error; a nil
	// body panics when first evaluated, surfacing as *PanicDuringBody.
	ErrNilBody = errors.New("dcg: nil body")

	// ErrUnknownNode names a Handle or Cell of one Engine used against a
	// different Engine. No function in this package checks which Engine
	// a node came from or returns this error.
	ErrUnknownNode = errors.New("dcg: node does not belong to this engine")

	// ErrConcurrentReentrancy is the panic value behind the DebugAssert
	// reentrancy guard: a force frame was pushed from a goroutine other
	// than the one that pushed the outermost frame currently on the
	// stack, violating §5's single-threaded contract.
	ErrConcurrentReentrancy = errors.New("dcg: engine entered from a second goroutine while a force context is active")
)

// MisuseError reports a programmer error: a call the engine's contract
// forbids outright (set during an active force, mutating an argument on
// a thunk that isn't nominally identified, and so on). Per §7 these are
// not meant to be recovered from; the caller is expected to fix the
// call site, so MisuseError satisfies the error interface rather than
// panicking outright, leaving the panic-or-return decision to the host.
type MisuseError struct {
	Op  string // the operation that was misused, e.g. "Set", "Nart"
	Err error  // one of the Err* sentinels above
}

func (e *MisuseError) Error() string {
	return fmt.Sprintf("dcg: misuse in %s: %v", e.Op, e.Err)
}

func (e *MisuseError) Unwrap() error { return e.Err }

func misuse(op string, err error) *MisuseError {
	return &MisuseError{Op: op, Err: err}
}

// PanicDuringBody wraps a panic recovered from a user-supplied thunk or
// memoized-function body. The force frame is always popped and any
// partially constructed state discarded before this is propagated; the
// node's previous (pre-evaluation) state, if any, is left untouched.
type PanicDuringBody struct {
	NodeID uint64
	Value  any // the recovered panic value
}

func (e *PanicDuringBody) Error() string {
	return fmt.Sprintf("dcg: panic during body of node %d: %v", e.NodeID, e.Value)
}
