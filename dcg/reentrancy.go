package dcg

import (
	"bytes"
	"runtime"
	"strconv"
)

// goroutineID extracts the calling goroutine's id by parsing the header
// line runtime.Stack always produces ("goroutine 123 [running]:...").
// It exists purely to back the DebugAssert reentrancy guard below: a
// best-effort development aid, never consulted on the hot path when
// DebugAssert is off (the default).
func goroutineID() int64 {
	buf := make([]byte, 64)
	n := runtime.Stack(buf, false)
	buf = buf[:n]
	buf = bytes.TrimPrefix(buf, []byte("goroutine "))
	if i := bytes.IndexByte(buf, ' '); i >= 0 {
		buf = buf[:i]
	}
	id, _ := strconv.ParseInt(string(buf), 10, 64)
	return id
}

// checkReentrancy implements §6's debug_assert: when enabled, pushing a
// frame while the force stack is already non-empty must happen on the
// same goroutine that pushed the outermost frame. Any other goroutine
// reaching this point has called into the Engine concurrently, which
// §5 states plainly is unsupported; DebugAssert turns that into a fast
// panic instead of silent, undefined corruption of the shared stack.
func (eng *Engine) checkReentrancy() {
	if !eng.cfg.DebugAssert {
		return
	}
	gid := goroutineID()
	if len(eng.stack) == 0 {
		eng.inForceGoroutine = gid
		eng.reentryArmed = true
		return
	}
	if eng.reentryArmed && gid != eng.inForceGoroutine {
		panic(misuse("force", ErrConcurrentReentrancy))
	}
}
