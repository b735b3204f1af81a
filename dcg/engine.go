package dcg

import (
	"fmt"

	"github.com/katalvlaran/grifola/dcgmemo"
)

// Stats are the opaque counters the core increments but does not
// interpret (§1): it is up to the host to decide what, if anything,
// "evaluations" or "repairs" mean for its own reporting, the same way
// lvlath's bench_test.go files report allocs/bytes without the library
// itself judging them.
type Stats struct {
	Evaluations  uint64 // bodies actually (re-)run
	Repairs      uint64 // repair() calls that did NOT re-evaluate
	DirtyMarks   uint64 // Clean->Dirty edge flips
	MemoHits     uint64
	MemoMisses   uint64
	Teardowns    uint64
	Sets         uint64
}

// frame is one entry of the force stack (§4.5): the node currently being
// evaluated, and the outgoing edges it has recorded so far.
type frame struct {
	edgeSrc  *metaNode
	obsEdges []*forceEdge
	mutEdges []*mutEdge
}

// Engine is the DCG runtime: it owns node identity allocation, the
// process-wide force stack, the reference-count undo buffer, and the
// configuration resolved at construction. An Engine is not safe for
// concurrent use (§5).
type Engine struct {
	cfg Config

	root   *metaNode
	nextID uint64

	stack []*frame

	undoBuff map[*metaNode]struct{}

	// byID lets the eviction policy's opaque uint64 keys (node ids) be
	// resolved back to a metaNode at Flush time; nothing else in the
	// engine needs id-based lookup since edges carry direct pointers.
	byID map[uint64]*metaNode

	seq uint64 // global sequence counter, bumped on every Set

	Stats Stats

	// reentrancy is a best-effort, non-authoritative debug aid (see
	// doc.go's Concurrency note): it is set while DebugAssert is on and
	// compared by goroutine id, purely to fail fast in development.
	inForceGoroutine int64
	reentryArmed     bool
}

// New constructs an Engine with the given Options applied over the
// spec's stated defaults.
func New(opts ...Option) *Engine {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.EvictionPolicy == nil {
		// None is the zero-cost default; set explicitly so memo.go never
		// has to nil-check it.
		cfg.EvictionPolicy = dcgmemo.None{}
	}
	eng := &Engine{
		cfg:      cfg,
		undoBuff: make(map[*metaNode]struct{}),
		byID:     make(map[uint64]*metaNode),
	}
	eng.root = eng.newNode() // id 0, the root node per §3
	return eng
}

// newNode allocates a fresh metaNode with the next monotonic id.
func (eng *Engine) newNode() *metaNode {
	id := eng.nextID
	eng.nextID++
	meta := newMetaNode(id)
	eng.byID[id] = meta
	return meta
}

// metaByEvictionKey resolves an eviction policy's opaque key back to the
// metaNode it names.
func (eng *Engine) metaByEvictionKey(key uint64) *metaNode {
	return eng.byID[key]
}

// touchEviction notifies the configured eviction policy that meta's
// memo entry was just created or hit (§6 eviction_policy). Plain,
// non-memoized nodes never call this: eviction only prioritizes among
// memo-table entries, which carry their own identity-mode bookkeeping
// on top of the refcount that ultimately gates any teardown.
func (eng *Engine) touchEviction(meta *metaNode) {
	eng.cfg.EvictionPolicy.Touch(meta.id)
}

// inFrame reports whether the force stack is currently non-empty, i.e.
// whether the caller is inside some thunk's evaluation.
func (eng *Engine) inFrame() bool {
	return len(eng.stack) > 0
}

// top returns the current force frame, or nil if the stack is empty.
func (eng *Engine) top() *frame {
	if len(eng.stack) == 0 {
		return nil
	}
	return eng.stack[len(eng.stack)-1]
}

// warnInconsistency emits a DCGInconsistencyWarning (§7): a diagnostic,
// never an error, surfaced through the configured Warnf hook.
func (eng *Engine) warnInconsistency(format string, args ...any) {
	eng.cfg.Warnf(format, args...)
}

func (eng *Engine) String() string {
	return fmt.Sprintf("dcg.Engine{nodes=%d, stack=%d}", eng.nextID, len(eng.stack))
}
