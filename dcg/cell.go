package dcg

// cellNode is a MutCell's engine-internal state (§4.2): a meta-node plus
// the externally-written value and the Data collaborator functions this
// cell's type needs.
type cellNode struct {
	meta     *metaNode
	value    any
	dataEq   func(a, b any) bool
	sanitize func(any) any
}

// Cell is a typed handle to a mutable input node (§6 cell/set/force).
type Cell[V any] struct {
	n *cellNode
}

// NewCell creates a fresh MutCell holding value, using eq to detect
// no-op writes and sanitize to copy values crossing the DCG boundary
// (§6's Data.equal / Data.sanitize contract).
func NewCell[V any](eng *Engine, value V, eq func(a, b V) bool, sanitize func(V) V) Cell[V] {
	meta := eng.newNode()
	cn := &cellNode{meta: meta}
	cn.dataEq = func(a, b any) bool { return eq(a.(V), b.(V)) }
	cn.sanitize = func(v any) any { return sanitize(v.(V)) }
	cn.value = cn.sanitize(value)
	eng.recordCreate(meta)
	return Cell[V]{n: cn}
}

// Set mutates the cell (§4.2). It is forbidden while any force context
// is active (returns a *MisuseError wrapping ErrSetDuringForce). If the
// new value equals the old one under the configured equality, this is a
// no-op: no dirtying, no sequence bump. Otherwise the new value is
// recorded, dirty() propagates from the cell's meta-node, and the
// engine's global sequence counter is bumped.
func (c Cell[V]) Set(eng *Engine, value V) error {
	if eng.inFrame() {
		return misuse("Set", ErrSetDuringForce)
	}
	sanitized := c.n.sanitize(value)
	if c.n.dataEq(c.n.value, sanitized) {
		return nil // no-op: equal under Data.equal
	}
	c.n.value = sanitized
	eng.Stats.Sets++
	eng.seq++
	eng.dirty(c.n.meta)
	return nil
}

// Force returns the cell's current value and, if called from inside an
// active thunk evaluation, records a Clean force edge from the cell to
// the enclosing thunk (§4.2's force(cell), §4.5 step 1).
func (c Cell[V]) Force(eng *Engine) V {
	value := eng.forceCell(c.n)
	return value.(V)
}

// forceCell implements step 1 of §4.5's force() for a MutCell: the value
// is always fetched under Consistent state, since a cell has no cached
// staleness of its own — it is either unset-since-creation or exactly as
// last Set.
func (eng *Engine) forceCell(cn *cellNode) any {
	check := func() (unchanged bool, state DCGState, err error) {
		// A force edge to a cell is only ever invoked by repair() when
		// Dirty, and Set only dirties on a real value change (§4.2), so
		// reaching here always means the value changed.
		return false, Consistent, nil
	}
	eng.recordForce(cn.meta, check, Consistent, nil)
	return cn.value
}
