package dcg

// suspNode is a SuspensionNode's engine-internal state (§3): a
// meta-node, the body producing its value, and the outgoing edges its
// last evaluation recorded, kept so a later repair can walk them
// without re-running the body.
type suspNode struct {
	meta *metaNode
	body func(eng *Engine) (any, error)

	evaluated bool
	value     any
	err       error

	// equalValue backs the node's check closure: given the previously
	// cached value and the freshly recomputed one, reports whether a
	// dependent may treat this node as unchanged. nil means no typed
	// equality is available (a bare Thunk), so the closure is always
	// conservative. Mfn entries set this from their Data[V].Equal.
	equalValue func(old, new any) bool

	// forces are the force edges this node recorded as dependent on its
	// last evaluation (each lives in its own source's dependents set;
	// see node.go's forceEdge).
	forces []*forceEdge
	// creates are the nodes this node's last evaluation created.
	creates []*mutEdge
}

// newSuspNode allocates a SuspensionPointer in the Prenode state (§3):
// registered with the engine, not yet evaluated.
func (eng *Engine) newSuspNode(body func(eng *Engine) (any, error)) *suspNode {
	meta := eng.newNode()
	sn := &suspNode{meta: meta, body: body}
	meta.teardown = func() {
		obsoleteForces(sn.forces)
		obsoleteCreates(sn.creates)
		sn.forces = nil
		sn.creates = nil
		sn.value = nil
		sn.evaluated = false
	}
	return sn
}

// Handle is a typed reference to an anonymous suspension thunk (§6's
// thunk/force). Anonymous thunks carry no memoization identity of their
// own: each Thunk call allocates a fresh node, structurally identical
// to forcing a freshly-created, never-shared computation.
type Handle[V any] struct {
	n *suspNode
}

// Thunk creates an anonymous suspension computing body (§4.3). If
// created while another thunk is evaluating, the new node is recorded
// as one of that thunk's creations (§3 MutEdge); otherwise it is
// pinned for the caller directly.
func Thunk[V any](eng *Engine, body func(eng *Engine) (V, error)) Handle[V] {
	sn := eng.newSuspNode(func(eng *Engine) (any, error) {
		return body(eng)
	})
	eng.recordCreate(sn.meta)
	return Handle[V]{n: sn}
}

// Force returns h's current value, repairing or evaluating it as
// needed (§4.5), and records a dependency edge if called from inside
// another thunk's body.
func (h Handle[V]) Force(eng *Engine) (V, error) {
	value, err := eng.force(h.n)
	if err != nil {
		var zero V
		return zero, err
	}
	return value.(V), nil
}

// Release drops h's external pin, if any (see finalizer.go).
func (h Handle[V]) Release(eng *Engine) {
	eng.unpinExternal(h.n.meta)
}
