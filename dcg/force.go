package dcg

// recordForce implements §4.5 steps 3–4: given the node that was just
// forced (source) and a check closure that repairs it on demand, either
// merge a force edge into the current frame (interior force) or pin the
// node for external holders (no frame active).
//
// Source's refc is incremented when a fresh edge to it is actually
// created (not on a merge-hit), for cells and suspensions alike, per
// "increment source-node refc on edge creation". onFreshEdge, if
// non-nil, is invoked at that same point; both callers in this package
// (forceCell and force) pass nil.
func (eng *Engine) recordForce(source *metaNode, check func() (bool, DCGState, error), state DCGState, onFreshEdge func()) {
	top := eng.top()
	if top == nil {
		eng.pinExternal(source)
		return
	}

	flag := Clean
	if state != Consistent {
		flag = Dirty
	}
	candidate := &forceEdge{
		dependent: top.edgeSrc,
		flag:      flag,
		check:     check,
	}
	candidate.undo = func() { eng.decrRefc(source, false) }

	merged := source.dependents.Merge(candidate)
	if merged == candidate {
		eng.incrRefc(source)
		if onFreshEdge != nil {
			onFreshEdge()
		}
	}
	top.obsEdges = append(top.obsEdges, merged)
}

// pushFrame starts a fresh force frame for evaluating meta, per §4.7
// step 2.
func (eng *Engine) pushFrame(meta *metaNode) *frame {
	eng.checkReentrancy()
	f := &frame{edgeSrc: meta}
	eng.stack = append(eng.stack, f)
	return f
}

// popFrame pops the current frame. Always called, including on panic,
// per §4.7 step 4 / §5's unwind guarantee.
func (eng *Engine) popFrame() *frame {
	n := len(eng.stack)
	f := eng.stack[n-1]
	eng.stack = eng.stack[:n-1]
	return f
}

// recordCreate merges a fresh mutation (creation) edge into child's
// mutators set, attributing child's creation to the currently-running
// thunk, or pinning child externally if no frame is active. Used by
// Thunk/Cell/Mfn constructors called from inside a body (§5's "child
// creations within a parent are attributed to that parent").
func (eng *Engine) recordCreate(child *metaNode) {
	top := eng.top()
	if top == nil {
		eng.pinExternal(child)
		return
	}
	candidate := &mutEdge{creator: top.edgeSrc, flag: Clean}
	candidate.undo = func() { eng.decrRefc(child, false) }
	merged := child.mutators.Merge(candidate)
	if merged == candidate {
		eng.incrRefc(child)
	}
	top.mutEdges = append(top.mutEdges, merged)
}
