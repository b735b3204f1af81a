package dcg

// incrRefc bumps a node's reference count (I5): called once per live
// incoming force/create edge, and once per pending external finalizer.
func (eng *Engine) incrRefc(meta *metaNode) {
	meta.refc++
}

// decrRefc implements §4.9's decr_refc. When refc reaches zero the node
// is torn down: immediately if undoNow is true, otherwise deferred into
// the process-wide undo buffer and drained by the next Flush. decrRefc
// on a node that has no teardown registered (e.g. the root node) is a
// safe no-op past zero.
func (eng *Engine) decrRefc(meta *metaNode, undoNow bool) {
	if meta.refc <= 0 {
		return
	}
	meta.refc--
	if meta.refc > 0 {
		return
	}
	if !eng.cfg.RefCount {
		// Refcounting disabled: nodes are never torn down by this path.
		return
	}
	if undoNow {
		eng.teardown(meta)
	} else {
		eng.undoBuff[meta] = struct{}{}
	}
}

// teardown runs §4.9's destroy step: the node is dropped from the
// eviction policy, then the node-kind-specific teardown closure runs,
// which for a suspension flags every outgoing force and create edge it
// recorded Obsolete and invokes its undo closure. Memo-table rows are
// not removed here; Mfn lookups skip rows whose node is torn down.
// Idempotent: a node already torn down is left alone.
func (eng *Engine) teardown(meta *metaNode) {
	if meta.torndown {
		return
	}
	meta.torndown = true
	eng.Stats.Teardowns++
	eng.cfg.EvictionPolicy.Forget(meta.id)
	if meta.teardown != nil {
		meta.teardown()
	}
}

// obsoleteForces and obsoleteCreates flag a slice of outgoing force edges
// or mut edges Obsolete and run their undo closures right away (each undo
// defers any resulting teardown to the undo buffer), implementing the "unconditionally
// obsolete my own outgoing edges" half of teardown and of exactly-dirty
// re-evaluation (§4.7 step 1).
func obsoleteForces(forces []*forceEdge) {
	for _, e := range forces {
		if e.flag == Obsolete {
			continue
		}
		e.flag = Obsolete
		if e.undo != nil {
			e.undo()
		}
	}
}

func obsoleteCreates(creates []*mutEdge) {
	for _, e := range creates {
		if e.flag == Obsolete {
			continue
		}
		e.flag = Obsolete
		if e.undo != nil {
			e.undo()
		}
	}
}

// Flush drains the undo buffer, destroying every node still at refc
// zero, then consults the configured eviction policy (only meaningful
// at EvictionTime OnFlush, the only trigger point this core implements)
// to reclaim further zero-refc memo entries in policy order. This
// amortizes deletion between top-level interactions, per §4.9.
func (eng *Engine) Flush() {
	// A single range pass is not enough: tearing down a node's own
	// outgoing edges can feed fresh zero-refc nodes into undoBuff while
	// this very map is being iterated, and Go does not guarantee those
	// are visited in the same range. Drain to a fixed point instead.
	for len(eng.undoBuff) > 0 {
		var next *metaNode
		for meta := range eng.undoBuff {
			next = meta
			break
		}
		delete(eng.undoBuff, next)
		if next.refc == 0 {
			// A node re-referenced since it was buffered stays alive.
			eng.teardown(next)
		}
	}

	if eng.cfg.EvictionTime != OnFlush {
		return
	}
	for {
		key, ok := eng.cfg.EvictionPolicy.EvictCandidate()
		if !ok {
			break
		}
		meta := eng.metaByEvictionKey(key)
		eng.cfg.EvictionPolicy.Forget(key)
		if meta == nil || meta.refc != 0 || meta.torndown {
			// Stale candidate: already reclaimed, or re-referenced since
			// being queued. Drop it and keep scanning; a FIFO policy in
			// particular does not reorder on a hit, so a later, genuinely
			// dead candidate can still be sitting further back.
			continue
		}
		eng.teardown(meta)
	}
}
