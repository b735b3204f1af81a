package dcg

// pinExternal implements I5's "+1 per pending external finalizer" term
// for a node forced or created outside any active frame (i.e. directly
// by host code rather than by another thunk's body).
//
// §9 names two ways a host can release such a pin: a language runtime
// finalizer, or an explicit scoped acquire/release wrapper "where
// finalizers are unavailable". This engine takes the second option
// unconditionally: §5 makes the Engine explicitly not safe for
// concurrent use, and a runtime finalizer callback runs on its own
// goroutine at a time the host cannot control, which would violate
// that contract the first time a finalizer fired concurrently with
// ordinary use. Pins are instead released deterministically by calling
// Release on the handle, or never released at all for handles the host
// intends to keep for the Engine's whole lifetime (e.g. the return
// value of a top-level thunk).
func (eng *Engine) pinExternal(meta *metaNode) {
	if meta.externalPinned {
		return
	}
	meta.externalPinned = true
	eng.incrRefc(meta)
}

// unpinExternal releases a pin installed by pinExternal. Safe to call
// more than once; only the first call after pinning has any effect.
func (eng *Engine) unpinExternal(meta *metaNode) {
	if !meta.externalPinned {
		return
	}
	meta.externalPinned = false
	eng.decrRefc(meta, false)
}

// Release drops this cell's external pin, if any, allowing the engine
// to reclaim it once nothing else references it. Calling Force again
// after Release re-pins it.
func (c Cell[V]) Release(eng *Engine) {
	eng.unpinExternal(c.n.meta)
}
