package dcg

// force is the top-level §4.5 algorithm for a suspension node: evaluate
// it outright if it has never run or is Filthy, otherwise repair it,
// then record the dependency edge this force creates (or the external
// pin, if called outside any frame).
func (eng *Engine) force(sn *suspNode) (any, error) {
	var (
		value any
		state DCGState
		err   error
	)
	if sn.meta.state == filthy || !sn.evaluated {
		value, state, err = eng.evaluate(sn)
	} else {
		value, state, err = eng.repair(sn)
	}
	if err != nil {
		return nil, err
	}
	eng.recordForce(sn.meta, sn.checkClosure(eng), state, nil)
	return value, nil
}

// checkClosure builds the closure a dependent's repair calls when it
// finds a Dirty edge to sn: repair/evaluate sn again and report whether
// its value is safe to treat as unchanged. Plain (non-memoized)
// suspensions carry no typed equality, so this is always conservative:
// a Dirty edge to a bare Handle always forces its dependent to
// re-evaluate too. Memoized thunks (memo.go) use this same closure with
// sn.equalValue set from the Data collaborator's equal.
func (sn *suspNode) checkClosure(eng *Engine) func() (bool, DCGState, error) {
	return func() (bool, DCGState, error) {
		old := sn.value
		hadValue := sn.evaluated
		newValue, state, err := eng.forceNoEdge(sn)
		if err != nil {
			return false, state, err
		}
		if !eng.cfg.CheckReceipt || sn.equalValue == nil || !hadValue {
			return false, state, nil
		}
		return sn.equalValue(old, newValue), state, nil
	}
}

// forceNoEdge re-evaluates/repairs sn without recording a new
// dependency edge, used from inside check closures where the edge
// already exists and is merely being re-verified.
func (eng *Engine) forceNoEdge(sn *suspNode) (any, DCGState, error) {
	if sn.meta.state == filthy || !sn.evaluated {
		return eng.evaluate(sn)
	}
	return eng.repair(sn)
}

// evaluate implements §4.7. When DirtyExactly is set (the default), the
// node's previous outgoing edges are obsoleted up front, since a re-run
// may take an entirely different path through its dependencies and the
// old edges cannot be trusted to mean anything once the body starts
// again. With DirtyExactly off, the old edges are left alone until the
// body finishes, then only the ones the fresh run did not reproduce are
// obsoleted — cheaper when a thunk usually re-forces the same
// dependencies in the same order, at the cost of edges sitting stale a
// little longer.
func (eng *Engine) evaluate(sn *suspNode) (value any, state DCGState, err error) {
	oldForces, oldCreates := sn.forces, sn.creates
	if eng.cfg.DirtyExactly {
		obsoleteForces(oldForces)
		obsoleteCreates(oldCreates)
		sn.forces, sn.creates = nil, nil
	}

	f := eng.pushFrame(sn.meta)
	defer func() {
		eng.popFrame()
		if r := recover(); r != nil {
			err = &PanicDuringBody{NodeID: sn.meta.id, Value: r}
		}
	}()

	v, berr := sn.body(eng)
	if berr != nil {
		sn.evaluated = false
		sn.err = berr
		return nil, MaybeInconsistent, berr
	}

	if !eng.cfg.DirtyExactly {
		obsoleteStaleForces(oldForces, f.obsEdges)
		obsoleteStaleCreates(oldCreates, f.mutEdges)
	}

	sn.value = v
	sn.evaluated = true
	sn.err = nil
	sn.forces = f.obsEdges
	sn.creates = f.mutEdges
	sn.meta.state = ok
	eng.Stats.Evaluations++

	return v, Consistent, nil
}

// obsoleteStaleForces retires entries of old that do not appear in
// fresh (by source identity), used by the deferred-obsolete path above.
func obsoleteStaleForces(old, fresh []*forceEdge) {
	keep := make(map[*forceEdge]struct{}, len(fresh))
	for _, e := range fresh {
		keep[e] = struct{}{}
	}
	for _, e := range old {
		if _, ok := keep[e]; ok {
			continue
		}
		if e.flag == Obsolete {
			continue
		}
		e.flag = Obsolete
		if e.undo != nil {
			e.undo()
		}
	}
}

func obsoleteStaleCreates(old, fresh []*mutEdge) {
	keep := make(map[*mutEdge]struct{}, len(fresh))
	for _, e := range fresh {
		keep[e] = struct{}{}
	}
	for _, e := range old {
		if _, ok := keep[e]; ok {
			continue
		}
		if e.flag == Obsolete {
			continue
		}
		e.flag = Obsolete
		if e.undo != nil {
			e.undo()
		}
	}
}
