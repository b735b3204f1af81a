package dcg

// repair implements §4.6: walk sn's recorded force edges in evaluation
// order, repairing each Dirty source along the way, and re-evaluate sn
// from scratch the moment any of them turns out to have actually
// changed. A node whose every edge is confirmed Clean (or Obsolete, and
// therefore moot) is repaired without running its body again.
func (eng *Engine) repair(sn *suspNode) (any, DCGState, error) {
	combined := Consistent
	for _, e := range sn.forces {
		switch e.flag {
		case Clean:
			// nothing to do
		case Obsolete:
			// source was evicted; this edge no longer constrains sn
		case DirtyToClean:
			// Found mid-repair again: a cycle, or this node's own
			// check closure re-entering through another dependent.
			// §9 calls this the conservative case: treat the source as
			// changed rather than risk missing a real change.
			eng.warnInconsistency("dcg: edge to node %d found DirtyToClean mid-repair; re-evaluating %d conservatively", e.dependent.id, sn.meta.id)
			return eng.evaluate(sn)
		case Dirty:
			e.flag = DirtyToClean
			unchanged, state, err := e.check()
			if err != nil {
				return nil, MaybeInconsistent, err
			}
			if !unchanged {
				return eng.evaluate(sn)
			}
			// §4.6: unchanged alone is not enough to call the edge Clean
			// again — if the source's own repair could only certify
			// Maybe_inconsistent (one of its own edges is still
			// Dirty/Obsolete), this edge must stay Dirty too, so a later
			// repair still re-checks it instead of skipping it outright.
			if state == Consistent {
				e.flag = Clean
			} else {
				e.flag = Dirty
			}
			combined = combined.Meet(state)
		}
	}
	eng.Stats.Repairs++
	return sn.value, combined, nil
}
