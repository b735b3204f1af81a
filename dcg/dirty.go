package dcg

// dirty implements §4.4's mark_dirty: a reverse breadth-first walk over
// meta.dependents only. Each Clean force edge is flipped Dirty and its
// dependent enqueued, since that dependent's cached value may no longer
// reflect meta's current content. Already-Dirty or Obsolete edges stop
// the walk along that branch: repeated dirtying from multiple
// independent writes converges without duplicate work, mirroring the
// queued/visited split bfs.Traverse uses for plain graph walks.
//
// Creation edges (mutators) are deliberately NOT walked here: per §4.4
// dirty() only concerns itself with who FORCED meta, not who CREATED
// it. A node's creator is not generally interested in meta's current
// value just because it built meta; cascading Filthy to creators on
// every dirty() call would over-invalidate ordinary cell writes. The
// one place a creator legitimately needs to be told "meta changed out
// from under you" is the nominal-rekey path (§4.8), which has its own,
// narrower rule — see markRekeyedMutatorsFilthy.
func (eng *Engine) dirty(meta *metaNode) {
	queue := []*metaNode{meta}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		var next []*metaNode
		cur.dependents.Fold(func(e *forceEdge) {
			if e.flag != Clean {
				return
			}
			e.flag = Dirty
			eng.Stats.DirtyMarks++
			next = append(next, e.dependent)
		})
		queue = append(queue, next...)
	}
}

// markRekeyedMutatorsFilthy implements §4.8's Nart-rekey mutator rule:
// when a nominal memo entry's argument changes under a stable Name, any
// of its creators OTHER than the currently-running thunk and the root
// must be marked Filthy, since that creator's own prior evaluation
// built meta under an argument that no longer holds. The currently-running
// thunk is excluded because it is the one performing the rekey (it is
// not stale with respect to a value it has not finished producing yet),
// and the root is excluded because it has no body to re-evaluate.
func (eng *Engine) markRekeyedMutatorsFilthy(meta *metaNode) {
	top := eng.top()
	var current *metaNode
	if top != nil {
		current = top.edgeSrc
	}

	var toMark []*metaNode
	meta.mutators.Fold(func(e *mutEdge) {
		if e.flag == Obsolete {
			return
		}
		if e.creator == current || e.creator == eng.root {
			return
		}
		if e.creator.state == filthy {
			return
		}
		toMark = append(toMark, e.creator)
	})
	for _, creator := range toMark {
		creator.markFilthy(eng)
	}
}
