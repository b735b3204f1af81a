package dcg

// memoEntry is one row of an Mfn's memo table: the node it produced,
// the live argument box that node's body reads, and, for nominal
// entries, the Name it is keyed by. arg is a pointer, not a value, so
// that a nominal re-key (Nart) can mutate the argument the body will
// see on its next re-evaluation rather than a stale copy captured at
// construction time.
type memoEntry[A any, V any] struct {
	sn   *suspNode
	arg  *A
	name Name // nil outside Nart
}

// Mfn is a memoized function (§4.8's mk_mfn / mfn.data / mfn.art /
// mfn.nart): one body, reachable through three identity disciplines
// depending on which entry point the caller uses.
type Mfn[A any, V any] struct {
	eng  *Engine
	body func(eng *Engine, arg A) (V, error)

	argEq   func(a, b A) bool
	argHash func(a A) uint64
	valData Data[V]

	structural map[uint64][]*memoEntry[A, V]
	nominal    map[uint64]*memoEntry[A, V]
}

// NewMfn builds a memoized function bound to eng (§6's mk_mfn). argEq
// and argHash back the structural table's bucketing; valData backs
// real change detection on repair, the payoff over a bare Thunk.
func NewMfn[A any, V any](eng *Engine, body func(eng *Engine, arg A) (V, error), argEq func(a, b A) bool, argHash func(a A) uint64, valData Data[V]) *Mfn[A, V] {
	return &Mfn[A, V]{
		eng:        eng,
		body:       body,
		argEq:      argEq,
		argHash:    argHash,
		valData:    valData,
		structural: make(map[uint64][]*memoEntry[A, V]),
		nominal:    make(map[uint64]*memoEntry[A, V]),
	}
}

// Data runs the body directly, outside the DCG entirely: no node, no
// memoization, no dependency tracking (§6's mfn.data, the escape hatch
// for non-incremental call sites).
func (m *Mfn[A, V]) Data(eng *Engine, arg A) (V, error) {
	return m.body(eng, arg)
}

// Art returns a memoized handle for arg under structural identity: a
// repeat call with an argument equal-under-argEq reuses the same node
// (a memo hit); a new argument allocates a fresh one (a miss). If the
// engine is configured with GenerativeIDs, identity reverts to classic
// Adapton behavior: every call allocates fresh, matching nothing. If
// DisableMfns is set, the memo table is bypassed entirely (§9).
func (m *Mfn[A, V]) Art(eng *Engine, arg A) Handle[V] {
	if eng.cfg.DisableMfns {
		return m.newUntracked(eng, arg)
	}
	if eng.cfg.GenerativeIDs {
		h, _ := m.newTracked(eng, arg, nil)
		return h
	}

	hash := m.argHash(arg)
	for _, e := range m.structural[hash] {
		if e.sn.meta.torndown {
			continue
		}
		if m.argEq(*e.arg, arg) {
			eng.Stats.MemoHits++
			eng.recordCreate(e.sn.meta)
			eng.touchEviction(e.sn.meta)
			return Handle[V]{n: e.sn}
		}
	}

	eng.Stats.MemoMisses++
	h, box := m.newTracked(eng, arg, nil)
	m.structural[hash] = append(m.structural[hash], &memoEntry[A, V]{sn: h.n, arg: box})
	eng.touchEviction(h.n.meta)
	return h
}

// Nart returns a memoized handle keyed by an explicit Name rather than
// by argument shape (§6's mfn.nart): calling it again with the same
// Name but a different argument reuses the node and marks it Filthy, so
// the next force re-runs the body against the new argument — the one
// place an argument may legitimately change under a stable identity
// (§4.8's nominal re-keying). An entry whose node has been torn down is
// treated as absent: the call is a miss and the entry is replaced.
// If names are disabled, Nart is generative: every call allocates a
// fresh node, and name is ignored. If DisableMfns is set, the memo table
// is bypassed entirely (§9).
func (m *Mfn[A, V]) Nart(eng *Engine, name Name, arg A) (Handle[V], error) {
	if eng.cfg.DisableMfns {
		return m.newUntracked(eng, arg), nil
	}
	if eng.cfg.DisableNames {
		h, _ := m.newTracked(eng, arg, nil)
		return h, nil
	}

	key := name.Hash()
	if e, ok := m.nominal[key]; ok && e.name.Equal(name) && !e.sn.meta.torndown {
		if m.argEq(*e.arg, arg) {
			eng.Stats.MemoHits++
			eng.recordCreate(e.sn.meta)
			eng.touchEviction(e.sn.meta)
			return Handle[V]{n: e.sn}, nil
		}
		eng.markRekeyedMutatorsFilthy(e.sn.meta)
		*e.arg = arg
		eng.Stats.MemoMisses++
		eng.recordCreate(e.sn.meta)
		e.sn.meta.markFilthy(eng)
		eng.touchEviction(e.sn.meta)
		return Handle[V]{n: e.sn}, nil
	}

	eng.Stats.MemoMisses++
	h, box := m.newTracked(eng, arg, name)
	m.nominal[key] = &memoEntry[A, V]{sn: h.n, arg: box, name: name}
	eng.touchEviction(h.n.meta)
	return h, nil
}

// newSusp builds the suspension node shared by newTracked and
// newUntracked: its body reads the argument through argBox on every
// (re-)evaluation, so a nominal re-key that mutates *argBox in place is
// observed the next time this node runs, rather than the value the
// closure happened to capture at construction.
func (m *Mfn[A, V]) newSusp(eng *Engine, argBox *A) *suspNode {
	sn := eng.newSuspNode(func(eng *Engine) (any, error) {
		v, err := m.body(eng, *argBox)
		if err == nil && eng.cfg.SanitizePointers && m.valData != nil {
			v = m.valData.Sanitize(v)
		}
		return v, err
	})
	if m.valData != nil {
		sn.equalValue = func(old, new any) bool {
			return m.valData.Equal(old.(V), new.(V))
		}
	}
	return sn
}

// newTracked allocates a fresh suspension node bound to arg and records
// a creation edge for it (§4.5), the normal path for a node that lives
// in one of this Mfn's memo tables. It returns the argument box
// alongside the handle so the caller can stash it in the memoEntry a
// later Nart re-key would mutate.
func (m *Mfn[A, V]) newTracked(eng *Engine, arg A, name Name) (Handle[V], *A) {
	box := new(A)
	*box = arg
	sn := m.newSusp(eng, box)
	eng.recordCreate(sn.meta)
	return Handle[V]{n: sn}, box
}

// newUntracked allocates a suspension node the same way as newTracked
// but records no creation edge and never touches the eviction policy:
// the disable_mfns path (§9) bypasses the memo table entirely and must
// not record create-edges, since the node it returns is never entered
// into structural or nominal and has no memo-table presence for an
// eviction policy to track.
func (m *Mfn[A, V]) newUntracked(eng *Engine, arg A) Handle[V] {
	box := new(A)
	*box = arg
	sn := m.newSusp(eng, box)
	return Handle[V]{n: sn}
}
