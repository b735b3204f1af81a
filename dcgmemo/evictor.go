package dcgmemo

import "container/list"

// Evictor tracks candidate order for memo-table entries and is
// consulted at the engine's configured EvictionTime. Touch records that
// an entry identified by key was just created or hit; EvictCandidate
// returns, in policy order, the next key the policy would prefer to see
// reclaimed first. The caller (the engine's refcount/undo-buffer logic)
// is the only place that actually checks refc == 0 before tearing
// anything down, so an Evictor can be consulted freely without risking a
// live node.
type Evictor interface {
	Touch(key uint64)
	EvictCandidate() (key uint64, ok bool)
	Forget(key uint64)
}

// None is the zero-value, always-empty Evictor: refcounting alone
// governs lifetime (the spec's default).
type None struct{}

func (None) Touch(uint64)                      {}
func (None) EvictCandidate() (uint64, bool)    { return 0, false }
func (None) Forget(uint64)                     {}

// Fifo is a bounded first-in-first-out candidate queue of the last k
// distinct keys touched. Touching an already-present key does not move
// it; only first insertion establishes its position.
type Fifo struct {
	k       int
	order   *list.List
	elemOf  map[uint64]*list.Element
}

// NewFifo returns a Fifo that remembers at most k distinct keys.
func NewFifo(k int) *Fifo {
	return &Fifo{k: k, order: list.New(), elemOf: make(map[uint64]*list.Element)}
}

func (f *Fifo) Touch(key uint64) {
	if _, ok := f.elemOf[key]; ok {
		return
	}
	f.elemOf[key] = f.order.PushBack(key)
	for f.order.Len() > f.k {
		f.evictFront()
	}
}

func (f *Fifo) evictFront() {
	front := f.order.Front()
	if front == nil {
		return
	}
	f.order.Remove(front)
	delete(f.elemOf, front.Value.(uint64))
}

func (f *Fifo) EvictCandidate() (uint64, bool) {
	front := f.order.Front()
	if front == nil {
		return 0, false
	}
	return front.Value.(uint64), true
}

func (f *Fifo) Forget(key uint64) {
	if e, ok := f.elemOf[key]; ok {
		f.order.Remove(e)
		delete(f.elemOf, key)
	}
}

// Lru is a bounded least-recently-used candidate list: every Touch moves
// the key to the most-recently-used end, so EvictCandidate always
// surfaces the least recently touched key first. Grounded on the
// corpus's container/list-backed query-plan cache.
type Lru struct {
	k      int
	order  *list.List
	elemOf map[uint64]*list.Element
}

// NewLru returns an Lru that remembers at most k distinct keys.
func NewLru(k int) *Lru {
	return &Lru{k: k, order: list.New(), elemOf: make(map[uint64]*list.Element)}
}

func (l *Lru) Touch(key uint64) {
	if e, ok := l.elemOf[key]; ok {
		l.order.MoveToBack(e)
		return
	}
	l.elemOf[key] = l.order.PushBack(key)
	for l.order.Len() > l.k {
		front := l.order.Front()
		l.order.Remove(front)
		delete(l.elemOf, front.Value.(uint64))
	}
}

func (l *Lru) EvictCandidate() (uint64, bool) {
	front := l.order.Front()
	if front == nil {
		return 0, false
	}
	return front.Value.(uint64), true
}

func (l *Lru) Forget(key uint64) {
	if e, ok := l.elemOf[key]; ok {
		l.order.Remove(e)
		delete(l.elemOf, key)
	}
}
