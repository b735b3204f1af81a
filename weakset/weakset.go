package weakset

// Elt is a member of a Set. PeerID identifies the "other end" of the
// reverse edge this member represents (the dependent of a force edge, or
// the creator of a mutation edge) and is what Merge matches members on.
// It does not affect Fold's traversal order, which is insertion order.
// Obsolete reports whether the
// member has already been torn down and should be dropped the next time
// the set is compacted.
type Elt interface {
	PeerID() uint64
	Obsolete() bool
}

// Set is a slice-backed bag of weakly-held edge records, searched linearly
// by PeerID. It supports Merge,
// which returns an existing equal (same PeerID, still live) member if one
// is present, and Fold, which visits every live member in insertion order
// and compacts away anything Obsolete along the way.
//
// Set is not safe for concurrent use: the engine it backs is explicitly
// single-threaded (see the engine's concurrency notes), so no locking is
// attempted here.
type Set[T Elt] struct {
	items []T
}

// New returns an empty Set.
func New[T Elt]() *Set[T] {
	return &Set[T]{}
}

// Merge returns a pre-existing live member whose PeerID matches elt's, if
// any; otherwise it inserts elt and returns it unchanged. This is how the
// force engine avoids recording two distinct force edges from the same
// dependent to the same source.
func (s *Set[T]) Merge(elt T) T {
	for _, e := range s.items {
		if e.Obsolete() {
			continue
		}
		if e.PeerID() == elt.PeerID() {
			return e
		}
	}
	s.items = append(s.items, elt)
	return elt
}

// Fold visits every currently-live member, in the order they were first
// merged in, calling visit for each. Obsolete members encountered along
// the way are dropped from the underlying storage in place, so repeated
// Folds get cheaper as a node's reverse edges die off.
func (s *Set[T]) Fold(visit func(T)) {
	live := s.items[:0]
	for _, e := range s.items {
		if e.Obsolete() {
			continue
		}
		live = append(live, e)
	}
	s.items = live
	for _, e := range s.items {
		visit(e)
	}
}

// Len reports the number of members currently stored, including any not
// yet compacted away by a Fold. Callers that need an exact live count
// should Fold with a counting visitor instead.
func (s *Set[T]) Len() int {
	return len(s.items)
}
