package dcgdata

// Comparable implements dcg.Data for any comparable type: equality is
// Go's built-in ==, and sanitize is the identity (value types need no
// copy to cross the DCG boundary safely).
type Comparable[V comparable] struct{}

func (Comparable[V]) Equal(a, b V) bool { return a == b }
func (Comparable[V]) Sanitize(v V) V    { return v }

// Cloneable implements dcg.Data for a reference-containing type V that
// must be deep-copied on its way into or out of a cell or memo entry,
// the way lvlath's core.(*Graph).Clone copies adjacency state before
// handing a Graph to a caller that might mutate it. Eq compares two
// values for the change-detection the engine needs; Clone produces an
// independent copy.
type Cloneable[V any] struct {
	Eq    func(a, b V) bool
	Clone func(v V) V
}

func (c Cloneable[V]) Equal(a, b V) bool { return c.Eq(a, b) }
func (c Cloneable[V]) Sanitize(v V) V    { return c.Clone(v) }
