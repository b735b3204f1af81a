package dcg

// Name is the external Name collaborator contract (§6): an opaque,
// comparable, hashable, pairable identity the host supplies so nominal
// memoization can be keyed by meaning rather than by argument shape.
// dcgname provides a default implementation; hosts may supply their own.
type Name interface {
	Equal(other Name) bool
	Hash() uint64
	Pair(other Name) Name
	Fork() (first, second Name)
	String() string
}

// Data is the external Data collaborator contract (§6) for a value type
// V flowing in or out of the DCG: equality for change detection and
// sanitize for copying values across the mutable/immutable boundary.
// dcgdata provides comparable-based and cloneable implementations.
type Data[V any] interface {
	Equal(a, b V) bool
	Sanitize(v V) V
}
