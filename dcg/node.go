package dcg

import "github.com/katalvlaran/grifola/weakset"

// Flag is the state of a dependency edge (ForceEdge) or creation edge
// (MutEdge), per §3's flag lattice.
type Flag uint8

const (
	// Clean means the edge was last confirmed consistent.
	Clean Flag = iota
	// Dirty means an ancestor cell or creator changed since this edge
	// was last Clean, and no repair has since visited it.
	Dirty
	// DirtyToClean marks an edge currently under repair; found in this
	// state again during the same walk indicates a cycle or concurrent
	// descent and is handled conservatively (§4.6, the "XXX" case).
	DirtyToClean
	// Obsolete means the edge's source node was evicted; the edge is
	// inert and kept only until its owning slice is compacted.
	Obsolete
)

// DCGState summarizes whether a subgraph is known fully consistent or
// only possibly so.
type DCGState uint8

const (
	// Consistent: nothing on the path observed could have changed.
	Consistent DCGState = iota
	// MaybeInconsistent: some outgoing edge was Dirty or Obsolete when
	// last examined.
	MaybeInconsistent
)

// Meet combines two DCGStates the way §4.7 combines outgoing forces and
// mut-edges: Consistent only if both sides are.
func (s DCGState) Meet(other DCGState) DCGState {
	if s == Consistent && other == Consistent {
		return Consistent
	}
	return MaybeInconsistent
}

// nodeState is a MetaNode's own state, independent of its edges' flags.
type nodeState uint8

const (
	// ok means normal operation: outgoing edge flags alone decide
	// whether a repair must re-evaluate.
	ok nodeState = iota
	// filthy means this node's argument or a creator changed; the next
	// repair must re-evaluate unconditionally (I3).
	filthy
)

// forceEdge is a dependency: it lives in its SOURCE node's dependents
// set and names the node that forced the source (§3 ForceEdge).
type forceEdge struct {
	dependent *metaNode
	flag      Flag
	// check repairs the source node this edge belongs to and reports
	// whether its value was unchanged, plus the resulting DCGState.
	check func() (unchanged bool, state DCGState, err error)
	undo  func()
}

func (e *forceEdge) PeerID() uint64 { return e.dependent.id }
func (e *forceEdge) Obsolete() bool { return e.flag == Obsolete }

// mutEdge is a creation edge: it lives in the CREATED node's mutators
// set and names the node inside whose evaluation it was created (§3
// MutEdge).
type mutEdge struct {
	creator *metaNode
	flag    Flag
	undo    func()
}

func (e *mutEdge) PeerID() uint64 { return e.creator.id }
func (e *mutEdge) Obsolete() bool { return e.flag == Obsolete }

// metaNode is the identity and reverse-edge record every DCG node
// carries (§3 MetaNode). The root node (created once per Engine) has
// id 0.
type metaNode struct {
	id         uint64
	dependents *weakset.Set[*forceEdge]
	mutators   *weakset.Set[*mutEdge]
	state      nodeState

	// refc is the node's reference count (I5): live incoming force +
	// create edges, plus one per pending external (root-context)
	// finalizer. At zero the node is torn down.
	refc int

	// torndown is set once teardown has run, so undo closures stay
	// idempotent under repeated Obsolete-flag transitions (§5).
	torndown bool

	// teardown runs the node-kind-specific half of §4.9's destroy step:
	// flagging this node's own outgoing edges Obsolete. It does not remove
	// the node's memo-table row; Mfn lookups skip torn-down rows instead.
	teardown func()

	// externalPinned is set once some code outside any force frame has
	// forced or created this node, contributing the "+1 per pending
	// external finalizer" refc term from I5. See finalizer.go.
	externalPinned bool
}

func newMetaNode(id uint64) *metaNode {
	return &metaNode{
		id:         id,
		dependents: weakset.New[*forceEdge](),
		mutators:   weakset.New[*mutEdge](),
	}
}

// markFilthy implements §4.4's mark_filthy: set Filthy and dirty the
// reverse graph.
func (n *metaNode) markFilthy(eng *Engine) {
	n.state = filthy
	eng.dirty(n)
}
