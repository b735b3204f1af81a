package dcgname

import (
	"hash/fnv"
	"sync"

	"github.com/google/uuid"
	"github.com/katalvlaran/grifola/dcg"
)

// Label is the default dcg.Name: a plain interned string. Two Labels
// built from equal strings are Equal and, because the constructors
// intern, are also the same *Label value.
type Label struct {
	s string
}

var (
	internMu sync.Mutex
	intern   = make(map[string]*Label)
)

func internLabel(s string) *Label {
	internMu.Lock()
	defer internMu.Unlock()
	if l, ok := intern[s]; ok {
		return l
	}
	l := &Label{s: s}
	intern[s] = l
	return l
}

// OfString wraps a host-chosen string as a Name. Pure: the same string
// always yields an Equal (and pointer-identical) Label.
func OfString(s string) dcg.Name {
	return internLabel(s)
}

// Gensym mints a fresh Name unrelated to any other, for call sites that
// want a unique nominal identity without choosing a label themselves.
// Unlike OfString/Pair/Fork, it is intentionally not pure.
func Gensym() dcg.Name {
	return internLabel(uuid.NewString())
}

func (l *Label) Equal(other dcg.Name) bool {
	o, ok := other.(*Label)
	return ok && o.s == l.s
}

func (l *Label) Hash() uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(l.s))
	return h.Sum64()
}

// Pair combines l with other into a single derived Name, for keying a
// computation on more than one identity at once (e.g. a function name
// paired with an argument's name).
func (l *Label) Pair(other dcg.Name) dcg.Name {
	if o, ok := other.(*Label); ok {
		return internLabel(l.s + "," + o.s)
	}
	return internLabel(l.s + "," + other.String())
}

// Fork deterministically derives two child Names from l, so that
// forking the same Name twice (e.g. across two runs of an unchanged
// computation) always yields the same pair (§9's recursive-descent
// naming idiom: nm -> (nm/0, nm/1)).
func (l *Label) Fork() (first, second dcg.Name) {
	return internLabel(l.s + "/0"), internLabel(l.s + "/1")
}

func (l *Label) String() string { return l.s }
