package dcg

import "github.com/katalvlaran/grifola/dcgmemo"

// EvictionTime names when a configured eviction policy is consulted.
// OnFlush is the only value the core spec names, so it is the only one
// implemented; other trigger points are an open question for a host
// that wants eviction mid-computation rather than between interactions.
type EvictionTime int

const (
	// OnFlush consults the eviction policy only from Flush, alongside
	// the refcount undo-buffer drain.
	OnFlush EvictionTime = iota
)

// Config holds the recognised engine configuration set from §6. It is
// built via functional Options, the same shape as lvlath's
// core.GraphOption / builder.BuilderOption.
type Config struct {
	RefCount         bool
	DirtyExactly     bool
	CheckReceipt     bool
	SanitizePointers bool
	DisableNames     bool
	GenerativeIDs    bool
	DisableMfns      bool
	DebugAssert      bool

	EvictionPolicy dcgmemo.Evictor
	EvictionTime   EvictionTime

	Warnf func(format string, args ...any)
}

// defaultConfig matches the spec's stated defaults: refcounting enabled,
// exact dirtying (obsolete edges eagerly), receipt-checking enabled,
// no pointer sanitization, names enabled, classical-Adapton generative
// ids disabled, mfns enabled, debug asserts off, no eviction policy.
func defaultConfig() Config {
	return Config{
		RefCount:     true,
		DirtyExactly: true,
		CheckReceipt: true,
		EvictionTime: OnFlush,
		Warnf:        func(string, ...any) {},
	}
}

// Option configures an Engine before construction.
type Option func(*Config)

// WithRefCount toggles refc-based eviction (§6 ref_count).
func WithRefCount(enabled bool) Option {
	return func(c *Config) { c.RefCount = enabled }
}

// WithDirtyExactly toggles obsoleting old outgoing edges at
// re-evaluation time versus deferring (§6 dirty_exactly).
func WithDirtyExactly(enabled bool) Option {
	return func(c *Config) { c.DirtyExactly = enabled }
}

// WithCheckReceipt toggles cache-equal-result suppression; when
// disabled every dirty edge forces re-evaluation (§6 check_receipt).
func WithCheckReceipt(enabled bool) Option {
	return func(c *Config) { c.CheckReceipt = enabled }
}

// WithSanitizePointers passes every Mfn body's result through the value
// type's Data.Sanitize before it is cached (§6 sanitize_pointers). Handles
// themselves are not copied on force, and Thunk and Cell values are not
// affected by this option.
func WithSanitizePointers(enabled bool) Option {
	return func(c *Config) { c.SanitizePointers = enabled }
}

// WithDisableNames treats nominal calls as generative (§6 disable_names).
func WithDisableNames(enabled bool) Option {
	return func(c *Config) { c.DisableNames = enabled }
}

// WithGenerativeIDs enables classical-Adapton identity (§6 generative_ids).
func WithGenerativeIDs(enabled bool) Option {
	return func(c *Config) { c.GenerativeIDs = enabled }
}

// WithDisableMfns collapses every Art/Nart call to a fresh, unmemoized
// node, for measuring memoization's effect (§6 disable_mfns): the memo
// table is never consulted or populated, so repeat calls always miss,
// and — per §9 — no creation edge is recorded for the node either, so
// it carries no memo-table-shaped bookkeeping at all. Forcing the
// returned handle still records the usual dependency edge; see
// memo.go's newUntracked.
func WithDisableMfns(enabled bool) Option {
	return func(c *Config) { c.DisableMfns = enabled }
}

// WithDebugAssert enables the cross-goroutine reentrancy guard in
// reentrancy.go (§6 debug_assert): pushing a force frame from a goroutine
// other than the one that pushed the outermost frame panics with a
// *MisuseError. It does not check the flags of any frame's edges.
func WithDebugAssert(enabled bool) Option {
	return func(c *Config) { c.DebugAssert = enabled }
}

// WithEviction installs an eviction policy and the point at which it is
// consulted (§6 eviction_policy / eviction_time). Orthogonal to
// RefCount: the policy only prioritizes among already-zero-refc entries,
// it never forces eviction of a live node.
func WithEviction(policy dcgmemo.Evictor, when EvictionTime) Option {
	return func(c *Config) {
		c.EvictionPolicy = policy
		c.EvictionTime = when
	}
}

// WithWarnf installs the sink for DCGInconsistencyWarning diagnostics
// (§7). It is a functional hook rather than a logging dependency, the
// same shape as lvlath/bfs's OnVisit/OnEnqueue/OnDequeue hooks.
func WithWarnf(fn func(format string, args ...any)) Option {
	return func(c *Config) {
		if fn != nil {
			c.Warnf = fn
		}
	}
}
