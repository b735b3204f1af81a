package dcg_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grifola/dcg"
	"github.com/katalvlaran/grifola/dcgdata"
)

func intEq(a, b int) bool { return a == b }
func intID(v int) int     { return v }
func intHash(v int) uint64 { return uint64(v) }

func newIntCell(eng *dcg.Engine, v int) dcg.Cell[int] {
	return dcg.NewCell(eng, v, intEq, intID)
}

func TestCellSetNoOpOnEqualValue(t *testing.T) {
	eng := dcg.New()
	c := newIntCell(eng, 7)
	require.NoError(t, c.Set(eng, 7))
	require.EqualValues(t, 0, eng.Stats.Sets, "Set with an equal value must not count as a write")
}

func TestCellSetForbiddenDuringForce(t *testing.T) {
	eng := dcg.New()
	c := newIntCell(eng, 1)
	var setErr error
	h := dcg.Thunk[int](eng, func(eng *dcg.Engine) (int, error) {
		setErr = c.Set(eng, 2)
		return c.Force(eng), nil
	})
	_, err := h.Force(eng)
	require.NoError(t, err)
	require.Error(t, setErr)
	var misuse *dcg.MisuseError
	require.True(t, errors.As(setErr, &misuse))
	require.ErrorIs(t, setErr, dcg.ErrSetDuringForce)
}

func TestThunkRecomputesOnlyAfterSet(t *testing.T) {
	eng := dcg.New()
	c := newIntCell(eng, 1)
	h := dcg.Thunk[int](eng, func(eng *dcg.Engine) (int, error) {
		return c.Force(eng) * 2, nil
	})

	v, err := h.Force(eng)
	require.NoError(t, err)
	require.Equal(t, 2, v)
	require.EqualValues(t, 1, eng.Stats.Evaluations)

	v, err = h.Force(eng)
	require.NoError(t, err)
	require.Equal(t, 2, v)
	require.EqualValues(t, 1, eng.Stats.Evaluations, "forcing again with nothing dirtied must not re-run the body")

	require.NoError(t, c.Set(eng, 21))
	v, err = h.Force(eng)
	require.NoError(t, err)
	require.Equal(t, 42, v)
	require.EqualValues(t, 2, eng.Stats.Evaluations)
}

func TestMfnArtStructuralHitAndMiss(t *testing.T) {
	eng := dcg.New()
	calls := 0
	mfn := dcg.NewMfn[int, int](eng, func(eng *dcg.Engine, arg int) (int, error) {
		calls++
		return arg * arg, nil
	}, intEq, intHash, dcgdata.Comparable[int]{})

	h1 := mfn.Art(eng, 5)
	v, err := h1.Force(eng)
	require.NoError(t, err)
	require.Equal(t, 25, v)
	require.EqualValues(t, 1, eng.Stats.MemoMisses)

	h2 := mfn.Art(eng, 5)
	v, err = h2.Force(eng)
	require.NoError(t, err)
	require.Equal(t, 25, v)
	require.EqualValues(t, 1, eng.Stats.MemoHits)
	require.Equal(t, 1, calls, "a structural hit must not re-run the body")

	h3 := mfn.Art(eng, 6)
	_, err = h3.Force(eng)
	require.NoError(t, err)
	require.EqualValues(t, 2, eng.Stats.MemoMisses)
	require.Equal(t, 2, calls)
}

func TestEqualityShortCircuitsDownstreamReevaluation(t *testing.T) {
	eng := dcg.New()
	cell := newIntCell(eng, -5)

	absMfn := dcg.NewMfn[int, int](eng, func(eng *dcg.Engine, _ int) (int, error) {
		v := cell.Force(eng)
		if v < 0 {
			v = -v
		}
		return v, nil
	}, intEq, intHash, dcgdata.Comparable[int]{})
	absHandle := absMfn.Art(eng, 0)

	downstreamRuns := 0
	down := dcg.Thunk[int](eng, func(eng *dcg.Engine) (int, error) {
		downstreamRuns++
		v, err := absHandle.Force(eng)
		return v * 10, err
	})

	v, err := down.Force(eng)
	require.NoError(t, err)
	require.Equal(t, 50, v)
	require.Equal(t, 1, downstreamRuns)

	require.NoError(t, cell.Set(eng, 5)) // abs(-5) == abs(5): value genuinely unchanged
	v, err = down.Force(eng)
	require.NoError(t, err)
	require.Equal(t, 50, v)
	require.Equal(t, 1, downstreamRuns, "down must not re-run once abs's memoized result compares equal")
	require.GreaterOrEqual(t, eng.Stats.Evaluations, uint64(2), "abs itself still had to re-evaluate to find out")
}

type fakeName struct{ s string }

func (n fakeName) Equal(other dcg.Name) bool {
	o, ok := other.(fakeName)
	return ok && o.s == n.s
}
func (n fakeName) Hash() uint64 {
	var h uint64 = 1469598103
	for _, b := range []byte(n.s) {
		h = h*31 + uint64(b)
	}
	return h
}
func (n fakeName) Pair(other dcg.Name) dcg.Name { return fakeName{s: n.s + other.String()} }
func (n fakeName) Fork() (dcg.Name, dcg.Name) {
	return fakeName{s: n.s + "/0"}, fakeName{s: n.s + "/1"}
}
func (n fakeName) String() string { return n.s }

func TestMfnNartRekeysOnArgumentChange(t *testing.T) {
	eng := dcg.New()
	calls := 0
	mfn := dcg.NewMfn[int, int](eng, func(eng *dcg.Engine, arg int) (int, error) {
		calls++
		return arg + 1, nil
	}, intEq, intHash, dcgdata.Comparable[int]{})

	name := fakeName{s: "slot"}
	h1, err := mfn.Nart(eng, name, 10)
	require.NoError(t, err)
	v, err := h1.Force(eng)
	require.NoError(t, err)
	require.Equal(t, 11, v)

	h2, err := mfn.Nart(eng, name, 20)
	require.NoError(t, err)
	v, err = h2.Force(eng)
	require.NoError(t, err)
	require.Equal(t, 21, v, "re-keying under the same Name with a new argument must reflect the new argument")
	require.Equal(t, 2, calls)
}

func TestFlushTearsDownZeroRefcNodes(t *testing.T) {
	eng := dcg.New()
	cell := newIntCell(eng, 1)
	h := dcg.Thunk[int](eng, func(eng *dcg.Engine) (int, error) {
		return cell.Force(eng) + 1, nil
	})
	_, err := h.Force(eng)
	require.NoError(t, err)

	h.Release(eng)
	eng.Flush()
	require.GreaterOrEqual(t, eng.Stats.Teardowns, uint64(1))
}
