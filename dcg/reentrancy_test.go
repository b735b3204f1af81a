package dcg_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/grifola/dcg"
)

func TestDebugAssertCatchesConcurrentReentry(t *testing.T) {
	eng := dcg.New(dcg.WithDebugAssert(true))
	c := newIntCell(eng, 1)

	release := make(chan struct{})
	entered := make(chan struct{})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		h := dcg.Thunk[int](eng, func(eng *dcg.Engine) (int, error) {
			close(entered)
			<-release
			return c.Force(eng), nil
		})
		_, _ = h.Force(eng)
	}()

	<-entered
	h2 := dcg.Thunk[int](eng, func(eng *dcg.Engine) (int, error) {
		return c.Force(eng), nil
	})
	require.Panics(t, func() { h2.Force(eng) })
	close(release)
	wg.Wait()
}

func TestDebugAssertAllowsSequentialReuse(t *testing.T) {
	eng := dcg.New(dcg.WithDebugAssert(true))
	c := newIntCell(eng, 1)
	h := dcg.Thunk[int](eng, func(eng *dcg.Engine) (int, error) {
		return c.Force(eng) + 1, nil
	})
	_, err := h.Force(eng)
	require.NoError(t, err)
	_, err = h.Force(eng)
	require.NoError(t, err)
}
