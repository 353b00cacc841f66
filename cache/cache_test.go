package cache_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/vectorpath/koptsolver/cache"
)

// TestGet_SingleComputationPerKey covers invariant 6 / scenario S5: two
// goroutines racing Get(0, ...) against a slow compute observe the
// computation running exactly once, with both receiving the same value.
func TestGet_SingleComputationPerKey(t *testing.T) {
	c := cache.New[int, int]()

	var calls int32
	release := make(chan struct{})
	compute := func() (int, error) {
		atomic.AddInt32(&calls, 1)
		<-release

		return 42, nil
	}

	var wg sync.WaitGroup
	results := make([]int, 2)
	wg.Add(2)
	for i := 0; i < 2; i++ {
		go func(i int) {
			defer wg.Done()
			v, err := c.Get(0, compute)
			require.NoError(t, err)
			results[i] = v
		}(i)
	}

	// Give both goroutines a chance to arrive at the same pending entry
	// before letting compute finish.
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
	require.Equal(t, []int{42, 42}, results)
}

// TestGet_ErrorIsCachedAndReraised covers invariant 7: once compute fails
// for a key, every subsequent Get re-raises an equivalent error without
// calling compute again.
func TestGet_ErrorIsCachedAndReraised(t *testing.T) {
	c := cache.New[string, int]()
	sentinel := errors.New("boom")

	var calls int32
	failing := func() (int, error) {
		atomic.AddInt32(&calls, 1)

		return 0, sentinel
	}

	_, err := c.Get("k", failing)
	require.ErrorIs(t, err, sentinel)

	// Subsequent calls pass a compute that must never run.
	neverCalled := func() (int, error) {
		t.Fatal("compute must not run again for a resolved key")

		return 0, nil
	}
	_, err = c.Get("k", neverCalled)
	require.ErrorIs(t, err, sentinel)
	require.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

// TestGet_CrossKeyNonBlocking covers invariant 8 / scenario S6: key 0's
// computation waits on a signal that key 1's computation emits. If key 0
// blocked key 1, this test would hang past the bound.
func TestGet_CrossKeyNonBlocking(t *testing.T) {
	c := cache.New[int, string]()
	signal := make(chan struct{})
	done := make(chan struct{})

	go func() {
		v, err := c.Get(0, func() (string, error) {
			<-signal

			return "zero", nil
		})
		require.NoError(t, err)
		require.Equal(t, "zero", v)
		close(done)
	}()

	// Give goroutine 0 a moment to block inside its compute function.
	time.Sleep(10 * time.Millisecond)

	v, err := c.Get(1, func() (string, error) {
		close(signal)

		return "one", nil
	})
	require.NoError(t, err)
	require.Equal(t, "one", v)

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("key 0's Get blocked on key 1's computation")
	}
}

func TestGet_NullKeyRejected(t *testing.T) {
	c := cache.New[*int, string]()
	_, err := c.Get(nil, func() (string, error) { return "", nil })
	require.ErrorIs(t, err, cache.ErrNullKey)
}

func TestGetContext_InterruptedPreservesInFlightComputation(t *testing.T) {
	c := cache.New[int, int]()
	release := make(chan struct{})
	started := make(chan struct{})

	go func() {
		_, _ = c.Get(0, func() (int, error) {
			close(started)
			<-release

			return 7, nil
		})
	}()

	<-started
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.GetContext(ctx, 0, func() (int, error) {
		t.Fatal("canceled waiter must not become the computing goroutine")

		return 0, nil
	})
	require.ErrorIs(t, err, cache.ErrInterrupted)

	// The original computation is still in flight; releasing it lets a
	// fresh Get observe the real value.
	close(release)
	v, err := c.Get(0, func() (int, error) { return -1, nil })
	require.NoError(t, err)
	require.Equal(t, 7, v)
}

func TestGet_DeterministicIdentityForReferenceTypes(t *testing.T) {
	type box struct{ n int }
	c := cache.New[int, *box]()
	b, err := c.Get(5, func() (*box, error) { return &box{n: 5}, nil })
	require.NoError(t, err)

	b2, err := c.Get(5, func() (*box, error) { return &box{n: 999}, nil })
	require.NoError(t, err)
	require.Same(t, b, b2)
}
