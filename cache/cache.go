package cache

import (
	"context"
	"reflect"
	"sync"
)

// entry is the single-shot future backing one key. Once done is closed,
// val/err are immutable and safe to read from any goroutine without
// further synchronization (the close itself is the happens-before edge).
type entry[V any] struct {
	done chan struct{}
	val  V
	err  error
}

// Cache is a generic keyed memo: Get(key, compute) guarantees compute runs
// at most once per key, and every caller for that key — whether it arrived
// before or after the computation finished — observes the same (val, err)
// pair. Computation for distinct keys never blocks each other: the table's
// mutex is held only long enough to insert a pending entry, never across
// the call to compute.
//
// Cache is safe for concurrent use by multiple goroutines. The zero value
// is not usable; construct with New.
type Cache[K comparable, V any] struct {
	mu sync.Mutex
	m  map[K]*entry[V]
}

// New constructs an empty Cache.
func New[K comparable, V any]() *Cache[K, V] {
	return &Cache[K, V]{m: make(map[K]*entry[V])}
}

// Get returns the value for key, computing it via compute at most once.
// If several goroutines call Get(key, ...) concurrently before key
// resolves, exactly one of them runs compute; the rest block until it
// finishes and then receive the identical (value, error) pair. A failing
// compute caches the failure: every subsequent Get(key, ...) — including
// calls with a different compute func, which is never consulted once a
// key resolves — re-returns the same error.
//
// Get rejects key when K is a nilable type (pointer, interface, slice,
// map, chan, func) and key is nil, returning ErrNullKey. A nil or
// zero-valued V returned by compute is cached like any other value.
func (c *Cache[K, V]) Get(key K, compute func() (V, error)) (V, error) {
	return c.GetContext(context.Background(), key, compute)
}

// GetContext is Get with cancellation support. If ctx is canceled while
// this call is blocked waiting for another goroutine's in-flight
// computation of key, GetContext returns ErrInterrupted and the original
// computation keeps running untouched for any other waiter.
func (c *Cache[K, V]) GetContext(ctx context.Context, key K, compute func() (V, error)) (V, error) {
	var zero V
	if isNilKey(key) {
		return zero, ErrNullKey
	}

	e, owner := c.obtainOrInsert(key)
	if owner {
		// We won the race to insert; run the computation outside the
		// table lock so unrelated keys are never blocked by it.
		e.val, e.err = compute()
		close(e.done)

		return e.val, e.err
	}

	select {
	case <-e.done:
		return e.val, e.err
	case <-ctx.Done():
		return zero, ErrInterrupted
	}
}

// obtainOrInsert returns the entry for key, inserting a fresh pending one
// under the table lock if absent. owner reports whether this call is the
// one that inserted it (and therefore must run compute).
func (c *Cache[K, V]) obtainOrInsert(key K) (e *entry[V], owner bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.m[key]; ok {
		return existing, false
	}

	e = &entry[V]{done: make(chan struct{})}
	c.m[key] = e

	return e, true
}

// isNilKey reports whether key is the nil value of a nilable kind. Kinds
// without a nil representation (int, string, struct, array, ...) always
// report false — reflect is the only standard-library facility that can
// answer "is this generic value nil" without constraining K beyond
// comparable, and no library in the retrieval pack addresses this generic
// nil-key case either.
func isNilKey[K comparable](key K) bool {
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.Invalid:
		// reflect.ValueOf boxed a literal nil interface{} (K itself is an
		// interface type instantiated with a nil value).
		return true
	case reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Map, reflect.Chan, reflect.Func:
		return v.IsNil()
	default:
		return false
	}
}
