package cache

import "errors"

var (
	// ErrNullKey is returned by Get when key is the nil value of a nilable
	// key type (pointer, interface, slice, map, chan, func). Non-nilable
	// key types (int, string, struct, array, ...) never trigger this.
	ErrNullKey = errors.New("cache: nil key")

	// ErrInterrupted is returned when the calling goroutine's context is
	// canceled while blocked waiting for another goroutine's in-flight
	// computation of the same key. The underlying computation is left
	// running for any other waiter; only the canceled caller observes
	// this error.
	ErrInterrupted = errors.New("cache: wait interrupted")
)
