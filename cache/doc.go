// Package cache implements a generic, concurrency-safe keyed memo: at most
// one computation runs per key, unrelated keys never block each other, and
// every caller — present or future — observes the same result (value or
// error) once a key resolves.
//
// Locking discipline: a lock is held only to swap a pointer or insert a map
// entry, never while doing the actual work. Concretely: the table's mutex
// protects only the map insertion; the compute function for a
// freshly-inserted key runs after the mutex is released, so a slow
// computation for one key never delays a get on a different key.
package cache
