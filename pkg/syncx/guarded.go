package syncx

import "sync"

// Guarded wraps a value with a reader/writer lock and exposes atomic
// load/store accessors plus scoped shared and exclusive sections. The
// scoped helpers release the lock on every exit path, including panics
// raised by the supplied function.
type Guarded[T any] struct {
	mu sync.RWMutex
	v  T
}

// NewGuarded creates a Guarded container holding the given initial value.
func NewGuarded[T any](v T) *Guarded[T] {
	return &Guarded[T]{v: v}
}

// Load returns the current value under a shared lock.
func (g *Guarded[T]) Load() T {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.v
}

// Store replaces the current value under an exclusive lock.
func (g *Guarded[T]) Store(v T) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.v = v
}

// Read runs fn inside a shared section. Multiple readers may run
// concurrently; fn must not retain or mutate the value.
func (g *Guarded[T]) Read(fn func(v T)) {
	g.mu.RLock()
	defer g.mu.RUnlock()
	fn(g.v)
}

// Write runs fn inside an exclusive section, excluding all readers and
// other writers. fn receives a pointer so it can replace the value.
//
// Write is not reentrant: fn must not call back into the same Guarded.
// Callers that need to read while writing pass the already-held value
// down instead of taking the lock a second time.
func (g *Guarded[T]) Write(fn func(v *T)) {
	g.mu.Lock()
	defer g.mu.Unlock()
	fn(&g.v)
}
