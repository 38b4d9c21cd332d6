package pool

import "sync"

// Resource recycles values of type T that are expensive enough to
// construct (a compression codec's encoder/decoder state, say) that
// reuse across calls matters, backed by the same sync.Pool approach as
// the Builder and scratch-slice pools above.
type Resource[T any] struct {
	pool sync.Pool
}

// NewResource returns a Resource that lazily constructs values with new
// on first Acquire and whenever the pool runs dry.
func NewResource[T any](new func() T) *Resource[T] {
	return &Resource[T]{pool: sync.Pool{New: func() any { return new() }}}
}

// Acquire returns a pooled value, constructing one if none is idle, and a
// release func the caller must invoke (typically via defer) to return it.
func (r *Resource[T]) Acquire() (T, func()) {
	v := r.pool.Get().(T)
	return v, func() { r.pool.Put(v) }
}
