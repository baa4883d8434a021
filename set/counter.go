package set

// CounterVector is saturating-count storage: a fixed-length slice of
// bounded unsigned counters. It backs counting Bloom filters (it
// supports Decrement) and spectral Bloom filters (it supports
// QueryCount).
//
// Arithmetic is saturating in both directions. Increment clamps at the
// counter type's maximum instead of wrapping; Decrement holds at zero
// instead of going negative. A counter stuck at the maximum is treated
// as "saturated, true value unknown" and is never decremented, so a
// burst of collisions can cost precision but never correctness of the
// no-false-negative guarantee.
type CounterVector[T Unsigned] struct {
	counters []T
}

// NewCounterVector creates a zero-initialized CounterVector with n
// counters of type T.
func NewCounterVector[T Unsigned](n int) *CounterVector[T] {
	return &CounterVector[T]{
		counters: make([]T, n),
	}
}

// Size returns the number of counters.
func (v *CounterVector[T]) Size() int {
	return len(v.counters)
}

// Increment adds one to the counter at index i, saturating at the
// type maximum.
func (v *CounterVector[T]) Increment(i int) {
	if v.counters[i] != maxCount[T]() {
		v.counters[i]++
	}
}

// Decrement subtracts one from the counter at index i. No-op at zero
// and no-op at the type maximum (see the type comment).
func (v *CounterVector[T]) Decrement(i int) {
	c := v.counters[i]
	if c == 0 || c == maxCount[T]() {
		return
	}
	v.counters[i] = c - 1
}

// Query reports whether the counter at index i is nonzero.
func (v *CounterVector[T]) Query(i int) bool {
	return v.counters[i] > 0
}

// QueryCount returns the raw counter value at index i.
func (v *CounterVector[T]) QueryCount(i int) uint64 {
	return uint64(v.counters[i])
}

// Clear resets all counters to zero.
func (v *CounterVector[T]) Clear() {
	clear(v.counters)
}

// Clone returns a deep copy of the storage.
func (v *CounterVector[T]) Clone() *CounterVector[T] {
	counters := make([]T, len(v.counters))
	copy(counters, v.counters)
	return &CounterVector[T]{counters: counters}
}

func maxCount[T Unsigned]() T {
	var zero T
	return ^zero
}
