// Package set provides the backing storage for bloomgo filters.
//
// A filter only decides which positions to touch; the storage decides
// what a single counter is. Swapping the storage turns the same
// hashing/indexing logic into a traditional binary Bloom filter
// (BitSet, RoaringSet), a counting Bloom filter (CounterVector, which
// supports deletion), or a spectral Bloom filter (CounterVector,
// queried for multiplicities).
//
// Capabilities are layered on the base Set interface. A storage type
// implements only the capabilities that make sense for its
// representation: a single bit cannot distinguish one insert from
// many, so BitSet offers no Decrement; pointwise OR/AND is only the
// natural combination for bitmaps, so CounterVector offers no
// Union/Intersect.
package set

// Set is the base capability every filter storage must provide: a
// fixed-length collection of counters, indexed 0..Size().
//
// Index bounds are a caller contract. The filter always derives
// positions modulo Size(), so a well-formed filter never passes an
// out-of-range index; implementations are free to panic if one arrives
// anyway.
type Set interface {
	// Size returns the number of counters. Fixed for the lifetime of
	// the storage.
	Size() int

	// Increment adds one unit of presence at index i.
	Increment(i int)

	// Query reports whether the counter at index i indicates presence.
	Query(i int) bool

	// Clear resets every counter to its zero state.
	Clear()
}

// DeletableSet is storage that can remove one unit of presence from a
// counter. Only multiplicity-tracking storage can offer this; deleting
// from a plain bitmap is not well-defined.
type DeletableSet interface {
	Set

	// Decrement removes one unit of presence at index i. Decrementing
	// a zero counter is a no-op, and decrementing a counter saturated
	// at its type maximum is also a no-op: a saturated counter's true
	// value is unknown, so decrementing it could manufacture false
	// negatives.
	Decrement(i int)
}

// SpectralSet is storage whose counters can be read as multiplicities,
// not just presence. Counts are reported as uint64 regardless of the
// storage's internal counter width.
type SpectralSet interface {
	Set

	// QueryCount returns the raw counter value at index i.
	QueryCount(i int) uint64
}

// CombinableSet is storage supporting in-place pairwise combination
// with another storage of the same concrete type: Union is pointwise
// OR, Intersect is pointwise AND. Implemented by the bitmap-backed
// sets only; for counting storage the natural numeric analogue
// (pointwise max/min) is a different semantic choice that this package
// deliberately does not take.
type CombinableSet[S any] interface {
	Set

	// Union inserts every presence in other into the receiver.
	Union(other S)

	// Intersect keeps only presences also present in other.
	Intersect(other S)
}

// Unsigned is the set of counter types a CounterVector can be built
// from.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}
