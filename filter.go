package bloomgo

import (
	"github.com/hupe1980/bloomgo/hasher"
	"github.com/hupe1980/bloomgo/set"
)

// Filter is a Bloom filter over storage S. The filter owns its hash
// producers and its storage exclusively; both are fixed at
// construction and live exactly as long as the filter.
//
// Every operation derives the same k positions for a value: position i
// is hashers[i].Sum64(data) mod storage size. Positions are not
// deduplicated — if two producers collide on a position for a value,
// that position is touched twice, by design.
type Filter[S set.Set] struct {
	hashers []hasher.Hasher
	set     S
	logger  *Logger
}

// New creates a filter over storage s with nHashers murmur3 producers
// seeded at random. Filters from separate New calls cannot be combined;
// use NewWithHashers with a shared producer slice for that.
//
// Panics if nHashers < 1 or s has no counters; both are programming
// errors, not runtime conditions.
func New[S set.Set](s S, nHashers int, optFns ...Option) *Filter[S] {
	return NewWithHashers(s, hasher.Random(nHashers), optFns...)
}

// NewWithHashers creates a filter over storage s with caller-supplied
// hash producers. Two filters built from the same producers (and
// equally sized storage) may later be combined with Union and
// Intersect.
//
// The producer slice is retained, not copied; callers must not mutate
// it afterwards. Panics under the same contract as New.
func NewWithHashers[S set.Set](s S, hashers []hasher.Hasher, optFns ...Option) *Filter[S] {
	if len(hashers) == 0 {
		panic("bloomgo: at least one hash producer is required")
	}
	if s.Size() == 0 {
		panic("bloomgo: storage must have at least one counter")
	}

	o := options{
		logger: NoopLogger(),
	}
	for _, fn := range optFns {
		fn(&o)
	}

	f := &Filter[S]{
		hashers: hashers,
		set:     s,
		logger:  o.logger,
	}

	f.logger.Debug("filter created",
		"n_hashers", len(hashers),
		"n_counters", s.Size(),
	)

	return f
}

// Insert adds data to the filter by incrementing each of its k
// positions. Cannot fail.
func (f *Filter[S]) Insert(data []byte) {
	size := uint64(f.set.Size())
	for _, h := range f.hashers {
		f.set.Increment(int(h.Sum64(data) % size))
	}
}

// Contains reports whether data may have been inserted: true iff every
// one of its k positions indicates presence. False positives are
// possible; false negatives are not, as long as data was never removed
// more often than it was inserted.
func (f *Filter[S]) Contains(data []byte) bool {
	size := uint64(f.set.Size())
	for _, h := range f.hashers {
		if !f.set.Query(int(h.Sum64(data) % size)) {
			return false
		}
	}
	return true
}

// Clear resets every counter. The hash producers are unaffected, so
// the filter keeps its identity for later Union/Intersect purposes.
func (f *Filter[S]) Clear() {
	f.set.Clear()
	f.logger.Debug("filter cleared",
		"n_counters", f.set.Size(),
	)
}

// Hashers returns the filter's hash producers. Callers must treat the
// slice as read-only; it is shared, not copied, which is what makes
// building an interoperable second filter cheap.
func (f *Filter[S]) Hashers() []hasher.Hasher {
	return f.hashers
}

// Counters returns the underlying storage.
func (f *Filter[S]) Counters() S {
	return f.set
}
