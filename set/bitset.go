package set

import (
	"github.com/bits-and-blooms/bitset"
)

// BitSet is dense presence-bit storage backed by a fixed-length
// bitset. It wraps the bits-and-blooms implementation.
//
// A BitSet backs a traditional binary Bloom filter: Increment sets a
// bit and is idempotent, so the filter supports Insert/Contains/Clear
// plus Union/Intersect, but not deletion or multiplicity queries.
type BitSet struct {
	bits *bitset.BitSet
}

// NewBitSet creates a zero-initialized BitSet with n counters.
func NewBitSet(n int) *BitSet {
	return &BitSet{
		bits: bitset.New(uint(n)),
	}
}

// Size returns the number of counters.
func (s *BitSet) Size() int {
	return int(s.bits.Len())
}

// Increment sets the bit at index i. Idempotent.
func (s *BitSet) Increment(i int) {
	s.bits.Set(uint(i))
}

// Query reports the bit at index i.
func (s *BitSet) Query(i int) bool {
	return s.bits.Test(uint(i))
}

// Clear resets all bits.
func (s *BitSet) Clear() {
	s.bits.ClearAll()
}

// Union ORs other into the receiver, position by position.
func (s *BitSet) Union(other *BitSet) {
	s.bits.InPlaceUnion(other.bits)
}

// Intersect ANDs other into the receiver, position by position.
func (s *BitSet) Intersect(other *BitSet) {
	s.bits.InPlaceIntersection(other.bits)
}

// Clone returns a deep copy of the storage.
func (s *BitSet) Clone() *BitSet {
	return &BitSet{
		bits: s.bits.Clone(),
	}
}
