package set

import (
	"github.com/RoaringBitmap/roaring/v2"
)

// RoaringSet is compressed presence-bit storage backed by a 32-bit
// Roaring Bitmap. It wraps the official roaring implementation.
//
// Semantically identical to BitSet, but the memory footprint tracks
// the number of set positions rather than the counter count, which
// pays off for large, sparsely populated filters. Counter indices are
// limited to the uint32 range.
type RoaringSet struct {
	rb *roaring.Bitmap

	// size is the logical counter count. The bitmap itself is sparse,
	// so the fixed length must be tracked separately.
	size int
}

// NewRoaringSet creates a zero-initialized RoaringSet with n counters.
func NewRoaringSet(n int) *RoaringSet {
	return &RoaringSet{
		rb:   roaring.New(),
		size: n,
	}
}

// Size returns the number of counters.
func (s *RoaringSet) Size() int {
	return s.size
}

// Increment sets the bit at index i. Idempotent.
func (s *RoaringSet) Increment(i int) {
	s.rb.Add(uint32(i))
}

// Query reports the bit at index i.
func (s *RoaringSet) Query(i int) bool {
	return s.rb.Contains(uint32(i))
}

// Clear resets all bits.
func (s *RoaringSet) Clear() {
	s.rb.Clear()
}

// Union ORs other into the receiver, position by position.
func (s *RoaringSet) Union(other *RoaringSet) {
	s.rb.Or(other.rb)
}

// Intersect ANDs other into the receiver, position by position.
func (s *RoaringSet) Intersect(other *RoaringSet) {
	s.rb.And(other.rb)
}

// Clone returns a deep copy of the storage.
func (s *RoaringSet) Clone() *RoaringSet {
	return &RoaringSet{
		rb:   s.rb.Clone(),
		size: s.size,
	}
}

// Cardinality returns the number of set positions.
func (s *RoaringSet) Cardinality() uint64 {
	return s.rb.GetCardinality()
}
