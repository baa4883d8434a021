// Package bloomgo provides Bloom filters that are generic over their
// backing storage.
//
// One hashing/indexing core drives every filter variant. The storage
// decides what a single counter is: a presence bit yields a
// traditional binary Bloom filter, a saturating integer yields a
// counting Bloom filter (deletion) or a spectral Bloom filter
// (multiplicity queries).
//
// # Quick Start
//
// Binary filter, 10 hash functions over 20 counters:
//
//	f := bloomgo.New(set.NewBitSet(20), 10)
//	f.Insert([]byte("alpha"))
//	f.Insert([]byte("beta"))
//	f.Contains([]byte("alpha")) // true
//	f.Contains([]byte("gamma")) // false, barring a false positive
//
// Counting filter with 8-bit saturating counters:
//
//	f := bloomgo.New(set.NewCounterVector[uint8](1024), 7)
//	f.Insert(key)
//	bloomgo.Remove(f, key)
//
// Spectral queries on the same storage:
//
//	bloomgo.FindCount(f, key)             // estimated multiplicity
//	bloomgo.ContainsMoreThan(f, key, 2)   // inserted more than twice?
//
// # Capabilities
//
// Insert, Contains and Clear work with any storage. The optional
// operations are package-level functions whose constraints name the
// storage capability they need, so calling Remove on a bitmap-backed
// filter or Union on a counting filter is a compile error, not a
// runtime surprise:
//
//	bloomgo.Remove            set.DeletableSet
//	bloomgo.Union             set.CombinableSet
//	bloomgo.Intersect         set.CombinableSet
//	bloomgo.ContainsMoreThan  set.SpectralSet
//	bloomgo.FindCount         set.SpectralSet
//
// # Combining filters
//
// Union and Intersect only make sense between filters that share
// equivalent hash producers and equally sized storage. Build the
// second filter from the first one's producers:
//
//	f1 := bloomgo.New(set.NewBitSet(4096), 5)
//	f2 := bloomgo.NewWithHashers(set.NewBitSet(4096), f1.Hashers())
//	...
//	bloomgo.Union(f1, f2)
//
// Producer equivalence cannot be checked at runtime; it is a caller
// contract.
//
// # Probabilistic contract
//
// Contains never reports false for a value that was inserted and not
// removed. It may report true for a value never inserted; the false
// positive rate is a function of the hash count, the storage size and
// the number of distinct inserted values, and sizing both is the
// caller's responsibility. FindCount is a one-sided estimator: it
// never returns less than the true multiplicity (up to counter
// saturation).
//
// The package is not safe for concurrent use; guard a shared filter
// externally.
package bloomgo
