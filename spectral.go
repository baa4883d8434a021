package bloomgo

import (
	"github.com/hupe1980/bloomgo/set"
)

// ContainsMoreThan reports whether data was inserted more than count
// times: true iff the raw counter at every one of its k positions is
// strictly greater than count. Like Contains, the answer can be a
// false positive but never understates the true multiplicity (up to
// counter saturation).
func ContainsMoreThan[S set.SpectralSet](f *Filter[S], data []byte, count uint64) bool {
	size := uint64(f.set.Size())
	for _, h := range f.hashers {
		if f.set.QueryCount(int(h.Sum64(data)%size)) <= count {
			return false
		}
	}
	return true
}

// FindCount estimates how many times data was inserted: the minimum
// raw counter value over its k positions, the classical spectral Bloom
// filter estimator. The estimate is one-sided — always at least the
// true multiplicity (up to counter saturation), never less — because
// collisions with other values can only inflate counters.
func FindCount[S set.SpectralSet](f *Filter[S], data []byte) uint64 {
	size := uint64(f.set.Size())

	min := ^uint64(0)
	for _, h := range f.hashers {
		if c := f.set.QueryCount(int(h.Sum64(data) % size)); c < min {
			min = c
		}
	}

	return min
}
