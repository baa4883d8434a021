package bloomgo

import (
	"github.com/hupe1980/bloomgo/set"
)

// Remove deletes one occurrence of data from a filter whose storage
// supports deletion, by decrementing each of its k positions.
//
// Removing a value that was never inserted, or removing it more times
// than it was inserted, may introduce false negatives for other values
// that share counters with it. That is the documented trade-off of
// counting Bloom filters, and it is not detected here.
//
// Decrements follow the storage's floor clamp: positions already at
// zero or saturated at the counter maximum are left untouched, so
// Remove never underflows and never guesses at a saturated counter's
// true value.
func Remove[S set.DeletableSet](f *Filter[S], data []byte) {
	size := uint64(f.set.Size())
	for _, h := range f.hashers {
		f.set.Decrement(int(h.Sum64(data) % size))
	}
}
