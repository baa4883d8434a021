package bloomgo

import (
	"github.com/hupe1980/bloomgo/set"
)

// Union merges other into f, position by position (pointwise OR).
// Afterwards f reports Contains true for every value either filter
// reported true for before the call.
//
// Both filters must have been built from equivalent hash producers;
// that part of the contract cannot be checked and violating it yields
// a filter with meaningless contents rather than an error. The
// checkable part — equally sized storage — panics on mismatch.
func Union[S set.CombinableSet[S]](f, other *Filter[S]) {
	if f.set.Size() != other.set.Size() {
		panic("bloomgo: filters must have equally sized storage")
	}
	f.set.Union(other.set)
}

// Intersect keeps only the positions set in both f and other
// (pointwise AND). Afterwards f reports Contains true only for values
// both filters reported true for before the call, modulo the usual
// false positives.
//
// Same producer-equivalence contract and size panic as Union.
func Intersect[S set.CombinableSet[S]](f, other *Filter[S]) {
	if f.set.Size() != other.set.Size() {
		panic("bloomgo: filters must have equally sized storage")
	}
	f.set.Intersect(other.set)
}
