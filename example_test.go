package bloomgo_test

import (
	"fmt"

	"github.com/hupe1980/bloomgo"
	"github.com/hupe1980/bloomgo/hasher"
	"github.com/hupe1980/bloomgo/set"
)

// Example demonstrates a traditional binary Bloom filter.
func Example() {
	f := bloomgo.New(set.NewBitSet(20), 10)

	f.Insert([]byte("48"))
	f.Insert([]byte("32"))

	fmt.Println(f.Contains([]byte("48")))
	fmt.Println(f.Contains([]byte("32")))
	// Output:
	// true
	// true
}

// Example_counting demonstrates deletion with saturating counters.
func Example_counting() {
	f := bloomgo.New(set.NewCounterVector[uint8](128), 5)

	f.Insert([]byte("session-1"))
	fmt.Println(f.Contains([]byte("session-1")))

	bloomgo.Remove(f, []byte("session-1"))
	fmt.Println(f.Contains([]byte("session-1")))
	// Output:
	// true
	// false
}

// Example_union demonstrates combining two filters built from the
// same hash producers.
func Example_union() {
	f1 := bloomgo.New(set.NewBitSet(1024), 7)
	f1.Insert([]byte("alpha"))

	f2 := bloomgo.NewWithHashers(set.NewBitSet(1024), f1.Hashers())
	f2.Insert([]byte("beta"))

	bloomgo.Union(f1, f2)

	fmt.Println(f1.Contains([]byte("alpha")))
	fmt.Println(f1.Contains([]byte("beta")))
	// Output:
	// true
	// true
}

// Example_spectral demonstrates multiplicity estimation.
func Example_spectral() {
	f := bloomgo.NewWithHashers(set.NewCounterVector[uint16](256), hasher.Seeded(1, 2, 3))

	for i := 0; i < 3; i++ {
		f.Insert([]byte("page-view"))
	}

	fmt.Println(bloomgo.ContainsMoreThan(f, []byte("page-view"), 2))
	// Output:
	// true
}
