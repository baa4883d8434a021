// Package hasher provides keyed hash producers for bloomgo filters.
//
// A filter owns an ordered slice of producers, one per hash function.
// Each producer must map a byte slice to a deterministic 64-bit digest;
// the filter reduces digests to storage positions via modulo. Hash
// quality is the caller's concern: a weak producer degrades the false
// positive rate but never causes incorrect "definitely not present"
// answers.
package hasher

import (
	"crypto/rand"
	"encoding/binary"

	"github.com/spaolacci/murmur3"
)

// Hasher is a keyed hash producer. Implementations must be
// deterministic: the same instance must return the same digest for the
// same input across calls. Producer state is fixed at construction.
type Hasher interface {
	// Sum64 returns the 64-bit digest of data.
	Sum64(data []byte) uint64
}

// Murmur3 is a seeded murmur3 producer. Two Murmur3 values with the
// same seed are interchangeable, which is what makes filters built
// from the same seeds eligible for Union/Intersect.
type Murmur3 struct {
	seed uint32
}

// NewMurmur3 creates a producer keyed with seed.
func NewMurmur3(seed uint32) Murmur3 {
	return Murmur3{seed: seed}
}

// Sum64 implements Hasher.
func (m Murmur3) Sum64(data []byte) uint64 {
	return murmur3.Sum64WithSeed(data, m.seed)
}

// Seed returns the producer's seed.
func (m Murmur3) Seed() uint32 {
	return m.seed
}

// Random returns k murmur3 producers with independently drawn random
// seeds. Filters built from separate Random calls cannot meaningfully
// be combined; use Seeded (or share the returned slice) when two
// filters must interoperate.
//
// Panics if k < 1: a filter needs at least one hash function.
func Random(k int) []Hasher {
	if k < 1 {
		panic("hasher: at least one hash producer is required")
	}

	buf := make([]byte, 4*k)
	if _, err := rand.Read(buf); err != nil {
		panic("hasher: seeding producers: " + err.Error())
	}

	hashers := make([]Hasher, k)
	for i := range hashers {
		hashers[i] = NewMurmur3(binary.LittleEndian.Uint32(buf[4*i:]))
	}

	return hashers
}

// Seeded returns one murmur3 producer per seed, in seed order. Useful
// for reproducible filters and for constructing a second filter that
// interoperates with an existing one.
//
// Panics if no seeds are given.
func Seeded(seeds ...uint32) []Hasher {
	if len(seeds) == 0 {
		panic("hasher: at least one hash producer is required")
	}

	hashers := make([]Hasher, len(seeds))
	for i, seed := range seeds {
		hashers[i] = NewMurmur3(seed)
	}

	return hashers
}
