package bloomgo_test

import (
	"testing"

	"github.com/hupe1980/bloomgo"
	"github.com/hupe1980/bloomgo/hasher"
	"github.com/hupe1980/bloomgo/set"
	"github.com/stretchr/testify/require"
)

func TestFindCountSingleHasher(t *testing.T) {
	// With one hasher and one inserted value, the estimate is exact.
	f := bloomgo.NewWithHashers(set.NewCounterVector[uint8](64), hasher.Seeded(42))

	for i := 0; i < 3; i++ {
		f.Insert(key(9))
	}

	require.Equal(t, uint64(3), bloomgo.FindCount(f, key(9)))
	require.True(t, bloomgo.ContainsMoreThan(f, key(9), 2))
	require.False(t, bloomgo.ContainsMoreThan(f, key(9), 3))
}

func TestFindCountIsOneSidedOverestimate(t *testing.T) {
	f := bloomgo.NewWithHashers(set.NewCounterVector[uint16](128), seededHashers(4))

	inserted := map[int]uint64{
		1: 1,
		2: 5,
		3: 12,
		4: 1,
	}
	for k, n := range inserted {
		for i := uint64(0); i < n; i++ {
			f.Insert(key(k))
		}
	}

	for k, n := range inserted {
		require.GreaterOrEqual(t, bloomgo.FindCount(f, key(k)), n, "key %d", k)
	}
}

func TestFindCountZeroForAbsentValue(t *testing.T) {
	f := bloomgo.NewWithHashers(set.NewCounterVector[uint8](64), seededHashers(4))

	require.Equal(t, uint64(0), bloomgo.FindCount(f, key(1)))
	require.False(t, bloomgo.ContainsMoreThan(f, key(1), 0))
}

func TestContainsMoreThanZeroMatchesContains(t *testing.T) {
	f := bloomgo.NewWithHashers(set.NewCounterVector[uint8](256), seededHashers(5))

	for i := 0; i < 20; i++ {
		f.Insert(key(i))
	}

	for i := 0; i < 40; i++ {
		require.Equal(t, f.Contains(key(i)), bloomgo.ContainsMoreThan(f, key(i), 0), "probe %d", i)
	}
}

func TestFindCountSaturates(t *testing.T) {
	f := bloomgo.NewWithHashers(set.NewCounterVector[uint8](1), hasher.Seeded(7))

	for i := 0; i < 1000; i++ {
		f.Insert(key(0))
	}

	// Never exceeds the counter maximum, never wraps.
	require.Equal(t, uint64(255), bloomgo.FindCount(f, key(0)))
}
