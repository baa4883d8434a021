package set_test

import (
	"testing"

	"github.com/hupe1980/bloomgo/set"
	"github.com/stretchr/testify/require"
)

func TestBitSetBasics(t *testing.T) {
	s := set.NewBitSet(64)
	require.Equal(t, 64, s.Size())

	require.False(t, s.Query(3))
	s.Increment(3)
	require.True(t, s.Query(3))

	// Increment on a bit is idempotent.
	s.Increment(3)
	require.True(t, s.Query(3))

	s.Clear()
	require.False(t, s.Query(3))
	require.Equal(t, 64, s.Size())
}

func TestBitSetUnionIntersect(t *testing.T) {
	a := set.NewBitSet(16)
	b := set.NewBitSet(16)

	a.Increment(1)
	a.Increment(2)
	b.Increment(2)
	b.Increment(3)

	u := a.Clone()
	u.Union(b)
	require.True(t, u.Query(1))
	require.True(t, u.Query(2))
	require.True(t, u.Query(3))

	i := a.Clone()
	i.Intersect(b)
	require.False(t, i.Query(1))
	require.True(t, i.Query(2))
	require.False(t, i.Query(3))
}

func TestBitSetCloneIsIndependent(t *testing.T) {
	a := set.NewBitSet(16)
	a.Increment(5)

	c := a.Clone()
	c.Increment(6)

	require.True(t, a.Query(5))
	require.False(t, a.Query(6))
	require.True(t, c.Query(6))
}
