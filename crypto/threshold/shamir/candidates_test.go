package shamir

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCandidates(t *testing.T) {
	t.Parallel()

	a := NewCandidates()
	a.Add(big.NewInt(5), Subset{1, 3})
	a.Add(big.NewInt(5), Subset{0, 1})
	a.Add(big.NewInt(-3), Subset{0, 2})

	b := NewCandidates()
	b.Add(big.NewInt(5), Subset{0, 3})
	b.Add(big.NewInt(9), Subset{2, 3})

	merged := a.Merge(b).Merge(nil)
	merged.Normalize()
	require.Equal(t, 3, merged.Len())

	five, ok := merged.Get(big.NewInt(5))
	require.True(t, ok)
	require.Equal(t, []Subset{{0, 1}, {0, 3}, {1, 3}}, five.Subsets)
	require.Equal(t, 3, five.Support())

	_, ok = merged.Get(big.NewInt(4))
	require.False(t, ok)

	ranked := merged.Ranked()
	require.Len(t, ranked, 3)
	require.Equal(t, int64(5), ranked[0].Secret.Int64())
	require.Equal(t, int64(-3), ranked[1].Secret.Int64())
	require.Equal(t, int64(9), ranked[2].Secret.Int64())
}

func TestCandidatesMergeCommutative(t *testing.T) {
	t.Parallel()

	build := func() (*Candidates, *Candidates) {
		a := NewCandidates()
		a.Add(big.NewInt(5), Subset{1, 2})
		a.Add(big.NewInt(7), Subset{0, 2})
		b := NewCandidates()
		b.Add(big.NewInt(5), Subset{0, 1})
		return a, b
	}

	a1, b1 := build()
	ab := a1.Merge(b1)
	ab.Normalize()

	a2, b2 := build()
	ba := b2.Merge(a2)
	ba.Normalize()

	require.Equal(t, ab.Ranked(), ba.Ranked())
}

func TestCandidatesAddCopiesSecret(t *testing.T) {
	t.Parallel()

	secret := big.NewInt(5)
	c := NewCandidates()
	c.Add(secret, Subset{0})
	secret.SetInt64(6)

	_, ok := c.Get(big.NewInt(5))
	require.True(t, ok)
}
