package shamir

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClassifyTier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		count, total int
		want         Tier
	}{
		{0, 3, TierBad},
		{0, 0, TierBad},
		{1, 3, TierSuspicious},
		{1, 4, TierSuspicious},
		{2, 4, TierTrusted},
		{2, 3, TierTrusted},
		{3, 3, TierTrusted},
		{1, 1, TierTrusted},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, ClassifyTier(tt.count, tt.total), "%d/%d", tt.count, tt.total)
	}

	require.Equal(t, "bad", TierBad.String())
	require.Equal(t, "suspicious", TierSuspicious.String())
	require.Equal(t, "trusted", TierTrusted.String())
	require.Equal(t, "unknown", Tier(42).String())

	text, err := TierSuspicious.MarshalText()
	require.NoError(t, err)
	require.Equal(t, "suspicious", string(text))

	var tier Tier
	require.NoError(t, tier.UnmarshalText([]byte("trusted")))
	require.Equal(t, TierTrusted, tier)
	require.Error(t, tier.UnmarshalText([]byte("unknown")))
}

func enumerateForTest(t *testing.T, set *ShareSet, k int) *Candidates {
	t.Helper()

	candidates, _, err := Enumerate(context.Background(), set, k, WithWorkers(2))
	require.NoError(t, err)
	return candidates
}

func TestClassify(t *testing.T) {
	t.Parallel()

	t.Run("clean", func(t *testing.T) {
		set := mustShareSet(t, intShares(1, 6, 2, 7, 3, 8)...)
		audit, err := Classify(enumerateForTest(t, set, 2), set)
		require.NoError(t, err)

		require.Equal(t, 0, audit.Winner.Secret.Cmp(big.NewInt(5)))
		require.Equal(t, 3, audit.TotalWinning)
		require.Equal(t, []int{2, 2, 2}, countsOf(audit.Verdicts))
		require.Equal(t, []Tier{TierTrusted, TierTrusted, TierTrusted}, tiersOf(audit.Verdicts))
		require.Len(t, audit.Ranking, 1)
	})

	t.Run("corrupted", func(t *testing.T) {
		set := mustShareSet(t, intShares(1, 6, 2, 7, 3, 9, 4, 9)...)
		audit, err := Classify(enumerateForTest(t, set, 2), set)
		require.NoError(t, err)

		require.Equal(t, 0, audit.Winner.Secret.Cmp(big.NewInt(5)))
		require.Equal(t, 3, audit.TotalWinning)
		require.Equal(t, []int{2, 2, 0, 2}, countsOf(audit.Verdicts))
		require.Equal(t, []Tier{TierTrusted, TierTrusted, TierBad, TierTrusted}, tiersOf(audit.Verdicts))

		var secrets []int64
		for _, cand := range audit.Ranking {
			secrets = append(secrets, cand.Secret.Int64())
		}
		require.Equal(t, []int64{5, 3, 9}, secrets)

		for i, v := range audit.Verdicts {
			require.Equal(t, i, v.Index)
			require.Equal(t, set.At(i).X, v.Share.X)
			require.NotNil(t, v.Support)
			require.Equal(t, uint64(v.IncludeCount), v.Support.GetCardinality())
			for _, ordinal := range v.Support.ToArray() {
				require.True(t, audit.Winner.Subsets[ordinal].Contains(i))
			}
		}
	})

	t.Run("tie smallest", func(t *testing.T) {
		set := mustShareSet(t, intShares(1, 9, 2, 9, 3, 4, 4, 4)...)
		audit, err := Classify(enumerateForTest(t, set, 1), set, WithTieBreak(TieBreakSmallest))
		require.NoError(t, err)

		require.Equal(t, int64(4), audit.Winner.Secret.Int64())
		require.Equal(t, 2, audit.TotalWinning)
		require.Equal(t, []Tier{TierBad, TierBad, TierTrusted, TierTrusted}, tiersOf(audit.Verdicts))
	})

	t.Run("tie strict", func(t *testing.T) {
		set := mustShareSet(t, intShares(1, 9, 2, 9, 3, 4, 4, 4)...)
		_, err := Classify(enumerateForTest(t, set, 1), set, WithTieBreak(TieBreakStrict))
		require.ErrorIs(t, err, ErrAmbiguousReconstruction)
		require.Contains(t, err.Error(), "4, 9")
	})

	t.Run("no tie under strict", func(t *testing.T) {
		set := mustShareSet(t, intShares(1, 6, 2, 7, 3, 9, 4, 9)...)
		audit, err := Classify(enumerateForTest(t, set, 2), set, WithTieBreak(TieBreakStrict))
		require.NoError(t, err)
		require.Equal(t, int64(5), audit.Winner.Secret.Int64())
	})

	t.Run("empty", func(t *testing.T) {
		set := mustShareSet(t, intShares(1, 0, 3, 1)...)
		_, err := Classify(NewCandidates(), set)
		require.ErrorIs(t, err, ErrNoConsistentSubset)

		_, err = Classify(nil, set)
		require.ErrorIs(t, err, ErrNoConsistentSubset)

		_, err = Classify(NewCandidates(), nil)
		require.ErrorIs(t, err, ErrEmptyShareSet)
	})
}

func TestParseTieBreak(t *testing.T) {
	t.Parallel()

	for in, want := range map[string]TieBreak{
		"":         TieBreakSmallest,
		"smallest": TieBreakSmallest,
		"strict":   TieBreakStrict,
	} {
		got, err := ParseTieBreak(in)
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	_, err := ParseTieBreak("largest")
	require.Error(t, err)
	_, _, err = Enumerate(context.Background(), nil, 1, WithTieBreak("largest"))
	require.Error(t, err)
}
