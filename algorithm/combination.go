package algorithm

import (
	"iter"
	"math/bits"

	"github.com/Laisky/errors/v2"
)

// ErrBinomialOverflow C(n, k) does not fit in uint64
var ErrBinomialOverflow = errors.New("binomial coefficient overflows uint64")

// Binomial return C(n, k), the number of k-combinations of n items.
//
// returns 0 if k < 0 or k > n.
func Binomial(n, k int) (uint64, error) {
	if k < 0 || n < 0 || k > n {
		return 0, nil
	}
	if k > n-k {
		k = n - k
	}

	// r = C(n-k+i, i) after each step, the division is always exact
	var r uint64 = 1
	for i := 1; i <= k; i++ {
		hi, lo := bits.Mul64(r, uint64(n-k+i))
		if hi >= uint64(i) {
			return 0, errors.Wrapf(ErrBinomialOverflow, "C(%d, %d)", n, k)
		}

		r, _ = bits.Div64(hi, lo, uint64(i))
	}

	return r, nil
}

// mustBinomial only for arguments bounded by an already checked C(n, k)
func mustBinomial(n, k int) uint64 {
	r, err := Binomial(n, k)
	if err != nil {
		panic(err)
	}

	return r
}

// CombinationAt return the rank-th (0-based) k-combination of [0, n)
// in lexicographic order, by the combinatorial number system.
func CombinationAt(n, k int, rank uint64) ([]int, error) {
	total, err := Binomial(n, k)
	if err != nil {
		return nil, err
	}
	if rank >= total {
		return nil, errors.Errorf("rank %d out of range, C(%d, %d) = %d", rank, n, k, total)
	}

	comb := make([]int, k)
	x := 0
	for i := 0; i < k; i++ {
		for {
			// combinations that keep x at position i
			c := mustBinomial(n-1-x, k-1-i)
			if rank < c {
				break
			}

			rank -= c
			x++
		}

		comb[i] = x
		x++
	}

	return comb, nil
}

// nextCombination advance comb to its lexicographic successor in place,
// return false if comb is the last one.
func nextCombination(comb []int, n int) bool {
	k := len(comb)
	i := k - 1
	for ; i >= 0; i-- {
		if comb[i] != i+n-k {
			break
		}
	}
	if i < 0 {
		return false
	}

	comb[i]++
	for j := i + 1; j < k; j++ {
		comb[j] = comb[j-1] + 1
	}

	return true
}

// Combinations iterate all k-combinations of indices [0, n)
// in lexicographic order, indices in each combination are strictly increasing.
//
// The sequence is lazy and restartable, every range over it starts from
// the first combination.
// The yielded slice is reused between iterations, copy it if you need to keep it.
//
// yields nothing if k < 0 or k > n, yields one empty combination if k == 0.
func Combinations(n, k int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		if k < 0 || n < 0 || k > n {
			return
		}

		comb := make([]int, k)
		for i := range comb {
			comb[i] = i
		}

		for {
			if !yield(comb) {
				return
			}

			if !nextCombination(comb, n) {
				return
			}
		}
	}
}

// CombinationsRange iterate at most count k-combinations of [0, n),
// starting from the combination whose lexicographic rank is start.
//
// The yielded slice is reused between iterations.
func CombinationsRange(n, k int, start, count uint64) (iter.Seq[[]int], error) {
	first, err := CombinationAt(n, k, start)
	if err != nil {
		return nil, errors.Wrap(err, "locate first combination")
	}

	return func(yield func([]int) bool) {
		comb := make([]int, k)
		copy(comb, first)

		for i := uint64(0); i < count; i++ {
			if !yield(comb) {
				return
			}

			if !nextCombination(comb, n) {
				return
			}
		}
	}, nil
}

// RankRange contiguous range of lexicographic ranks
type RankRange struct {
	Start, Count uint64
}

// SplitRanks split [0, total) into at most parts contiguous non-empty ranges
// with sizes differing by at most one.
func SplitRanks(total uint64, parts int) []RankRange {
	if total == 0 {
		return nil
	}
	if parts < 1 {
		parts = 1
	}
	if uint64(parts) > total {
		parts = int(total)
	}

	size := total / uint64(parts)
	rem := total % uint64(parts)
	ranges := make([]RankRange, 0, parts)
	var start uint64
	for i := 0; i < parts; i++ {
		cnt := size
		if uint64(i) < rem {
			cnt++
		}

		ranges = append(ranges, RankRange{Start: start, Count: cnt})
		start += cnt
	}

	return ranges
}
