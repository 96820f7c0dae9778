package shamir

import (
	"math/big"
	"strconv"

	"github.com/Laisky/errors/v2"
	"github.com/cespare/xxhash"

	"github.com/Laisky/shamir-audit/algorithm"
)

// Share one point (x, y) of the sharing polynomial
type Share struct {
	// X public coordinate, positive and unique in a ShareSet
	X int64
	// Y polynomial evaluated at X
	Y *big.Int
}

func (s Share) String() string {
	y := "<nil>"
	if s.Y != nil {
		y = s.Y.String()
	}

	return "(" + strconv.FormatInt(s.X, 10) + ", " + y + ")"
}

// ShareSet validated shares in arrival order,
// the index of a share is its position in the set.
//
// ShareSet is immutable and safe for concurrent reads.
type ShareSet struct {
	shares []Share
}

// NewShareSet validate and copy shares
//
// rejects an empty set, non-positive or duplicated x, and missing or negative y.
func NewShareSet(shares ...Share) (*ShareSet, error) {
	if len(shares) == 0 {
		return nil, ErrEmptyShareSet
	}

	seen := make(map[int64]int, len(shares))
	set := &ShareSet{shares: make([]Share, 0, len(shares))}
	for i, s := range shares {
		if s.X <= 0 {
			return nil, errors.Wrapf(ErrInvalidAbscissa, "share #%d has x=%d", i, s.X)
		}
		if prev, ok := seen[s.X]; ok {
			return nil, errors.Wrapf(ErrDuplicateAbscissa, "shares #%d and #%d both have x=%d", prev, i, s.X)
		}
		if s.Y == nil || s.Y.Sign() < 0 {
			return nil, errors.Wrapf(ErrNegativeOrdinate, "share #%d (x=%d)", i, s.X)
		}

		seen[s.X] = i
		set.shares = append(set.shares, Share{X: s.X, Y: new(big.Int).Set(s.Y)})
	}

	return set, nil
}

// Len number of shares
func (s *ShareSet) Len() int {
	return len(s.shares)
}

// At return the share at index i
func (s *ShareSet) At(i int) Share {
	return s.shares[i]
}

// Shares return a copy of all shares
func (s *ShareSet) Shares() []Share {
	return append([]Share(nil), s.shares...)
}

// selectInto fill dst with the shares at idx, len(dst) must equal len(idx)
func (s *ShareSet) selectInto(idx []int, dst []Share) []Share {
	for i, j := range idx {
		dst[i] = s.shares[j]
	}

	return dst
}

// Fingerprint xxhash64 over the canonical encoding of all shares in order,
// equal sets always have equal fingerprints.
func (s *ShareSet) Fingerprint() uint64 {
	hasher := xxhash.New()
	for _, sh := range s.shares {
		_, _ = hasher.Write([]byte(strconv.FormatInt(sh.X, 10)))
		_, _ = hasher.Write([]byte{':'})
		_, _ = hasher.Write([]byte(sh.Y.Text(16)))
		_, _ = hasher.Write([]byte{'\n'})
	}

	return hasher.Sum64()
}

// Subset strictly increasing share indices
type Subset []int

// Contains whether share index idx is in the subset
func (s Subset) Contains(idx int) bool {
	return algorithm.BinarySearch(s, func(_ int, element int) int {
		return idx - element
	}) >= 0
}
