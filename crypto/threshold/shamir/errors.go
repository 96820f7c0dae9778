package shamir

import (
	"github.com/Laisky/errors/v2"
)

var (
	// ErrEmptyShareSet no share supplied
	ErrEmptyShareSet = errors.New("no shares supplied")
	// ErrInvalidThreshold threshold k is not positive
	ErrInvalidThreshold = errors.New("threshold must be positive")
	// ErrDuplicateAbscissa two shares have the same x
	ErrDuplicateAbscissa = errors.New("duplicate share abscissa")
	// ErrInvalidAbscissa share x is not positive
	ErrInvalidAbscissa = errors.New("share abscissa must be positive")
	// ErrNegativeOrdinate share y is missing or negative
	ErrNegativeOrdinate = errors.New("share ordinate must be a non-negative integer")
	// ErrNoConsistentSubset no threshold subset interpolates to an integer,
	// including the case that there are fewer shares than the threshold.
	ErrNoConsistentSubset = errors.New("no valid threshold combination found")
	// ErrAmbiguousReconstruction several secrets share the greatest support
	// and the tie policy is TieBreakStrict
	ErrAmbiguousReconstruction = errors.New("ambiguous reconstruction")
	// ErrTooManySubsets C(m, k) exceeds the configured limit
	ErrTooManySubsets = errors.New("too many threshold subsets")
)

// Status outcome of a reconstruction run
type Status int

const (
	// StatusSuccess secret reconstructed
	StatusSuccess Status = iota
	// StatusNoSharesOrInvalidThreshold rejected before enumeration
	StatusNoSharesOrInvalidThreshold
	// StatusNoConsistentSubset enumeration found nothing
	StatusNoConsistentSubset
	// StatusFailed any other failure, like malformed input or cancellation
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusNoSharesOrInvalidThreshold:
		return "no_shares_or_invalid_threshold"
	case StatusNoConsistentSubset:
		return "no_consistent_subset"
	default:
		return "failed"
	}
}

// StatusOf classify err returned by Reconstruct
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return StatusSuccess
	case errors.Is(err, ErrEmptyShareSet),
		errors.Is(err, ErrInvalidThreshold):
		return StatusNoSharesOrInvalidThreshold
	case errors.Is(err, ErrNoConsistentSubset):
		return StatusNoConsistentSubset
	default:
		return StatusFailed
	}
}
