package shamir

import (
	"runtime"

	"github.com/Laisky/errors/v2"

	"github.com/Laisky/shamir-audit/log"
)

// TieBreak how to pick the winner when several secrets
// share the greatest support
type TieBreak string

const (
	// TieBreakSmallest pick the numerically smallest secret
	TieBreakSmallest TieBreak = "smallest"
	// TieBreakStrict fail with ErrAmbiguousReconstruction
	TieBreakStrict TieBreak = "strict"
)

func (t TieBreak) String() string {
	return string(t)
}

// ParseTieBreak parse tie policy name, empty means TieBreakSmallest
func ParseTieBreak(v string) (TieBreak, error) {
	switch TieBreak(v) {
	case "", TieBreakSmallest:
		return TieBreakSmallest, nil
	case TieBreakStrict:
		return TieBreakStrict, nil
	default:
		return "", errors.Errorf("unknown tie break policy %q", v)
	}
}

type option struct {
	workers    int
	maxSubsets uint64
	tieBreak   TieBreak
	declaredN  int
	logger     log.Logger
}

func (o *option) fillDefault() *option {
	o.workers = runtime.NumCPU()
	o.tieBreak = TieBreakSmallest
	o.logger = log.Shared.Named("shamir")
	return o
}

func (o *option) applyOpts(optfs ...Option) (*option, error) {
	for _, optf := range optfs {
		if err := optf(o); err != nil {
			return nil, err
		}
	}

	return o, nil
}

// Option optional arguments for Enumerate, Classify and Reconstruct
type Option func(*option) error

// WithWorkers number of goroutines to evaluate subsets,
// 1 evaluates them sequentially. default is runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(o *option) error {
		if n < 1 {
			return errors.Errorf("workers should be at least 1, got %d", n)
		}

		o.workers = n
		return nil
	}
}

// WithMaxSubsets refuse to enumerate when C(m, k) > n.
// 0 means unbounded, the default.
func WithMaxSubsets(n uint64) Option {
	return func(o *option) error {
		o.maxSubsets = n
		return nil
	}
}

// WithTieBreak set tie policy, default is TieBreakSmallest
func WithTieBreak(policy TieBreak) Option {
	return func(o *option) error {
		if _, err := ParseTieBreak(string(policy)); err != nil {
			return err
		}

		o.tieBreak = policy
		return nil
	}
}

// WithDeclaredShares the share count declared by the input document.
//
// only advisory, a mismatch with the parsed shares is logged.
func WithDeclaredShares(n int) Option {
	return func(o *option) error {
		o.declaredN = n
		return nil
	}
}

// WithLogger set logger
func WithLogger(logger log.Logger) Option {
	return func(o *option) error {
		if logger == nil {
			return errors.Errorf("logger should not be nil")
		}

		o.logger = logger
		return nil
	}
}
