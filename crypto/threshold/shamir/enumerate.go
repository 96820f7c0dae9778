package shamir

import (
	"context"
	"time"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"

	"github.com/Laisky/shamir-audit/algorithm"
	"github.com/Laisky/shamir-audit/log"
)

// debugSampleRate sample rate (per SampleRateDenominator) of
// debug logs for every discarded subset
const debugSampleRate = 10

// EnumerateStats counters of one enumeration
type EnumerateStats struct {
	// Total C(m, k)
	Total uint64 `json:"total"`
	// Evaluated subsets interpolated, equals Total unless cancelled
	Evaluated uint64 `json:"evaluated"`
	// Integral subsets that interpolated to an integer
	Integral uint64 `json:"integral"`
	// NonIntegral subsets discarded
	NonIntegral uint64 `json:"non_integral"`
	// Workers goroutines used
	Workers int `json:"workers"`
	// Elapsed wall time
	Elapsed time.Duration `json:"elapsed"`
}

type enumerateCounters struct {
	evaluated, integral, nonIntegral atomic.Uint64
}

// Enumerate interpolate every k-subset of set and group the subsets
// that produce an integer by the resulting secret.
//
// Subsets that do not interpolate to an integer are discarded.
// The k-subsets are split into contiguous lexicographic ranges,
// one per worker, and the partial results are merged after all workers finished,
// so the result does not depend on the number of workers.
//
// There are C(m, k) subsets, use WithMaxSubsets to bound the work
// and ctx to cancel it. Fewer shares than k yields empty Candidates.
func Enumerate(ctx context.Context, set *ShareSet, k int, opts ...Option) (*Candidates, *EnumerateStats, error) {
	opt, err := new(option).fillDefault().applyOpts(opts...)
	if err != nil {
		return nil, nil, errors.Wrap(err, "apply options")
	}

	if set == nil || set.Len() == 0 {
		return nil, nil, ErrEmptyShareSet
	}
	if k <= 0 {
		return nil, nil, errors.Wrapf(ErrInvalidThreshold, "k=%d", k)
	}

	m := set.Len()
	total, err := algorithm.Binomial(m, k)
	if err != nil {
		return nil, nil, errors.Wrapf(ErrTooManySubsets, "C(%d, %d): %s", m, k, err.Error())
	}
	if opt.maxSubsets > 0 && total > opt.maxSubsets {
		return nil, nil, errors.Wrapf(ErrTooManySubsets,
			"C(%d, %d) = %d exceeds limit %d", m, k, total, opt.maxSubsets)
	}

	startAt := time.Now()
	ranges := algorithm.SplitRanks(total, opt.workers)
	stats := &EnumerateStats{Total: total, Workers: len(ranges)}
	logger := opt.logger.With(
		zap.Int("shares", m),
		zap.Int("k", k),
		zap.Uint64("subsets", total),
		zap.Int("workers", len(ranges)),
	)
	logger.Debug("start enumerating subsets")

	var (
		counters enumerateCounters
		partials = make([]*Candidates, len(ranges))
	)
	pool, gctx := errgroup.WithContext(ctx)
	for i, r := range ranges {
		i, r := i, r
		pool.Go(func() error {
			seq, err := algorithm.CombinationsRange(m, k, r.Start, r.Count)
			if err != nil {
				return errors.Wrapf(err, "worker %d", i)
			}

			partials[i], err = evaluateSubsets(gctx, set, k, seq, &counters, logger)
			return err
		})
	}
	if err = pool.Wait(); err != nil {
		return nil, nil, errors.Wrap(err, "enumerate subsets")
	}

	candidates := NewCandidates()
	for _, p := range partials {
		candidates.Merge(p)
	}
	candidates.Normalize()

	stats.Evaluated = counters.evaluated.Load()
	stats.Integral = counters.integral.Load()
	stats.NonIntegral = counters.nonIntegral.Load()
	stats.Elapsed = time.Since(startAt)
	logger.Debug("enumerated subsets",
		zap.Uint64("integral", stats.Integral),
		zap.Uint64("non_integral", stats.NonIntegral),
		zap.Int("secrets", candidates.Len()),
		zap.Duration("cost", stats.Elapsed))

	return candidates, stats, nil
}

// evaluateSubsets interpolate every subset of seq into private Candidates
func evaluateSubsets(ctx context.Context,
	set *ShareSet,
	k int,
	seq func(func([]int) bool),
	counters *enumerateCounters,
	logger log.Logger,
) (*Candidates, error) {
	candidates := NewCandidates()
	buf := make([]Share, k)
	for comb := range seq {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		counters.evaluated.Inc()
		secret, ok := InterpolateAtZero(set.selectInto(comb, buf)...)
		if !ok {
			counters.nonIntegral.Inc()
			logger.DebugSample(debugSampleRate, "discard non-integral subset", zap.Ints("subset", comb))
			continue
		}

		counters.integral.Inc()
		candidates.Add(secret, append(Subset(nil), comb...))
	}

	return candidates, nil
}
