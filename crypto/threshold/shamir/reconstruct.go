package shamir

import (
	"context"
	"math/big"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
)

// Result everything a reconstruction run produced
type Result struct {
	// Threshold k used for the run
	Threshold int
	// DeclaredShares advisory share count of the input, 0 if unknown
	DeclaredShares int
	// Fingerprint of the share set, see ShareSet.Fingerprint
	Fingerprint uint64

	WinningSecret *big.Int
	// TotalWinningSubsets number of subsets that produced WinningSecret
	TotalWinningSubsets int
	// PerShare verdict of each share, ordered by index
	PerShare []ShareVerdict
	// Ranking every candidate secret, the winner first
	Ranking []*Candidate
	Stats   *EnumerateStats
}

// Filter verdicts of the given tier
func (r *Result) Filter(tier Tier) (verdicts []ShareVerdict) {
	for _, v := range r.PerShare {
		if v.Tier == tier {
			verdicts = append(verdicts, v)
		}
	}

	return verdicts
}

// Clean whether every share is trusted
func (r *Result) Clean() bool {
	return len(r.Filter(TierTrusted)) == len(r.PerShare)
}

// Reconstruct recover the secret from shares with threshold k,
// and audit which shares are likely corrupted.
//
// shares are validated by NewShareSet, then every k-subset is
// interpolated by Enumerate and the candidates are graded by Classify.
// Use StatusOf to map the returned error to a status.
func Reconstruct(ctx context.Context, shares []Share, k int, opts ...Option) (*Result, error) {
	opt, err := new(option).fillDefault().applyOpts(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "apply options")
	}

	if len(shares) == 0 {
		return nil, ErrEmptyShareSet
	}
	if k <= 0 {
		return nil, errors.Wrapf(ErrInvalidThreshold, "k=%d", k)
	}

	set, err := NewShareSet(shares...)
	if err != nil {
		return nil, errors.Wrap(err, "validate shares")
	}

	logger := opt.logger.With(zap.Int("k", k), zap.Int("shares", set.Len()))
	if opt.declaredN > 0 && opt.declaredN != set.Len() {
		logger.Warn("declared share count differs from parsed shares, use parsed shares",
			zap.Int("declared", opt.declaredN))
	}
	if set.Len() < k {
		return nil, errors.Wrapf(ErrNoConsistentSubset,
			"only %d shares for threshold %d", set.Len(), k)
	}

	candidates, stats, err := Enumerate(ctx, set, k, opts...)
	if err != nil {
		return nil, err
	}
	if candidates.Len() == 0 {
		return nil, errors.Wrapf(ErrNoConsistentSubset,
			"none of %d subsets interpolates to an integer", stats.Total)
	}

	audit, err := Classify(candidates, set, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "classify shares")
	}

	result := &Result{
		Threshold:           k,
		DeclaredShares:      opt.declaredN,
		Fingerprint:         set.Fingerprint(),
		WinningSecret:       audit.Winner.Secret,
		TotalWinningSubsets: audit.TotalWinning,
		PerShare:            audit.Verdicts,
		Ranking:             audit.Ranking,
		Stats:               stats,
	}

	logger.Info("reconstructed secret",
		zap.Int("winning_subsets", result.TotalWinningSubsets),
		zap.Int("candidates", len(result.Ranking)),
		zap.Int("bad", len(result.Filter(TierBad))),
		zap.Int("suspicious", len(result.Filter(TierSuspicious))))
	return result, nil
}
