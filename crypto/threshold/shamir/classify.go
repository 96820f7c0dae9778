package shamir

import (
	"math"
	"strings"

	"github.com/Laisky/errors/v2"
	"github.com/Laisky/zap"
	"github.com/RoaringBitmap/roaring"
)

// Tier trust level of one share
type Tier int

const (
	// TierBad never appears in a winning subset
	TierBad Tier = iota
	// TierSuspicious appears in fewer than half of the winning subsets
	TierSuspicious
	// TierTrusted appears in at least half of the winning subsets
	TierTrusted
)

func (t Tier) String() string {
	switch t {
	case TierBad:
		return "bad"
	case TierSuspicious:
		return "suspicious"
	case TierTrusted:
		return "trusted"
	default:
		return "unknown"
	}
}

// MarshalText encode tier by its name
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText decode tier from its name
func (t *Tier) UnmarshalText(text []byte) error {
	for _, tier := range []Tier{TierBad, TierSuspicious, TierTrusted} {
		if tier.String() == string(text) {
			*t = tier
			return nil
		}
	}

	return errors.Errorf("unknown tier %q", text)
}

// ClassifyTier tier of a share included in includeCount of totalWinning winning subsets
func ClassifyTier(includeCount, totalWinning int) Tier {
	switch {
	case includeCount == 0:
		return TierBad
	case includeCount*2 < totalWinning:
		return TierSuspicious
	default:
		return TierTrusted
	}
}

// ShareVerdict audit result of one share
type ShareVerdict struct {
	// Index position of the share in the ShareSet
	Index int
	Share Share
	// IncludeCount number of winning subsets containing the share
	IncludeCount int
	Tier         Tier
	// Support ordinals (positions in Audit.Winner.Subsets) of the
	// winning subsets containing the share.
	// nil if there are more winning subsets than fit in uint32.
	Support *roaring.Bitmap
}

// Audit winning secret and per share verdicts
type Audit struct {
	Winner *Candidate
	// TotalWinning support of the winner
	TotalWinning int
	// Verdicts one per share, ordered by index
	Verdicts []ShareVerdict
	// Ranking every candidate by support descending then secret ascending,
	// Ranking[0] is the winner.
	Ranking []*Candidate
}

// Classify pick the secret produced by the most subsets,
// and grade every share of set by how many winning subsets contain it.
//
// ties are resolved by the TieBreak option.
// returns ErrNoConsistentSubset if candidates is empty.
func Classify(candidates *Candidates, set *ShareSet, opts ...Option) (*Audit, error) {
	opt, err := new(option).fillDefault().applyOpts(opts...)
	if err != nil {
		return nil, errors.Wrap(err, "apply options")
	}

	if set == nil || set.Len() == 0 {
		return nil, ErrEmptyShareSet
	}
	if candidates == nil || candidates.Len() == 0 {
		return nil, ErrNoConsistentSubset
	}

	ranking := candidates.Ranked()
	winner := ranking[0]
	if tied := tiedSecrets(ranking); len(tied) > 1 {
		switch opt.tieBreak {
		case TieBreakStrict:
			return nil, errors.Wrapf(ErrAmbiguousReconstruction,
				"secrets [%s] are all supported by %d subsets",
				strings.Join(tied, ", "), winner.Support())
		default:
			opt.logger.Warn("several secrets share the greatest support, pick the smallest",
				zap.Strings("secrets", tied),
				zap.Int("support", winner.Support()))
		}
	}

	total := winner.Support()
	counts := make([]int, set.Len())
	var bitmaps []*roaring.Bitmap
	if uint64(total) <= math.MaxUint32 {
		bitmaps = make([]*roaring.Bitmap, set.Len())
		for i := range bitmaps {
			bitmaps[i] = roaring.New()
		}
	}
	for ordinal, subset := range winner.Subsets {
		for _, idx := range subset {
			counts[idx]++
			if bitmaps != nil {
				bitmaps[idx].Add(uint32(ordinal))
			}
		}
	}

	audit := &Audit{
		Winner:       winner,
		TotalWinning: total,
		Verdicts:     make([]ShareVerdict, set.Len()),
		Ranking:      ranking,
	}
	for i := range audit.Verdicts {
		v := ShareVerdict{
			Index:        i,
			Share:        set.At(i),
			IncludeCount: counts[i],
			Tier:         ClassifyTier(counts[i], total),
		}
		if bitmaps != nil {
			v.Support = bitmaps[i]
		}

		audit.Verdicts[i] = v
	}

	return audit, nil
}

// tiedSecrets secrets sharing the support of ranking[0]
func tiedSecrets(ranking []*Candidate) (tied []string) {
	for _, cand := range ranking {
		if cand.Support() != ranking[0].Support() {
			break
		}

		tied = append(tied, cand.Secret.String())
	}

	return tied
}
