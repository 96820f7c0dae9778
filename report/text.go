package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/Laisky/errors/v2"

	gutils "github.com/Laisky/shamir-audit"
	"github.com/Laisky/shamir-audit/crypto/threshold/shamir"
)

// WriteText write the audit transcript of result to w
//
//	Secret: 5
//
//	Winning-subset-count for secret = 3
//
//	Share inclusion in winning subsets:
//	  index 0 (x=1) included in 2/3 winning subsets
//	  ...
//
// followed by the bad and suspicious shares, or a line saying none was found.
func WriteText(w io.Writer, result *shamir.Result, optfs ...Option) error {
	opt, err := new(option).fillDefault().applyOpts(optfs...)
	if err != nil {
		return errors.Wrap(err, "apply options")
	}
	if result == nil {
		return errors.New("result is nil")
	}

	c := gutils.Colorizer{Enabled: opt.color}
	total := result.TotalWinningSubsets
	var sb strings.Builder

	fmt.Fprintf(&sb, "Secret: %s\n\n", c.Color(gutils.ANSIColorFgGreen, result.WinningSecret.String()))
	fmt.Fprintf(&sb, "Winning-subset-count for secret = %d\n\n", total)

	sb.WriteString("Share inclusion in winning subsets:\n")
	for _, v := range result.PerShare {
		fmt.Fprintf(&sb, "  index %d (x=%d) included in %d/%d winning subsets\n",
			v.Index, v.Share.X, v.IncludeCount, total)
	}
	sb.WriteString("\n")

	bad := result.Filter(shamir.TierBad)
	suspicious := result.Filter(shamir.TierSuspicious)
	if len(bad) == 0 && len(suspicious) == 0 {
		sb.WriteString(c.Color(gutils.ANSIColorFgGreen,
			"No wrong shares detected (all shares appear frequently in winning subsets).") + "\n")
	}
	if len(bad) != 0 {
		sb.WriteString(c.Color(gutils.ANSIColorFgRed, "Highly suspicious (likely wrong) share indices:") + "\n")
		for _, v := range bad {
			fmt.Fprintf(&sb, "  index %d -> x=%d, y=%s\n", v.Index, v.Share.X, v.Share.Y)
		}
	}
	if len(suspicious) != 0 {
		sb.WriteString(c.Color(gutils.ANSIColorFgYellow,
			"Possibly suspicious shares (appear in fewer than half the winning subsets):") + "\n")
		for _, v := range suspicious {
			fmt.Fprintf(&sb, "  index %d -> x=%d, y=%s (included %d/%d)\n",
				v.Index, v.Share.X, v.Share.Y, v.IncludeCount, total)
		}
	}

	if runnerUps := runnerUps(result, opt.rankingLimit); len(runnerUps) != 0 {
		sb.WriteString("\nOther candidate secrets:\n")
		for _, cand := range runnerUps {
			fmt.Fprintf(&sb, "  %s from %d subsets\n", cand.Secret, cand.Support())
		}
		if hidden := len(result.Ranking) - 1 - len(runnerUps); hidden > 0 {
			fmt.Fprintf(&sb, "  ... and %d more\n", hidden)
		}
	}

	if _, err = io.WriteString(w, sb.String()); err != nil {
		return errors.Wrap(err, "write report")
	}

	return nil
}

func runnerUps(result *shamir.Result, limit int) []*shamir.Candidate {
	if len(result.Ranking) < 2 || limit == 0 {
		return nil
	}

	others := result.Ranking[1:]
	if len(others) > limit {
		others = others[:limit]
	}

	return others
}

// WriteTextFailure write a one line explanation of a failed run
func WriteTextFailure(w io.Writer, runErr error, optfs ...Option) error {
	opt, err := new(option).fillDefault().applyOpts(optfs...)
	if err != nil {
		return errors.Wrap(err, "apply options")
	}

	var msg string
	switch shamir.StatusOf(runErr) {
	case shamir.StatusSuccess:
		return nil
	case shamir.StatusNoSharesOrInvalidThreshold:
		msg = "No shares parsed or invalid k."
	case shamir.StatusNoConsistentSubset:
		msg = "No valid subset produced an integer secret."
	default:
		msg = "Error: " + runErr.Error()
	}

	c := gutils.Colorizer{Enabled: opt.color}
	if _, err = io.WriteString(w, c.Color(gutils.ANSIColorFgRed, msg)+"\n"); err != nil {
		return errors.Wrap(err, "write report")
	}

	return nil
}
