package report

import (
	"io"
	"strconv"

	"github.com/Laisky/errors/v2"

	"github.com/Laisky/shamir-audit/crypto/threshold/shamir"
	"github.com/Laisky/shamir-audit/json"
)

// Report JSON document of one run
type Report struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`

	Threshold      int    `json:"threshold,omitempty"`
	DeclaredShares int    `json:"declared_shares,omitempty"`
	Fingerprint    string `json:"fingerprint,omitempty"`

	// Secret decimal winning secret, big numbers do not fit in json numbers
	Secret         string                 `json:"secret,omitempty"`
	WinningSubsets int                    `json:"winning_subsets"`
	Shares         []ShareReport          `json:"shares,omitempty"`
	Candidates     []CandidateReport      `json:"candidates,omitempty"`
	Stats          *shamir.EnumerateStats `json:"stats,omitempty"`
}

// ShareReport verdict of one share
type ShareReport struct {
	Index        int         `json:"index"`
	X            int64       `json:"x"`
	Y            string      `json:"y"`
	IncludeCount int         `json:"include_count"`
	Tier         shamir.Tier `json:"tier"`
}

// CandidateReport one candidate secret
type CandidateReport struct {
	Secret  string `json:"secret"`
	Support int    `json:"support"`
}

// NewReport build report from the return values of shamir.Reconstruct
func NewReport(result *shamir.Result, runErr error) *Report {
	r := &Report{Status: shamir.StatusOf(runErr).String()}
	if runErr != nil {
		r.Error = runErr.Error()
		return r
	}
	if result == nil {
		return r
	}

	r.Threshold = result.Threshold
	r.DeclaredShares = result.DeclaredShares
	r.Fingerprint = strconv.FormatUint(result.Fingerprint, 16)
	r.Secret = result.WinningSecret.String()
	r.WinningSubsets = result.TotalWinningSubsets
	r.Stats = result.Stats
	for _, v := range result.PerShare {
		r.Shares = append(r.Shares, ShareReport{
			Index:        v.Index,
			X:            v.Share.X,
			Y:            v.Share.Y.String(),
			IncludeCount: v.IncludeCount,
			Tier:         v.Tier,
		})
	}
	for _, cand := range result.Ranking {
		r.Candidates = append(r.Candidates, CandidateReport{
			Secret:  cand.Secret.String(),
			Support: cand.Support(),
		})
	}

	return r
}

// WriteJSON write the indented JSON report of a run to w
func WriteJSON(w io.Writer, result *shamir.Result, runErr error) error {
	data, err := json.MarshalIndent(NewReport(result, runErr), "", "  ")
	if err != nil {
		return errors.Wrap(err, "marshal report")
	}

	if _, err = w.Write(append(data, '\n')); err != nil {
		return errors.Wrap(err, "write report")
	}

	return nil
}
