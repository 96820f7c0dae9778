package shamir

import (
	"math/big"
	"slices"
	"sort"
)

// Candidate one reconstructed secret and every subset that produced it
type Candidate struct {
	Secret  *big.Int
	Subsets []Subset
}

// Support number of subsets that interpolate to Secret
func (c *Candidate) Support() int {
	return len(c.Subsets)
}

// Candidates secret value -> subsets that interpolated to it.
//
// Candidates is built fresh for each run and is not safe for concurrent writes,
// parallel workers build their own and Merge them afterwards.
type Candidates struct {
	bySecret map[string]*Candidate
}

// NewCandidates create empty Candidates
func NewCandidates() *Candidates {
	return &Candidates{bySecret: map[string]*Candidate{}}
}

func secretKey(secret *big.Int) string {
	return secret.Text(62)
}

// Add record that subset interpolated to secret, subset is kept as is
func (c *Candidates) Add(secret *big.Int, subset Subset) {
	key := secretKey(secret)
	cand, ok := c.bySecret[key]
	if !ok {
		cand = &Candidate{Secret: new(big.Int).Set(secret)}
		c.bySecret[key] = cand
	}

	cand.Subsets = append(cand.Subsets, subset)
}

// Merge append all subsets of other into c, return c.
//
// other must not be used afterwards. Call Normalize to get an
// order that does not depend on the merge order.
func (c *Candidates) Merge(other *Candidates) *Candidates {
	if other == nil {
		return c
	}

	for key, cand := range other.bySecret {
		if mine, ok := c.bySecret[key]; ok {
			mine.Subsets = append(mine.Subsets, cand.Subsets...)
			continue
		}

		c.bySecret[key] = cand
	}

	return c
}

// Normalize sort the subsets of every candidate lexicographically
func (c *Candidates) Normalize() {
	for _, cand := range c.bySecret {
		slices.SortFunc(cand.Subsets, func(a, b Subset) int {
			return slices.Compare(a, b)
		})
	}
}

// Len number of distinct secrets
func (c *Candidates) Len() int {
	return len(c.bySecret)
}

// Get candidate of secret
func (c *Candidates) Get(secret *big.Int) (*Candidate, bool) {
	cand, ok := c.bySecret[secretKey(secret)]
	return cand, ok
}

// Ranked all candidates ordered by support descending,
// then by secret ascending.
func (c *Candidates) Ranked() []*Candidate {
	ranked := make([]*Candidate, 0, len(c.bySecret))
	for _, cand := range c.bySecret {
		ranked = append(ranked, cand)
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Support() != ranked[j].Support() {
			return ranked[i].Support() > ranked[j].Support()
		}

		return ranked[i].Secret.Cmp(ranked[j].Secret) < 0
	})

	return ranked
}
