// Package shamir reconstructs Shamir shared secrets and audits the shares.
//
// In Shamir's Secret Sharing the secret is the constant term of a random
// polynomial of degree k-1, and every participant holds one point (x, y)
// of it. Any k points determine the polynomial, so any k-subset of
// honest shares recovers the secret by Lagrange interpolation at x = 0.
//
// When some shares are corrupted, different subsets recover different values.
// Reconstruct interpolates every k-subset in exact rational arithmetic,
// discards subsets that do not interpolate to an integer,
// and picks the secret produced by the most subsets.
// Each share is then graded by how many winning subsets contain it:
//
//   - TierBad: never in a winning subset
//   - TierSuspicious: in fewer than half of the winning subsets
//   - TierTrusted: in at least half of the winning subsets
//
// The work is C(m, k) interpolations for m shares, it is split across
// goroutines by WithWorkers and can be bounded by WithMaxSubsets.
package shamir
