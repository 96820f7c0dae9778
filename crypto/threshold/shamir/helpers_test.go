package shamir

import (
	"math/big"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/require"
)

// randomPolynomial coefficients of a random polynomial of degree k-1,
// coeffs[0] is the secret
func randomPolynomial(faker *gofakeit.Faker, k int) []*big.Int {
	coeffs := make([]*big.Int, k)
	for i := range coeffs {
		c := new(big.Int).SetUint64(faker.Uint64())
		// make some coefficients really big
		if faker.Bool() {
			c.Mul(c, new(big.Int).SetUint64(faker.Uint64()))
		}

		coeffs[i] = c
	}

	return coeffs
}

// evaluate polynomial at x by Horner's method
func evaluate(coeffs []*big.Int, x int64) *big.Int {
	y := new(big.Int)
	bx := big.NewInt(x)
	for i := len(coeffs) - 1; i >= 0; i-- {
		y.Mul(y, bx)
		y.Add(y, coeffs[i])
	}

	return y
}

func polyShares(coeffs []*big.Int, xs ...int64) []Share {
	shares := make([]Share, len(xs))
	for i, x := range xs {
		shares[i] = Share{X: x, Y: evaluate(coeffs, x)}
	}

	return shares
}

func intShares(pairs ...int64) []Share {
	shares := make([]Share, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		shares = append(shares, Share{X: pairs[i], Y: big.NewInt(pairs[i+1])})
	}

	return shares
}

func mustShareSet(t *testing.T, shares ...Share) *ShareSet {
	t.Helper()

	set, err := NewShareSet(shares...)
	require.NoError(t, err)
	return set
}

func tiersOf(verdicts []ShareVerdict) []Tier {
	tiers := make([]Tier, len(verdicts))
	for i, v := range verdicts {
		tiers[i] = v.Tier
	}

	return tiers
}

func countsOf(verdicts []ShareVerdict) []int {
	counts := make([]int, len(verdicts))
	for i, v := range verdicts {
		counts[i] = v.IncludeCount
	}

	return counts
}
