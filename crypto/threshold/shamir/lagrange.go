package shamir

import (
	"math/big"
)

// InterpolateAtZero reconstruct the constant term of the polynomial
// of degree len(shares)-1 passing through all shares,
// by Lagrange interpolation at x = 0 in exact rational arithmetic:
//
//	f(0) = Σ_i y_i · Π_{j≠i} (−x_j) / Π_{j≠i} (x_i − x_j)
//
// ok is false when the sum is not an integer, which means the shares are
// not consistent with any integer polynomial of that degree,
// at least one of them is invalid.
// ok is also false for duplicated x or no shares at all,
// NewShareSet never lets those through.
func InterpolateAtZero(shares ...Share) (secret *big.Int, ok bool) {
	if len(shares) == 0 {
		return nil, false
	}

	var (
		total        = ZeroFraction()
		num, den     = new(big.Int), new(big.Int)
		xi, xj, diff = new(big.Int), new(big.Int), new(big.Int)
	)
	for i := range shares {
		num.SetInt64(1)
		den.SetInt64(1)
		xi.SetInt64(shares[i].X)
		for j := range shares {
			if i == j {
				continue
			}

			xj.SetInt64(shares[j].X)
			den.Mul(den, diff.Sub(xi, xj))
			num.Mul(num, xj.Neg(xj))
		}

		if den.Sign() == 0 {
			return nil, false
		}

		total = AddFraction(total, Fraction{
			Num: new(big.Int).Mul(shares[i].Y, num),
			Den: den,
		})
	}

	return total.Int()
}
