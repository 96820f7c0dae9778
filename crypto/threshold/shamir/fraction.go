package shamir

import (
	"math/big"
)

// Fraction exact rational number num/den.
//
// Fractions built by NewFraction and AddFraction are reduced by
// gcd(|num|, |den|). The sign is not normalized, den may be negative.
type Fraction struct {
	Num, Den *big.Int
}

// NewFraction return reduced num/den, arguments are copied
func NewFraction(num, den *big.Int) Fraction {
	return reduce(new(big.Int).Set(num), new(big.Int).Set(den))
}

// ZeroFraction return 0/1
func ZeroFraction() Fraction {
	return Fraction{Num: big.NewInt(0), Den: big.NewInt(1)}
}

// AddFraction return a + b, reduced.
//
// neither a nor b is modified.
func AddFraction(a, b Fraction) Fraction {
	num := new(big.Int).Mul(a.Num, b.Den)
	num.Add(num, new(big.Int).Mul(b.Num, a.Den))
	den := new(big.Int).Mul(a.Den, b.Den)
	return reduce(num, den)
}

// Add return f + o
func (f Fraction) Add(o Fraction) Fraction {
	return AddFraction(f, o)
}

// Int return the exact quotient num/den,
// ok is false if the division leaves a remainder or den is zero.
func (f Fraction) Int() (q *big.Int, ok bool) {
	if f.Den.Sign() == 0 {
		return nil, false
	}

	q, r := new(big.Int).QuoRem(f.Num, f.Den, new(big.Int))
	if r.Sign() != 0 {
		return nil, false
	}

	return q, true
}

func (f Fraction) String() string {
	return f.Num.String() + "/" + f.Den.String()
}

// reduce divide num and den by gcd(|num|, |den|) in place
func reduce(num, den *big.Int) Fraction {
	g := new(big.Int).GCD(nil, nil,
		new(big.Int).Abs(num),
		new(big.Int).Abs(den))
	// gcd is zero only if both are zero
	if g.Sign() != 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}

	return Fraction{Num: num, Den: den}
}
