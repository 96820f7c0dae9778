package shamir

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/require"
)

func frac(num, den int64) Fraction {
	return Fraction{Num: big.NewInt(num), Den: big.NewInt(den)}
}

func TestAddFraction(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		a, b     Fraction
		num, den int64
	}{
		{"halves", frac(1, 2), frac(1, 2), 1, 1},
		{"half and third", frac(1, 2), frac(1, 3), 5, 6},
		{"zero", ZeroFraction(), frac(3, 9), 1, 3},
		{"negative denominators", frac(1, -2), frac(1, -2), -1, 1},
		{"cancel out", frac(2, 3), frac(-2, 3), 0, 1},
		{"mixed signs", frac(-3, 4), frac(1, -4), 1, -1},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			aNum, aDen := tt.a.Num.String(), tt.a.Den.String()
			got := AddFraction(tt.a, tt.b)
			require.Equal(t, tt.num, got.Num.Int64(), got.String())
			require.Equal(t, tt.den, got.Den.Int64(), got.String())
			require.Equal(t, got, tt.a.Add(tt.b))

			// inputs untouched
			require.Equal(t, aNum, tt.a.Num.String())
			require.Equal(t, aDen, tt.a.Den.String())
		})
	}
}

func TestFractionReduced(t *testing.T) {
	t.Parallel()

	f := NewFraction(big.NewInt(-84), big.NewInt(36))
	require.Equal(t, "-7/3", f.String())

	big1, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)
	f = NewFraction(new(big.Int).Mul(big1, big.NewInt(6)), big.NewInt(-4))
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(f.Num), new(big.Int).Abs(f.Den))
	require.Equal(t, int64(1), g.Int64())
}

func TestFractionInt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		f    Fraction
		want int64
		ok   bool
	}{
		{"exact", frac(6, 3), 2, true},
		{"remainder", frac(7, 2), 0, false},
		{"negative both", frac(-6, -3), 2, true},
		{"negative result", frac(10, -5), -2, true},
		{"zero numerator", frac(0, 7), 0, true},
		{"zero denominator", frac(1, 0), 0, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, ok := tt.f.Int()
			require.Equal(t, tt.ok, ok)
			if tt.ok {
				require.Equal(t, tt.want, got.Int64())
			} else {
				require.Nil(t, got)
			}
		})
	}
}
