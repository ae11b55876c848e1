package numtheory

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGCD(t *testing.T) {
	cases := []struct {
		a, b, want int64
	}{
		{12, 8, 4},
		{8, 12, 4},
		{17, 13, 1},
		{0, 5, 5},
		{5, 0, 5},
		{0, 0, 0},
		{-12, 8, 4},
		{36, 24, 12},
	}
	for _, tc := range cases {
		got := GCD(big.NewInt(tc.a), big.NewInt(tc.b))
		assert.Equal(t, tc.want, got.Int64(), "gcd(%d, %d)", tc.a, tc.b)
	}
}

func TestGCDDoesNotMutateArguments(t *testing.T) {
	a := big.NewInt(36)
	b := big.NewInt(24)
	GCD(a, b)
	assert.Equal(t, int64(36), a.Int64())
	assert.Equal(t, int64(24), b.Int64())
}

func TestExtendedGCDBezoutIdentity(t *testing.T) {
	cases := [][2]int64{
		{12, 8},
		{17, 13},
		{35, 15},
		{1, 1},
		{0, 7},
		{7, 0},
		{240, 46},
	}
	for _, tc := range cases {
		a := big.NewInt(tc[0])
		b := big.NewInt(tc[1])
		g, x, y := ExtendedGCD(a, b)

		lhs := new(big.Int).Mul(a, x)
		lhs.Add(lhs, new(big.Int).Mul(b, y))
		assert.Zero(t, lhs.Cmp(g), "a*x + b*y != g for (%d, %d)", tc[0], tc[1])
		assert.Zero(t, g.Cmp(GCD(a, b)), "g != gcd for (%d, %d)", tc[0], tc[1])
	}
}

func TestModInverse(t *testing.T) {
	inv, err := ModInverse(big.NewInt(3), big.NewInt(11))
	require.NoError(t, err)
	assert.Equal(t, int64(4), inv.Int64())

	inv, err = ModInverse(big.NewInt(7), big.NewInt(26))
	require.NoError(t, err)
	assert.Equal(t, int64(15), inv.Int64())
}

func TestModInverseResultRange(t *testing.T) {
	inv, err := ModInverse(big.NewInt(17), big.NewInt(100))
	require.NoError(t, err)

	assert.True(t, inv.Sign() >= 0)
	assert.True(t, inv.Cmp(big.NewInt(100)) < 0)

	check := new(big.Int).Mul(big.NewInt(17), inv)
	check.Mod(check, big.NewInt(100))
	assert.Equal(t, int64(1), check.Int64())
}

func TestModInverseNegativeOperand(t *testing.T) {
	// -3 ≡ 8 (mod 11), and 8*7 = 56 ≡ 1 (mod 11).
	inv, err := ModInverse(big.NewInt(-3), big.NewInt(11))
	require.NoError(t, err)
	assert.Equal(t, int64(7), inv.Int64())
}

func TestModInverseNoInverse(t *testing.T) {
	_, err := ModInverse(big.NewInt(4), big.NewInt(8))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoInverse))
}

func TestCRT(t *testing.T) {
	// x ≡ 2 (mod 3), x ≡ 3 (mod 5), x ≡ 2 (mod 7) → x = 23.
	x, err := CRT(
		[]*big.Int{big.NewInt(2), big.NewInt(3), big.NewInt(2)},
		[]*big.Int{big.NewInt(3), big.NewInt(5), big.NewInt(7)},
	)
	require.NoError(t, err)
	assert.Equal(t, int64(23), x.Int64())
}

func TestCRTNonCoprimeModuli(t *testing.T) {
	_, err := CRT(
		[]*big.Int{big.NewInt(1), big.NewInt(2)},
		[]*big.Int{big.NewInt(4), big.NewInt(6)},
	)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoInverse))
}

func TestCRTLengthMismatch(t *testing.T) {
	_, err := CRT([]*big.Int{big.NewInt(1)}, []*big.Int{big.NewInt(3), big.NewInt(5)})
	assert.Error(t, err)
}
