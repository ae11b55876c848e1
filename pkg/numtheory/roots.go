package numtheory

import (
	"math"
	"math/big"

	"github.com/pkg/errors"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// ErrNegative is returned when a root is requested for a negative radicand.
var ErrNegative = errors.New("numtheory: root not defined for negative numbers")

// Sqrt returns the floor of the exact square root of n.
// It returns ErrNegative for n < 0.
func Sqrt(n *big.Int) (*big.Int, error) {
	if n.Sign() < 0 {
		return nil, errors.Wrapf(ErrNegative, "sqrt(%v)", n)
	}
	return new(big.Int).Sqrt(n), nil
}

// NthRoot returns (root, exact) where root = floor(n^(1/k)) and exact
// reports whether root^k == n.
//
// A float64 estimate narrows the search first: the estimate and its ±2
// neighborhood are tested for an exact hit. The floor itself always comes
// from a monotone binary search over [1, 2^(ceil(bits/k)+1)], so a bad
// float estimate can never produce a wrong answer, only a slower one.
func NthRoot(n *big.Int, k int) (*big.Int, bool, error) {
	if n.Sign() < 0 {
		return nil, false, errors.Wrapf(ErrNegative, "nthroot(%v, %d)", n, k)
	}
	if k <= 0 {
		return nil, false, errors.Errorf("numtheory: root degree must be positive, got %d", k)
	}
	if n.Sign() == 0 {
		return new(big.Int), true, nil
	}
	if k == 1 {
		return new(big.Int).Set(n), true, nil
	}

	kBig := big.NewInt(int64(k))

	if f, _ := new(big.Float).SetInt(n).Float64(); !math.IsInf(f, 1) {
		estimate, _ := big.NewFloat(math.Round(math.Pow(f, 1/float64(k)))).Int(nil)
		for delta := int64(-2); delta <= 2; delta++ {
			candidate := new(big.Int).Add(estimate, big.NewInt(delta))
			if candidate.Sign() <= 0 {
				continue
			}
			if new(big.Int).Exp(candidate, kBig, nil).Cmp(n) == 0 {
				return candidate, true, nil
			}
		}
	}

	// Binary search for the floor. The upper bound over-shoots the true
	// root by at most one bit.
	hi := new(big.Int).Lsh(one, uint((n.BitLen()+k-1)/k+1))
	if hi.Cmp(n) > 0 {
		hi.Set(n)
	}
	lo := big.NewInt(1)
	for lo.Cmp(hi) < 0 {
		mid := new(big.Int).Add(lo, hi)
		mid.Add(mid, one).Rsh(mid, 1)
		if new(big.Int).Exp(mid, kBig, nil).Cmp(n) <= 0 {
			lo = mid
		} else {
			hi = mid.Sub(mid, one)
		}
	}

	exact := new(big.Int).Exp(lo, kBig, nil).Cmp(n) == 0
	return lo, exact, nil
}
