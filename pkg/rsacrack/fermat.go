package rsacrack

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/orgito1015/breaking-RSA/pkg/numtheory"
)

// FermatFactor attempts to factor n by Fermat's method, searching a
// upward from ceil(sqrt(n)) for the first a where a² - n is a perfect
// square b², which yields the factorization (a-b)(a+b).
//
// The method is fast exactly when the two factors of n are close, taking
// O(|p - q|) steps for factors of similar size. maxSteps bounds the
// search (<= 0 means DefaultMaxSteps); exhausting it returns (nil, nil),
// the documented no-solution outcome. An even n short-circuits to
// (2, n/2) and a perfect square to (sqrt(n), sqrt(n)). n <= 1 is
// ErrInvalidInput.
func FermatFactor(n *big.Int, maxSteps int) (*FactorPair, error) {
	if n.Cmp(one) <= 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "fermat: n must be > 1, got %v", n)
	}
	if n.Bit(0) == 0 {
		return &FactorPair{P: big.NewInt(2), Q: new(big.Int).Rsh(n, 1)}, nil
	}
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}

	a, err := numtheory.Sqrt(n)
	if err != nil {
		return nil, err
	}
	if new(big.Int).Mul(a, a).Cmp(n) == 0 {
		return &FactorPair{P: a, Q: new(big.Int).Set(a)}, nil
	}

	a.Add(a, one)

	b2 := new(big.Int)
	sq := new(big.Int)
	for step := 0; step < maxSteps; step++ {
		b2.Mul(a, a)
		b2.Sub(b2, n)

		b := sq.Sqrt(b2)
		if new(big.Int).Mul(b, b).Cmp(b2) == 0 {
			p := new(big.Int).Sub(a, b)
			q := new(big.Int).Add(a, b)
			if p.Cmp(one) > 0 && q.Cmp(n) < 0 {
				return orderedPair(p, q), nil
			}
		}
		a.Add(a, one)
	}

	return nil, nil
}
