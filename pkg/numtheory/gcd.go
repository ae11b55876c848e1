package numtheory

import (
	"math/big"

	"github.com/pkg/errors"
)

// ErrNoInverse is returned when a modular inverse does not exist because
// the operand and the modulus share a common factor.
var ErrNoInverse = errors.New("numtheory: modular inverse does not exist")

// GCD returns the non-negative greatest common divisor of a and b.
// GCD(0, x) == |x|.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x, y = y, x.Mod(x, y)
	}
	return x
}

// ExtendedGCD returns (g, x, y) such that a*x + b*y == g == gcd(a, b).
//
// The Bézout coefficients are not normalized to [0, b); callers that need
// a canonical representative must reduce modulo the other operand. The
// recursion of the textbook formulation is unrolled into a loop so worst
// case inputs cannot exhaust the stack.
func ExtendedGCD(a, b *big.Int) (g, x, y *big.Int) {
	oldR, r := new(big.Int).Set(a), new(big.Int).Set(b)
	oldS, s := big.NewInt(1), big.NewInt(0)
	oldT, t := big.NewInt(0), big.NewInt(1)

	for r.Sign() != 0 {
		q := new(big.Int).Quo(oldR, r)

		oldR, r = r, new(big.Int).Sub(oldR, new(big.Int).Mul(q, r))
		oldS, s = s, new(big.Int).Sub(oldS, new(big.Int).Mul(q, s))
		oldT, t = t, new(big.Int).Sub(oldT, new(big.Int).Mul(q, t))
	}

	// Keep g non-negative, flipping the coefficients with it.
	if oldR.Sign() < 0 {
		oldR.Neg(oldR)
		oldS.Neg(oldS)
		oldT.Neg(oldT)
	}
	return oldR, oldS, oldT
}

// ModInverse returns the smallest non-negative x with (a*x) mod m == 1.
// It returns ErrNoInverse when gcd(a mod m, m) != 1.
func ModInverse(a, m *big.Int) (*big.Int, error) {
	reduced := new(big.Int).Mod(a, m)
	g, x, _ := ExtendedGCD(reduced, m)
	if g.Cmp(one) != 0 {
		return nil, errors.Wrapf(ErrNoInverse, "gcd(%v, %v) = %v", a, m, g)
	}
	return x.Mod(x, m), nil
}

// CRT solves the system x ≡ remainders[i] (mod moduli[i]) by Chinese
// Remainder composition and returns the unique solution in
// [0, ∏ moduli). The moduli must be pairwise coprime; a shared factor
// surfaces as ErrNoInverse.
func CRT(remainders, moduli []*big.Int) (*big.Int, error) {
	if len(remainders) != len(moduli) {
		return nil, errors.Errorf("numtheory: %d remainders for %d moduli", len(remainders), len(moduli))
	}

	product := big.NewInt(1)
	for _, m := range moduli {
		product.Mul(product, m)
	}

	x := new(big.Int)
	for i, r := range remainders {
		mi := new(big.Int).Quo(product, moduli[i])
		inv, err := ModInverse(mi, moduli[i])
		if err != nil {
			return nil, errors.WithMessagef(err, "modulus %d not coprime to the rest", i)
		}
		term := new(big.Int).Mul(r, mi)
		term.Mul(term, inv)
		x.Add(x, term)
	}
	return x.Mod(x, product), nil
}
