package rsacrack

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/orgito1015/breaking-RSA/pkg/numtheory"
)

// pollardRetryConstants is the set of polynomial constants c tried in
// f(x) = x² + c mod n when a pass fails to split n. Restarting with a new
// c escapes cycle structures where x and y collide before a factor is
// exposed (Brent's improvement).
const pollardRetryConstants = 19

// PollardRho attempts to find one non-trivial factor of n using
// Pollard's rho with Floyd cycle detection over f(x) = x² + c mod n,
// starting from x = y = 2 with c = 1. Each step advances x once and y
// twice and checks d = gcd(|x - y|, n); a d strictly between 1 and n is
// a factor. Failed or trivial passes restart with c = 1..19, each with a
// fresh step budget.
//
// Even n returns 2 immediately. A prime n (certified by the Miller-Rabin
// oracle fed from random; nil means crypto/rand) returns (nil, nil)
// without searching, as does budget exhaustion. n <= 1 is
// ErrInvalidInput.
func PollardRho(random io.Reader, n *big.Int, maxSteps int) (*big.Int, error) {
	if n.Cmp(one) <= 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "pollard: n must be > 1, got %v", n)
	}
	if n.Bit(0) == 0 {
		return big.NewInt(2), nil
	}
	if random == nil {
		random = rand.Reader
	}
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}

	prime, err := numtheory.IsProbablePrime(random, n, numtheory.DefaultRounds)
	if err != nil {
		return nil, err
	}
	if prime {
		return nil, nil
	}

	if d := rhoPass(n, one, maxSteps); d != nil {
		return d, nil
	}
	for c := int64(1); c <= pollardRetryConstants; c++ {
		if d := rhoPass(n, big.NewInt(c), maxSteps); d != nil {
			return d, nil
		}
	}
	return nil, nil
}

// rhoPass runs one Floyd cycle-detection pass with a fixed constant,
// returning a non-trivial factor or nil.
func rhoPass(n, c *big.Int, maxSteps int) *big.Int {
	f := func(x *big.Int) *big.Int {
		x.Mul(x, x)
		x.Add(x, c)
		return x.Mod(x, n)
	}

	x := big.NewInt(2)
	y := big.NewInt(2)
	d := big.NewInt(1)

	diff := new(big.Int)
	for steps := 0; d.Cmp(one) == 0 && steps < maxSteps; steps++ {
		f(x)
		f(f(y))
		diff.Sub(x, y)
		diff.Abs(diff)
		d = numtheory.GCD(diff, n)
	}

	if d.Cmp(one) > 0 && d.Cmp(n) < 0 {
		return d
	}
	return nil
}
