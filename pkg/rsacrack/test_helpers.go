package rsacrack

import (
	"math/big"
	mrand "math/rand"

	"github.com/orgito1015/breaking-RSA/pkg/numtheory"
	"github.com/orgito1015/breaking-RSA/pkg/rsakey"
)

// testRand returns a deterministic entropy source for repeatable tests.
func testRand(seed int64) *mrand.Rand {
	return mrand.New(mrand.NewSource(seed))
}

// weakFermatKey builds a key whose primes are as close together as the
// prime distribution allows: q is the first prime above p. Fermat's
// method factors such a modulus in a handful of steps.
func weakFermatKey(seed int64, bits int) (*rsakey.Key, error) {
	random := testRand(seed)

	p, err := numtheory.GeneratePrime(random, bits/2)
	if err != nil {
		return nil, err
	}

	q := new(big.Int).Add(p, big.NewInt(2))
	for {
		prime, err := numtheory.IsProbablePrime(random, q, numtheory.DefaultRounds)
		if err != nil {
			return nil, err
		}
		if prime {
			break
		}
		q.Add(q, big.NewInt(2))
	}

	n := new(big.Int).Mul(p, q)
	phi := new(big.Int).Mul(
		new(big.Int).Sub(p, big.NewInt(1)),
		new(big.Int).Sub(q, big.NewInt(1)),
	)

	e := big.NewInt(rsakey.DefaultPublicExponent)
	if numtheory.GCD(e, phi).Cmp(big.NewInt(1)) != 0 {
		e = big.NewInt(3)
	}
	d, err := numtheory.ModInverse(e, phi)
	if err != nil {
		return nil, err
	}

	return &rsakey.Key{N: n, E: e, D: d, P: p, Q: q}, nil
}

// lopsidedKey builds a key from primes of very different sizes. Fermat's
// method is hopeless against it, while rho finds the small factor fast.
func lopsidedKey(seed int64, pBits, qBits int) (*rsakey.Key, error) {
	random := testRand(seed)

	for {
		p, err := numtheory.GeneratePrime(random, pBits)
		if err != nil {
			return nil, err
		}
		q, err := numtheory.GeneratePrime(random, qBits)
		if err != nil {
			return nil, err
		}

		n := new(big.Int).Mul(p, q)
		phi := new(big.Int).Mul(
			new(big.Int).Sub(p, big.NewInt(1)),
			new(big.Int).Sub(q, big.NewInt(1)),
		)

		e := big.NewInt(rsakey.DefaultPublicExponent)
		if numtheory.GCD(e, phi).Cmp(big.NewInt(1)) != 0 {
			continue
		}
		d, err := numtheory.ModInverse(e, phi)
		if err != nil {
			return nil, err
		}
		return &rsakey.Key{N: n, E: e, D: d, P: p, Q: q}, nil
	}
}

// wienerKey builds a key with a deliberately small private exponent,
// d around n^0.2, which is inside Wiener's d < n^0.25 / 3 bound.
func wienerKey(seed int64, bits int) (*rsakey.Key, error) {
	random := testRand(seed)

	for {
		p, err := numtheory.GeneratePrime(random, bits/2)
		if err != nil {
			return nil, err
		}
		q, err := numtheory.GeneratePrime(random, bits/2)
		if err != nil {
			return nil, err
		}
		if p.Cmp(q) == 0 {
			continue
		}

		n := new(big.Int).Mul(p, q)
		phi := new(big.Int).Mul(
			new(big.Int).Sub(p, big.NewInt(1)),
			new(big.Int).Sub(q, big.NewInt(1)),
		)

		dBits := bits / 5
		if dBits < 4 {
			dBits = 4
		}
		d, err := numtheory.GeneratePrime(random, dBits)
		if err != nil {
			return nil, err
		}
		if numtheory.GCD(d, phi).Cmp(big.NewInt(1)) != 0 {
			continue
		}

		e, err := numtheory.ModInverse(d, phi)
		if err != nil {
			return nil, err
		}
		if e.Cmp(big.NewInt(1)) <= 0 {
			continue
		}

		return &rsakey.Key{N: n, E: e, D: d, P: p, Q: q}, nil
	}
}
