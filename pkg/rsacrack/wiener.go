package rsacrack

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/orgito1015/breaking-RSA/pkg/numtheory"
)

// Wiener attempts to recover the private exponent d from the public pair
// (n, e) by Wiener's continued-fraction attack, which succeeds when
// d < n^0.25 / 3.
//
// Each convergent k/d of e/n is tested as a guess for the relation
// e*d - 1 = k*φ(n): the implied φ must be an integer, and the quadratic
// x² - (n - φ + 1)x + n must split into two integer roots > 1 whose
// product is n. The first convergent to pass yields d. A well-generated
// key with large d passes no convergent, and the attack returns
// (nil, nil) — the expected outcome, not an error.
func Wiener(n, e *big.Int) (*big.Int, error) {
	if n.Cmp(one) <= 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "wiener: n must be > 1, got %v", n)
	}
	if e.Sign() <= 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "wiener: e must be positive, got %v", e)
	}

	fourN := new(big.Int).Lsh(n, 2)

	it := numtheory.Convergents(e, n)
	for conv, ok := it.Next(); ok; conv, ok = it.Next() {
		k, d := conv.P, conv.Q
		if k.Sign() == 0 {
			continue
		}

		// φ candidate: (e*d - 1) / k must divide evenly.
		ed1 := new(big.Int).Mul(e, d)
		ed1.Sub(ed1, one)
		phi, rem := new(big.Int).QuoRem(ed1, k, new(big.Int))
		if rem.Sign() != 0 {
			continue
		}

		// s = p + q if φ is right; p and q are then roots of
		// x² - s*x + n.
		s := new(big.Int).Sub(n, phi)
		s.Add(s, one)

		disc := new(big.Int).Mul(s, s)
		disc.Sub(disc, fourN)
		if disc.Sign() < 0 {
			continue
		}
		root := new(big.Int).Sqrt(disc)
		if new(big.Int).Mul(root, root).Cmp(disc) != 0 {
			continue
		}

		p := new(big.Int).Add(s, root)
		p.Rsh(p, 1)
		q := new(big.Int).Sub(s, root)
		q.Rsh(q, 1)

		if p.Cmp(one) > 0 && q.Cmp(one) > 0 && new(big.Int).Mul(p, q).Cmp(n) == 0 {
			return new(big.Int).Set(d), nil
		}
	}

	return nil, nil
}
