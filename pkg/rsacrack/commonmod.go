package rsacrack

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/orgito1015/breaking-RSA/pkg/numtheory"
)

// CommonModulus recovers a plaintext that was encrypted twice under the
// same modulus n with coprime public exponents e1 and e2. Bézout
// coefficients a, b with a*e1 + b*e2 == 1 turn the two ciphertexts into
// m = c1^a * c2^b mod n; a negative coefficient is realized by powering
// the modular inverse of the ciphertext rather than a negative exponent.
//
// When gcd(e1, e2) != 1 the attack is fundamentally inapplicable, not
// merely unsuccessful, and (nil, nil) is returned without any work. A
// non-invertible ciphertext surfaces numtheory.ErrNoInverse, which
// indicates a malformed setup (the ciphertext shares a factor with n).
func CommonModulus(n, e1, e2, c1, c2 *big.Int) (*big.Int, error) {
	if n.Cmp(one) <= 0 {
		return nil, errors.Wrapf(ErrInvalidInput, "common modulus: n must be > 1, got %v", n)
	}

	g, a, b := numtheory.ExtendedGCD(e1, e2)
	if g.Cmp(one) != 0 {
		return nil, nil
	}

	t1, err := signedPower(c1, a, n)
	if err != nil {
		return nil, err
	}
	t2, err := signedPower(c2, b, n)
	if err != nil {
		return nil, err
	}

	m := t1.Mul(t1, t2)
	return m.Mod(m, n), nil
}

// signedPower computes c^exp mod n for a possibly negative exponent,
// inverting c first when exp < 0.
func signedPower(c, exp, n *big.Int) (*big.Int, error) {
	if exp.Sign() >= 0 {
		return new(big.Int).Exp(c, exp, n), nil
	}
	inv, err := numtheory.ModInverse(c, n)
	if err != nil {
		return nil, errors.WithMessage(err, "common modulus: ciphertext not invertible")
	}
	return inv.Exp(inv, new(big.Int).Neg(exp), n), nil
}
