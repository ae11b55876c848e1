package rsacrack

import (
	"math/big"

	"github.com/pkg/errors"

	"github.com/orgito1015/breaking-RSA/pkg/numtheory"
)

// SmallExponent recovers a plaintext broadcast to at least e recipients
// under the same small public exponent e with pairwise coprime moduli
// (Håstad's broadcast attack). The residues c_i ≡ m^e (mod n_i) combine
// by the Chinese Remainder Theorem into x ≡ m^e (mod ∏ n_i); since
// m < min(n_i) implies m^e < ∏ n_i, x equals m^e over the integers and
// the exact integer e-th root of x is m.
//
// Only the first e pairs participate; extra pairs are ignored, unchecked.
// Fewer than e pairs, or a non-coprime modulus pair among the first e, is
// ErrInvalidInput. An inexact root means the pairs did not encrypt a
// common small plaintext, and (nil, nil) is returned.
func SmallExponent(pairs []Ciphertext, e int) (*big.Int, error) {
	if e < 1 {
		return nil, errors.Wrapf(ErrInvalidInput, "broadcast: exponent must be >= 1, got %d", e)
	}
	if len(pairs) < e {
		return nil, errors.Wrapf(ErrInvalidInput, "broadcast: need at least %d ciphertexts for e=%d, got %d", e, e, len(pairs))
	}

	for i := 0; i < e; i++ {
		for j := i + 1; j < e; j++ {
			if numtheory.GCD(pairs[i].N, pairs[j].N).Cmp(one) != 0 {
				return nil, errors.Wrapf(ErrInvalidInput, "broadcast: moduli %d and %d are not coprime", i, j)
			}
		}
	}

	remainders := make([]*big.Int, e)
	moduli := make([]*big.Int, e)
	for i := 0; i < e; i++ {
		remainders[i] = pairs[i].C
		moduli[i] = pairs[i].N
	}

	x, err := numtheory.CRT(remainders, moduli)
	if err != nil {
		return nil, err
	}

	m, exact, err := numtheory.NthRoot(x, e)
	if err != nil {
		return nil, err
	}
	if !exact {
		return nil, nil
	}
	return m, nil
}
