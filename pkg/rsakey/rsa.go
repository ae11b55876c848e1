package rsakey

import (
	"math/big"

	"github.com/pkg/errors"
)

// ErrMessageRange is returned when a message, ciphertext or signature
// falls outside [0, n).
var ErrMessageRange = errors.New("rsakey: value out of range [0, n)")

// Encrypt computes the raw RSA ciphertext c = m^e mod n.
// The message must satisfy 0 <= m < n.
func Encrypt(m *big.Int, key *Key) (*big.Int, error) {
	if err := checkRange(m, key); err != nil {
		return nil, errors.WithMessage(err, "encrypt")
	}
	return new(big.Int).Exp(m, key.E, key.N), nil
}

// Decrypt computes the raw RSA plaintext m = c^d mod n. The key must
// carry private material.
func Decrypt(c *big.Int, key *Key) (*big.Int, error) {
	if !key.HasPrivate() {
		return nil, ErrMissingPrivateKey
	}
	if err := checkRange(c, key); err != nil {
		return nil, errors.WithMessage(err, "decrypt")
	}
	return new(big.Int).Exp(c, key.D, key.N), nil
}

// Sign computes the textbook signature s = m^d mod n. The key must carry
// private material.
func Sign(m *big.Int, key *Key) (*big.Int, error) {
	if !key.HasPrivate() {
		return nil, ErrMissingPrivateKey
	}
	if err := checkRange(m, key); err != nil {
		return nil, errors.WithMessage(err, "sign")
	}
	return new(big.Int).Exp(m, key.D, key.N), nil
}

// Verify recovers the signed message m = s^e mod n. Only public material
// is required.
func Verify(s *big.Int, key *Key) (*big.Int, error) {
	if err := checkRange(s, key); err != nil {
		return nil, errors.WithMessage(err, "verify")
	}
	return new(big.Int).Exp(s, key.E, key.N), nil
}

func checkRange(v *big.Int, key *Key) error {
	if v.Sign() < 0 || v.Cmp(key.N) >= 0 {
		return errors.Wrapf(ErrMessageRange, "got %v for modulus %v", v, key.N)
	}
	return nil
}
