package rsakey

import (
	"fmt"
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/orgito1015/breaking-RSA/pkg/numtheory"
)

// DefaultPublicExponent is F4, the conventional choice for e.
const DefaultPublicExponent = 65537

// MinModulusBits is the smallest modulus size GenerateKey accepts. Keys
// this small exist only to be broken, which is the business of this
// repository, but below 16 bits the two primes stop being distinct often
// enough to terminate.
const MinModulusBits = 16

var one = big.NewInt(1)

// ErrMissingPrivateKey is returned when an operation needs the private
// exponent and the key carries only public material.
var ErrMissingPrivateKey = errors.New("rsakey: key does not contain a private exponent")

// Key holds an RSA public key and, optionally, its private material.
// D, P and Q are nil on a public-only key. Keys are value objects: no
// operation in this module ever mutates one after construction.
type Key struct {
	N *big.Int // modulus
	E *big.Int // public exponent
	D *big.Int // private exponent, nil for public-only keys
	P *big.Int // prime factor, nil when unknown
	Q *big.Int // prime factor, nil when unknown
}

// HasPrivate reports whether the key carries a private exponent.
func (k *Key) HasPrivate() bool {
	return k.D != nil
}

// BitLen returns the bit length of the modulus.
func (k *Key) BitLen() int {
	return k.N.BitLen()
}

// Public returns a public-only copy of the key.
func (k *Key) Public() *Key {
	return &Key{
		N: new(big.Int).Set(k.N),
		E: new(big.Int).Set(k.E),
	}
}

// String describes the key without exposing private material.
func (k *Key) String() string {
	return fmt.Sprintf("Key(bits=%d, e=%v, private=%t)", k.BitLen(), k.E, k.HasPrivate())
}

// Validate checks the internal consistency of whatever material the key
// carries: p*q == n when the factors are present, and e*d ≡ 1 (mod φ(n))
// when the private exponent is present alongside them.
func (k *Key) Validate() error {
	if k.N == nil || k.N.Sign() <= 0 {
		return errors.New("rsakey: modulus must be positive")
	}
	if k.E == nil || k.E.Cmp(big.NewInt(3)) < 0 || k.E.Bit(0) == 0 {
		return errors.New("rsakey: public exponent must be an odd integer >= 3")
	}

	if k.P == nil || k.Q == nil {
		return nil
	}
	if new(big.Int).Mul(k.P, k.Q).Cmp(k.N) != 0 {
		return errors.New("rsakey: p*q != n")
	}
	if k.D == nil {
		return nil
	}

	phi := phi(k.P, k.Q)
	ed := new(big.Int).Mul(k.E, k.D)
	if ed.Mod(ed, phi).Cmp(one) != 0 {
		return errors.New("rsakey: e*d != 1 mod phi(n)")
	}
	return nil
}

// GenerateKey generates an RSA key pair with a modulus of the requested
// bit length, drawing both primes from the entropy source. Prime pairs
// are re-sampled until they are distinct and gcd(e, φ) == 1.
func GenerateKey(random io.Reader, bits int, e int64) (*Key, error) {
	if bits < MinModulusBits {
		return nil, errors.Errorf("rsakey: modulus must be at least %d bits, got %d", MinModulusBits, bits)
	}
	if e < 3 || e%2 == 0 {
		return nil, errors.Errorf("rsakey: public exponent must be an odd integer >= 3, got %d", e)
	}

	eBig := big.NewInt(e)
	half := bits / 2

	for {
		p, err := numtheory.GeneratePrime(random, half)
		if err != nil {
			return nil, err
		}
		q, err := numtheory.GeneratePrime(random, half)
		if err != nil {
			return nil, err
		}
		if p.Cmp(q) == 0 {
			continue
		}

		totient := phi(p, q)
		if numtheory.GCD(eBig, totient).Cmp(one) != 0 {
			continue
		}

		d, err := numtheory.ModInverse(eBig, totient)
		if err != nil {
			return nil, err
		}

		return &Key{
			N: new(big.Int).Mul(p, q),
			E: eBig,
			D: d,
			P: p,
			Q: q,
		}, nil
	}
}

// FromFactors builds a full private key from a modulus, public exponent
// and recovered prime factors, deriving d = e^-1 mod (p-1)(q-1). This is
// the step that turns a successful factoring attack into a usable key.
func FromFactors(n, e, p, q *big.Int) (*Key, error) {
	if new(big.Int).Mul(p, q).Cmp(n) != 0 {
		return nil, errors.Errorf("rsakey: %v * %v != %v", p, q, n)
	}
	d, err := numtheory.ModInverse(e, phi(p, q))
	if err != nil {
		return nil, errors.WithMessage(err, "rsakey: deriving private exponent")
	}
	return &Key{
		N: new(big.Int).Set(n),
		E: new(big.Int).Set(e),
		D: d,
		P: new(big.Int).Set(p),
		Q: new(big.Int).Set(q),
	}, nil
}

func phi(p, q *big.Int) *big.Int {
	pm1 := new(big.Int).Sub(p, one)
	qm1 := new(big.Int).Sub(q, one)
	return pm1.Mul(pm1, qm1)
}
