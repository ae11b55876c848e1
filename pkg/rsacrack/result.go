package rsacrack

import (
	"io"
	"math/big"

	"github.com/pkg/errors"

	"github.com/orgito1015/breaking-RSA/pkg/rsakey"
)

// DefaultMaxSteps is the iteration budget used by the search-based
// attacks when the caller does not supply one.
const DefaultMaxSteps = 1_000_000

var one = big.NewInt(1)

// ErrInvalidInput is the root of all precondition failures: non-positive
// moduli, too few ciphertexts, non-coprime moduli where coprimality is
// required. Attacks surface it synchronously and never retry.
var ErrInvalidInput = errors.New("rsacrack: invalid input")

// FactorPair is an ordered pair of non-trivial factors, P <= Q.
type FactorPair struct {
	P *big.Int
	Q *big.Int
}

// orderedPair returns the pair with the smaller factor first.
func orderedPair(a, b *big.Int) *FactorPair {
	if a.Cmp(b) <= 0 {
		return &FactorPair{P: a, Q: b}
	}
	return &FactorPair{P: b, Q: a}
}

// Ciphertext is one recipient's view of a broadcast: their modulus and
// the encryption of the shared plaintext under it.
type Ciphertext struct {
	N *big.Int
	C *big.Int
}

// Target is the public material handed to key-recovery attacks.
type Target struct {
	// Key is the public key under attack. Private fields, if present,
	// are ignored.
	Key *rsakey.Key

	// MaxSteps bounds the search-based attacks. Zero means
	// DefaultMaxSteps.
	MaxSteps int

	// Random feeds the primality pre-checks. Nil means crypto/rand.
	Random io.Reader
}

func (t *Target) maxSteps() int {
	if t.MaxSteps <= 0 {
		return DefaultMaxSteps
	}
	return t.MaxSteps
}

// Result is a successful key recovery. Key carries the private exponent
// reconstructed from whatever the attack found, so a factoring result and
// an exponent-recovery result look the same to callers.
type Result struct {
	// Attack names the strategy that produced the result.
	Attack string

	// Key is the recovered private key. D is always set; P and Q are
	// set when the attack factored the modulus.
	Key *rsakey.Key

	// Factors holds the recovered prime factors when the attack
	// factored the modulus; nil for exponent-recovery attacks.
	Factors *FactorPair
}
