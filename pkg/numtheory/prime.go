package numtheory

import (
	"crypto/rand"
	"io"
	"math/big"

	"github.com/pkg/errors"
)

// DefaultRounds is the number of Miller-Rabin witness rounds used by
// callers that do not have a reason to pick their own; the false-positive
// probability is at most 4^-rounds.
const DefaultRounds = 20

var three = big.NewInt(3)

// IsProbablePrime reports whether n is prime using the Miller-Rabin test
// with the given number of independent witness rounds. Witness bases are
// drawn uniformly from [2, n-2] using the supplied entropy source. The
// test is deterministic for n < 4 and for even n.
func IsProbablePrime(random io.Reader, n *big.Int, rounds int) (bool, error) {
	if n.Cmp(two) < 0 {
		return false, nil
	}
	if n.Cmp(two) == 0 || n.Cmp(three) == 0 {
		return true, nil
	}
	if n.Bit(0) == 0 {
		return false, nil
	}

	// Write n-1 as 2^r * d with d odd.
	nMinus1 := new(big.Int).Sub(n, one)
	d := new(big.Int).Set(nMinus1)
	r := 0
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		r++
	}

	// Witnesses are sampled from [2, n-2]: rand.Int yields [0, n-4),
	// shifted up by 2.
	span := new(big.Int).Sub(n, three)

	x := new(big.Int)
	for round := 0; round < rounds; round++ {
		a, err := rand.Int(random, span)
		if err != nil {
			return false, errors.Wrap(err, "numtheory: drawing witness")
		}
		a.Add(a, two)

		x.Exp(a, d, n)
		if x.Cmp(one) == 0 || x.Cmp(nMinus1) == 0 {
			continue
		}

		composite := true
		for i := 0; i < r-1; i++ {
			x.Exp(x, two, n)
			if x.Cmp(nMinus1) == 0 {
				composite = false
				break
			}
		}
		if composite {
			return false, nil
		}
	}
	return true, nil
}

// GeneratePrime returns a random probable prime of exactly bits bits,
// sampling odd top-bit-set candidates from the entropy source until one
// passes the oracle. bits must be at least 2.
func GeneratePrime(random io.Reader, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, errors.Errorf("numtheory: prime bit length must be at least 2, got %d", bits)
	}

	buf := make([]byte, (bits+7)/8)
	candidate := new(big.Int)
	for {
		if _, err := io.ReadFull(random, buf); err != nil {
			return nil, errors.Wrap(err, "numtheory: sampling prime candidate")
		}
		candidate.SetBytes(buf)

		// Trim to the requested width, then pin the top bit so the
		// candidate is exactly bits bits, and the bottom bit so it is odd.
		for candidate.BitLen() > bits {
			candidate.Rsh(candidate, 1)
		}
		candidate.SetBit(candidate, bits-1, 1)
		candidate.SetBit(candidate, 0, 1)

		ok, err := IsProbablePrime(random, candidate, DefaultRounds)
		if err != nil {
			return nil, err
		}
		if ok {
			return new(big.Int).Set(candidate), nil
		}
	}
}
