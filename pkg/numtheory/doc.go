// Package numtheory provides the number-theoretic primitives used by the
// RSA attack engine: gcd and extended gcd, modular inverses, integer
// square and k-th roots, continued-fraction expansion with convergents,
// Chinese Remainder composition, and a Miller-Rabin primality oracle with
// random prime generation.
//
// All functions operate on *big.Int values and never mutate their
// arguments. Randomized routines take an explicit entropy source (any
// io.Reader, typically crypto/rand.Reader) so tests can substitute a
// deterministic seeded source.
package numtheory
