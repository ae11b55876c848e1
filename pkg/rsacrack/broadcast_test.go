package rsacrack

import (
	"math/big"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgito1015/breaking-RSA/pkg/rsakey"
)

// broadcastFixture encrypts m under count independent keys sharing the
// exponent e.
func broadcastFixture(t *testing.T, m *big.Int, e int64, count int, bits int) []Ciphertext {
	t.Helper()

	pairs := make([]Ciphertext, 0, count)
	for i := 0; i < count; i++ {
		key, err := rsakey.GenerateKey(testRand(100+int64(i)), bits, e)
		require.NoError(t, err)

		c, err := rsakey.Encrypt(m, key)
		require.NoError(t, err)
		pairs = append(pairs, Ciphertext{N: key.N, C: c})
	}
	return pairs
}

func TestSmallExponentRecoversBroadcastPlaintext(t *testing.T) {
	m := big.NewInt(42)
	pairs := broadcastFixture(t, m, 3, 3, 256)

	recovered, err := SmallExponent(pairs, 3)
	require.NoError(t, err)
	require.NotNil(t, recovered)
	assert.Zero(t, recovered.Cmp(m))
}

func TestSmallExponentIgnoresExtraPairs(t *testing.T) {
	m := big.NewInt(1234567)
	pairs := broadcastFixture(t, m, 3, 5, 256)

	recovered, err := SmallExponent(pairs, 3)
	require.NoError(t, err)
	require.NotNil(t, recovered)
	assert.Zero(t, recovered.Cmp(m))
}

func TestSmallExponentTooFewCiphertexts(t *testing.T) {
	pairs := broadcastFixture(t, big.NewInt(42), 3, 1, 128)

	_, err := SmallExponent(pairs, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestSmallExponentNonCoprimeModuli(t *testing.T) {
	pairs := broadcastFixture(t, big.NewInt(42), 3, 3, 128)
	pairs[1].N = new(big.Int).Set(pairs[0].N)

	_, err := SmallExponent(pairs, 3)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
	assert.Contains(t, err.Error(), "0 and 1", "error should name the offending pair")
}

func TestSmallExponentInexactRootYieldsNoSolution(t *testing.T) {
	// Residues chosen so the CRT value is exactly 30, which is not a cube.
	pairs := []Ciphertext{
		{N: big.NewInt(3), C: big.NewInt(0)},
		{N: big.NewInt(5), C: big.NewInt(0)},
		{N: big.NewInt(7), C: big.NewInt(2)},
	}
	recovered, err := SmallExponent(pairs, 3)
	require.NoError(t, err)
	assert.Nil(t, recovered)
}

func TestSmallExponentInvalidExponent(t *testing.T) {
	_, err := SmallExponent(nil, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidInput))
}
