package rsacrack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseKeyDecimalStrings(t *testing.T) {
	path := writeTempFile(t, "key.json", `{"n": "3233", "e": "17"}`)

	key, err := JSONTargetParser{}.ParseKey(path)
	require.NoError(t, err)
	assert.Equal(t, int64(3233), key.N.Int64())
	assert.Equal(t, int64(17), key.E.Int64())
	assert.False(t, key.HasPrivate())
}

func TestParseKeyHexAndNumber(t *testing.T) {
	path := writeTempFile(t, "key.json", `{"n": "0xCA1", "e": 17}`)

	key, err := JSONTargetParser{}.ParseKey(path)
	require.NoError(t, err)
	assert.Equal(t, int64(0xCA1), key.N.Int64())
	assert.Equal(t, int64(17), key.E.Int64())
}

func TestParseKeyLargeNumberKeepsPrecision(t *testing.T) {
	// 2^128 + 1 would be mangled by float64 decoding.
	path := writeTempFile(t, "key.json",
		`{"n": 340282366920938463463374607431768211457, "e": 3}`)

	key, err := JSONTargetParser{}.ParseKey(path)
	require.NoError(t, err)
	assert.Equal(t, "340282366920938463463374607431768211457", key.N.String())
}

func TestParseKeyRejectsInvalidKey(t *testing.T) {
	path := writeTempFile(t, "key.json", `{"n": "100", "e": "4"}`)
	_, err := JSONTargetParser{}.ParseKey(path)
	assert.Error(t, err, "even exponent must fail key validation")
}

func TestParseKeyMissingField(t *testing.T) {
	path := writeTempFile(t, "key.json", `{"n": "3233"}`)
	_, err := JSONTargetParser{}.ParseKey(path)
	assert.Error(t, err)
}

func TestParseCiphertexts(t *testing.T) {
	path := writeTempFile(t, "pairs.json", `[
		{"n": "77", "c": "42"},
		{"n": "0x55", "c": 13}
	]`)

	pairs, err := JSONTargetParser{}.ParseCiphertexts(path)
	require.NoError(t, err)
	require.Len(t, pairs, 2)
	assert.Equal(t, int64(77), pairs[0].N.Int64())
	assert.Equal(t, int64(42), pairs[0].C.Int64())
	assert.Equal(t, int64(0x55), pairs[1].N.Int64())
	assert.Equal(t, int64(13), pairs[1].C.Int64())
}

func TestParseCiphertextsBadInteger(t *testing.T) {
	path := writeTempFile(t, "pairs.json", `[{"n": "not-a-number", "c": "1"}]`)
	_, err := JSONTargetParser{}.ParseCiphertexts(path)
	assert.Error(t, err)
}

func TestParseMissingFile(t *testing.T) {
	_, err := JSONTargetParser{}.ParseKey(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}
