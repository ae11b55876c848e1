package rsacrack

import (
	"context"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orgito1015/breaking-RSA/pkg/rsakey"
)

func TestClientCracksFermatWeakKey(t *testing.T) {
	key, err := weakFermatKey(21, 64)
	require.NoError(t, err)

	result, err := NewClient().Crack(context.Background(), &Target{
		Key:    key.Public(),
		Random: testRand(1),
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "fermat", result.Attack)
	require.NotNil(t, result.Factors)
	assert.Zero(t, result.Key.D.Cmp(key.D))
	require.NoError(t, result.Key.Validate())
}

func TestClientFallsThroughToRho(t *testing.T) {
	// 16-bit * 40-bit primes: far too lopsided for Fermat's budget, easy
	// prey for rho.
	key, err := lopsidedKey(8, 16, 40)
	require.NoError(t, err)

	result, err := NewClient().Crack(context.Background(), &Target{
		Key:      key.Public(),
		MaxSteps: 20_000,
		Random:   testRand(1),
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "pollard-rho", result.Attack)
	require.NotNil(t, result.Factors)
	assert.Zero(t, new(big.Int).Mul(result.Factors.P, result.Factors.Q).Cmp(key.N))
	require.NoError(t, result.Key.Validate())
}

func TestClientFallsThroughToWiener(t *testing.T) {
	key, err := wienerKey(31, 128)
	require.NoError(t, err)

	result, err := NewClient().Crack(context.Background(), &Target{
		Key:      key.Public(),
		MaxSteps: 2_000,
		Random:   testRand(1),
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, "wiener", result.Attack)
	assert.Zero(t, result.Key.D.Cmp(key.D))
	assert.Nil(t, result.Factors, "wiener recovers the exponent, not the factors")
}

func TestClientReportsFailure(t *testing.T) {
	key, err := rsakey.GenerateKey(testRand(6), 128, rsakey.DefaultPublicExponent)
	require.NoError(t, err)

	_, err = NewClient().Crack(context.Background(), &Target{
		Key:      key.Public(),
		MaxSteps: 100,
		Random:   testRand(1),
	})
	assert.Error(t, err, "a sound key inside a tiny budget must not be cracked")
}

func TestClientHonorsContextCancellation(t *testing.T) {
	key, err := weakFermatKey(21, 64)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = NewClient().Crack(ctx, &Target{Key: key.Public(), Random: testRand(1)})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClientRejectsNilTarget(t *testing.T) {
	_, err := NewClient().Crack(context.Background(), nil)
	assert.Error(t, err)
}

func TestClientCustomAttack(t *testing.T) {
	key, err := weakFermatKey(21, 64)
	require.NoError(t, err)

	custom := stubAttack{name: "stub"}
	result, err := NewClient().WithAttacks(custom).Crack(context.Background(), &Target{
		Key:    key.Public(),
		Random: testRand(1),
	})
	require.NoError(t, err)
	assert.Equal(t, "stub", result.Attack)
}

type stubAttack struct {
	name string
}

func (s stubAttack) Name() string { return s.name }

func (s stubAttack) Run(_ context.Context, target *Target) (*Result, error) {
	return &Result{Attack: s.name, Key: target.Key}, nil
}
