package rsacrack

import (
	"context"
	"math/big"

	"github.com/orgito1015/breaking-RSA/pkg/rsakey"
)

// Attack is one key-recovery strategy against a public target. Implement
// it to plug a custom strategy into the Client.
//
// Run returns (nil, nil) when the target is simply not vulnerable to
// this attack; errors are reserved for precondition violations.
type Attack interface {
	Name() string
	Run(ctx context.Context, target *Target) (*Result, error)
}

// FermatAttack adapts FermatFactor to the Attack interface, completing a
// found factor pair to a full private key.
type FermatAttack struct{}

// Name implements Attack.
func (FermatAttack) Name() string { return "fermat" }

// Run implements Attack.
func (a FermatAttack) Run(_ context.Context, target *Target) (*Result, error) {
	pair, err := FermatFactor(target.Key.N, target.maxSteps())
	if err != nil || pair == nil {
		return nil, err
	}
	return factoredResult(a.Name(), target.Key, pair)
}

// RhoAttack adapts PollardRho to the Attack interface. The single factor
// it finds is completed to a pair with the cofactor n/f.
type RhoAttack struct{}

// Name implements Attack.
func (RhoAttack) Name() string { return "pollard-rho" }

// Run implements Attack.
func (a RhoAttack) Run(_ context.Context, target *Target) (*Result, error) {
	f, err := PollardRho(target.Random, target.Key.N, target.maxSteps())
	if err != nil || f == nil {
		return nil, err
	}
	cofactor := new(big.Int).Quo(target.Key.N, f)
	return factoredResult(a.Name(), target.Key, orderedPair(f, cofactor))
}

// WienerAttack adapts Wiener to the Attack interface.
type WienerAttack struct{}

// Name implements Attack.
func (WienerAttack) Name() string { return "wiener" }

// Run implements Attack.
func (a WienerAttack) Run(_ context.Context, target *Target) (*Result, error) {
	d, err := Wiener(target.Key.N, target.Key.E)
	if err != nil || d == nil {
		return nil, err
	}
	return &Result{
		Attack: a.Name(),
		Key: &rsakey.Key{
			N: new(big.Int).Set(target.Key.N),
			E: new(big.Int).Set(target.Key.E),
			D: d,
		},
	}, nil
}

// factoredResult derives the private exponent from recovered factors,
// the step that turns a factorization into a usable key.
func factoredResult(name string, public *rsakey.Key, pair *FactorPair) (*Result, error) {
	key, err := rsakey.FromFactors(public.N, public.E, pair.P, pair.Q)
	if err != nil {
		return nil, err
	}
	return &Result{Attack: name, Key: key, Factors: pair}, nil
}

// DefaultAttacks returns the key-recovery attacks the Client phases
// through when none are configured, cheapest applicability check first.
func DefaultAttacks() []Attack {
	return []Attack{FermatAttack{}, RhoAttack{}, WienerAttack{}}
}
