// Package rsacrack implements five classical attacks on textbook RSA:
// Fermat factorization, Pollard's rho, Wiener's continued-fraction attack,
// the common-modulus attack and Håstad's small-exponent broadcast attack.
//
// Each attack is a pure function over public key material. Attacks never
// require or mutate private fields; on success they return the recovered
// secret as a fresh value. A nil result with a nil error is the documented
// "no solution" outcome: the attack ran to completion, or exhausted its
// iteration budget, without the target being vulnerable. Precondition
// violations are reported as errors instead and are never retried.
//
// # Quick Start
//
//	import "github.com/orgito1015/breaking-RSA/pkg/rsacrack"
//
//	client := rsacrack.NewClient()
//	result, err := client.Crack(ctx, &rsacrack.Target{Key: key.Public()})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("recovered d = %v via %s\n", result.Key.D, result.Attack)
//
// The client phases through the registered attacks in order; implement the
// Attack interface to add strategies of your own:
//
//	type MyAttack struct{}
//
//	func (MyAttack) Name() string { return "my-attack" }
//
//	func (MyAttack) Run(ctx context.Context, target *rsacrack.Target) (*rsacrack.Result, error) {
//	    // custom search logic
//	}
//
//	client := rsacrack.NewClient().WithAttacks(MyAttack{})
//
// The common-modulus and broadcast attacks need inputs beyond a single
// public key (two ciphertexts sharing a modulus, or a list of (n, c)
// pairs) and are exposed as standalone functions.
package rsacrack
