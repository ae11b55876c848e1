// Package main is the entry point for the rsacrack CLI, which exposes
// the textbook-RSA attack engine as subcommands: key generation for
// building targets, and one command per attack.
package main

import (
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/orgito1015/breaking-RSA/pkg/rsacrack"
	"github.com/orgito1015/breaking-RSA/pkg/rsakey"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsacrack",
		Short: "Research toolkit for classical attacks on textbook RSA",
		Long: `rsacrack exercises the classical cryptanalytic weaknesses of textbook RSA:
Fermat factorization, Pollard's rho, Wiener's continued-fraction attack,
the common-modulus attack and Håstad's small-exponent broadcast attack.

Integers are accepted in decimal or 0x-prefixed hex. This is a research
instrument for deliberately weak keys, not a cryptographic library.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(
		newKeygenCmd(),
		newFermatCmd(),
		newRhoCmd(),
		newWienerCmd(),
		newCommonModulusCmd(),
		newBroadcastCmd(),
		newAutoCmd(),
	)

	return rootCmd.Execute()
}

func newKeygenCmd() *cobra.Command {
	var bits int
	var e int64

	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Generate a textbook RSA key pair",
		RunE: func(_ *cobra.Command, _ []string) error {
			key, err := rsakey.GenerateKey(rand.Reader, bits, e)
			if err != nil {
				return err
			}
			fmt.Printf("n = %v\ne = %v\nd = %v\np = %v\nq = %v\n", key.N, key.E, key.D, key.P, key.Q)
			return nil
		},
	}
	cmd.Flags().IntVar(&bits, "bits", 256, "modulus bit length")
	cmd.Flags().Int64Var(&e, "e", rsakey.DefaultPublicExponent, "public exponent")
	return cmd
}

func newFermatCmd() *cobra.Command {
	var nStr string
	var maxSteps int

	cmd := &cobra.Command{
		Use:   "fermat",
		Short: "Factor a modulus with close prime factors by Fermat's method",
		RunE: func(_ *cobra.Command, _ []string) error {
			n, err := parseIntFlag("n", nStr)
			if err != nil {
				return err
			}
			pair, err := rsacrack.FermatFactor(n, maxSteps)
			if err != nil {
				return err
			}
			if pair == nil {
				fmt.Println("no factorization found within the step budget")
				return nil
			}
			fmt.Printf("p = %v\nq = %v\n", pair.P, pair.Q)
			return nil
		},
	}
	cmd.Flags().StringVar(&nStr, "n", "", "modulus to factor (required)")
	cmd.Flags().IntVar(&maxSteps, "max-steps", rsacrack.DefaultMaxSteps, "iteration budget")
	_ = cmd.MarkFlagRequired("n")
	return cmd
}

func newRhoCmd() *cobra.Command {
	var nStr string
	var maxSteps int

	cmd := &cobra.Command{
		Use:   "rho",
		Short: "Find one non-trivial factor by Pollard's rho",
		RunE: func(_ *cobra.Command, _ []string) error {
			n, err := parseIntFlag("n", nStr)
			if err != nil {
				return err
			}
			f, err := rsacrack.PollardRho(rand.Reader, n, maxSteps)
			if err != nil {
				return err
			}
			if f == nil {
				fmt.Println("no factor found (n may be prime)")
				return nil
			}
			fmt.Printf("factor = %v\ncofactor = %v\n", f, new(big.Int).Quo(n, f))
			return nil
		},
	}
	cmd.Flags().StringVar(&nStr, "n", "", "modulus to factor (required)")
	cmd.Flags().IntVar(&maxSteps, "max-steps", rsacrack.DefaultMaxSteps, "iteration budget per pass")
	_ = cmd.MarkFlagRequired("n")
	return cmd
}

func newWienerCmd() *cobra.Command {
	var nStr, eStr string

	cmd := &cobra.Command{
		Use:   "wiener",
		Short: "Recover a small private exponent by Wiener's attack",
		RunE: func(_ *cobra.Command, _ []string) error {
			n, err := parseIntFlag("n", nStr)
			if err != nil {
				return err
			}
			e, err := parseIntFlag("e", eStr)
			if err != nil {
				return err
			}
			d, err := rsacrack.Wiener(n, e)
			if err != nil {
				return err
			}
			if d == nil {
				fmt.Println("no convergent matched; the private exponent is not small enough")
				return nil
			}
			fmt.Printf("d = %v\n", d)
			return nil
		},
	}
	cmd.Flags().StringVar(&nStr, "n", "", "public modulus (required)")
	cmd.Flags().StringVar(&eStr, "e", "", "public exponent (required)")
	_ = cmd.MarkFlagRequired("n")
	_ = cmd.MarkFlagRequired("e")
	return cmd
}

func newCommonModulusCmd() *cobra.Command {
	var nStr, e1Str, e2Str, c1Str, c2Str string

	cmd := &cobra.Command{
		Use:   "common-modulus",
		Short: "Recover a plaintext encrypted under one modulus with two coprime exponents",
		RunE: func(_ *cobra.Command, _ []string) error {
			values := make([]*big.Int, 5)
			for i, flag := range []struct {
				name string
				raw  string
			}{
				{"n", nStr}, {"e1", e1Str}, {"e2", e2Str}, {"c1", c1Str}, {"c2", c2Str},
			} {
				v, err := parseIntFlag(flag.name, flag.raw)
				if err != nil {
					return err
				}
				values[i] = v
			}
			m, err := rsacrack.CommonModulus(values[0], values[1], values[2], values[3], values[4])
			if err != nil {
				return err
			}
			if m == nil {
				fmt.Println("exponents are not coprime; the attack does not apply")
				return nil
			}
			fmt.Printf("m = %v\n", m)
			return nil
		},
	}
	cmd.Flags().StringVar(&nStr, "n", "", "shared modulus (required)")
	cmd.Flags().StringVar(&e1Str, "e1", "", "first public exponent (required)")
	cmd.Flags().StringVar(&e2Str, "e2", "", "second public exponent (required)")
	cmd.Flags().StringVar(&c1Str, "c1", "", "ciphertext under e1 (required)")
	cmd.Flags().StringVar(&c2Str, "c2", "", "ciphertext under e2 (required)")
	for _, name := range []string{"n", "e1", "e2", "c1", "c2"} {
		_ = cmd.MarkFlagRequired(name)
	}
	return cmd
}

func newBroadcastCmd() *cobra.Command {
	var pairsFile string
	var e int

	cmd := &cobra.Command{
		Use:   "broadcast",
		Short: "Recover a plaintext broadcast under a small exponent (Håstad)",
		RunE: func(_ *cobra.Command, _ []string) error {
			pairs, err := rsacrack.JSONTargetParser{}.ParseCiphertexts(pairsFile)
			if err != nil {
				return err
			}
			m, err := rsacrack.SmallExponent(pairs, e)
			if err != nil {
				return err
			}
			if m == nil {
				fmt.Println("combined residue has no exact root; pairs do not share a small plaintext")
				return nil
			}
			fmt.Printf("m = %v\n", m)
			return nil
		},
	}
	cmd.Flags().StringVar(&pairsFile, "pairs", "", "JSON file of {\"n\": ..., \"c\": ...} pairs (required)")
	cmd.Flags().IntVar(&e, "e", 3, "shared public exponent")
	_ = cmd.MarkFlagRequired("pairs")
	return cmd
}

func newAutoCmd() *cobra.Command {
	var keyFile string
	var nStr, eStr string
	var maxSteps int

	cmd := &cobra.Command{
		Use:   "auto",
		Short: "Run the key-recovery attacks in sequence until one succeeds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var key *rsakey.Key
			var err error
			switch {
			case keyFile != "":
				key, err = rsacrack.JSONTargetParser{}.ParseKey(keyFile)
			case nStr != "" && eStr != "":
				key, err = keyFromFlags(nStr, eStr)
			default:
				return errors.New("either --key or both --n and --e are required")
			}
			if err != nil {
				return err
			}

			logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
			client := rsacrack.NewClient().WithLogger(logger)

			result, err := client.Crack(cmd.Context(), &rsacrack.Target{Key: key, MaxSteps: maxSteps})
			if err != nil {
				return err
			}

			fmt.Printf("attack = %s\nd = %v\n", result.Attack, result.Key.D)
			if result.Factors != nil {
				fmt.Printf("p = %v\nq = %v\n", result.Factors.P, result.Factors.Q)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&keyFile, "key", "", "JSON file with the public key target")
	cmd.Flags().StringVar(&nStr, "n", "", "public modulus")
	cmd.Flags().StringVar(&eStr, "e", "", "public exponent")
	cmd.Flags().IntVar(&maxSteps, "max-steps", rsacrack.DefaultMaxSteps, "iteration budget for search attacks")
	return cmd
}

func keyFromFlags(nStr, eStr string) (*rsakey.Key, error) {
	n, err := parseIntFlag("n", nStr)
	if err != nil {
		return nil, err
	}
	e, err := parseIntFlag("e", eStr)
	if err != nil {
		return nil, err
	}
	key := &rsakey.Key{N: n, E: e}
	if err := key.Validate(); err != nil {
		return nil, err
	}
	return key, nil
}

func parseIntFlag(name, raw string) (*big.Int, error) {
	v, err := rsacrack.ParseBigInt(raw)
	if err != nil {
		return nil, errors.WithMessagef(err, "flag --%s", name)
	}
	return v, nil
}
