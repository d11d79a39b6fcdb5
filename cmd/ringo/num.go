package main

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/sp301415/ringo-algebra/arith"
	"github.com/sp301415/ringo-algebra/num"
)

// parseInts parses decimal integers.
func parseInts(args ...string) ([]*big.Int, error) {
	xs := make([]*big.Int, len(args))
	for i, a := range args {
		x, ok := big.NewInt(0).SetString(a, 10)
		if !ok {
			return nil, arith.Errorf(arith.KindFormat, "parseInts", "invalid integer %q", a)
		}
		xs[i] = x
	}
	return xs, nil
}

// intCommand creates a subcommand taking n integer arguments.
func intCommand(use, short string, n int, run func(xs []*big.Int) (any, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(n),
		RunE: func(cmd *cobra.Command, args []string) error {
			xs, err := parseInts(args...)
			if err != nil {
				return err
			}
			r, err := run(xs)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r)
			return nil
		},
	}
}

// numCommands returns the number-theoretic subcommands.
func numCommands() []*cobra.Command {
	crt := &cobra.Command{
		Use:   "crt",
		Short: "Solve x = r_i mod m_i by the Chinese Remainder Theorem",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ms, _ := cmd.Flags().GetStringSlice("moduli")
			rs, _ := cmd.Flags().GetStringSlice("residues")

			moduli, err := parseInts(ms...)
			if err != nil {
				return err
			}
			residues, err := parseInts(rs...)
			if err != nil {
				return err
			}

			x, err := num.ChineseRemainderTheorem(moduli, residues)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), x)
			return nil
		},
	}
	crt.Flags().StringSlice("moduli", nil, "pairwise coprime moduli, comma separated")
	crt.Flags().StringSlice("residues", nil, "residues, comma separated")

	return []*cobra.Command{
		intCommand("legendre a p", "Legendre symbol (a/p)", 2, func(xs []*big.Int) (any, error) {
			return num.LegendreSymbol(xs[0], xs[1])
		}),
		intCommand("sqrtmod n p", "Square root of n modulo an odd prime p", 2, func(xs []*big.Int) (any, error) {
			return num.TonelliShanks(xs[0], xs[1])
		}),
		intCommand("inverse a m", "Inverse of a modulo m", 2, func(xs []*big.Int) (any, error) {
			return num.ModularMultiplicativeInverse(xs[0], xs[1])
		}),
		intCommand("totient n", "Euler's totient of n", 1, func(xs []*big.Int) (any, error) {
			return num.EulersTotientPhi(xs[0])
		}),
		crt,
	}
}
