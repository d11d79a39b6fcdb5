package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sp301415/ringo-algebra/config"
)

// polyCommands returns the polynomial subcommands.
// They read the backend from cfg, which is filled before they run.
func polyCommands(cfg *config.Config) []*cobra.Command {
	withEngine := func(run func(cmd *cobra.Command, e engine, args []string) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, args []string) error {
			e, err := newEngine(cfg.Backend)
			if err != nil {
				return err
			}
			return run(cmd, e, args)
		}
	}

	var cmds []*cobra.Command

	for _, op := range []struct{ name, short string }{
		{"add", "Add two polynomials"},
		{"sub", "Subtract the second polynomial from the first"},
		{"mul", "Multiply two polynomials"},
		{"gcd", "Greatest common divisor of two polynomials"},
	} {
		cmds = append(cmds, &cobra.Command{
			Use:   op.name + " P Q",
			Short: op.short,
			Args:  cobra.ExactArgs(2),
			RunE: withEngine(func(cmd *cobra.Command, e engine, args []string) error {
				r, err := e.binary(op.name, args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), r)
				return nil
			}),
		})
	}

	cmds = append(cmds,
		&cobra.Command{
			Use:   "eval P x",
			Short: "Evaluate a polynomial at x",
			Args:  cobra.ExactArgs(2),
			RunE: withEngine(func(cmd *cobra.Command, e engine, args []string) error {
				r, err := e.eval(args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), r)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "div P Q",
			Short: "Divide P by Q, printing the quotient and the remainder",
			Args:  cobra.ExactArgs(2),
			RunE: withEngine(func(cmd *cobra.Command, e engine, args []string) error {
				quo, rem, err := e.divide(args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "quotient: %s\nremainder: %s\n", quo, rem)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "pow P n",
			Short: "Raise a polynomial to the n-th power",
			Args:  cobra.ExactArgs(2),
			RunE: withEngine(func(cmd *cobra.Command, e engine, args []string) error {
				n, err := strconv.Atoi(args[1])
				if err != nil {
					return err
				}
				r, err := e.pow(args[0], n)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), r)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "derive P",
			Short: "Formal derivative of a polynomial",
			Args:  cobra.ExactArgs(1),
			RunE: withEngine(func(cmd *cobra.Command, e engine, args []string) error {
				r, err := e.derivative(args[0])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), r)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "frombase value base degree",
			Short: "Expand a value in base m as a polynomial of the given degree",
			Args:  cobra.ExactArgs(3),
			RunE: withEngine(func(cmd *cobra.Command, e engine, args []string) error {
				degree, err := strconv.Atoi(args[2])
				if err != nil {
					return err
				}
				r, err := e.fromBase(args[0], args[1], degree)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), r)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "modpow P n Q",
			Short: "Compute P^n mod Q by repeated multiplication",
			Args:  cobra.ExactArgs(3),
			RunE: withEngine(func(cmd *cobra.Command, e engine, args []string) error {
				n, err := strconv.Atoi(args[1])
				if err != nil {
					return err
				}
				r, err := e.modPow(args[0], n, args[2])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), r)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "expmod P e Q m",
			Short: "Compute P^e mod (Q, m) by square-and-multiply",
			Args:  cobra.ExactArgs(4),
			RunE: withEngine(func(cmd *cobra.Command, e engine, args []string) error {
				r, err := e.expMod(args[0], args[1], args[2], args[3])
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), r)
				return nil
			}),
		},
	)

	irreducible := &cobra.Command{
		Use:   "irreducible f p",
		Short: "Test whether f is irreducible over Z_p",
		Args:  cobra.ExactArgs(2),
		RunE: withEngine(func(cmd *cobra.Command, e engine, args []string) error {
			rabin, _ := cmd.Flags().GetBool("rabin")
			ok, err := e.irreducible(args[0], args[1], rabin)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), ok)
			return nil
		}),
	}
	irreducible.Flags().Bool("rabin", false, "use the complete Rabin test")

	findIrreducible := &cobra.Command{
		Use:   "find-irreducible degree p",
		Short: "Search for a random monic irreducible polynomial over Z_p",
		Args:  cobra.ExactArgs(2),
		RunE: withEngine(func(cmd *cobra.Command, e engine, args []string) error {
			degree, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			r, err := e.findIrreducible(degree, args[1], newSampler(cfg), cfg.MaxSearchAttempts)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), r)
			return nil
		}),
	}

	return append(cmds, irreducible, findIrreducible)
}
