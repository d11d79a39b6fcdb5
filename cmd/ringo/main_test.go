package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(args ...string) (string, error) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	err := cmd.Execute()
	return out.String(), err
}

func TestPolyCommands(t *testing.T) {
	for _, tc := range []struct {
		args []string
		want string
	}{
		{[]string{"add", "12*X + 2", "12*X - 3"}, "24*X - 1\n"},
		{[]string{"mul", "12*X + 2", "12*X - 3"}, "144*X^2 - 12*X - 6\n"},
		{[]string{"gcd", "X^4 + 8*X^3 + 21*X^2 + 22*X + 8", "X^3 + 6*X^2 + 11*X + 6"}, "X^2 + 3*X + 2\n"},
		{[]string{"div", "288*X^2 + 36*X - 2", "12*X + 2"}, "quotient: 24*X - 1\nremainder: 0\n"},
		{[]string{"eval", "2*X^2 + 1", "3"}, "19\n"},
		{[]string{"pow", "X + 1", "3"}, "X^3 + 3*X^2 + 3*X + 1\n"},
		{[]string{"derive", "X^3 + 5*X"}, "3*X^2 + 5\n"},
		{[]string{"modpow", "X + 1", "5", "X^2 + 1"}, "-4*X - 4\n"},
		{[]string{"expmod", "X", "4", "X^2 + X + 1", "2"}, "X\n"},
		{[]string{"irreducible", "X^4 + X^2 + 1", "2"}, "true\n"},
		{[]string{"irreducible", "--rabin", "X^4 + X^2 + 1", "2"}, "false\n"},
		{[]string{"--backend", "rat", "div", "X^2 + 1", "2*X"}, "quotient: 1/2*X\nremainder: 1\n"},
		{[]string{"-b", "complex", "eval", "X^2 + 1", "(0, 1)"}, "(0, 0)\n"},
	} {
		t.Run(tc.args[0], func(t *testing.T) {
			out, err := run(tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestNumCommands(t *testing.T) {
	for _, tc := range []struct {
		args []string
		want string
	}{
		{[]string{"legendre", "3", "7"}, "-1\n"},
		{[]string{"sqrtmod", "29", "53"}, "20\n"},
		{[]string{"inverse", "3", "7"}, "5\n"},
		{[]string{"totient", "36"}, "12\n"},
		{[]string{"crt", "--moduli", "3,5,7", "--residues", "2,3,2"}, "23\n"},
	} {
		t.Run(tc.args[0], func(t *testing.T) {
			out, err := run(tc.args...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, out)
		})
	}
}

func TestFindIrreducibleCommand(t *testing.T) {
	first, err := run("--seed", "42", "find-irreducible", "3", "5")
	require.NoError(t, err)
	second, err := run("--seed", "42", "find-irreducible", "3", "5")
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "X^3")

	_, err = run("--attempts", "0", "find-irreducible", "3", "5")
	assert.Error(t, err)
}

func TestConfig(t *testing.T) {
	t.Run("File", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ringo.yaml")
		require.NoError(t, os.WriteFile(path, []byte("backend: rat\nlog_level: warn\n"), 0o644))

		out, err := run("--config", path, "div", "X^2 + 1", "2*X")
		require.NoError(t, err)
		assert.Equal(t, "quotient: 1/2*X\nremainder: 1\n", out)

		out, err = run("--config", path, "--backend", "bigint", "div", "X^2 + 1", "2*X")
		require.NoError(t, err)
		assert.Equal(t, "quotient: 0\nremainder: X^2 + 1\n", out)
	})

	t.Run("Invalid", func(t *testing.T) {
		_, err := run("--backend", "octonion", "add", "X", "X")
		assert.Error(t, err)

		_, err = run("--config", filepath.Join(t.TempDir(), "missing.yaml"), "add", "X", "X")
		assert.Error(t, err)

		_, err = run("add", "X +", "X")
		assert.Error(t, err)
	})
}
