package main

import (
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/sp301415/ringo-algebra/config"
	"github.com/sp301415/ringo-algebra/csprng"
)

// newRootCmd creates the ringo command tree.
// Each call returns fresh commands, so that flags never leak between runs.
func newRootCmd() *cobra.Command {
	cfg := config.DefaultConfig()

	root := &cobra.Command{
		Use:          "ringo",
		Short:        "Polynomial arithmetic over pluggable coefficient types.",
		Long:         "Polynomial arithmetic over pluggable coefficient types, with modular and number-theoretic tools.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return loadConfig(cmd, cfg)
		},
	}

	root.PersistentFlags().String("config", "", "YAML configuration file")
	root.PersistentFlags().StringP("backend", "b", cfg.Backend, "coefficient backend: "+strings.Join(config.Backends, "|"))
	root.PersistentFlags().Uint64("seed", cfg.Seed, "seed for random sampling (0 for a random seed)")
	root.PersistentFlags().Int("attempts", cfg.MaxSearchAttempts, "maximum number of candidates for searches")
	root.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")

	root.AddCommand(polyCommands(cfg)...)
	root.AddCommand(numCommands()...)

	return root
}

// loadConfig fills cfg from the config file, then from explicitly set flags.
func loadConfig(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()

	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return err
		}
		*cfg = *loaded
	}

	if flags.Changed("backend") {
		cfg.Backend, _ = flags.GetString("backend")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetUint64("seed")
	}
	if flags.Changed("attempts") {
		cfg.MaxSearchAttempts, _ = flags.GetInt("attempts")
	}
	if verbose, _ := flags.GetBool("verbose"); verbose {
		cfg.LogLevel = "debug"
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log.SetLevel(cfg.Level())
	log.Debugf("using backend %s", cfg.Backend)
	return nil
}

// newSampler returns the sampler configured by cfg.
func newSampler(cfg *config.Config) *csprng.UniformSampler {
	if cfg.Seed == 0 {
		return csprng.NewUniformSampler()
	}
	return csprng.NewUniformSamplerWithUint64(cfg.Seed)
}
