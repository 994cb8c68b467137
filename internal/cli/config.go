package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msonrm/distillation-tower/internal/sims/distill"
)

// configFlags are shared by every command that builds a column.
type configFlags struct {
	preset string
	sets   []string
	seed   int64
}

func (f *configFlags) bind(cmd *cobra.Command) {
	f.bindSource(cmd)
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "master seed (0 keeps the preset seed; 0 there means unseeded)")
}

// bindSource registers everything but --seed, for commands that own it elsewhere.
func (f *configFlags) bindSource(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.preset, "preset", "", "YAML preset to start from (defaults when empty)")
	cmd.Flags().StringArrayVar(&f.sets, "set", nil, "parameter override in key=value form (repeatable)")
}

// load resolves preset, overrides and seed into a validated Config.
func (f *configFlags) load() (distill.Config, error) {
	cfg := distill.DefaultConfig()
	if f.preset != "" {
		loaded, err := distill.LoadPreset(f.preset)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	overrides, err := parseOverrides(f.sets)
	if err != nil {
		return cfg, err
	}
	cfg, err = cfg.WithOverrides(overrides)
	if err != nil {
		return cfg, err
	}
	if f.seed != 0 {
		cfg.Seed = f.seed
	}
	return cfg, nil
}

func parseOverrides(sets []string) (map[string]string, error) {
	out := make(map[string]string, len(sets))
	for _, kv := range sets {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("override %q is not key=value", kv)
		}
		out[strings.TrimSpace(key)] = value
	}
	return out, nil
}
