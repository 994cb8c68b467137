package cli

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/msonrm/distillation-tower/internal/app"
	"github.com/msonrm/distillation-tower/internal/core"
	"github.com/msonrm/distillation-tower/internal/sims/distill"
)

func newGUICmd() *cobra.Command {
	var (
		cf      configFlags
		simName string
	)
	win := app.NewConfig()
	cmd := &cobra.Command{
		Use:   "gui",
		Short: "Open the interactive window (needs the ebiten build tag)",
		RunE: func(cmd *cobra.Command, args []string) error {
			cf.seed = win.Seed
			sim, err := buildSim(simName, &cf)
			if err != nil {
				return err
			}
			err = app.Run(sim, *win)
			if errors.Is(err, app.ErrNoGUI) {
				return fmt.Errorf("%w; rebuild with `go build -tags ebiten ./cmd/distill`", err)
			}
			return err
		},
	}
	cf.bindSource(cmd)
	win.Bind(cmd.Flags())
	cmd.Flags().StringVar(&simName, "sim", "distill", "registered simulation to open")
	return cmd
}

// buildSim resolves name through the registry. A preset file is specific to
// the distill column and bypasses the flag-map factory.
func buildSim(name string, cf *configFlags) (core.Sim, error) {
	if cf.preset != "" {
		if name != "distill" {
			return nil, fmt.Errorf("--preset only applies to the distill sim, not %q", name)
		}
		cfg, err := cf.load()
		if err != nil {
			return nil, err
		}
		s, err := distill.NewWithConfig(cfg)
		if err != nil {
			return nil, err
		}
		return s, nil
	}

	factory, err := core.Lookup(name)
	if err != nil {
		return nil, err
	}
	overrides, err := parseOverrides(cf.sets)
	if err != nil {
		return nil, err
	}
	if cf.seed != 0 {
		overrides["seed"] = strconv.FormatInt(cf.seed, 10)
	}
	return factory(overrides)
}
