package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msonrm/distillation-tower/internal/sims/distill"
)

func newPresetCmd() *cobra.Command {
	var (
		cf  configFlags
		out string
	)
	cmd := &cobra.Command{
		Use:   "preset",
		Short: "Write the effective configuration as a YAML preset",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := cf.load()
			if err != nil {
				return err
			}
			if out == "" || out == "-" {
				return distill.WritePreset(cmd.OutOrStdout(), cfg)
			}
			f, err := os.Create(out)
			if err != nil {
				return fmt.Errorf("creating preset: %w", err)
			}
			if err := distill.WritePreset(f, cfg); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}
	cf.bind(cmd)
	cmd.Flags().StringVarP(&out, "output", "o", "", "file to write (stdout when empty)")
	return cmd
}
