// internal/cli/run.go
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"thermosys/internal/cycledef"
	"thermosys/internal/report"
)

func newRunCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "run <cycle.yaml>",
		Short: "Solve a cycle from a YAML definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			def, err := cycledef.Load(args[0])
			if err != nil {
				return err
			}
			a.log.Info("loaded cycle definition",
				zap.String("cycle", def.Cycle),
				zap.String("fluid", def.Fluid),
				zap.Int("devices", len(def.Devices)),
			)

			c, err := def.Build()
			if err != nil {
				return err
			}
			if err := c.Solve(); err != nil {
				return err
			}
			r, err := report.Build(def.Cycle, c)
			if err != nil {
				return err
			}
			return report.Write(a.out, a.format(), r)
		},
	}
}
