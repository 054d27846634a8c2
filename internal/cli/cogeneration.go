// internal/cli/cogeneration.go
package cli

import (
	"github.com/spf13/cobra"

	"thermosys-core/backend/idealgas"
	"thermosys-core/backend/steam"
	"thermosys-core/units"
	"thermosys/internal/report"
	"thermosys/internal/scenario"
)

func newCogenerationCmd(a *app) *cobra.Command {
	var feedPressureBar float64
	cmd := &cobra.Command{
		Use:     "cogeneration",
		Aliases: []string{"cogen"},
		Short:   "Solve the combined gas and recovery vapor cycles",
		Args:    cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			vp := scenario.DefaultVaporParams()
			vp.InletPressure = units.BarToPascal(feedPressureBar)
			r, err := scenario.Cogeneration(
				idealgas.New(), steam.New(),
				scenario.DefaultGasParams(), vp,
			)
			if err != nil {
				return err
			}
			if a.format() == "json" {
				return report.EncodeJSON(a.out, r)
			}
			if err := report.WriteText(a.out, r.Gas); err != nil {
				return err
			}
			return report.WriteText(a.out, r.Vapor)
		},
	}
	cmd.Flags().Float64Var(&feedPressureBar, "inlet-pressure-bar", 10, "vapor feed pressure, bar")
	return cmd
}
