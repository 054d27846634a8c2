// internal/cli/rankine.go
package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"thermosys-core/backend/idealgas"
	"thermosys-core/backend/steam"
	"thermosys-core/units"
	"thermosys/internal/report"
	"thermosys/internal/scenario"
)

func newRankineCmd(a *app) *cobra.Command {
	var (
		feedPressureBar float64
		gasOutletTemp   float64
	)
	cmd := &cobra.Command{
		Use:   "rankine",
		Short: "Solve the built-in recovery vapor cycle",
		Long: `Solves the recovery vapor cycle. The recovery boiler temperature
follows the gas exhaust; when --gas-outlet-temp-c is not given, the
built-in gas cycle is solved first to provide it.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			if gasOutletTemp == 0 {
				_, c, err := scenario.Brayton(idealgas.New(), scenario.DefaultGasParams())
				if err != nil {
					return err
				}
				states := c.States()
				gasOutletTemp = states[len(states)-1].Temperature
				a.log.Debug("gas exhaust from built-in cycle",
					zap.Float64("temperature_c", gasOutletTemp))
			}

			params := scenario.DefaultVaporParams()
			params.InletPressure = units.BarToPascal(feedPressureBar)
			r, err := scenario.Rankine(steam.New(), gasOutletTemp, params)
			if err != nil {
				return err
			}
			a.log.Info("vapor cycle solved",
				zap.Float64("net_work_kj_kg", r.NetWorkKJ),
				zap.Float64("efficiency", r.Efficiency),
			)
			return report.Write(a.out, a.format(), r)
		},
	}
	cmd.Flags().Float64Var(&feedPressureBar, "inlet-pressure-bar", 10, "deaerator feed pressure, bar")
	cmd.Flags().Float64Var(&gasOutletTemp, "gas-outlet-temp-c", 0, "gas exhaust temperature, C (default: solve the gas cycle)")
	return cmd
}
