// internal/cli/root.go
package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"thermosys/internal/logging"
)

// formatValue is a pflag.Value restricted to the supported output
// formats.
type formatValue string

var _ pflag.Value = (*formatValue)(nil)

func (f *formatValue) String() string { return string(*f) }

func (f *formatValue) Type() string { return "format" }

func (f *formatValue) Set(s string) error {
	switch s {
	case "text", "json":
		*f = formatValue(s)
		return nil
	}
	return fmt.Errorf("unsupported output %q (want text or json)", s)
}

// app carries the streams and settings shared by all subcommands.
type app struct {
	out  io.Writer
	errw io.Writer
	log  *zap.Logger
	v    *viper.Viper

	cfgFile  string
	logLevel string
	output   formatValue
}

// format resolves the output format from flag, environment and config
// file, in that precedence order.
func (a *app) format() string {
	return a.v.GetString("output")
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "thermosys",
		Short: "Steady-state power cycle modeling",
		Long: `Thermosys models steady-state thermodynamic power cycles: gas cycles,
recovery vapor cycles and their cogeneration combination. Cycles are
ordered device chains solved in one forward pass over a shared
working-fluid state.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if a.cfgFile != "" {
				a.v.SetConfigFile(a.cfgFile)
				if err := a.v.ReadInConfig(); err != nil {
					return fmt.Errorf("read config: %w", err)
				}
			}
			a.log = logging.New(a.errw, a.logLevel)
			return nil
		},
	}
	cmd.SetOut(a.out)
	cmd.SetErr(a.errw)

	pf := cmd.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	pf.StringVar(&a.logLevel, "log-level", "info", "log level (debug|info|warn|error)")
	a.output = "text"
	pf.VarP(&a.output, "output", "o", "output format (text|json)")
	_ = a.v.BindPFlag("output", pf.Lookup("output"))

	cmd.AddCommand(
		newBraytonCmd(a),
		newRankineCmd(a),
		newCogenerationCmd(a),
		newMontecarloCmd(a),
		newRunCmd(a),
		newVersionCmd(a),
	)
	return cmd
}

// RunContext executes the CLI against explicit streams and returns a
// process exit code.
func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	a := &app{out: stdout, errw: stderr, log: logging.Nop(), v: viper.New()}
	a.v.SetEnvPrefix("THERMOSYS")
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()

	cmd := newRootCmd(a)
	cmd.SetArgs(argv)
	if err := cmd.ExecuteContext(ctx); err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
