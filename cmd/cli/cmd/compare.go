package cmd

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cloudcost/core/model"
	"cloudcost/core/output"
	"cloudcost/core/scenario"
	"cloudcost/internal/config"
	"cloudcost/internal/logging"
)

func newCompareCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare provider costs across usage scenarios",
		Long: `Estimate every scenario on both providers and report the totals,
per-category costs, logging share and savings, followed by the average
savings and a recommendation.

Without --scenarios the built-in low, medium and high usage scenarios
are used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd)
		},
	}
	addCompareFlags(cmd, opts)
	return cmd
}

func addCompareFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVarP(&opts.format, "format", "f", "cli", "output format (cli, json, markdown)")
	addScenarioFlags(cmd, opts)
	cmd.Flags().BoolVarP(&opts.details, "details", "d", false, "show every line item and assumption")
}

func addScenarioFlags(cmd *cobra.Command, opts *options) {
	cmd.Flags().StringVarP(&opts.scenarios, "scenarios", "s", "", "HCL scenario file (default: built-in scenarios)")
}

func runCompare(cmd *cobra.Command) error {
	cfg := config.Get()

	format, err := output.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	formatter, err := output.Default().Get(format)
	if err != nil {
		return err
	}

	scenarios, err := loadScenarios(cfg)
	if err != nil {
		return err
	}

	baseline, candidate := cfg.Providers()
	a, err := model.Default().Get(baseline)
	if err != nil {
		return err
	}
	b, err := model.Default().Get(candidate)
	if err != nil {
		return err
	}

	logging.Debug("comparing providers",
		zap.String("baseline", baseline.String()),
		zap.String("candidate", candidate.String()),
		zap.Int("scenarios", len(scenarios)))

	report, err := output.Build(a, b, scenarios)
	if err != nil {
		return err
	}

	return formatter.Render(cmd.OutOrStdout(), report, output.Options{
		Details: cfg.Output.Details,
		NoColor: cfg.Output.NoColor,
	})
}

// loadScenarios returns the scenarios of the configured file, or the
// built-in ones when no file is set
func loadScenarios(cfg *config.Config) ([]scenario.Scenario, error) {
	if cfg.Scenarios.File == "" {
		return scenario.Builtin(), nil
	}
	logging.Debug("loading scenario file", zap.String("path", cfg.Scenarios.File))
	return scenario.NewParser().LoadFile(cfg.Scenarios.File)
}
