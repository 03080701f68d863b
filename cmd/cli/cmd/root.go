// Package cmd provides the CLI commands for cloudcost.
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cloudcost/internal/config"
	"cloudcost/internal/logging"
)

// Version is set at build time with -ldflags "-X cloudcost/cmd/cli/cmd.Version=..."
var Version = "0.1.0"

// options holds the flag values of one command tree
type options struct {
	cfgFile string
	verbose bool

	format    string
	scenarios string
	details   bool
	noColor   bool
}

// Execute runs the CLI
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree. Running the root command with no
// arguments is the same as running compare.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "cloudcost",
		Short: "Compare monthly serverless hosting costs across cloud providers",
		Long: `cloudcost estimates the monthly cost of a small serverless application
on AWS and Azure under several usage scenarios, then compares them.

Examples:
  cloudcost
  cloudcost compare --details
  cloudcost compare --format markdown --scenarios ./scenarios.hcl
  cloudcost pricing azure`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(cmd, opts)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			logging.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompare(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&opts.cfgFile, "config", "", "config file (default is $HOME/.cloudcost.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	addCompareFlags(rootCmd, opts)

	rootCmd.AddCommand(newCompareCmd(opts))
	rootCmd.AddCommand(newScenariosCmd(opts))
	rootCmd.AddCommand(newPricingCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// initConfig loads configuration and sets up logging before any command runs
func initConfig(cmd *cobra.Command, opts *options) error {
	cfg, err := config.Load(opts.cfgFile, cmd.Flags())
	if err != nil {
		return err
	}
	if opts.verbose {
		cfg.Logging.Level = "debug"
	}
	if err := logging.Initialize(cfg.Logging); err != nil {
		return fmt.Errorf("initializing logging: %w", err)
	}
	config.Set(cfg)

	logging.Debug("configuration loaded",
		zap.String("format", cfg.Output.Format),
		zap.String("scenarios", cfg.Scenarios.File),
		zap.String("baseline", cfg.Comparison.Baseline),
		zap.String("candidate", cfg.Comparison.Candidate))
	return nil
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "cloudcost version %s\n", Version)
		},
	}
}
