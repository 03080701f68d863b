package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"cloudcost/core/ui"
	"cloudcost/internal/config"
	"cloudcost/internal/errors"
)

func newConfigCmd() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage configuration",
		Run: func(cmd *cobra.Command, args []string) {
			_ = cmd.Help()
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(config.Get())
		},
	}

	var force bool
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a default config file",
		Long: `Write the default configuration to path, or to $HOME/.cloudcost.yaml
when no path is given. The extension selects YAML or JSON.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := defaultConfigPath(args)
			if err != nil {
				return err
			}
			if _, err := os.Stat(path); err == nil && !force {
				return errors.Input(path + " already exists (use --force to overwrite)")
			}
			if err := config.Default().Save(path); err != nil {
				return err
			}
			ui.NewWriter(cmd.OutOrStdout(), config.Get().Output.NoColor).Success("wrote %s", path)
			return nil
		},
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")

	configCmd.AddCommand(showCmd, initCmd)
	return configCmd
}

func defaultConfigPath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Config("cannot locate home directory", err)
	}
	return filepath.Join(home, config.FileName+".yaml"), nil
}
