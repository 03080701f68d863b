package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"cloudcost/core/scenario"
	"cloudcost/core/types"
	"cloudcost/core/ui"
	"cloudcost/internal/config"
)

func newScenariosCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scenarios",
		Short: "List the usage scenarios",
		Long: `List the scenarios a comparison would run, either the built-in ones
or those of the file given with --scenarios, with every default applied.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Get()
			scenarios, err := loadScenarios(cfg)
			if err != nil {
				return err
			}

			w := ui.NewWriter(cmd.OutOrStdout(), cfg.Output.NoColor)
			table := w.NewTable("Key", "Name", "Users", "Requests/mo", "Duration (s)", "Memory (GB)",
				"Storage (GB)", "Transfer (GB)", "Logs (GB)", "Metrics", "Alarms").
				AlignRight(2, 3, 4, 5, 6, 7, 8, 9, 10)
			for _, s := range scenarios {
				table.AddRow(s.Key, s.Name, strconv.FormatInt(s.Users, 10),
					s.MonthlyRequests.String(), s.AvgDurationSeconds.String(), s.MemoryGB.String(),
					s.StorageGB.String(), s.TransferGB.String(), s.LogVolumeGB.String(),
					s.Metrics.String(), s.Alarms.String())
			}
			table.Render()

			for _, s := range scenarios {
				var notes []string
				for _, p := range s.Providers() {
					notes = append(notes, pinnedInputs(p, s.Inputs(p)))
				}
				notes = append(notes, s.Defaults...)
				if len(notes) > 0 {
					w.Println("")
					w.SubHeader(s.Key)
					for _, n := range notes {
						w.Println("  %s", w.Dim(n))
					}
				}
			}
			return nil
		},
	}
	addScenarioFlags(cmd, opts)
	return cmd
}

// pinnedInputs describes which prices a scenario fixes for a provider
func pinnedInputs(p types.Provider, in scenario.Inputs) string {
	var pinned []string
	if in.DatabaseTier != nil {
		pinned = append(pinned, "database tier "+in.DatabaseTier.String())
	}
	if in.SearchTier != nil {
		pinned = append(pinned, "search tier "+in.SearchTier.String())
	}
	if in.APITier != nil {
		pinned = append(pinned, "API tier "+in.APITier.String())
	}
	if in.RequestUnits != nil {
		pinned = append(pinned, in.RequestUnits.String()+" RU/s")
	}
	if len(in.Fees) > 0 {
		pinned = append(pinned, fmt.Sprintf("%d fees", len(in.Fees)))
	}
	if len(pinned) == 0 {
		return p.DisplayName() + ": tiers by user count"
	}
	return p.DisplayName() + " pins " + strings.Join(pinned, ", ")
}
