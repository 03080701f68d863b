// Package cmd - Price table inspection
package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"cloudcost/core/pricing"
	"cloudcost/core/types"
	"cloudcost/core/ui"
	"cloudcost/internal/config"
	"cloudcost/internal/errors"
)

func newPricingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pricing [aws|azure]",
		Short: "Show the unit price tables",
		Long: `Show the unit prices, free tiers, user-count tiers and default fees a
cost model uses. With no argument every provider is shown.

Price tables are compiled in and sealed; the table ID is a content hash
that changes whenever any price does.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{types.ProviderAWS.String(), types.ProviderAzure.String()},
		RunE: func(cmd *cobra.Command, args []string) error {
			providers := []types.Provider{types.ProviderAWS, types.ProviderAzure}
			if len(args) == 1 {
				p := types.ParseProvider(args[0])
				if p == types.ProviderUnknown {
					return errors.Input(fmt.Sprintf("unknown provider %q (want aws or azure)", args[0]))
				}
				providers = []types.Provider{p}
			}

			w := ui.NewWriter(cmd.OutOrStdout(), config.Get().Output.NoColor)
			for _, p := range providers {
				table, err := pricing.For(p)
				if err != nil {
					return err
				}
				renderPriceTable(w, table)
			}
			return nil
		},
	}
}

func renderPriceTable(w *ui.Writer, t *pricing.Table) {
	w.Header(fmt.Sprintf("%s prices (table %s)", t.Provider().DisplayName(), t.ID()))
	w.Println("Free tier: %s requests, %s GB-seconds per month", t.FreeRequests(), t.FreeGBSeconds())
	w.Println("")

	rates := w.NewTable("Key", "Service", "Unit", "Price").AlignRight(3)
	for _, r := range t.Rates() {
		rates.AddRow(string(r.Key), r.Service, r.Unit, "$"+r.Price.String())
	}
	rates.Render()

	w.Println("")
	tiers := w.NewTable("Tier", "Service", "Users up to", "Option", "Value").AlignRight(2, 4)
	for _, tier := range t.Tiers() {
		for _, bp := range tier.Schedule {
			upTo := "unlimited"
			if bp.UpTo > 0 {
				upTo = strconv.FormatInt(bp.UpTo, 10)
			}
			tiers.AddRow(string(tier.Kind), tier.Service, upTo, bp.Name, bp.Value.String()+" "+tier.Unit)
		}
	}
	tiers.Render()

	w.Println("")
	fees := w.NewTable("Fee", "Service", "Default").AlignRight(2)
	for _, f := range t.Fees() {
		fees.AddRow(string(f.Fee), f.Service, "$"+f.Amount.StringFixed(2))
	}
	fees.Render()
}
