package output

import (
	"fmt"
	"io"

	"cloudcost/core/types"
	"cloudcost/core/ui"
)

// CLIFormatter renders the emoji-annotated terminal summary
type CLIFormatter struct{}

// Format returns FormatCLI
func (f *CLIFormatter) Format() Format { return FormatCLI }

// Render writes the report to w
func (f *CLIFormatter) Render(w io.Writer, report *Report, opts Options) error {
	out := ui.NewWriter(w, opts.NoColor)
	a, b := report.Baseline.DisplayName(), report.Candidate.DisplayName()

	out.Header(fmt.Sprintf("Cloud Cost Comparison: %s vs %s", a, b))

	for _, s := range report.Scenarios {
		summary := out.NewCostSummary(s.Name)
		summary.Labels = [2]string{a, b}
		summary.Totals = [2]string{money(s.A.Total), money(s.B.Total)}
		summary.LoggingPct = [2]string{percent(s.LoggingPercent[0]), percent(s.LoggingPercent[1])}
		summary.Savings = money(s.Savings)
		summary.Percent = percent(s.SavingsPercent)
		summary.Favorable = s.Savings.IsPositive()
		summary.Render()

		if opts.Details {
			out.Println("")
			renderCategories(out, s, a, b)
			for _, bd := range []*types.Breakdown{s.A, s.B} {
				out.Println("")
				renderUnits(out, bd)
			}
		}
		out.Println("")
	}

	out.Println("🎯 %s", out.Bold("Recommendations:"))
	out.Println("   Average %s Savings: %s", b, percent(report.AverageSavingsPercent))
	if report.Recommendation.Favored == report.Candidate {
		out.Println("   ✅ %s", out.Good(report.Recommendation.Message))
	} else {
		out.Println("   ⚠️  %s", out.Bad(report.Recommendation.Message))
	}
	out.Println("")
	out.Println("   Logging represents %s-%s%% of total costs across both platforms",
		report.LoggingShare.Min.StringFixed(0), report.LoggingShare.Max.StringFixed(0))

	if opts.Details {
		out.Println("")
		for _, t := range report.PriceTables {
			out.Println("%s", out.Dim(fmt.Sprintf("   %s prices: table %s", t.Provider.DisplayName(), t.ID)))
		}
	}
	return nil
}

func renderCategories(out *ui.Writer, s ScenarioReport, a, b string) {
	table := out.NewTable("Category", a, b).AlignRight(1, 2)
	for _, c := range types.Categories {
		table.AddRow(c.Title(), money(s.A.SubTotal(c)), money(s.B.SubTotal(c)))
	}
	table.AddRow("Total", money(s.A.Total), money(s.B.Total))
	table.Render()
}

func renderUnits(out *ui.Writer, bd *types.Breakdown) {
	out.SubHeader(bd.Provider.DisplayName() + " line items")
	table := out.NewTable("Category", "Item", "Quantity", "Rate", "Cost").AlignRight(2, 3, 4)
	for _, c := range types.Categories {
		for _, u := range bd.UnitsFor(c) {
			table.AddRow(c.Title(), u.Label, u.Quantity.String()+" "+u.Measure, u.Rate.String(), money(u.Amount))
		}
	}
	table.Render()
	for _, a := range bd.Assumptions {
		out.Println("%s", out.Dim("   assumes "+a))
	}
}
