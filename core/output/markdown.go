package output

import (
	"fmt"
	"io"
	"strings"

	"cloudcost/core/types"
)

// MarkdownFormatter renders the report as a markdown document
type MarkdownFormatter struct{}

// Format returns FormatMarkdown
func (f *MarkdownFormatter) Format() Format { return FormatMarkdown }

// Render writes the report to w
func (f *MarkdownFormatter) Render(w io.Writer, report *Report, opts Options) error {
	a, b := report.Baseline.DisplayName(), report.Candidate.DisplayName()
	var sb strings.Builder

	fmt.Fprintf(&sb, "# Cloud Cost Comparison: %s vs %s\n\n", a, b)

	sb.WriteString("## Summary\n\n")
	fmt.Fprintf(&sb, "| Scenario | Users | %s | %s | %s Savings | %s Logging | %s Logging |\n", a, b, b, a, b)
	sb.WriteString("|---|---:|---:|---:|---:|---:|---:|\n")
	for _, s := range report.Scenarios {
		fmt.Fprintf(&sb, "| %s | %d | %s | %s | %s (%s) | %s | %s |\n",
			escape(s.Name), s.Users, money(s.A.Total), money(s.B.Total),
			money(s.Savings), percent(s.SavingsPercent),
			percent(s.LoggingPercent[0]), percent(s.LoggingPercent[1]))
	}

	sb.WriteString("\n## Recommendation\n\n")
	fmt.Fprintf(&sb, "- Average %s savings: **%s**\n", b, percent(report.AverageSavingsPercent))
	fmt.Fprintf(&sb, "- %s\n", report.Recommendation.Message)
	fmt.Fprintf(&sb, "- Logging represents %s-%s%% of total costs\n",
		report.LoggingShare.Min.StringFixed(0), report.LoggingShare.Max.StringFixed(0))

	for _, s := range report.Scenarios {
		fmt.Fprintf(&sb, "\n## %s\n\n", escape(s.Name))
		fmt.Fprintf(&sb, "| Category | %s | %s |\n", a, b)
		sb.WriteString("|---|---:|---:|\n")
		for _, c := range types.Categories {
			fmt.Fprintf(&sb, "| %s | %s | %s |\n", c.Title(), money(s.A.SubTotal(c)), money(s.B.SubTotal(c)))
		}
		fmt.Fprintf(&sb, "| **Total** | **%s** | **%s** |\n", money(s.A.Total), money(s.B.Total))

		if !opts.Details {
			continue
		}
		for _, bd := range []*types.Breakdown{s.A, s.B} {
			fmt.Fprintf(&sb, "\n### %s line items\n\n", bd.Provider.DisplayName())
			sb.WriteString("| Item | Formula | Cost |\n")
			sb.WriteString("|---|---|---:|\n")
			for _, u := range bd.Units {
				fmt.Fprintf(&sb, "| %s | `%s` | %s |\n", escape(u.Label), u.Formula, money(u.Amount))
			}
			for _, as := range bd.Assumptions {
				fmt.Fprintf(&sb, "\n> %s", as)
			}
			if len(bd.Assumptions) > 0 {
				sb.WriteString("\n")
			}
		}
	}

	if len(report.PriceTables) > 0 {
		sb.WriteString("\n---\n\n")
		for _, t := range report.PriceTables {
			fmt.Fprintf(&sb, "*%s price table `%s`*\n", t.Provider.DisplayName(), t.ID)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func escape(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
