// Package output provides output formatting interfaces.
// This package produces human and machine-readable comparison reports.
package output

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"cloudcost/core/compare"
	"cloudcost/core/model"
	"cloudcost/core/scenario"
	"cloudcost/core/types"
	"cloudcost/internal/errors"
)

// Format represents output format type
type Format string

const (
	// FormatCLI is a human-readable, emoji-annotated summary
	FormatCLI Format = "cli"

	// FormatJSON is machine-readable JSON
	FormatJSON Format = "json"

	// FormatMarkdown is a markdown report
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a user-supplied format name
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case FormatCLI, FormatJSON, FormatMarkdown:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	default:
		return "", errors.Input(fmt.Sprintf("unknown output format %q (want cli, json or markdown)", name))
	}
}

// Options tune how a report is rendered
type Options struct {
	// Details includes every line item and assumption
	Details bool

	// NoColor disables terminal colors
	NoColor bool
}

// Formatter produces output in a specific format
type Formatter interface {
	// Format returns the format type
	Format() Format

	// Render produces output for the given report
	Render(w io.Writer, report *Report, opts Options) error
}

// Report is the complete comparison output
type Report struct {
	// Baseline is provider A, the one savings are measured against
	Baseline types.Provider `json:"baseline"`

	// Candidate is provider B
	Candidate types.Provider `json:"candidate"`

	// Scenarios holds one entry per scenario, in input order
	Scenarios []ScenarioReport `json:"scenarios"`

	// AverageSavingsPercent is the mean of the per-scenario percentages
	AverageSavingsPercent decimal.Decimal `json:"average_savings_percent"`

	// Recommendation is the aggregate verdict
	Recommendation compare.Recommendation `json:"recommendation"`

	// LoggingShare is the range of logging percentages over every breakdown
	LoggingShare Range `json:"logging_share"`

	// PriceTables identifies the price tables used
	PriceTables []PriceTableRef `json:"price_tables"`
}

// ScenarioReport is one comparison result plus derived figures
type ScenarioReport struct {
	Key            string             `json:"key"`
	Name           string             `json:"name"`
	Users          int64              `json:"users"`
	A              *types.Breakdown   `json:"a"`
	B              *types.Breakdown   `json:"b"`
	LoggingPercent [2]decimal.Decimal `json:"logging_percent"`
	Savings        decimal.Decimal    `json:"savings"`
	SavingsPercent decimal.Decimal    `json:"savings_percent"`
}

// Range is an inclusive min/max pair
type Range struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// PriceTableRef identifies a sealed price table
type PriceTableRef struct {
	Provider types.Provider `json:"provider"`
	ID       string         `json:"id"`
	Hash     string         `json:"hash"`
}

// Build compares a against b over the scenarios and assembles the report.
// Scenarios are priced one at a time as the comparison sequence yields them.
func Build(a, b model.CostModel, scenarios []scenario.Scenario) (*Report, error) {
	c := compare.New(a, b)
	report := &Report{
		Baseline:  a.Provider(),
		Candidate: b.Provider(),
	}

	results := make([]*compare.Result, 0, len(scenarios))
	for r, err := range c.Compare(scenarios) {
		if err != nil {
			return nil, err
		}
		sr, err := newScenarioReport(r)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
		report.Scenarios = append(report.Scenarios, sr)
	}

	avg, err := compare.AverageSavingsPercent(results)
	if err != nil {
		return nil, err
	}
	report.AverageSavingsPercent = avg
	report.Recommendation = compare.Recommend(avg, report.Baseline, report.Candidate)
	report.LoggingShare = loggingShare(report.Scenarios)

	for _, m := range []model.CostModel{a, b} {
		if t := m.Table(); t != nil {
			report.PriceTables = append(report.PriceTables, PriceTableRef{
				Provider: m.Provider(),
				ID:       t.ID(),
				Hash:     t.Hash(),
			})
		}
	}
	return report, nil
}

func newScenarioReport(r *compare.Result) (ScenarioReport, error) {
	sr := ScenarioReport{
		Key:            r.Scenario.Key,
		Name:           r.Scenario.Name,
		Users:          r.Scenario.Users,
		A:              r.A,
		B:              r.B,
		Savings:        r.Savings,
		SavingsPercent: r.SavingsPercent,
	}
	for i, b := range []*types.Breakdown{r.A, r.B} {
		pct, err := b.LoggingPercent()
		if err != nil {
			return ScenarioReport{}, err
		}
		sr.LoggingPercent[i] = pct
	}
	return sr, nil
}

func loggingShare(scenarios []ScenarioReport) Range {
	var all []decimal.Decimal
	for _, s := range scenarios {
		all = append(all, s.LoggingPercent[:]...)
	}
	if len(all) == 0 {
		return Range{}
	}
	return Range{Min: decimal.Min(all[0], all[1:]...), Max: decimal.Max(all[0], all[1:]...)}
}

// Registry manages formatter registration
type Registry struct {
	mu         sync.RWMutex
	formatters map[Format]Formatter
}

// NewRegistry creates an empty formatter registry
func NewRegistry() *Registry {
	return &Registry{formatters: make(map[Format]Formatter)}
}

// Register adds a formatter to the registry
func (r *Registry) Register(f Formatter) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.formatters[f.Format()]; exists {
		return fmt.Errorf("formatter already registered: %s", f.Format())
	}
	r.formatters[f.Format()] = f
	return nil
}

// Get returns the formatter for a format
func (r *Registry) Get(format Format) (Formatter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	f, ok := r.formatters[format]
	if !ok {
		return nil, errors.NotFound("formatter", string(format))
	}
	return f, nil
}

// Formats returns all registered formats, sorted
func (r *Registry) Formats() []Format {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Format, 0, len(r.formatters))
	for f := range r.formatters {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the registry with the cli, json and markdown formatters
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		_ = defaultRegistry.Register(&CLIFormatter{})
		_ = defaultRegistry.Register(&JSONFormatter{Indent: "  "})
		_ = defaultRegistry.Register(&MarkdownFormatter{})
	})
	return defaultRegistry
}

// money formats an amount as dollars with two decimals
func money(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-$" + d.Neg().StringFixed(2)
	}
	return "$" + d.StringFixed(2)
}

// percent formats a percentage with one decimal
func percent(d decimal.Decimal) string {
	return d.StringFixed(1) + "%"
}
