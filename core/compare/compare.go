// Package compare runs two cost models over a set of scenarios and
// derives the savings of the second provider relative to the first.
package compare

import (
	"fmt"
	"iter"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"cloudcost/core/model"
	"cloudcost/core/scenario"
	"cloudcost/core/types"
	"cloudcost/internal/errors"
	"cloudcost/internal/logging"
)

var hundred = decimal.NewFromInt(100)

// Result pairs both breakdowns of one scenario.
// Savings is A.Total - B.Total; positive means B is cheaper.
type Result struct {
	Scenario       scenario.Scenario `json:"-"`
	A              *types.Breakdown  `json:"a"`
	B              *types.Breakdown  `json:"b"`
	Savings        decimal.Decimal   `json:"savings"`
	SavingsPercent decimal.Decimal   `json:"savings_percent"`
}

// Comparator compares a baseline model (A) against a candidate (B)
type Comparator struct {
	a model.CostModel
	b model.CostModel
}

// New creates a comparator. a is the baseline savings are measured against.
func New(a, b model.CostModel) *Comparator {
	return &Comparator{a: a, b: b}
}

// Baseline returns the provider of model A
func (c *Comparator) Baseline() types.Provider { return c.a.Provider() }

// Candidate returns the provider of model B
func (c *Comparator) Candidate() types.Provider { return c.b.Provider() }

// Compare returns a lazy sequence of results in scenario order.
// Each scenario is estimated only when the consumer asks for it; the
// sequence ends after the first error.
func (c *Comparator) Compare(scenarios []scenario.Scenario) iter.Seq2[*Result, error] {
	return func(yield func(*Result, error) bool) {
		for _, s := range scenarios {
			r, err := c.compareOne(s)
			if !yield(r, err) || err != nil {
				return
			}
		}
	}
}

// CompareAll collects every result, failing on the first error
func (c *Comparator) CompareAll(scenarios []scenario.Scenario) ([]*Result, error) {
	results := make([]*Result, 0, len(scenarios))
	for r, err := range c.Compare(scenarios) {
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

func (c *Comparator) compareOne(s scenario.Scenario) (*Result, error) {
	a, err := c.a.Estimate(s)
	if err != nil {
		return nil, err
	}
	b, err := c.b.Estimate(s)
	if err != nil {
		return nil, err
	}

	// Estimate rejects zero totals, so a.Total is never zero here
	savings := a.Total.Sub(b.Total)
	r := &Result{
		Scenario:       s,
		A:              a,
		B:              b,
		Savings:        savings,
		SavingsPercent: savings.Div(a.Total).Mul(hundred),
	}

	logging.Named("compare").Debug("compared scenario",
		zap.String("scenario", s.Key),
		zap.String("a_total", a.Total.StringFixed(2)),
		zap.String("b_total", b.Total.StringFixed(2)),
		zap.String("savings_percent", r.SavingsPercent.StringFixed(1)))
	return r, nil
}

// AverageSavingsPercent is the arithmetic mean of the per-scenario
// savings percentages, not a total-weighted figure
func AverageSavingsPercent(results []*Result) (decimal.Decimal, error) {
	if len(results) == 0 {
		return decimal.Zero, errors.Input("no comparison results to average")
	}
	sum := decimal.Zero
	for _, r := range results {
		sum = sum.Add(r.SavingsPercent)
	}
	return sum.Div(decimal.NewFromInt(int64(len(results)))), nil
}

// Recommendation is the aggregate verdict over all scenarios
type Recommendation struct {
	Favored types.Provider `json:"favored"`
	Strong  bool           `json:"strong"`
	Message string         `json:"message"`
}

var strongSavings = decimal.NewFromInt(5)

// Recommend turns an average savings percentage into a verdict.
// Above 5% B is clearly cheaper, above 0% moderately, otherwise A is favored.
func Recommend(avg decimal.Decimal, a, b types.Provider) Recommendation {
	switch {
	case avg.GreaterThan(strongSavings):
		return Recommendation{
			Favored: b,
			Strong:  true,
			Message: fmt.Sprintf("%s is more cost-effective across all scenarios", b.DisplayName()),
		}
	case avg.IsPositive():
		return Recommendation{
			Favored: b,
			Message: fmt.Sprintf("%s offers moderate savings", b.DisplayName()),
		}
	default:
		return Recommendation{
			Favored: a,
			Message: fmt.Sprintf("%s may be more cost-effective", a.DisplayName()),
		}
	}
}
