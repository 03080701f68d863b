// Package model provides the per-provider cost models.
// A model turns one Scenario into one Breakdown using a sealed price table.
package model

import (
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"cloudcost/core/pricing"
	"cloudcost/core/pricing/primitives"
	"cloudcost/core/scenario"
	"cloudcost/core/types"
	"cloudcost/internal/errors"
	"cloudcost/internal/logging"
)

// CostModel estimates the monthly cost of a scenario on one provider
type CostModel interface {
	// Provider returns the provider this model prices
	Provider() types.Provider

	// Table returns the price table the model reads
	Table() *pricing.Table

	// Estimate prices a scenario. It returns an InvalidScenario error for
	// negative inputs or a zero total.
	Estimate(s scenario.Scenario) (*types.Breakdown, error)
}

// base holds what every provider model shares
type base struct {
	table *pricing.Table
}

func newBase(table *pricing.Table) base {
	return base{table: table}
}

func (b base) logger() *zap.Logger {
	return logging.Named("model").With(zap.String("provider", b.table.Provider().String()))
}

// Provider returns the provider of the price table
func (b base) Provider() types.Provider { return b.table.Provider() }

// Table returns the price table
func (b base) Table() *pricing.Table { return b.table }

// estimation carries the state of one Estimate call
type estimation struct {
	table    *pricing.Table
	scenario scenario.Scenario
	inputs   scenario.Inputs
	out      *types.Breakdown
	err      error
}

func (b base) begin(s scenario.Scenario) (*estimation, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	e := &estimation{
		table:    b.table,
		scenario: s,
		inputs:   s.Inputs(b.table.Provider()),
		out:      types.NewBreakdown(b.table.Provider(), s.Key),
	}
	for _, d := range s.Defaults {
		e.out.Assume(d)
	}
	return e, nil
}

// finish checks the totals and returns the breakdown
func (b base) finish(e *estimation) (*types.Breakdown, error) {
	if e.err != nil {
		return nil, e.err
	}
	if e.out.Total.IsZero() {
		return nil, errors.InvalidScenario(e.scenario.Key, "%s total cost is zero", b.Provider().DisplayName())
	}
	b.logger().Debug("estimated scenario",
		zap.String("scenario", e.scenario.Key),
		zap.String("total", e.out.Total.StringFixed(2)),
		zap.Int("units", len(e.out.Units)),
		zap.Int("assumptions", len(e.out.Assumptions)))
	return e.out, nil
}

// meter builds a meter whose service comes from the rate
func (e *estimation) meter(id, label string, c types.Category, r pricing.Rate) primitives.Meter {
	return primitives.Meter{ID: id, Label: label, Category: c, Service: r.Service, Measure: r.Unit}
}

// rate looks up a rate, remembering the first missing one
func (e *estimation) rate(key pricing.RateKey) (pricing.Rate, bool) {
	if e.err != nil {
		return pricing.Rate{}, false
	}
	r, err := e.table.MustRate(key)
	if err != nil {
		e.err = err
		return pricing.Rate{}, false
	}
	return r, true
}

// perUnit adds quantity * rate
func (e *estimation) perUnit(id, label string, c types.Category, key pricing.RateKey, quantity decimal.Decimal) {
	if r, ok := e.rate(key); ok {
		e.out.Add(primitives.PerUnit(e.meter(id, label, c, r), quantity, r.Price))
	}
}

// fixedRate adds a flat monthly rate
func (e *estimation) fixedRate(id, label string, c types.Category, key pricing.RateKey) {
	if r, ok := e.rate(key); ok {
		e.out.Add(primitives.Fixed(e.meter(id, label, c, r), r.Price))
	}
}

// tier resolves a user-count tier, preferring the scenario's pinned value
func (e *estimation) tier(kind pricing.TierKind, pinned *decimal.Decimal) (pricing.Tier, decimal.Decimal, bool) {
	if e.err != nil {
		return pricing.Tier{}, decimal.Zero, false
	}
	tier, ok := e.table.Tier(kind)
	if !ok {
		e.err = errors.Pricing(fmt.Sprintf("%s table has no %s tier", e.table.Provider(), kind), nil)
		return pricing.Tier{}, decimal.Zero, false
	}
	if pinned != nil {
		return tier, *pinned, true
	}
	bp := tier.Schedule.Select(e.scenario.Users)
	e.out.Assume(fmt.Sprintf("%s %s selected for %d users", tier.Service, bp.Name, e.scenario.Users))
	return tier, bp.Value, true
}

// fixedTier adds a tier priced as a flat monthly amount
func (e *estimation) fixedTier(id, label string, c types.Category, kind pricing.TierKind, pinned *decimal.Decimal) {
	tier, value, ok := e.tier(kind, pinned)
	if !ok {
		return
	}
	m := primitives.Meter{ID: id, Label: label, Category: c, Service: tier.Service, Measure: tier.Unit}
	e.out.Add(primitives.Fixed(m, value))
}

// fees adds every additional fee, using the table default when unset
func (e *estimation) fees() {
	for _, f := range e.table.Fees() {
		amount, ok := e.inputs.Fee(f.Fee)
		if !ok {
			amount = f.Amount
		}
		m := primitives.Meter{
			ID:       "fee-" + string(f.Fee),
			Label:    f.Service,
			Category: types.CategoryAdditional,
			Service:  f.Service,
			Measure:  "month",
		}
		e.out.Add(primitives.Fixed(m, amount))
	}
}
