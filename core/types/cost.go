// Package types - Cost breakdown types
package types

import (
	"github.com/shopspring/decimal"

	"cloudcost/internal/errors"
)

// Currency represents a currency code
type Currency string

const (
	CurrencyUSD Currency = "USD"
)

// String returns the string representation
func (c Currency) String() string {
	return string(c)
}

// hundred is used for percentage conversions
var hundred = decimal.NewFromInt(100)

// CostUnit represents a single billable line item
type CostUnit struct {
	// ID uniquely identifies this cost unit within a breakdown
	ID string `json:"id"`

	// Label is a human-readable label
	Label string `json:"label"`

	// Category is the breakdown category this unit rolls up into
	Category Category `json:"category"`

	// Service is the provider service (e.g., "Lambda", "Cosmos DB")
	Service string `json:"service"`

	// Measure is the billing unit (e.g., "GB-month", "requests")
	Measure string `json:"measure"`

	// Quantity is the billable quantity after free tiers
	Quantity decimal.Decimal `json:"quantity"`

	// Rate is the unit price
	Rate decimal.Decimal `json:"rate"`

	// Amount is the calculated cost
	Amount decimal.Decimal `json:"amount"`

	// Formula describes how the amount was calculated
	Formula string `json:"formula"`
}

// Breakdown is the monthly cost of one scenario on one provider
type Breakdown struct {
	Provider   Provider        `json:"provider"`
	Scenario   string          `json:"scenario"`
	Currency   Currency        `json:"currency"`
	Compute    decimal.Decimal `json:"compute"`
	Storage    decimal.Decimal `json:"storage"`
	Database   decimal.Decimal `json:"database"`
	Logging    decimal.Decimal `json:"logging"`
	Additional decimal.Decimal `json:"additional"`
	Total      decimal.Decimal `json:"total"`

	// Units holds the line items behind the sub-totals
	Units []*CostUnit `json:"units,omitempty"`

	// Assumptions lists defaults applied because the scenario left them unset
	Assumptions []string `json:"assumptions,omitempty"`
}

// NewBreakdown creates an empty breakdown
func NewBreakdown(provider Provider, scenario string) *Breakdown {
	return &Breakdown{
		Provider: provider,
		Scenario: scenario,
		Currency: CurrencyUSD,
	}
}

// Add adds a cost unit to its category sub-total and the grand total
func (b *Breakdown) Add(unit *CostUnit) {
	b.Units = append(b.Units, unit)
	switch unit.Category {
	case CategoryCompute:
		b.Compute = b.Compute.Add(unit.Amount)
	case CategoryStorage:
		b.Storage = b.Storage.Add(unit.Amount)
	case CategoryDatabase:
		b.Database = b.Database.Add(unit.Amount)
	case CategoryLogging:
		b.Logging = b.Logging.Add(unit.Amount)
	case CategoryAdditional:
		b.Additional = b.Additional.Add(unit.Amount)
	}
	b.Total = b.Total.Add(unit.Amount)
}

// Assume records an assumption
func (b *Breakdown) Assume(assumption string) {
	b.Assumptions = append(b.Assumptions, assumption)
}

// SubTotal returns the sub-total for a category
func (b *Breakdown) SubTotal(c Category) decimal.Decimal {
	switch c {
	case CategoryCompute:
		return b.Compute
	case CategoryStorage:
		return b.Storage
	case CategoryDatabase:
		return b.Database
	case CategoryLogging:
		return b.Logging
	case CategoryAdditional:
		return b.Additional
	default:
		return decimal.Zero
	}
}

// Sum recomputes the grand total from the category sub-totals
func (b *Breakdown) Sum() decimal.Decimal {
	total := decimal.Zero
	for _, c := range Categories {
		total = total.Add(b.SubTotal(c))
	}
	return total
}

// UnitsFor returns the line items of a category in insertion order
func (b *Breakdown) UnitsFor(c Category) []*CostUnit {
	var units []*CostUnit
	for _, u := range b.Units {
		if u.Category == c {
			units = append(units, u)
		}
	}
	return units
}

// LoggingPercent returns the logging share of the total, in percent
func (b *Breakdown) LoggingPercent() (decimal.Decimal, error) {
	if b.Total.IsZero() {
		return decimal.Zero, errors.InvalidScenario(b.Scenario,
			"%s total cost is zero, logging share is undefined", b.Provider.DisplayName())
	}
	return b.Logging.Div(b.Total).Mul(hundred), nil
}
