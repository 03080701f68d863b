// Package primitives - Centralized pricing math
// Models declare intent, not do math.
// All billing arithmetic flows through these primitives.
package primitives

import (
	"fmt"

	"github.com/shopspring/decimal"

	"cloudcost/core/types"
)

// Meter identifies what a cost unit bills for
type Meter struct {
	ID       string
	Label    string
	Category types.Category
	Service  string
	Measure  string
}

// unit builds the cost unit for a meter
func (m Meter) unit(quantity, rate, amount decimal.Decimal, formula string) *types.CostUnit {
	return &types.CostUnit{
		ID:       m.ID,
		Label:    m.Label,
		Category: m.Category,
		Service:  m.Service,
		Measure:  m.Measure,
		Quantity: quantity,
		Rate:     rate,
		Amount:   amount,
		Formula:  formula,
	}
}

// HoursPerMonth is the billing month used for hourly prices
var HoursPerMonth = decimal.NewFromInt(730)

// PerUnit bills every unit of quantity at rate
func PerUnit(m Meter, quantity, rate decimal.Decimal) *types.CostUnit {
	return m.unit(quantity, rate, quantity.Mul(rate),
		fmt.Sprintf("%s %s * $%s", quantity.String(), m.Measure, rate.String()))
}

// Fixed bills a flat monthly amount
func Fixed(m Meter, amount decimal.Decimal) *types.CostUnit {
	return m.unit(decimal.NewFromInt(1), amount, amount,
		fmt.Sprintf("$%s/month flat", amount.String()))
}

// Hourly bills provisioned units at an hourly rate for a full month
func Hourly(m Meter, units, rate decimal.Decimal) *types.CostUnit {
	amount := units.Mul(rate).Mul(HoursPerMonth)
	return m.unit(units, rate, amount,
		fmt.Sprintf("%s %s * $%s/hour * %s hours/month", units.String(), m.Measure, rate.String(), HoursPerMonth.String()))
}
