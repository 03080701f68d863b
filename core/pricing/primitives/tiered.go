// Package primitives - Tiered pricing primitives
// Free tier allowances and user-count tier breakpoints
package primitives

import (
	"fmt"

	"github.com/shopspring/decimal"

	"cloudcost/core/types"
)

// FreeTier bills only the quantity above the free allowance.
// Usage inside the allowance produces a zero-amount unit.
func FreeTier(m Meter, quantity, free, rate decimal.Decimal) *types.CostUnit {
	billable := quantity.Sub(free)
	if billable.IsNegative() {
		billable = decimal.Zero
	}
	return m.unit(billable, rate, billable.Mul(rate),
		fmt.Sprintf("max(0, %s - %s free) %s * $%s", quantity.String(), free.String(), m.Measure, rate.String()))
}

// Breakpoint is one step of a tier schedule
type Breakpoint struct {
	Name  string          // Service tier name (e.g., "t3.medium")
	UpTo  int64           // Inclusive upper user count (0 = unlimited)
	Value decimal.Decimal // Price or provisioned amount for the step
}

// Schedule is an ordered list of breakpoints, last one unlimited
type Schedule []Breakpoint

// Select returns the first breakpoint whose limit covers users
func (s Schedule) Select(users int64) Breakpoint {
	for _, bp := range s {
		if bp.UpTo == 0 || users <= bp.UpTo {
			return bp
		}
	}
	if len(s) == 0 {
		return Breakpoint{}
	}
	return s[len(s)-1]
}

// Validate checks that limits increase and only the last step is unlimited
func (s Schedule) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("empty tier schedule")
	}
	var prev int64
	for i, bp := range s {
		last := i == len(s)-1
		switch {
		case bp.UpTo == 0 && !last:
			return fmt.Errorf("tier %q: only the last tier may be unlimited", bp.Name)
		case bp.UpTo != 0 && last:
			return fmt.Errorf("tier %q: last tier must be unlimited", bp.Name)
		case bp.UpTo != 0 && bp.UpTo <= prev:
			return fmt.Errorf("tier %q: limit %d does not increase", bp.Name, bp.UpTo)
		case bp.Value.IsNegative():
			return fmt.Errorf("tier %q: negative value", bp.Name)
		}
		prev = bp.UpTo
	}
	return nil
}
