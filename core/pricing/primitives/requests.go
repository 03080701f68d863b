// Package primitives - Request and duration based pricing
// Serverless invocations, gateway calls, GB-seconds
package primitives

import (
	"github.com/shopspring/decimal"

	"cloudcost/core/types"
)

// GBSeconds returns the metered compute for a month of invocations
// (requests * seconds per request * GB allocated)
func GBSeconds(requests, durationSeconds, memoryGB decimal.Decimal) decimal.Decimal {
	return requests.Mul(durationSeconds).Mul(memoryGB)
}

// Invocations bills requests above the free allowance
func Invocations(m Meter, requests, freeRequests, rate decimal.Decimal) *types.CostUnit {
	return FreeTier(m, requests, freeRequests, rate)
}

// Duration bills GB-seconds above the free allowance
func Duration(m Meter, gbSeconds, freeGBSeconds, rate decimal.Decimal) *types.CostUnit {
	return FreeTier(m, gbSeconds, freeGBSeconds, rate)
}
