// Package pricing - Azure serverless price table
// Functions + API Management, Static Web Apps, Cosmos DB, Monitor + Cognitive Search.
package pricing

import (
	"sync"

	"github.com/shopspring/decimal"

	"cloudcost/core/pricing/primitives"
	"cloudcost/core/types"
)

var (
	azureOnce  sync.Once
	azureTable *Table
)

// Azure returns the sealed Azure price table
func Azure() *Table {
	azureOnce.Do(func() {
		azureTable = NewBuilder(types.ProviderAzure).
			WithFreeTier(1_000_000, 400_000).
			AddRate(RateRequest, "Azure Functions", "request", "0.0000002").
			AddRate(RateGBSecond, "Azure Functions", "GB-second", "0.000016").
			AddRate(RatePlatformBase, "Static Web Apps", "month", "9").
			AddRate(RateStorageGB, "Static Web Apps", "GB-month", "0.18").
			AddRate(RateTransferGB, "Static Web Apps", "GB", "0.15").
			AddRate(RateRequestUnitHour, "Cosmos DB", "RU/s-hour", "0.008").
			AddRate(RateLogIngestionGB, "Azure Monitor", "GB", "0.27").
			AddRate(RateLogRetentionGB, "Azure Monitor", "GB-month", "0.12").
			AddTier(TierAPI, "API Management", "month", primitives.Schedule{
				{Name: "Developer", UpTo: 100, Value: decimal.NewFromInt(48)},
				{Name: "Standard", UpTo: 1000, Value: decimal.NewFromInt(268)},
				{Name: "Premium", Value: decimal.NewFromInt(2845)},
			}).
			AddTier(TierRequestUnits, "Cosmos DB", "RU/s", primitives.Schedule{
				{Name: "1000 RU/s", UpTo: 100, Value: decimal.NewFromInt(1000)},
				{Name: "5000 RU/s", UpTo: 1000, Value: decimal.NewFromInt(5000)},
				{Name: "25000 RU/s", Value: decimal.NewFromInt(25000)},
			}).
			AddTier(TierSearch, "Cognitive Search", "month", primitives.Schedule{
				{Name: "Basic", UpTo: 100, Value: decimal.NewFromInt(25)},
				{Name: "Standard S1", UpTo: 1000, Value: decimal.NewFromInt(89)},
				{Name: "Standard S3", Value: decimal.NewFromInt(445)},
			}).
			AddFee(FeeAuth, "AD B2C", "0").
			AddFee(FeeWorkflow, "Logic Apps", "1").
			AddFee(FeePerimeter, "Application Gateway", "18").
			AddFee(FeeSecrets, "Key Vault", "1").
			AddFee(FeeEgress, "Data Transfer", "16").
			MustBuild()
	})
	return azureTable
}
