package model

import (
	"cloudcost/core/pricing"
	"cloudcost/core/pricing/primitives"
	"cloudcost/core/scenario"
	"cloudcost/core/types"
)

// AzureModel prices Functions + API Management, Static Web Apps,
// Cosmos DB, Monitor + Cognitive Search and the additional Azure services
type AzureModel struct {
	base
}

// NewAzure creates an Azure model over a price table
func NewAzure(table *pricing.Table) *AzureModel {
	return &AzureModel{base: newBase(table)}
}

// Estimate prices a scenario on Azure
func (m *AzureModel) Estimate(s scenario.Scenario) (*types.Breakdown, error) {
	e, err := m.begin(s)
	if err != nil {
		return nil, err
	}
	t := m.table

	// Functions + API Management
	if r, ok := e.rate(pricing.RateRequest); ok {
		e.out.Add(primitives.Invocations(e.meter("functions-requests", "Functions executions", types.CategoryCompute, r),
			s.MonthlyRequests, t.FreeRequests(), r.Price))
	}
	if r, ok := e.rate(pricing.RateGBSecond); ok {
		gbs := primitives.GBSeconds(s.MonthlyRequests, s.AvgDurationSeconds, s.MemoryGB)
		e.out.Add(primitives.Duration(e.meter("functions-duration", "Functions execution time", types.CategoryCompute, r),
			gbs, t.FreeGBSeconds(), r.Price))
	}
	e.fixedTier("apim", "API Management", types.CategoryCompute, pricing.TierAPI, e.inputs.APITier)

	// Static Web Apps
	e.fixedRate("static-web-apps", "Static Web Apps standard", types.CategoryStorage, pricing.RatePlatformBase)
	e.perUnit("static-web-apps-storage", "Static Web Apps storage", types.CategoryStorage, pricing.RateStorageGB, s.StorageGB)
	e.perUnit("static-web-apps-bandwidth", "Static Web Apps bandwidth", types.CategoryStorage, pricing.RateTransferGB, s.TransferGB)

	// Cosmos DB, billed per provisioned RU/s per hour
	if _, ru, ok := e.tier(pricing.TierRequestUnits, e.inputs.RequestUnits); ok {
		if r, ok := e.rate(pricing.RateRequestUnitHour); ok {
			e.out.Add(primitives.Hourly(e.meter("cosmos-db", "Cosmos DB throughput", types.CategoryDatabase, r), ru, r.Price))
		}
	}

	// Azure Monitor + Cognitive Search
	e.perUnit("monitor-ingestion", "Azure Monitor ingestion", types.CategoryLogging, pricing.RateLogIngestionGB, s.LogVolumeGB)
	e.perUnit("monitor-retention", "Azure Monitor retention", types.CategoryLogging, pricing.RateLogRetentionGB, s.LogVolumeGB)
	e.fixedTier("cognitive-search", "Cognitive Search", types.CategoryLogging, pricing.TierSearch, e.inputs.SearchTier)

	e.fees()

	return m.finish(e)
}
