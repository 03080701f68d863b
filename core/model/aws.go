package model

import (
	"cloudcost/core/pricing"
	"cloudcost/core/pricing/primitives"
	"cloudcost/core/scenario"
	"cloudcost/core/types"
)

// AWSModel prices Lambda + API Gateway, S3 + CloudFront, DocumentDB,
// CloudWatch + OpenSearch and the additional AWS services
type AWSModel struct {
	base
}

// NewAWS creates an AWS model over a price table
func NewAWS(table *pricing.Table) *AWSModel {
	return &AWSModel{base: newBase(table)}
}

// Estimate prices a scenario on AWS
func (m *AWSModel) Estimate(s scenario.Scenario) (*types.Breakdown, error) {
	e, err := m.begin(s)
	if err != nil {
		return nil, err
	}
	t := m.table

	// Lambda + API Gateway
	if r, ok := e.rate(pricing.RateRequest); ok {
		e.out.Add(primitives.Invocations(e.meter("lambda-requests", "Lambda requests", types.CategoryCompute, r),
			s.MonthlyRequests, t.FreeRequests(), r.Price))
	}
	if r, ok := e.rate(pricing.RateGBSecond); ok {
		gbs := primitives.GBSeconds(s.MonthlyRequests, s.AvgDurationSeconds, s.MemoryGB)
		e.out.Add(primitives.Duration(e.meter("lambda-duration", "Lambda duration", types.CategoryCompute, r),
			gbs, t.FreeGBSeconds(), r.Price))
	}
	e.perUnit("api-gateway-requests", "API Gateway requests", types.CategoryCompute, pricing.RateGatewayRequest, s.MonthlyRequests)

	// S3 + CloudFront
	e.perUnit("s3-storage", "S3 storage", types.CategoryStorage, pricing.RateStorageGB, s.StorageGB)
	e.perUnit("cloudfront-transfer", "CloudFront transfer", types.CategoryStorage, pricing.RateTransferGB, s.TransferGB)

	// DocumentDB
	e.fixedTier("documentdb", "DocumentDB instance", types.CategoryDatabase, pricing.TierDatabase, e.inputs.DatabaseTier)

	// CloudWatch + OpenSearch
	e.perUnit("cloudwatch-ingestion", "CloudWatch log ingestion", types.CategoryLogging, pricing.RateLogIngestionGB, s.LogVolumeGB)
	e.perUnit("cloudwatch-storage", "CloudWatch log storage", types.CategoryLogging, pricing.RateLogRetentionGB, s.LogVolumeGB)
	e.perUnit("cloudwatch-metrics", "CloudWatch metrics", types.CategoryLogging, pricing.RateMetric, s.Metrics)
	e.perUnit("cloudwatch-alarms", "CloudWatch alarms", types.CategoryLogging, pricing.RateAlarm, s.Alarms)
	e.fixedTier("opensearch", "OpenSearch domain", types.CategoryLogging, pricing.TierSearch, e.inputs.SearchTier)

	e.fees()

	return m.finish(e)
}
