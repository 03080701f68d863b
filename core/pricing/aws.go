// Package pricing - AWS serverless price table
// Lambda + API Gateway, S3 + CloudFront, DocumentDB, CloudWatch + OpenSearch.
package pricing

import (
	"sync"

	"github.com/shopspring/decimal"

	"cloudcost/core/pricing/primitives"
	"cloudcost/core/types"
)

var (
	awsOnce  sync.Once
	awsTable *Table
)

// AWS returns the sealed AWS price table
func AWS() *Table {
	awsOnce.Do(func() {
		awsTable = NewBuilder(types.ProviderAWS).
			WithFreeTier(1_000_000, 400_000).
			AddRate(RateRequest, "Lambda", "request", "0.0000002").
			AddRate(RateGBSecond, "Lambda", "GB-second", "0.0000166667").
			AddRate(RateGatewayRequest, "API Gateway", "request", "0.0000035").
			AddRate(RateStorageGB, "S3", "GB-month", "0.023").
			AddRate(RateTransferGB, "CloudFront", "GB", "0.085").
			AddRate(RateLogIngestionGB, "CloudWatch Logs", "GB", "0.50").
			AddRate(RateLogRetentionGB, "CloudWatch Logs", "GB-month", "0.03").
			AddRate(RateMetric, "CloudWatch", "metric-month", "0.30").
			AddRate(RateAlarm, "CloudWatch", "alarm-month", "0.10").
			AddTier(TierDatabase, "DocumentDB", "month", primitives.Schedule{
				{Name: "t3.medium", UpTo: 100, Value: decimal.NewFromInt(65)},
				{Name: "r5.large", UpTo: 1000, Value: decimal.NewFromInt(156)},
				{Name: "r5.2xlarge cluster", Value: decimal.NewFromInt(625)},
			}).
			AddTier(TierSearch, "OpenSearch", "month", primitives.Schedule{
				{Name: "t3.small", UpTo: 100, Value: decimal.NewFromInt(28)},
				{Name: "m5.large + r5.large", UpTo: 1000, Value: decimal.NewFromInt(145)},
				{Name: "c5.2xlarge cluster", Value: decimal.NewFromInt(567)},
			}).
			AddFee(FeeAuth, "Cognito", "0").
			AddFee(FeeNotifications, "SNS/SES", "2").
			AddFee(FeePerimeter, "WAF", "6").
			AddFee(FeeEgress, "Data Transfer", "18").
			MustBuild()
	})
	return awsTable
}
