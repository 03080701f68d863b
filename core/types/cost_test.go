package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudcost/internal/errors"
)

func unit(id string, c Category, amount string) *CostUnit {
	return &CostUnit{ID: id, Category: c, Amount: decimal.RequireFromString(amount)}
}

func TestBreakdownAdd(t *testing.T) {
	b := NewBreakdown(ProviderAWS, "low_usage")
	b.Add(unit("lambda", CategoryCompute, "1.5"))
	b.Add(unit("gateway", CategoryCompute, "0.25"))
	b.Add(unit("s3", CategoryStorage, "2"))
	b.Add(unit("docdb", CategoryDatabase, "65"))
	b.Add(unit("logs", CategoryLogging, "10"))
	b.Add(unit("waf", CategoryAdditional, "6"))

	assert.Equal(t, CurrencyUSD, b.Currency)
	assert.True(t, b.Compute.Equal(decimal.RequireFromString("1.75")))
	assert.True(t, b.Total.Equal(decimal.RequireFromString("84.75")))
	assert.True(t, b.Total.Equal(b.Sum()))
	assert.Len(t, b.UnitsFor(CategoryCompute), 2)
	assert.Empty(t, NewBreakdown(ProviderAWS, "x").UnitsFor(CategoryCompute))
	assert.True(t, b.SubTotal("bogus").IsZero())

	pct, err := b.LoggingPercent()
	require.NoError(t, err)
	assert.Equal(t, "11.80", pct.StringFixed(2))
}

func TestLoggingPercentOnZeroTotal(t *testing.T) {
	b := NewBreakdown(ProviderAzure, "empty")
	_, err := b.LoggingPercent()
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.TypeInvalidScenario))
	assert.Contains(t, err.Error(), "Azure")
}

func TestParseProvider(t *testing.T) {
	assert.Equal(t, ProviderAWS, ParseProvider(" AWS "))
	assert.Equal(t, ProviderAzure, ParseProvider("azure"))
	assert.Equal(t, ProviderUnknown, ParseProvider("gcp"))
	assert.False(t, ProviderUnknown.IsValid())
	assert.Equal(t, "Azure", ProviderAzure.DisplayName())
	assert.Equal(t, "GCP", Provider("gcp").DisplayName())
}

func TestCategoryTitle(t *testing.T) {
	assert.Equal(t, "Compute", CategoryCompute.Title())
	assert.Equal(t, "Additional", CategoryAdditional.Title())
	assert.Equal(t, "", Category("").Title())
	assert.Len(t, Categories, 5)
}
