package compare

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudcost/core/model"
	"cloudcost/core/pricing"
	"cloudcost/core/scenario"
	"cloudcost/core/types"
	"cloudcost/internal/errors"
)

// fixedModel returns a preset total per scenario key and counts calls
type fixedModel struct {
	provider types.Provider
	totals   map[string]string
	calls    int
}

func (m *fixedModel) Provider() types.Provider { return m.provider }
func (m *fixedModel) Table() *pricing.Table    { return nil }

func (m *fixedModel) Estimate(s scenario.Scenario) (*types.Breakdown, error) {
	m.calls++
	total, ok := m.totals[s.Key]
	if !ok {
		return nil, errors.InvalidScenario(s.Key, "no total")
	}
	b := types.NewBreakdown(m.provider, s.Key)
	b.Add(&types.CostUnit{ID: "all", Category: types.CategoryCompute, Amount: decimal.RequireFromString(total)})
	return b, nil
}

func keys(ks ...string) []scenario.Scenario {
	out := make([]scenario.Scenario, 0, len(ks))
	for _, k := range ks {
		out = append(out, scenario.MustNew(scenario.Definition{Key: k}))
	}
	return out
}

func TestSavingsSignFollowsTotals(t *testing.T) {
	a := &fixedModel{provider: types.ProviderAWS, totals: map[string]string{"cheaper-b": "200", "cheaper-a": "50", "equal": "80"}}
	b := &fixedModel{provider: types.ProviderAzure, totals: map[string]string{"cheaper-b": "150", "cheaper-a": "100", "equal": "80"}}

	results, err := New(a, b).CompareAll(keys("cheaper-b", "cheaper-a", "equal"))
	require.NoError(t, err)
	require.Len(t, results, 3)

	assert.True(t, results[0].Savings.Equal(decimal.NewFromInt(50)))
	assert.True(t, results[0].SavingsPercent.Equal(decimal.NewFromInt(25)))
	assert.True(t, results[1].Savings.IsNegative())
	assert.True(t, results[1].SavingsPercent.Equal(decimal.NewFromInt(-100)))
	assert.True(t, results[2].Savings.IsZero())
}

func TestCompareKeepsScenarioOrder(t *testing.T) {
	totals := map[string]string{"z": "10", "a": "20", "m": "30"}
	c := New(&fixedModel{provider: types.ProviderAWS, totals: totals}, &fixedModel{provider: types.ProviderAzure, totals: totals})

	var got []string
	for r, err := range c.Compare(keys("z", "a", "m")) {
		require.NoError(t, err)
		got = append(got, r.Scenario.Key)
	}
	assert.Equal(t, []string{"z", "a", "m"}, got)
	assert.Equal(t, types.ProviderAWS, c.Baseline())
	assert.Equal(t, types.ProviderAzure, c.Candidate())
}

func TestCompareIsLazy(t *testing.T) {
	totals := map[string]string{"one": "1", "two": "2", "three": "3"}
	a := &fixedModel{provider: types.ProviderAWS, totals: totals}
	b := &fixedModel{provider: types.ProviderAzure, totals: totals}

	seq := New(a, b).Compare(keys("one", "two", "three"))
	assert.Zero(t, a.calls, "nothing runs before iteration")

	for range seq {
		break
	}
	assert.Equal(t, 1, a.calls)
	assert.Equal(t, 1, b.calls)
}

func TestCompareStopsAfterFirstError(t *testing.T) {
	totals := map[string]string{"ok": "10", "after": "10"}
	a := &fixedModel{provider: types.ProviderAWS, totals: totals}
	b := &fixedModel{provider: types.ProviderAzure, totals: totals}
	c := New(a, b)

	var seen int
	var lastErr error
	for r, err := range c.Compare(keys("ok", "broken", "after")) {
		seen++
		if err != nil {
			assert.Nil(t, r)
			lastErr = err
		}
	}
	assert.Equal(t, 2, seen)
	assert.True(t, errors.IsType(lastErr, errors.TypeInvalidScenario))

	_, err := c.CompareAll(keys("ok", "broken"))
	assert.Error(t, err)
}

func TestAverageIsArithmeticMean(t *testing.T) {
	a := &fixedModel{provider: types.ProviderAWS, totals: map[string]string{"small": "10", "large": "1000"}}
	b := &fixedModel{provider: types.ProviderAzure, totals: map[string]string{"small": "5", "large": "900"}}

	results, err := New(a, b).CompareAll(keys("small", "large"))
	require.NoError(t, err)

	// (50 + 10) / 2, not (1010 - 905) / 1010
	avg, err := AverageSavingsPercent(results)
	require.NoError(t, err)
	assert.True(t, avg.Equal(decimal.NewFromInt(30)), "got %s", avg)

	_, err = AverageSavingsPercent(nil)
	assert.True(t, errors.IsType(err, errors.TypeInput))
}

func TestBuiltinComparison(t *testing.T) {
	aws, err := model.Default().Get(types.ProviderAWS)
	require.NoError(t, err)
	azure, err := model.Default().Get(types.ProviderAzure)
	require.NoError(t, err)

	results, err := New(aws, azure).CompareAll(scenario.Builtin())
	require.NoError(t, err)
	require.Len(t, results, 3)

	want := []string{"-3887.28", "-4642.31", "-1940.68"}
	for i, r := range results {
		assert.Equal(t, want[i], r.SavingsPercent.StringFixed(2), r.Scenario.Key)
		assert.True(t, r.Savings.Equal(r.A.Total.Sub(r.B.Total)))
	}

	avg, err := AverageSavingsPercent(results)
	require.NoError(t, err)
	assert.Equal(t, "-3490.09", avg.StringFixed(2))

	rec := Recommend(avg, aws.Provider(), azure.Provider())
	assert.Equal(t, types.ProviderAWS, rec.Favored)
	assert.Equal(t, "AWS may be more cost-effective", rec.Message)
}

func TestRecommend(t *testing.T) {
	tests := []struct {
		avg     string
		favored types.Provider
		strong  bool
		message string
	}{
		{"12.5", types.ProviderAzure, true, "Azure is more cost-effective across all scenarios"},
		{"5.01", types.ProviderAzure, true, "Azure is more cost-effective across all scenarios"},
		{"5", types.ProviderAzure, false, "Azure offers moderate savings"},
		{"0.1", types.ProviderAzure, false, "Azure offers moderate savings"},
		{"0", types.ProviderAWS, false, "AWS may be more cost-effective"},
		{"-40", types.ProviderAWS, false, "AWS may be more cost-effective"},
	}
	for _, tt := range tests {
		t.Run(tt.avg, func(t *testing.T) {
			rec := Recommend(decimal.RequireFromString(tt.avg), types.ProviderAWS, types.ProviderAzure)
			assert.Equal(t, tt.favored, rec.Favored)
			assert.Equal(t, tt.strong, rec.Strong)
			assert.Equal(t, tt.message, rec.Message)
		})
	}
}
