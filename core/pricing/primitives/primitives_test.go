package primitives

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudcost/core/types"
)

var meter = Meter{
	ID:       "lambda-requests",
	Label:    "Lambda requests",
	Category: types.CategoryCompute,
	Service:  "Lambda",
	Measure:  "requests",
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestFreeTier(t *testing.T) {
	tests := []struct {
		name     string
		quantity string
		free     string
		rate     string
		billable string
		amount   string
	}{
		{name: "under allowance", quantity: "50000", free: "1000000", rate: "0.0000002", billable: "0", amount: "0"},
		{name: "exactly at allowance", quantity: "1000000", free: "1000000", rate: "0.0000002", billable: "0", amount: "0"},
		{name: "over allowance", quantity: "1500000", free: "1000000", rate: "0.0000002", billable: "500000", amount: "0.1"},
		{name: "no allowance", quantity: "10", free: "0", rate: "0.5", billable: "10", amount: "5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			unit := FreeTier(meter, d(tt.quantity), d(tt.free), d(tt.rate))
			assert.True(t, unit.Quantity.Equal(d(tt.billable)), "billable %s", unit.Quantity)
			assert.True(t, unit.Amount.Equal(d(tt.amount)), "amount %s", unit.Amount)
			assert.Equal(t, types.CategoryCompute, unit.Category)
			assert.NotEmpty(t, unit.Formula)
		})
	}
}

func TestGBSeconds(t *testing.T) {
	got := GBSeconds(d("50000"), d("2"), d("0.5"))
	assert.True(t, got.Equal(d("50000")))

	got = GBSeconds(d("15000000"), d("3"), d("1"))
	assert.True(t, got.Equal(d("45000000")))
}

func TestDurationBillsAboveAllowance(t *testing.T) {
	unit := Duration(meter, d("1500000"), d("400000"), d("0.0000166667"))
	assert.True(t, unit.Amount.Equal(d("18.33337")), "got %s", unit.Amount)
}

func TestFixedAndHourly(t *testing.T) {
	fixed := Fixed(meter, d("65"))
	assert.True(t, fixed.Amount.Equal(d("65")))
	assert.True(t, fixed.Quantity.Equal(decimal.NewFromInt(1)))

	hourly := Hourly(meter, d("1000"), d("0.008"))
	assert.True(t, hourly.Amount.Equal(d("5840")), "got %s", hourly.Amount)

	perUnit := PerUnit(meter, d("50"), d("0.023"))
	assert.True(t, perUnit.Amount.Equal(d("1.15")))
}

func TestScheduleSelect(t *testing.T) {
	schedule := Schedule{
		{Name: "small", UpTo: 100, Value: d("65")},
		{Name: "medium", UpTo: 1000, Value: d("156")},
		{Name: "large", Value: d("625")},
	}
	require.NoError(t, schedule.Validate())

	tests := []struct {
		users int64
		want  string
	}{
		{0, "small"},
		{100, "small"},
		{101, "medium"},
		{1000, "medium"},
		{1001, "large"},
		{1000000, "large"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, schedule.Select(tt.users).Name, "users=%d", tt.users)
	}

	assert.Equal(t, Breakpoint{}, Schedule{}.Select(10))
}

func TestScheduleValidate(t *testing.T) {
	tests := []struct {
		name     string
		schedule Schedule
	}{
		{name: "empty", schedule: Schedule{}},
		{name: "unlimited in the middle", schedule: Schedule{{Name: "a"}, {Name: "b"}}},
		{name: "bounded last", schedule: Schedule{{Name: "a", UpTo: 10}}},
		{name: "decreasing", schedule: Schedule{{Name: "a", UpTo: 10}, {Name: "b", UpTo: 5}, {Name: "c"}}},
		{name: "negative", schedule: Schedule{{Name: "a", Value: d("-1")}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.schedule.Validate())
		})
	}
}
