// Package scenario defines the usage scenarios that cost models price.
// A Scenario is an immutable value: build it with New, never mutate it.
package scenario

import (
	"fmt"
	"math"
	"sort"

	"github.com/shopspring/decimal"

	"cloudcost/core/pricing"
	"cloudcost/core/types"
	"cloudcost/internal/errors"
)

// Defaults applied when a definition leaves a field unset.
// Duration and memory follow a 128 MB function running 100 ms.
const (
	DefaultAvgDurationSeconds = 0.1
	DefaultMemoryGB           = 0.125
	DefaultMetrics            = 0
	DefaultAlarms             = 0
)

// knownFees lists every fee a scenario may override
var knownFees = map[pricing.Fee]bool{
	pricing.FeeAuth:          true,
	pricing.FeeNotifications: true,
	pricing.FeeWorkflow:      true,
	pricing.FeePerimeter:     true,
	pricing.FeeSecrets:       true,
	pricing.FeeEgress:        true,
}

// Inputs holds provider-specific fixed prices a scenario may pin.
// A nil field means the tier is chosen by user count.
type Inputs struct {
	DatabaseTier *decimal.Decimal
	SearchTier   *decimal.Decimal
	APITier      *decimal.Decimal
	RequestUnits *decimal.Decimal
	Fees         map[pricing.Fee]decimal.Decimal
}

// Fee returns the scenario override for a fee
func (in Inputs) Fee(fee pricing.Fee) (decimal.Decimal, bool) {
	v, ok := in.Fees[fee]
	return v, ok
}

// Scenario is one usage tier to estimate
type Scenario struct {
	Key                string
	Name               string
	MonthlyRequests    decimal.Decimal
	AvgDurationSeconds decimal.Decimal
	MemoryGB           decimal.Decimal
	StorageGB          decimal.Decimal
	TransferGB         decimal.Decimal
	LogVolumeGB        decimal.Decimal
	Metrics            decimal.Decimal
	Alarms             decimal.Decimal
	Users              int64

	// Defaults lists the fields that took a documented default
	Defaults []string

	inputs map[types.Provider]Inputs
}

// Inputs returns the pinned prices for a provider
func (s Scenario) Inputs(provider types.Provider) Inputs {
	return s.inputs[provider]
}

// Providers returns the providers with pinned prices, sorted
func (s Scenario) Providers() []types.Provider {
	out := make([]types.Provider, 0, len(s.inputs))
	for p := range s.inputs {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// ProviderDefinition is the raw form of Inputs
type ProviderDefinition struct {
	DatabaseTier *float64
	SearchTier   *float64
	APITier      *float64
	RequestUnits *float64
	Fees         map[string]float64
}

// Definition is the raw, unvalidated form of a Scenario
type Definition struct {
	Key                string
	Name               string
	MonthlyRequests    float64
	AvgDurationSeconds *float64
	MemoryGB           *float64
	StorageGB          float64
	TransferGB         float64
	LogVolumeGB        float64
	Metrics            *float64
	Alarms             *float64
	Users              int64
	Providers          map[types.Provider]ProviderDefinition
}

// New validates a definition and builds the Scenario
func New(def Definition) (Scenario, error) {
	if def.Key == "" {
		return Scenario{}, errors.InvalidScenario("", "scenario key is required")
	}
	v := validator{key: def.Key}

	s := Scenario{
		Key:             def.Key,
		Name:            def.Name,
		MonthlyRequests: v.amount("monthly_requests", def.MonthlyRequests),
		StorageGB:       v.amount("storage_gb", def.StorageGB),
		TransferGB:      v.amount("transfer_gb", def.TransferGB),
		LogVolumeGB:     v.amount("log_volume_gb", def.LogVolumeGB),
		Users:           def.Users,
		inputs:          make(map[types.Provider]Inputs, len(def.Providers)),
	}
	if s.Name == "" {
		s.Name = def.Key
	}
	if def.Users < 0 {
		v.fail("users must be non-negative, got %d", def.Users)
	}

	s.AvgDurationSeconds = v.optional(&s, "avg_duration", def.AvgDurationSeconds, DefaultAvgDurationSeconds)
	s.MemoryGB = v.optional(&s, "memory_gb", def.MemoryGB, DefaultMemoryGB)
	s.Metrics = v.optional(&s, "metrics", def.Metrics, DefaultMetrics)
	s.Alarms = v.optional(&s, "alarms", def.Alarms, DefaultAlarms)

	for provider, pd := range def.Providers {
		if !provider.IsValid() {
			v.fail("unknown provider %q", provider)
			continue
		}
		prefix := provider.String() + "."
		in := Inputs{
			DatabaseTier: v.pointer(prefix+"database_tier", pd.DatabaseTier),
			SearchTier:   v.pointer(prefix+"search_tier", pd.SearchTier),
			APITier:      v.pointer(prefix+"api_tier", pd.APITier),
			RequestUnits: v.pointer(prefix+"request_units", pd.RequestUnits),
		}
		if len(pd.Fees) > 0 {
			in.Fees = make(map[pricing.Fee]decimal.Decimal, len(pd.Fees))
			for name, amount := range pd.Fees {
				fee := pricing.Fee(name)
				if !knownFees[fee] {
					v.fail("%sfees: unknown fee %q", prefix, name)
					continue
				}
				in.Fees[fee] = v.amount(prefix+"fees."+name, amount)
			}
		}
		s.inputs[provider] = in
	}

	if v.err != nil {
		return Scenario{}, v.err
	}
	return s, nil
}

// MustNew builds a Scenario from static data and panics on invalid input
func MustNew(def Definition) Scenario {
	s, err := New(def)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate re-checks the invariants of a Scenario. Scenarios from New
// always pass; literal Scenario values may not.
func (s Scenario) Validate() error {
	if s.Key == "" {
		return errors.InvalidScenario("", "scenario key is required")
	}
	fields := []struct {
		name  string
		value decimal.Decimal
	}{
		{"monthly_requests", s.MonthlyRequests},
		{"avg_duration", s.AvgDurationSeconds},
		{"memory_gb", s.MemoryGB},
		{"storage_gb", s.StorageGB},
		{"transfer_gb", s.TransferGB},
		{"log_volume_gb", s.LogVolumeGB},
		{"metrics", s.Metrics},
		{"alarms", s.Alarms},
	}
	for _, f := range fields {
		if f.value.IsNegative() {
			return errors.InvalidScenario(s.Key, "%s must be non-negative, got %s", f.name, f.value)
		}
	}
	if s.Users < 0 {
		return errors.InvalidScenario(s.Key, "users must be non-negative, got %d", s.Users)
	}
	for provider, in := range s.inputs {
		for name, p := range map[string]*decimal.Decimal{
			"database_tier": in.DatabaseTier,
			"search_tier":   in.SearchTier,
			"api_tier":      in.APITier,
			"request_units": in.RequestUnits,
		} {
			if p != nil && p.IsNegative() {
				return errors.InvalidScenario(s.Key, "%s.%s must be non-negative, got %s", provider, name, p)
			}
		}
		for fee, amount := range in.Fees {
			if amount.IsNegative() {
				return errors.InvalidScenario(s.Key, "%s.fees.%s must be non-negative, got %s", provider, fee, amount)
			}
		}
	}
	return nil
}

// validator collects the first invalid field of a definition
type validator struct {
	key string
	err error
}

func (v *validator) fail(format string, args ...interface{}) {
	if v.err == nil {
		v.err = errors.InvalidScenario(v.key, format, args...)
	}
}

func (v *validator) amount(field string, value float64) decimal.Decimal {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		v.fail("%s must be a finite number", field)
		return decimal.Zero
	}
	if value < 0 {
		v.fail("%s must be non-negative, got %s", field, formatFloat(value))
		return decimal.Zero
	}
	return decimal.NewFromFloat(value)
}

func (v *validator) optional(s *Scenario, field string, value *float64, def float64) decimal.Decimal {
	if value == nil {
		s.Defaults = append(s.Defaults, fmt.Sprintf("%s defaulted to %s", field, formatFloat(def)))
		return decimal.NewFromFloat(def)
	}
	return v.amount(field, *value)
}

func (v *validator) pointer(field string, value *float64) *decimal.Decimal {
	if value == nil {
		return nil
	}
	d := v.amount(field, *value)
	return &d
}

func formatFloat(f float64) string {
	return decimal.NewFromFloat(f).String()
}
