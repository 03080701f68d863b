package scenario

import (
	"cloudcost/core/types"
	"cloudcost/internal/errors"
)

func ptr(f float64) *float64 { return &f }

// Builtin returns the low, medium and high usage scenarios in that order
func Builtin() []Scenario {
	return []Scenario{
		MustNew(Definition{
			Key:                "low_usage",
			Name:               "Low Usage (100 DAU)",
			MonthlyRequests:    50_000,
			AvgDurationSeconds: ptr(2),
			MemoryGB:           ptr(0.5),
			StorageGB:          50,
			TransferGB:         100,
			LogVolumeGB:        10,
			Metrics:            ptr(50),
			Alarms:             ptr(10),
			Users:              100,
		}),
		MustNew(Definition{
			Key:                "medium_usage",
			Name:               "Medium Usage (1K DAU)",
			MonthlyRequests:    1_500_000,
			AvgDurationSeconds: ptr(2),
			MemoryGB:           ptr(0.5),
			StorageGB:          200,
			TransferGB:         500,
			LogVolumeGB:        100,
			Metrics:            ptr(200),
			Alarms:             ptr(25),
			Users:              1_000,
			Providers: map[types.Provider]ProviderDefinition{
				types.ProviderAWS: {Fees: map[string]float64{
					"auth":          27.5,
					"notifications": 12,
					"perimeter":     15,
					"egress":        89,
				}},
				types.ProviderAzure: {Fees: map[string]float64{
					"auth":      15,
					"workflow":  28,
					"perimeter": 45,
					"secrets":   3,
					"egress":    89,
				}},
			},
		}),
		MustNew(Definition{
			Key:                "high_usage",
			Name:               "High Usage (10K DAU)",
			MonthlyRequests:    15_000_000,
			AvgDurationSeconds: ptr(3),
			MemoryGB:           ptr(1),
			StorageGB:          1_000,
			TransferGB:         5_000,
			LogVolumeGB:        1_000,
			Metrics:            ptr(1_000),
			Alarms:             ptr(50),
			Users:              10_000,
			Providers: map[types.Provider]ProviderDefinition{
				types.ProviderAWS: {Fees: map[string]float64{
					"auth":          275,
					"notifications": 89,
					"perimeter":     3_000, // Shield Advanced
					"egress":        856,
				}},
				types.ProviderAzure: {Fees: map[string]float64{
					"auth":      150,
					"workflow":  234,
					"perimeter": 334,
					"secrets":   12,
					"egress":    856,
				}},
			},
		}),
	}
}

// Find returns the scenario with the given key
func Find(scenarios []Scenario, key string) (Scenario, error) {
	for _, s := range scenarios {
		if s.Key == key {
			return s, nil
		}
	}
	return Scenario{}, errors.NotFound("scenario", key)
}
