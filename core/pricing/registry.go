package pricing

import (
	"cloudcost/core/types"
	"cloudcost/internal/errors"
)

// For returns the built-in table of a provider
func For(provider types.Provider) (*Table, error) {
	switch provider {
	case types.ProviderAWS:
		return AWS(), nil
	case types.ProviderAzure:
		return Azure(), nil
	default:
		return nil, errors.NotFound("price table", provider.String())
	}
}
