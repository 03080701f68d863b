package model

import (
	"fmt"
	"sort"
	"sync"

	"cloudcost/core/pricing"
	"cloudcost/core/types"
	"cloudcost/internal/errors"
)

// Registry manages cost model registration
type Registry struct {
	mu     sync.RWMutex
	models map[types.Provider]CostModel
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		models: make(map[types.Provider]CostModel),
	}
}

// Register adds a model to the registry
func (r *Registry) Register(m CostModel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.models[m.Provider()]; exists {
		return fmt.Errorf("cost model already registered: %s", m.Provider())
	}
	r.models[m.Provider()] = m
	return nil
}

// Get returns the model for a provider
func (r *Registry) Get(provider types.Provider) (CostModel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.models[provider]
	if !ok {
		return nil, errors.NotFound("cost model", provider.String())
	}
	return m, nil
}

// Providers returns all registered providers, sorted
func (r *Registry) Providers() []types.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	providers := make([]types.Provider, 0, len(r.models))
	for p := range r.models {
		providers = append(providers, p)
	}
	sort.Slice(providers, func(i, j int) bool { return providers[i] < providers[j] })
	return providers
}

var (
	defaultRegistry     *Registry
	defaultRegistryOnce sync.Once
)

// Default returns the registry holding the built-in AWS and Azure models
func Default() *Registry {
	defaultRegistryOnce.Do(func() {
		defaultRegistry = NewRegistry()
		_ = defaultRegistry.Register(NewAWS(pricing.AWS()))
		_ = defaultRegistry.Register(NewAzure(pricing.Azure()))
	})
	return defaultRegistry
}
