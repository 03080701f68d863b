// Package types defines core domain types shared across all layers.
// This package contains NO pricing logic - only type definitions and totals.
package types

import "strings"

// Provider represents a cloud provider
type Provider string

const (
	ProviderAWS     Provider = "aws"
	ProviderAzure   Provider = "azure"
	ProviderUnknown Provider = "unknown"
)

// String returns the string representation of the provider
func (p Provider) String() string {
	return string(p)
}

// DisplayName returns the name used in reports
func (p Provider) DisplayName() string {
	switch p {
	case ProviderAWS:
		return "AWS"
	case ProviderAzure:
		return "Azure"
	default:
		return strings.ToUpper(string(p))
	}
}

// IsValid checks if the provider is a known provider
func (p Provider) IsValid() bool {
	switch p {
	case ProviderAWS, ProviderAzure:
		return true
	default:
		return false
	}
}

// ParseProvider converts a user-supplied name into a Provider
func ParseProvider(name string) Provider {
	p := Provider(strings.ToLower(strings.TrimSpace(name)))
	if p.IsValid() {
		return p
	}
	return ProviderUnknown
}

// Category is a cost category reported in a breakdown
type Category string

const (
	CategoryCompute    Category = "compute"
	CategoryStorage    Category = "storage"
	CategoryDatabase   Category = "database"
	CategoryLogging    Category = "logging"
	CategoryAdditional Category = "additional"
)

// Categories lists every category in report order
var Categories = []Category{
	CategoryCompute,
	CategoryStorage,
	CategoryDatabase,
	CategoryLogging,
	CategoryAdditional,
}

// String returns the string representation
func (c Category) String() string {
	return string(c)
}

// Title returns the capitalized category name
func (c Category) Title() string {
	if c == "" {
		return ""
	}
	return strings.ToUpper(string(c[:1])) + string(c[1:])
}
