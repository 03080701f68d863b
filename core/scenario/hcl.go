package scenario

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"cloudcost/core/types"
	"cloudcost/internal/errors"
)

// fileSchema is the top level of a scenario file
type fileSchema struct {
	Scenarios []scenarioBlock `hcl:"scenario,block"`
}

type scenarioBlock struct {
	Key             string          `hcl:"key,label"`
	Name            *string         `hcl:"name,optional"`
	MonthlyRequests float64         `hcl:"monthly_requests"`
	AvgDuration     *float64        `hcl:"avg_duration,optional"`
	MemoryGB        *float64        `hcl:"memory_gb,optional"`
	StorageGB       float64         `hcl:"storage_gb"`
	TransferGB      float64         `hcl:"transfer_gb"`
	LogVolumeGB     float64         `hcl:"log_volume_gb"`
	Metrics         *float64        `hcl:"metrics,optional"`
	Alarms          *float64        `hcl:"alarms,optional"`
	Users           int64           `hcl:"users"`
	Providers       []providerBlock `hcl:"provider,block"`
}

type providerBlock struct {
	Name         string             `hcl:"name,label"`
	DatabaseTier *float64           `hcl:"database_tier,optional"`
	SearchTier   *float64           `hcl:"search_tier,optional"`
	APITier      *float64           `hcl:"api_tier,optional"`
	RequestUnits *float64           `hcl:"request_units,optional"`
	Fees         map[string]float64 `hcl:"fees,optional"`
}

// evalContext exposes calendar constants so files can write
// monthly_requests = 1500 * days_per_month
func evalContext() *hcl.EvalContext {
	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"days_per_month":  cty.NumberIntVal(30),
			"hours_per_month": cty.NumberIntVal(730),
		},
	}
}

// Parser reads scenario files
type Parser struct {
	parser *hclparse.Parser
}

// NewParser creates a new scenario file parser
func NewParser() *Parser {
	return &Parser{
		parser: hclparse.NewParser(),
	}
}

// LoadFile parses and validates the scenarios in an HCL file
func (p *Parser) LoadFile(path string) ([]Scenario, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Parsing(fmt.Sprintf("failed to read %s", path), err)
	}
	return p.Parse(src, path)
}

// Parse parses and validates scenarios from HCL source. Scenarios are
// returned in file order.
func (p *Parser) Parse(src []byte, filename string) ([]Scenario, error) {
	file, diags := p.parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, errors.Parsing(fmt.Sprintf("failed to parse %s", filename), diags)
	}

	var schema fileSchema
	if diags := gohcl.DecodeBody(file.Body, evalContext(), &schema); diags.HasErrors() {
		return nil, errors.Parsing(fmt.Sprintf("failed to decode %s", filename), diags)
	}
	if len(schema.Scenarios) == 0 {
		return nil, errors.Input(fmt.Sprintf("%s defines no scenarios", filename))
	}

	seen := make(map[string]bool, len(schema.Scenarios))
	scenarios := make([]Scenario, 0, len(schema.Scenarios))
	for _, block := range schema.Scenarios {
		if seen[block.Key] {
			return nil, errors.InvalidScenario(block.Key, "scenario %q is defined more than once", block.Key)
		}
		seen[block.Key] = true

		def, err := block.definition()
		if err != nil {
			return nil, err
		}
		s, err := New(def)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

func (b scenarioBlock) definition() (Definition, error) {
	def := Definition{
		Key:                b.Key,
		MonthlyRequests:    b.MonthlyRequests,
		AvgDurationSeconds: b.AvgDuration,
		MemoryGB:           b.MemoryGB,
		StorageGB:          b.StorageGB,
		TransferGB:         b.TransferGB,
		LogVolumeGB:        b.LogVolumeGB,
		Metrics:            b.Metrics,
		Alarms:             b.Alarms,
		Users:              b.Users,
	}
	if b.Name != nil {
		def.Name = *b.Name
	}
	if len(b.Providers) > 0 {
		def.Providers = make(map[types.Provider]ProviderDefinition, len(b.Providers))
	}
	for _, pb := range b.Providers {
		provider := types.ParseProvider(pb.Name)
		if provider == types.ProviderUnknown {
			return Definition{}, errors.InvalidScenario(b.Key, "unknown provider %q", pb.Name)
		}
		if _, dup := def.Providers[provider]; dup {
			return Definition{}, errors.InvalidScenario(b.Key, "provider %q is configured more than once", pb.Name)
		}
		def.Providers[provider] = ProviderDefinition{
			DatabaseTier: pb.DatabaseTier,
			SearchTier:   pb.SearchTier,
			APITier:      pb.APITier,
			RequestUnits: pb.RequestUnits,
			Fees:         pb.Fees,
		}
	}
	return def, nil
}
