// Package pricing - Immutable per-provider price tables
// Tables are built once, content-hashed, and sealed.
// Cost models only read from them.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"cloudcost/core/determinism"
	"cloudcost/core/pricing/primitives"
	"cloudcost/core/types"
	"cloudcost/internal/errors"
)

// RateKey identifies a unit price within a provider table
type RateKey string

const (
	RateRequest         RateKey = "compute.request"
	RateGBSecond        RateKey = "compute.gb_second"
	RateGatewayRequest  RateKey = "compute.gateway_request"
	RateStorageGB       RateKey = "storage.gb_month"
	RateTransferGB      RateKey = "storage.transfer_gb"
	RatePlatformBase    RateKey = "storage.platform_base"
	RateRequestUnitHour RateKey = "database.ru_hour"
	RateLogIngestionGB  RateKey = "logging.ingestion_gb"
	RateLogRetentionGB  RateKey = "logging.retention_gb"
	RateMetric          RateKey = "logging.metric"
	RateAlarm           RateKey = "logging.alarm"
)

// TierKind identifies a user-count tier schedule
type TierKind string

const (
	TierDatabase     TierKind = "database"
	TierSearch       TierKind = "search"
	TierAPI          TierKind = "api"
	TierRequestUnits TierKind = "request_units"
)

// Fee names a miscellaneous monthly charge in the additional category
type Fee string

const (
	FeeAuth          Fee = "auth"
	FeeNotifications Fee = "notifications"
	FeeWorkflow      Fee = "workflow"
	FeePerimeter     Fee = "perimeter"
	FeeSecrets       Fee = "secrets"
	FeeEgress        Fee = "egress"
)

// Rate is a unit price
type Rate struct {
	Key     RateKey         `json:"key"`
	Service string          `json:"service"`
	Unit    string          `json:"unit"`
	Price   decimal.Decimal `json:"price"`
}

// Tier is a named service whose price steps with user count
type Tier struct {
	Kind     TierKind            `json:"kind"`
	Service  string              `json:"service"`
	Unit     string              `json:"unit"`
	Schedule primitives.Schedule `json:"schedule"`
}

// FeeDefault is the value a fee takes when a scenario does not set it
type FeeDefault struct {
	Fee     Fee             `json:"fee"`
	Service string          `json:"service"`
	Amount  decimal.Decimal `json:"amount"`
}

// Table is a sealed price table for one provider
type Table struct {
	id            string
	provider      types.Provider
	rates         map[RateKey]Rate
	freeRequests  decimal.Decimal
	freeGBSeconds decimal.Decimal
	tiers         map[TierKind]Tier
	fees          []FeeDefault
	hash          string
}

// ID returns the short content identifier of the table
func (t *Table) ID() string { return t.id }

// Hash returns the full content hash
func (t *Table) Hash() string { return t.hash }

// Provider returns the provider the table prices
func (t *Table) Provider() types.Provider { return t.provider }

// FreeRequests returns the monthly request allowance
func (t *Table) FreeRequests() decimal.Decimal { return t.freeRequests }

// FreeGBSeconds returns the monthly GB-second allowance
func (t *Table) FreeGBSeconds() decimal.Decimal { return t.freeGBSeconds }

// Rate returns the rate for a key
func (t *Table) Rate(key RateKey) (Rate, bool) {
	r, ok := t.rates[key]
	return r, ok
}

// MustRate returns the rate for a key or a pricing error naming it
func (t *Table) MustRate(key RateKey) (Rate, error) {
	r, ok := t.rates[key]
	if !ok {
		return Rate{}, errors.Pricing(fmt.Sprintf("%s table has no rate %s", t.provider, key), nil)
	}
	return r, nil
}

// Rates returns all rates sorted by key
func (t *Table) Rates() []Rate {
	return determinism.SortedValues(t.rates)
}

// Tier returns the tier schedule of a kind
func (t *Table) Tier(kind TierKind) (Tier, bool) {
	tier, ok := t.tiers[kind]
	if !ok {
		return Tier{}, false
	}
	tier.Schedule = append(primitives.Schedule(nil), tier.Schedule...)
	return tier, true
}

// Tiers returns all tier schedules sorted by kind
func (t *Table) Tiers() []Tier {
	out := make([]Tier, 0, len(t.tiers))
	for _, kind := range determinism.SortedKeys(t.tiers) {
		tier, _ := t.Tier(kind)
		out = append(out, tier)
	}
	return out
}

// Fees returns the default fees in report order
func (t *Table) Fees() []FeeDefault {
	return append([]FeeDefault(nil), t.fees...)
}

// Builder assembles a Table
type Builder struct {
	provider      types.Provider
	rates         map[RateKey]Rate
	freeRequests  decimal.Decimal
	freeGBSeconds decimal.Decimal
	tiers         map[TierKind]Tier
	fees          []FeeDefault
	errs          []error
}

// NewBuilder creates a builder for a provider table
func NewBuilder(provider types.Provider) *Builder {
	return &Builder{
		provider: provider,
		rates:    make(map[RateKey]Rate),
		tiers:    make(map[TierKind]Tier),
	}
}

// AddRate adds a unit price
func (b *Builder) AddRate(key RateKey, service, unit, price string) *Builder {
	p, err := decimal.NewFromString(price)
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("rate %s: %w", key, err))
		return b
	}
	b.rates[key] = Rate{Key: key, Service: service, Unit: unit, Price: p}
	return b
}

// WithFreeTier sets the monthly request and GB-second allowances
func (b *Builder) WithFreeTier(requests, gbSeconds int64) *Builder {
	b.freeRequests = decimal.NewFromInt(requests)
	b.freeGBSeconds = decimal.NewFromInt(gbSeconds)
	return b
}

// AddTier adds a user-count tier schedule
func (b *Builder) AddTier(kind TierKind, service, unit string, schedule primitives.Schedule) *Builder {
	if err := schedule.Validate(); err != nil {
		b.errs = append(b.errs, fmt.Errorf("tier %s: %w", kind, err))
		return b
	}
	b.tiers[kind] = Tier{Kind: kind, Service: service, Unit: unit, Schedule: schedule}
	return b
}

// AddFee adds a default additional fee
func (b *Builder) AddFee(fee Fee, service, amount string) *Builder {
	a, err := decimal.NewFromString(amount)
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("fee %s: %w", fee, err))
		return b
	}
	b.fees = append(b.fees, FeeDefault{Fee: fee, Service: service, Amount: a})
	return b
}

// Build seals the table
func (b *Builder) Build() (*Table, error) {
	if len(b.errs) > 0 {
		return nil, errors.Pricing(fmt.Sprintf("invalid %s price table", b.provider), b.errs[0])
	}
	for _, r := range b.rates {
		if r.Price.IsNegative() {
			return nil, errors.Pricing(fmt.Sprintf("invalid %s price table", b.provider),
				fmt.Errorf("rate %s is negative", r.Key))
		}
	}

	t := &Table{
		provider:      b.provider,
		rates:         make(map[RateKey]Rate, len(b.rates)),
		freeRequests:  b.freeRequests,
		freeGBSeconds: b.freeGBSeconds,
		tiers:         make(map[TierKind]Tier, len(b.tiers)),
		fees:          append([]FeeDefault(nil), b.fees...),
	}
	for k, r := range b.rates {
		t.rates[k] = r
	}
	for k, tier := range b.tiers {
		tier.Schedule = append(primitives.Schedule(nil), tier.Schedule...)
		t.tiers[k] = tier
	}

	t.hash = t.computeHash()
	t.id = t.hash[:16]
	return t, nil
}

// MustBuild seals the table and panics on invalid static data
func (b *Builder) MustBuild() *Table {
	t, err := b.Build()
	if err != nil {
		panic(err)
	}
	return t
}

// computeHash creates a content hash of every price in the table
func (t *Table) computeHash() string {
	h := determinism.NewHasher().Record(t.provider, t.freeRequests, t.freeGBSeconds)
	for _, r := range t.Rates() {
		h.Record("rate", r.Key, r.Service, r.Price)
	}
	for _, tier := range t.Tiers() {
		for _, bp := range tier.Schedule {
			h.Record("tier", tier.Kind, bp.Name, bp.UpTo, bp.Value)
		}
	}
	for _, f := range t.fees {
		h.Record("fee", f.Fee, f.Service, f.Amount)
	}
	return h.Sum().Hex()
}
