package provider

import (
	"context"
	"errors"
	"fmt"
)

// Common errors
var (
	ErrMissingCivicInfoKey  = errors.New("CIVIC_INFO_KEY environment variable is required for the civicinfo provider")
	ErrMissingOpenStatesKey = errors.New("OPEN_STATES_KEY environment variable is required for the openstates provider")
	ErrUnknownProvider      = errors.New("unknown provider type")
)

// RepProvider is the interface every external representative source
// implements. It hides the differences between the civic-info API (federal
// seats) and the state-legislature API so the reconciler only ever sees
// NormalizedRep records.
type RepProvider interface {
	// Name returns the provider name for logging purposes.
	Name() string

	// FetchByAddress fetches the representatives responsible for a street
	// address.
	FetchByAddress(ctx context.Context, address string) ([]NormalizedRep, error)

	// FetchByState fetches every representative the source knows for a state,
	// given its 2-letter abbreviation. Used by the sync path.
	FetchByState(ctx context.Context, state string) ([]NormalizedRep, error)

	// HealthCheck verifies the provider can connect to its data source.
	HealthCheck(ctx context.Context) error
}

// providerRegistry holds registered provider constructors, keyed by type.
// Providers register themselves from init() so new sources need no change
// here.
var providerRegistry = make(map[ProviderType]func(Config) (RepProvider, error))

// RegisterProvider registers a provider constructor for a given provider type.
func RegisterProvider(providerType ProviderType, constructor func(Config) (RepProvider, error)) {
	providerRegistry[providerType] = constructor
}

// NewProvider creates a RepProvider based on the configuration.
func NewProvider(cfg Config, providerType ProviderType) (RepProvider, error) {
	if err := cfg.Validate(providerType); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	constructor, ok := providerRegistry[providerType]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, providerType)
	}

	return constructor(cfg)
}
