package provider

import (
	"os"
	"strings"
)

// ProviderType identifies an external representative source.
type ProviderType string

const (
	ProviderCivicInfo  ProviderType = "civicinfo"
	ProviderOpenStates ProviderType = "openstates"
)

// Config holds configuration for the external representative sources.
type Config struct {
	// CivicInfo-specific config
	CivicInfoKey      string
	CivicInfoEndpoint string

	// OpenStates-specific config
	OpenStatesKey      string
	OpenStatesEndpoint string
}

const (
	// DefaultCivicInfoEndpoint is the default civic-info representatives endpoint.
	DefaultCivicInfoEndpoint = "https://www.googleapis.com/civicinfo/v2/representatives"

	// DefaultOpenStatesEndpoint is the default state-legislature API endpoint.
	DefaultOpenStatesEndpoint = "https://v3.openstates.org"
)

// LoadFromEnv loads provider configuration from environment variables.
//
// Environment variables:
//   - CIVIC_INFO_KEY: API key for the civic-info API
//   - CIVIC_INFO_ENDPOINT: override for the civic-info endpoint
//   - OPEN_STATES_KEY: API key for the state-legislature API
//   - OPEN_STATES_ENDPOINT: override for the state-legislature endpoint
func LoadFromEnv() Config {
	civicEndpoint := strings.TrimSpace(os.Getenv("CIVIC_INFO_ENDPOINT"))
	if civicEndpoint == "" {
		civicEndpoint = DefaultCivicInfoEndpoint
	}

	osEndpoint := strings.TrimSpace(os.Getenv("OPEN_STATES_ENDPOINT"))
	if osEndpoint == "" {
		osEndpoint = DefaultOpenStatesEndpoint
	}

	return Config{
		CivicInfoKey:       os.Getenv("CIVIC_INFO_KEY"),
		CivicInfoEndpoint:  civicEndpoint,
		OpenStatesKey:      os.Getenv("OPEN_STATES_KEY"),
		OpenStatesEndpoint: osEndpoint,
	}
}

// Validate checks that the configuration is valid for the selected provider.
func (c Config) Validate(providerType ProviderType) error {
	switch providerType {
	case ProviderCivicInfo:
		if c.CivicInfoKey == "" {
			return ErrMissingCivicInfoKey
		}
	case ProviderOpenStates:
		if c.OpenStatesKey == "" {
			return ErrMissingOpenStatesKey
		}
	}
	return nil
}
