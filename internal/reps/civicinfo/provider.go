package civicinfo

import (
	"context"
	"time"

	"github.com/phoneyourrep/pyr-backend/internal/reps/provider"
)

// CivicInfoProvider implements the RepProvider interface using the
// civic-info representatives API. It returns federal (top-level) seats.
type CivicInfoProvider struct {
	client *Client
}

// Ensure CivicInfoProvider implements RepProvider.
var _ provider.RepProvider = (*CivicInfoProvider)(nil)

// init registers the provider in the provider registry.
func init() {
	provider.RegisterProvider(provider.ProviderCivicInfo, func(cfg provider.Config) (provider.RepProvider, error) {
		return NewProvider(cfg.CivicInfoKey, cfg.CivicInfoEndpoint), nil
	})
}

// NewProvider creates a CivicInfoProvider with the given API key.
func NewProvider(apiKey, endpoint string) *CivicInfoProvider {
	return &CivicInfoProvider{
		client: NewClient(apiKey, endpoint),
	}
}

// Name returns the provider name.
func (p *CivicInfoProvider) Name() string {
	return "civicinfo"
}

// FetchByAddress fetches the federal representatives for a street address.
func (p *CivicInfoProvider) FetchByAddress(ctx context.Context, address string) ([]provider.NormalizedRep, error) {
	start := time.Now()

	payload, err := p.client.FetchByAddress(ctx, address, []string{"country"})
	if err != nil {
		return nil, err
	}

	result := transformResponse(payload)
	provider.LogTransform("civicinfo", len(payload.Officials), len(result), time.Since(start))

	return result, nil
}

// FetchByState fetches the federal delegation for a whole state. The API
// resolves a bare state abbreviation to the state's geographic center, which
// covers its senators plus one house district; the sync path iterates
// districts through repeated address queries only when it has addresses, so
// this is the coarse fallback.
func (p *CivicInfoProvider) FetchByState(ctx context.Context, state string) ([]provider.NormalizedRep, error) {
	start := time.Now()

	payload, err := p.client.FetchByAddress(ctx, state, []string{"country"})
	if err != nil {
		return nil, err
	}

	result := transformResponse(payload)
	for i := range result {
		if result[i].State == "" {
			result[i].State = state
		}
	}
	provider.LogTransform("civicinfo", len(payload.Officials), len(result), time.Since(start))

	return result, nil
}

// HealthCheck verifies the provider can reach the civic-info API.
func (p *CivicInfoProvider) HealthCheck(ctx context.Context) error {
	return p.client.HealthCheck(ctx)
}
