package openstates

import (
	"context"
	"time"

	"github.com/phoneyourrep/pyr-backend/internal/reps/provider"
)

// OpenStatesProvider implements the RepProvider interface using the
// state-legislature API.
type OpenStatesProvider struct {
	client *Client
}

// Ensure OpenStatesProvider implements RepProvider.
var _ provider.RepProvider = (*OpenStatesProvider)(nil)

// init registers the provider in the provider registry.
func init() {
	provider.RegisterProvider(provider.ProviderOpenStates, func(cfg provider.Config) (provider.RepProvider, error) {
		return NewProvider(cfg.OpenStatesKey, cfg.OpenStatesEndpoint), nil
	})
}

// NewProvider creates an OpenStatesProvider with the given API key.
func NewProvider(apiKey, endpoint string) *OpenStatesProvider {
	return &OpenStatesProvider{
		client: NewClient(apiKey, endpoint),
	}
}

// Name returns the provider name.
func (p *OpenStatesProvider) Name() string {
	return "openstates"
}

// FetchByAddress is not supported directly by the API; callers geocode first
// and use coordinates. The interface method exists for symmetry and returns
// an empty batch.
func (p *OpenStatesProvider) FetchByAddress(ctx context.Context, address string) ([]provider.NormalizedRep, error) {
	return []provider.NormalizedRep{}, nil
}

// FetchByState fetches every current legislator for a state.
func (p *OpenStatesProvider) FetchByState(ctx context.Context, state string) ([]provider.NormalizedRep, error) {
	start := time.Now()

	people, err := p.client.FetchPeopleByState(ctx, state)
	if err != nil {
		return nil, err
	}

	result := transformBatch(people, state)
	provider.LogTransform("openstates", len(people), len(result), time.Since(start))

	return result, nil
}

// FetchByLocation fetches the legislators whose districts contain a point.
func (p *OpenStatesProvider) FetchByLocation(ctx context.Context, lat, lng float64, state string) ([]provider.NormalizedRep, error) {
	people, err := p.client.FetchPeopleByLocation(ctx, lat, lng)
	if err != nil {
		return nil, err
	}
	return transformBatch(people, state), nil
}

// ChamberTitles exposes the jurisdiction metadata used to refresh a state's
// chamber display names during sync.
func (p *OpenStatesProvider) ChamberTitles(ctx context.Context, state string) (upper, lower string, err error) {
	return p.client.FetchChamberTitles(ctx, state)
}

// HealthCheck verifies the provider can reach the API.
func (p *OpenStatesProvider) HealthCheck(ctx context.Context) error {
	return p.client.HealthCheck(ctx)
}
