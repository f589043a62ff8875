package civicinfo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/phoneyourrep/pyr-backend/internal/reps/provider"
	"golang.org/x/time/rate"
)

// Client is an HTTP client for the civic-info representatives API.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a civic-info API client. Requests are rate limited to
// stay under the API's per-second quota.
func NewClient(apiKey, endpoint string) *Client {
	return &Client{
		apiKey:   apiKey,
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(5), 1),
	}
}

// FetchByAddress fetches the representatives responsible for an address,
// optionally filtered by government levels (e.g. "country").
func (c *Client) FetchByAddress(ctx context.Context, address string, levels []string) (*civicResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("address", address)
	params.Set("key", c.apiKey)
	for _, lvl := range levels {
		params.Add("levels", lvl)
	}

	fullURL := fmt.Sprintf("%s?%s", c.endpoint, params.Encode())

	start := time.Now()
	provider.LogRequest("civicinfo", "GET", c.endpoint, map[string]interface{}{
		"address": address,
		"levels":  levels,
	})

	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		provider.LogError("civicinfo", "fetch", err)
		return nil, fmt.Errorf("civicinfo request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("civicinfo status %d", resp.StatusCode)
		provider.LogError("civicinfo", "fetch", err)
		return nil, err
	}

	var payload civicResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		provider.LogError("civicinfo", "decode", err)
		return nil, fmt.Errorf("decode civicinfo: %w", err)
	}

	provider.LogResponse("civicinfo", resp.StatusCode, time.Since(start), len(payload.Officials))

	return &payload, nil
}

// HealthCheck verifies the API key is valid with a minimal request.
func (c *Client) HealthCheck(ctx context.Context) error {
	_, err := c.FetchByAddress(ctx, "Washington DC", []string{"country"})
	return err
}
