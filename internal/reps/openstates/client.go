package openstates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/phoneyourrep/pyr-backend/internal/reps/provider"
	"golang.org/x/time/rate"
)

// PerPage is the page size for people queries.
const PerPage = 50

// Client is an HTTP client for the state-legislature API.
type Client struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewClient creates a state-legislature API client. The API enforces a
// strict requests-per-second quota, hence the limiter.
func NewClient(apiKey, endpoint string) *Client {
	return &Client{
		apiKey:   apiKey,
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(1), 2),
	}
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	fullURL := fmt.Sprintf("%s%s?%s", c.endpoint, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-API-KEY", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		provider.LogError("openstates", "fetch", err)
		return fmt.Errorf("openstates request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("openstates status %d", resp.StatusCode)
		provider.LogError("openstates", "fetch", err)
		return err
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		provider.LogError("openstates", "decode", err)
		return fmt.Errorf("decode openstates: %w", err)
	}

	return nil
}

// FetchPeopleByState pages through every current legislator for a state.
func (c *Client) FetchPeopleByState(ctx context.Context, state string) ([]osPerson, error) {
	var all []osPerson
	page := 1

	for {
		params := url.Values{}
		params.Set("jurisdiction", state)
		params.Set("per_page", strconv.Itoa(PerPage))
		params.Set("page", strconv.Itoa(page))
		params.Add("include", "offices")
		params.Add("include", "links")

		start := time.Now()
		provider.LogRequest("openstates", "GET", c.endpoint+"/people", map[string]interface{}{
			"jurisdiction": state,
			"page":         page,
		})

		var payload peopleResponse
		if err := c.get(ctx, "/people", params, &payload); err != nil {
			return nil, err
		}

		provider.LogResponse("openstates", http.StatusOK, time.Since(start), len(payload.Results))

		all = append(all, payload.Results...)

		if page >= payload.Pagination.MaxPage || len(payload.Results) == 0 {
			break
		}
		page++
	}

	return all, nil
}

// FetchPeopleByLocation fetches the legislators whose districts contain a
// point.
func (c *Client) FetchPeopleByLocation(ctx context.Context, lat, lng float64) ([]osPerson, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lng", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Add("include", "offices")

	var payload peopleResponse
	if err := c.get(ctx, "/people.geo", params, &payload); err != nil {
		return nil, err
	}
	return payload.Results, nil
}

// FetchChamberTitles returns the display names of a state's upper and lower
// chambers. The lower title is empty for unicameral legislatures.
func (c *Client) FetchChamberTitles(ctx context.Context, state string) (upper, lower string, err error) {
	params := url.Values{}
	params.Add("include", "organizations")

	var payload jurisdictionResponse
	if err := c.get(ctx, "/jurisdictions/"+state, params, &payload); err != nil {
		return "", "", err
	}

	for _, org := range payload.Organizations {
		switch org.Classification {
		case "upper":
			upper = org.Name
		case "lower":
			lower = org.Name
		}
	}
	return upper, lower, nil
}

// HealthCheck verifies the API key with a minimal request.
func (c *Client) HealthCheck(ctx context.Context) error {
	params := url.Values{}
	params.Set("jurisdiction", "NE")
	params.Set("per_page", "1")

	var payload peopleResponse
	return c.get(ctx, "/people", params, &payload)
}
