package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

const (
	DefaultBaseURL  = "https://maps.googleapis.com/maps/api/place"
	DefaultTimeout  = 5 * time.Second
	DefaultCacheTTL = 10 * time.Minute
	DefaultCacheLen = 256
)

// ErrNoResults is returned when the lookup succeeds but finds no candidate.
var ErrNoResults = errors.New("places: no candidates found")

// Client is the Google Places "find place from text" API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	cache      *expirable.LRU[string, Place]
}

// New creates a new Places client.
func New(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("places: API key is required")
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
		cache:      expirable.NewLRU[string, Place](DefaultCacheLen, nil, DefaultCacheTTL),
	}, nil
}

// WithBaseURL overrides the default API base URL.
func (c *Client) WithBaseURL(baseURL string) *Client {
	c.baseURL = baseURL
	return c
}

// WithTimeout overrides the per-request timeout.
func (c *Client) WithTimeout(d time.Duration) *Client {
	c.httpClient.Timeout = d
	return c
}

// FindPlace resolves a free-text query to a single place. Results are
// cached per normalized query for a short TTL.
func (c *Client) FindPlace(ctx context.Context, query string) (Place, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return Place{}, fmt.Errorf("places: query is required")
	}

	cacheKey := strings.ToLower(query)
	if place, ok := c.cache.Get(cacheKey); ok {
		return place, nil
	}

	params := url.Values{}
	params.Set("input", query)
	params.Set("inputtype", "textquery")
	params.Set("fields", "name,geometry")
	params.Set("key", c.apiKey)

	reqURL := fmt.Sprintf("%s/findplacefromtext/json?%s", c.baseURL, params.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return Place{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return Place{}, fmt.Errorf("failed to call Places API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Place{}, fmt.Errorf("places API returned status: %d", resp.StatusCode)
	}

	var parsed findPlaceResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Place{}, fmt.Errorf("failed to decode Places response: %w", err)
	}

	// ZERO_RESULTS is a clean miss; any other non-OK status is an API
	// error even though those responses also carry no candidates.
	if parsed.Status == "ZERO_RESULTS" || (parsed.Status == "OK" && len(parsed.Candidates) == 0) {
		return Place{}, ErrNoResults
	}
	if parsed.Status != "OK" {
		return Place{}, fmt.Errorf("places API error (%s): %s", parsed.Status, parsed.ErrorMessage)
	}

	candidate := parsed.Candidates[0]
	place := Place{
		Name: candidate.Name,
		Lat:  candidate.Geometry.Location.Lat,
		Lng:  candidate.Geometry.Location.Lng,
	}

	c.cache.Add(cacheKey, place)
	return place, nil
}
