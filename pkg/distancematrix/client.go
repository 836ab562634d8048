package distancematrix

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const (
	DefaultBaseURL = "https://maps.googleapis.com/maps/api/distancematrix"
	DefaultTimeout = 5 * time.Second

	ModeDriving = "driving"
)

// Client is the Google Distance Matrix API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// New creates a new Distance Matrix client.
func New(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("distancematrix: API key is required")
	}

	return &Client{
		apiKey:     apiKey,
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: DefaultTimeout},
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

// Duration requests the travel duration between two coordinates for the
// given mode. One bounded request, no retry.
func (c *Client) Duration(ctx context.Context, origin, dest LatLng, mode string) (time.Duration, error) {
	if mode == "" {
		mode = ModeDriving
	}

	params := url.Values{}
	params.Set("origins", fmt.Sprintf("%f,%f", origin.Lat, origin.Lng))
	params.Set("destinations", fmt.Sprintf("%f,%f", dest.Lat, dest.Lng))
	params.Set("mode", mode)
	params.Set("key", c.apiKey)

	reqURL := fmt.Sprintf("%s/json?%s", c.baseURL, params.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return 0, fmt.Errorf("failed to call Distance Matrix API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("distance matrix API returned status: %d", resp.StatusCode)
	}

	var parsed matrixResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return 0, fmt.Errorf("failed to decode Distance Matrix response: %w", err)
	}

	if parsed.Status != "OK" {
		return 0, fmt.Errorf("distance matrix API error (%s): %s", parsed.Status, parsed.ErrorMessage)
	}
	if len(parsed.Rows) == 0 || len(parsed.Rows[0].Elements) == 0 {
		return 0, fmt.Errorf("distance matrix response has no elements")
	}

	element := parsed.Rows[0].Elements[0]
	if element.Status != "OK" {
		return 0, fmt.Errorf("distance matrix element status: %s", element.Status)
	}

	return time.Duration(element.Duration.Value) * time.Second, nil
}
