// Package places is a small client for a hosted place text-search API.
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
)

// DefaultBaseURL is the Google Places web service root.
const DefaultBaseURL = "https://maps.googleapis.com/maps/api/place"

var ErrMissingAPIKey = errors.New("places API key is not configured")

// Place is one search hit.
type Place struct {
	Name      string
	Address   string
	Latitude  float64
	Longitude float64
	Rating    float64
	PhotoRefs []string
}

// Client calls the text-search endpoint.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a client. An empty baseURL selects DefaultBaseURL and a nil
// httpClient gets a 10 second timeout.
func NewClient(baseURL, apiKey string, httpClient *http.Client) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		apiKey:     apiKey,
		httpClient: httpClient,
	}
}

type searchResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Name             string  `json:"name"`
		FormattedAddress string  `json:"formatted_address"`
		Rating           float64 `json:"rating"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
		Photos []struct {
			PhotoReference string `json:"photo_reference"`
		} `json:"photos"`
	} `json:"results"`
}

// Search runs a text query. ZERO_RESULTS yields an empty slice, not an error.
func (c *Client) Search(ctx context.Context, query string) ([]Place, error) {
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("key", c.apiKey)
	endpoint := c.baseURL + "/textsearch/json?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build places request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("places request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places request failed: HTTP %d", resp.StatusCode)
	}

	var body searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode places response: %w", err)
	}

	switch body.Status {
	case "OK":
	case "ZERO_RESULTS":
		return []Place{}, nil
	default:
		msg := body.ErrorMessage
		if msg == "" {
			msg = body.Status
		}
		return nil, fmt.Errorf("places search failed: %s", msg)
	}

	places := make([]Place, 0, len(body.Results))
	for _, r := range body.Results {
		p := Place{
			Name:      r.Name,
			Address:   r.FormattedAddress,
			Latitude:  r.Geometry.Location.Lat,
			Longitude: r.Geometry.Location.Lng,
			Rating:    r.Rating,
		}
		for _, photo := range r.Photos {
			p.PhotoRefs = append(p.PhotoRefs, photo.PhotoReference)
		}
		places = append(places, p)
	}
	return places, nil
}
