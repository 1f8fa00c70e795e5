// Package places is a thin client for the Google Places text-search API.
package places

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

// APIError is a non-OK status in the provider's response body.
type APIError struct {
	Status  string
	Message string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("google places: %s", e.Message)
	}
	return fmt.Sprintf("google places: %s", e.Status)
}

// Detail returns the provider's error message, falling back to the status.
func (e *APIError) Detail() string {
	if e.Message != "" {
		return e.Message
	}
	return e.Status
}

type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
}

type Option func(*Client)

func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = u }
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// Place is one text-search result. Rating and PriceLevel are nil when the
// provider omits them.
type Place struct {
	Name       string
	Address    string
	Rating     *float64
	PriceLevel *int
}

type searchResponse struct {
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
	Results      []struct {
		Name             string   `json:"name"`
		FormattedAddress string   `json:"formatted_address"`
		Rating           *float64 `json:"rating"`
		PriceLevel       *int     `json:"price_level"`
	} `json:"results"`
}

// TextSearch runs a free-text place search. An empty slice with a nil error
// means the provider found nothing.
func (c *Client) TextSearch(ctx context.Context, query string, radius int, placeType string) ([]Place, error) {
	q := url.Values{}
	q.Set("query", query)
	q.Set("key", c.apiKey)
	q.Set("radius", strconv.Itoa(radius))
	q.Set("type", placeType)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/textsearch/json?"+q.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("google places request: %w", err)
	}
	defer resp.Body.Close()

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("google places decode: %w", err)
	}

	switch payload.Status {
	case "OK":
	case "ZERO_RESULTS":
		return nil, nil
	default:
		return nil, &APIError{Status: payload.Status, Message: payload.ErrorMessage}
	}

	out := make([]Place, 0, len(payload.Results))
	for _, r := range payload.Results {
		out = append(out, Place{
			Name:       r.Name,
			Address:    r.FormattedAddress,
			Rating:     r.Rating,
			PriceLevel: r.PriceLevel,
		})
	}
	return out, nil
}
