// Package exchange is a thin client for ExchangeRate-API pair conversions.
package exchange

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://v6.exchangerate-api.com/v6"

var (
	// ErrUnsupportedCode means one or both currency codes are unknown to the provider.
	ErrUnsupportedCode = errors.New("unsupported currency code")
	// ErrInvalidKey means the provider rejected the API key.
	ErrInvalidKey = errors.New("invalid api key")
	// ErrPairNotFound is the provider's 404 for a pair it cannot resolve.
	ErrPairNotFound = errors.New("exchange rate pair not found")
)

// APIError is a provider-reported error that has no dedicated sentinel.
type APIError struct {
	Type string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("exchangerate-api: %s", e.Type)
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

type pairResponse struct {
	Result         string  `json:"result"`
	ErrorType      string  `json:"error-type"`
	ConversionRate float64 `json:"conversion_rate"`
}

// PairRate looks up the live conversion rate from one currency to another.
// Codes must already be upper-case 3-letter ISO codes.
func (c *Client) PairRate(ctx context.Context, from, to string) (float64, error) {
	u := fmt.Sprintf("%s/%s/pair/%s/%s", c.baseURL, c.apiKey, from, to)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, fmt.Errorf("exchangerate-api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return 0, ErrPairNotFound
	}

	var payload pairResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return 0, fmt.Errorf("exchangerate-api decode: %w", err)
	}

	if payload.Result == "error" {
		switch payload.ErrorType {
		case "unsupported-code":
			return 0, ErrUnsupportedCode
		case "invalid-key":
			return 0, ErrInvalidKey
		default:
			return 0, &APIError{Type: payload.ErrorType}
		}
	}

	return payload.ConversionRate, nil
}
