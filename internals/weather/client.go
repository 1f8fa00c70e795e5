// Package weather is a thin client for the OpenWeatherMap REST API.
package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "http://api.openweathermap.org/data/2.5"

// ErrNotFound is returned when the provider does not know the location.
var ErrNotFound = errors.New("location not found")

// APIError is a non-2xx provider response other than a 404.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("openweathermap: %s (status %d)", e.Message, e.StatusCode)
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

// Observation is the current conditions at a location, metric units.
type Observation struct {
	Temp        float64
	FeelsLike   float64
	Humidity    int
	WindSpeed   float64
	Description string
}

// ForecastEntry is one 3-hourly forecast slot, metric units.
type ForecastEntry struct {
	Date        string // YYYY-MM-DD
	Temp        float64
	Description string
}

type observationResponse struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

type forecastResponse struct {
	List []struct {
		DtTxt string `json:"dt_txt"`
		Main  struct {
			Temp float64 `json:"temp"`
		} `json:"main"`
		Weather []struct {
			Description string `json:"description"`
		} `json:"weather"`
	} `json:"list"`
}

// Current fetches the current conditions for a city name.
func (c *Client) Current(ctx context.Context, location string) (Observation, error) {
	var payload observationResponse
	if err := c.get(ctx, "/weather", location, &payload); err != nil {
		return Observation{}, err
	}

	obs := Observation{
		Temp:      payload.Main.Temp,
		FeelsLike: payload.Main.FeelsLike,
		Humidity:  payload.Main.Humidity,
		WindSpeed: payload.Wind.Speed,
	}
	if len(payload.Weather) > 0 {
		obs.Description = payload.Weather[0].Description
	}
	return obs, nil
}

// Forecast fetches the 3-hourly forecast slots for a city name. Entries come
// back in provider order; aggregation into daily summaries is the caller's job.
func (c *Client) Forecast(ctx context.Context, location string) ([]ForecastEntry, error) {
	var payload forecastResponse
	if err := c.get(ctx, "/forecast", location, &payload); err != nil {
		return nil, err
	}

	entries := make([]ForecastEntry, 0, len(payload.List))
	for _, item := range payload.List {
		e := ForecastEntry{Temp: item.Main.Temp}
		if len(item.DtTxt) >= 10 {
			e.Date = item.DtTxt[:10]
		}
		if len(item.Weather) > 0 {
			e.Description = item.Weather[0].Description
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (c *Client) get(ctx context.Context, path, location string, out any) error {
	q := url.Values{}
	q.Set("q", location)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+q.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("openweathermap request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode != http.StatusOK {
		var apiErr struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Message == "" {
			apiErr.Message = resp.Status
		}
		return &APIError{StatusCode: resp.StatusCode, Message: apiErr.Message}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("openweathermap decode: %w", err)
	}
	return nil
}
