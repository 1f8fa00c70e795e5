package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/weather"
)

const forecastDays = 5

type weatherInput struct {
	Location string `json:"location" validate:"required"`
}

func currentWeatherTool(client *weather.Client) Tool {
	return Tool{
		Param: anthropic.ToolParam{
			Name: "get_current_weather",
			Description: anthropic.String("Fetches the current weather conditions for a specified city or location. " +
				"Returns temperature, description, humidity, and wind speed. " +
				"The location should be a city name, optionally followed by a country code (e.g., 'London, UK')."),
			InputSchema: anthropic.ToolInputSchemaParam{
				Properties: map[string]interface{}{
					"location": map[string]interface{}{
						"type":        "string",
						"description": "The city or location to get current weather for (e.g., 'London, UK').",
					},
				},
				Required: []string{"location"},
			},
		},
		Run: func(ctx context.Context, raw json.RawMessage) string {
			var in weatherInput
			if msg := decodeInput(raw, &in); msg != "" {
				return msg
			}

			obs, err := client.Current(ctx, in.Location)
			if err != nil {
				return weatherErrorText(err, in.Location, "weather")
			}

			return fmt.Sprintf(
				"Current weather in %s:\nTemperature: %.1f°C (Feels like: %.1f°C)\nConditions: %s\nHumidity: %d%%\nWind Speed: %.1f m/s",
				in.Location, obs.Temp, obs.FeelsLike, capitalize(obs.Description), obs.Humidity, obs.WindSpeed)
		},
	}
}

func weatherForecastTool(client *weather.Client) Tool {
	return Tool{
		Param: anthropic.ToolParam{
			Name: "get_weather_forecast",
			Description: anthropic.String("Fetches the 5-day weather forecast for a specified city or location. " +
				"Returns a summary of conditions for each day. " +
				"The location should be a city name, optionally followed by a country code (e.g., 'Paris')."),
			InputSchema: anthropic.ToolInputSchemaParam{
				Properties: map[string]interface{}{
					"location": map[string]interface{}{
						"type":        "string",
						"description": "The city or location to get the 5-day weather forecast for (e.g., 'Paris').",
					},
				},
				Required: []string{"location"},
			},
		},
		Run: func(ctx context.Context, raw json.RawMessage) string {
			var in weatherInput
			if msg := decodeInput(raw, &in); msg != "" {
				return msg
			}

			entries, err := client.Forecast(ctx, in.Location)
			if err != nil {
				return weatherErrorText(err, in.Location, "forecast")
			}

			return formatForecast(in.Location, entries, time.Now())
		},
	}
}

type dailySummary struct {
	minTemp      float64
	maxTemp      float64
	descriptions map[string]struct{}
}

// formatForecast folds 3-hourly slots into per-date min/max summaries,
// keeping at most forecastDays dates from today onward.
func formatForecast(location string, entries []weather.ForecastEntry, now time.Time) string {
	daily := make(map[string]*dailySummary)
	for _, e := range entries {
		if e.Date == "" {
			continue
		}
		d, ok := daily[e.Date]
		if !ok {
			d = &dailySummary{minTemp: e.Temp, maxTemp: e.Temp, descriptions: make(map[string]struct{})}
			daily[e.Date] = d
		}
		d.minTemp = min(d.minTemp, e.Temp)
		d.maxTemp = max(d.maxTemp, e.Temp)
		if e.Description != "" {
			d.descriptions[e.Description] = struct{}{}
		}
	}

	today := now.Format("2006-01-02")
	dates := make([]string, 0, len(daily))
	for date := range daily {
		if date >= today {
			dates = append(dates, date)
		}
	}
	slices.Sort(dates)
	if len(dates) > forecastDays {
		dates = dates[:forecastDays]
	}

	if len(dates) == 0 {
		return fmt.Sprintf("Could not generate a valid forecast for %s for %d days. The API did not return enough data.",
			location, forecastDays)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Weather forecast for %s for %d days:\n", location, forecastDays)
	for _, date := range dates {
		d := daily[date]
		descs := make([]string, 0, len(d.descriptions))
		for desc := range d.descriptions {
			descs = append(descs, desc)
		}
		slices.Sort(descs)
		fmt.Fprintf(&b, "  Date: %s\n  Min Temp: %.1f°C, Max Temp: %.1f°C\n  Conditions: %s\n----------------------------------\n",
			date, d.minTemp, d.maxTemp, capitalize(strings.Join(descs, ", ")))
	}
	return strings.TrimSpace(b.String())
}

func weatherErrorText(err error, location, what string) string {
	var apiErr *weather.APIError
	switch {
	case errors.Is(err, weather.ErrNotFound):
		return fmt.Sprintf("Error: Location '%s' not found. Please provide a valid city name.", location)
	case errors.As(err, &apiErr):
		return fmt.Sprintf("Error fetching %s for %s: %s", what, location, apiErr.Message)
	default:
		return fmt.Sprintf("Network error or invalid request for %s: %s. Check your internet connection or API key.", location, err)
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
