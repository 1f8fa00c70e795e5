package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/places"
)

const (
	defaultRadius = 5000
	maxResults    = 5
)

type placeSearchInput struct {
	SearchString string `json:"search_string" validate:"required"`
	Radius       int    `json:"radius" validate:"max=50000"`
	TypeFilter   string `json:"type_filter"`
}

func placeSearchSchema(example string) anthropic.ToolInputSchemaParam {
	return anthropic.ToolInputSchemaParam{
		Properties: map[string]interface{}{
			"search_string": map[string]interface{}{
				"type":        "string",
				"description": "A descriptive string for the search, combining what and where. E.g. " + example,
			},
			"radius": map[string]interface{}{
				"type":        "integer",
				"description": "Search radius in meters (default 5000 meters = 5km). Max 50000.",
			},
			"type_filter": map[string]interface{}{
				"type":        "string",
				"description": "Optional: specific Google Place type to filter results (e.g., 'restaurant', 'museum', 'lodging').",
			},
		},
		Required: []string{"search_string"},
	}
}

func placesOfInterestTool(client *places.Client) Tool {
	return Tool{
		Param: anthropic.ToolParam{
			Name: "search_places_of_interest",
			Description: anthropic.String("Searches for places of interest like attractions, landmarks, or general points of interest. " +
				"Provides details like name, address, rating, and price level. " +
				"Example search_string: 'best parks in New York', 'historical sites in Kyoto'."),
			InputSchema: placeSearchSchema("'famous museums in London'"),
		},
		Run: placeSearchRunner(client, "point_of_interest"),
	}
}

func restaurantsTool(client *places.Client) Tool {
	return Tool{
		Param: anthropic.ToolParam{
			Name: "search_restaurants",
			Description: anthropic.String("Searches for restaurants based on cuisine, type, or specific names. " +
				"Provides details like name, address, rating, and price level. " +
				"Example search_string: 'Italian food in Rome', 'cafes with wifi in Berlin'."),
			InputSchema: placeSearchSchema("'Italian restaurants in Rome'"),
		},
		Run: placeSearchRunner(client, "restaurant"),
	}
}

func accommodationsTool(client *places.Client) Tool {
	return Tool{
		Param: anthropic.ToolParam{
			Name: "search_accommodations",
			Description: anthropic.String("Searches for hotels, hostels, or other lodging options. " +
				"Provides details like name, address, and rating. " +
				"Example search_string: 'boutique hotels in Paris', 'budget hostels in Berlin'."),
			InputSchema: placeSearchSchema("'budget hotels in Paris'"),
		},
		Run: placeSearchRunner(client, "lodging"),
	}
}

func placeSearchRunner(client *places.Client, category string) func(context.Context, json.RawMessage) string {
	return func(ctx context.Context, raw json.RawMessage) string {
		var in placeSearchInput
		if msg := decodeInput(raw, &in); msg != "" {
			return msg
		}
		if in.Radius == 0 {
			in.Radius = defaultRadius
		}
		placeType := in.TypeFilter
		if placeType == "" {
			placeType = category
		}

		results, err := client.TextSearch(ctx, in.SearchString, in.Radius, placeType)
		if err != nil {
			var apiErr *places.APIError
			if errors.As(err, &apiErr) {
				return fmt.Sprintf("Error from Google Places API: %s. Check API key or query.", apiErr.Detail())
			}
			return fmt.Sprintf("Network error or invalid request to Google Places API: %s. Check internet connection or API key setup.", err)
		}

		if len(results) == 0 {
			return fmt.Sprintf("No results found for '%s' with type '%s' within %.0fkm.",
				in.SearchString, placeType, float64(in.Radius)/1000)
		}

		return formatPlaces(in.SearchString, placeType, results)
	}
}

func formatPlaces(query, placeType string, results []places.Place) string {
	n := min(len(results), maxResults)

	var b strings.Builder
	fmt.Fprintf(&b, "Top %d results for '%s' (category: %s):\n", n, query, placeType)
	for i, p := range results[:n] {
		rating := "N/A"
		if p.Rating != nil {
			rating = fmt.Sprintf("%.1f", *p.Rating)
		}
		price := "N/A"
		if p.PriceLevel != nil && *p.PriceLevel > 0 {
			price = strings.Repeat("$", *p.PriceLevel)
		}
		fmt.Fprintf(&b, "  %d. Name: %s\n     Address: %s\n     Rating: %s/5\n     Price Level: %s\n----------------------------------\n",
			i+1, p.Name, p.Address, rating, price)
	}
	return strings.TrimSpace(b.String())
}
