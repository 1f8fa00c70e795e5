package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/exchange"
	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/places"
	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/weather"
)

func registryWithPlaces(t *testing.T, handler http.HandlerFunc) (*Registry, *atomic.Int64) {
	t.Helper()
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	reg := NewRegistry(
		weather.NewClient("test-key"),
		places.NewClient("test-key", places.WithBaseURL(srv.URL)),
		exchange.NewClient("test-key"),
	)
	return reg, &hits
}

func placesPayload(n int) string {
	var results []string
	for i := 1; i <= n; i++ {
		results = append(results, fmt.Sprintf(
			`{"name":"Place %d","formatted_address":"%d Main St","rating":4.5,"price_level":2}`, i, i))
	}
	return `{"status":"OK","results":[` + strings.Join(results, ",") + `]}`
}

func TestSearchRestaurantsFormatting(t *testing.T) {
	reg, _ := registryWithPlaces(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("type"); got != "restaurant" {
			t.Errorf("type = %q, want restaurant", got)
		}
		if got := r.URL.Query().Get("radius"); got != "5000" {
			t.Errorf("radius = %q, want default 5000", got)
		}
		w.Write([]byte(placesPayload(2)))
	})

	got := reg.Execute(context.Background(), "search_restaurants",
		json.RawMessage(`{"search_string":"Italian restaurants in Rome"}`))

	if !strings.HasPrefix(got, "Top 2 results for 'Italian restaurants in Rome' (category: restaurant):") {
		t.Errorf("header wrong: %q", got)
	}
	if !strings.Contains(got, "Name: Place 1") || !strings.Contains(got, "Rating: 4.5/5") {
		t.Errorf("entry missing: %q", got)
	}
	if !strings.Contains(got, "Price Level: $$") {
		t.Errorf("price level missing: %q", got)
	}
}

func TestSearchPlacesTruncatesToFive(t *testing.T) {
	reg, _ := registryWithPlaces(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(placesPayload(8)))
	})

	got := reg.Execute(context.Background(), "search_places_of_interest",
		json.RawMessage(`{"search_string":"museums in London"}`))

	if !strings.HasPrefix(got, "Top 5 results") {
		t.Errorf("header wrong: %q", got)
	}
	if strings.Contains(got, "Place 6") {
		t.Errorf("more than 5 entries rendered: %q", got)
	}
}

func TestSearchPlacesRadiusLimit(t *testing.T) {
	reg, hits := registryWithPlaces(t, func(w http.ResponseWriter, r *http.Request) {})

	got := reg.Execute(context.Background(), "search_places_of_interest",
		json.RawMessage(`{"search_string":"park in Delhi","radius":60000}`))

	if !strings.HasPrefix(got, "Error:") || !strings.Contains(got, "radius") {
		t.Errorf("got %q, want radius validation error", got)
	}
	if hits.Load() != 0 {
		t.Errorf("provider hit despite oversized radius")
	}
}

func TestSearchAccommodationsTypeFilterOverride(t *testing.T) {
	reg, _ := registryWithPlaces(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("type"); got != "hostel" {
			t.Errorf("type = %q, want hostel", got)
		}
		w.Write([]byte(placesPayload(1)))
	})

	reg.Execute(context.Background(), "search_accommodations",
		json.RawMessage(`{"search_string":"hostels in Berlin","type_filter":"hostel"}`))
}

func TestSearchPlacesZeroResults(t *testing.T) {
	reg, _ := registryWithPlaces(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ZERO_RESULTS","results":[]}`))
	})

	got := reg.Execute(context.Background(), "search_restaurants",
		json.RawMessage(`{"search_string":"alien diners on Mars","radius":10000}`))

	want := "No results found for 'alien diners on Mars' with type 'restaurant' within 10km."
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestSearchPlacesAPIError(t *testing.T) {
	reg, _ := registryWithPlaces(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"REQUEST_DENIED","error_message":"The provided API key is invalid."}`))
	})

	got := reg.Execute(context.Background(), "search_restaurants",
		json.RawMessage(`{"search_string":"cafes in Seattle"}`))

	if !strings.Contains(got, "Error from Google Places API: The provided API key is invalid.") {
		t.Errorf("got %q", got)
	}
}

func TestSearchPlacesMissingRatingAndPrice(t *testing.T) {
	reg, _ := registryWithPlaces(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"OK","results":[{"name":"Quiet Park","formatted_address":"Somewhere"}]}`))
	})

	got := reg.Execute(context.Background(), "search_places_of_interest",
		json.RawMessage(`{"search_string":"parks"}`))

	if !strings.Contains(got, "Rating: N/A/5") || !strings.Contains(got, "Price Level: N/A") {
		t.Errorf("got %q", got)
	}
}
