package tools

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/exchange"
	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/places"
	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/weather"
)

func newTestRegistry() *Registry {
	return NewRegistry(
		weather.NewClient("test-key"),
		places.NewClient("test-key"),
		exchange.NewClient("test-key"),
	)
}

func run(t *testing.T, reg *Registry, name, input string) string {
	t.Helper()
	return reg.Execute(context.Background(), name, json.RawMessage(input))
}

func TestCalculateTotalCost(t *testing.T) {
	reg := newTestRegistry()

	got := run(t, reg, "calculate_total_cost",
		`{"item_costs":[50.0,12.5,30.0],"currency":"USD","description":"food and activities"}`)
	want := "Total cost for food and activities: 92.50 USD"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCalculateTotalCostDefaultDescription(t *testing.T) {
	got := run(t, newTestRegistry(), "calculate_total_cost",
		`{"item_costs":[10.0],"currency":"INR"}`)
	if got != "Total cost for various expenses: 10.00 INR" {
		t.Errorf("got %q", got)
	}
}

func TestCalculateTotalCostRejectsNonPositiveItems(t *testing.T) {
	for _, input := range []string{
		`{"item_costs":[50.0,-1.0],"currency":"USD"}`,
		`{"item_costs":[0.0],"currency":"USD"}`,
		`{"item_costs":[],"currency":"USD"}`,
	} {
		got := run(t, newTestRegistry(), "calculate_total_cost", input)
		if !strings.HasPrefix(got, "Error:") {
			t.Errorf("input %s: got %q, want validation error", input, got)
		}
	}
}

func TestCalculateHotelCost(t *testing.T) {
	got := run(t, newTestRegistry(), "calculate_hotel_cost",
		`{"price_per_night":150.0,"num_nights":7,"currency":"EUR"}`)
	want := "Total cost for hotel stay: 1050.00 EUR"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCalculateHotelCostValidation(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"negative price", `{"price_per_night":-100.0,"num_nights":5,"currency":"USD"}`},
		{"zero nights", `{"price_per_night":100.0,"num_nights":0,"currency":"USD"}`},
		{"negative nights", `{"price_per_night":100.0,"num_nights":-2,"currency":"USD"}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := run(t, newTestRegistry(), "calculate_hotel_cost", tc.input)
			if !strings.HasPrefix(got, "Error:") {
				t.Errorf("got %q, want validation error", got)
			}
		})
	}
}

func TestCalculateDailyBudget(t *testing.T) {
	got := run(t, newTestRegistry(), "calculate_daily_budget",
		`{"total_budget":1000.0,"num_days":5,"currency":"JPY","description":"Tokyo trip"}`)
	if got != "Daily budget for Tokyo trip: 200.00 JPY" {
		t.Errorf("got %q", got)
	}
}

func TestCalculateDailyBudgetZeroDays(t *testing.T) {
	// Must reject before the division, not divide by zero.
	got := run(t, newTestRegistry(), "calculate_daily_budget",
		`{"total_budget":500.0,"num_days":0,"currency":"USD"}`)
	if !strings.HasPrefix(got, "Error:") {
		t.Errorf("got %q, want validation error", got)
	}
	if !strings.Contains(got, "num_days") {
		t.Errorf("got %q, want the failing field named", got)
	}
}
