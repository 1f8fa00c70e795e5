// Package tools holds the travel planner's tool palette: nine adapters the
// model can invoke, each taking validated typed input and returning plain
// text. Expected failures come back as result text, never as Go errors.
package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/exchange"
	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/places"
	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/weather"
)

// Tool pairs the schema advertised to the model with the adapter that runs it.
type Tool struct {
	Param anthropic.ToolParam
	Run   func(ctx context.Context, input json.RawMessage) string
}

// Registry is the fixed tool set, keyed by name. It is built once at startup
// and safe to share across concurrent requests.
type Registry struct {
	byName  map[string]Tool
	palette []anthropic.ToolParam
}

func NewRegistry(weatherc *weather.Client, placesc *places.Client, ratesc *exchange.Client) *Registry {
	r := &Registry{byName: make(map[string]Tool)}
	r.add(currentWeatherTool(weatherc))
	r.add(weatherForecastTool(weatherc))
	r.add(placesOfInterestTool(placesc))
	r.add(restaurantsTool(placesc))
	r.add(accommodationsTool(placesc))
	r.add(totalCostTool())
	r.add(hotelCostTool())
	r.add(dailyBudgetTool())
	r.add(convertCurrencyTool(ratesc))
	return r
}

func (r *Registry) add(t Tool) {
	r.byName[t.Param.Name] = t
	r.palette = append(r.palette, t.Param)
}

// Palette is the full tool set advertised to the model, in registration order.
func (r *Registry) Palette() []anthropic.ToolParam {
	return r.palette
}

func (r *Registry) Lookup(name string) (Tool, bool) {
	t, ok := r.byName[name]
	return t, ok
}

// Execute runs the named tool. An unknown name is reported as result text so
// the model can correct itself.
func (r *Registry) Execute(ctx context.Context, name string, input json.RawMessage) string {
	t, ok := r.byName[name]
	if !ok {
		return fmt.Sprintf("Error: tool '%s' not found or not correctly defined.", name)
	}
	return t.Run(ctx, input)
}
