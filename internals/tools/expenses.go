package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
)

// The three expense tools are pure arithmetic, no provider call.

type totalCostInput struct {
	ItemCosts   []float64 `json:"item_costs" validate:"required,min=1,dive,gt=0"`
	Currency    string    `json:"currency" validate:"required"`
	Description string    `json:"description"`
}

func totalCostTool() Tool {
	return Tool{
		Param: anthropic.ToolParam{
			Name: "calculate_total_cost",
			Description: anthropic.String("Calculates the sum of a list of individual costs. " +
				"Useful for summing up various trip expenses like activities, food, or miscellaneous items. " +
				"Returns the total cost with its currency."),
			InputSchema: anthropic.ToolInputSchemaParam{
				Properties: map[string]interface{}{
					"item_costs": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "number"},
						"description": "A list of individual costs (numbers). E.g., [100.0, 50.5, 25.0].",
					},
					"currency": map[string]interface{}{
						"type":        "string",
						"description": "The currency of the costs (e.g., 'USD', 'EUR', 'INR').",
					},
					"description": map[string]interface{}{
						"type":        "string",
						"description": "A brief description for the total calculation.",
					},
				},
				Required: []string{"item_costs", "currency"},
			},
		},
		Run: func(_ context.Context, raw json.RawMessage) string {
			var in totalCostInput
			if msg := decodeInput(raw, &in); msg != "" {
				return msg
			}
			if in.Description == "" {
				in.Description = "various expenses"
			}
			var total float64
			for _, c := range in.ItemCosts {
				total += c
			}
			return fmt.Sprintf("Total cost for %s: %.2f %s", in.Description, total, in.Currency)
		},
	}
}

type hotelCostInput struct {
	PricePerNight float64 `json:"price_per_night" validate:"gt=0"`
	NumNights     int     `json:"num_nights" validate:"gt=0"`
	Currency      string  `json:"currency" validate:"required"`
	Description   string  `json:"description"`
}

func hotelCostTool() Tool {
	return Tool{
		Param: anthropic.ToolParam{
			Name: "calculate_hotel_cost",
			Description: anthropic.String("Calculates the total cost of a hotel stay from a per-night price and a number of nights. " +
				"Returns the total hotel cost with its currency."),
			InputSchema: anthropic.ToolInputSchemaParam{
				Properties: map[string]interface{}{
					"price_per_night": map[string]interface{}{
						"type":        "number",
						"description": "The cost of the hotel per night.",
					},
					"num_nights": map[string]interface{}{
						"type":        "integer",
						"description": "The number of nights for the stay.",
					},
					"currency": map[string]interface{}{
						"type":        "string",
						"description": "The currency of the hotel cost (e.g., 'USD', 'EUR', 'INR').",
					},
					"description": map[string]interface{}{
						"type":        "string",
						"description": "A brief description for the hotel cost.",
					},
				},
				Required: []string{"price_per_night", "num_nights", "currency"},
			},
		},
		Run: func(_ context.Context, raw json.RawMessage) string {
			var in hotelCostInput
			if msg := decodeInput(raw, &in); msg != "" {
				return msg
			}
			if in.Description == "" {
				in.Description = "hotel stay"
			}
			total := in.PricePerNight * float64(in.NumNights)
			return fmt.Sprintf("Total cost for %s: %.2f %s", in.Description, total, in.Currency)
		},
	}
}

type dailyBudgetInput struct {
	TotalBudget float64 `json:"total_budget" validate:"gt=0"`
	NumDays     int     `json:"num_days" validate:"gt=0"`
	Currency    string  `json:"currency" validate:"required"`
	Description string  `json:"description"`
}

func dailyBudgetTool() Tool {
	return Tool{
		Param: anthropic.ToolParam{
			Name: "calculate_daily_budget",
			Description: anthropic.String("Calculates the daily budget by dividing a total budget by the number of days. " +
				"Useful for breaking down a total trip budget into daily allowances."),
			InputSchema: anthropic.ToolInputSchemaParam{
				Properties: map[string]interface{}{
					"total_budget": map[string]interface{}{
						"type":        "number",
						"description": "The total budget available for the trip or a period.",
					},
					"num_days": map[string]interface{}{
						"type":        "integer",
						"description": "The number of days the budget needs to cover.",
					},
					"currency": map[string]interface{}{
						"type":        "string",
						"description": "The currency of the budget (e.g., 'USD', 'EUR', 'INR').",
					},
					"description": map[string]interface{}{
						"type":        "string",
						"description": "A brief description for the daily budget.",
					},
				},
				Required: []string{"total_budget", "num_days", "currency"},
			},
		},
		Run: func(_ context.Context, raw json.RawMessage) string {
			var in dailyBudgetInput
			if msg := decodeInput(raw, &in); msg != "" {
				return msg
			}
			if in.Description == "" {
				in.Description = "daily budget"
			}
			// num_days > 0 is enforced above, so the division is safe.
			daily := in.TotalBudget / float64(in.NumDays)
			return fmt.Sprintf("Daily budget for %s: %.2f %s", in.Description, daily, in.Currency)
		},
	}
}
