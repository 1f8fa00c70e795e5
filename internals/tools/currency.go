package tools

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/exchange"
)

type convertCurrencyInput struct {
	Amount       float64 `json:"amount" validate:"gt=0"`
	FromCurrency string  `json:"from_currency" validate:"len=3,alpha"`
	ToCurrency   string  `json:"to_currency" validate:"len=3,alpha"`
}

func convertCurrencyTool(client *exchange.Client) Tool {
	return Tool{
		Param: anthropic.ToolParam{
			Name: "convert_currency",
			Description: anthropic.String("Converts a given amount from one currency to another using real-time exchange rates. " +
				"Useful for budgeting and understanding costs in different currencies for international trips. " +
				"Currency codes must be 3-letter ISO codes (e.g., 'USD', 'EUR')."),
			InputSchema: anthropic.ToolInputSchemaParam{
				Properties: map[string]interface{}{
					"amount": map[string]interface{}{
						"type":        "number",
						"description": "The amount of money to convert.",
					},
					"from_currency": map[string]interface{}{
						"type":        "string",
						"description": "The currency code to convert from (e.g., 'USD', 'EUR', 'JPY').",
					},
					"to_currency": map[string]interface{}{
						"type":        "string",
						"description": "The currency code to convert to (e.g., 'GBP', 'CAD', 'INR').",
					},
				},
				Required: []string{"amount", "from_currency", "to_currency"},
			},
		},
		Run: func(ctx context.Context, raw json.RawMessage) string {
			var in convertCurrencyInput
			if err := json.Unmarshal(raw, &in); err != nil {
				return fmt.Sprintf("Error: invalid tool arguments: %s.", err)
			}
			in.FromCurrency = strings.ToUpper(in.FromCurrency)
			in.ToCurrency = strings.ToUpper(in.ToCurrency)
			if msg := validateStruct(&in); msg != "" {
				return msg
			}

			rate, err := client.PairRate(ctx, in.FromCurrency, in.ToCurrency)
			if err != nil {
				return conversionErrorText(err, in.FromCurrency, in.ToCurrency)
			}

			converted := in.Amount * rate
			return fmt.Sprintf("%.2f %s is equal to %.2f %s (Rate: 1 %s = %.4f %s)",
				in.Amount, in.FromCurrency, converted, in.ToCurrency, in.FromCurrency, rate, in.ToCurrency)
		},
	}
}

func conversionErrorText(err error, from, to string) string {
	var apiErr *exchange.APIError
	switch {
	case errors.Is(err, exchange.ErrUnsupportedCode):
		return fmt.Sprintf("Error: One or both currency codes ('%s', '%s') are unsupported by the API. Check valid ISO codes.", from, to)
	case errors.Is(err, exchange.ErrInvalidKey):
		return "Error: Invalid API key for ExchangeRate-API."
	case errors.Is(err, exchange.ErrPairNotFound):
		return fmt.Sprintf("Error: Could not find exchange rate for '%s' to '%s'. One or both currency codes might be unsupported or incorrect.", from, to)
	case errors.As(err, &apiErr):
		return fmt.Sprintf("Error converting currency: %s.", apiErr.Type)
	default:
		return fmt.Sprintf("Network error or invalid request to currency conversion API: %s. Check internet connection or API key.", err)
	}
}
