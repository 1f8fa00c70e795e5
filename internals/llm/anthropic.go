// Package llm wraps the Anthropic messages API for the planner.
package llm

import (
	"context"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/agent"
)

const (
	DefaultModel     = anthropic.ModelClaude4Sonnet20250514
	DefaultMaxTokens = 8096

	// Moderate temperature: creative itinerary phrasing without losing
	// consistency of the tool-call structure.
	DefaultTemperature = 0.7
)

type Client struct {
	client      anthropic.Client
	model       anthropic.Model
	maxTokens   int64
	temperature float64
}

type Option func(*Client)

func WithModel(model anthropic.Model) Option {
	return func(c *Client) { c.model = model }
}

func WithMaxTokens(n int64) Option {
	return func(c *Client) { c.maxTokens = n }
}

func WithTemperature(t float64) Option {
	return func(c *Client) { c.temperature = t }
}

func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		client:      anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:       DefaultModel,
		maxTokens:   DefaultMaxTokens,
		temperature: DefaultTemperature,
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

// CompleteWithTools sends the conversation with the declared tool palette and
// returns the raw assistant message. No retry: a failed call is the caller's
// problem to surface.
func (c *Client) CompleteWithTools(ctx context.Context, system string, messages []agent.Message, tools []anthropic.ToolParam) (*anthropic.Message, error) {
	apiMessages, err := toAPIMessages(messages)
	if err != nil {
		return nil, err
	}

	toolUnions := make([]anthropic.ToolUnionParam, 0, len(tools))
	for i := range tools {
		toolUnions = append(toolUnions, anthropic.ToolUnionParam{OfTool: &tools[i]})
	}

	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:       c.model,
		MaxTokens:   c.maxTokens,
		Temperature: anthropic.Float(c.temperature),
		System: []anthropic.TextBlockParam{
			{Text: system},
		},
		Messages: apiMessages,
		Tools:    toolUnions,
	})
	if err != nil {
		return nil, fmt.Errorf("anthropic api: %w", err)
	}

	if len(resp.Content) == 0 {
		return nil, fmt.Errorf("anthropic returned empty content")
	}

	return resp, nil
}

func toAPIMessages(messages []agent.Message) ([]anthropic.MessageParam, error) {
	if len(messages) == 0 {
		return nil, fmt.Errorf("messages cannot be empty")
	}

	out := make([]anthropic.MessageParam, 0, len(messages))
	for i, m := range messages {
		switch m.Role {
		case agent.RoleUser:
			out = append(out, anthropic.NewUserMessage(anthropic.NewTextBlock(m.Text)))

		case agent.RoleAssistant:
			blocks := make([]anthropic.ContentBlockParamUnion, 0, 1+len(m.ToolCalls))
			if m.Text != "" {
				blocks = append(blocks, anthropic.NewTextBlock(m.Text))
			}
			for _, tc := range m.ToolCalls {
				blocks = append(blocks, anthropic.ContentBlockParamUnion{
					OfToolUse: &anthropic.ToolUseBlockParam{
						ID:    tc.ID,
						Name:  tc.Name,
						Input: tc.Input,
					},
				})
			}
			if len(blocks) == 0 {
				return nil, fmt.Errorf("message[%d]: assistant message has no content", i)
			}
			out = append(out, anthropic.MessageParam{
				Role:    anthropic.MessageParamRoleAssistant,
				Content: blocks,
			})

		case agent.RoleToolResult:
			// Tool results ride in a user-role message, per the messages API.
			out = append(out, anthropic.MessageParam{
				Role: anthropic.MessageParamRoleUser,
				Content: []anthropic.ContentBlockParamUnion{
					{
						OfToolResult: &anthropic.ToolResultBlockParam{
							ToolUseID: m.ToolCallID,
							Content: []anthropic.ToolResultBlockParamContentUnion{
								{OfText: &anthropic.TextBlockParam{Text: m.Text}},
							},
						},
					},
				},
			})

		default:
			return nil, fmt.Errorf("message[%d]: unknown role %q", i, m.Role)
		}
	}

	return out, nil
}
