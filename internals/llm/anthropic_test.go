package llm

import (
	"encoding/json"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/agent"
)

func TestToAPIMessagesRoundTrip(t *testing.T) {
	conv := []agent.Message{
		agent.UserMessage("Plan a trip to Rome"),
		agent.AssistantMessage("Checking the weather.", []agent.ToolCall{
			{ID: "tc_1", Name: "get_current_weather", Input: json.RawMessage(`{"location":"Rome"}`)},
		}),
		agent.ToolResultMessage("tc_1", "Current weather in Rome: ..."),
	}

	out, err := toAPIMessages(conv)
	if err != nil {
		t.Fatalf("toAPIMessages: %v", err)
	}
	if len(out) != 3 {
		t.Fatalf("len = %d, want 3", len(out))
	}

	if out[0].Role != anthropic.MessageParamRoleUser {
		t.Errorf("out[0].Role = %q", out[0].Role)
	}

	if out[1].Role != anthropic.MessageParamRoleAssistant {
		t.Errorf("out[1].Role = %q", out[1].Role)
	}
	if len(out[1].Content) != 2 {
		t.Fatalf("assistant blocks = %d, want text + tool_use", len(out[1].Content))
	}
	toolUse := out[1].Content[1].OfToolUse
	if toolUse == nil || toolUse.ID != "tc_1" || toolUse.Name != "get_current_weather" {
		t.Errorf("tool_use block = %+v", out[1].Content[1])
	}

	// Tool results travel as user-role messages on the wire.
	if out[2].Role != anthropic.MessageParamRoleUser {
		t.Errorf("out[2].Role = %q", out[2].Role)
	}
	result := out[2].Content[0].OfToolResult
	if result == nil || result.ToolUseID != "tc_1" {
		t.Errorf("tool_result block = %+v", out[2].Content[0])
	}
}

func TestToAPIMessagesAssistantWithoutText(t *testing.T) {
	conv := []agent.Message{
		agent.UserMessage("q"),
		agent.AssistantMessage("", []agent.ToolCall{
			{ID: "tc_1", Name: "calculate_total_cost", Input: json.RawMessage(`{}`)},
		}),
	}

	out, err := toAPIMessages(conv)
	if err != nil {
		t.Fatalf("toAPIMessages: %v", err)
	}
	if len(out[1].Content) != 1 || out[1].Content[0].OfToolUse == nil {
		t.Errorf("assistant content = %+v", out[1].Content)
	}
}

func TestToAPIMessagesRejectsEmpty(t *testing.T) {
	if _, err := toAPIMessages(nil); err == nil {
		t.Error("expected error for empty conversation")
	}
}

func TestToAPIMessagesRejectsUnknownRole(t *testing.T) {
	if _, err := toAPIMessages([]agent.Message{{Role: "narrator", Text: "x"}}); err == nil {
		t.Error("expected error for unknown role")
	}
}

func TestClientOptions(t *testing.T) {
	c := NewClient("key",
		WithModel("claude-sonnet-test"),
		WithMaxTokens(1234),
		WithTemperature(0.3),
	)
	if c.model != "claude-sonnet-test" || c.maxTokens != 1234 || c.temperature != 0.3 {
		t.Errorf("client = %+v", c)
	}
}
