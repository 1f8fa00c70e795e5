package agent

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
)

type Role string

const (
	RoleUser       Role = "user"
	RoleAssistant  Role = "assistant"
	RoleToolResult Role = "tool_result"
)

// Message is one entry in a conversation. Each role carries only its own
// payload: ToolCalls is set on assistant messages, ToolCallID on tool
// results. Messages are immutable once appended.
type Message struct {
	Role       Role
	Text       string
	ToolCalls  []ToolCall // assistant only
	ToolCallID string     // tool_result only
}

// ToolCall is a model-issued directive naming a tool and its arguments.
// The ID is unique within the assistant message that carries it.
type ToolCall struct {
	ID    string
	Name  string
	Input json.RawMessage
}

func UserMessage(text string) Message {
	return Message{Role: RoleUser, Text: text}
}

func AssistantMessage(text string, calls []ToolCall) Message {
	return Message{Role: RoleAssistant, Text: text, ToolCalls: calls}
}

func ToolResultMessage(toolCallID, text string) Message {
	return Message{Role: RoleToolResult, ToolCallID: toolCallID, Text: text}
}

// assistantFromResponse flattens the model's content blocks into a single
// assistant message: text blocks joined by newlines, tool_use blocks in order.
func assistantFromResponse(resp *anthropic.Message) Message {
	var parts []string
	var calls []ToolCall
	for _, block := range resp.Content {
		switch block.Type {
		case "text":
			if block.Text != "" {
				parts = append(parts, block.Text)
			}
		case "tool_use":
			calls = append(calls, ToolCall{
				ID:    block.ID,
				Name:  block.Name,
				Input: block.Input,
			})
		}
	}
	return AssistantMessage(strings.Join(parts, "\n"), calls)
}

func describeMessage(m Message) string {
	return fmt.Sprintf("role: %s, text: %q, tool calls: %d", m.Role, preview(m.Text, 120), len(m.ToolCalls))
}

func preview(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > n {
		return s[:n] + "…"
	}
	return s
}
