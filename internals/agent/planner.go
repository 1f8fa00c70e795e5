package agent

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/rs/xid"

	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/prompt"
	"github.com/Shibin506/GlobalGuide-AI-Travel-Planner/internals/tools"
)

// DefaultMaxSteps bounds the model/tool round-trip count so a model that
// keeps requesting tools cannot spin forever.
const DefaultMaxSteps = 15

type LLM interface {
	CompleteWithTools(ctx context.Context, system string, messages []Message, tools []anthropic.ToolParam) (*anthropic.Message, error)
}

// Planner drives the conversation between the model and the tool registry
// until the model produces a final itinerary. It holds no per-request state;
// a single Planner serves concurrent requests.
type Planner struct {
	llm      LLM
	tools    *tools.Registry
	log      *slog.Logger
	maxSteps int
}

type Option func(*Planner)

func WithMaxSteps(n int) Option {
	return func(p *Planner) { p.maxSteps = n }
}

func NewPlanner(llm LLM, registry *tools.Registry, log *slog.Logger, opts ...Option) *Planner {
	p := &Planner{
		llm:      llm,
		tools:    registry,
		log:      log,
		maxSteps: DefaultMaxSteps,
	}
	for _, o := range opts {
		o(p)
	}
	return p
}

// Plan runs the agent loop for one question and returns the full conversation
// it produced, whether or not a final answer was reached. The returned slice
// always starts with the user message.
func (p *Planner) Plan(ctx context.Context, question string) ([]Message, error) {
	run := xid.New().String()
	conv := []Message{UserMessage(question)}

	for step := range p.maxSteps {
		resp, err := p.llm.CompleteWithTools(ctx, prompt.System, conv, p.tools.Palette())
		if err != nil {
			return conv, fmt.Errorf("llm (step %d): %w", step, err)
		}

		msg := assistantFromResponse(resp)
		conv = append(conv, msg)

		if len(msg.ToolCalls) == 0 {
			p.log.Info("planner finished", "run", run, "steps", step+1)
			return conv, nil
		}

		p.log.Info("executing tools", "run", run, "count", len(msg.ToolCalls), "step", step)
		conv = p.runTools(ctx, run, conv, msg)
	}

	p.log.Warn("planner exceeded step ceiling", "run", run, "max_steps", p.maxSteps)
	return conv, nil
}

// runTools dispatches every tool call in the assistant turn, in order, and
// appends one tool result per call. Expected failures (unknown tool, bad
// arguments, provider errors) come back as result text, never as Go errors.
func (p *Planner) runTools(ctx context.Context, run string, conv []Message, assistant Message) []Message {
	if len(assistant.ToolCalls) == 0 {
		// Unreachable from Plan, which only dispatches when calls are present.
		p.log.Warn("tool dispatch entered with no tool calls", "run", run)
		return append(conv, ToolResultMessage("error_no_call",
			"Error: agent attempted to call a tool but no tool calls were found in the model response."))
	}

	for _, tc := range assistant.ToolCalls {
		result := p.tools.Execute(ctx, tc.Name, tc.Input)
		p.log.Info("tool executed", "run", run, "tool", tc.Name, "result", preview(result, 120))
		conv = append(conv, ToolResultMessage(tc.ID, result))
	}
	return conv
}

// Ask runs Plan and reduces the conversation to the answer text.
func (p *Planner) Ask(ctx context.Context, question string) (string, error) {
	conv, err := p.Plan(ctx, question)
	if err != nil {
		return "", err
	}
	return FinalAnswer(conv), nil
}

// FinalAnswer scans the conversation from the end for the last assistant
// message that has text and no pending tool calls. A tool result carrying
// an "Error:" marker found first is surfaced instead, wrapped in an apology.
// If neither exists the shape of the last message is reported.
func FinalAnswer(conv []Message) string {
	for i := len(conv) - 1; i >= 0; i-- {
		m := conv[i]
		switch m.Role {
		case RoleAssistant:
			if m.Text != "" && len(m.ToolCalls) == 0 {
				return m.Text
			}
		case RoleToolResult:
			if strings.Contains(m.Text, "Error:") {
				return fmt.Sprintf("An error occurred during planning: %s. Please try again.", m.Text)
			}
		}
	}

	last := "no messages"
	if len(conv) > 0 {
		last = describeMessage(conv[len(conv)-1])
	}
	return fmt.Sprintf(
		"The planner processed your request but could not formulate a clear final answer (last message: %s). Please try rephrasing your request.",
		last)
}
