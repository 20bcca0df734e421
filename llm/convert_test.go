package llm

import (
	"context"
	"testing"

	"github.com/aniemerg/smolcc/session"
	"github.com/aniemerg/smolcc/tools"
)

// stubTool is a minimal tool for conversion tests.
type stubTool struct {
	name        string
	description string
}

func (s *stubTool) Name() string        { return s.name }
func (s *stubTool) Description() string { return s.description }
func (s *stubTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	return "stub result", nil
}

func TestConvertMessagesToBedrockAnthropic(t *testing.T) {
	messages := []session.Message{
		{Role: "system", Content: "be helpful"},
		{Role: "user", Content: "hello"},
		{Role: "assistant", Content: "hi there"},
		{
			Role: "assistant",
			ToolCalls: []session.ToolCall{{
				ToolCallID: "call_1",
				Name:       "LS",
				Args:       map[string]interface{}{"path": "/tmp"},
			}},
		},
		{
			Role:      "tool",
			Content:   "- /tmp/\n",
			ToolCalls: []session.ToolCall{{ToolCallID: "call_1", Name: "LS"}},
		},
	}

	converted, systemPrompt := convertMessagesToBedrockAnthropic(messages)
	if systemPrompt != "be helpful" {
		t.Errorf("system prompt not extracted: %q", systemPrompt)
	}
	if len(converted) != 4 {
		t.Fatalf("expected 4 wire messages, got %d", len(converted))
	}
	if converted[0]["role"] != "user" || converted[1]["role"] != "assistant" {
		t.Errorf("unexpected roles: %v, %v", converted[0]["role"], converted[1]["role"])
	}

	// Tool result rides on a user message with a tool_result block.
	toolResult := converted[3]
	if toolResult["role"] != "user" {
		t.Fatalf("tool result role = %v, want user", toolResult["role"])
	}
	blocks := toolResult["content"].([]map[string]interface{})
	if blocks[0]["type"] != "tool_result" || blocks[0]["tool_use_id"] != "call_1" {
		t.Errorf("tool result block malformed: %+v", blocks[0])
	}
}

func TestConvertMessagesToAnthropicSystemPrompt(t *testing.T) {
	messages := []session.Message{
		{Role: "system", Content: "first"},
		{Role: "system", Content: "second"},
		{Role: "user", Content: "hello"},
	}
	converted, systemPrompt := convertMessagesToAnthropic(messages)
	if systemPrompt != "second" {
		t.Errorf("last system message should win, got %q", systemPrompt)
	}
	if len(converted) != 1 {
		t.Errorf("system messages leaked into the message list: %d", len(converted))
	}
}

func TestConvertToolsToOpenAI(t *testing.T) {
	converted := convertToolsToOpenAI([]tools.Tool{
		&stubTool{name: "LS", description: "lists directories"},
		&stubTool{name: "View", description: "reads files"},
	})
	if len(converted) != 2 {
		t.Fatalf("expected 2 tool params, got %d", len(converted))
	}
}

func TestBuildBedrockRequestIncludesTools(t *testing.T) {
	body, err := buildBedrockRequest(nil, "system", []tools.Tool{
		&stubTool{name: "LS", description: "lists directories"},
	})
	if err != nil {
		t.Fatalf("buildBedrockRequest failed: %v", err)
	}
	if len(body) == 0 {
		t.Fatal("empty request body")
	}
}
