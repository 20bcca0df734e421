package llm

import (
	"context"
	"fmt"

	"github.com/aniemerg/smolcc/session"
	"github.com/aniemerg/smolcc/tools"
)

// LLMClient is the interface for interacting with a chat-completion model.
type LLMClient interface {
	Chat(ctx context.Context, messages []session.Message, availableTools []tools.Tool) (*session.Message, error)
}

// MockLLMClient is a stand-in used when no provider is configured and in
// tests. It parrots back the last user message.
type MockLLMClient struct{}

func (m *MockLLMClient) Chat(ctx context.Context, messages []session.Message, availableTools []tools.Tool) (*session.Message, error) {
	lastUserMessage := ""
	if len(messages) > 0 {
		lastUserMessage = messages[len(messages)-1].Content
	}
	return &session.Message{
		Role:    "assistant",
		Content: fmt.Sprintf("I am a mock LLM. You said: '%s'. I cannot use tools.", lastUserMessage),
	}, nil
}
