// Package agent contains the core processing loop shared by the assistant's
// interaction modes: it feeds the conversation to the configured LLM client,
// executes the tool calls the model requests (subject to user approval in
// prompt mode) and loops until the model produces a plain answer.
package agent

import (
	"context"
	"fmt"

	"github.com/aniemerg/smolcc/config"
	"github.com/aniemerg/smolcc/errors"
	"github.com/aniemerg/smolcc/llm"
	"github.com/aniemerg/smolcc/session"
	"github.com/aniemerg/smolcc/tools"
)

type Mode string

const (
	ModeAuto   Mode = "auto"
	ModePrompt Mode = "prompt"
)

// ToolVerbosity controls how much tool execution detail the interaction mode
// shows the user.
type ToolVerbosity string

const (
	ToolVerbosityNone ToolVerbosity = "none"
	ToolVerbosityInfo ToolVerbosity = "info"
	ToolVerbosityAll  ToolVerbosity = "all"
)

type Agent struct {
	Config         *config.Config
	Session        *session.Session
	LLMClient      llm.LLMClient
	AvailableTools []tools.Tool
	Mode           Mode
	Verbosity      ToolVerbosity

	registry *tools.Registry
}

// ProcessCallbacks let an interaction mode observe and steer a turn.
type ProcessCallbacks struct {
	OnAssistantMessage func(message string)
	OnToolCall         func(toolCall session.ToolCall)
	OnToolResult       func(toolCall session.ToolCall, result string)
	ShouldExecuteTool  func(toolCall session.ToolCall) bool
	OnWarning          func(warning string)
}

// New builds an agent from configuration: it populates the tool registry,
// selects the active toolset and seeds a fresh session with the system
// prompt.
func New(cfg *config.Config, sess *session.Session, toolset string, mode Mode, client llm.LLMClient, verbosity ToolVerbosity) (*Agent, error) {
	registry, err := tools.NewRegistry(cfg)
	if err != nil {
		return nil, err
	}
	ts, err := cfg.GetToolset(toolset)
	if err != nil {
		return nil, err
	}
	activeTools, err := registry.ActiveTools(ts)
	if err != nil {
		return nil, err
	}

	a := &Agent{
		Config:         cfg,
		Session:        sess,
		LLMClient:      client,
		AvailableTools: activeTools,
		Mode:           mode,
		Verbosity:      verbosity,
		registry:       registry,
	}

	if len(sess.Messages) == 0 {
		prompt, err := BuildSystemPrompt(activeTools)
		if err != nil {
			return nil, err
		}
		sess.AddMessage(session.Message{Role: "system", Content: prompt})
	}

	return a, nil
}

// Close releases resources owned by the agent (MCP server subprocesses).
func (a *Agent) Close() {
	if a.registry != nil {
		a.registry.Close()
	}
}

// RefreshContext rebuilds the system prompt after the working directory
// changed, so the model sees the new location without losing history.
func (a *Agent) RefreshContext() error {
	prompt, err := BuildSystemPrompt(a.AvailableTools)
	if err != nil {
		return err
	}
	if len(a.Session.Messages) > 0 && a.Session.Messages[0].Role == "system" {
		a.Session.Messages[0].Content = prompt
	} else {
		a.Session.Messages = append([]session.Message{{Role: "system", Content: prompt}}, a.Session.Messages...)
	}
	return nil
}

// ProcessUserInput runs one turn: user message in, then the LLM/tool loop
// until the model answers without requesting tools.
func (a *Agent) ProcessUserInput(ctx context.Context, userInput string, callbacks ProcessCallbacks) error {
	a.Session.AddMessage(session.Message{Role: "user", Content: userInput})

	for {
		assistantResponse, err := a.LLMClient.Chat(ctx, a.Session.Messages, a.AvailableTools)
		if err != nil {
			return errors.Wrapf(err, "LLM chat failed")
		}
		a.Session.AddMessage(*assistantResponse)

		if assistantResponse.Content != "" && callbacks.OnAssistantMessage != nil {
			callbacks.OnAssistantMessage(assistantResponse.Content)
		}

		if len(assistantResponse.ToolCalls) == 0 {
			break
		}

		for _, toolCall := range assistantResponse.ToolCalls {
			if callbacks.OnToolCall != nil {
				callbacks.OnToolCall(toolCall)
			}
			result := a.executeToolCall(ctx, toolCall, callbacks)
			if callbacks.OnToolResult != nil {
				callbacks.OnToolResult(toolCall, result)
			}
			a.Session.AddMessage(session.Message{
				Role:      "tool",
				Content:   result,
				ToolCalls: []session.ToolCall{toolCall},
			})
		}
	}

	if err := a.Session.Save(); err != nil && callbacks.OnWarning != nil {
		callbacks.OnWarning(fmt.Sprintf("failed to save session: %v", err))
	}
	return nil
}

// executeToolCall resolves and runs a single tool call. Failures are folded
// into the result string so the model can react to them; they never abort the
// turn.
func (a *Agent) executeToolCall(ctx context.Context, toolCall session.ToolCall, callbacks ProcessCallbacks) string {
	if callbacks.ShouldExecuteTool != nil && !callbacks.ShouldExecuteTool(toolCall) {
		return "Tool call was declined by the user."
	}

	var tool tools.Tool
	for _, t := range a.AvailableTools {
		if t.Name() == toolCall.Name {
			tool = t
			break
		}
	}
	if tool == nil {
		return fmt.Sprintf("Error: tool '%s' is not available", toolCall.Name)
	}

	result, err := tool.Execute(ctx, toolCall.Args)
	if err != nil {
		return fmt.Sprintf("Error: %v", err)
	}
	return result
}
