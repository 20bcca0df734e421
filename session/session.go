package session

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/aniemerg/smolcc/errors"
)

// ToolCall records a single tool invocation requested by the model. On a
// "tool" role message the first ToolCall identifies which call the content is
// the result of.
type ToolCall struct {
	ToolCallID string                 `json:"tool_call_id"`
	Name       string                 `json:"name"`
	Args       map[string]interface{} `json:"args"`
}

// Message is one entry of the conversation history. Role is one of "system",
// "user", "assistant" or "tool".
type Message struct {
	Role      string     `json:"role"`
	Content   string     `json:"content"`
	ToolCalls []ToolCall `json:"tool_calls,omitempty"`
}

// Session is a named conversation persisted under .smolcc/sessions.
type Session struct {
	Name     string    `json:"name"`
	Messages []Message `json:"messages"`
	path     string
}

// New creates a new session.
func New(name string) (*Session, error) {
	path, err := sessionPath(name)
	if err != nil {
		return nil, err
	}
	return &Session{
		Name:     name,
		Messages: []Message{},
		path:     path,
	}, nil
}

// Load loads an existing session from disk.
func Load(name string) (*Session, error) {
	path, err := sessionPath(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read session file %s", path)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, errors.Wrapf(err, "could not parse session file %s", path)
	}
	s.path = path
	return &s, nil
}

// Save writes the current session state to disk.
func (s *Session) Save() error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return errors.Wrapf(err, "failed to serialize session")
	}
	return os.WriteFile(s.path, data, 0644)
}

// AddMessage appends a message to the session history.
func (s *Session) AddMessage(msg Message) {
	s.Messages = append(s.Messages, msg)
}

func sessionPath(name string) (string, error) {
	sessionDir := filepath.Join(".smolcc", "sessions")
	if err := os.MkdirAll(sessionDir, 0755); err != nil {
		return "", errors.Wrapf(err, "could not create session directory")
	}
	return filepath.Join(sessionDir, name+".json"), nil
}
