package session

import (
	"testing"
)

func TestSessionRoundTrip(t *testing.T) {
	t.Chdir(t.TempDir())

	sess, err := New("test-session")
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	sess.AddMessage(Message{Role: "user", Content: "hello"})
	sess.AddMessage(Message{
		Role:    "assistant",
		Content: "",
		ToolCalls: []ToolCall{{
			ToolCallID: "call_1",
			Name:       "LS",
			Args:       map[string]interface{}{"path": "/tmp"},
		}},
	})
	sess.AddMessage(Message{
		Role:      "tool",
		Content:   "- /tmp/\n",
		ToolCalls: []ToolCall{{ToolCallID: "call_1", Name: "LS"}},
	})

	if err := sess.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load("test-session")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Name != "test-session" {
		t.Errorf("unexpected name: %s", loaded.Name)
	}
	if len(loaded.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(loaded.Messages))
	}
	call := loaded.Messages[1].ToolCalls
	if len(call) != 1 || call[0].Name != "LS" || call[0].Args["path"] != "/tmp" {
		t.Errorf("tool call not preserved: %+v", call)
	}
}

func TestLoadMissingSession(t *testing.T) {
	t.Chdir(t.TempDir())
	if _, err := Load("no-such-session"); err == nil {
		t.Fatal("expected error for missing session")
	}
}
