package tools

import (
	"context"
	"testing"

	"github.com/aniemerg/smolcc/config"
)

// fakeTool stands in for registered tools in registry tests.
type fakeTool struct {
	name string
}

func (f *fakeTool) Name() string        { return f.name }
func (f *fakeTool) Description() string { return "fake tool for tests" }
func (f *fakeTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	return "ok", nil
}

func TestNewRegistryRegistersDefaultTools(t *testing.T) {
	registry, err := NewRegistry(&config.Config{})
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	for _, name := range []string{"LS", "View", "Write", "Edit", "GlobSearch", "Grep", "CD", "UserInput"} {
		if _, ok := registry.GetTool(name); !ok {
			t.Errorf("tool '%s' not registered", name)
		}
	}

	// The platform shell tool is registered under its platform name.
	shell := newShellTool(nil)
	if _, ok := registry.GetTool(shell.Name()); !ok {
		t.Errorf("shell tool '%s' not registered", shell.Name())
	}
}

func TestActiveToolsNilToolsetSelectsAll(t *testing.T) {
	registry, err := NewRegistry(&config.Config{})
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	active, err := registry.ActiveTools(nil)
	if err != nil {
		t.Fatalf("ActiveTools failed: %v", err)
	}
	if len(active) != len(registry.tools) {
		t.Errorf("expected all %d tools, got %d", len(registry.tools), len(active))
	}
	// Stable alphabetical order.
	for i := 1; i < len(active); i++ {
		if active[i-1].Name() >= active[i].Name() {
			t.Errorf("active tools not sorted: %s before %s", active[i-1].Name(), active[i].Name())
		}
	}
}

func TestActiveToolsUnknownToolFails(t *testing.T) {
	registry, err := NewRegistry(&config.Config{})
	if err != nil {
		t.Fatalf("NewRegistry failed: %v", err)
	}

	ts := &config.Toolset{Name: "broken", Tools: []string{"NoSuchTool"}}
	if _, err := registry.ActiveTools(ts); err == nil {
		t.Fatal("expected error for unregistered tool")
	}
}

func TestActiveToolsWildcardSelection(t *testing.T) {
	registry := &Registry{tools: make(map[string]Tool)}
	registry.Register(&fakeTool{name: "srv.echo"})
	registry.Register(&fakeTool{name: "srv.read"})
	registry.Register(&fakeTool{name: "other.echo"})

	ts := &config.Toolset{Name: "test", Tools: []string{"srv.*"}}
	active, err := registry.ActiveTools(ts)
	if err != nil {
		t.Fatalf("ActiveTools failed: %v", err)
	}
	if len(active) != 2 {
		t.Fatalf("expected 2 tools, got %d", len(active))
	}
	if active[0].Name() != "srv.echo" || active[1].Name() != "srv.read" {
		t.Errorf("unexpected wildcard selection: %s, %s", active[0].Name(), active[1].Name())
	}
}

func TestIsPathRestricted(t *testing.T) {
	cases := []struct {
		path     string
		patterns []string
		want     bool
	}{
		{"secrets/key.pem", []string{"secrets/**"}, true},
		{"src/main.go", []string{"secrets/**"}, false},
		{".smolcc/config.yaml", []string{".smolcc", ".smolcc/**"}, true},
		{"anything", nil, false},
	}
	for _, tc := range cases {
		got, err := isPathRestricted(tc.path, tc.patterns)
		if err != nil {
			t.Fatalf("isPathRestricted(%q) failed: %v", tc.path, err)
		}
		if got != tc.want {
			t.Errorf("isPathRestricted(%q, %v) = %v, want %v", tc.path, tc.patterns, got, tc.want)
		}
	}
}

func TestIsCommandAllowed(t *testing.T) {
	allowed := []string{"^ls( |$)", "^git status$"}

	cases := []struct {
		command string
		want    bool
	}{
		{"ls -la", true},
		{"git status", true},
		{"git push", false},
		{"rm -rf /", false},
		{"", false},
	}
	for _, tc := range cases {
		got, err := isCommandAllowed(tc.command, allowed)
		if err != nil {
			t.Fatalf("isCommandAllowed(%q) failed: %v", tc.command, err)
		}
		if got != tc.want {
			t.Errorf("isCommandAllowed(%q) = %v, want %v", tc.command, got, tc.want)
		}
	}
}
