package tools

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestListDirToolExecute(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "main.go"), []byte("package main\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tool := &ListDirTool{}
	out, err := tool.Execute(context.Background(), map[string]interface{}{"path": root})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(out, "main.go") {
		t.Errorf("listing missing main.go:\n%s", out)
	}
}

func TestListDirToolMissingPath(t *testing.T) {
	tool := &ListDirTool{}
	if _, err := tool.Execute(context.Background(), map[string]interface{}{}); err == nil {
		t.Fatal("expected error for missing 'path' argument")
	}
}

func TestListDirToolIgnoreArgument(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"app.log", "app.go"} {
		if err := os.WriteFile(filepath.Join(root, name), []byte("x"), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	tool := &ListDirTool{}
	// Tool-call arguments arrive as []interface{} from JSON decoding.
	out, err := tool.Execute(context.Background(), map[string]interface{}{
		"path":   root,
		"ignore": []interface{}{"*.log"},
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if strings.Contains(out, "app.log") {
		t.Errorf("ignored entry present:\n%s", out)
	}
	if !strings.Contains(out, "app.go") {
		t.Errorf("expected entry missing:\n%s", out)
	}
}

func TestListDirToolConfiguredIgnoreMerged(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"vendor", "src"} {
		if err := os.MkdirAll(filepath.Join(root, name), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
	}

	tool := &ListDirTool{ignore: []string{"vendor"}}
	out, err := tool.Execute(context.Background(), map[string]interface{}{"path": root})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if strings.Contains(out, "vendor") {
		t.Errorf("config-level ignore not applied:\n%s", out)
	}
	if !strings.Contains(out, "src/") {
		t.Errorf("expected directory missing:\n%s", out)
	}
}

func TestListDirToolRejectsBadIgnoreType(t *testing.T) {
	tool := &ListDirTool{}
	_, err := tool.Execute(context.Background(), map[string]interface{}{
		"path":   t.TempDir(),
		"ignore": "not-an-array",
	})
	if err == nil {
		t.Fatal("expected error for non-array 'ignore' argument")
	}
}
