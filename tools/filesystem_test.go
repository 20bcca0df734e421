package tools

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aniemerg/smolcc/config"
)

func TestViewFileTool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tool := &ViewFileTool{fsAccess: &config.FilesystemAccess{}}
	out, err := tool.Execute(context.Background(), map[string]interface{}{"path": path})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(out, "1\tone") || !strings.Contains(out, "3\tthree") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestViewFileToolWindow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sample.txt")
	if err := os.WriteFile(path, []byte("one\ntwo\nthree\nfour\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tool := &ViewFileTool{fsAccess: &config.FilesystemAccess{}}
	// offset/limit arrive as float64 from JSON decoding.
	out, err := tool.Execute(context.Background(), map[string]interface{}{
		"path":   path,
		"offset": float64(2),
		"limit":  float64(2),
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if strings.Contains(out, "one") || !strings.Contains(out, "two") || !strings.Contains(out, "three") || strings.Contains(out, "four") {
		t.Errorf("window not applied:\n%s", out)
	}
}

func TestViewFileToolHiddenPath(t *testing.T) {
	tool := &ViewFileTool{fsAccess: &config.FilesystemAccess{Hidden: []string{"secrets/**"}}}
	_, err := tool.Execute(context.Background(), map[string]interface{}{"path": "secrets/key.pem"})
	if err == nil || !strings.Contains(err.Error(), "hidden") {
		t.Fatalf("expected hidden-path error, got %v", err)
	}
}

func TestWriteFileTool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new", "file.txt")

	tool := &WriteFileTool{fsAccess: &config.FilesystemAccess{}}
	_, err := tool.Execute(context.Background(), map[string]interface{}{
		"path":    path,
		"content": "hello\n",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "hello\n" {
		t.Errorf("unexpected content: %q", data)
	}
}

func TestWriteFileToolReadOnlyPath(t *testing.T) {
	tool := &WriteFileTool{fsAccess: &config.FilesystemAccess{ReadOnly: []string{"locked/**"}}}
	_, err := tool.Execute(context.Background(), map[string]interface{}{
		"path":    "locked/file.txt",
		"content": "x",
	})
	if err == nil || !strings.Contains(err.Error(), "read-only") {
		t.Fatalf("expected read-only error, got %v", err)
	}
}

func TestEditFileTool(t *testing.T) {
	path := filepath.Join(t.TempDir(), "code.go")
	if err := os.WriteFile(path, []byte("const limit = 10\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tool := &EditFileTool{fsAccess: &config.FilesystemAccess{}}
	_, err := tool.Execute(context.Background(), map[string]interface{}{
		"path":       path,
		"old_string": "limit = 10",
		"new_string": "limit = 20",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "const limit = 20\n" {
		t.Errorf("unexpected content: %q", data)
	}
}

func TestEditFileToolAmbiguousMatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "code.go")
	if err := os.WriteFile(path, []byte("x = 1\nx = 1\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tool := &EditFileTool{fsAccess: &config.FilesystemAccess{}}
	_, err := tool.Execute(context.Background(), map[string]interface{}{
		"path":       path,
		"old_string": "x = 1",
		"new_string": "x = 2",
	})
	if err == nil || !strings.Contains(err.Error(), "occurs 2 times") {
		t.Fatalf("expected ambiguity error, got %v", err)
	}
}

func TestEditFileToolMissingMatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "code.go")
	if err := os.WriteFile(path, []byte("y = 1\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tool := &EditFileTool{fsAccess: &config.FilesystemAccess{}}
	_, err := tool.Execute(context.Background(), map[string]interface{}{
		"path":       path,
		"old_string": "not there",
		"new_string": "z",
	})
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not-found error, got %v", err)
	}
}

func TestGlobTool(t *testing.T) {
	root := t.TempDir()
	for _, name := range []string{"a.go", "b.go", "c.txt", "sub/d.go"} {
		path := filepath.Join(root, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("write: %v", err)
		}
	}

	tool := &GlobTool{}
	out, err := tool.Execute(context.Background(), map[string]interface{}{
		"pattern": "**/*.go",
		"path":    root,
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	for _, want := range []string{"a.go", "b.go", "sub/d.go"} {
		if !strings.Contains(out, want) {
			t.Errorf("match '%s' missing:\n%s", want, out)
		}
	}
	if strings.Contains(out, "c.txt") {
		t.Errorf("non-matching file present:\n%s", out)
	}
}

func TestGrepTool(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "main.go"), []byte("package main\n// TODO: fix\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(filepath.Join(root, "other.txt"), []byte("TODO elsewhere\n"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	tool := &GrepTool{}
	out, err := tool.Execute(context.Background(), map[string]interface{}{
		"pattern": "TODO",
		"path":    root,
		"include": "**/*.go",
	})
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}
	if !strings.Contains(out, "main.go:2:") {
		t.Errorf("expected match missing:\n%s", out)
	}
	if strings.Contains(out, "other.txt") {
		t.Errorf("include filter not applied:\n%s", out)
	}
}
