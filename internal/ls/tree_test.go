package ls

import (
	"strings"
	"testing"
)

func TestBuildForest(t *testing.T) {
	entries := []string{"a.txt", "b/", "b/c.txt", "b/d/", "b/d/e.txt"}
	forest := buildForest(entries)

	if len(forest) != 2 {
		t.Fatalf("expected 2 top-level nodes, got %d", len(forest))
	}
	if forest[0].Name != "a.txt" || forest[0].Kind != KindFile {
		t.Errorf("unexpected first node: %+v", forest[0])
	}
	b := forest[1]
	if b.Name != "b" || b.Kind != KindDirectory {
		t.Errorf("unexpected second node: %+v", b)
	}
	if len(b.Children) != 2 {
		t.Fatalf("expected 2 children under b, got %d", len(b.Children))
	}
	if b.Children[0].Name != "c.txt" || b.Children[0].Path != "b/c.txt" {
		t.Errorf("unexpected child: %+v", b.Children[0])
	}
	d := b.Children[1]
	if d.Kind != KindDirectory || len(d.Children) != 1 || d.Children[0].Path != "b/d/e.txt" {
		t.Errorf("unexpected nested directory: %+v", d)
	}
}

func TestBuildForestEmptyDirectory(t *testing.T) {
	forest := buildForest([]string{"empty/"})
	if len(forest) != 1 {
		t.Fatalf("expected 1 node, got %d", len(forest))
	}
	node := forest[0]
	if node.Kind != KindDirectory {
		t.Errorf("trailing slash entry should be a directory: %+v", node)
	}
	if len(node.Children) != 0 {
		t.Errorf("empty directory has children: %+v", node.Children)
	}
}

func TestBuildForestImpliedDirectory(t *testing.T) {
	// A parent that only appears as a prefix of deeper entries is still a
	// directory node.
	forest := buildForest([]string{"b/c.txt"})
	if len(forest) != 1 || forest[0].Kind != KindDirectory || forest[0].Name != "b" {
		t.Fatalf("unexpected forest: %+v", forest[0])
	}
}

func TestRenderIndentation(t *testing.T) {
	forest := buildForest([]string{"a.txt", "b/", "b/c.txt"})
	out := render(forest, "/tmp/project")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	want := []string{
		"- /tmp/project/",
		"  - a.txt",
		"  - b/",
		"    - c.txt",
	}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d:\n%s", len(want), len(lines), out)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d: got %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestRenderNormalizesRootSeparator(t *testing.T) {
	out := render(nil, "/tmp/project/")
	if !strings.HasPrefix(out, "- /tmp/project/\n") {
		t.Errorf("root line not normalized: %q", out)
	}
}
