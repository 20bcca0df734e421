package ls

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ScanResult is the flat outcome of one traversal. Entries are root-relative,
// use '/' separators on every platform and carry a trailing '/' on
// directories. The list is globally sorted.
type ScanResult struct {
	Entries   []string
	Truncated bool
}

// scanTree walks the subtree under root breadth-first, recording every entry
// that survives the skip predicate until MaxFiles file entries have been
// collected. The root itself is never recorded.
func scanTree(root string, ignorePatterns []string) ScanResult {
	var result ScanResult
	queue := []string{root}
	fileCount := 0

	for len(queue) > 0 {
		if fileCount >= MaxFiles {
			result.Truncated = true
			break
		}
		path := queue[0]
		queue = queue[1:]

		if shouldSkip(root, path, ignorePatterns) {
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			// The entry vanished between enqueue and processing.
			continue
		}

		if path != root {
			rel := relSlash(root, path)
			if info.IsDir() {
				result.Entries = append(result.Entries, rel+"/")
			} else {
				result.Entries = append(result.Entries, rel)
				fileCount++
			}
		}

		if info.IsDir() {
			children, err := os.ReadDir(path)
			if err != nil {
				// Unreadable directories yield zero children.
				continue
			}
			childPaths := make([]string, 0, len(children))
			for _, child := range children {
				childPaths = append(childPaths, filepath.Join(path, child.Name()))
			}
			sort.Strings(childPaths)
			for _, childPath := range childPaths {
				if !shouldSkip(root, childPath, ignorePatterns) {
					queue = append(queue, childPath)
				}
			}
		}
	}

	// The per-directory sort above fixes queue order; this sort fixes the
	// final order independent of BFS interleaving.
	sort.Strings(result.Entries)
	return result
}

// shouldSkip reports whether path is excluded from the listing. Hidden names
// (leading '.'), __pycache__ path segments and caller-supplied glob patterns
// each skip independently. Patterns are matched against the path relative to
// root.
func shouldSkip(root, path string, ignorePatterns []string) bool {
	base := filepath.Base(strings.TrimRight(path, string(os.PathSeparator)))
	if strings.HasPrefix(base, ".") && base != "." {
		return true
	}

	if hasSegment(path, "__pycache__") {
		return true
	}

	if len(ignorePatterns) > 0 {
		rel := relSlash(root, path)
		for _, pattern := range ignorePatterns {
			if ok, err := doublestar.Match(pattern, rel); err == nil && ok {
				return true
			}
		}
	}

	return false
}

// hasSegment reports whether name appears as a complete path segment, so a
// basename that merely contains it is not affected.
func hasSegment(path, name string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(path), "/") {
		if segment == name {
			return true
		}
	}
	return false
}

// relSlash returns path relative to root with '/' separators.
func relSlash(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		rel = path
	}
	return filepath.ToSlash(rel)
}
