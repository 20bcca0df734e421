package tools

import (
	"bufio"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aniemerg/smolcc/errors"
	"github.com/bmatcuk/doublestar/v4"
)

const maxGrepMatches = 100

// GrepTool searches file contents with a regular expression. Hidden entries
// and bytecode caches are skipped, the same exclusions the LS tool applies.
type GrepTool struct{}

func (t *GrepTool) Name() string { return "Grep" }

func (t *GrepTool) Description() string {
	return "Searches file contents with a Go regular expression. Args: pattern (string), " +
		"path (string, optional base directory), include (string, optional glob filter " +
		"on relative paths, e.g. '**/*.go'). Returns 'path:line: text' matches."
}

func (t *GrepTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	pattern, ok := args["pattern"].(string)
	if !ok {
		return "", errors.New("missing or invalid 'pattern' argument")
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", errors.Wrapf(err, "invalid regular expression '%s'", pattern)
	}

	base, _ := args["path"].(string)
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrapf(err, "could not get working directory")
		}
		base = wd
	}
	include, _ := args["include"].(string)
	if include != "" && !doublestar.ValidatePattern(include) {
		return "", errors.New("invalid glob pattern '%s'", include)
	}

	var matches []string
	err = filepath.WalkDir(base, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			// Unreadable subtrees are skipped, not fatal.
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		name := d.Name()
		if d.IsDir() {
			if path != base && (strings.HasPrefix(name, ".") || name == "__pycache__") {
				return fs.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}

		rel, err := filepath.Rel(base, path)
		if err != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)
		if include != "" {
			if ok, _ := doublestar.Match(include, rel); !ok {
				return nil
			}
		}

		found, err := grepFile(path, rel, re, &matches)
		if err != nil {
			return nil
		}
		if found && len(matches) >= maxGrepMatches {
			return filepath.SkipAll
		}
		return nil
	})
	if err != nil {
		return "", errors.Wrapf(err, "search under '%s' failed", base)
	}

	if len(matches) == 0 {
		return fmt.Sprintf("No matches for '%s' under %s", pattern, base), nil
	}
	out := strings.Join(matches, "\n")
	if len(matches) >= maxGrepMatches {
		out += fmt.Sprintf("\n... (stopped after %d matches)", maxGrepMatches)
	}
	return out, nil
}

func grepFile(path, rel string, re *regexp.Regexp, matches *[]string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	found := false
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if re.MatchString(line) {
			*matches = append(*matches, fmt.Sprintf("%s:%d: %s", rel, lineNo, line))
			found = true
			if len(*matches) >= maxGrepMatches {
				break
			}
		}
	}
	return found, scanner.Err()
}
