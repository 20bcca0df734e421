package tools

import (
	"context"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/aniemerg/smolcc/errors"
	"github.com/bmatcuk/doublestar/v4"
)

const maxGlobResults = 100

// GlobTool finds files by glob pattern, relative to a base directory.
type GlobTool struct{}

func (t *GlobTool) Name() string { return "GlobSearch" }

func (t *GlobTool) Description() string {
	return "Finds files matching a glob pattern ('**' crosses directories). " +
		"Args: pattern (string), path (string, optional base directory, defaults to the " +
		"working directory). Returns matching paths relative to the base directory."
}

func (t *GlobTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	pattern, ok := args["pattern"].(string)
	if !ok {
		return "", errors.New("missing or invalid 'pattern' argument")
	}
	base, _ := args["path"].(string)
	if base == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrapf(err, "could not get working directory")
		}
		base = wd
	}

	matches, err := doublestar.Glob(os.DirFS(base), pattern)
	if err != nil {
		return "", errors.Wrapf(err, "glob '%s' failed under '%s'", pattern, base)
	}
	if len(matches) == 0 {
		return fmt.Sprintf("No files match '%s' under %s", pattern, base), nil
	}
	sort.Strings(matches)

	truncated := false
	if len(matches) > maxGlobResults {
		matches = matches[:maxGlobResults]
		truncated = true
	}

	out := strings.Join(matches, "\n")
	if truncated {
		out += fmt.Sprintf("\n... (first %d matches shown, narrow the pattern for more)", maxGlobResults)
	}
	return out, nil
}
