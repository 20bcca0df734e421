package tools

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aniemerg/smolcc/config"
	"github.com/aniemerg/smolcc/errors"
)

const maxViewLines = 2000

// ViewFileTool reads a file, optionally windowed by line offset and limit.
type ViewFileTool struct {
	fsAccess *config.FilesystemAccess
}

func (t *ViewFileTool) Name() string { return "View" }

func (t *ViewFileTool) Description() string {
	return "Reads a file and returns its contents with line numbers. Args: path (string), " +
		"offset (number, optional 1-based first line), limit (number, optional line count)."
}

func (t *ViewFileTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	path, ok := args["path"].(string)
	if !ok {
		return "", errors.New("missing or invalid 'path' argument")
	}

	hidden, err := isPathRestricted(path, t.fsAccess.Hidden)
	if err != nil {
		return "", err
	}
	if hidden {
		return "", errors.New("access denied: path '%s' is hidden", path)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read file '%s'", path)
	}

	lines := strings.Split(string(content), "\n")
	offset := intArg(args, "offset", 1)
	limit := intArg(args, "limit", maxViewLines)
	if offset < 1 {
		offset = 1
	}
	if offset > len(lines) {
		return "", errors.New("offset %d is past the end of '%s' (%d lines)", offset, path, len(lines))
	}
	end := offset - 1 + limit
	if end > len(lines) {
		end = len(lines)
	}

	var b strings.Builder
	for i := offset - 1; i < end; i++ {
		fmt.Fprintf(&b, "%6d\t%s\n", i+1, lines[i])
	}
	return b.String(), nil
}

// intArg reads a numeric argument, which arrives as float64 from JSON.
func intArg(args map[string]interface{}, key string, fallback int) int {
	switch v := args[key].(type) {
	case float64:
		return int(v)
	case int:
		return v
	default:
		return fallback
	}
}
