package tools

import (
	"context"

	"github.com/aniemerg/smolcc/errors"
	"github.com/aniemerg/smolcc/internal/ls"
)

// ListDirTool lists files and directories as an indented tree. The traversal
// itself lives in internal/ls; this type only decodes tool-call arguments and
// merges in the configured default ignore patterns.
type ListDirTool struct {
	ignore []string
}

func (t *ListDirTool) Name() string { return "LS" }

func (t *ListDirTool) Description() string {
	return "Displays a directory's contents-files and sub-directories-at the location " +
		"specified by 'path'. The 'path' argument must be an absolute path (it cannot be " +
		"relative). You may optionally supply an 'ignore' parameter: an array of glob " +
		"patterns that should be skipped, matched against each entry's path relative to " +
		"the listed directory. If you already know the directories you want to scan, the " +
		"GlobSearch and Grep tools are generally the better choice."
}

func (t *ListDirTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	path, ok := args["path"].(string)
	if !ok {
		return "", errors.New("missing or invalid 'path' argument")
	}

	patterns := append([]string(nil), t.ignore...)
	switch raw := args["ignore"].(type) {
	case nil:
	case []interface{}:
		for _, v := range raw {
			s, ok := v.(string)
			if !ok {
				return "", errors.New("'ignore' entries must be strings, got %T", v)
			}
			patterns = append(patterns, s)
		}
	case []string:
		patterns = append(patterns, raw...)
	default:
		return "", errors.New("'ignore' must be an array of glob patterns")
	}

	return ls.List(path, patterns)
}
