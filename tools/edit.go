package tools

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aniemerg/smolcc/config"
	"github.com/aniemerg/smolcc/errors"
)

// EditFileTool performs a single unique string replacement inside a file. The
// old string must occur exactly once so the edit cannot land somewhere
// unintended.
type EditFileTool struct {
	fsAccess *config.FilesystemAccess
}

func (t *EditFileTool) Name() string { return "Edit" }

func (t *EditFileTool) Description() string {
	return "Replaces one occurrence of a string in a file. The 'old_string' must match " +
		"exactly one location, including whitespace. Args: path (string), old_string " +
		"(string), new_string (string)."
}

func (t *EditFileTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	path, pathOk := args["path"].(string)
	oldString, oldOk := args["old_string"].(string)
	newString, newOk := args["new_string"].(string)
	if !pathOk || !oldOk || !newOk {
		return "", errors.New("missing or invalid 'path', 'old_string' or 'new_string' arguments")
	}
	if oldString == "" {
		return "", errors.New("'old_string' must not be empty; use the Write tool to create files")
	}

	if err := checkWritable(path, t.fsAccess); err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read file '%s'", path)
	}
	content := string(data)

	switch count := strings.Count(content, oldString); count {
	case 0:
		return "", errors.New("'old_string' not found in '%s'", path)
	case 1:
	default:
		return "", errors.New("'old_string' occurs %d times in '%s'; provide more context to make it unique", count, path)
	}

	updated := strings.Replace(content, oldString, newString, 1)
	if err := os.WriteFile(path, []byte(updated), 0644); err != nil {
		return "", errors.Wrapf(err, "failed to write to file '%s'", path)
	}
	return fmt.Sprintf("Successfully edited %s", path), nil
}
