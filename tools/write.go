package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aniemerg/smolcc/config"
	"github.com/aniemerg/smolcc/errors"
)

// WriteFileTool writes a file, replacing it entirely. Parent directories are
// created as needed.
type WriteFileTool struct {
	fsAccess *config.FilesystemAccess
}

func (t *WriteFileTool) Name() string { return "Write" }

func (t *WriteFileTool) Description() string {
	return "Writes content to a file, creating it or replacing it entirely. " +
		"Args: path (string), content (string)."
}

func (t *WriteFileTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	path, pathOk := args["path"].(string)
	content, contentOk := args["content"].(string)
	if !pathOk || !contentOk {
		return "", errors.New("missing or invalid 'path' or 'content' arguments")
	}

	if err := checkWritable(path, t.fsAccess); err != nil {
		return "", err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", errors.Wrapf(err, "failed to create parent directory for '%s'", path)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", errors.Wrapf(err, "failed to write to file '%s'", path)
	}
	return fmt.Sprintf("Successfully wrote %d bytes to %s", len(content), path), nil
}

// checkWritable enforces the hidden and read-only path restrictions shared by
// the mutating file tools.
func checkWritable(path string, fsAccess *config.FilesystemAccess) error {
	hidden, err := isPathRestricted(path, fsAccess.Hidden)
	if err != nil {
		return err
	}
	if hidden {
		return errors.New("access denied: path '%s' is hidden", path)
	}

	readOnly, err := isPathRestricted(path, fsAccess.ReadOnly)
	if err != nil {
		return err
	}
	if readOnly {
		return errors.New("access denied: path '%s' is read-only", path)
	}
	return nil
}
