package tools

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aniemerg/smolcc/errors"
)

// ChangeDirTool changes the process working directory, which is what every
// relative path in later tool calls resolves against.
type ChangeDirTool struct{}

func (t *ChangeDirTool) Name() string { return "CD" }

func (t *ChangeDirTool) Description() string {
	return "Changes the working directory for all subsequent tool calls. " +
		"Args: path (string, absolute or relative; '~' is expanded)."
}

func (t *ChangeDirTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	path, ok := args["path"].(string)
	if !ok {
		return "", errors.New("missing or invalid 'path' argument")
	}

	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", errors.Wrapf(err, "could not expand '~'")
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", errors.Wrapf(err, "could not resolve path '%s'", path)
		}
		path = abs
	}

	if err := os.Chdir(path); err != nil {
		return "", errors.Wrapf(err, "could not change to directory '%s'", path)
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrapf(err, "could not get working directory")
	}
	return fmt.Sprintf("Working directory is now %s", wd), nil
}
