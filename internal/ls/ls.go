// Package ls implements the directory listing engine behind the LS tool: a
// capped breadth-first scan of a filesystem subtree, filtered by a skip
// predicate, flattened into a sorted entry list, rebuilt as a tree and
// rendered as indented text.
package ls

import (
	stderrors "errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aniemerg/smolcc/errors"
	"github.com/bmatcuk/doublestar/v4"
)

// MaxFiles caps how many file entries a single listing may contain.
// Directory entries do not count against the cap.
const MaxFiles = 1000

// TruncationBanner is prepended to the rendered tree when the scan stopped at
// the cap with work still queued.
var TruncationBanner = fmt.Sprintf("There are more than %d files in the repository. "+
	"Use the LS tool (passing a specific path), Bash tool, and other tools to explore "+
	"nested directories. The first %d files and directories are included below:\n\n",
	MaxFiles, MaxFiles)

var (
	// ErrPathNotFound reports that the requested root path does not exist.
	ErrPathNotFound = stderrors.New("path does not exist")
	// ErrNotADirectory reports that the requested root path is not a directory.
	ErrNotADirectory = stderrors.New("path is not a directory")
)

// List renders the directory tree rooted at path as indented text. A relative
// path is resolved against the process working directory first. Ignore
// patterns use glob syntax and are matched against each entry's path relative
// to the scan root. Failures inside the tree (unreadable or vanished
// directories) are absorbed; only a bad root is reported as an error.
func List(path string, ignorePatterns []string) (string, error) {
	if !filepath.IsAbs(path) {
		abs, err := filepath.Abs(path)
		if err != nil {
			return "", errors.Wrapf(err, "could not resolve path '%s'", path)
		}
		path = abs
	}

	for _, pattern := range ignorePatterns {
		if !doublestar.ValidatePattern(pattern) {
			return "", errors.New("invalid glob pattern '%s'", pattern)
		}
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(ErrPathNotFound, "path '%s'", path)
		}
		return "", errors.Wrapf(err, "could not stat path '%s'", path)
	}
	if !info.IsDir() {
		return "", errors.Wrapf(ErrNotADirectory, "path '%s'", path)
	}

	result := scanTree(path, ignorePatterns)
	rendered := render(buildForest(result.Entries), path)
	if result.Truncated {
		return TruncationBanner + rendered, nil
	}
	return rendered, nil
}
