package agent

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/aniemerg/smolcc/errors"
	"github.com/aniemerg/smolcc/internal/ls"
	"github.com/aniemerg/smolcc/tools"
)

// BuildSystemPrompt assembles the system prompt: assistant identity, the
// current environment, a snapshot of the working directory tree and the
// available tool inventory.
func BuildSystemPrompt(activeTools []tools.Tool) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Wrapf(err, "could not get working directory")
	}

	var b strings.Builder
	b.WriteString("You are SmolCC, a lightweight code assistant. You help with file operations, ")
	b.WriteString("code analysis and project management using the tools available to you. ")
	b.WriteString("Prefer tools over guessing; read files before editing them.\n\n")

	fmt.Fprintf(&b, "Working directory: %s\n", wd)
	fmt.Fprintf(&b, "Platform: %s\n", runtime.GOOS)
	fmt.Fprintf(&b, "Date: %s\n\n", time.Now().Format("2006-01-02"))

	// A listing failure (for example an empty or unreadable directory) is not
	// fatal to prompt construction.
	if listing, err := ls.List(wd, nil); err == nil {
		b.WriteString("Current directory contents:\n")
		b.WriteString(listing)
		b.WriteString("\n")
	}

	if len(activeTools) > 0 {
		b.WriteString("Available tools:\n")
		for _, t := range activeTools {
			fmt.Fprintf(&b, "- %s\n", t.Name())
		}
	}

	return b.String(), nil
}
