//go:build !windows

package tools

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/aniemerg/smolcc/errors"
)

// newShellTool returns the shell execution tool for this platform.
func newShellTool(allowedCommands []string) Tool {
	return &BashTool{allowedCommands: allowedCommands}
}

// BashTool runs allowlisted commands through bash.
type BashTool struct {
	allowedCommands []string
}

func (t *BashTool) Name() string { return "Bash" }

func (t *BashTool) Description() string {
	if len(t.allowedCommands) == 0 {
		return "Executes a bash command. No commands are currently allowed; the user must " +
			"add allowed_commands patterns to the configuration. Args: command (string)."
	}

	allowedList := "Allowed command patterns:\n"
	for _, cmd := range t.allowedCommands {
		allowedList += fmt.Sprintf("- %s\n", cmd)
	}
	return fmt.Sprintf("Executes a bash command. Args: command (string).\n%s", allowedList)
}

func (t *BashTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	command, ok := args["command"].(string)
	if !ok {
		return "", errors.New("missing or invalid 'command' argument")
	}

	allowed, err := isCommandAllowed(command, t.allowedCommands)
	if err != nil {
		return "", err
	}
	if !allowed {
		return "", errors.New("command '%s' is not in the list of allowed commands", command)
	}

	cmd := exec.CommandContext(ctx, "bash", "-c", command)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", errors.Wrapf(err, "command execution failed. Output:\n%s", string(output))
	}
	return fmt.Sprintf("Command executed successfully. Output:\n%s", string(output)), nil
}
