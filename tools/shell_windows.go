//go:build windows

package tools

import (
	"context"
	"fmt"
	"os/exec"

	"github.com/aniemerg/smolcc/errors"
)

// newShellTool returns the shell execution tool for this platform.
func newShellTool(allowedCommands []string) Tool {
	return &PowerShellTool{allowedCommands: allowedCommands}
}

// PowerShellTool runs allowlisted commands through PowerShell.
type PowerShellTool struct {
	allowedCommands []string
}

func (t *PowerShellTool) Name() string { return "PowerShell" }

func (t *PowerShellTool) Description() string {
	if len(t.allowedCommands) == 0 {
		return "Executes a PowerShell command. No commands are currently allowed; the user " +
			"must add allowed_commands patterns to the configuration. Args: command (string)."
	}

	allowedList := "Allowed command patterns:\n"
	for _, cmd := range t.allowedCommands {
		allowedList += fmt.Sprintf("- %s\n", cmd)
	}
	return fmt.Sprintf("Executes a PowerShell command. Args: command (string).\n%s", allowedList)
}

func (t *PowerShellTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
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

	cmd := exec.CommandContext(ctx, "powershell", "-NoProfile", "-Command", command)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", errors.Wrapf(err, "command execution failed. Output:\n%s", string(output))
	}
	return fmt.Sprintf("Command executed successfully. Output:\n%s", string(output)), nil
}
