package terminal

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aniemerg/smolcc/agent"
	"github.com/aniemerg/smolcc/session"
)

// Terminal handles the interactive CLI mode for the agent.
type Terminal struct {
	agent *agent.Agent
}

// New creates a new Terminal instance.
func New(a *agent.Agent) *Terminal {
	return &Terminal{agent: a}
}

// Run starts the interactive terminal session. An initial prompt from the
// command line is processed before the first read.
func (t *Terminal) Run(ctx context.Context, initialPrompt string) error {
	if initialPrompt != "" {
		if err := t.ProcessTurn(ctx, initialPrompt); err != nil {
			return err
		}
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("smolcc> ")
		if !scanner.Scan() {
			// EOF or read error ends the session.
			break
		}

		userInput := strings.TrimSpace(scanner.Text())
		if userInput == "" {
			continue
		}

		switch {
		case userInput == "exit" || userInput == "quit" || userInput == "/exit" || userInput == "/quit":
			fmt.Println("Goodbye!")
			return scanner.Err()
		case userInput == "help":
			printHelp()
			continue
		case strings.HasPrefix(userInput, "cd "):
			t.changeDirectory(strings.TrimSpace(userInput[3:]))
			continue
		}

		if err := t.ProcessTurn(ctx, userInput); err != nil {
			fmt.Printf("Error: %v\n", err)
		}
	}

	return scanner.Err()
}

// ProcessTurn handles a single user input turn with terminal callbacks.
func (t *Terminal) ProcessTurn(ctx context.Context, userInput string) error {
	callbacks := agent.ProcessCallbacks{
		OnAssistantMessage: func(message string) {
			fmt.Printf("SmolCC: %s\n", message)
		},
		OnToolCall: func(toolCall session.ToolCall) {
			if t.agent.Verbosity == agent.ToolVerbosityAll {
				fmt.Printf("SmolCC wants to call tool `%s` with args: %v\n", toolCall.Name, toolCall.Args)
			} else if t.agent.Verbosity == agent.ToolVerbosityInfo {
				fmt.Printf("SmolCC wants to call tool `%s`\n", toolCall.Name)
			}
		},
		OnToolResult: func(toolCall session.ToolCall, result string) {
			if t.agent.Verbosity == agent.ToolVerbosityAll {
				fmt.Printf("Tool `%s` output: %s\n", toolCall.Name, result)
			}
		},
		ShouldExecuteTool: func(toolCall session.ToolCall) bool {
			if t.agent.Mode == agent.ModePrompt {
				fmt.Print("Do you want to allow this? (y/n): ")
				reader := bufio.NewReader(os.Stdin)
				answer, _ := reader.ReadString('\n')
				return strings.TrimSpace(strings.ToLower(answer)) == "y"
			}
			return true
		},
		OnWarning: func(warning string) {
			fmt.Printf("Warning: %s\n", warning)
		},
	}

	return t.agent.ProcessUserInput(ctx, userInput, callbacks)
}

// changeDirectory handles the builtin `cd <path>` command: it moves the
// process working directory and refreshes the agent's context so the model
// sees the new location.
func (t *Terminal) changeDirectory(path string) {
	if path == "" {
		fmt.Println("Usage: cd <directory_path>")
		return
	}
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Printf("Error: cannot expand '~': %v\n", err)
			return
		}
		path = filepath.Join(home, strings.TrimPrefix(path, "~"))
	}
	if err := os.Chdir(path); err != nil {
		fmt.Printf("Error: cannot change to directory '%s': %v\n", path, err)
		return
	}
	wd, _ := os.Getwd()
	fmt.Printf("Changed to working directory: %s\n", wd)
	if err := t.agent.RefreshContext(); err != nil {
		fmt.Printf("Warning: could not refresh agent context: %v\n", err)
	}
}

func printHelp() {
	fmt.Println("Available capabilities:")
	fmt.Println("  File operations: read, edit and create files")
	fmt.Println("  Directory management: list contents, navigate with 'cd <path>'")
	fmt.Println("  Code search: find files by pattern, search content with regex")
	fmt.Println("  Shell commands: run allowlisted commands")
	fmt.Println()
	fmt.Println("Builtin commands:")
	fmt.Println("  help        show this message")
	fmt.Println("  cd <path>   change working directory (updates agent context)")
	fmt.Println("  exit, quit  end the session")
	fmt.Println()
	fmt.Println("Anything else is sent to the assistant as a query.")
}
