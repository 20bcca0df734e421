package tools

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/aniemerg/smolcc/errors"
)

// UserInputTool lets the model ask the human a question mid-turn.
type UserInputTool struct{}

func (t *UserInputTool) Name() string { return "UserInput" }

func (t *UserInputTool) Description() string {
	return "Asks the user a question and returns their typed answer. " +
		"Args: prompt (string)."
}

func (t *UserInputTool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	prompt, ok := args["prompt"].(string)
	if !ok {
		return "", errors.New("missing or invalid 'prompt' argument")
	}

	fmt.Printf("%s\n> ", prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return "", errors.Wrapf(err, "could not read user input")
	}
	return strings.TrimSpace(answer), nil
}
