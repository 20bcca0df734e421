// Package terminal implements the interactive command-line mode for the
// SmolCC agent.
//
// Users converse with the agent through text prompts. The package handles
// builtin commands (help, cd, exit), tool execution confirmations in prompt
// mode, and the configured verbosity level for tool output.
//
// To use it, create an agent instance and pass it to the terminal:
//
//	term := terminal.New(agentInstance)
//	err := term.Run(ctx, initialPrompt)
//
// In auto mode tools run without confirmation; in prompt mode the user is
// asked before each tool execution.
package terminal
