package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aniemerg/smolcc/agent"
	"github.com/aniemerg/smolcc/agent/terminal"
	"github.com/aniemerg/smolcc/config"
	"github.com/aniemerg/smolcc/llm"
	"github.com/aniemerg/smolcc/session"
)

func main() {
	interactiveFlag := flag.Bool("i", false, "Run in interactive mode (prompt for queries)")
	cwdFlag := flag.String("cwd", "", "Set the working directory for the agent")
	modeFlag := flag.String("m", "", "Execution mode: 'auto' or 'prompt'")
	sessionFlag := flag.String("s", "", "Session name to create or use")
	resumeFlag := flag.String("r", "", "Resume a session by name")
	toolsetFlag := flag.String("t", "", "Toolset to use (defaults to all tools)")
	toolVerbosityFlag := flag.String("tool-verbosity", "", "Tool verbosity level: 'none', 'info', or 'all'")
	flag.Parse()

	// Bare invocation prints the welcome text, matching no-argument runs.
	if len(os.Args) == 1 {
		printWelcome()
		return
	}

	if *cwdFlag != "" {
		if err := os.Chdir(*cwdFlag); err != nil {
			fmt.Fprintf(os.Stderr, "Error: cannot change to directory '%s': %v\n", *cwdFlag, err)
			os.Exit(1)
		}
		fmt.Printf("Changed to working directory: %s\n", *cwdFlag)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %+v\n", err)
		os.Exit(1)
	}

	var sess *session.Session
	sessionName := *sessionFlag
	if *resumeFlag != "" {
		sessionName = *resumeFlag
		sess, err = session.Load(sessionName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error resuming session '%s': %+v\n", sessionName, err)
			os.Exit(1)
		}
		fmt.Printf("Resuming session: %s\n", sessionName)
	} else {
		if sessionName == "" {
			sessionName = defaultSessionName()
		}
		sess, err = session.New(sessionName)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating session '%s': %+v\n", sessionName, err)
			os.Exit(1)
		}
	}

	if *modeFlag == "" {
		*modeFlag = "prompt"
	}
	var opMode agent.Mode
	switch *modeFlag {
	case "auto":
		opMode = agent.ModeAuto
	case "prompt":
		opMode = agent.ModePrompt
	default:
		fmt.Fprintf(os.Stderr, "Invalid mode '%s'. Must be 'auto' or 'prompt'.\n", *modeFlag)
		os.Exit(1)
	}

	if *toolVerbosityFlag == "" {
		*toolVerbosityFlag = "none"
	}
	var verbosity agent.ToolVerbosity
	switch *toolVerbosityFlag {
	case "none":
		verbosity = agent.ToolVerbosityNone
	case "info":
		verbosity = agent.ToolVerbosityInfo
	case "all":
		verbosity = agent.ToolVerbosityAll
	default:
		fmt.Fprintf(os.Stderr, "Invalid tool verbosity '%s'. Must be 'none', 'info', or 'all'.\n", *toolVerbosityFlag)
		os.Exit(1)
	}

	client, err := newLLMClient(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing %s client: %+v\n", cfg.LLMClient, err)
		os.Exit(1)
	}

	smolccAgent, err := agent.New(cfg, sess, *toolsetFlag, opMode, client, verbosity)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing agent: %+v\n", err)
		os.Exit(1)
	}
	defer smolccAgent.Close()

	query := strings.Join(flag.Args(), " ")
	term := terminal.New(smolccAgent)

	if query != "" && !*interactiveFlag {
		// Single-question mode: answer and exit.
		if err := term.ProcessTurn(context.Background(), query); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %+v\n", err)
			os.Exit(1)
		}
		return
	}

	fmt.Println("SmolCC is ready. Type your query, or 'help' for a list of capabilities.")
	if err := term.Run(context.Background(), query); err != nil {
		fmt.Fprintf(os.Stderr, "Agent stopped with an error: %+v\n", err)
		os.Exit(1)
	}
}

// newLLMClient selects the provider client named in the configuration.
func newLLMClient(cfg *config.Config) (llm.LLMClient, error) {
	ctx := context.Background()
	switch cfg.LLMClient {
	case "deepseek":
		return llm.NewDeepSeekLLMClient(ctx, cfg.Model)
	case "openai":
		return llm.NewOpenAILLMClient(ctx, cfg.Model)
	case "anthropic":
		return llm.NewAnthropicLLMClient(ctx, cfg.Model)
	case "gemini":
		return llm.NewGeminiLLMClient(ctx, cfg.Model)
	case "bedrock":
		return llm.NewBedrockLLMClient(ctx, cfg.Model)
	default:
		return &llm.MockLLMClient{}, nil
	}
}

func defaultSessionName() string {
	wd, err := os.Getwd()
	if err != nil {
		wd = "smolcc"
	}
	dirName := filepath.Base(wd)
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return fmt.Sprintf("%s_%s", dirName, timestamp)
}

func printWelcome() {
	fmt.Println("Welcome to SmolCC - A Smart Code Assistant")
	fmt.Println(strings.Repeat("=", 50))
	fmt.Println()
	fmt.Println("SmolCC is a lightweight code assistant with tool-using")
	fmt.Println("capabilities for file operations, code analysis and")
	fmt.Println("project management.")
	fmt.Println()
	fmt.Println("USAGE:")
	fmt.Println("  smolcc \"your question\"        ask a single question")
	fmt.Println("  smolcc -i                     interactive mode")
	fmt.Println("  smolcc --cwd /path \"question\" set working directory")
	fmt.Println()
	fmt.Println("AVAILABLE TOOLS:")
	fmt.Println("  File operations: read, edit, create files")
	fmt.Println("  Directory management: list, navigate, change working directory")
	fmt.Println("  Code search: find files, search content with regex")
	fmt.Println("  Shell commands: execute allowlisted commands")
	fmt.Println()
	fmt.Println("EXAMPLE QUERIES:")
	fmt.Println("  \"What files are in the current directory?\"")
	fmt.Println("  \"Find all Go files containing TODO comments\"")
	fmt.Println("  \"Create a new README.md file for this project\"")
	fmt.Println()
	fmt.Println("To get started, try: smolcc -i")
	fmt.Println(strings.Repeat("=", 50))
}
