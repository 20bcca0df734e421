package tools

import (
	"context"
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/aniemerg/smolcc/config"
	"github.com/aniemerg/smolcc/errors"
	"github.com/aniemerg/smolcc/tools/mcp"
	"github.com/bmatcuk/doublestar/v4"
)

// Tool defines the interface for any action the agent can take.
type Tool interface {
	Name() string
	Description() string
	Execute(ctx context.Context, args map[string]interface{}) (string, error)
}

// Registry holds every tool the assistant can dispatch. It is populated at
// startup by direct reference; there is no runtime discovery.
type Registry struct {
	tools      map[string]Tool
	mcpClients map[string]*mcp.Client
}

// NewRegistry builds the registry from configuration. The shell tool variant
// is selected at compile time per platform.
func NewRegistry(cfg *config.Config) (*Registry, error) {
	r := &Registry{
		tools:      make(map[string]Tool),
		mcpClients: make(map[string]*mcp.Client),
	}

	r.Register(&ListDirTool{ignore: cfg.IgnorePatterns})
	r.Register(&ViewFileTool{fsAccess: &cfg.FilesystemAccess})
	r.Register(&WriteFileTool{fsAccess: &cfg.FilesystemAccess})
	r.Register(&EditFileTool{fsAccess: &cfg.FilesystemAccess})
	r.Register(&GlobTool{})
	r.Register(&GrepTool{})
	r.Register(&ChangeDirTool{})
	r.Register(&UserInputTool{})
	r.Register(newShellTool(cfg.AllowedCommands))

	for _, server := range cfg.AdditionalMCPServers {
		client, err := mcp.NewClient(server.Name, server.Command, server.Args)
		if err != nil {
			fmt.Printf("Warning: could not start MCP server '%s': %v\n", server.Name, err)
			continue
		}
		r.mcpClients[server.Name] = client
		for _, t := range client.Tools() {
			r.Register(t)
		}
	}

	return r, nil
}

func (r *Registry) Register(t Tool) {
	r.tools[t.Name()] = t
}

func (r *Registry) GetTool(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// ActiveTools returns the tools named by the toolset, in stable order. A nil
// toolset selects every registered tool. A name ending in ".*" selects every
// registered tool with that prefix (used for MCP servers).
func (r *Registry) ActiveTools(ts *config.Toolset) ([]Tool, error) {
	var names []string
	if ts == nil {
		for name := range r.tools {
			names = append(names, name)
		}
	} else {
		for _, entry := range ts.Tools {
			if suffix, ok := strings.CutSuffix(entry, ".*"); ok {
				matched := false
				for name := range r.tools {
					if strings.HasPrefix(name, suffix+".") {
						names = append(names, name)
						matched = true
					}
				}
				if !matched {
					fmt.Printf("Warning: no registered tools match '%s'\n", entry)
				}
				continue
			}
			if _, ok := r.GetTool(entry); !ok {
				return nil, errors.New("tool '%s' from toolset '%s' is not registered", entry, ts.Name)
			}
			names = append(names, entry)
		}
	}
	sort.Strings(names)

	active := make([]Tool, 0, len(names))
	for _, name := range names {
		t, _ := r.GetTool(name)
		active = append(active, t)
	}
	return active, nil
}

// Close stops all MCP server subprocesses owned by the registry.
func (r *Registry) Close() {
	for _, client := range r.mcpClients {
		if err := client.Stop(); err != nil {
			fmt.Printf("Warning: could not stop MCP server '%s': %v\n", client.Name, err)
		}
	}
}

// isPathRestricted checks if a path matches any of the glob patterns.
func isPathRestricted(path string, patterns []string) (bool, error) {
	for _, pattern := range patterns {
		match, err := doublestar.PathMatch(pattern, path)
		if err != nil {
			return false, errors.New("invalid glob pattern '%s'", pattern)
		}
		if match {
			return true, nil
		}
	}
	return false, nil
}

// isCommandAllowed checks if a command matches the allowlist (regex entries).
func isCommandAllowed(command string, allowed []string) (bool, error) {
	if strings.TrimSpace(command) == "" {
		return false, nil
	}

	for _, pattern := range allowed {
		re, err := regexp.Compile(pattern)
		if err != nil {
			fmt.Printf("Warning: invalid regex in allowed_commands '%s': %v\n", pattern, err)
			// Fall back to exact comparison for an invalid pattern.
			if command == pattern {
				return true, nil
			}
			continue
		}
		if re.MatchString(command) {
			return true, nil
		}
	}
	return false, nil
}
