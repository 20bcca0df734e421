package config

import (
	"os"
	"path/filepath"

	"github.com/aniemerg/smolcc/errors"
	"gopkg.in/yaml.v3"
)

// FilesystemAccess restricts what the file tools may touch. Both lists hold
// glob patterns matched with doublestar semantics.
type FilesystemAccess struct {
	Hidden   []string `yaml:"hidden"`
	ReadOnly []string `yaml:"read_only"`
}

// MCPServer describes an external tool server started as a subprocess.
type MCPServer struct {
	Name    string   `yaml:"name"`
	Command string   `yaml:"command"`
	Args    []string `yaml:"args"`
}

// Toolset names a subset of registered tools the agent may use.
type Toolset struct {
	Name  string   `yaml:"name"`
	Tools []string `yaml:"tools"`
}

type Config struct {
	LLMClient            string           `yaml:"llm"`
	Model                string           `yaml:"model"`
	Toolsets             []Toolset        `yaml:"toolsets"`
	AdditionalMCPServers []MCPServer      `yaml:"additional_mcp_servers"`
	AllowedCommands      []string         `yaml:"allowed_commands"`
	FilesystemAccess     FilesystemAccess `yaml:"filesystem_access"`
	// IgnorePatterns are merged into every LS tool call on top of the
	// caller-supplied patterns.
	IgnorePatterns []string `yaml:"ignore_patterns"`
}

// LoadConfig loads configuration from the user's home directory and the
// current working directory, with the latter taking precedence.
func LoadConfig() (*Config, error) {
	cfg := defaultConfig()

	home, err := os.UserHomeDir()
	if err == nil {
		userConfigPath := filepath.Join(home, ".smolcc", "config.yaml")
		if _, err := os.Stat(userConfigPath); err == nil {
			if err := loadFromFile(userConfigPath, cfg); err != nil {
				return nil, errors.Wrapf(err, "error loading user config")
			}
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrapf(err, "could not get working directory")
	}
	projectConfigPath := filepath.Join(wd, ".smolcc", "config.yaml")
	if _, err := os.Stat(projectConfigPath); err == nil {
		if err := loadFromFile(projectConfigPath, cfg); err != nil {
			return nil, errors.Wrapf(err, "error loading project config")
		}
	}

	return cfg, nil
}

func defaultConfig() *Config {
	return &Config{
		LLMClient: "deepseek",
		Model:     "deepseek-chat",
		FilesystemAccess: FilesystemAccess{
			// The assistant's own state directory stays out of reach.
			Hidden: []string{".smolcc", ".smolcc/**"},
		},
	}
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	// Unmarshal overwrites fields present in the YAML, so project-level
	// config replaces user-level values field by field.
	return yaml.Unmarshal(data, cfg)
}

// GetToolset finds a toolset by name. An empty name selects "default". When
// no toolsets are configured at all, nil is returned and the agent uses every
// registered tool.
func (c *Config) GetToolset(name string) (*Toolset, error) {
	if len(c.Toolsets) == 0 {
		return nil, nil
	}
	if name == "" {
		name = "default"
	}
	for i := range c.Toolsets {
		if c.Toolsets[i].Name == name {
			return &c.Toolsets[i], nil
		}
	}
	if name == "default" {
		return nil, errors.New("toolset 'default' not found in configuration")
	}
	return c.GetToolset("default")
}
