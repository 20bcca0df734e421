// Package mcp connects the assistant to external Model Context Protocol tool
// servers. Each configured server runs as a subprocess; its tools are
// discovered once at startup and registered under "<server>.<tool>" names.
package mcp

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/aniemerg/smolcc/errors"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
)

// Client manages the connection to a single MCP server subprocess.
type Client struct {
	Name  string
	cmd   *exec.Cmd
	conn  *mcpsdk.ClientSession
	tools []*Tool
}

// NewClient starts the server subprocess, connects and discovers its tools.
func NewClient(name, command string, args []string) (*Client, error) {
	cmd := exec.Command(command, args...)
	cmd.Stderr = os.Stderr

	ctx := context.Background()
	sdkClient := mcpsdk.NewClient(&mcpsdk.Implementation{Name: "smolcc", Version: "v1.0.0"}, nil)
	conn, err := sdkClient.Connect(ctx, mcpsdk.NewCommandTransport(cmd))
	if err != nil {
		if cmd.Process != nil {
			cmd.Process.Kill()
		}
		return nil, errors.Wrapf(err, "failed to connect to MCP server '%s'", name)
	}

	client := &Client{Name: name, cmd: cmd, conn: conn}

	params := &mcpsdk.ListToolsParams{}
	for {
		list, err := conn.ListTools(ctx, params)
		if err != nil {
			client.Stop()
			return nil, errors.Wrapf(err, "failed to list tools from MCP server '%s'", name)
		}
		for _, t := range list.Tools {
			client.tools = append(client.tools, &Tool{
				serverName:  name,
				toolName:    t.Name,
				description: t.Description,
				client:      client,
			})
		}
		if list.NextCursor == "" {
			break
		}
		params.Cursor = list.NextCursor
	}

	return client, nil
}

// Tools returns the tools discovered on this server.
func (c *Client) Tools() []*Tool {
	return c.tools
}

// Stop terminates the server subprocess.
func (c *Client) Stop() error {
	if c.conn != nil {
		c.conn.Close()
	}
	if c.cmd != nil && c.cmd.Process != nil {
		return c.cmd.Process.Kill()
	}
	return nil
}

// Tool is one tool exposed by an MCP server. It satisfies the registry's Tool
// interface.
type Tool struct {
	serverName  string
	toolName    string
	description string
	client      *Client
}

// Name returns the qualified "<server>.<tool>" name, which keeps tools from
// different servers from colliding in the registry.
func (t *Tool) Name() string {
	return fmt.Sprintf("%s.%s", t.serverName, t.toolName)
}

func (t *Tool) Description() string {
	return t.description
}

// Execute forwards the call to the server and concatenates its text output.
func (t *Tool) Execute(ctx context.Context, args map[string]interface{}) (string, error) {
	result, err := t.client.conn.CallTool(ctx, &mcpsdk.CallToolParams{
		Name:      t.toolName,
		Arguments: args,
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to call tool '%s'", t.Name())
	}

	out := ""
	for _, content := range result.Content {
		if text, ok := content.(*mcpsdk.TextContent); ok {
			out += text.Text
		}
	}
	return out, nil
}
