package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/spetersoncode/toolbox/tool"
)

// ServerOption configures a Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	name    string
	version string
}

// WithName sets the server name reported to MCP clients.
func WithName(name string) ServerOption {
	return func(c *serverConfig) {
		c.name = name
	}
}

// WithVersion sets the server version reported to MCP clients.
func WithVersion(version string) ServerOption {
	return func(c *serverConfig) {
		c.version = version
	}
}

// NewServer creates an MCP server exposing the given Toolbox tools.
// Each tool is registered under its remote name; calls are proxied through
// Tool.Invoke, so bound parameters and auth tokens are applied exactly as
// they would be for a direct invocation.
func NewServer(tools []*tool.Tool, opts ...ServerOption) *server.MCPServer {
	cfg := &serverConfig{
		name:    "toolbox-mcp-server",
		version: "1.0.0",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	s := server.NewMCPServer(
		cfg.name,
		cfg.version,
		server.WithToolCapabilities(true),
	)

	for _, t := range tools {
		s.AddTool(Convert(t), invokeHandler(t))
	}

	return s
}

// invokeHandler wraps a Toolbox tool as an MCP tool handler.
func invokeHandler(t *tool.Tool) func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args := map[string]any{}
		if req.Params.Arguments != nil {
			data, err := json.Marshal(req.Params.Arguments)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("failed to marshal arguments: %v", err)), nil
			}
			if err := json.Unmarshal(data, &args); err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("arguments must be an object: %v", err)), nil
			}
		}

		result, err := t.Invoke(ctx, args)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		return mcp.NewToolResultText(result), nil
	}
}

// ServeStdio starts an MCP server over stdin/stdout, the standard transport
// for MCP servers invoked as subprocesses.
func ServeStdio(tools []*tool.Tool, opts ...ServerOption) error {
	return server.ServeStdio(NewServer(tools, opts...))
}
