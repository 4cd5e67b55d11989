// Package mcp exposes loaded Toolbox tools to MCP (Model Context Protocol)
// clients.
//
// Tools loaded through the client package can be served to any MCP client,
// such as an editor or desktop assistant, without the client knowing about
// the Toolbox server behind them:
//
//	tools, err := c.LoadToolset(ctx, "my-toolset")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	if err := mcp.ServeStdio(tools); err != nil {
//	    log.Fatal(err)
//	}
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"

	"github.com/spetersoncode/toolbox/schema"
	"github.com/spetersoncode/toolbox/tool"
)

// Convert renders a Toolbox tool as an MCP tool declaration. The visible
// parameter schema is emitted as a raw JSON Schema, so bound and
// auth-resolved parameters never appear to MCP clients.
func Convert(t *tool.Tool) mcp.Tool {
	return mcp.NewToolWithRawSchema(t.Name(), t.Description(), schema.MustJSONSchema(t.Parameters()))
}

// ConvertAll renders a slice of Toolbox tools as MCP tool declarations.
func ConvertAll(tools []*tool.Tool) []mcp.Tool {
	result := make([]mcp.Tool, len(tools))
	for i, t := range tools {
		result[i] = Convert(t)
	}
	return result
}
