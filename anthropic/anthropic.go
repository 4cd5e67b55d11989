// Package anthropic adapts Toolbox tools for use with the Anthropic SDK's
// messages API.
package anthropic

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"

	"github.com/spetersoncode/toolbox/schema"
	"github.com/spetersoncode/toolbox/tool"
)

// Param converts one tool's visible schema to an Anthropic tool parameter.
func Param(t *tool.Tool) (anthropic.ToolUnionParam, error) {
	raw, err := schema.JSONSchema(t.Parameters())
	if err != nil {
		return anthropic.ToolUnionParam{}, err
	}

	var node map[string]any
	if err := json.Unmarshal(raw, &node); err != nil {
		return anthropic.ToolUnionParam{}, err
	}

	var required []string
	if req, ok := node["required"].([]any); ok {
		for _, r := range req {
			if s, ok := r.(string); ok {
				required = append(required, s)
			}
		}
	}

	return anthropic.ToolUnionParam{
		OfTool: &anthropic.ToolParam{
			Name:        t.Name(),
			Description: anthropic.String(t.Description()),
			InputSchema: anthropic.ToolInputSchemaParam{
				Properties: node["properties"],
				Required:   required,
			},
		},
	}, nil
}

// Params converts Toolbox tools to Anthropic tool parameters.
func Params(tools []*tool.Tool) ([]anthropic.ToolUnionParam, error) {
	if len(tools) == 0 {
		return nil, nil
	}
	result := make([]anthropic.ToolUnionParam, len(tools))
	for i, t := range tools {
		p, err := Param(t)
		if err != nil {
			return nil, err
		}
		result[i] = p
	}
	return result, nil
}

// Call invokes the tool with the input of a tool_use content block and
// returns the tool result block to send back. Invocation errors are
// reported to the model as error results so it can recover; only
// input-decoding failures return an error.
func Call(ctx context.Context, t *tool.Tool, block anthropic.ToolUseBlock) (anthropic.ContentBlockParamUnion, error) {
	if block.Name != t.Name() {
		return anthropic.ContentBlockParamUnion{},
			fmt.Errorf("anthropic: tool use %q does not match tool %q", block.Name, t.Name())
	}

	args := map[string]any{}
	if len(block.Input) > 0 {
		if err := json.Unmarshal(block.Input, &args); err != nil {
			return anthropic.ContentBlockParamUnion{},
				fmt.Errorf("anthropic: decoding input for %s: %w", t.Name(), err)
		}
	}

	result, err := t.Invoke(ctx, args)
	if err != nil {
		return anthropic.NewToolResultBlock(block.ID, err.Error(), true), nil
	}
	return anthropic.NewToolResultBlock(block.ID, result, false), nil
}
