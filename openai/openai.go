// Package openai adapts Toolbox tools for use with the OpenAI SDK's chat
// completions API.
package openai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/shared"

	"github.com/spetersoncode/toolbox/schema"
	"github.com/spetersoncode/toolbox/tool"
)

// Param converts one tool's visible schema to an OpenAI tool parameter.
func Param(t *tool.Tool) (openai.ChatCompletionToolParam, error) {
	raw, err := schema.JSONSchema(t.Parameters())
	if err != nil {
		return openai.ChatCompletionToolParam{}, err
	}

	var params shared.FunctionParameters
	if err := json.Unmarshal(raw, &params); err != nil {
		return openai.ChatCompletionToolParam{}, err
	}

	return openai.ChatCompletionToolParam{
		Function: shared.FunctionDefinitionParam{
			Name:        t.Name(),
			Description: openai.String(t.Description()),
			Parameters:  params,
		},
	}, nil
}

// Params converts Toolbox tools to OpenAI tool parameters.
func Params(tools []*tool.Tool) ([]openai.ChatCompletionToolParam, error) {
	if len(tools) == 0 {
		return nil, nil
	}
	result := make([]openai.ChatCompletionToolParam, len(tools))
	for i, t := range tools {
		p, err := Param(t)
		if err != nil {
			return nil, err
		}
		result[i] = p
	}
	return result, nil
}

// Call invokes the tool with the arguments of a model tool call and returns
// the tool message to append to the conversation. Invocation errors are
// reported to the model in the message content so it can recover; only
// argument-decoding failures return an error.
func Call(ctx context.Context, t *tool.Tool, tc openai.ChatCompletionMessageToolCall) (openai.ChatCompletionMessageParamUnion, error) {
	if tc.Function.Name != t.Name() {
		return openai.ChatCompletionMessageParamUnion{},
			fmt.Errorf("openai: tool call %q does not match tool %q", tc.Function.Name, t.Name())
	}

	args := map[string]any{}
	if tc.Function.Arguments != "" {
		if err := json.Unmarshal([]byte(tc.Function.Arguments), &args); err != nil {
			return openai.ChatCompletionMessageParamUnion{},
				fmt.Errorf("openai: decoding arguments for %s: %w", t.Name(), err)
		}
	}

	result, err := t.Invoke(ctx, args)
	if err != nil {
		return openai.ToolMessage(err.Error(), tc.ID), nil
	}
	return openai.ToolMessage(result, tc.ID), nil
}
