// Package genai adapts Toolbox tools for use with the Google Gen AI SDK.
//
// Declarations converts loaded tools to function declarations for a
// generate-content request; Call dispatches a model's function call back
// through the tool:
//
//	tools, _ := c.LoadToolset(ctx, "")
//
//	config := &genai.GenerateContentConfig{Tools: toolboxgenai.Declarations(tools)}
//	resp, _ := g.Models.GenerateContent(ctx, model, contents, config)
//
//	for _, fc := range resp.FunctionCalls() {
//	    fr, err := toolboxgenai.Call(ctx, byName[fc.Name], fc)
//	    ...
//	}
package genai

import (
	"context"
	"fmt"

	"google.golang.org/genai"

	"github.com/spetersoncode/toolbox/schema"
	"github.com/spetersoncode/toolbox/tool"
)

// Declaration converts one tool's visible schema to a genai function
// declaration.
func Declaration(t *tool.Tool) *genai.FunctionDeclaration {
	return &genai.FunctionDeclaration{
		Name:        t.Name(),
		Description: t.Description(),
		Parameters:  objectSchema(t.Parameters()),
	}
}

// Declarations converts Toolbox tools to genai Tools.
func Declarations(tools []*tool.Tool) []*genai.Tool {
	if len(tools) == 0 {
		return nil
	}

	funcs := make([]*genai.FunctionDeclaration, len(tools))
	for i, t := range tools {
		funcs[i] = Declaration(t)
	}
	return []*genai.Tool{{FunctionDeclarations: funcs}}
}

// Call invokes the tool with the arguments of a model function call and
// returns the function response part to send back to the model. Invocation
// errors are reported to the model in the response rather than returned,
// so the model can recover; only argument-encoding failures return an error.
func Call(ctx context.Context, t *tool.Tool, fc genai.FunctionCall) (*genai.FunctionResponse, error) {
	if fc.Name != t.Name() {
		return nil, fmt.Errorf("genai: function call %q does not match tool %q", fc.Name, t.Name())
	}

	result, err := t.Invoke(ctx, fc.Args)
	if err != nil {
		return &genai.FunctionResponse{
			ID:       fc.ID,
			Name:     fc.Name,
			Response: map[string]any{"error": err.Error()},
		}, nil
	}

	return &genai.FunctionResponse{
		ID:       fc.ID,
		Name:     fc.Name,
		Response: map[string]any{"result": result},
	}, nil
}

func objectSchema(params []schema.Descriptor) *genai.Schema {
	s := &genai.Schema{
		Type:       genai.TypeObject,
		Properties: make(map[string]*genai.Schema, len(params)),
	}
	for _, p := range params {
		s.Properties[p.Name] = toSchema(p)
		if p.Required {
			s.Required = append(s.Required, p.Name)
		}
	}
	return s
}

func toSchema(d schema.Descriptor) *genai.Schema {
	switch d.Kind {
	case schema.KindInt:
		return &genai.Schema{Type: genai.TypeInteger, Description: d.Description}
	case schema.KindFloat:
		return &genai.Schema{Type: genai.TypeNumber, Description: d.Description}
	case schema.KindBool:
		return &genai.Schema{Type: genai.TypeBoolean, Description: d.Description}
	case schema.KindArray:
		return &genai.Schema{
			Type:        genai.TypeArray,
			Description: d.Description,
			Items:       toSchema(*d.Items),
		}
	case schema.KindObject:
		s := objectSchema(d.Fields)
		s.Description = d.Description
		return s
	default:
		return &genai.Schema{Type: genai.TypeString, Description: d.Description}
	}
}
