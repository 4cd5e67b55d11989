package genai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/spetersoncode/toolbox/schema"
	"github.com/spetersoncode/toolbox/tool"
)

type fakeInvoker struct {
	result string
	err    error
	args   map[string]any
}

func (f *fakeInvoker) Invoke(ctx context.Context, name string, args map[string]any, headers map[string]string) (string, error) {
	f.args = args
	return f.result, f.err
}

func weatherTool(inv tool.Invoker) *tool.Tool {
	return tool.New(inv, "get-weather", "Look up the weather", []schema.Descriptor{
		{Name: "city", Kind: schema.KindString, Required: true},
		{Name: "days", Kind: schema.KindInt},
		{Name: "tags", Kind: schema.KindArray, Items: &schema.Descriptor{Name: "tag", Kind: schema.KindString}},
	}, nil)
}

func TestDeclaration(t *testing.T) {
	t.Run("maps the visible schema to genai types", func(t *testing.T) {
		d := Declaration(weatherTool(&fakeInvoker{}))

		assert.Equal(t, "get-weather", d.Name)
		assert.Equal(t, "Look up the weather", d.Description)
		require.NotNil(t, d.Parameters)
		assert.Equal(t, genai.TypeObject, d.Parameters.Type)
		assert.Equal(t, genai.TypeString, d.Parameters.Properties["city"].Type)
		assert.Equal(t, genai.TypeInteger, d.Parameters.Properties["days"].Type)
		assert.Equal(t, genai.TypeArray, d.Parameters.Properties["tags"].Type)
		assert.Equal(t, genai.TypeString, d.Parameters.Properties["tags"].Items.Type)
		assert.Equal(t, []string{"city"}, d.Parameters.Required)
	})

	t.Run("bound parameters are not declared", func(t *testing.T) {
		bound, err := weatherTool(&fakeInvoker{}).Bind("city", "Berlin")
		require.NoError(t, err)

		d := Declaration(bound)
		assert.NotContains(t, d.Parameters.Properties, "city")
		assert.Empty(t, d.Parameters.Required)
	})
}

func TestDeclarations(t *testing.T) {
	t.Run("groups all functions under one tool", func(t *testing.T) {
		inv := &fakeInvoker{}
		tools := Declarations([]*tool.Tool{
			weatherTool(inv),
			tool.New(inv, "get-alerts", "Active weather alerts", nil, nil),
		})

		require.Len(t, tools, 1)
		require.Len(t, tools[0].FunctionDeclarations, 2)
		assert.Equal(t, "get-weather", tools[0].FunctionDeclarations[0].Name)
		assert.Equal(t, "get-alerts", tools[0].FunctionDeclarations[1].Name)
	})

	t.Run("empty input yields nil", func(t *testing.T) {
		assert.Nil(t, Declarations(nil))
	})
}

func TestCall(t *testing.T) {
	ctx := context.Background()

	t.Run("dispatches the function call and returns the result", func(t *testing.T) {
		inv := &fakeInvoker{result: "sunny"}
		tl := weatherTool(inv)

		fr, err := Call(ctx, tl, genai.FunctionCall{
			ID:   "fc-1",
			Name: "get-weather",
			Args: map[string]any{"city": "Berlin"},
		})
		require.NoError(t, err)

		assert.Equal(t, "fc-1", fr.ID)
		assert.Equal(t, "get-weather", fr.Name)
		assert.Equal(t, map[string]any{"result": "sunny"}, fr.Response)
		assert.Equal(t, "Berlin", inv.args["city"])
	})

	t.Run("invocation failures are reported to the model", func(t *testing.T) {
		inv := &fakeInvoker{err: errors.New("db down")}
		tl := weatherTool(inv)

		fr, err := Call(ctx, tl, genai.FunctionCall{
			Name: "get-weather",
			Args: map[string]any{"city": "Berlin"},
		})
		require.NoError(t, err)
		assert.Contains(t, fr.Response["error"], "db down")
	})

	t.Run("name mismatch is an error", func(t *testing.T) {
		_, err := Call(ctx, weatherTool(&fakeInvoker{}), genai.FunctionCall{Name: "other-tool"})
		assert.Error(t, err)
	})
}
