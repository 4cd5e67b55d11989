package tool

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spetersoncode/toolbox/schema"
)

// fakeInvoker records the last call and replies with a canned result.
type fakeInvoker struct {
	result string
	err    error

	calls   int
	name    string
	args    map[string]any
	headers map[string]string
}

func (f *fakeInvoker) Invoke(ctx context.Context, name string, args map[string]any, headers map[string]string) (string, error) {
	f.calls++
	f.name = name
	f.args = args
	f.headers = headers
	return f.result, f.err
}

func userTool(inv Invoker) *Tool {
	return New(inv, "find-user", "Find a user record", []schema.Descriptor{
		{Name: "name", Kind: schema.KindString, Required: true},
		{Name: "age", Kind: schema.KindInt, Required: true},
		{Name: "note", Kind: schema.KindString},
	}, nil)
}

func paramNames(t *Tool) []string {
	params := t.Parameters()
	names := make([]string, len(params))
	for i, p := range params {
		names[i] = p.Name
	}
	return names
}

func TestNew(t *testing.T) {
	t.Run("exposes the manifest schema", func(t *testing.T) {
		tl := userTool(&fakeInvoker{})

		assert.Equal(t, "find-user", tl.Name())
		assert.Equal(t, "Find a user record", tl.Description())
		assert.Equal(t, []string{"name", "age", "note"}, paramNames(tl))

		s := tl.Schema()
		assert.Equal(t, "find-user", s.Name)
		assert.Len(t, s.Parameters, 3)
	})

	t.Run("collects auth services from parameters and tool level", func(t *testing.T) {
		tl := New(&fakeInvoker{}, "secure", "Secure tool", []schema.Descriptor{
			{Name: "user_id", Kind: schema.KindString, AuthSources: []string{"google", "corp-sso"}},
			{Name: "query", Kind: schema.KindString, Required: true},
		}, []string{"api-key"})

		assert.Equal(t, []string{"api-key", "corp-sso", "google"}, tl.UnsatisfiedAuthServices())
	})

	t.Run("no auth means no unsatisfied services", func(t *testing.T) {
		tl := userTool(&fakeInvoker{})
		assert.Empty(t, tl.UnsatisfiedAuthServices())
	})
}

func TestParametersIsolation(t *testing.T) {
	tl := userTool(&fakeInvoker{})

	params := tl.Parameters()
	params[0].Name = "mutated"

	require.Equal(t, "name", tl.Parameters()[0].Name)
}
