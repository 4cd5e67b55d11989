package client

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spetersoncode/toolbox"
)

// fakeTransport serves canned manifests and records invocations.
type fakeTransport struct {
	manifest *toolbox.Manifest
	err      error

	invoked     string
	invokedArgs map[string]any
	headers     map[string]string
	result      string
	invokeErr   error
}

func (f *fakeTransport) ToolManifest(ctx context.Context, name string) (*toolbox.Manifest, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.manifest, nil
}

func (f *fakeTransport) ToolsetManifest(ctx context.Context, name string) (*toolbox.Manifest, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.manifest, nil
}

func (f *fakeTransport) Invoke(ctx context.Context, name string, args map[string]any, headers map[string]string) (string, error) {
	f.invoked = name
	f.invokedArgs = args
	f.headers = headers
	return f.result, f.invokeErr
}

func weatherManifest() *toolbox.Manifest {
	optional := false
	return &toolbox.Manifest{
		ServerVersion: "0.5.0",
		Tools: map[string]toolbox.ToolManifest{
			"get-weather": {
				Description: "Look up the weather",
				Parameters: []toolbox.ParameterManifest{
					{Name: "city", Type: "string"},
					{Name: "days", Type: "integer", Required: &optional},
				},
			},
			"get-alerts": {
				Description: "Active weather alerts",
				Parameters: []toolbox.ParameterManifest{
					{Name: "region", Type: "string"},
					{Name: "user_id", Type: "string", AuthSources: []string{"google"}},
				},
			},
		},
	}
}

func TestLoadTool(t *testing.T) {
	ctx := context.Background()

	t.Run("builds an invocable tool from the manifest", func(t *testing.T) {
		ft := &fakeTransport{manifest: weatherManifest(), result: "sunny"}
		c := New("http://example", WithTransport(ft))

		tl, err := c.LoadTool(ctx, "get-weather")
		require.NoError(t, err)
		assert.Equal(t, "get-weather", tl.Name())
		assert.Equal(t, "Look up the weather", tl.Description())

		result, err := tl.Invoke(ctx, map[string]any{"city": "Berlin"})
		require.NoError(t, err)
		assert.Equal(t, "sunny", result)
		assert.Equal(t, "get-weather", ft.invoked)
	})

	t.Run("missing tool fails with ToolNotFoundError", func(t *testing.T) {
		ft := &fakeTransport{manifest: weatherManifest()}
		c := New("http://example", WithTransport(ft))

		_, err := c.LoadTool(ctx, "no-such-tool")
		var tnf *ToolNotFoundError
		require.ErrorAs(t, err, &tnf)
		assert.Equal(t, "no-such-tool", tnf.Name)
	})

	t.Run("server 404 maps to ToolNotFoundError", func(t *testing.T) {
		ft := &fakeTransport{err: &toolbox.ServerError{StatusCode: 404}}
		c := New("http://example", WithTransport(ft))

		_, err := c.LoadTool(ctx, "gone")
		var tnf *ToolNotFoundError
		assert.ErrorAs(t, err, &tnf)
	})

	t.Run("other server errors pass through", func(t *testing.T) {
		ft := &fakeTransport{err: &toolbox.ServerError{StatusCode: 500}}
		c := New("http://example", WithTransport(ft))

		_, err := c.LoadTool(ctx, "get-weather")
		var se *toolbox.ServerError
		require.ErrorAs(t, err, &se)
		assert.Equal(t, 500, se.StatusCode)
	})

	t.Run("rejects manifests with unsupported parameter types", func(t *testing.T) {
		ft := &fakeTransport{manifest: &toolbox.Manifest{
			Tools: map[string]toolbox.ToolManifest{
				"broken": {Parameters: []toolbox.ParameterManifest{{Name: "blob", Type: "binary"}}},
			},
		}}
		c := New("http://example", WithTransport(ft))

		_, err := c.LoadTool(ctx, "broken")
		assert.Error(t, err)
	})
}

func TestLoadToolOptions(t *testing.T) {
	ctx := context.Background()

	t.Run("bound params are applied to the fresh instance", func(t *testing.T) {
		ft := &fakeTransport{manifest: weatherManifest(), result: "ok"}
		c := New("http://example", WithTransport(ft))

		tl, err := c.LoadTool(ctx, "get-weather", WithBoundParams(map[string]any{"city": "Berlin"}))
		require.NoError(t, err)

		params := tl.Parameters()
		require.Len(t, params, 1)
		assert.Equal(t, "days", params[0].Name)

		_, err = tl.Invoke(ctx, map[string]any{})
		require.NoError(t, err)
		assert.Equal(t, "Berlin", ft.invokedArgs["city"])
	})

	t.Run("token providers are applied to the fresh instance", func(t *testing.T) {
		ft := &fakeTransport{manifest: weatherManifest(), result: "ok"}
		c := New("http://example", WithTransport(ft))

		tl, err := c.LoadTool(ctx, "get-alerts", WithAuthTokenProviders(map[string]toolbox.TokenProvider{
			"google": toolbox.StaticToken("id-tok"),
		}))
		require.NoError(t, err)

		// user_id is auth-resolved and gone from the schema.
		require.Len(t, tl.Parameters(), 1)
		assert.Equal(t, "region", tl.Parameters()[0].Name)

		_, err = tl.Invoke(ctx, map[string]any{"region": "north"})
		require.NoError(t, err)
		assert.Equal(t, "id-tok", ft.headers["google_token"])
	})

	t.Run("load options never leak into other loads", func(t *testing.T) {
		ft := &fakeTransport{manifest: weatherManifest(), result: "ok"}
		c := New("http://example", WithTransport(ft))

		_, err := c.LoadTool(ctx, "get-weather", WithBoundParams(map[string]any{"city": "Berlin"}))
		require.NoError(t, err)

		plain, err := c.LoadTool(ctx, "get-weather")
		require.NoError(t, err)
		assert.Len(t, plain.Parameters(), 2)
	})

	t.Run("binding an unknown name fails the load", func(t *testing.T) {
		ft := &fakeTransport{manifest: weatherManifest()}
		c := New("http://example", WithTransport(ft))

		_, err := c.LoadTool(ctx, "get-weather", WithBoundParams(map[string]any{"height": 1}))
		assert.Error(t, err)
	})
}

func TestLoadToolset(t *testing.T) {
	ctx := context.Background()

	t.Run("returns one tool per member, ordered by name", func(t *testing.T) {
		ft := &fakeTransport{manifest: weatherManifest()}
		c := New("http://example", WithTransport(ft))

		tools, err := c.LoadToolset(ctx, "")
		require.NoError(t, err)
		require.Len(t, tools, 2)
		assert.Equal(t, "get-alerts", tools[0].Name())
		assert.Equal(t, "get-weather", tools[1].Name())
	})

	t.Run("named toolset 404 maps to ToolsetNotFoundError", func(t *testing.T) {
		ft := &fakeTransport{err: &toolbox.ServerError{StatusCode: 404}}
		c := New("http://example", WithTransport(ft))

		_, err := c.LoadToolset(ctx, "weather")
		var tsnf *ToolsetNotFoundError
		require.ErrorAs(t, err, &tsnf)
		assert.Equal(t, "weather", tsnf.Name)
	})

	t.Run("default toolset errors pass through unmapped", func(t *testing.T) {
		ft := &fakeTransport{err: &toolbox.ServerError{StatusCode: 404}}
		c := New("http://example", WithTransport(ft))

		_, err := c.LoadToolset(ctx, "")
		var se *toolbox.ServerError
		assert.ErrorAs(t, err, &se)
	})

	t.Run("load options apply to every member", func(t *testing.T) {
		ft := &fakeTransport{manifest: weatherManifest()}
		c := New("http://example", WithTransport(ft))

		tools, err := c.LoadToolset(ctx, "", WithAuthTokenProviders(map[string]toolbox.TokenProvider{
			"google": toolbox.StaticToken("tok"),
		}))
		require.NoError(t, err)

		for _, tl := range tools {
			assert.Empty(t, tl.UnsatisfiedAuthServices())
		}

		// A separate load of the same tool carries nothing from that call.
		plain, err := c.LoadTool(ctx, "get-alerts")
		require.NoError(t, err)
		assert.Equal(t, []string{"google"}, plain.UnsatisfiedAuthServices())
	})
}

func TestLoadSync(t *testing.T) {
	ctx := context.Background()

	t.Run("LoadToolSync matches LoadTool", func(t *testing.T) {
		ft := &fakeTransport{manifest: weatherManifest()}
		c := New("http://example", WithTransport(ft))

		tl, err := c.LoadToolSync(ctx, "get-weather")
		require.NoError(t, err)
		assert.Equal(t, "get-weather", tl.Name())
	})

	t.Run("LoadToolsetSync matches LoadToolset", func(t *testing.T) {
		ft := &fakeTransport{manifest: weatherManifest()}
		c := New("http://example", WithTransport(ft))

		tools, err := c.LoadToolsetSync(ctx, "")
		require.NoError(t, err)
		assert.Len(t, tools, 2)
	})

	t.Run("sync load errors keep their type", func(t *testing.T) {
		ft := &fakeTransport{manifest: weatherManifest()}
		c := New("http://example", WithTransport(ft))

		_, err := c.LoadToolSync(ctx, "no-such-tool")
		var tnf *ToolNotFoundError
		assert.ErrorAs(t, err, &tnf)
	})
}
