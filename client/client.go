package client

import (
	"context"
	"errors"
	"maps"
	"net/http"
	"slices"

	"github.com/spetersoncode/toolbox"
	"github.com/spetersoncode/toolbox/internal/retry"
	"github.com/spetersoncode/toolbox/schema"
	"github.com/spetersoncode/toolbox/tool"
)

// Client loads tools from a Toolbox server.
//
// A Client is cheap and safe to share between goroutines. The tools it
// produces keep a reference to its transport, so they remain usable for the
// client's lifetime.
type Client struct {
	transport Transport
	http      *http.Client
	headers   map[string]string
	retry     retry.Config
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client used by the default transport.
// Ignored when WithTransport is also given.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithClientHeader sets a header sent on every manifest fetch and tool
// invocation, for example an Authorization header for a server behind a
// proxy.
func WithClientHeader(name, value string) Option {
	return func(c *Client) {
		c.headers[name] = value
	}
}

// WithRetry enables retries of temporary transport failures (429 and 5xx)
// with exponential backoff. Retry never applies to usage or configuration
// errors, and only the transport retries; loaded tools never retry on
// their own.
func WithRetry() Option {
	return func(c *Client) {
		c.retry = retry.DefaultConfig()
	}
}

// WithTransport replaces the default HTTP transport entirely.
func WithTransport(t Transport) Option {
	return func(c *Client) {
		c.transport = t
	}
}

// New creates a client for the Toolbox server at the given base URL,
// e.g. "http://localhost:5000".
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		http:    http.DefaultClient,
		headers: map[string]string{},
		retry:   retry.Disabled(),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.transport == nil {
		c.transport = newHTTPTransport(baseURL, c.http, c.headers, c.retry)
	}
	return c
}

// loadConfig holds per-load defaults.
type loadConfig struct {
	tokenProviders map[string]toolbox.TokenProvider
	boundParams    map[string]any
}

// LoadOption configures a single LoadTool or LoadToolset call. The defaults
// it carries apply only to the instances produced by that call, never to
// previously returned tools.
type LoadOption func(*loadConfig)

// WithAuthTokenProviders attaches token providers to every tool produced by
// the load call, as if AddTokenProviders were called on each fresh instance.
func WithAuthTokenProviders(providers map[string]toolbox.TokenProvider) LoadOption {
	return func(cfg *loadConfig) {
		cfg.tokenProviders = providers
	}
}

// WithBoundParams binds parameter values on every tool produced by the load
// call, as if BindAll were called on each fresh instance.
func WithBoundParams(params map[string]any) LoadOption {
	return func(cfg *loadConfig) {
		cfg.boundParams = params
	}
}

// LoadTool fetches one tool's manifest and returns an invocable tool with
// the load options applied. Fails with *ToolNotFoundError when the server
// has no tool with that name.
func (c *Client) LoadTool(ctx context.Context, name string, opts ...LoadOption) (*tool.Tool, error) {
	cfg := applyLoadOptions(opts)

	manifest, err := c.transport.ToolManifest(ctx, name)
	if err != nil {
		if isNotFound(err) {
			return nil, &ToolNotFoundError{Name: name}
		}
		return nil, err
	}

	tm, ok := manifest.Tools[name]
	if !ok {
		return nil, &ToolNotFoundError{Name: name}
	}

	return c.buildTool(name, tm, cfg)
}

// LoadToolset fetches a toolset manifest and returns one tool per member,
// ordered by name. An empty name loads the default toolset with every tool
// the server exposes. Fails with *ToolsetNotFoundError when a named toolset
// is absent.
func (c *Client) LoadToolset(ctx context.Context, name string, opts ...LoadOption) ([]*tool.Tool, error) {
	cfg := applyLoadOptions(opts)

	manifest, err := c.transport.ToolsetManifest(ctx, name)
	if err != nil {
		if name != "" && isNotFound(err) {
			return nil, &ToolsetNotFoundError{Name: name}
		}
		return nil, err
	}

	names := slices.Sorted(maps.Keys(manifest.Tools))

	tools := make([]*tool.Tool, 0, len(names))
	for _, n := range names {
		t, err := c.buildTool(n, manifest.Tools[n], cfg)
		if err != nil {
			return nil, err
		}
		tools = append(tools, t)
	}
	return tools, nil
}

// buildTool translates a manifest entry and applies the load defaults:
// token providers first, then bound parameters, so that binding an
// auth-satisfiable parameter is still permitted.
func (c *Client) buildTool(name string, tm toolbox.ToolManifest, cfg *loadConfig) (*tool.Tool, error) {
	params, err := schema.Translate(tm.Parameters)
	if err != nil {
		return nil, err
	}

	t := tool.New(c.transport, name, tm.Description, params, tm.AuthRequired)

	t, err = t.AddTokenProviders(cfg.tokenProviders)
	if err != nil {
		return nil, err
	}
	return t.BindAll(cfg.boundParams)
}

func applyLoadOptions(opts []LoadOption) *loadConfig {
	cfg := &loadConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

func isNotFound(err error) bool {
	var se *toolbox.ServerError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}
