package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/spetersoncode/toolbox"
	"github.com/spetersoncode/toolbox/internal/retry"
)

// Transport is the boundary between the client facade and the Toolbox
// server: manifest fetching plus remote invocation. The default
// implementation speaks the server's HTTP API; tests and alternative
// wire-ups supply their own.
type Transport interface {
	// ToolManifest fetches the manifest entry for a single tool.
	ToolManifest(ctx context.Context, name string) (*toolbox.Manifest, error)

	// ToolsetManifest fetches the manifest for a toolset. An empty name
	// fetches the default toolset containing every tool.
	ToolsetManifest(ctx context.Context, name string) (*toolbox.Manifest, error)

	// Invoke executes a tool with the given payload. Headers carry one
	// <service>_token entry per attached token provider.
	Invoke(ctx context.Context, name string, args map[string]any, headers map[string]string) (string, error)
}

// httpTransport is the default Transport over the Toolbox HTTP API.
type httpTransport struct {
	base    string
	http    *http.Client
	headers map[string]string
	retry   retry.Config
}

func newHTTPTransport(base string, hc *http.Client, headers map[string]string, cfg retry.Config) *httpTransport {
	return &httpTransport{
		base:    strings.TrimRight(base, "/"),
		http:    hc,
		headers: headers,
		retry:   cfg,
	}
}

func (t *httpTransport) ToolManifest(ctx context.Context, name string) (*toolbox.Manifest, error) {
	body, err := t.get(ctx, "/api/tool/"+url.PathEscape(name))
	if err != nil {
		return nil, err
	}
	return toolbox.DecodeManifest(body)
}

func (t *httpTransport) ToolsetManifest(ctx context.Context, name string) (*toolbox.Manifest, error) {
	path := "/api/toolset/"
	if name != "" {
		path += url.PathEscape(name)
	}
	body, err := t.get(ctx, path)
	if err != nil {
		return nil, err
	}
	return toolbox.DecodeManifest(body)
}

// invokeResponse is the shape of the server's invoke reply.
type invokeResponse struct {
	Result json.RawMessage `json:"result"`
	Error  string          `json:"error"`
}

func (t *httpTransport) Invoke(ctx context.Context, name string, args map[string]any, headers map[string]string) (string, error) {
	payload, err := json.Marshal(args)
	if err != nil {
		return "", fmt.Errorf("client: encoding arguments for %s: %w", name, err)
	}

	return retry.Do(ctx, t.retry, func() (string, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost,
			t.base+"/api/tool/"+url.PathEscape(name)+"/invoke", bytes.NewReader(payload))
		if err != nil {
			return "", err
		}
		req.Header.Set("Content-Type", "application/json")
		t.setCommonHeaders(req)
		for k, v := range headers {
			req.Header.Set(k, v)
		}

		body, status, err := t.do(req)
		if err != nil {
			return "", err
		}

		var resp invokeResponse
		// The error body may not be JSON at all; fall back to raw text.
		decodeErr := json.Unmarshal(body, &resp)

		if status < 200 || status >= 300 {
			msg := resp.Error
			if msg == "" {
				msg = strings.TrimSpace(string(body))
			}
			return "", &toolbox.ServerError{StatusCode: status, Message: msg}
		}
		if decodeErr != nil {
			return "", fmt.Errorf("client: decoding invoke response for %s: %w", name, decodeErr)
		}

		// The result is usually a JSON string; anything else is returned
		// as its raw JSON text.
		var s string
		if json.Unmarshal(resp.Result, &s) == nil {
			return s, nil
		}
		return string(resp.Result), nil
	})
}

func (t *httpTransport) get(ctx context.Context, path string) ([]byte, error) {
	return retry.Do(ctx, t.retry, func() ([]byte, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, t.base+path, nil)
		if err != nil {
			return nil, err
		}
		t.setCommonHeaders(req)

		body, status, err := t.do(req)
		if err != nil {
			return nil, err
		}
		if status < 200 || status >= 300 {
			return nil, &toolbox.ServerError{StatusCode: status, Message: strings.TrimSpace(string(body))}
		}
		return body, nil
	})
}

func (t *httpTransport) setCommonHeaders(req *http.Request) {
	for k, v := range t.headers {
		req.Header.Set(k, v)
	}
	req.Header.Set("X-Request-Id", uuid.NewString())
}

func (t *httpTransport) do(req *http.Request) ([]byte, int, error) {
	resp, err := t.http.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, err
	}
	return body, resp.StatusCode, nil
}
