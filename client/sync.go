package client

import (
	"context"

	"github.com/spetersoncode/toolbox/internal/bridge"
	"github.com/spetersoncode/toolbox/tool"
)

// LoadToolSync is LoadTool for synchronous call sites: the fetch runs on the
// shared background carrier and the calling goroutine blocks until the tool
// is built. Fails fast with toolbox.ErrInvalidInvocationContext when called
// from code already executing on the carrier.
func (c *Client) LoadToolSync(ctx context.Context, name string, opts ...LoadOption) (*tool.Tool, error) {
	return bridge.Run(ctx, func(ctx context.Context) (*tool.Tool, error) {
		return c.LoadTool(ctx, name, opts...)
	})
}

// LoadToolsetSync is LoadToolset for synchronous call sites, with the same
// carrier semantics as LoadToolSync.
func (c *Client) LoadToolsetSync(ctx context.Context, name string, opts ...LoadOption) ([]*tool.Tool, error) {
	return bridge.Run(ctx, func(ctx context.Context) ([]*tool.Tool, error) {
		return c.LoadToolset(ctx, name, opts...)
	})
}
