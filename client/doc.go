// Package client is the entry point for loading tools from a Toolbox
// server.
//
// The client fetches tool manifests, translates their schemas, and hands
// back immutable [github.com/spetersoncode/toolbox/tool.Tool] values ready
// to invoke:
//
//	c := client.New("http://localhost:5000")
//
//	tools, err := c.LoadToolset(ctx, "",
//	    client.WithAuthTokenProviders(map[string]toolbox.TokenProvider{
//	        "my-google-auth": auth.GoogleIDToken(audience),
//	    }),
//	    client.WithBoundParams(map[string]any{"project": "hotel-app-prod"}),
//	)
//
// Load options apply only to the tools returned by that one call; loading
// the same tool again without them yields a fresh, unconfigured instance.
package client
