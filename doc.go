// Package toolbox provides a client SDK for a remote Toolbox service: a
// catalog of named, schema-described tools that agents and applications can
// invoke over HTTP.
//
// The library turns server-side tool manifests into locally invocable,
// immutable [github.com/spetersoncode/toolbox/tool.Tool] values. Loading,
// parameter binding, auth-token wiring, and invocation are all separate,
// composable steps.
//
// # Loading Tools
//
// Use the [github.com/spetersoncode/toolbox/client] package as the entry point:
//
//	c := client.New("http://localhost:5000")
//
//	t, err := c.LoadTool(ctx, "search-hotels")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := t.Invoke(ctx, map[string]any{"location": "Basel"})
//
// # Binding Parameters
//
// Parameters can be fixed client-side so the caller (typically an LLM) never
// sees them. Binding returns a new tool; the original stays valid:
//
//	bound, err := t.Bind("project", "hotel-app-prod")
//
// A bound value may be a literal, a func() any, or a [ValueProducer] that is
// resolved at call time.
//
// # Authenticated Parameters
//
// Tools may declare parameters that are filled in server-side from an
// authentication token. Attach a [TokenProvider] per auth service:
//
//	authed, err := t.AddTokenProvider("my-google-auth", auth.GoogleIDToken(audience))
//
// Invoking a tool whose required auth services lack providers fails fast with
// [github.com/spetersoncode/toolbox/tool.UnsatisfiedAuthError] before any
// network call is made.
//
// # Synchronous Entry Points
//
// Every operation has a context-bound form (Invoke, LoadTool) that runs in the
// caller's goroutine, and a Sync form (InvokeSync, LoadToolSync) that executes
// on a shared background carrier and blocks. The Sync forms exist for call
// sites that must not run work on their own goroutine; calling them from code
// that is already executing on the carrier fails fast with
// [ErrInvalidInvocationContext] instead of deadlocking.
//
// # Framework Adapters
//
// The mcp, genai, openai, and anthropic packages adapt loaded tools into the
// tool declarations of the respective ecosystems.
package toolbox
