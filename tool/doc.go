// Package tool implements the invocable tool instance: an immutable proxy
// for one tool on a remote Toolbox server.
//
// A [Tool] carries its derived schema, a remote invocation capability, and
// two mappings layered on top of the server manifest: bound parameter values
// and auth-service token providers. Transformations are purely functional:
// Bind and AddTokenProvider return new instances, and a parameter moves
// monotonically from required to bound or auth-resolved, disappearing from
// the visible schema as it does.
//
//	t, _ := c.LoadTool(ctx, "search-hotels")
//	t, _ = t.Bind("currency", "CHF")
//	t, _ = t.AddTokenProvider("my-auth", toolbox.StaticToken(token))
//
//	out, err := t.Invoke(ctx, map[string]any{"location": "Basel"})
package tool
