package toolbox

import "context"

// TokenProvider yields an authentication token for one auth service.
// Providers are called at invocation time, once per attached service.
type TokenProvider func(ctx context.Context) (string, error)

// StaticToken returns a TokenProvider that always yields the given token.
// Useful for tests and for tokens with a lifetime longer than the process.
func StaticToken(token string) TokenProvider {
	return func(context.Context) (string, error) {
		return token, nil
	}
}
