// Package auth provides ready-made token providers for common identity
// services.
package auth

import (
	"context"
	"sync"

	"golang.org/x/oauth2"
	"google.golang.org/api/idtoken"

	"github.com/spetersoncode/toolbox"
)

// GoogleIDToken returns a token provider that fetches Google-signed ID
// tokens for the given audience using Application Default Credentials.
// The underlying token source caches tokens and refreshes them as they
// expire.
func GoogleIDToken(audience string) toolbox.TokenProvider {
	var (
		once   sync.Once
		source oauth2.TokenSource
		srcErr error
	)
	return func(ctx context.Context) (string, error) {
		once.Do(func() {
			source, srcErr = idtoken.NewTokenSource(ctx, audience)
		})
		if srcErr != nil {
			return "", srcErr
		}
		tok, err := source.Token()
		if err != nil {
			return "", err
		}
		return tok.AccessToken, nil
	}
}
