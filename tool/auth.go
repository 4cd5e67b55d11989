package tool

import (
	"slices"

	"github.com/spetersoncode/toolbox"
)

// AddTokenProvider attaches a token provider for one auth service and
// returns a new tool. The receiver is unchanged.
//
// Every parameter satisfiable by the service becomes auth-resolved and
// disappears from the visible schema. Attaching a provider for a service
// that already has one fails with *AlreadyConfiguredError.
func (t *Tool) AddTokenProvider(service string, provider toolbox.TokenProvider) (*Tool, error) {
	return t.AddTokenProviders(map[string]toolbox.TokenProvider{service: provider})
}

// AddTokenProviders is the batch form of AddTokenProvider. It is atomic:
// all services are validated before a single new instance is materialized.
//
// Providers for services the tool does not declare are kept and their tokens
// sent on invocation; the server decides whether it wants them. This mirrors
// toolset-wide loading, where one provider map is applied to every tool in
// the set.
func (t *Tool) AddTokenProviders(providers map[string]toolbox.TokenProvider) (*Tool, error) {
	if len(providers) == 0 {
		return t, nil
	}

	for service := range providers {
		if _, exists := t.tokens[service]; exists {
			return nil, &AlreadyConfiguredError{Tool: t.name, Service: service}
		}
	}

	next := t.clone()
	for service, provider := range providers {
		next.tokens[service] = provider
	}

	// A parameter is satisfiable by any one of its declared services, so a
	// single matching provider resolves it.
	resolved := make(map[string]struct{})
	for param, services := range next.authParams {
		for _, svc := range services {
			if _, ok := providers[svc]; ok {
				resolved[param] = struct{}{}
				break
			}
		}
	}
	for param := range resolved {
		delete(next.authParams, param)
		next.consumed[param] = consumedAuth
	}
	next.removeParams(resolved)

	next.authServices = slices.DeleteFunc(next.authServices, func(svc string) bool {
		_, ok := providers[svc]
		return ok
	})

	return next, nil
}
