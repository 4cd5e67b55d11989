package tool

import (
	"context"
	"maps"
	"slices"

	"github.com/spetersoncode/toolbox"
	"github.com/spetersoncode/toolbox/schema"
)

// Invoker executes a tool call against the remote Toolbox server.
// The default HTTP implementation lives in the client package; tests supply
// fakes.
type Invoker interface {
	Invoke(ctx context.Context, name string, args map[string]any, headers map[string]string) (string, error)
}

// how a parameter left the visible schema
type consumedBy string

const (
	consumedBound consumedBy = "bound"
	consumedAuth  consumedBy = "auth"
)

// Tool is an invocable proxy for one tool on a remote Toolbox server.
//
// A Tool is immutable: Bind, BindAll, AddTokenProvider, and
// AddTokenProviders return new instances and never change their receiver,
// so a Tool handed to one consumer stays valid no matter how other copies
// are transformed. Tools are safe for concurrent use without locking.
type Tool struct {
	invoker     Invoker
	name        string
	description string

	// params is the visible schema: the server's parameters minus those
	// bound or auth-resolved. Order follows the manifest.
	params []schema.Descriptor
	// authParams maps still-visible auth parameters to the services that
	// can satisfy them.
	authParams map[string][]string
	// authServices lists tool-level required auth services that still
	// lack a provider.
	authServices []string

	bound    map[string]any
	tokens   map[string]toolbox.TokenProvider
	consumed map[string]consumedBy
}

// New builds the base tool instance from a translated manifest entry.
// The client facade calls this; applications normally obtain tools through
// client.LoadTool or client.LoadToolset.
func New(invoker Invoker, name, description string, params []schema.Descriptor, authRequired []string) *Tool {
	authParams := make(map[string][]string)
	for _, p := range params {
		if len(p.AuthSources) > 0 {
			authParams[p.Name] = p.AuthSources
		}
	}

	return &Tool{
		invoker:      invoker,
		name:         name,
		description:  description,
		params:       slices.Clone(params),
		authParams:   authParams,
		authServices: slices.Clone(authRequired),
		bound:        map[string]any{},
		tokens:       map[string]toolbox.TokenProvider{},
		consumed:     map[string]consumedBy{},
	}
}

// Schema is a read-only snapshot of a tool's derived schema.
type Schema struct {
	// Name is the remote tool name.
	Name string
	// Description explains what the tool does.
	Description string
	// Parameters are the still-visible parameters, in manifest order.
	Parameters []schema.Descriptor
}

// Name returns the remote tool name.
func (t *Tool) Name() string { return t.name }

// Description returns the server-provided tool description.
func (t *Tool) Description() string { return t.description }

// Parameters returns the tool's visible parameters: the server schema minus
// parameters that have been bound or auth-resolved.
func (t *Tool) Parameters() []schema.Descriptor {
	return slices.Clone(t.params)
}

// Schema returns a snapshot of the tool's current derived schema.
func (t *Tool) Schema() Schema {
	return Schema{
		Name:        t.name,
		Description: t.description,
		Parameters:  slices.Clone(t.params),
	}
}

// UnsatisfiedAuthServices returns the auth services that still need a token
// provider before the tool can be invoked, sorted by name.
func (t *Tool) UnsatisfiedAuthServices() []string {
	set := make(map[string]struct{})
	for _, svc := range t.authServices {
		set[svc] = struct{}{}
	}
	for _, services := range t.authParams {
		for _, svc := range services {
			set[svc] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(set))
}

// clone returns a copy of t sharing no mutable state with the original.
// Maps are cloned shallowly; the entries themselves are never mutated.
func (t *Tool) clone() *Tool {
	return &Tool{
		invoker:      t.invoker,
		name:         t.name,
		description:  t.description,
		params:       slices.Clone(t.params),
		authParams:   maps.Clone(t.authParams),
		authServices: slices.Clone(t.authServices),
		bound:        maps.Clone(t.bound),
		tokens:       maps.Clone(t.tokens),
		consumed:     maps.Clone(t.consumed),
	}
}

func (t *Tool) visible(name string) bool {
	return slices.ContainsFunc(t.params, func(d schema.Descriptor) bool {
		return d.Name == name
	})
}

// removeParams drops the named parameters from the visible schema,
// preserving order of the rest.
func (t *Tool) removeParams(names map[string]struct{}) {
	t.params = slices.DeleteFunc(t.params, func(d schema.Descriptor) bool {
		_, ok := names[d.Name]
		return ok
	})
}
