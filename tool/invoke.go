package tool

import (
	"context"
	"fmt"
	"maps"

	"github.com/spetersoncode/toolbox"
	"github.com/spetersoncode/toolbox/internal/bridge"
)

// Invoke calls the remote tool with the given arguments and returns the
// server's result.
//
// Validation is eager: the unsatisfied-auth check and all argument checks
// happen before any bound-value producer, token provider, or network call
// runs, so a rejected invocation has no side effects. Arguments must cover
// exactly the still-required visible parameters; unknown names and missing
// required names are rejected.
//
// Failures are distinguishable: *UnsatisfiedAuthError,
// *UnexpectedArgumentError, *MissingArgumentError, *ArgumentTypeError, and
// *InvocationError wrapping transport or server causes.
func (t *Tool) Invoke(ctx context.Context, args map[string]any) (string, error) {
	if missing := t.UnsatisfiedAuthServices(); len(missing) > 0 {
		return "", &UnsatisfiedAuthError{Tool: t.name, Services: missing}
	}

	if err := t.checkArgs(args); err != nil {
		return "", err
	}

	payload := make(map[string]any, len(args)+len(t.bound))
	maps.Copy(payload, args)
	for name, value := range t.bound {
		resolved, err := toolbox.ResolveValue(ctx, value)
		if err != nil {
			return "", fmt.Errorf("tool: %s: resolving bound parameter %q: %w", t.name, name, err)
		}
		payload[name] = resolved
	}

	headers := make(map[string]string, len(t.tokens))
	for service, provider := range t.tokens {
		token, err := provider(ctx)
		if err != nil {
			return "", fmt.Errorf("tool: %s: getting token for auth service %q: %w", t.name, service, err)
		}
		headers[service+"_token"] = token
	}

	result, err := t.invoker.Invoke(ctx, t.name, payload, headers)
	if err != nil {
		return "", &InvocationError{Tool: t.name, Err: err}
	}
	return result, nil
}

// InvokeSync is Invoke for synchronous call sites. The call runs on the
// shared background carrier and the calling goroutine blocks until a result
// or failure is posted back.
//
// Calling InvokeSync from code already executing on the carrier (a bound
// value producer, a token provider) fails fast with
// toolbox.ErrInvalidInvocationContext instead of deadlocking.
func (t *Tool) InvokeSync(ctx context.Context, args map[string]any) (string, error) {
	return bridge.Run(ctx, func(ctx context.Context) (string, error) {
		return t.Invoke(ctx, args)
	})
}

func (t *Tool) checkArgs(args map[string]any) error {
	for name := range args {
		if !t.visible(name) {
			return &UnexpectedArgumentError{Tool: t.name, Parameter: name}
		}
	}
	for _, p := range t.params {
		value, present := args[p.Name]
		if !present {
			if p.Required {
				return &MissingArgumentError{Tool: t.name, Parameter: p.Name}
			}
			continue
		}
		if err := p.Check(value); err != nil {
			return &ArgumentTypeError{Tool: t.name, Parameter: p.Name, Err: err}
		}
	}
	return nil
}
