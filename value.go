package toolbox

import "context"

// ValueProducer computes a bound parameter value at call time.
// The context is the invocation context, so producers participate in
// cancellation and timeouts.
type ValueProducer func(ctx context.Context) (any, error)

// ResolveValue resolves a bound value to the value sent to the server.
//
// Three forms are accepted:
//   - a ValueProducer, which is called with the invocation context
//   - a func() any, which is called directly
//   - anything else, which is used as a literal
func ResolveValue(ctx context.Context, source any) (any, error) {
	switch v := source.(type) {
	case ValueProducer:
		return v(ctx)
	case func(ctx context.Context) (any, error):
		return v(ctx)
	case func() any:
		return v(), nil
	default:
		return source, nil
	}
}
