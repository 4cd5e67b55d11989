package tool

// Bind fixes one parameter to a value and returns a new tool whose visible
// schema no longer contains it. The receiver is unchanged.
//
// The value may be a literal, a func() any, or a toolbox.ValueProducer;
// producers are resolved at each invocation.
//
// Binding a name that is not in the visible schema fails with
// *UnknownParameterError. Binding a name that was already bound or
// auth-resolved on an ancestor fails with *AlreadyBoundError.
func (t *Tool) Bind(name string, value any) (*Tool, error) {
	return t.BindAll(map[string]any{name: value})
}

// BindAll is the batch form of Bind. It is atomic: the whole mapping is
// validated before a single new instance is materialized, so a failure
// leaves no partial binding anywhere.
func (t *Tool) BindAll(values map[string]any) (*Tool, error) {
	if len(values) == 0 {
		return t, nil
	}

	for name := range values {
		if _, taken := t.consumed[name]; taken {
			return nil, &AlreadyBoundError{Tool: t.name, Parameter: name}
		}
		if !t.visible(name) {
			return nil, &UnknownParameterError{Tool: t.name, Parameter: name}
		}
	}

	next := t.clone()
	removed := make(map[string]struct{}, len(values))
	for name, value := range values {
		next.bound[name] = value
		next.consumed[name] = consumedBound
		removed[name] = struct{}{}
		// A bound auth parameter no longer needs its services.
		delete(next.authParams, name)
	}
	next.removeParams(removed)
	return next, nil
}
