package tool

import (
	"fmt"
	"strings"
)

// UnknownParameterError is returned when binding a name that is not in the
// tool's current visible schema.
type UnknownParameterError struct {
	Tool      string
	Parameter string
}

// Error returns a formatted error message including the tool and parameter.
func (e *UnknownParameterError) Error() string {
	return fmt.Sprintf("tool: %s has no parameter %q", e.Tool, e.Parameter)
}

// AlreadyBoundError is returned when binding a parameter that was already
// bound or auth-resolved on an ancestor of this instance.
type AlreadyBoundError struct {
	Tool      string
	Parameter string
}

// Error returns a formatted error message including the tool and parameter.
func (e *AlreadyBoundError) Error() string {
	return fmt.Sprintf("tool: parameter %q already consumed on %s", e.Parameter, e.Tool)
}

// AlreadyConfiguredError is returned when attaching a token provider for an
// auth service that already has one on this instance.
type AlreadyConfiguredError struct {
	Tool    string
	Service string
}

// Error returns a formatted error message including the tool and service.
func (e *AlreadyConfiguredError) Error() string {
	return fmt.Sprintf("tool: auth service %q already configured on %s", e.Service, e.Tool)
}

// MissingArgumentError is returned when an invocation omits a required
// parameter.
type MissingArgumentError struct {
	Tool      string
	Parameter string
}

// Error returns a formatted error message including the tool and parameter.
func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("tool: %s invoked without required argument %q", e.Tool, e.Parameter)
}

// UnexpectedArgumentError is returned when an invocation supplies a name that
// is not in the tool's visible schema.
type UnexpectedArgumentError struct {
	Tool      string
	Parameter string
}

// Error returns a formatted error message including the tool and parameter.
func (e *UnexpectedArgumentError) Error() string {
	return fmt.Sprintf("tool: %s invoked with unexpected argument %q", e.Tool, e.Parameter)
}

// ArgumentTypeError is returned when an invocation argument does not match
// the parameter's declared type.
type ArgumentTypeError struct {
	Tool      string
	Parameter string
	Err       error
}

// Error returns a formatted error message including the tool and parameter.
func (e *ArgumentTypeError) Error() string {
	return fmt.Sprintf("tool: %s argument %q: %v", e.Tool, e.Parameter, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *ArgumentTypeError) Unwrap() error {
	return e.Err
}

// UnsatisfiedAuthError is returned at invocation time when required auth
// services still lack token providers. Attaching providers for the listed
// services and re-invoking recovers.
type UnsatisfiedAuthError struct {
	Tool     string
	Services []string
}

// Error returns a formatted error message listing the missing services.
func (e *UnsatisfiedAuthError) Error() string {
	return fmt.Sprintf("tool: %s requires token providers for auth services: %s",
		e.Tool, strings.Join(e.Services, ", "))
}

// InvocationError wraps a transport or server-side failure from the remote
// invocation. The cause is preserved; retry policy, if any, belongs to the
// transport.
type InvocationError struct {
	Tool string
	Err  error
}

// Error returns a formatted error message including the tool name and cause.
func (e *InvocationError) Error() string {
	return fmt.Sprintf("tool: %s invocation failed: %v", e.Tool, e.Err)
}

// Unwrap returns the underlying error for use with errors.Is and errors.As.
func (e *InvocationError) Unwrap() error {
	return e.Err
}
