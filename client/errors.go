package client

import "fmt"

// ToolNotFoundError is returned when the server manifest has no tool with
// the requested name.
type ToolNotFoundError struct {
	Name string
}

// Error returns a formatted error message including the tool name.
func (e *ToolNotFoundError) Error() string {
	return fmt.Sprintf("client: tool not found: %s", e.Name)
}

// ToolsetNotFoundError is returned when a named toolset is absent on the
// server.
type ToolsetNotFoundError struct {
	Name string
}

// Error returns a formatted error message including the toolset name.
func (e *ToolsetNotFoundError) Error() string {
	return fmt.Sprintf("client: toolset not found: %s", e.Name)
}
