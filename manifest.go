package toolbox

import (
	"encoding/json"
	"fmt"
)

// Manifest is the shape returned by the Toolbox server for both single-tool
// and toolset lookups.
type Manifest struct {
	// ServerVersion is the version reported by the Toolbox server.
	ServerVersion string `json:"serverVersion"`
	// Tools maps tool names to their manifests.
	Tools map[string]ToolManifest `json:"tools"`
}

// ToolManifest describes one tool as declared by the server.
type ToolManifest struct {
	// Description explains what the tool does.
	Description string `json:"description"`
	// Parameters declares the tool's parameters in order.
	Parameters []ParameterManifest `json:"parameters"`
	// AuthRequired lists auth services the tool requires regardless of
	// any per-parameter auth sources.
	AuthRequired []string `json:"authRequired,omitempty"`
}

// ParameterManifest describes one parameter as declared by the server.
// Array parameters carry an Items sub-schema; object parameters carry their
// field schemas in Parameters.
type ParameterManifest struct {
	Name        string   `json:"name"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	AuthSources []string `json:"authSources,omitempty"`
	// Required reports whether the caller must supply the parameter.
	// The server omits it for required parameters, so nil means required.
	Required *bool `json:"required,omitempty"`

	Items      *ParameterManifest  `json:"items,omitempty"`
	Parameters []ParameterManifest `json:"parameters,omitempty"`
}

// IsRequired reports whether the parameter must be supplied at call time.
func (p ParameterManifest) IsRequired() bool {
	return p.Required == nil || *p.Required
}

// DecodeManifest parses a manifest document received from the server.
// A syntactically invalid document is a configuration error, surfaced as
// *ManifestError.
func DecodeManifest(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, &ManifestError{Err: err}
	}
	if m.Tools == nil {
		return nil, &ManifestError{Err: fmt.Errorf("manifest has no tools field")}
	}
	return &m, nil
}
