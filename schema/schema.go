package schema

import (
	"fmt"
	"math"

	"github.com/spetersoncode/toolbox"
)

// Kind is the declared type of a tool parameter.
type Kind string

const (
	// KindString is a text parameter.
	KindString Kind = "string"
	// KindInt is an integral number parameter.
	KindInt Kind = "integer"
	// KindFloat is a floating-point number parameter.
	KindFloat Kind = "float"
	// KindBool is a boolean parameter.
	KindBool Kind = "boolean"
	// KindArray is an ordered sequence of items of a single declared type.
	KindArray Kind = "array"
	// KindObject is a nested structure with its own parameter descriptors.
	KindObject Kind = "object"
)

// Descriptor is the validated, typed description of one tool parameter.
// Descriptors are value data; once built they are never mutated.
type Descriptor struct {
	// Name is unique within a tool's descriptor set.
	Name string
	// Kind is the declared parameter type.
	Kind Kind
	// Description is the server-provided human-readable description.
	Description string
	// Required reports whether the caller must supply the parameter.
	Required bool
	// AuthSources lists the auth services that can satisfy the parameter.
	// A parameter with auth sources is filled in server-side from a token
	// and disappears from a tool's visible schema once any one of its
	// services has a provider attached.
	AuthSources []string

	// Items describes the element type for KindArray descriptors.
	Items *Descriptor
	// Fields describes the member parameters for KindObject descriptors.
	Fields []Descriptor
}

// UnsupportedTypeError indicates the server declared a parameter with a type
// tag this library does not understand. It is a configuration error.
type UnsupportedTypeError struct {
	Parameter string
	Type      string
}

// Error returns a formatted error message including the parameter and type.
func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("schema: parameter %q has unsupported type %q", e.Parameter, e.Type)
}

// DuplicateParameterError indicates a manifest declared the same parameter
// name twice within one tool.
type DuplicateParameterError struct {
	Parameter string
}

// Error returns a formatted error message including the parameter name.
func (e *DuplicateParameterError) Error() string {
	return fmt.Sprintf("schema: duplicate parameter %q", e.Parameter)
}

// Translate converts the raw parameter manifests of one tool into a
// descriptor set. Unknown type tags and duplicate names are rejected.
// Structured types (arrays, objects) are translated recursively.
func Translate(params []toolbox.ParameterManifest) ([]Descriptor, error) {
	if len(params) == 0 {
		return nil, nil
	}

	seen := make(map[string]struct{}, len(params))
	out := make([]Descriptor, 0, len(params))
	for _, p := range params {
		if _, dup := seen[p.Name]; dup {
			return nil, &DuplicateParameterError{Parameter: p.Name}
		}
		seen[p.Name] = struct{}{}

		d, err := translateOne(p)
		if err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, nil
}

func translateOne(p toolbox.ParameterManifest) (Descriptor, error) {
	d := Descriptor{
		Name:        p.Name,
		Description: p.Description,
		Required:    p.IsRequired(),
		AuthSources: p.AuthSources,
	}

	switch Kind(p.Type) {
	case KindString, KindInt, KindFloat, KindBool:
		d.Kind = Kind(p.Type)

	case KindArray:
		if p.Items == nil {
			return Descriptor{}, &UnsupportedTypeError{Parameter: p.Name, Type: "array without items"}
		}
		items, err := translateOne(*p.Items)
		if err != nil {
			return Descriptor{}, err
		}
		d.Kind = KindArray
		d.Items = &items

	case KindObject:
		fields, err := Translate(p.Parameters)
		if err != nil {
			return Descriptor{}, err
		}
		d.Kind = KindObject
		d.Fields = fields

	default:
		return Descriptor{}, &UnsupportedTypeError{Parameter: p.Name, Type: p.Type}
	}

	return d, nil
}

// Check validates that a caller-supplied value structurally matches the
// descriptor. JSON-decoded values (float64 numbers, map[string]any objects)
// and native Go values are both accepted.
func (d Descriptor) Check(value any) error {
	switch d.Kind {
	case KindString:
		if _, ok := value.(string); !ok {
			return typeErr(d, value)
		}

	case KindInt:
		switch v := value.(type) {
		case int, int32, int64:
		case float64:
			if v != math.Trunc(v) {
				return typeErr(d, value)
			}
		default:
			return typeErr(d, value)
		}

	case KindFloat:
		switch value.(type) {
		case float32, float64, int, int32, int64:
		default:
			return typeErr(d, value)
		}

	case KindBool:
		if _, ok := value.(bool); !ok {
			return typeErr(d, value)
		}

	case KindArray:
		items, ok := asSlice(value)
		if !ok {
			return typeErr(d, value)
		}
		for _, item := range items {
			if err := d.Items.Check(item); err != nil {
				return err
			}
		}

	case KindObject:
		obj, ok := value.(map[string]any)
		if !ok {
			return typeErr(d, value)
		}
		for _, f := range d.Fields {
			v, present := obj[f.Name]
			if !present {
				if f.Required {
					return fmt.Errorf("schema: parameter %q missing required field %q", d.Name, f.Name)
				}
				continue
			}
			if err := f.Check(v); err != nil {
				return err
			}
		}
	}
	return nil
}

func asSlice(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, true
	case []int:
		out := make([]any, len(v))
		for i, n := range v {
			out[i] = n
		}
		return out, true
	case []float64:
		out := make([]any, len(v))
		for i, f := range v {
			out[i] = f
		}
		return out, true
	case []bool:
		out := make([]any, len(v))
		for i, b := range v {
			out[i] = b
		}
		return out, true
	default:
		return nil, false
	}
}

func typeErr(d Descriptor, value any) error {
	return fmt.Errorf("schema: parameter %q expects %s, got %T", d.Name, d.Kind, value)
}
