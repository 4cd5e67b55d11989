package schema

import "encoding/json"

// jsonNode is the JSON Schema representation of a descriptor set.
type jsonNode struct {
	Type        string               `json:"type"`
	Description string               `json:"description,omitempty"`
	Items       *jsonNode            `json:"items,omitempty"`
	Properties  map[string]*jsonNode `json:"properties,omitempty"`
	Required    []string             `json:"required,omitempty"`
}

// JSONSchema renders a descriptor set as a JSON Schema object.
// Framework adapters use this to declare tool parameters to LLM providers
// and MCP clients.
func JSONSchema(params []Descriptor) (json.RawMessage, error) {
	root := objectNode(params)
	return json.Marshal(root)
}

// MustJSONSchema is like JSONSchema but panics on error.
func MustJSONSchema(params []Descriptor) json.RawMessage {
	data, err := JSONSchema(params)
	if err != nil {
		panic(err)
	}
	return data
}

func objectNode(params []Descriptor) *jsonNode {
	node := &jsonNode{
		Type:       "object",
		Properties: make(map[string]*jsonNode, len(params)),
	}
	for _, p := range params {
		node.Properties[p.Name] = toNode(p)
		if p.Required {
			node.Required = append(node.Required, p.Name)
		}
	}
	return node
}

func toNode(d Descriptor) *jsonNode {
	switch d.Kind {
	case KindArray:
		return &jsonNode{
			Type:        "array",
			Description: d.Description,
			Items:       toNode(*d.Items),
		}
	case KindObject:
		node := objectNode(d.Fields)
		node.Description = d.Description
		return node
	case KindInt:
		return &jsonNode{Type: "integer", Description: d.Description}
	case KindFloat:
		return &jsonNode{Type: "number", Description: d.Description}
	default:
		return &jsonNode{Type: string(d.Kind), Description: d.Description}
	}
}
