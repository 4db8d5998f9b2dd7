package document

import (
	"bytes"
	"encoding/json"

	"github.com/vellum-ui/vellum/pkg/registry"
)

// Node is the document unit: the JSON-compatible, inert representation of
// one live node. Node values are immutable by convention; they are built
// once by the serializer or parsed once from a payload, and discarded after
// the deserializer consumes them.
type Node struct {
	// Tag is the registered component tag. Never empty in a valid document.
	Tag string

	// Version is the schema version the node was written at.
	Version string

	// Role records the component's role at serialization time.
	Role registry.Role

	// Data holds the node's encoded attribute values. Keys are unique;
	// ordering carries no meaning. Values are primitives, lists, maps, or
	// embedded *Node values.
	Data map[string]any

	// Children holds inline-strategy child content in render order. Each
	// entry is a *Node or a bare primitive (plain text is not wrapped).
	Children []any
}

type nodeJSON struct {
	Tag      string            `json:"tagName"`
	Version  string            `json:"version"`
	Role     registry.Role     `json:"role,omitempty"`
	Data     map[string]any    `json:"data,omitempty"`
	Children []json.RawMessage `json:"children,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (n *Node) MarshalJSON() ([]byte, error) {
	out := struct {
		Tag      string         `json:"tagName"`
		Version  string         `json:"version"`
		Role     registry.Role  `json:"role,omitempty"`
		Data     map[string]any `json:"data,omitempty"`
		Children []any          `json:"children,omitempty"`
	}{
		Tag:      n.Tag,
		Version:  n.Version,
		Role:     n.Role,
		Data:     n.Data,
		Children: n.Children,
	}
	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler. Child objects are parsed into
// *Node values; everything else in the children array stays a primitive.
// Values inside Data are left in their generic decoded form; the attribute
// codec recognizes embedded nodes there by shape during deserialization.
func (n *Node) UnmarshalJSON(data []byte) error {
	var raw nodeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	n.Tag = raw.Tag
	n.Version = raw.Version
	n.Role = raw.Role
	n.Data = raw.Data
	n.Children = nil
	for _, rm := range raw.Children {
		trimmed := bytes.TrimLeft(rm, " \t\r\n")
		if len(trimmed) > 0 && trimmed[0] == '{' {
			child := &Node{}
			if err := json.Unmarshal(rm, child); err != nil {
				return err
			}
			n.Children = append(n.Children, child)
			continue
		}
		var prim any
		if err := json.Unmarshal(rm, &prim); err != nil {
			return err
		}
		n.Children = append(n.Children, prim)
	}
	return nil
}

// nodeFromMap reconstructs a Node from a generically decoded JSON object.
// It is used by the attribute codec when an embedded node surfaces inside
// Data after a payload was unmarshaled. A map qualifies only if it carries
// non-empty tagName and version strings; plain map attributes must not use
// those keys.
func nodeFromMap(m map[string]any) (*Node, bool) {
	tag, _ := m["tagName"].(string)
	version, _ := m["version"].(string)
	if tag == "" || version == "" {
		return nil, false
	}
	n := &Node{Tag: tag, Version: version}
	if role, ok := m["role"].(string); ok {
		n.Role = registry.Role(role)
	}
	if data, ok := m["data"].(map[string]any); ok {
		n.Data = data
	}
	if children, ok := m["children"].([]any); ok {
		for _, c := range children {
			if cm, ok := c.(map[string]any); ok {
				if child, ok := nodeFromMap(cm); ok {
					n.Children = append(n.Children, child)
					continue
				}
			}
			n.Children = append(n.Children, c)
		}
	}
	return n, true
}
