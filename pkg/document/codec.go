package document

import (
	"fmt"

	"github.com/vellum-ui/vellum/pkg/view"
)

// The attribute codec is shared by the serializer and the deserializer.
// Encoding recurses into Serialize when a value is itself a live sub-node;
// decoding recurses into Deserialize when it meets an embedded document
// node. That mutual recursion is what makes "a value may itself be a node"
// uniform instead of special-cased at every call site.

// encode converts one live attribute value to its document form. The
// second return value is false when the value was dropped (callback policy)
// and the attribute key should be omitted entirely.
func (s *serializer) encode(tag, attr string, v any) (any, bool, error) {
	switch val := v.(type) {
	case nil:
		return nil, true, nil
	case *view.Node:
		doc, err := s.node(val)
		if err != nil {
			return nil, false, err
		}
		return doc, true, nil
	case []*view.Node:
		list := make([]any, 0, len(val))
		for _, item := range val {
			doc, err := s.node(item)
			if err != nil {
				return nil, false, err
			}
			list = append(list, doc)
		}
		return list, true, nil
	case *Action:
		return encodeAction(val), true, nil
	case UnsafeSource:
		return map[string]any{sourceKey: string(val)}, true, nil
	case []any:
		list := make([]any, 0, len(val))
		for _, item := range val {
			encoded, keep, err := s.encode(tag, attr, item)
			if err != nil {
				return nil, false, err
			}
			if keep {
				list = append(list, encoded)
			}
		}
		return list, true, nil
	case view.Attrs:
		return s.encodeMap(tag, attr, val)
	case map[string]any:
		return s.encodeMap(tag, attr, val)
	}
	if view.IsFunc(v) {
		return s.callback(tag, attr, v)
	}
	if view.IsPrimitive(v) {
		return v, true, nil
	}
	return nil, false, &UnsupportedValueError{Tag: tag, Attr: attr, Type: typeName(v)}
}

func (s *serializer) encodeMap(tag, attr string, m map[string]any) (any, bool, error) {
	out := make(map[string]any, len(m))
	for k, item := range m {
		encoded, keep, err := s.encode(tag, attr, item)
		if err != nil {
			return nil, false, err
		}
		if keep {
			out[k] = encoded
		}
	}
	return out, true, nil
}

// callback applies the callback policy to a function-valued attribute.
func (s *serializer) callback(tag, attr string, fn any) (any, bool, error) {
	p := s.engine.policy
	switch p.Mode {
	case CallbackSymbolic:
		if p.Describe != nil {
			if action, ok := p.Describe(tag, attr, fn); ok {
				return encodeAction(action), true, nil
			}
		}
	case CallbackSource:
		if p.Source != nil {
			if src, ok := p.Source(tag, attr, fn); ok {
				return map[string]any{sourceKey: src}, true, nil
			}
		}
	}
	s.diags = append(s.diags, Diagnostic{
		Code:    DiagCallbackDropped,
		Tag:     tag,
		Attr:    attr,
		Message: "function-valued attribute has no document representation",
	})
	return nil, false, nil
}

// decode converts one document attribute value back to its live form.
// Embedded nodes become live sub-nodes; symbolic actions become *Action;
// unsafe source text becomes an UnsafeSource token unless an evaluator is
// installed.
func (d *deserializer) decode(v any) (any, error) {
	switch val := v.(type) {
	case *Node:
		return d.node(val)
	case []any:
		list := make([]any, 0, len(val))
		for _, item := range val {
			decoded, err := d.decode(item)
			if err != nil {
				return nil, err
			}
			list = append(list, decoded)
		}
		return list, nil
	case map[string]any:
		if action, ok := decodeAction(val); ok {
			return action, nil
		}
		if src, ok := val[sourceKey].(string); ok && len(val) == 1 {
			if d.engine.evalSource != nil {
				return d.engine.evalSource(src)
			}
			return UnsafeSource(src), nil
		}
		if node, ok := nodeFromMap(val); ok {
			return d.node(node)
		}
		out := make(map[string]any, len(val))
		for k, item := range val {
			decoded, err := d.decode(item)
			if err != nil {
				return nil, err
			}
			out[k] = decoded
		}
		return out, nil
	}
	return v, nil
}

func typeName(v any) string {
	return fmt.Sprintf("%T", v)
}
