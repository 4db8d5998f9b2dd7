package document

import (
	"github.com/vellum-ui/vellum/pkg/registry"
	"github.com/vellum-ui/vellum/pkg/view"
)

// Serialize converts a live tree into its document form, walking top-down.
// It returns the diagnostics recorded along the way (dropped callbacks).
// The live tree is only read, never mutated or retained.
//
// Serialization fails with *UnregisteredNodeError if any node's tag is not
// registered: an unregistered node could not be reconstructed later, so
// there is no best-effort fallback.
func (e *Engine) Serialize(live *view.Node) (*Node, []Diagnostic, error) {
	s := &serializer{engine: e}
	doc, err := s.node(live)
	if err != nil {
		return nil, s.diags, err
	}
	return doc, s.diags, nil
}

// serializer carries per-call state so one Engine can serialize
// independent trees concurrently.
type serializer struct {
	engine *Engine
	diags  []Diagnostic
}

func (s *serializer) node(live *view.Node) (*Node, error) {
	if live == nil {
		return nil, &InvalidDocumentError{Reason: "cannot serialize nil node"}
	}
	reg, err := s.engine.reg.Lookup(live.Tag)
	if err != nil {
		return nil, &UnregisteredNodeError{Tag: live.Tag}
	}

	doc := &Node{Tag: live.Tag, Version: reg.Version, Role: reg.Role}
	for key, val := range live.Attrs {
		encoded, keep, err := s.encode(live.Tag, key, val)
		if err != nil {
			return nil, err
		}
		if keep {
			if doc.Data == nil {
				doc.Data = make(map[string]any, len(live.Attrs))
			}
			doc.Data[key] = encoded
		}
	}

	switch reg.Strategy {
	case registry.ChildrenExplicit:
		// Nested content becomes a regular attribute so the component's
		// attribute schema owns its meaning. Order is preserved.
		if len(live.Children) > 0 {
			list := make([]any, 0, len(live.Children))
			for _, child := range live.Children {
				encoded, keep, err := s.encode(live.Tag, "children", child)
				if err != nil {
					return nil, err
				}
				if keep {
					list = append(list, encoded)
				}
			}
			if doc.Data == nil {
				doc.Data = make(map[string]any, 1)
			}
			doc.Data["children"] = list
		}
	default:
		// Inline: children land in the document node's own children
		// array. Primitive children stay bare, not wrapped.
		for _, child := range live.Children {
			if cn, ok := child.(*view.Node); ok {
				childDoc, err := s.node(cn)
				if err != nil {
					return nil, err
				}
				doc.Children = append(doc.Children, childDoc)
				continue
			}
			if view.IsPrimitive(child) {
				doc.Children = append(doc.Children, child)
				continue
			}
			return nil, &UnsupportedValueError{
				Tag: live.Tag, Attr: "children", Type: typeName(child),
			}
		}
	}
	return doc, nil
}
