package components

import (
	"github.com/vellum-ui/vellum/pkg/registry"
	"github.com/vellum-ui/vellum/pkg/view"
)

// List renders an ordered collection of items. Its children are structured
// content rather than free-form nesting, so it uses the explicit strategy:
// in the document they live under data.children where the list's attribute
// schema owns their meaning and order.
//
// Attributes:
//   - dense: bool, tighter item spacing
//   - separated: bool, draw dividers between items
func registerList(reg *registry.Registry) error {
	return reg.Register(registry.Registration{
		Tag:      "List",
		Version:  Version,
		Role:     registry.RoleContainer,
		Strategy: registry.ChildrenExplicit,
		Factory:  newList,
	})
}

func newList(attrs view.Attrs, children []any) (*view.Node, error) {
	if _, ok := attrs["dense"]; !ok {
		attrs["dense"] = false
	}
	return view.New("List", attrs, children...), nil
}

// List constructs a list node from the given items.
func List(items ...any) *view.Node {
	n, _ := newList(view.Attrs{}, items)
	return n
}
