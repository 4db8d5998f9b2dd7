package components

import (
	"github.com/vellum-ui/vellum/pkg/layout"
	"github.com/vellum-ui/vellum/pkg/registry"
	"github.com/vellum-ui/vellum/pkg/view"
)

// Row lays out its children horizontally.
//
// Attributes:
//   - spacing: gap between children
//   - align: cross-axis alignment ("start", "center", "end", "stretch")
func registerRow(reg *registry.Registry) error {
	return reg.Register(registry.Registration{
		Tag:      "Row",
		Version:  Version,
		Role:     registry.RoleContainer,
		Strategy: registry.ChildrenInline,
		Factory:  newLinear("Row", layout.Horizontal),
	})
}

// newLinear builds a factory shared by Row and Column.
func newLinear(tag string, axis layout.Axis) registry.Factory {
	return func(attrs view.Attrs, children []any) (*view.Node, error) {
		attrs["axis"] = string(axis)
		if _, ok := attrs["align"]; !ok {
			attrs["align"] = string(layout.AlignStart)
		}
		return view.New(tag, attrs, children...), nil
	}
}

// Row constructs a horizontal container.
func Row(children ...any) *view.Node {
	n, _ := newLinear("Row", layout.Horizontal)(view.Attrs{}, children)
	return n
}
