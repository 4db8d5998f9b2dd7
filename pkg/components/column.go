package components

import (
	"github.com/vellum-ui/vellum/pkg/layout"
	"github.com/vellum-ui/vellum/pkg/registry"
	"github.com/vellum-ui/vellum/pkg/view"
)

// Column lays out its children vertically. See Row for shared attributes.
func registerColumn(reg *registry.Registry) error {
	return reg.Register(registry.Registration{
		Tag:      "Column",
		Version:  Version,
		Role:     registry.RoleContainer,
		Strategy: registry.ChildrenInline,
		Factory:  newLinear("Column", layout.Vertical),
	})
}

// Column constructs a vertical container.
func Column(children ...any) *view.Node {
	n, _ := newLinear("Column", layout.Vertical)(view.Attrs{}, children)
	return n
}
