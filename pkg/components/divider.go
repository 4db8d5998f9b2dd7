package components

import (
	"github.com/vellum-ui/vellum/pkg/registry"
	"github.com/vellum-ui/vellum/pkg/view"
)

// Divider draws a thin separating rule.
func registerDivider(reg *registry.Registry) error {
	return reg.Register(registry.Registration{
		Tag:      "Divider",
		Version:  Version,
		Role:     registry.RoleView,
		Strategy: registry.ChildrenInline,
		Factory: func(attrs view.Attrs, children []any) (*view.Node, error) {
			return view.New("Divider", attrs), nil
		},
	})
}
