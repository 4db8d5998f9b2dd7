package components

import (
	"github.com/vellum-ui/vellum/pkg/registry"
	"github.com/vellum-ui/vellum/pkg/view"
)

// Spacer occupies empty space along its parent's axis.
//
// Attributes:
//   - size: fixed extent; zero means flexible
func registerSpacer(reg *registry.Registry) error {
	return reg.Register(registry.Registration{
		Tag:      "Spacer",
		Version:  Version,
		Role:     registry.RoleView,
		Strategy: registry.ChildrenInline,
		Factory: func(attrs view.Attrs, children []any) (*view.Node, error) {
			return view.New("Spacer", attrs), nil
		},
	})
}
