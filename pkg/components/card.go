package components

import (
	"github.com/vellum-ui/vellum/pkg/registry"
	"github.com/vellum-ui/vellum/pkg/view"
)

// Card is a surface container with an optional header sub-view carried as
// an attribute. The header demonstrates an embedded node: it serializes as
// a nested document inside data, not as a child.
//
// Attributes:
//   - header: embedded node shown above the card body
//   - elevation: number, shadow depth
func registerCard(reg *registry.Registry) error {
	return reg.Register(registry.Registration{
		Tag:      "Card",
		Version:  Version,
		Role:     registry.RoleContainer,
		Strategy: registry.ChildrenInline,
		Factory:  newCard,
	})
}

func newCard(attrs view.Attrs, children []any) (*view.Node, error) {
	if _, ok := attrs["elevation"]; !ok {
		attrs["elevation"] = 1.0
	}
	return view.New("Card", attrs, children...), nil
}
