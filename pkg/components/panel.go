package components

import (
	"github.com/vellum-ui/vellum/pkg/registry"
	"github.com/vellum-ui/vellum/pkg/view"
)

// Panel is the general-purpose container. It accepts free-form nested
// content, so its children are carried inline in the document.
//
// Attributes:
//   - padding: spacing name ("none", "small", "medium", "large")
//   - background: color string, defaults to the theme surface
func registerPanel(reg *registry.Registry) error {
	return reg.Register(registry.Registration{
		Tag:      "Panel",
		Version:  Version,
		Role:     registry.RoleContainer,
		Strategy: registry.ChildrenInline,
		Factory:  newPanel,
	})
}

func newPanel(attrs view.Attrs, children []any) (*view.Node, error) {
	if _, ok := attrs["padding"]; !ok {
		attrs["padding"] = "medium"
	}
	return view.New("Panel", attrs, children...), nil
}

// Panel constructs a panel node directly, for trees built in Go code.
func Panel(attrs view.Attrs, children ...any) *view.Node {
	n, _ := newPanel(ensureAttrs(attrs), children)
	return n
}

func ensureAttrs(attrs view.Attrs) view.Attrs {
	if attrs == nil {
		return view.Attrs{}
	}
	return attrs
}
