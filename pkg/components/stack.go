package components

import (
	"github.com/vellum-ui/vellum/pkg/layout"
	"github.com/vellum-ui/vellum/pkg/registry"
	"github.com/vellum-ui/vellum/pkg/view"
)

// Stack overlays its children back to front; the last child paints on top.
//
// Attributes:
//   - alignment: where non-positioned children sit ("start", "center", "end")
func registerStack(reg *registry.Registry) error {
	return reg.Register(registry.Registration{
		Tag:      "Stack",
		Version:  Version,
		Role:     registry.RoleContainer,
		Strategy: registry.ChildrenInline,
		Factory:  newStack,
	})
}

func newStack(attrs view.Attrs, children []any) (*view.Node, error) {
	if _, ok := attrs["alignment"]; !ok {
		attrs["alignment"] = string(layout.AlignCenter)
	}
	return view.New("Stack", attrs, children...), nil
}
