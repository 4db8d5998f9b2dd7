package components

import (
	"github.com/vellum-ui/vellum/pkg/registry"
	"github.com/vellum-ui/vellum/pkg/view"
)

// ActionBar presents a horizontal strip of actions. The actions attribute
// is a list of embedded node definitions (typically buttons); each entry
// serializes as a full nested document, children and all.
//
// Attributes:
//   - actions: list of embedded nodes
//   - align: "start", "center", or "end"
func registerActionBar(reg *registry.Registry) error {
	return reg.Register(registry.Registration{
		Tag:      "ActionBar",
		Version:  Version,
		Role:     registry.RoleContainer,
		Strategy: registry.ChildrenInline,
		Factory:  newActionBar,
	})
}

func newActionBar(attrs view.Attrs, children []any) (*view.Node, error) {
	if _, ok := attrs["align"]; !ok {
		attrs["align"] = "end"
	}
	return view.New("ActionBar", attrs, children...), nil
}

// ActionBar constructs an action bar from the given action nodes.
func ActionBar(actions ...*view.Node) *view.Node {
	list := make([]any, len(actions))
	for i, a := range actions {
		list[i] = a
	}
	n, _ := newActionBar(view.Attrs{"actions": list}, nil)
	return n
}
