package components

import (
	"github.com/vellum-ui/vellum/pkg/registry"
	"github.com/vellum-ui/vellum/pkg/view"
)

// Label displays a single run of text. The text attribute may carry a
// template string ("{{user.name}}") resolved by the data-binding layer at
// render time.
//
// Attributes:
//   - text (required): the display string or template
//   - role: text role from the theme's text theme ("title", "body", "label")
func registerLabel(reg *registry.Registry) error {
	return reg.Register(registry.Registration{
		Tag:      "Label",
		Version:  Version,
		Role:     registry.RoleView,
		Strategy: registry.ChildrenInline,
		Factory:  newLabel,
	})
}

func newLabel(attrs view.Attrs, children []any) (*view.Node, error) {
	if _, ok := attrs["text"]; !ok {
		return nil, &MissingAttributeError{Tag: "Label", Attr: "text"}
	}
	if _, ok := attrs["role"]; !ok {
		attrs["role"] = "body"
	}
	return view.New("Label", attrs, children...), nil
}

// Label constructs a label node with the given text.
func Label(text string) *view.Node {
	n, _ := newLabel(view.Attrs{"text": text}, nil)
	return n
}
