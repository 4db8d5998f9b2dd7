package components

import (
	"github.com/vellum-ui/vellum/pkg/registry"
	"github.com/vellum-ui/vellum/pkg/view"
)

// ButtonVersion is Button's current schema version. Version 1.0.0 named
// the label attribute "caption"; documents written at 1.0.0 still
// deserialize through the declared migration.
const ButtonVersion = "2.0.0"

// Button is a tappable action. Its onTap attribute holds a callback on the
// live side and is subject to the engine's callback policy when
// serialized.
//
// Attributes:
//   - label (required): button text
//   - variant: "primary", "secondary", or "danger"
//   - disabled: bool
//   - onTap: callback or symbolic action
func registerButton(reg *registry.Registry) error {
	return reg.Register(registry.Registration{
		Tag:      "Button",
		Version:  ButtonVersion,
		Role:     registry.RoleView,
		Strategy: registry.ChildrenInline,
		Factory:  newButton,
		Migrations: map[string]registry.Migration{
			"1.0.0": migrateButtonV1,
		},
	})
}

func migrateButtonV1(data map[string]any) map[string]any {
	out := make(map[string]any, len(data))
	for k, v := range data {
		if k == "caption" {
			out["label"] = v
			continue
		}
		out[k] = v
	}
	return out
}

func newButton(attrs view.Attrs, children []any) (*view.Node, error) {
	if _, ok := attrs["label"]; !ok {
		return nil, &MissingAttributeError{Tag: "Button", Attr: "label"}
	}
	if _, ok := attrs["variant"]; !ok {
		attrs["variant"] = "primary"
	}
	return view.New("Button", attrs, children...), nil
}

// Button constructs a button node with the given label and tap callback.
func Button(label string, onTap func()) *view.Node {
	attrs := view.Attrs{"label": label}
	if onTap != nil {
		attrs["onTap"] = onTap
	}
	n, _ := newButton(attrs, nil)
	return n
}
