package components

import (
	"github.com/vellum-ui/vellum/pkg/registry"
	"github.com/vellum-ui/vellum/pkg/view"
)

// TextField is a single-line text input. Its onChange attribute is a
// callback on the live side; under the default policy it is dropped with a
// diagnostic when the tree is serialized.
//
// Attributes:
//   - placeholder: hint text
//   - value: current content
//   - onChange: callback invoked with the new value
func registerTextField(reg *registry.Registry) error {
	return reg.Register(registry.Registration{
		Tag:      "TextField",
		Version:  Version,
		Role:     registry.RoleView,
		Strategy: registry.ChildrenInline,
		Factory:  newTextField,
	})
}

func newTextField(attrs view.Attrs, children []any) (*view.Node, error) {
	if _, ok := attrs["value"]; !ok {
		attrs["value"] = ""
	}
	return view.New("TextField", attrs), nil
}
