package components

import (
	"github.com/vellum-ui/vellum/pkg/registry"
	"github.com/vellum-ui/vellum/pkg/view"
)

// Image displays a picture from a URL or asset reference.
//
// Attributes:
//   - src (required): image location
//   - alt: accessibility description
//   - fit: "cover", "contain", or "fill"
func registerImage(reg *registry.Registry) error {
	return reg.Register(registry.Registration{
		Tag:      "Image",
		Version:  Version,
		Role:     registry.RoleView,
		Strategy: registry.ChildrenInline,
		Factory:  newImage,
	})
}

func newImage(attrs view.Attrs, children []any) (*view.Node, error) {
	if _, ok := attrs["src"]; !ok {
		return nil, &MissingAttributeError{Tag: "Image", Attr: "src"}
	}
	if _, ok := attrs["fit"]; !ok {
		attrs["fit"] = "cover"
	}
	return view.New("Image", attrs, children...), nil
}
