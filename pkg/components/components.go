// Package components provides the standard component set: thin,
// declarative building blocks registered with a registry at startup so
// trees built from them can be serialized and reconstructed.
//
// Each component lives in its own file and contributes one registration.
// Factories validate required attributes, apply defaults, and return the
// live node; rendering belongs to the host runtime.
package components

import (
	"fmt"

	"github.com/vellum-ui/vellum/pkg/registry"
)

// Version is the schema version all built-in components are currently
// written at. Components that have migrated across shapes carry their own
// version history alongside.
const Version = "1.0.0"

// MissingAttributeError reports a factory invoked without a required
// attribute.
type MissingAttributeError struct {
	Tag  string
	Attr string
}

// Error implements the error interface.
func (e *MissingAttributeError) Error() string {
	return fmt.Sprintf("%s: missing required attribute %q", e.Tag, e.Attr)
}

// Register adds every built-in component to the registry. It is meant to
// run once during program initialization, before any serialization work.
func Register(reg *registry.Registry) error {
	for _, register := range []func(*registry.Registry) error{
		registerPanel,
		registerLabel,
		registerButton,
		registerImage,
		registerRow,
		registerColumn,
		registerStack,
		registerList,
		registerCard,
		registerDivider,
		registerSpacer,
		registerTextField,
		registerActionBar,
	} {
		if err := register(reg); err != nil {
			return err
		}
	}
	return nil
}

// NewRegistry returns a fresh registry with all built-ins registered.
func NewRegistry() (*registry.Registry, error) {
	reg := registry.New()
	if err := Register(reg); err != nil {
		return nil, err
	}
	return reg, nil
}
