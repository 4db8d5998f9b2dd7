package registry

import (
	"sort"

	"github.com/vellum-ui/vellum/pkg/view"
)

// Role classifies a registered component.
type Role string

const (
	// RoleView marks a leaf component that renders content of its own.
	RoleView Role = "view"

	// RoleContainer marks a component whose purpose is arranging children.
	RoleContainer Role = "container"
)

// ChildrenStrategy selects how a component's nested content is encoded.
type ChildrenStrategy uint8

const (
	// ChildrenInline places serialized children in the document node's
	// top-level children array. Used by components that accept free-form
	// nested content.
	ChildrenInline ChildrenStrategy = iota

	// ChildrenExplicit encodes children under data.children as a regular
	// attribute value, so the component's attribute schema controls the
	// meaning of nested content.
	ChildrenExplicit
)

// String returns the strategy name.
func (s ChildrenStrategy) String() string {
	if s == ChildrenExplicit {
		return "explicit"
	}
	return "inline"
}

// Factory instantiates a live node from decoded attributes and
// already-built children. Children arrive in render order and contain
// *view.Node values interleaved with primitives.
type Factory func(attrs view.Attrs, children []any) (*view.Node, error)

// Migration rewrites a document node's data map from an older attribute
// shape to the currently registered one. It must not mutate its input.
type Migration func(data map[string]any) map[string]any

// Registration describes one serializable component type. Entries are
// created once at startup and never mutated afterward.
type Registration struct {
	// Tag is the component's unique, case-sensitive tag name.
	Tag string

	// Version is the component's current schema version, e.g. "2.1.0".
	Version string

	// Role classifies the component as a view or a container.
	Role Role

	// Strategy selects inline or explicit children encoding.
	Strategy ChildrenStrategy

	// Factory builds a live node from decoded attributes and children.
	Factory Factory

	// Migrations maps older accepted versions to functions that rewrite
	// their data into the current shape. A document version absent from
	// this map (and not equal to Version) is incompatible.
	Migrations map[string]Migration
}

// MigrationFrom returns the migration accepting documents written at the
// given older version, if one was declared.
func (r *Registration) MigrationFrom(version string) (Migration, bool) {
	m, ok := r.Migrations[version]
	return m, ok
}

// Registry maps tag names to component registrations.
//
// Registration is a setup-phase operation: all Register calls must complete
// before the first Lookup from another goroutine. After that the registry is
// effectively immutable and safe for concurrent reads. This is enforced by
// convention, not by a lock, because registrations are static declarations
// made during program initialization.
type Registry struct {
	entries map[string]*Registration
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{entries: make(map[string]*Registration)}
}

// Register adds a component registration.
//
// Registering a tag that already exists fails with
// *DuplicateRegistrationError unless the new registration declares a
// migration from the previously registered version, in which case the new
// registration replaces the old one.
func (r *Registry) Register(reg Registration) error {
	if reg.Tag == "" {
		return &InvalidRegistrationError{Reason: "empty tag"}
	}
	if reg.Version == "" {
		return &InvalidRegistrationError{Tag: reg.Tag, Reason: "empty version"}
	}
	if reg.Factory == nil {
		return &InvalidRegistrationError{Tag: reg.Tag, Reason: "nil factory"}
	}
	if prev, ok := r.entries[reg.Tag]; ok {
		if _, migrates := reg.MigrationFrom(prev.Version); !migrates {
			return &DuplicateRegistrationError{
				Tag:      reg.Tag,
				Existing: prev.Version,
				New:      reg.Version,
			}
		}
	}
	stored := reg
	r.entries[reg.Tag] = &stored
	return nil
}

// Lookup returns the registration for the given tag, or *NotFoundError.
func (r *Registry) Lookup(tag string) (*Registration, error) {
	reg, ok := r.entries[tag]
	if !ok {
		return nil, &NotFoundError{Tag: tag}
	}
	return reg, nil
}

// Has reports whether the tag is registered.
func (r *Registry) Has(tag string) bool {
	_, ok := r.entries[tag]
	return ok
}

// Tags returns all registered tag names in sorted order.
func (r *Registry) Tags() []string {
	tags := make([]string, 0, len(r.entries))
	for tag := range r.entries {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
