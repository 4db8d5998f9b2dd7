package document

import (
	"github.com/vellum-ui/vellum/pkg/registry"
	"golang.org/x/mod/semver"
)

// Compatibility is the version guard's verdict for one document node.
type Compatibility uint8

const (
	// Compatible means the document version matches the registered one.
	Compatible Compatibility = iota

	// Migratable means the registration declared a migration from the
	// document's older version.
	Migratable

	// Incompatible means neither an exact match nor a migration exists.
	Incompatible
)

// String returns the verdict name.
func (c Compatibility) String() string {
	switch c {
	case Compatible:
		return "compatible"
	case Migratable:
		return "migratable"
	default:
		return "incompatible"
	}
}

// sameVersion reports whether two version tags denote the same version.
// Well-formed semantic versions are compared canonically, so "1.0" and
// "1.0.0" match; anything else falls back to exact string equality.
func sameVersion(a, b string) bool {
	if a == b {
		return true
	}
	va, vb := "v"+a, "v"+b
	if semver.IsValid(va) && semver.IsValid(vb) {
		return semver.Compare(va, vb) == 0
	}
	return false
}

// checkVersion validates a document node's version against its
// registration. For Migratable the declared migration is returned; for
// Incompatible a *VersionMismatchError is returned.
func checkVersion(doc *Node, reg *registry.Registration) (Compatibility, registry.Migration, error) {
	if doc.Version == "" {
		return Incompatible, nil, &InvalidDocumentError{
			Reason: "node " + doc.Tag + " has empty version",
		}
	}
	if sameVersion(doc.Version, reg.Version) {
		return Compatible, nil, nil
	}
	if m, ok := reg.MigrationFrom(doc.Version); ok {
		return Migratable, m, nil
	}
	return Incompatible, nil, &VersionMismatchError{
		Tag:               doc.Tag,
		DocumentVersion:   doc.Version,
		RegisteredVersion: reg.Version,
	}
}
