package document

import (
	"errors"
	"fmt"
)

// ErrMaxDepthExceeded is returned when a caller-imposed depth limit is hit
// during deserialization. The engine itself recurses without bound; the
// limit only exists when installed via WithMaxDepth.
var ErrMaxDepthExceeded = errors.New("document: max depth exceeded")

// UnregisteredNodeError reports a serialize-time encounter with a live node
// whose tag has no registration. There is no best-effort fallback: an
// unregistered node could not be reconstructed later, so serialization of
// the subtree fails.
type UnregisteredNodeError struct {
	Tag string
}

// Error implements the error interface.
func (e *UnregisteredNodeError) Error() string {
	return fmt.Sprintf("cannot serialize unregistered component %q", e.Tag)
}

// VersionMismatchError reports a document node whose version has neither an
// exact match nor a declared migration path to the registered version. The
// node is not coerced or best-guessed.
type VersionMismatchError struct {
	Tag               string
	DocumentVersion   string
	RegisteredVersion string
}

// Error implements the error interface.
func (e *VersionMismatchError) Error() string {
	return fmt.Sprintf("component %q: document version %s is incompatible with registered version %s",
		e.Tag, e.DocumentVersion, e.RegisteredVersion)
}

// InvalidDocumentError reports a document node violating structural
// invariants (empty tag, empty version, malformed value).
type InvalidDocumentError struct {
	Reason string
}

// Error implements the error interface.
func (e *InvalidDocumentError) Error() string {
	return "invalid document: " + e.Reason
}

// UnsupportedValueError reports an attribute value that is neither a
// primitive, list, map, live node, nor function. Such values have no
// document representation.
type UnsupportedValueError struct {
	Tag  string
	Attr string
	Type string
}

// Error implements the error interface.
func (e *UnsupportedValueError) Error() string {
	return fmt.Sprintf("component %q: attribute %q holds unsupported type %s", e.Tag, e.Attr, e.Type)
}

// Diagnostic is a non-fatal note recorded during serialization, most
// commonly when the drop policy discards a function-valued attribute.
type Diagnostic struct {
	// Code identifies the diagnostic kind.
	Code DiagnosticCode

	// Tag is the component tag the diagnostic was recorded for.
	Tag string

	// Attr is the attribute key involved.
	Attr string

	// Message is a human-readable description.
	Message string
}

// DiagnosticCode identifies a diagnostic kind.
type DiagnosticCode string

const (
	// DiagCallbackDropped records a function-valued attribute discarded
	// under the default callback policy.
	DiagCallbackDropped DiagnosticCode = "callback-dropped"
)

// String formats the diagnostic for logs.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s: %s.%s: %s", d.Code, d.Tag, d.Attr, d.Message)
}
