package registry

import "fmt"

// NotFoundError reports a lookup of a tag with no registration. A document
// referencing such a tag cannot be reconstructed and the deserializer
// surfaces this error rather than substituting a default node.
type NotFoundError struct {
	Tag string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("component %q is not registered", e.Tag)
}

// DuplicateRegistrationError reports a second registration of a tag without
// a migration path from the version already registered.
type DuplicateRegistrationError struct {
	Tag      string
	Existing string
	New      string
}

// Error implements the error interface.
func (e *DuplicateRegistrationError) Error() string {
	return fmt.Sprintf("component %q already registered at version %s (attempted %s, no migration declared)",
		e.Tag, e.Existing, e.New)
}

// InvalidRegistrationError reports a registration with missing required
// fields.
type InvalidRegistrationError struct {
	Tag    string
	Reason string
}

// Error implements the error interface.
func (e *InvalidRegistrationError) Error() string {
	if e.Tag == "" {
		return "invalid registration: " + e.Reason
	}
	return fmt.Sprintf("invalid registration for %q: %s", e.Tag, e.Reason)
}
