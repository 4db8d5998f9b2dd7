// Package registry maps component tag names to factories and serialization
// metadata.
//
// Every serializable component declares itself once at startup: its tag,
// current schema version, role, children-encoding strategy, factory, and
// any migrations from older versions it still accepts. There is no implicit
// discovery and no reflection; a type the registry has never been told
// about cannot be serialized or reconstructed.
//
// # Lifecycle
//
// Registrations happen during an initialization phase, before any
// serialization work begins. Once that phase settles the registry is
// read-only and safe for concurrent Lookup calls from any number of
// goroutines. Calling Register concurrently with Lookup is not supported.
package registry
