// Package view defines the live node tree: the in-memory representation of
// instantiated UI components.
//
// A Node pairs a registered tag with an attribute map and an ordered child
// list. Children are either nested *Node values or bare primitives (plain
// text). Attribute values are unrestricted on the live side; only the
// serialization engine in pkg/document constrains what can cross a process
// boundary.
//
// The package has no dependencies on the registry or the serialization
// engine, so host code can build trees without pulling either in.
package view
