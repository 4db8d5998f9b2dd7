// Package document implements the view-tree serialization engine: it
// converts live component trees into versioned, JSON-compatible documents
// and reconstructs equivalent trees from those documents later, possibly in
// a different process.
//
// # Document Format
//
// A document is a tree of nodes, each carrying a tag, a schema version, a
// role, an attribute map, and optionally ordered children:
//
//	{ "tagName": "Panel", "version": "1.0.0", "role": "container",
//	  "data": { "padding": "medium" },
//	  "children": [
//	    { "tagName": "Label", "version": "1.0.0", "role": "view",
//	      "data": { "text": "Hello" } } ] }
//
// Where a node's nested content ends up depends on its registered children
// strategy: inline components use the top-level children array; explicit
// components encode children under data.children like any other attribute.
//
// # Attribute Values
//
// An attribute value is a primitive, an ordered list, a string-keyed map,
// or an embedded node (a sub-view carried as configuration, e.g. an action
// list holding button definitions). The codec recurses through lists and
// maps and hands embedded nodes to the serializer or deserializer, so
// nesting composes to any depth.
//
// Function values (event callbacks) have no document representation. The
// engine applies a caller-supplied CallbackPolicy instead: drop with a
// diagnostic (default), substitute a symbolic Action descriptor, or carry
// caller-extracted source text explicitly marked unsafe. The engine never
// evaluates such text.
//
// # Versioning
//
// Every node records the schema version it was written at. On
// deserialization the version guard requires an exact match with the
// registration or a migration the registration declared for that older
// version; anything else fails with VersionMismatchError rather than
// guessing.
//
// # Reserved Keys
//
// Within data values the codec reserves the "$action" and "$unsafeSource"
// wrapper keys, and recognizes embedded nodes by the pair of non-empty
// "tagName" and "version" string fields. Plain map attributes must avoid
// these shapes.
//
// # Concurrency
//
// Serialize and Deserialize are synchronous tree walks with no I/O and no
// shared mutable state; once registration has settled they may run
// concurrently on independent trees. Recursion is unbounded unless a
// limit is installed; callers consuming untrusted documents should set
// WithMaxDepth.
package document
