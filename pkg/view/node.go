package view

// Node is the in-memory, renderable instance of a registered component.
//
// A Node is created either directly by application code or by a component
// factory during document deserialization. The tree rooted at a Node is
// owned by whoever holds the root reference; the serialization engine only
// reads it.
type Node struct {
	// Tag is the registered component tag, e.g. "Panel".
	Tag string

	// Attrs holds the node's resolved attribute values. Values may be
	// primitives, lists, maps, nested *Node values, or functions
	// (event callbacks). Functions are never serialized as-is.
	Attrs Attrs

	// Children holds child content in render order. Each entry is either
	// a *Node or a primitive (typically a string for plain text).
	Children []any
}

// Attrs is a node's attribute set. Keys are unique; ordering carries no
// meaning.
type Attrs map[string]any

// New constructs a node with the given tag, attributes, and children.
// A nil attrs is replaced with an empty map so callers can always index.
func New(tag string, attrs Attrs, children ...any) *Node {
	if attrs == nil {
		attrs = Attrs{}
	}
	return &Node{Tag: tag, Attrs: attrs, Children: children}
}

// Append adds children to the node in render order and returns the node.
func (n *Node) Append(children ...any) *Node {
	n.Children = append(n.Children, children...)
	return n
}

// Set sets a single attribute and returns the node.
func (n *Node) Set(key string, value any) *Node {
	if n.Attrs == nil {
		n.Attrs = Attrs{}
	}
	n.Attrs[key] = value
	return n
}

// ChildNodes returns only the *Node children, skipping primitives.
func (n *Node) ChildNodes() []*Node {
	var out []*Node
	for _, c := range n.Children {
		if cn, ok := c.(*Node); ok && cn != nil {
			out = append(out, cn)
		}
	}
	return out
}

// Walk visits n and every descendant *Node in depth-first, render order.
// Primitive children are not visited. Walk stops early if fn returns false.
func (n *Node) Walk(fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, c := range n.Children {
		if cn, ok := c.(*Node); ok {
			if !cn.Walk(fn) {
				return false
			}
		}
	}
	return true
}
