package binding

import (
	"context"
	"fmt"
	"strings"

	"github.com/vellum-ui/vellum/pkg/view"
)

// Context is the data a resolver substitutes into template strings.
type Context map[string]any

// Resolver fills placeholders in a template string from a context. It is
// treated as a pure function: same inputs, same output, no side effects.
// The serialization engine never calls it; resolution happens at render
// time on the live tree.
type Resolver func(template string, ctx Context) string

// Source provides binding contexts by key. Implementations own their own
// fetching, caching, and retry behavior; none of that lives here.
type Source interface {
	Fetch(ctx context.Context, key string) (Context, error)
}

// HasPlaceholder reports whether s contains template syntax worth
// resolving.
func HasPlaceholder(s string) bool {
	return strings.Contains(s, "{{")
}

// Simple resolves "{{key}}" placeholders to the context value under key.
// Keys missing from the context are left as-is so a second resolution
// pass can still find them. Whitespace inside the braces is ignored.
func Simple(template string, ctx Context) string {
	var b strings.Builder
	rest := template
	for {
		start := strings.Index(rest, "{{")
		if start < 0 {
			b.WriteString(rest)
			return b.String()
		}
		end := strings.Index(rest[start:], "}}")
		if end < 0 {
			b.WriteString(rest)
			return b.String()
		}
		end += start
		b.WriteString(rest[:start])
		key := strings.TrimSpace(rest[start+2 : end])
		if val, ok := ctx[key]; ok {
			fmt.Fprint(&b, val)
		} else {
			b.WriteString(rest[start : end+2])
		}
		rest = rest[end+2:]
	}
}

// ResolveTree returns a copy of the tree with every template-bearing
// string attribute and string child passed through the resolver. The input
// tree is not modified. Non-string values, nested nodes, and function
// attributes pass through untouched.
func ResolveTree(root *view.Node, resolve Resolver, bctx Context) *view.Node {
	if root == nil || resolve == nil {
		return root
	}
	out := &view.Node{Tag: root.Tag, Attrs: root.Attrs.Clone()}
	for key, val := range out.Attrs {
		out.Attrs[key] = resolveValue(val, resolve, bctx)
	}
	for _, child := range root.Children {
		switch c := child.(type) {
		case *view.Node:
			out.Children = append(out.Children, ResolveTree(c, resolve, bctx))
		case string:
			out.Children = append(out.Children, resolveString(c, resolve, bctx))
		default:
			out.Children = append(out.Children, child)
		}
	}
	return out
}

func resolveValue(v any, resolve Resolver, bctx Context) any {
	switch val := v.(type) {
	case string:
		return resolveString(val, resolve, bctx)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = resolveValue(item, resolve, bctx)
		}
		return out
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = resolveValue(item, resolve, bctx)
		}
		return out
	case *view.Node:
		return ResolveTree(val, resolve, bctx)
	}
	return v
}

func resolveString(s string, resolve Resolver, bctx Context) string {
	if !HasPlaceholder(s) {
		return s
	}
	return resolve(s, bctx)
}
