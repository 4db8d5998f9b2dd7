package binding

import (
	"strings"
	"testing"

	"github.com/vellum-ui/vellum/pkg/view"
)

// upperResolver replaces "{{name}}" with the upper-cased context value.
// Real resolution is supplied by the host application; tests only need a
// deterministic stand-in.
func upperResolver(template string, ctx Context) string {
	out := template
	for key, val := range ctx {
		s, _ := val.(string)
		out = strings.ReplaceAll(out, "{{"+key+"}}", strings.ToUpper(s))
	}
	return out
}

func TestResolveTree(t *testing.T) {
	tree := view.New("Panel", view.Attrs{
		"title": "{{user}}'s inbox",
		"count": 3.0,
		"style": map[string]any{"hint": "{{user}}"},
	},
		view.New("Label", view.Attrs{"text": "static"}),
		"hello {{user}}",
	)

	got := ResolveTree(tree, upperResolver, Context{"user": "ada"})

	if got.Attrs["title"] != "ADA's inbox" {
		t.Errorf("title = %v", got.Attrs["title"])
	}
	if got.Attrs["count"] != 3.0 {
		t.Errorf("count changed: %v", got.Attrs["count"])
	}
	style := got.Attrs.Map("style")
	if style["hint"] != "ADA" {
		t.Errorf("nested map hint = %v", style["hint"])
	}
	if got.Children[1] != "hello ADA" {
		t.Errorf("text child = %v", got.Children[1])
	}

	// The input tree must stay untouched.
	if tree.Attrs["title"] != "{{user}}'s inbox" {
		t.Error("ResolveTree mutated its input")
	}
}

func TestResolveSkipsPlainStrings(t *testing.T) {
	calls := 0
	counting := func(template string, ctx Context) string {
		calls++
		return template
	}
	tree := view.New("Label", view.Attrs{"text": "no placeholders here"})
	ResolveTree(tree, counting, nil)
	if calls != 0 {
		t.Errorf("resolver called %d times for placeholder-free tree", calls)
	}
}

func TestHasPlaceholder(t *testing.T) {
	if !HasPlaceholder("{{x}}") || HasPlaceholder("plain") {
		t.Error("HasPlaceholder misclassified")
	}
}

func TestSimple(t *testing.T) {
	tests := []struct {
		name     string
		template string
		ctx      Context
		want     string
	}{
		{"basic", "hi {{user}}", Context{"user": "ada"}, "hi ada"},
		{"two keys", "{{a}}-{{b}}", Context{"a": "x", "b": "y"}, "x-y"},
		{"missing key kept", "hi {{user}}", Context{}, "hi {{user}}"},
		{"spaces inside braces", "{{ user }}", Context{"user": "ada"}, "ada"},
		{"non-string value", "n={{n}}", Context{"n": 3}, "n=3"},
		{"unterminated", "hi {{user", Context{"user": "ada"}, "hi {{user"},
		{"no placeholders", "plain", Context{"user": "ada"}, "plain"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Simple(tt.template, tt.ctx); got != tt.want {
				t.Errorf("Simple(%q) = %q, want %q", tt.template, got, tt.want)
			}
		})
	}
}
