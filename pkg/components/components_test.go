package components

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vellum-ui/vellum/pkg/document"
	"github.com/vellum-ui/vellum/pkg/view"
)

func TestNewRegistry(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatalf("NewRegistry() error = %v", err)
	}
	for _, tag := range []string{
		"Panel", "Label", "Button", "Image", "Row", "Column",
		"Stack", "List", "Card", "Divider", "Spacer", "TextField", "ActionBar",
	} {
		if !reg.Has(tag) {
			t.Errorf("registry missing %q", tag)
		}
	}
}

func TestRequiredAttributes(t *testing.T) {
	tests := []struct {
		tag   string
		attrs view.Attrs
		want  string
	}{
		{"Label", view.Attrs{}, "text"},
		{"Button", view.Attrs{}, "label"},
		{"Image", view.Attrs{}, "src"},
	}
	reg, err := NewRegistry()
	if err != nil {
		t.Fatal(err)
	}
	for _, tc := range tests {
		t.Run(tc.tag, func(t *testing.T) {
			entry, err := reg.Lookup(tc.tag)
			if err != nil {
				t.Fatal(err)
			}
			_, err = entry.Factory(tc.attrs, nil)
			var missing *MissingAttributeError
			if !errors.As(err, &missing) {
				t.Fatalf("factory error = %v, want *MissingAttributeError", err)
			}
			if missing.Attr != tc.want {
				t.Errorf("Attr = %q, want %q", missing.Attr, tc.want)
			}
		})
	}
}

func TestBuiltinsRoundTrip(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatal(err)
	}
	engine := document.New(reg)

	live := Panel(view.Attrs{"padding": "large"},
		Label("{{user.name}}'s dashboard"),
		Row(
			Label("status"),
			Button("Refresh", nil),
		),
		List(
			Label("first"),
			Label("second"),
		),
		ActionBar(
			Button("Save", nil),
			Button("Cancel", nil),
		),
	)

	doc, diags, err := engine.Serialize(live)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("diagnostics = %v, want none (no callbacks attached)", diags)
	}

	rebuilt, err := engine.Deserialize(doc)
	if err != nil {
		t.Fatalf("Deserialize() error = %v", err)
	}

	first, _, err := engine.Marshal(live)
	if err != nil {
		t.Fatal(err)
	}
	second, _, err := engine.Marshal(rebuilt)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(string(first), string(second)); diff != "" {
		t.Errorf("round trip changed document (-first +second):\n%s", diff)
	}
}

func TestButtonMigration(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatal(err)
	}
	engine := document.New(reg)

	doc := &document.Node{Tag: "Button", Version: "1.0.0", Data: map[string]any{
		"caption": "Legacy Save",
	}}
	live, err := engine.Deserialize(doc)
	if err != nil {
		t.Fatalf("Deserialize() error = %v", err)
	}
	if got := live.Attrs.String("label", ""); got != "Legacy Save" {
		t.Errorf("label = %q, want migrated caption", got)
	}
}

func TestCallbackDropOnSerializedButton(t *testing.T) {
	reg, err := NewRegistry()
	if err != nil {
		t.Fatal(err)
	}
	engine := document.New(reg)

	live := Button("Save", func() {})
	doc, diags, err := engine.Serialize(live)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if _, present := doc.Data["onTap"]; present {
		t.Error("onTap survived serialization")
	}
	if len(diags) != 1 {
		t.Errorf("diagnostics = %v, want one drop", diags)
	}
}
