package document

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/vellum-ui/vellum/pkg/view"
)

func TestSerializeBasic(t *testing.T) {
	e := New(newTestRegistry(t))
	live := view.New("Label", view.Attrs{"text": "Hello", "size": 14.0})

	doc, diags, err := e.Serialize(live)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("Serialize() diagnostics = %v, want none", diags)
	}
	if doc.Tag != "Label" || doc.Version != "1.0.0" || doc.Role != "view" {
		t.Errorf("header = %s/%s/%s, want Label/1.0.0/view", doc.Tag, doc.Version, doc.Role)
	}
	want := map[string]any{"text": "Hello", "size": 14.0}
	if diff := cmp.Diff(want, doc.Data); diff != "" {
		t.Errorf("Data mismatch (-want +got):\n%s", diff)
	}
}

func TestSerializeUnregistered(t *testing.T) {
	e := New(newTestRegistry(t))
	live := view.New("Panel", nil, view.New("DoesNotExist", nil))

	_, _, err := e.Serialize(live)
	var unreg *UnregisteredNodeError
	if !errors.As(err, &unreg) {
		t.Fatalf("Serialize() error = %v, want *UnregisteredNodeError", err)
	}
	if unreg.Tag != "DoesNotExist" {
		t.Errorf("Tag = %q, want DoesNotExist", unreg.Tag)
	}
}

func TestSerializeInlineChildrenOrder(t *testing.T) {
	e := New(newTestRegistry(t))
	live := view.New("Panel", nil,
		view.New("Label", view.Attrs{"text": "A"}),
		"plain text",
		view.New("Label", view.Attrs{"text": "C"}),
	)

	doc, _, err := e.Serialize(live)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if len(doc.Children) != 3 {
		t.Fatalf("len(Children) = %d, want 3", len(doc.Children))
	}
	if first, ok := doc.Children[0].(*Node); !ok || first.Data["text"] != "A" {
		t.Errorf("Children[0] = %v, want Label A", doc.Children[0])
	}
	if doc.Children[1] != "plain text" {
		t.Errorf("Children[1] = %v, want bare primitive", doc.Children[1])
	}
	if third, ok := doc.Children[2].(*Node); !ok || third.Data["text"] != "C" {
		t.Errorf("Children[2] = %v, want Label C", doc.Children[2])
	}
}

func TestSerializeExplicitChildren(t *testing.T) {
	e := New(newTestRegistry(t))
	live := view.New("List", view.Attrs{"dense": true},
		view.New("Label", view.Attrs{"text": "row 1"}),
		view.New("Label", view.Attrs{"text": "row 2"}),
	)

	doc, _, err := e.Serialize(live)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if len(doc.Children) != 0 {
		t.Errorf("top-level Children = %v, want empty for explicit strategy", doc.Children)
	}
	list, ok := doc.Data["children"].([]any)
	if !ok || len(list) != 2 {
		t.Fatalf("Data[children] = %v, want list of 2", doc.Data["children"])
	}
	for i, want := range []string{"row 1", "row 2"} {
		child, ok := list[i].(*Node)
		if !ok || child.Data["text"] != want {
			t.Errorf("Data[children][%d] = %v, want Label %q", i, list[i], want)
		}
	}
}

func TestSerializeCallbackDrop(t *testing.T) {
	e := New(newTestRegistry(t))
	live := view.New("Button", view.Attrs{
		"label": "Save",
		"onTap": func() {},
	})

	doc, diags, err := e.Serialize(live)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if _, present := doc.Data["onTap"]; present {
		t.Error("onTap survived serialization under the drop policy")
	}
	if doc.Data["label"] != "Save" {
		t.Errorf("label = %v, want Save", doc.Data["label"])
	}
	if len(diags) != 1 {
		t.Fatalf("diagnostics = %v, want exactly one", diags)
	}
	if diags[0].Code != DiagCallbackDropped || diags[0].Attr != "onTap" {
		t.Errorf("diagnostic = %+v, want callback-dropped for onTap", diags[0])
	}
}

func TestSerializeCallbackSymbolic(t *testing.T) {
	policy := CallbackPolicy{
		Mode: CallbackSymbolic,
		Describe: func(tag, attr string, fn any) (*Action, bool) {
			if attr == "onTap" {
				return &Action{Type: "submit", Target: "form"}, true
			}
			return nil, false
		},
	}
	e := New(newTestRegistry(t), WithCallbackPolicy(policy))
	live := view.New("Button", view.Attrs{
		"onTap":  func() {},
		"onHide": func() {},
	})

	doc, diags, err := e.Serialize(live)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	wrapped, ok := doc.Data["onTap"].(map[string]any)
	if !ok {
		t.Fatalf("onTap = %v, want symbolic action wrapper", doc.Data["onTap"])
	}
	inner, _ := wrapped["$action"].(map[string]any)
	if inner["type"] != "submit" || inner["target"] != "form" {
		t.Errorf("action = %v, want submit/form", inner)
	}
	// onHide was declined by the describer, so it falls back to drop.
	if _, present := doc.Data["onHide"]; present {
		t.Error("onHide survived even though the describer declined it")
	}
	if len(diags) != 1 || diags[0].Attr != "onHide" {
		t.Errorf("diagnostics = %v, want one drop for onHide", diags)
	}
}

func TestSerializeCallbackSource(t *testing.T) {
	policy := CallbackPolicy{
		Mode: CallbackSource,
		Source: func(tag, attr string, fn any) (string, bool) {
			return "emit('tapped')", true
		},
	}
	e := New(newTestRegistry(t), WithCallbackPolicy(policy))
	live := view.New("Button", view.Attrs{"onTap": func() {}})

	doc, diags, err := e.Serialize(live)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	if len(diags) != 0 {
		t.Errorf("diagnostics = %v, want none", diags)
	}
	wrapped, ok := doc.Data["onTap"].(map[string]any)
	if !ok || wrapped["$unsafeSource"] != "emit('tapped')" {
		t.Errorf("onTap = %v, want unsafe source wrapper", doc.Data["onTap"])
	}
}

func TestSerializeUnsupportedValue(t *testing.T) {
	e := New(newTestRegistry(t))
	live := view.New("Label", view.Attrs{"ch": make(chan int)})

	_, _, err := e.Serialize(live)
	var unsupported *UnsupportedValueError
	if !errors.As(err, &unsupported) {
		t.Fatalf("Serialize() error = %v, want *UnsupportedValueError", err)
	}
	if unsupported.Attr != "ch" {
		t.Errorf("Attr = %q, want ch", unsupported.Attr)
	}
}

func TestSerializeEmbeddedNodeAttr(t *testing.T) {
	e := New(newTestRegistry(t))
	badge := view.New("Label", view.Attrs{"text": "3"})
	live := view.New("Button", view.Attrs{"label": "Inbox", "badge": badge})

	doc, _, err := e.Serialize(live)
	if err != nil {
		t.Fatalf("Serialize() error = %v", err)
	}
	embedded, ok := doc.Data["badge"].(*Node)
	if !ok {
		t.Fatalf("badge = %T, want *Node", doc.Data["badge"])
	}
	if embedded.Tag != "Label" || embedded.Data["text"] != "3" {
		t.Errorf("embedded = %+v, want Label 3", embedded)
	}
}
