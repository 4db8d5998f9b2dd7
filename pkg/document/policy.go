package document

// Attribute keys reserved by the codec. Plain map attributes must not use
// them; the codec also reserves "tagName" and "version" together for
// embedded-node detection (see nodeFromMap).
const (
	actionKey = "$action"
	sourceKey = "$unsafeSource"
)

// CallbackMode selects how the codec treats function-valued attributes,
// which have no document representation.
type CallbackMode uint8

const (
	// CallbackDrop omits the attribute and records a diagnostic.
	// This is the default.
	CallbackDrop CallbackMode = iota

	// CallbackSymbolic substitutes a caller-described Action for the
	// function. Attributes the describer declines fall back to drop.
	CallbackSymbolic

	// CallbackSource serializes caller-supplied source text for the
	// function, explicitly marked unsafe. The engine never evaluates the
	// text; a consumer must install its own sandboxed evaluator.
	CallbackSource
)

// Action is a symbolic descriptor standing in for an event callback in a
// serialized document.
type Action struct {
	Type    string         `json:"type"`
	Target  string         `json:"target,omitempty"`
	Payload map[string]any `json:"payload,omitempty"`
}

// UnsafeSource is an opaque token carrying serialized callback source text.
// The deserializer returns it verbatim unless the caller installs an
// evaluator via WithSourceEvaluator.
type UnsafeSource string

// CallbackPolicy is the caller-supplied rule for function-valued
// attributes. The zero value is the drop policy.
type CallbackPolicy struct {
	// Mode selects drop, symbolic, or source handling.
	Mode CallbackMode

	// Describe maps a callback to a symbolic Action under
	// CallbackSymbolic. Returning false drops the attribute instead.
	Describe func(tag, attr string, fn any) (*Action, bool)

	// Source maps a callback to its source text under CallbackSource.
	// Returning false drops the attribute instead.
	Source func(tag, attr string, fn any) (string, bool)
}

// encodeAction wraps an Action under its reserved key.
func encodeAction(a *Action) map[string]any {
	m := map[string]any{"type": a.Type}
	if a.Target != "" {
		m["target"] = a.Target
	}
	if len(a.Payload) > 0 {
		m["payload"] = a.Payload
	}
	return map[string]any{actionKey: m}
}

// decodeAction recovers an Action from its reserved-key wrapper.
func decodeAction(m map[string]any) (*Action, bool) {
	inner, ok := m[actionKey].(map[string]any)
	if !ok || len(m) != 1 {
		return nil, false
	}
	a := &Action{}
	a.Type, _ = inner["type"].(string)
	a.Target, _ = inner["target"].(string)
	a.Payload, _ = inner["payload"].(map[string]any)
	if a.Type == "" {
		return nil, false
	}
	return a, true
}
