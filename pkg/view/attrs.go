package view

// String returns the attribute as a string, or def if absent or not a string.
func (a Attrs) String(key, def string) string {
	if v, ok := a[key].(string); ok {
		return v
	}
	return def
}

// Bool returns the attribute as a bool, or def if absent or not a bool.
func (a Attrs) Bool(key string, def bool) bool {
	if v, ok := a[key].(bool); ok {
		return v
	}
	return def
}

// Float returns the attribute as a float64, or def if absent.
// JSON numbers decode as float64, so int-valued attributes written by Go
// code are converted here as well.
func (a Attrs) Float(key string, def float64) float64 {
	switch v := a[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return def
}

// Int returns the attribute as an int, truncating float64 values.
func (a Attrs) Int(key string, def int) int {
	switch v := a[key].(type) {
	case int:
		return v
	case float64:
		return int(v)
	}
	return def
}

// Node returns the attribute as a nested node, or nil.
func (a Attrs) Node(key string) *Node {
	n, _ := a[key].(*Node)
	return n
}

// List returns the attribute as a list, or nil.
func (a Attrs) List(key string) []any {
	l, _ := a[key].([]any)
	return l
}

// Map returns the attribute as a map, or nil.
func (a Attrs) Map(key string) map[string]any {
	m, _ := a[key].(map[string]any)
	return m
}

// Func returns true if the attribute holds a function value.
func (a Attrs) Func(key string) bool {
	return IsFunc(a[key])
}

// Clone returns a shallow copy of the attribute set.
func (a Attrs) Clone() Attrs {
	if a == nil {
		return nil
	}
	out := make(Attrs, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
