// Package layout defines the value types container components use to
// describe spacing and arrangement. These are plain data: no layout
// arithmetic happens here.
package layout

// EdgeInsets describes padding or margins on each side.
type EdgeInsets struct {
	Left   float64 `json:"left,omitempty"`
	Top    float64 `json:"top,omitempty"`
	Right  float64 `json:"right,omitempty"`
	Bottom float64 `json:"bottom,omitempty"`
}

// EdgeInsetsAll returns uniform insets on every side.
func EdgeInsetsAll(v float64) EdgeInsets {
	return EdgeInsets{Left: v, Top: v, Right: v, Bottom: v}
}

// EdgeInsetsSymmetric returns insets with the given horizontal and
// vertical values.
func EdgeInsetsSymmetric(horizontal, vertical float64) EdgeInsets {
	return EdgeInsets{Left: horizontal, Right: horizontal, Top: vertical, Bottom: vertical}
}

// Map returns the insets as a generic attribute value.
func (e EdgeInsets) Map() map[string]any {
	out := map[string]any{}
	if e.Left != 0 {
		out["left"] = e.Left
	}
	if e.Top != 0 {
		out["top"] = e.Top
	}
	if e.Right != 0 {
		out["right"] = e.Right
	}
	if e.Bottom != 0 {
		out["bottom"] = e.Bottom
	}
	return out
}

// EdgeInsetsFromMap rebuilds insets from a decoded attribute value.
func EdgeInsetsFromMap(m map[string]any) EdgeInsets {
	get := func(k string) float64 {
		v, _ := m[k].(float64)
		return v
	}
	return EdgeInsets{
		Left: get("left"), Top: get("top"),
		Right: get("right"), Bottom: get("bottom"),
	}
}

// Axis is the main direction of a linear container.
type Axis string

const (
	Horizontal Axis = "horizontal"
	Vertical   Axis = "vertical"
)

// Alignment positions children along a container's axes.
type Alignment string

const (
	AlignStart   Alignment = "start"
	AlignCenter  Alignment = "center"
	AlignEnd     Alignment = "end"
	AlignStretch Alignment = "stretch"
)

// Spacing names the standard gaps components accept for padding-like
// attributes, resolved to concrete values by the active theme.
type Spacing string

const (
	SpacingNone   Spacing = "none"
	SpacingSmall  Spacing = "small"
	SpacingMedium Spacing = "medium"
	SpacingLarge  Spacing = "large"
)
