package layout

import "testing"

func TestEdgeInsetsRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		insets EdgeInsets
	}{
		{"all", EdgeInsetsAll(8)},
		{"symmetric", EdgeInsetsSymmetric(16, 4)},
		{"partial", EdgeInsets{Top: 2}},
		{"zero", EdgeInsets{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EdgeInsetsFromMap(tt.insets.Map())
			if got != tt.insets {
				t.Errorf("round trip = %+v, want %+v", got, tt.insets)
			}
		})
	}
}

func TestEdgeInsetsMapOmitsZeroSides(t *testing.T) {
	m := EdgeInsets{Left: 4}.Map()
	if len(m) != 1 {
		t.Errorf("Map() has %d keys, want 1: %v", len(m), m)
	}
	if m["left"] != 4.0 {
		t.Errorf("left = %v, want 4", m["left"])
	}
}
