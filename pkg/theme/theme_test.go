package theme

import "testing"

func TestDefaults(t *testing.T) {
	light := DefaultLight()
	dark := DefaultDark()

	if light.Brightness != BrightnessLight || dark.Brightness != BrightnessDark {
		t.Error("brightness mismatch")
	}
	if light.ColorScheme.Background == dark.ColorScheme.Background {
		t.Error("light and dark share a background")
	}
	if light.Space("medium") != 16 {
		t.Errorf("Space(medium) = %v, want 16", light.Space("medium"))
	}
	if light.Space("unknown") != light.Space("medium") {
		t.Error("unknown spacing should fall back to medium")
	}
}

func TestCopyWith(t *testing.T) {
	base := DefaultLight()
	colors := DarkColorScheme()
	got := base.CopyWith(&colors, nil, nil)

	if got.ColorScheme.Background != colors.Background {
		t.Error("CopyWith did not override colors")
	}
	if got.Brightness != base.Brightness {
		t.Error("CopyWith changed brightness unexpectedly")
	}
	if base.ColorScheme.Background != LightColorScheme().Background {
		t.Error("CopyWith mutated the receiver")
	}
}
