// Package theme provides the color and typography data components consult
// when rendering. Color computation and rendering itself live in the host
// runtime; this package only carries the values.
package theme

// Brightness distinguishes light and dark themes.
type Brightness uint8

const (
	BrightnessLight Brightness = iota
	BrightnessDark
)

// ColorScheme is the palette a theme exposes to components. Colors are
// CSS-style hex strings so they survive serialization unchanged.
type ColorScheme struct {
	Primary      string
	OnPrimary    string
	Surface      string
	OnSurface    string
	Background   string
	OnBackground string
	Error        string
	OnError      string
}

// TextStyle describes one named text role.
type TextStyle struct {
	Size   float64
	Weight string
	Color  string
}

// TextTheme maps text roles to styles.
type TextTheme struct {
	Title TextStyle
	Body  TextStyle
	Label TextStyle
}

// ThemeData bundles everything a component set needs.
type ThemeData struct {
	ColorScheme ColorScheme
	TextTheme   TextTheme
	Brightness  Brightness

	// Spacing resolves the named spacing scale to concrete values.
	Spacing map[string]float64
}

// LightColorScheme returns the default light palette.
func LightColorScheme() ColorScheme {
	return ColorScheme{
		Primary:      "#2563eb",
		OnPrimary:    "#ffffff",
		Surface:      "#f8fafc",
		OnSurface:    "#0f172a",
		Background:   "#ffffff",
		OnBackground: "#0f172a",
		Error:        "#dc2626",
		OnError:      "#ffffff",
	}
}

// DarkColorScheme returns the default dark palette.
func DarkColorScheme() ColorScheme {
	return ColorScheme{
		Primary:      "#3b82f6",
		OnPrimary:    "#0f172a",
		Surface:      "#1e293b",
		OnSurface:    "#f1f5f9",
		Background:   "#0f172a",
		OnBackground: "#f1f5f9",
		Error:        "#f87171",
		OnError:      "#0f172a",
	}
}

func defaultTextTheme(onBackground string) TextTheme {
	return TextTheme{
		Title: TextStyle{Size: 20, Weight: "semibold", Color: onBackground},
		Body:  TextStyle{Size: 14, Weight: "regular", Color: onBackground},
		Label: TextStyle{Size: 12, Weight: "medium", Color: onBackground},
	}
}

func defaultSpacing() map[string]float64 {
	return map[string]float64{
		"none":   0,
		"small":  8,
		"medium": 16,
		"large":  24,
	}
}

// DefaultLight returns the default light theme.
func DefaultLight() *ThemeData {
	colors := LightColorScheme()
	return &ThemeData{
		ColorScheme: colors,
		TextTheme:   defaultTextTheme(colors.OnBackground),
		Brightness:  BrightnessLight,
		Spacing:     defaultSpacing(),
	}
}

// DefaultDark returns the default dark theme.
func DefaultDark() *ThemeData {
	colors := DarkColorScheme()
	return &ThemeData{
		ColorScheme: colors,
		TextTheme:   defaultTextTheme(colors.OnBackground),
		Brightness:  BrightnessDark,
		Spacing:     defaultSpacing(),
	}
}

// CopyWith returns a new ThemeData with non-nil fields overridden.
func (t *ThemeData) CopyWith(colors *ColorScheme, text *TextTheme, brightness *Brightness) *ThemeData {
	out := *t
	if colors != nil {
		out.ColorScheme = *colors
	}
	if text != nil {
		out.TextTheme = *text
	}
	if brightness != nil {
		out.Brightness = *brightness
	}
	return &out
}

// Space resolves a named spacing value, defaulting to medium for unknown
// names.
func (t *ThemeData) Space(name string) float64 {
	if v, ok := t.Spacing[name]; ok {
		return v
	}
	return t.Spacing["medium"]
}
