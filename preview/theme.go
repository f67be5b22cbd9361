package preview

import (
	_ "embed"
	"image/color"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"formc/css"
)

//go:embed theme.css
var DefaultTheme []byte

const defaultFontSize = 12

// Theme answers styling questions for the wireframe renderers. Lookups go
// through the supplied stylesheet first and fall back to the built-in
// theme, so a custom theme only has to override what it cares about.
type Theme struct {
	sheet    *css.Stylesheet
	fallback *css.Stylesheet
}

// NewTheme parses the theme stylesheet. Empty data selects the built-in
// theme. Parsing never fails - problems are collected as warnings.
func NewTheme(data []byte, log *zap.Logger) *Theme {
	p := css.NewParser(log)
	t := &Theme{fallback: p.Parse(DefaultTheme, "builtin")}
	if len(data) > 0 {
		t.sheet = p.Parse(data, "custom")
	} else {
		t.sheet = t.fallback
	}
	return t
}

// Warnings returns everything the theme parser had to skip.
func (t *Theme) Warnings() []string {
	return t.sheet.Warnings
}

func (t *Theme) lookup(property, element string, classes ...string) (css.Value, bool) {
	if v, ok := t.sheet.Style(element, classes...)[property]; ok {
		return v, true
	}
	if t.sheet != t.fallback {
		if v, ok := t.fallback.Style(element, classes...)[property]; ok {
			return v, true
		}
	}
	return css.Value{}, false
}

// Fill returns the background paint for an element, "none" when the theme
// leaves it unpainted.
func (t *Theme) Fill(element string, classes ...string) string {
	if v, ok := t.lookup("fill", element, classes...); ok {
		return v.Paint()
	}
	return "none"
}

// Stroke returns the outline paint for an element, "none" when the theme
// leaves it unpainted.
func (t *Theme) Stroke(element string, classes ...string) string {
	if v, ok := t.lookup("stroke", element, classes...); ok {
		return v.Paint()
	}
	return "none"
}

// Color returns the text paint for an element.
func (t *Theme) Color(element string, classes ...string) string {
	if v, ok := t.lookup("color", element, classes...); ok {
		return v.Paint()
	}
	return "#000000"
}

// FontSize returns the text size for an element in page pixels. Point
// sizes are converted at the usual 96/72, percentages apply to the
// default size.
func (t *Theme) FontSize(element string, classes ...string) float64 {
	v, ok := t.lookup("font-size", element, classes...)
	if !ok || !v.IsNumeric() || v.Value <= 0 {
		return defaultFontSize
	}
	switch v.Unit {
	case "", "px":
		return v.Value
	case "pt":
		return v.Value * 96 / 72
	case "%":
		return defaultFontSize * v.Value / 100
	default:
		return defaultFontSize
	}
}

// Opacity returns the opacity for an element clamped to [0,1]. Elements
// without an opacity rule are fully opaque.
func (t *Theme) Opacity(element string, classes ...string) float64 {
	v, ok := t.lookup("opacity", element, classes...)
	if !ok || !v.IsNumeric() {
		return 1
	}
	if v.Value < 0 {
		return 0
	}
	if v.Value > 1 {
		return 1
	}
	return v.Value
}

// ParseColor converts a theme paint value into a drawable color. The
// boolean is false for paints that mean "draw nothing": "none",
// "transparent", the empty string and anything unparseable.
func ParseColor(paint string) (color.NRGBA, bool) {
	s := strings.ToLower(strings.TrimSpace(paint))
	switch s {
	case "", "none", "transparent":
		return color.NRGBA{}, false
	case "white":
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, true
	case "black":
		return color.NRGBA{A: 0xff}, true
	case "gray", "grey":
		return color.NRGBA{R: 0x80, G: 0x80, B: 0x80, A: 0xff}, true
	case "red":
		return color.NRGBA{R: 0xff, A: 0xff}, true
	case "green":
		return color.NRGBA{G: 0x80, A: 0xff}, true
	case "blue":
		return color.NRGBA{B: 0xff, A: 0xff}, true
	}
	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, false
	}
	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, false
	}
	n, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, false
	}
	return color.NRGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 0xff}, true
}
