package preview

import (
	"image/color"
	"testing"

	"go.uber.org/zap"
)

func TestTheme_Builtin(t *testing.T) {
	th := NewTheme(nil, zap.NewNop())
	if got := len(th.Warnings()); got != 0 {
		t.Errorf("expected no warnings from the built-in theme, got %v", th.Warnings())
	}
	if got := th.Fill("page"); got != "#ffffff" {
		t.Errorf("expected page fill #ffffff, got '%s'", got)
	}
	if got := th.Stroke("table"); got != "#888888" {
		t.Errorf("expected table stroke #888888, got '%s'", got)
	}
	if got := th.Color("label"); got != "#555555" {
		t.Errorf("expected label color #555555, got '%s'", got)
	}
	if got := th.FontSize("label"); got != 10 {
		t.Errorf("expected label font size 10, got %v", got)
	}
	if got := th.FontSize("text"); got != 12 {
		t.Errorf("expected text font size 12, got %v", got)
	}
	if got := th.Opacity("image", "hidden"); got != 0.25 {
		t.Errorf("expected hidden opacity 0.25, got %v", got)
	}
	if got := th.Opacity("image"); got != 1 {
		t.Errorf("expected full opacity without the hidden class, got %v", got)
	}
	// body carries only a stroke, nothing fills it
	if got := th.Fill("body"); got != "none" {
		t.Errorf("expected body fill none, got '%s'", got)
	}
}

func TestTheme_CustomFallsBack(t *testing.T) {
	custom := []byte(`
page { fill: #222222; }
table { font-size: 9pt; }
`)
	th := NewTheme(custom, zap.NewNop())
	if got := th.Fill("page"); got != "#222222" {
		t.Errorf("expected overridden page fill, got '%s'", got)
	}
	// not overridden, comes from the built-in theme
	if got := th.Stroke("page"); got != "#444444" {
		t.Errorf("expected built-in page stroke, got '%s'", got)
	}
	if got := th.FontSize("table"); got != 12 {
		t.Errorf("expected 9pt converted to 12px, got %v", got)
	}
	if got := th.Color("table"); got != "#1a1a1a" {
		t.Errorf("expected built-in table color, got '%s'", got)
	}
}

func TestTheme_FontSizeUnits(t *testing.T) {
	cases := []struct {
		name string
		css  string
		want float64
	}{
		{"pixels", "text { font-size: 18px; }", 18},
		{"points", "text { font-size: 9pt; }", 12},
		{"percent of default", "text { font-size: 150%; }", 18},
		{"bare number", "text { font-size: 14; }", 14},
		{"keyword falls back", "text { font-size: large; }", 12},
		{"negative falls back", "text { font-size: -3px; }", 12},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			th := NewTheme([]byte(tc.css), zap.NewNop())
			if got := th.FontSize("text"); got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestTheme_OpacityClamped(t *testing.T) {
	th := NewTheme([]byte(".hidden { opacity: 3; }"), zap.NewNop())
	if got := th.Opacity("text", "hidden"); got != 1 {
		t.Errorf("expected opacity clamped to 1, got %v", got)
	}
	th = NewTheme([]byte(".hidden { opacity: -1; }"), zap.NewNop())
	if got := th.Opacity("text", "hidden"); got != 0 {
		t.Errorf("expected opacity clamped to 0, got %v", got)
	}
}

func TestTheme_Warnings(t *testing.T) {
	th := NewTheme([]byte("text { font-weight: bold; }"), zap.NewNop())
	if got := len(th.Warnings()); got != 1 {
		t.Errorf("expected 1 warning for the unknown property, got %v", th.Warnings())
	}
}

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.NRGBA
		ok   bool
	}{
		{"#1a2b3c", color.NRGBA{R: 0x1a, G: 0x2b, B: 0x3c, A: 0xff}, true},
		{"#FFF", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, true},
		{" #888888 ", color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}, true},
		{"white", color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, true},
		{"black", color.NRGBA{A: 0xff}, true},
		{"none", color.NRGBA{}, false},
		{"transparent", color.NRGBA{}, false},
		{"", color.NRGBA{}, false},
		{"#12345", color.NRGBA{}, false},
		{"#nothex", color.NRGBA{}, false},
		{"rgb(1,2,3)", color.NRGBA{}, false},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseColor(tc.in)
			if ok != tc.ok {
				t.Fatalf("expected ok=%v, got %v", tc.ok, ok)
			}
			if ok && got != tc.want {
				t.Errorf("expected %v, got %v", tc.want, got)
			}
		})
	}
}
