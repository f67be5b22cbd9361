package preview

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"formc/config"
	"formc/form"
)

func renderTestPNG(t *testing.T, doc *form.Document, opts Options) image.Image {
	t.Helper()
	opts.Format = config.PreviewFormatPng
	out, err := Render(doc, opts)
	if err != nil {
		t.Fatalf("failed to render PNG: %v", err)
	}
	img, err := png.Decode(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("failed to decode PNG output: %v", err)
	}
	return img
}

func pixelAt(img image.Image, x, y int) color.NRGBA {
	r, g, b, a := img.At(x, y).RGBA()
	return color.NRGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}

func TestRenderPNG_Size(t *testing.T) {
	img := renderTestPNG(t, testDocument(), Options{})
	if b := img.Bounds(); b.Dx() != 794 || b.Dy() != 1123 {
		t.Errorf("expected 794x1123, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestRenderPNG_Scaled(t *testing.T) {
	img := renderTestPNG(t, testDocument(), Options{Scale: 2})
	if b := img.Bounds(); b.Dx() != 1588 || b.Dy() != 2246 {
		t.Errorf("expected 1588x2246, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestRenderPNG_PageAndBands(t *testing.T) {
	img := renderTestPNG(t, testDocument(), Options{})
	white := color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}

	// the sheet outside the printable area stays the page fill
	if got := pixelAt(img, 5, 5); got != white {
		t.Errorf("expected white sheet corner, got %v", got)
	}
	// header band interior carries the header fill
	if got := pixelAt(img, 45, 45); got != (color.NRGBA{R: 0xfb, G: 0xfb, B: 0xfb, A: 0xff}) {
		t.Errorf("expected header band fill, got %v", got)
	}
	// the body band has no fill of its own
	if got := pixelAt(img, 45, 330); got != white {
		t.Errorf("expected unfilled body band, got %v", got)
	}
}

func TestRenderPNG_TableRules(t *testing.T) {
	img := renderTestPNG(t, testDocument(), Options{})
	gray := color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}

	// header separator 28px below the table top
	if got := pixelAt(img, 100, 368); got != gray {
		t.Errorf("expected header separator, got %v", got)
	}
	// column split at the exact pixel width of the first column
	if got := pixelAt(img, 327, 500); got != gray {
		t.Errorf("expected column split, got %v", got)
	}
	// summary separator 24px above the table bottom
	if got := pixelAt(img, 100, 676); got != gray {
		t.Errorf("expected summary separator, got %v", got)
	}
}

func TestRenderPNG_Barcode(t *testing.T) {
	img := renderTestPNG(t, testDocument(), Options{})

	// dark QR modules must land inside the barcode box
	found := false
	for y := 925; y < 1015 && !found; y++ {
		for x := 651; x < 741 && !found; x++ {
			c := pixelAt(img, x, y)
			if c.R < 0x40 && c.G < 0x40 && c.B < 0x40 {
				found = true
			}
		}
	}
	if !found {
		t.Error("expected dark QR modules inside the barcode box")
	}
}

func TestRenderPNG_Logo(t *testing.T) {
	logo := solidPNG(t, 10, 10, color.NRGBA{R: 0xff, A: 0xff})
	loader := func(ref string) ([]byte, error) { return logo, nil }
	img := renderTestPNG(t, testDocument(), Options{Assets: loader})

	// the logo is never upscaled, it sits centered in its box
	if got := pixelAt(img, 646, 100); got != (color.NRGBA{R: 0xff, A: 0xff}) {
		t.Errorf("expected the red logo pixel at the box center, got %v", got)
	}
}

func TestRenderPNG_HiddenTint(t *testing.T) {
	img := renderTestPNG(t, testDocument(), Options{})

	visible := pixelAt(img, 48, 110) // to_name border at full strength
	hidden := pixelAt(img, 48, 740)  // note border at quarter opacity

	if visible != (color.NRGBA{R: 0x9a, G: 0xa3, B: 0xad, A: 0xff}) {
		t.Errorf("expected full strength text border, got %v", visible)
	}
	if hidden.R <= visible.R {
		t.Errorf("expected hidden border lighter than the visible one, got %v vs %v", hidden, visible)
	}
}

func TestRenderPNG_CardGrid(t *testing.T) {
	img := renderTestPNG(t, labelDocument(), Options{})

	// gap between card columns shows the sheet fill
	if got := pixelAt(img, 400, 500); got != (color.NRGBA{R: 0xfd, G: 0xfd, B: 0xfd, A: 0xff}) {
		t.Errorf("expected card sheet fill in the gap, got %v", got)
	}
	// card corner carries the card border
	if got := pixelAt(img, 50, 62); got != (color.NRGBA{R: 0x88, G: 0x88, B: 0x88, A: 0xff}) {
		t.Errorf("expected card border, got %v", got)
	}
}

func TestASCIIFallback(t *testing.T) {
	cases := []struct{ in, want string }{
		{"EST-2026", "EST-2026"},
		{"御見積書", "####"},
		{"合計 1,000円", "## 1,000#"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := asciiFallback(tc.in); got != tc.want {
			t.Errorf("expected '%s', got '%s'", tc.want, got)
		}
	}
}
