package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"testing"

	"go.uber.org/zap"

	"formc/config"
	"formc/form"
	"formc/layout"
)

// testDocument builds an estimate-like document exercising every element
// kind. A4 portrait with the default bands: header down to 320, body down
// to 863, footer below.
func testDocument() *form.Document {
	return &form.Document{
		ID:        "0190d8a3-3c8b-7cc0-b37a-d025d02ab118",
		Name:      "8月見積書",
		Structure: "estimate",
		Page: layout.PageSetup{
			Paper:        layout.PaperA4,
			Orientation:  layout.OrientationPortrait,
			Margin:       40,
			HeaderHeight: 280,
			FooterHeight: 220,
		},
		Elements: []form.Element{
			{
				ID: "title", Kind: form.ElementKindLabel, Region: layout.RegionHeader,
				X: 247, Y: 60, Width: 300, Height: 40,
				Text: "御見積書", Align: form.AlignmentCenter,
			},
			{
				ID: "to_name", Kind: form.ElementKindText, Region: layout.RegionHeader,
				X: 48, Y: 110, Width: 280, Height: 28,
				DataSource: &form.DataSource{Type: form.DataSourceTypeRecord, FieldCode: "customer_name"},
			},
			{
				ID: "logo", Kind: form.ElementKindImage, Region: layout.RegionHeader,
				X: 546, Y: 60, Width: 200, Height: 80,
				DataSource: &form.DataSource{Type: form.DataSourceTypeStatic, Value: "logo.png"},
			},
			{
				ID: "items_table", Kind: form.ElementKindTable, Region: layout.RegionBody,
				X: 48, Y: 340, Width: 698, Height: 360,
				DataSource: &form.DataSource{Type: form.DataSourceTypeSubtable, FieldCode: "line_items"},
				Columns: []form.RenderColumn{
					{ID: "name", Label: "品名", FieldCode: "item_name", Kind: form.ValueKindText, Width: 279},
					{ID: "amount", Label: "金額", FieldCode: "amount", Kind: form.ValueKindCurrency, Width: 419, Align: form.AlignmentRight},
				},
				Summary: &form.SummarySpec{Mode: form.SummaryModeLastPage, FieldCode: "amount", Label: "合計"},
			},
			{
				ID: "note", Kind: form.ElementKindText, Region: layout.RegionBody,
				X: 48, Y: 740, Width: 200, Height: 30,
				Hidden:     true,
				DataSource: &form.DataSource{Type: form.DataSourceTypeStatic, Value: "社内用"},
			},
			{
				ID: "doc_qr", Kind: form.ElementKindBarcode, Region: layout.RegionFooter,
				X: 646, Y: 920, Width: 100, Height: 100,
				DataSource: &form.DataSource{Type: form.DataSourceTypeRecord, FieldCode: "doc_number"},
			},
		},
	}
}

// labelDocument builds a label sheet: no header or footer, one card grid
// filling the printable area.
func labelDocument() *form.Document {
	return &form.Document{
		ID:        "0190d8a3-3c8b-7cc0-b37a-d025d02ab119",
		Name:      "宛名ラベル",
		Structure: "labelSheet",
		Page: layout.PageSetup{
			Paper:       layout.PaperA4,
			Orientation: layout.OrientationPortrait,
			Margin:      40,
		},
		Elements: []form.Element{
			{
				ID: "cards", Kind: form.ElementKindCardList, Region: layout.RegionBody,
				X: 50, Y: 62, Width: 694, Height: 958,
				DataSource: &form.DataSource{Type: form.DataSourceTypeSubtable, FieldCode: "recipients"},
				Grid:       &form.CardGrid{Rows: 7, Cols: 2, CardWidth: 337, CardHeight: 124, GapX: 20, GapY: 15},
			},
		},
	}
}

func solidPNG(t *testing.T, w, h int, c color.NRGBA) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("failed to encode test PNG: %v", err)
	}
	return buf.Bytes()
}

func TestRender_Formats(t *testing.T) {
	doc := testDocument()

	svgOut, err := Render(doc, Options{Format: config.PreviewFormatSvg})
	if err != nil {
		t.Fatalf("failed to render SVG: %v", err)
	}
	if !bytes.HasPrefix(svgOut, []byte("<?xml")) {
		t.Error("expected SVG output to start with an XML declaration")
	}
	if !bytes.Contains(svgOut, []byte("<svg")) {
		t.Error("expected an svg root element")
	}

	pngOut, err := Render(doc, Options{Format: config.PreviewFormatPng})
	if err != nil {
		t.Fatalf("failed to render PNG: %v", err)
	}
	if !bytes.HasPrefix(pngOut, []byte("\x89PNG\r\n\x1a\n")) {
		t.Error("expected PNG output to start with the PNG signature")
	}
}

func TestRender_DefaultsToSVG(t *testing.T) {
	out, err := Render(testDocument(), Options{})
	if err != nil {
		t.Fatalf("failed to render: %v", err)
	}
	if !bytes.Contains(out, []byte("<svg")) {
		t.Error("expected SVG output for the zero format")
	}
}

func TestRender_Errors(t *testing.T) {
	if _, err := Render(nil, Options{}); err == nil {
		t.Error("expected error for nil document")
	}
	if _, err := Render(testDocument(), Options{Format: config.PreviewFormat("pdf")}); err == nil {
		t.Error("expected error for unsupported format")
	}
}

func TestSourceText(t *testing.T) {
	cases := []struct {
		name string
		el   form.Element
		want string
	}{
		{"literal text", form.Element{Text: "請求書"}, "請求書"},
		{"static value", form.Element{DataSource: &form.DataSource{Type: form.DataSourceTypeStatic, Value: "hello"}}, "hello"},
		{"record placeholder", form.Element{DataSource: &form.DataSource{Type: form.DataSourceTypeRecord, FieldCode: "customer_name"}}, "{customer_name}"},
		{"subtable placeholder", form.Element{DataSource: &form.DataSource{Type: form.DataSourceTypeSubtable, FieldCode: "line_items"}}, "{line_items}"},
		{"text wins over source", form.Element{Text: "title", DataSource: &form.DataSource{Type: form.DataSourceTypeStatic, Value: "other"}}, "title"},
		{"no source", form.Element{}, ""},
		{"record without code", form.Element{DataSource: &form.DataSource{Type: form.DataSourceTypeRecord}}, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sourceText(&tc.el); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestResolveAsset(t *testing.T) {
	log := zap.NewNop()
	logoEl := &form.Element{
		ID: "logo", Kind: form.ElementKindImage,
		DataSource: &form.DataSource{Type: form.DataSourceTypeStatic, Value: "logo.png"},
	}

	t.Run("loads and sniffs", func(t *testing.T) {
		logo := solidPNG(t, 4, 4, color.NRGBA{R: 0xff, A: 0xff})
		loader := func(ref string) ([]byte, error) {
			if ref != "logo.png" {
				return nil, fmt.Errorf("unexpected ref %s", ref)
			}
			return logo, nil
		}
		data, ext, ok := resolveAsset(logoEl, loader, log)
		if !ok {
			t.Fatal("expected asset to resolve")
		}
		if ext != "png" {
			t.Errorf("expected png, got '%s'", ext)
		}
		if !bytes.Equal(data, logo) {
			t.Error("expected the loaded bytes back")
		}
	})

	t.Run("skips remote refs", func(t *testing.T) {
		remote := &form.Element{
			ID:         "logo",
			DataSource: &form.DataSource{Type: form.DataSourceTypeStatic, Value: "https://example.com/logo.png"},
		}
		called := false
		loader := func(string) ([]byte, error) { called = true; return nil, nil }
		if _, _, ok := resolveAsset(remote, loader, log); ok {
			t.Error("expected remote ref to stay unresolved")
		}
		if called {
			t.Error("expected loader to never run for a remote ref")
		}
	})

	t.Run("record bound image", func(t *testing.T) {
		bound := &form.Element{
			ID:         "logo",
			DataSource: &form.DataSource{Type: form.DataSourceTypeRecord, FieldCode: "company_logo"},
		}
		loader := func(string) ([]byte, error) { return solidPNG(t, 1, 1, color.NRGBA{A: 0xff}), nil }
		if _, _, ok := resolveAsset(bound, loader, log); ok {
			t.Error("expected record bound image to stay unresolved")
		}
	})

	t.Run("no loader", func(t *testing.T) {
		if _, _, ok := resolveAsset(logoEl, nil, log); ok {
			t.Error("expected no resolution without a loader")
		}
	})

	t.Run("loader failure", func(t *testing.T) {
		loader := func(string) ([]byte, error) { return nil, fmt.Errorf("no such file") }
		if _, _, ok := resolveAsset(logoEl, loader, log); ok {
			t.Error("expected loader failure to stay unresolved")
		}
	})

	t.Run("unsupported data", func(t *testing.T) {
		loader := func(string) ([]byte, error) { return []byte("just some text"), nil }
		if _, _, ok := resolveAsset(logoEl, loader, log); ok {
			t.Error("expected non-image data to stay unresolved")
		}
	})
}
