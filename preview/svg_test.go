package preview

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/beevik/etree"

	"formc/config"
	"formc/form"
)

func renderTestSVG(t *testing.T, doc *form.Document, opts Options) (*etree.Document, []byte) {
	t.Helper()
	opts.Format = config.PreviewFormatSvg
	out, err := Render(doc, opts)
	if err != nil {
		t.Fatalf("failed to render SVG: %v", err)
	}
	parsed := etree.NewDocument()
	if err := parsed.ReadFromBytes(out); err != nil {
		t.Fatalf("failed to parse SVG output: %v", err)
	}
	return parsed, out
}

func TestRenderSVG_PageGeometry(t *testing.T) {
	doc, _ := renderTestSVG(t, testDocument(), Options{})
	root := doc.Root()
	if root.Tag != "svg" {
		t.Fatalf("expected svg root, got '%s'", root.Tag)
	}
	if got := root.SelectAttrValue("width", ""); got != "794" {
		t.Errorf("expected width 794, got '%s'", got)
	}
	if got := root.SelectAttrValue("height", ""); got != "1123" {
		t.Errorf("expected height 1123, got '%s'", got)
	}
	if got := root.SelectAttrValue("viewBox", ""); got != "0 0 794 1123" {
		t.Errorf("expected full page viewBox, got '%s'", got)
	}
	// page background, printable frame and three region bands
	if got := len(root.SelectElements("rect")); got != 5 {
		t.Errorf("expected 5 page level rects, got %d", got)
	}
}

func TestRenderSVG_Scale(t *testing.T) {
	doc, _ := renderTestSVG(t, testDocument(), Options{Scale: 2})
	root := doc.Root()
	if got := root.SelectAttrValue("width", ""); got != "1588" {
		t.Errorf("expected doubled width, got '%s'", got)
	}
	if got := root.SelectAttrValue("height", ""); got != "2246" {
		t.Errorf("expected doubled height, got '%s'", got)
	}
	// coordinates stay in page pixels, only the viewport stretches
	if got := root.SelectAttrValue("viewBox", ""); got != "0 0 794 1123" {
		t.Errorf("expected unscaled viewBox, got '%s'", got)
	}
}

func TestRenderSVG_Elements(t *testing.T) {
	doc, raw := renderTestSVG(t, testDocument(), Options{})

	for _, id := range []string{"el-title", "el-to_name", "el-logo", "el-items_table", "el-note", "el-doc_qr"} {
		if doc.FindElement("//g[@id='"+id+"']") == nil {
			t.Errorf("expected group %s in the output", id)
		}
	}
	if !bytes.Contains(raw, []byte("御見積書")) {
		t.Error("expected the title text in the output")
	}
	if !bytes.Contains(raw, []byte("{customer_name}")) {
		t.Error("expected the record field placeholder in the output")
	}
	if !bytes.Contains(raw, []byte("品名")) {
		t.Error("expected the column label in the output")
	}
}

func TestRenderSVG_Table(t *testing.T) {
	doc, _ := renderTestSVG(t, testDocument(), Options{})
	g := doc.FindElement("//g[@data-kind='table']")
	if g == nil {
		t.Fatal("expected a table group")
	}
	// header separator, one column split, summary separator
	if got := len(g.SelectElements("line")); got != 3 {
		t.Errorf("expected 3 table rules, got %d", got)
	}
	// two column labels and the summary label
	if got := len(g.SelectElements("text")); got != 3 {
		t.Errorf("expected 3 table texts, got %d", got)
	}

	var split *etree.Element
	for _, ln := range g.SelectElements("line") {
		if ln.SelectAttrValue("x1", "") == ln.SelectAttrValue("x2", "a") {
			split = ln
			break
		}
	}
	if split == nil {
		t.Fatal("expected a vertical column split")
	}
	// the split runs at the exact pixel width of the first column
	if got := split.SelectAttrValue("x1", ""); got != "327" {
		t.Errorf("expected column split at 327, got '%s'", got)
	}
}

func TestRenderSVG_Barcode(t *testing.T) {
	doc, _ := renderTestSVG(t, testDocument(), Options{})
	img := doc.FindElement("//g[@data-kind='barcode']/image")
	if img == nil {
		t.Fatal("expected an embedded barcode image")
	}
	if href := img.SelectAttrValue("href", ""); !strings.HasPrefix(href, "data:image/png;base64,") {
		t.Errorf("expected a PNG data URI, got '%.40s'", href)
	}
}

func TestRenderSVG_Logo(t *testing.T) {
	logo := solidPNG(t, 10, 10, color.NRGBA{R: 0xff, A: 0xff})
	loader := func(ref string) ([]byte, error) { return logo, nil }

	doc, _ := renderTestSVG(t, testDocument(), Options{Assets: loader})
	img := doc.FindElement("//g[@data-kind='image']/image")
	if img == nil {
		t.Fatal("expected an embedded logo")
	}
	if href := img.SelectAttrValue("href", ""); !strings.HasPrefix(href, "data:image/png;base64,") {
		t.Errorf("expected a PNG data URI, got '%.40s'", href)
	}
	if got := img.SelectAttrValue("preserveAspectRatio", ""); got != "xMidYMid meet" {
		t.Errorf("expected aspect preserving placement, got '%s'", got)
	}

	// without a loader the logo box is crossed out instead
	doc, _ = renderTestSVG(t, testDocument(), Options{})
	g := doc.FindElement("//g[@data-kind='image']")
	if g == nil {
		t.Fatal("expected the logo group")
	}
	if g.SelectElement("image") != nil {
		t.Error("expected no embedded logo without a loader")
	}
	if got := len(g.SelectElements("line")); got != 2 {
		t.Errorf("expected crossed out box, got %d lines", got)
	}
}

func TestRenderSVG_HiddenOpacity(t *testing.T) {
	doc, _ := renderTestSVG(t, testDocument(), Options{})
	g := doc.FindElement("//g[@id='el-note']")
	if g == nil {
		t.Fatal("expected the hidden element group")
	}
	if got := g.SelectAttrValue("opacity", ""); got != "0.25" {
		t.Errorf("expected hidden opacity 0.25, got '%s'", got)
	}
	if got := doc.FindElement("//g[@id='el-title']").SelectAttrValue("opacity", ""); got != "" {
		t.Errorf("expected no opacity on a visible element, got '%s'", got)
	}
}

func TestRenderSVG_CardGrid(t *testing.T) {
	doc, _ := renderTestSVG(t, labelDocument(), Options{})
	g := doc.FindElement("//g[@data-kind='cardList']")
	if g == nil {
		t.Fatal("expected a card list group")
	}
	// outer box plus 7x2 cards
	if got := len(g.SelectElements("rect")); got != 15 {
		t.Errorf("expected 15 rects, got %d", got)
	}
}

func TestRenderSVG_CustomTheme(t *testing.T) {
	_, raw := renderTestSVG(t, testDocument(), Options{Theme: []byte("page { fill: #123456; }")})
	if !bytes.Contains(raw, []byte(`fill="#123456"`)) {
		t.Error("expected the custom page fill in the output")
	}
}
