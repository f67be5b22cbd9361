package preview

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"strconv"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"formc/form"
	"formc/layout"
)

// Wireframe metrics in page pixels.
const (
	textInset         = 6  // text inset from the box edge
	tableHeaderHeight = 28 // header strip of a table box
	summaryHeight     = 24 // aggregation strip at the bottom of a table box
	barcodeInset      = 4  // barcode inset from the box edge
)

var imageMIME = map[string]string{
	"png":  "image/png",
	"jpg":  "image/jpeg",
	"gif":  "image/gif",
	"bmp":  "image/bmp",
	"tif":  "image/tiff",
	"webp": "image/webp",
	"svg":  "image/svg+xml",
}

// renderSVG builds the wireframe as an SVG document. All coordinates stay
// in page pixels; the scale only stretches the svg width and height
// attributes so the output zooms without re-layout.
func renderSVG(doc *form.Document, theme *Theme, opts *Options, log *zap.Logger) ([]byte, error) {
	b := doc.Bounds()

	out := etree.NewDocument()
	out.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := out.CreateElement("svg")
	root.CreateAttr("xmlns", "http://www.w3.org/2000/svg")
	root.CreateAttr("width", formatScaled(b.PageWidth, opts.Scale))
	root.CreateAttr("height", formatScaled(b.PageHeight, opts.Scale))
	root.CreateAttr("viewBox", fmt.Sprintf("0 0 %d %d", b.PageWidth, b.PageHeight))
	root.CreateAttr("font-family", "sans-serif")

	r := &svgRender{bounds: b, theme: theme, opts: opts, log: log}
	r.page(root)
	r.regions(root)
	for i := range doc.Elements {
		r.element(root, &doc.Elements[i])
	}

	var buf bytes.Buffer
	if _, err := out.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("unable to serialize SVG: %w", err)
	}
	return buf.Bytes(), nil
}

type svgRender struct {
	bounds layout.Bounds
	theme  *Theme
	opts   *Options
	log    *zap.Logger
}

// page draws the sheet background and the printable area frame.
func (r *svgRender) page(parent *etree.Element) {
	b := r.bounds
	svgRect(parent, 0, 0, b.PageWidth, b.PageHeight, r.theme.Fill("page"), "none")
	m := b.Header.Top
	svgRect(parent, m, m, b.PageWidth-2*m, b.Footer.Bottom-m, "none", r.theme.Stroke("page"))
}

func (r *svgRender) regions(parent *etree.Element) {
	m := r.bounds.Header.Top
	w := r.bounds.PageWidth - 2*m
	for _, reg := range []layout.Region{layout.RegionHeader, layout.RegionBody, layout.RegionFooter} {
		band := r.bounds.Band(reg)
		if band.Height() <= 0 {
			continue
		}
		name := reg.String()
		svgRect(parent, m, band.Top, w, band.Height(), r.theme.Fill(name), r.theme.Stroke(name))
	}
}

func (r *svgRender) element(parent *etree.Element, el *form.Element) {
	g := parent.CreateElement("g")
	g.CreateAttr("id", "el-"+el.ID)
	g.CreateAttr("data-kind", el.Kind.String())
	if el.Hidden {
		g.CreateAttr("opacity", formatFloat(r.theme.Opacity(el.Kind.String(), "hidden")))
	}

	switch el.Kind {
	case form.ElementKindText, form.ElementKindLabel:
		r.textBox(g, el)
	case form.ElementKindImage:
		r.imageBox(g, el)
	case form.ElementKindBarcode:
		r.barcodeBox(g, el)
	case form.ElementKindTable:
		r.tableBox(g, el)
	case form.ElementKindCardList:
		r.cardListBox(g, el)
	default:
		svgRect(g, el.X, el.Y, el.Width, el.Height, "none", r.theme.Stroke(el.Kind.String()))
	}
}

func (r *svgRender) textBox(g *etree.Element, el *form.Element) {
	kind := el.Kind.String()
	svgRect(g, el.X, el.Y, el.Width, el.Height, r.theme.Fill(kind), r.theme.Stroke(kind))

	s := sourceText(el)
	if s == "" {
		return
	}
	size := r.theme.FontSize(kind)
	x, anchor := anchorFor(el)
	y := el.Y + (el.Height+int(size))/2 - 2
	svgText(g, x, y, size, r.theme.Color(kind), anchor, s)
}

// anchorFor picks the text x position and anchor for the element's
// alignment.
func anchorFor(el *form.Element) (int, string) {
	switch el.Align {
	case form.AlignmentCenter:
		return el.X + el.Width/2, "middle"
	case form.AlignmentRight:
		return el.X + el.Width - textInset, "end"
	default:
		return el.X + textInset, "start"
	}
}

func (r *svgRender) imageBox(g *etree.Element, el *form.Element) {
	stroke := r.theme.Stroke("image")
	svgRect(g, el.X, el.Y, el.Width, el.Height, "none", stroke)

	data, ext, ok := resolveAsset(el, r.opts.Assets, r.log)
	if !ok {
		crossBox(g, el, stroke)
		return
	}
	img := g.CreateElement("image")
	img.CreateAttr("x", strconv.Itoa(el.X))
	img.CreateAttr("y", strconv.Itoa(el.Y))
	img.CreateAttr("width", strconv.Itoa(el.Width))
	img.CreateAttr("height", strconv.Itoa(el.Height))
	img.CreateAttr("preserveAspectRatio", "xMidYMid meet")
	img.CreateAttr("href", "data:"+imageMIME[ext]+";base64,"+base64.StdEncoding.EncodeToString(data))
}

func (r *svgRender) barcodeBox(g *etree.Element, el *form.Element) {
	stroke := r.theme.Stroke("barcode")
	svgRect(g, el.X, el.Y, el.Width, el.Height, "none", stroke)

	code, err := qrImage(sourceText(el), el.Width-2*barcodeInset, el.Height-2*barcodeInset)
	if err != nil {
		r.log.Debug("Barcode placeholder", zap.String("id", el.ID), zap.Error(err))
		crossBox(g, el, stroke)
		return
	}
	href, err := pngDataURI(code)
	if err != nil {
		r.log.Warn("Unable to embed barcode", zap.String("id", el.ID), zap.Error(err))
		crossBox(g, el, stroke)
		return
	}
	side := code.Bounds().Dx()
	img := g.CreateElement("image")
	img.CreateAttr("x", strconv.Itoa(el.X+(el.Width-side)/2))
	img.CreateAttr("y", strconv.Itoa(el.Y+(el.Height-side)/2))
	img.CreateAttr("width", strconv.Itoa(side))
	img.CreateAttr("height", strconv.Itoa(side))
	img.CreateAttr("href", href)
}

func (r *svgRender) tableBox(g *etree.Element, el *form.Element) {
	stroke := r.theme.Stroke("table")
	svgRect(g, el.X, el.Y, el.Width, el.Height, r.theme.Fill("table"), stroke)

	hdr := min(tableHeaderHeight, el.Height)
	if len(el.Columns) > 0 && hdr > 0 {
		svgLine(g, el.X, el.Y+hdr, el.X+el.Width, el.Y+hdr, stroke)
	}

	size := r.theme.FontSize("table")
	fill := r.theme.Color("table")
	x := el.X
	for i, col := range el.Columns {
		if i > 0 {
			svgLine(g, x, el.Y, x, el.Y+el.Height, stroke)
		}
		if col.Label != "" && hdr > 0 {
			svgText(g, x+col.Width/2, el.Y+(hdr+int(size))/2-2, size, fill, "middle", col.Label)
		}
		x += col.Width
	}

	if el.Summary != nil && el.Summary.Mode != form.SummaryModeNone && el.Height > hdr+summaryHeight {
		top := el.Y + el.Height - summaryHeight
		svgLine(g, el.X, top, el.X+el.Width, top, stroke)
		label := el.Summary.Label
		if label == "" {
			label = "{" + el.Summary.FieldCode + "}"
		}
		svgText(g, el.X+el.Width-textInset, top+(summaryHeight+int(size))/2-2, size, fill, "end", label)
	}
}

func (r *svgRender) cardListBox(g *etree.Element, el *form.Element) {
	stroke := r.theme.Stroke("cardList")
	svgRect(g, el.X, el.Y, el.Width, el.Height, r.theme.Fill("cardList"), stroke)
	if el.Grid == nil {
		return
	}
	for row := 0; row < el.Grid.Rows; row++ {
		for col := 0; col < el.Grid.Cols; col++ {
			x := el.X + col*(el.Grid.CardWidth+el.Grid.GapX)
			y := el.Y + row*(el.Grid.CardHeight+el.Grid.GapY)
			svgRect(g, x, y, el.Grid.CardWidth, el.Grid.CardHeight, "none", stroke)
		}
	}
}

// crossBox marks an element whose content is not available: its diagonals
// drawn corner to corner.
func crossBox(g *etree.Element, el *form.Element, stroke string) {
	svgLine(g, el.X, el.Y, el.X+el.Width, el.Y+el.Height, stroke)
	svgLine(g, el.X, el.Y+el.Height, el.X+el.Width, el.Y, stroke)
}

func svgRect(parent *etree.Element, x, y, w, h int, fill, stroke string) *etree.Element {
	el := parent.CreateElement("rect")
	el.CreateAttr("x", strconv.Itoa(x))
	el.CreateAttr("y", strconv.Itoa(y))
	el.CreateAttr("width", strconv.Itoa(w))
	el.CreateAttr("height", strconv.Itoa(h))
	// rects without an explicit fill would render black
	el.CreateAttr("fill", fill)
	if stroke != "" && stroke != "none" {
		el.CreateAttr("stroke", stroke)
	}
	return el
}

func svgLine(parent *etree.Element, x1, y1, x2, y2 int, stroke string) {
	el := parent.CreateElement("line")
	el.CreateAttr("x1", strconv.Itoa(x1))
	el.CreateAttr("y1", strconv.Itoa(y1))
	el.CreateAttr("x2", strconv.Itoa(x2))
	el.CreateAttr("y2", strconv.Itoa(y2))
	el.CreateAttr("stroke", stroke)
}

func svgText(parent *etree.Element, x, y int, size float64, fill, anchor, s string) {
	el := parent.CreateElement("text")
	el.CreateAttr("x", strconv.Itoa(x))
	el.CreateAttr("y", strconv.Itoa(y))
	el.CreateAttr("font-size", formatFloat(size))
	el.CreateAttr("fill", fill)
	if anchor != "start" {
		el.CreateAttr("text-anchor", anchor)
	}
	el.SetText(s)
}

func pngDataURI(img image.Image) (string, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", fmt.Errorf("unable to encode barcode PNG: %w", err)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatScaled(v int, scale float64) string {
	return strconv.FormatFloat(float64(v)*scale, 'f', -1, 64)
}
