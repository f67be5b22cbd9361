package preview

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"math"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"formc/form"
	"formc/layout"
	"formc/utils/images"
)

// renderPNG rasterizes the wireframe natively. Geometry scales while
// drawing; text uses the fixed 7x13 bitmap face whose coverage stops at
// ASCII, runes outside it are substituted. The raster preview is a layout
// check, the SVG preview carries real text.
func renderPNG(doc *form.Document, theme *Theme, opts *Options, log *zap.Logger) ([]byte, error) {
	b := doc.Bounds()
	r := &pngRender{
		img:    image.NewRGBA(image.Rect(0, 0, scaleInt(b.PageWidth, opts.Scale), scaleInt(b.PageHeight, opts.Scale))),
		scale:  opts.Scale,
		bounds: b,
		theme:  theme,
		opts:   opts,
		log:    log,
	}
	r.page()
	r.regions()
	for i := range doc.Elements {
		r.element(&doc.Elements[i])
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, r.img); err != nil {
		return nil, fmt.Errorf("unable to encode preview PNG: %w", err)
	}
	return buf.Bytes(), nil
}

type pngRender struct {
	img    *image.RGBA
	scale  float64
	bounds layout.Bounds
	theme  *Theme
	opts   *Options
	log    *zap.Logger
}

func scaleInt(v int, scale float64) int {
	return int(math.Round(float64(v) * scale))
}

func (r *pngRender) px(v int) int {
	return scaleInt(v, r.scale)
}

// box converts a page-space rectangle into raster space. Edges are scaled
// independently so adjacent boxes stay adjacent after rounding.
func (r *pngRender) box(x, y, w, h int) image.Rectangle {
	return image.Rect(r.px(x), r.px(y), r.px(x+w), r.px(y+h))
}

// paint parses a theme paint and applies the hidden tint of the element.
func (r *pngRender) paint(s string, el *form.Element) (color.NRGBA, bool) {
	c, ok := ParseColor(s)
	if !ok {
		return c, false
	}
	if el != nil && el.Hidden {
		c = withOpacity(c, r.theme.Opacity(el.Kind.String(), "hidden"))
	}
	return c, true
}

func (r *pngRender) page() {
	// an unpainted page still renders on white
	bg, ok := ParseColor(r.theme.Fill("page"))
	if !ok {
		bg = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	m := r.bounds.Header.Top
	if c, ok := ParseColor(r.theme.Stroke("page")); ok {
		r.stroke(r.box(m, m, r.bounds.PageWidth-2*m, r.bounds.Footer.Bottom-m), c)
	}
}

func (r *pngRender) regions() {
	m := r.bounds.Header.Top
	w := r.bounds.PageWidth - 2*m
	for _, reg := range []layout.Region{layout.RegionHeader, layout.RegionBody, layout.RegionFooter} {
		band := r.bounds.Band(reg)
		if band.Height() <= 0 {
			continue
		}
		name := reg.String()
		rc := r.box(m, band.Top, w, band.Height())
		if c, ok := ParseColor(r.theme.Fill(name)); ok {
			r.fill(rc, c)
		}
		if c, ok := ParseColor(r.theme.Stroke(name)); ok {
			r.stroke(rc, c)
		}
	}
}

func (r *pngRender) element(el *form.Element) {
	switch el.Kind {
	case form.ElementKindText, form.ElementKindLabel:
		r.textBox(el)
	case form.ElementKindImage:
		r.imageBox(el)
	case form.ElementKindBarcode:
		r.barcodeBox(el)
	case form.ElementKindTable:
		r.tableBox(el)
	case form.ElementKindCardList:
		r.cardListBox(el)
	default:
		if c, ok := r.paint(r.theme.Stroke(el.Kind.String()), el); ok {
			r.stroke(r.box(el.X, el.Y, el.Width, el.Height), c)
		}
	}
}

func (r *pngRender) textBox(el *form.Element) {
	kind := el.Kind.String()
	rc := r.box(el.X, el.Y, el.Width, el.Height)
	if c, ok := r.paint(r.theme.Fill(kind), el); ok {
		r.fill(rc, c)
	}
	if c, ok := r.paint(r.theme.Stroke(kind), el); ok {
		r.stroke(rc, c)
	}

	s := sourceText(el)
	if s == "" {
		return
	}
	if c, ok := r.paint(r.theme.Color(kind), el); ok {
		baseline := rc.Min.Y + (rc.Dy()+basicfont.Face7x13.Ascent)/2 - 1
		r.drawText(rc.Min.X, baseline, rc.Dx(), el.Align, c, s)
	}
}

func (r *pngRender) imageBox(el *form.Element) {
	rc := r.box(el.X, el.Y, el.Width, el.Height)
	stroke, hasStroke := r.paint(r.theme.Stroke("image"), el)

	data, _, ok := resolveAsset(el, r.opts.Assets, r.log)
	if ok {
		img, _, err := images.Decode(data)
		if err != nil {
			r.log.Warn("Unable to decode image asset", zap.String("id", el.ID), zap.Error(err))
			ok = false
		} else {
			fitted := images.FitInto(img, rc.Dx()-2, rc.Dy()-2)
			fb := fitted.Bounds()
			at := image.Point{X: rc.Min.X + (rc.Dx()-fb.Dx())/2, Y: rc.Min.Y + (rc.Dy()-fb.Dy())/2}
			draw.Draw(r.img, image.Rectangle{Min: at, Max: at.Add(fb.Size())}, fitted, fb.Min, draw.Over)
		}
	}
	if !ok {
		r.cross(rc, stroke, hasStroke)
	}
	if hasStroke {
		r.stroke(rc, stroke)
	}
}

func (r *pngRender) barcodeBox(el *form.Element) {
	rc := r.box(el.X, el.Y, el.Width, el.Height)
	stroke, hasStroke := r.paint(r.theme.Stroke("barcode"), el)
	if hasStroke {
		r.stroke(rc, stroke)
	}

	code, err := qrImage(sourceText(el), rc.Dx()-2*barcodeInset, rc.Dy()-2*barcodeInset)
	if err != nil {
		r.log.Debug("Barcode placeholder", zap.String("id", el.ID), zap.Error(err))
		r.cross(rc, stroke, hasStroke)
		return
	}
	cb := code.Bounds()
	at := image.Point{X: rc.Min.X + (rc.Dx()-cb.Dx())/2, Y: rc.Min.Y + (rc.Dy()-cb.Dy())/2}
	draw.Draw(r.img, image.Rectangle{Min: at, Max: at.Add(cb.Size())}, code, cb.Min, draw.Over)
}

func (r *pngRender) tableBox(el *form.Element) {
	rc := r.box(el.X, el.Y, el.Width, el.Height)
	if c, ok := r.paint(r.theme.Fill("table"), el); ok {
		r.fill(rc, c)
	}
	stroke, hasStroke := r.paint(r.theme.Stroke("table"), el)
	if hasStroke {
		r.stroke(rc, stroke)
	}

	hdr := min(tableHeaderHeight, el.Height)
	if hasStroke && len(el.Columns) > 0 && hdr > 0 {
		y := r.px(el.Y + hdr)
		r.fill(image.Rect(rc.Min.X, y, rc.Max.X, y+1), stroke)
	}

	textCol, hasText := r.paint(r.theme.Color("table"), el)
	x := el.X
	for i, col := range el.Columns {
		if i > 0 && hasStroke {
			sx := r.px(x)
			r.fill(image.Rect(sx, rc.Min.Y, sx+1, rc.Max.Y), stroke)
		}
		if hasText && col.Label != "" && hdr > 0 {
			baseline := rc.Min.Y + (r.px(hdr)+basicfont.Face7x13.Ascent)/2 - 1
			r.drawText(r.px(x), baseline, r.px(col.Width), form.AlignmentCenter, textCol, col.Label)
		}
		x += col.Width
	}

	if el.Summary != nil && el.Summary.Mode != form.SummaryModeNone && el.Height > hdr+summaryHeight {
		top := el.Y + el.Height - summaryHeight
		if hasStroke {
			y := r.px(top)
			r.fill(image.Rect(rc.Min.X, y, rc.Max.X, y+1), stroke)
		}
		if hasText {
			label := el.Summary.Label
			if label == "" {
				label = "{" + el.Summary.FieldCode + "}"
			}
			baseline := r.px(top) + (r.px(summaryHeight)+basicfont.Face7x13.Ascent)/2 - 1
			r.drawText(rc.Min.X, baseline, rc.Dx(), form.AlignmentRight, textCol, label)
		}
	}
}

func (r *pngRender) cardListBox(el *form.Element) {
	rc := r.box(el.X, el.Y, el.Width, el.Height)
	if c, ok := r.paint(r.theme.Fill("cardList"), el); ok {
		r.fill(rc, c)
	}
	stroke, hasStroke := r.paint(r.theme.Stroke("cardList"), el)
	if hasStroke {
		r.stroke(rc, stroke)
	}
	if el.Grid == nil || !hasStroke {
		return
	}
	for row := 0; row < el.Grid.Rows; row++ {
		for col := 0; col < el.Grid.Cols; col++ {
			x := el.X + col*(el.Grid.CardWidth+el.Grid.GapX)
			y := el.Y + row*(el.Grid.CardHeight+el.Grid.GapY)
			r.stroke(r.box(x, y, el.Grid.CardWidth, el.Grid.CardHeight), stroke)
		}
	}
}

func (r *pngRender) fill(rc image.Rectangle, c color.NRGBA) {
	draw.Draw(r.img, rc, image.NewUniform(c), image.Point{}, draw.Over)
}

// stroke draws a one pixel border just inside the rectangle.
func (r *pngRender) stroke(rc image.Rectangle, c color.NRGBA) {
	if rc.Dx() <= 0 || rc.Dy() <= 0 {
		return
	}
	src := image.NewUniform(c)
	draw.Draw(r.img, image.Rect(rc.Min.X, rc.Min.Y, rc.Max.X, rc.Min.Y+1), src, image.Point{}, draw.Over)
	draw.Draw(r.img, image.Rect(rc.Min.X, rc.Max.Y-1, rc.Max.X, rc.Max.Y), src, image.Point{}, draw.Over)
	draw.Draw(r.img, image.Rect(rc.Min.X, rc.Min.Y, rc.Min.X+1, rc.Max.Y), src, image.Point{}, draw.Over)
	draw.Draw(r.img, image.Rect(rc.Max.X-1, rc.Min.Y, rc.Max.X, rc.Max.Y), src, image.Point{}, draw.Over)
}

// cross marks an element whose content is not available: its diagonals
// drawn corner to corner.
func (r *pngRender) cross(rc image.Rectangle, c color.NRGBA, ok bool) {
	if !ok || rc.Dx() <= 0 || rc.Dy() <= 0 {
		return
	}
	r.diagonal(rc.Min, image.Point{X: rc.Max.X - 1, Y: rc.Max.Y - 1}, c)
	r.diagonal(image.Point{X: rc.Min.X, Y: rc.Max.Y - 1}, image.Point{X: rc.Max.X - 1, Y: rc.Min.Y}, c)
}

// diagonal draws a straight pixel line between two raster points, blending
// each pixel so translucent paints compose with what is already drawn.
func (r *pngRender) diagonal(p1, p2 image.Point, c color.NRGBA) {
	src := image.NewUniform(c)
	dx, dy := abs(p2.X-p1.X), -abs(p2.Y-p1.Y)
	sx, sy := 1, 1
	if p1.X > p2.X {
		sx = -1
	}
	if p1.Y > p2.Y {
		sy = -1
	}
	e := dx + dy
	x, y := p1.X, p1.Y
	for {
		draw.Draw(r.img, image.Rect(x, y, x+1, y+1), src, image.Point{}, draw.Over)
		if x == p2.X && y == p2.Y {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

// drawText renders s with its baseline at y, aligned within a box of
// width boxW starting at x. Coordinates are raster space. Text that would
// not fit is truncated, not wrapped.
func (r *pngRender) drawText(x, y, boxW int, align form.Alignment, c color.NRGBA, s string) {
	s = asciiFallback(s)
	pad := r.px(textInset)
	for len(s) > 1 && font.MeasureString(basicfont.Face7x13, s).Ceil() > boxW-2*pad {
		s = s[:len(s)-1]
	}
	if s == "" {
		return
	}
	w := font.MeasureString(basicfont.Face7x13, s).Ceil()
	switch align {
	case form.AlignmentCenter:
		x += (boxW - w) / 2
	case form.AlignmentRight:
		x += boxW - w - pad
	default:
		x += pad
	}
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// asciiFallback substitutes runes the bitmap face cannot shape so CJK
// labels still occupy their footprint instead of vanishing.
func asciiFallback(s string) string {
	var sb strings.Builder
	for _, c := range s {
		if c >= 0x20 && c < 0x7f {
			sb.WriteRune(c)
		} else {
			sb.WriteByte('#')
		}
	}
	return sb.String()
}

func withOpacity(c color.NRGBA, opacity float64) color.NRGBA {
	if opacity >= 1 {
		return c
	}
	if opacity < 0 {
		opacity = 0
	}
	c.A = uint8(math.Round(float64(c.A) * opacity))
	return c
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
