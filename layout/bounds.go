package layout

// Default page parameters for business documents, px at 96 dpi.
const (
	DefaultMargin       = 40
	DefaultHeaderHeight = 280
	DefaultFooterHeight = 220
)

// PageSetup describes the printed page a document is laid out on. Heights of
// zero are legal and collapse the corresponding band (a label sheet has no
// header or footer, its body covers the whole printable area).
type PageSetup struct {
	Paper        Paper       `json:"paper" yaml:"paper"`
	Orientation  Orientation `json:"orientation" yaml:"orientation"`
	Margin       int         `json:"margin" yaml:"margin"`
	HeaderHeight int         `json:"headerHeight" yaml:"header_height"`
	FooterHeight int         `json:"footerHeight" yaml:"footer_height"`
}

// WithDefaults replaces invalid enum values with defaults. Numeric fields are
// left alone - zero is meaningful there.
func (p PageSetup) WithDefaults() PageSetup {
	if !p.Paper.IsValid() {
		p.Paper = PaperA4
	}
	if !p.Orientation.IsValid() {
		p.Orientation = OrientationPortrait
	}
	return p
}

// BandOverride carries per-document adjustments of the boundaries between
// regions, as absolute y coordinates on the page. A zero field means "not
// overridden".
type BandOverride struct {
	HeaderBottom int `json:"headerBottom,omitempty" yaml:"header_bottom"`
	FooterTop    int `json:"footerTop,omitempty" yaml:"footer_top"`
}

// Band is a horizontal slice of the page: Top <= y < Bottom belongs to it.
// Anchors sitting exactly on Bottom are treated as inside so that clamping
// is stable for degenerate zero-height bands.
type Band struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
}

func (b Band) Height() int {
	return b.Bottom - b.Top
}

// Contains reports whether anchor y lies within the band.
func (b Band) Contains(y int) bool {
	return y >= b.Top && y <= b.Bottom
}

// ClampY forces anchor y into the band.
func (b Band) ClampY(y int) int {
	if y < b.Top {
		return b.Top
	}
	if y > b.Bottom {
		return b.Bottom
	}
	return y
}

// Bounds is the resolved geometry of a page: overall size plus the three
// region bands. Bands are contiguous and ordered top-down, they never
// overlap.
type Bounds struct {
	PageWidth  int  `json:"pageWidth"`
	PageHeight int  `json:"pageHeight"`
	Header     Band `json:"header"`
	Body       Band `json:"body"`
	Footer     Band `json:"footer"`
}

// Band returns the band for a region. Unknown regions map to the body - the
// safest place to keep an element visible.
func (b Bounds) Band(r Region) Band {
	switch r {
	case RegionHeader:
		return b.Header
	case RegionFooter:
		return b.Footer
	default:
		return b.Body
	}
}

// Printable returns the band between the page margins.
func (b Bounds) Printable() Band {
	return Band{Top: b.Header.Top, Bottom: b.Footer.Bottom}
}

// PageSize returns page dimensions in px at 96 dpi. B5 is JIS B5, the size
// actually used for business paperwork in Japan.
func PageSize(p Paper, o Orientation) (w, h int) {
	switch p {
	case PaperA5:
		w, h = 559, 794
	case PaperB5:
		w, h = 688, 971
	case PaperLetter:
		w, h = 816, 1056
	default:
		w, h = 794, 1123
	}
	if o == OrientationLandscape {
		w, h = h, w
	}
	return w, h
}

// Resolve computes region bands for a page. It is total: any input produces
// ordered, non-overlapping bands within the page. Overrides are clamped into
// the printable area and dropped altogether when they would reorder the
// bands.
func Resolve(page PageSetup, ov *BandOverride) Bounds {
	page = page.WithDefaults()
	w, h := PageSize(page.Paper, page.Orientation)

	m := page.Margin
	if m < 0 {
		m = 0
	}
	if 2*m >= h {
		m = 0
	}
	top, bottom := m, h-m

	hh := clampInt(page.HeaderHeight, 0, bottom-top)
	fh := clampInt(page.FooterHeight, 0, bottom-top-hh)
	headerBottom := top + hh
	footerTop := bottom - fh

	if ov != nil {
		hb, ft := headerBottom, footerTop
		if ov.HeaderBottom > 0 {
			hb = clampInt(ov.HeaderBottom, top, bottom)
		}
		if ov.FooterTop > 0 {
			ft = clampInt(ov.FooterTop, top, bottom)
		}
		if hb <= ft {
			headerBottom, footerTop = hb, ft
		}
	}

	return Bounds{
		PageWidth:  w,
		PageHeight: h,
		Header:     Band{Top: top, Bottom: headerBottom},
		Body:       Band{Top: headerBottom, Bottom: footerTop},
		Footer:     Band{Top: footerTop, Bottom: bottom},
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
