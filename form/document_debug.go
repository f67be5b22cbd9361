package form

import (
	"fmt"
	"maps"
	"slices"
	"sort"

	"github.com/maruel/natural"

	"formc/layout"
	"formc/utils/debug"
)

// String returns a readable tree of the whole document. It exists solely
// for manual inspection during debugging.
func (d *Document) String() string {
	if d == nil {
		return "<nil Document>"
	}

	tw := debug.NewTreeWriter()

	tw.Line(0, "Document[%s]", d.ID)
	tw.Field(1, "Name", d.Name)
	tw.Field(1, "Structure", d.Structure)
	tw.Line(1, "Page: %s %s margin=%d header=%d footer=%d",
		d.Page.Paper, d.Page.Orientation, d.Page.Margin, d.Page.HeaderHeight, d.Page.FooterHeight)

	b := d.Bounds()
	tw.Line(1, "Bounds: %dx%d header[%d..%d] body[%d..%d] footer[%d..%d]",
		b.PageWidth, b.PageHeight,
		b.Header.Top, b.Header.Bottom, b.Body.Top, b.Body.Bottom, b.Footer.Top, b.Footer.Bottom)
	if d.Bands != nil {
		tw.Line(1, "Region bands overridden")
	}

	tw.Line(0, "Elements: %d", len(d.Elements))
	for _, region := range []layout.Region{layout.RegionHeader, layout.RegionBody, layout.RegionFooter} {
		els := elementsIn(d.Elements, region)
		if len(els) == 0 {
			continue
		}
		tw.Line(1, "Region %s: %d", region, len(els))
		for _, el := range els {
			dumpElement(tw, 2, el)
		}
	}

	tw.Line(0, "Mapping")
	dumpSlots(tw, "header", d.Mapping.Header)
	dumpTable(tw, &d.Mapping.Table)
	dumpSlots(tw, "footer", d.Mapping.Footer)

	tw.Line(0, "Signature: %s", Signature(d.Elements))

	return tw.String()
}

// elementsIn filters one region's elements, naturally sorted by id so
// col_2 sorts before col_10.
func elementsIn(els []Element, region layout.Region) []Element {
	var out []Element
	for i := range els {
		if els[i].Region == region {
			out = append(out, els[i])
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return natural.Less(out[i].ID, out[j].ID)
	})
	return out
}

func dumpElement(tw *debug.TreeWriter, depth int, el Element) {
	tw.Line(depth, "%s[%q] at (%d,%d) %dx%d", el.Kind, el.ID, el.X, el.Y, el.Width, el.Height)
	if el.SlotID != "" && el.SlotID != el.ID {
		tw.Field(depth+1, "slot", el.SlotID)
	}
	if el.Hidden {
		tw.Line(depth+1, "hidden")
	}
	if el.RepeatOnEveryPage {
		tw.Line(depth+1, "repeats on every page")
	}
	if el.Text != "" {
		tw.TextBlock(depth+1, "text", el.Text)
	}
	if el.Align != "" {
		tw.Field(depth+1, "align", string(el.Align))
	}
	if el.DataSource != nil {
		tw.Line(depth+1, "source: %s %q", el.DataSource.Type, dataSourceValue(el.DataSource))
	}
	for i, col := range el.Columns {
		tw.Line(depth+1, "column[%d] %q label=%q field=%q width=%d align=%s",
			i, col.ID, col.Label, col.FieldCode, col.Width, col.Align)
		if col.Format != "" {
			tw.Field(depth+2, "format", col.Format)
		}
	}
	if el.Summary != nil {
		tw.Line(depth+1, "summary: %s of %q", el.Summary.Mode, el.Summary.FieldCode)
	}
	if el.Grid != nil {
		tw.Line(depth+1, "grid: %dx%d cards %dx%d gap (%d,%d)",
			el.Grid.Rows, el.Grid.Cols, el.Grid.CardWidth, el.Grid.CardHeight, el.Grid.GapX, el.Grid.GapY)
	}
}

func dataSourceValue(ds *DataSource) string {
	if ds.FieldCode != "" {
		return ds.FieldCode
	}
	return ds.Value
}

func dumpSlots(tw *debug.TreeWriter, region string, slots map[string]FieldRef) {
	if len(slots) == 0 {
		return
	}
	keys := slices.Collect(maps.Keys(slots))
	sort.Sort(natural.StringSlice(keys))
	for _, k := range keys {
		tw.Line(1, "%s[%q] %s", region, k, refLabel(slots[k]))
	}
}

func dumpTable(tw *debug.TreeWriter, table *TableMapping) {
	if !table.Source.Bound() && len(table.Columns) == 0 {
		return
	}
	tw.Line(1, "table source %s", refLabel(table.Source))
	for i, col := range table.Columns {
		tw.Line(2, "column[%d] %q label=%q width=%d%% %s", i, col.ID, col.Label, col.WidthPct, refLabel(col.Value))
	}
	if table.Summary != "" && table.Summary != SummaryModeNone {
		tw.Line(2, "summary mode %s", table.Summary)
	}
	if table.HeaderOnEveryPage {
		tw.Line(2, "header on every page")
	}
}

func refLabel(ref FieldRef) string {
	if !ref.Bound() {
		return "<unbound>"
	}
	if ref.Kind == RefKindSubtableField && ref.SubtableCode != "" {
		return fmt.Sprintf("%s %s.%s", ref.Kind, ref.SubtableCode, ref.FieldCode)
	}
	return fmt.Sprintf("%s %q", ref.Kind, ref.Payload())
}
