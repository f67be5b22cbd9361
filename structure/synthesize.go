package structure

import (
	"go.uber.org/zap"

	"formc/form"
	"formc/layout"
)

// synthesize reconciles the element tree with the mapping, region by region
// in schema order. The rules, in the order they matter:
//
//   - an existing element is matched by slot id first, element id second;
//     matched elements keep their geometry except that a y anchor outside
//     the region band is clamped back in
//   - missing elements are created at the schema fallback position
//   - unbound slots keep their element but lose the data source; the
//     element hides unless it carries manual text worth showing
//   - companion captions exist only while their slot shows something,
//     plain captions are upserted unconditionally and never removed
//   - the table is rebuilt only when it has a source and columns, and then
//     exactly one element of its kind survives; without a source or
//     columns everything table-shaped is left completely untouched
//   - elements the schema knows nothing about pass through unchanged
//
// Running it twice is the same as running it once.
func synthesize(s *Schema, doc *form.Document, log *zap.Logger) []form.Element {
	if log == nil {
		log = zap.NewNop()
	}
	bounds := layout.Resolve(doc.Page, doc.Bands)
	m := &doc.Mapping

	st := &synthState{
		existing: form.CloneElements(doc.Elements),
		bySlot:   make(map[string]int),
		byID:     make(map[string]int),
		drop:     make(map[int]bool),
		visible:  make(map[string]bool),
		log:      log,
	}
	st.consumed = make([]bool, len(st.existing))
	for i := range st.existing {
		if sid := st.existing[i].SlotID; sid != "" {
			if _, dup := st.bySlot[sid]; !dup {
				st.bySlot[sid] = i
			}
		}
		if id := st.existing[i].ID; id != "" {
			if _, dup := st.byID[id]; !dup {
				st.byID[id] = i
			}
		}
	}

	for i := range s.Regions {
		switch s.Regions[i].Kind {
		case RegionDefSlots:
			st.slotsRegion(s.Regions[i].Slots, m, bounds)
		case RegionDefTable:
			st.tableRegion(s.Regions[i].Table, m, bounds)
		}
	}

	out := make([]form.Element, 0, len(st.existing)+len(st.created))
	for i := range st.existing {
		if !st.drop[i] {
			out = append(out, st.existing[i])
		}
	}
	out = append(out, st.created...)
	return out
}

type synthState struct {
	existing []form.Element
	created  []form.Element
	bySlot   map[string]int
	byID     map[string]int
	consumed []bool
	drop     map[int]bool
	visible  map[string]bool // slot id -> element currently shows something
	log      *zap.Logger
}

// claim finds the element for a schema node, by slot id then by element id,
// consuming it so no other node can take it.
func (st *synthState) claim(slotID, id string) (int, bool) {
	if slotID != "" {
		if i, ok := st.bySlot[slotID]; ok && !st.consumed[i] {
			st.consumed[i] = true
			return i, true
		}
	}
	if id != "" {
		if i, ok := st.byID[id]; ok && !st.consumed[i] {
			st.consumed[i] = true
			return i, true
		}
	}
	return 0, false
}

func (st *synthState) slotsRegion(reg *SlotsRegionDef, m *form.Mapping, bounds layout.Bounds) {
	band := bounds.Band(reg.Region)

	for i := range reg.Slots {
		slot := &reg.Slots[i]
		ref, _ := m.Slot(reg.Region, slot.ID)
		bound := ref.Bound() && slot.Accepts(ref.Kind)

		if idx, ok := st.claim(slot.ID, slot.ID); ok {
			el := &st.existing[idx]
			el.SlotID = slot.ID
			el.Kind = elementKindFor(slot.Kind)
			el.Region = reg.Region
			el.Y = band.ClampY(el.Y)
			if el.Align == "" {
				el.Align = slot.Align
			}
			st.applyBinding(el, ref, bound)
		} else {
			el := form.Element{
				ID:     slot.ID,
				SlotID: slot.ID,
				Kind:   elementKindFor(slot.Kind),
				Region: reg.Region,
				X:      slot.Fallback.X,
				Y:      band.ClampY(slot.Fallback.Y),
				Width:  slot.Fallback.Width,
				Height: slot.Fallback.Height,
				Align:  slot.Align,
			}
			st.applyBinding(&el, ref, bound)
			st.created = append(st.created, el)
		}
	}

	for i := range reg.Labels {
		st.label(&reg.Labels[i], reg.Region, band)
	}
}

// applyBinding updates an element's data source from its slot binding and
// records whether the slot ends up showing anything - companions need to
// know.
func (st *synthState) applyBinding(el *form.Element, ref form.FieldRef, bound bool) {
	if bound {
		el.DataSource = ref.Resolve()
		el.Hidden = false
	} else {
		el.DataSource = nil
		el.Hidden = el.Text == ""
	}
	st.visible[el.SlotID] = !el.Hidden
}

func (st *synthState) label(def *LabelDef, region layout.Region, band layout.Band) {
	show := true
	if def.CompanionOf != "" {
		show = st.visible[def.CompanionOf]
	}

	idx, found := st.claim("", def.ID)
	if !show {
		if found {
			st.drop[idx] = true
		}
		return
	}

	if found {
		el := &st.existing[idx]
		el.SlotID = ""
		el.Kind = form.ElementKindLabel
		el.Region = region
		el.Y = band.ClampY(el.Y)
		el.Text = def.Text
		el.Hidden = false
		el.DataSource = nil
		if el.Align == "" {
			el.Align = def.Align
		}
		return
	}
	st.created = append(st.created, form.Element{
		ID:     def.ID,
		Kind:   form.ElementKindLabel,
		Region: region,
		X:      def.Fallback.X,
		Y:      band.ClampY(def.Fallback.Y),
		Width:  def.Fallback.Width,
		Height: def.Fallback.Height,
		Text:   def.Text,
		Align:  def.Align,
	})
}

func (st *synthState) tableRegion(tdef *TableRegionDef, m *form.Mapping, bounds layout.Bounds) {
	src := m.Table.Source
	if !src.BoundAs(form.RefKindSubtable) || len(m.Table.Columns) == 0 {
		// No source or nothing to show: whatever table exists stays exactly
		// as it is. Destroying it here would throw away geometry the user
		// may want back the moment the binding returns.
		return
	}
	band := bounds.Band(tdef.Region)

	idx, found := st.claim("", tdef.ElementID)
	if !found {
		idx, found = st.adoptByKind(tdef.Presents)
	}

	var el form.Element
	if found {
		el = st.existing[idx]
	} else {
		el = form.Element{
			ID:     tdef.ElementID,
			X:      tdef.Fallback.X,
			Y:      tdef.Fallback.Y,
			Width:  tdef.Fallback.Width,
			Height: tdef.Fallback.Height,
		}
	}

	el.SlotID = ""
	el.Kind = tdef.Presents
	el.Region = tdef.Region
	el.Y = band.ClampY(el.Y)
	el.Hidden = false
	el.Text = ""
	if el.Width <= 0 {
		el.Width = tdef.Fallback.Width
	}
	el.DataSource = &form.DataSource{Type: form.DataSourceTypeSubtable, FieldCode: src.SubtableCode}
	el.Columns = resolveColumns(tdef, m.Table.Columns, el.Width)
	el.Summary = st.summarize(tdef, m.Table.Summary, el.Columns)
	el.RepeatOnEveryPage = m.Table.HeaderOnEveryPage
	if tdef.Grid != nil {
		g := *tdef.Grid
		el.Grid = &g
	} else {
		el.Grid = nil
	}

	if found {
		st.existing[idx] = el
	} else {
		st.created = append(st.created, el)
	}

	// Exactly one element of this kind may exist now.
	for i := range st.existing {
		if (found && i == idx) || st.drop[i] {
			continue
		}
		if st.existing[i].Kind == tdef.Presents {
			st.drop[i] = true
			st.log.Debug("Dropping duplicate table element", zap.String("id", st.existing[i].ID), zap.String("kind", string(tdef.Presents)))
		}
	}
}

// adoptByKind picks up a stray table element whose id does not match the
// canonical one - typically produced by an older schema revision - so its
// geometry survives.
func (st *synthState) adoptByKind(kind form.ElementKind) (int, bool) {
	for i := range st.existing {
		if st.existing[i].Kind == kind && !st.consumed[i] && !st.drop[i] {
			st.consumed[i] = true
			return i, true
		}
	}
	return 0, false
}

// resolveColumns turns mapping columns into render columns with exact pixel
// widths. A column whose value is not a subtable field resolves with an
// empty field code - validation has flagged it, here it just renders blank.
func resolveColumns(tdef *TableRegionDef, cols []form.TableColumn, totalWidth int) []form.RenderColumn {
	pcts := layout.NormalizeWidthPct(widthPcts(cols))
	px := layout.PixelWidths(pcts, totalWidth)

	out := make([]form.RenderColumn, len(cols))
	for i := range cols {
		col := &cols[i]
		rc := form.RenderColumn{
			ID:     col.ID,
			Label:  col.Label,
			Kind:   form.ValueKindText,
			Width:  px[i],
			Align:  col.Align,
			Format: col.Format,
		}
		if col.Value.BoundAs(form.RefKindSubtableField) {
			rc.FieldCode = col.Value.FieldCode
		}
		if bc := tdef.BaseColumn(col.ID); bc != nil {
			rc.Kind = bc.Kind
			if rc.Align == "" {
				rc.Align = bc.Align
			}
			if rc.Format == "" {
				rc.Format = bc.Format
			}
		}
		out[i] = rc
	}
	return out
}

func widthPcts(cols []form.TableColumn) []int {
	out := make([]int, len(cols))
	for i := range cols {
		out[i] = cols[i].WidthPct
	}
	return out
}

// summarize designates the aggregation column: conventional column id
// first, conventional field code second. Several candidates in the winning
// tier is a mapping smell - warn and take the first in column order, the
// result must stay deterministic. No candidate, no summary.
func (st *synthState) summarize(tdef *TableRegionDef, mode form.SummaryMode, cols []form.RenderColumn) *form.SummarySpec {
	if !mode.IsValid() || mode == form.SummaryModeNone || tdef.SummaryColumn == "" {
		return nil
	}

	var matches []int
	for i := range cols {
		if cols[i].ID == tdef.SummaryColumn && cols[i].FieldCode != "" {
			matches = append(matches, i)
		}
	}
	if len(matches) == 0 {
		for i := range cols {
			if cols[i].FieldCode == tdef.SummaryColumn {
				matches = append(matches, i)
			}
		}
	}
	if len(matches) == 0 {
		st.log.Debug("No aggregation column for summary", zap.String("column", tdef.SummaryColumn))
		return nil
	}
	if len(matches) > 1 {
		st.log.Warn("Ambiguous aggregation column, using first match",
			zap.String("column", tdef.SummaryColumn),
			zap.Int("matches", len(matches)))
	}
	return &form.SummarySpec{
		Mode:      mode,
		FieldCode: cols[matches[0]].FieldCode,
		Label:     tdef.SummaryLabel,
	}
}

func elementKindFor(v form.ValueKind) form.ElementKind {
	switch v {
	case form.ValueKindImage:
		return form.ElementKindImage
	case form.ValueKindBarcode:
		return form.ElementKindBarcode
	default:
		return form.ElementKindText
	}
}
