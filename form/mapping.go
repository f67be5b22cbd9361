package form

import "formc/layout"

// Mapping is what the user edits: slot bindings keyed by slot id for the
// header and footer regions plus the table configuration for the body. Slots
// absent from the maps are unbound. The mapping never stores geometry - that
// lives on elements - so wiping and re-synthesizing a tree from the same
// mapping is always possible.
type Mapping struct {
	Header map[string]FieldRef `json:"header"`
	Table  TableMapping        `json:"table"`
	Footer map[string]FieldRef `json:"footer"`
}

// TableMapping binds the line-item table: the source subtable, the ordered
// column list and aggregation settings. Column order is user intent and
// round-trips exactly.
type TableMapping struct {
	Source            FieldRef      `json:"source"`
	Columns           []TableColumn `json:"columns"`
	Summary           SummaryMode   `json:"summaryMode,omitempty"`
	HeaderOnEveryPage bool          `json:"headerOnEveryPage,omitempty"`
}

// TableColumn is one user-configured column. WidthPct is an integer
// percentage; across a table the normalized values sum to exactly 100 with
// every column at 1 or more.
type TableColumn struct {
	ID       string    `json:"id"`
	Label    string    `json:"label"`
	Value    FieldRef  `json:"value"`
	WidthPct int       `json:"widthPct"`
	Align    Alignment `json:"align,omitempty"`
	Format   string    `json:"format,omitempty"`
}

// Slot returns the binding for a slot id in the given region. The body
// region has no slots, only the table.
func (m *Mapping) Slot(region layout.Region, id string) (FieldRef, bool) {
	var refs map[string]FieldRef
	switch region {
	case layout.RegionHeader:
		refs = m.Header
	case layout.RegionFooter:
		refs = m.Footer
	default:
		return FieldRef{}, false
	}
	ref, ok := refs[id]
	return ref, ok
}

// WidthPcts extracts the column width percentages in column order.
func (t *TableMapping) WidthPcts() []int {
	if len(t.Columns) == 0 {
		return nil
	}
	out := make([]int, len(t.Columns))
	for i := range t.Columns {
		out[i] = t.Columns[i].WidthPct
	}
	return out
}

// Clone returns a deep copy of the mapping.
func (m *Mapping) Clone() Mapping {
	out := Mapping{Table: m.Table}
	if m.Header != nil {
		out.Header = make(map[string]FieldRef, len(m.Header))
		for k, v := range m.Header {
			out.Header[k] = v
		}
	}
	if m.Footer != nil {
		out.Footer = make(map[string]FieldRef, len(m.Footer))
		for k, v := range m.Footer {
			out.Footer[k] = v
		}
	}
	if m.Table.Columns != nil {
		out.Table.Columns = make([]TableColumn, len(m.Table.Columns))
		copy(out.Table.Columns, m.Table.Columns)
	}
	return out
}
