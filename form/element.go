package form

import "formc/layout"

// DataSource is the resolved, render-ready form of a FieldRef. Static
// sources carry the literal value, record sources a field code, subtable
// sources the code of the subtable feeding a table element.
type DataSource struct {
	Type      DataSourceType `json:"type"`
	Value     string         `json:"value,omitempty"`
	FieldCode string         `json:"fieldCode,omitempty"`
}

// Element is one positioned node of the render tree. A single struct covers
// every kind, with kind-specific fields left empty elsewhere - the wire
// format stays flat and renderers switch on Kind. Geometry is integer px at
// 96 dpi, top-left origin; X/Y anchor the top-left corner of the element.
type Element struct {
	ID                string         `json:"id"`
	SlotID            string         `json:"slotId,omitempty"`
	Kind              ElementKind    `json:"kind"`
	Region            layout.Region  `json:"region,omitempty"`
	X                 int            `json:"x"`
	Y                 int            `json:"y"`
	Width             int            `json:"width,omitempty"`
	Height            int            `json:"height,omitempty"`
	Hidden            bool           `json:"hidden,omitempty"`
	RepeatOnEveryPage bool           `json:"repeatOnEveryPage,omitempty"`
	Text              string         `json:"text,omitempty"`
	Align             Alignment      `json:"align,omitempty"`
	DataSource        *DataSource    `json:"dataSource,omitempty"`
	Columns           []RenderColumn `json:"columns,omitempty"`
	Summary           *SummarySpec   `json:"summary,omitempty"`
	Grid              *CardGrid      `json:"grid,omitempty"`
}

// RenderColumn is a resolved table column: absolute pixel width, the member
// field code to pull from each subtable row (empty when the column value
// never resolved) and presentation hints.
type RenderColumn struct {
	ID        string    `json:"id"`
	Label     string    `json:"label"`
	FieldCode string    `json:"fieldCode,omitempty"`
	Kind      ValueKind `json:"kind,omitempty"`
	Width     int       `json:"width"`
	Align     Alignment `json:"align,omitempty"`
	Format    string    `json:"format,omitempty"`
}

// SummarySpec tells the renderer which column to aggregate and where to
// place the aggregation rows.
type SummarySpec struct {
	Mode      SummaryMode `json:"mode"`
	FieldCode string      `json:"fieldCode"`
	Label     string      `json:"label,omitempty"`
}

// CardGrid lays a cardList element out as a fixed grid of cards, one card
// per source row, filling left to right then top to bottom.
type CardGrid struct {
	Rows       int `json:"rows"`
	Cols       int `json:"cols"`
	CardWidth  int `json:"cardWidth"`
	CardHeight int `json:"cardHeight"`
	GapX       int `json:"gapX,omitempty"`
	GapY       int `json:"gapY,omitempty"`
}

// Clone returns a deep copy of the element.
func (e *Element) Clone() Element {
	out := *e
	if e.DataSource != nil {
		ds := *e.DataSource
		out.DataSource = &ds
	}
	if e.Columns != nil {
		out.Columns = make([]RenderColumn, len(e.Columns))
		copy(out.Columns, e.Columns)
	}
	if e.Summary != nil {
		s := *e.Summary
		out.Summary = &s
	}
	if e.Grid != nil {
		g := *e.Grid
		out.Grid = &g
	}
	return out
}

// CloneElements deep-copies a tree slice.
func CloneElements(els []Element) []Element {
	if els == nil {
		return nil
	}
	out := make([]Element, len(els))
	for i := range els {
		out[i] = els[i].Clone()
	}
	return out
}
