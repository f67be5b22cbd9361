package structure

import (
	"formc/form"
	"formc/layout"
)

// Geometry is a fallback placement for an element the synthesizer creates:
// absolute page coordinates, px at 96 dpi. Height zero means the renderer
// decides (tables grow with their rows).
type Geometry struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height,omitempty"`
}

// SlotDef is one placement the structure offers for binding: a named hole in
// a fixed layout. What the user can put there is constrained by Allowed;
// where it first appears comes from Fallback. Labels are the human names the
// mapping editor shows, they are not printed.
type SlotDef struct {
	ID       string         `json:"id"`
	Label    string         `json:"label"`
	Kind     form.ValueKind `json:"kind"`
	Required bool           `json:"required,omitempty"`
	Allowed  []form.RefKind `json:"allowed"`
	Align    form.Alignment `json:"align,omitempty"`
	Fallback Geometry       `json:"fallback"`
}

// Accepts reports whether the slot allows a binding of the given kind.
func (s *SlotDef) Accepts(k form.RefKind) bool {
	for _, a := range s.Allowed {
		if a == k {
			return true
		}
	}
	return false
}

// LabelDef is a fixed printed caption the structure always carries: a
// document title, the caption next to a total. Text is what gets printed.
// A label with CompanionOf set is decoration for a slot - the honorific
// suffix after a recipient name - and only exists while that slot resolves
// to something visible.
type LabelDef struct {
	ID          string         `json:"id"`
	Text        string         `json:"text"`
	CompanionOf string         `json:"companionOf,omitempty"`
	Align       form.Alignment `json:"align,omitempty"`
	Fallback    Geometry       `json:"fallback"`
}

// SlotsRegionDef is a region populated with individual slots and captions.
type SlotsRegionDef struct {
	Region layout.Region `json:"region"`
	Slots  []SlotDef     `json:"slots"`
	Labels []LabelDef    `json:"labels,omitempty"`
}

// BaseColumn is a starter column the structure seeds new mappings with and
// the source of presentation defaults (kind, alignment) for user columns
// that keep the conventional ids.
type BaseColumn struct {
	ID       string         `json:"id"`
	Label    string         `json:"label"`
	Kind     form.ValueKind `json:"kind"`
	WidthPct int            `json:"widthPct"`
	Align    form.Alignment `json:"align,omitempty"`
	Format   string         `json:"format,omitempty"`
}

// TableRegionDef is a region occupied by the line item table (or the card
// grid on a label sheet). The synthesizer maintains exactly one element of
// the Presents kind, identified by ElementID.
type TableRegionDef struct {
	Region              layout.Region    `json:"region"`
	ElementID           string           `json:"elementId"`
	Presents            form.ElementKind `json:"presents"`
	SourceRequired      bool             `json:"sourceRequired,omitempty"`
	MinCols             int              `json:"minCols"`
	MaxCols             int              `json:"maxCols"`
	BaseColumns         []BaseColumn     `json:"baseColumns"`
	Fallback            Geometry         `json:"fallback"`
	Grid                *form.CardGrid   `json:"grid,omitempty"`
	RepeatHeaderDefault bool             `json:"repeatHeaderDefault,omitempty"`
	SummaryColumn       string           `json:"summaryColumn,omitempty"`
	SummaryLabel        string           `json:"summaryLabel,omitempty"`
}

// BaseColumn looks a base column up by conventional id.
func (t *TableRegionDef) BaseColumn(id string) *BaseColumn {
	for i := range t.BaseColumns {
		if t.BaseColumns[i].ID == id {
			return &t.BaseColumns[i]
		}
	}
	return nil
}

// Kind of a region definition.
type RegionDefKind string

const (
	RegionDefSlots RegionDefKind = "slots"
	RegionDefTable RegionDefKind = "table"
)

// RegionDef stores a single region definition, keeping the schema ordering.
type RegionDef struct {
	Kind  RegionDefKind   `json:"kind"`
	Slots *SlotsRegionDef `json:"slots,omitempty"`
	Table *TableRegionDef `json:"table,omitempty"`
}

// Schema is the complete declarative description of one structure type.
type Schema struct {
	Kind    Kind             `json:"kind"`
	Title   string           `json:"title"`
	Page    layout.PageSetup `json:"pageSetup"`
	Regions []RegionDef      `json:"regions"`
}

// Table returns the table region definition, nil when the structure has
// none. Structures carry at most one.
func (s *Schema) Table() *TableRegionDef {
	for i := range s.Regions {
		if s.Regions[i].Kind == RegionDefTable {
			return s.Regions[i].Table
		}
	}
	return nil
}

// FindSlot locates a slot definition by id across all regions.
func (s *Schema) FindSlot(id string) (*SlotDef, layout.Region, bool) {
	for i := range s.Regions {
		if s.Regions[i].Kind != RegionDefSlots {
			continue
		}
		reg := s.Regions[i].Slots
		for j := range reg.Slots {
			if reg.Slots[j].ID == id {
				return &reg.Slots[j], reg.Region, true
			}
		}
	}
	return nil, "", false
}

// DefaultMapping builds the mapping a document starts with when it is first
// given this structure: nothing bound, the table pre-seeded with the base
// columns so the editor has something to show.
func (s *Schema) DefaultMapping() form.Mapping {
	m := form.Mapping{
		Header: make(map[string]form.FieldRef),
		Footer: make(map[string]form.FieldRef),
		Table:  form.TableMapping{Summary: form.SummaryModeNone},
	}
	if t := s.Table(); t != nil {
		m.Table.Columns = make([]form.TableColumn, 0, len(t.BaseColumns))
		for _, bc := range t.BaseColumns {
			m.Table.Columns = append(m.Table.Columns, form.TableColumn{
				ID:       bc.ID,
				Label:    bc.Label,
				WidthPct: bc.WidthPct,
				Align:    bc.Align,
				Format:   bc.Format,
			})
		}
		m.Table.HeaderOnEveryPage = t.RepeatHeaderDefault
	}
	return m
}
