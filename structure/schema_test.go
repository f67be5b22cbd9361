package structure

import (
	"testing"

	"formc/layout"
)

// Every fallback placement the synthesizer could ever use has to sit inside
// the band of its region and the printable width of its page - otherwise
// fresh elements would be born needing the very clamping that exists for
// user mistakes.
func TestSchemaFallbacksWithinBands(t *testing.T) {
	for _, name := range KindNames() {
		adapter, err := ForName(name)
		if err != nil {
			t.Fatalf("ForName(%q) error = %v", name, err)
		}
		s := adapter.Schema()
		bounds := layout.Resolve(s.Page, nil)

		checkGeometry := func(t *testing.T, what string, region layout.Region, g Geometry) {
			t.Helper()
			band := bounds.Band(region)
			if g.Y < band.Top || g.Y+g.Height > band.Bottom {
				t.Errorf("%s: fallback y range [%d, %d] outside %s band [%d, %d]", what, g.Y, g.Y+g.Height, region, band.Top, band.Bottom)
			}
			if g.X < s.Page.Margin || g.X+g.Width > bounds.PageWidth-s.Page.Margin {
				t.Errorf("%s: fallback x range [%d, %d] outside printable width", what, g.X, g.X+g.Width)
			}
		}

		t.Run(name, func(t *testing.T) {
			for _, reg := range s.Regions {
				switch reg.Kind {
				case RegionDefSlots:
					for _, slot := range reg.Slots.Slots {
						checkGeometry(t, "slot "+slot.ID, reg.Slots.Region, slot.Fallback)
					}
					for _, label := range reg.Slots.Labels {
						checkGeometry(t, "label "+label.ID, reg.Slots.Region, label.Fallback)
					}
				case RegionDefTable:
					checkGeometry(t, "table "+reg.Table.ElementID, reg.Table.Region, reg.Table.Fallback)
				}
			}
		})
	}
}

func TestSchemaElementIDsUnique(t *testing.T) {
	for _, name := range KindNames() {
		adapter, _ := ForName(name)
		s := adapter.Schema()
		seen := make(map[string]string)
		note := func(t *testing.T, id, what string) {
			t.Helper()
			if prev, dup := seen[id]; dup {
				t.Errorf("id %q used by both %s and %s", id, prev, what)
			}
			seen[id] = what
		}
		t.Run(name, func(t *testing.T) {
			for _, reg := range s.Regions {
				switch reg.Kind {
				case RegionDefSlots:
					for _, slot := range reg.Slots.Slots {
						note(t, slot.ID, "slot")
					}
					for _, label := range reg.Slots.Labels {
						note(t, label.ID, "label")
					}
				case RegionDefTable:
					note(t, reg.Table.ElementID, "table element")
				}
			}
		})
	}
}

func TestSchemaBaseColumnsNormalized(t *testing.T) {
	for _, name := range KindNames() {
		adapter, _ := ForName(name)
		tdef := adapter.Schema().Table()
		if tdef == nil {
			t.Errorf("%s: no table region", name)
			continue
		}
		sum := 0
		for _, bc := range tdef.BaseColumns {
			if bc.WidthPct < 1 {
				t.Errorf("%s: base column %s width = %d, want >= 1", name, bc.ID, bc.WidthPct)
			}
			sum += bc.WidthPct
		}
		if sum != 100 {
			t.Errorf("%s: base column widths sum to %d, want 100", name, sum)
		}
		if n := len(tdef.BaseColumns); n < tdef.MinCols || n > tdef.MaxCols {
			t.Errorf("%s: %d base columns outside [%d, %d]", name, n, tdef.MinCols, tdef.MaxCols)
		}
	}
}

func TestSchemaCompanionsExist(t *testing.T) {
	for _, name := range KindNames() {
		adapter, _ := ForName(name)
		s := adapter.Schema()
		for _, reg := range s.Regions {
			if reg.Kind != RegionDefSlots {
				continue
			}
			for _, label := range reg.Slots.Labels {
				if label.CompanionOf == "" {
					continue
				}
				if _, _, ok := s.FindSlot(label.CompanionOf); !ok {
					t.Errorf("%s: label %s is companion of unknown slot %q", name, label.ID, label.CompanionOf)
				}
			}
		}
	}
}

func TestDefaultMappingSeedsBaseColumns(t *testing.T) {
	adapter, _ := ForKind(KindEstimate)
	m := adapter.DefaultMapping()

	if len(m.Header) != 0 || len(m.Footer) != 0 {
		t.Errorf("default mapping has bindings: header %d, footer %d", len(m.Header), len(m.Footer))
	}
	if m.Table.Source.Bound() {
		t.Error("default mapping has a table source")
	}
	tdef := adapter.Schema().Table()
	if len(m.Table.Columns) != len(tdef.BaseColumns) {
		t.Fatalf("default mapping columns = %d, want %d", len(m.Table.Columns), len(tdef.BaseColumns))
	}
	for i, col := range m.Table.Columns {
		bc := tdef.BaseColumns[i]
		if col.ID != bc.ID || col.Label != bc.Label || col.WidthPct != bc.WidthPct {
			t.Errorf("column %d = {%s %s %d}, want {%s %s %d}", i, col.ID, col.Label, col.WidthPct, bc.ID, bc.Label, bc.WidthPct)
		}
		if col.Value.Bound() {
			t.Errorf("column %d seeded with a binding", i)
		}
	}
	if !m.Table.HeaderOnEveryPage {
		t.Error("estimate default mapping should repeat the table header")
	}
}
