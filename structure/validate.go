package structure

import (
	"fmt"

	"formc/form"
)

// validate reports every problem that would keep the mapping from
// compiling into a complete document. One issue per slot, the most telling
// one: a disallowed binding kind beats "not bound". References whose kind
// the schema never heard of are treated as unbound - the same way the
// synthesizer absorbs them.
func validate(s *Schema, m *form.Mapping) form.ValidationResult {
	res := form.ValidationResult{OK: true, Errors: []form.ValidationIssue{}}
	if m == nil {
		m = &form.Mapping{}
	}

	for i := range s.Regions {
		switch s.Regions[i].Kind {
		case RegionDefSlots:
			validateSlots(s.Regions[i].Slots, m, &res)
		case RegionDefTable:
			validateTable(s.Regions[i].Table, m, &res)
		}
	}
	return res
}

func validateSlots(reg *SlotsRegionDef, m *form.Mapping, res *form.ValidationResult) {
	for i := range reg.Slots {
		slot := &reg.Slots[i]
		path := string(reg.Region) + "." + slot.ID

		ref, ok := m.Slot(reg.Region, slot.ID)
		if !ok || !ref.Bound() {
			if slot.Required {
				res.Add(path, "required slot is not bound")
			}
			continue
		}
		if !slot.Accepts(ref.Kind) {
			res.Add(path, "slot does not accept %s bindings", ref.Kind)
		}
	}
}

func validateTable(t *TableRegionDef, m *form.Mapping, res *form.ValidationResult) {
	src := m.Table.Source
	switch {
	case !src.Bound():
		if t.SourceRequired {
			res.Add("table.source", "line item source is not bound")
		}
	case src.Kind != form.RefKindSubtable:
		res.Add("table.source", "line item source must be a subtable, not %s", src.Kind)
	}

	cols := m.Table.Columns
	if len(cols) < t.MinCols {
		res.Add("table.columns", "table needs at least %d column(s), mapping has %d", t.MinCols, len(cols))
	}
	if len(cols) > t.MaxCols {
		res.Add("table.columns", "table allows at most %d columns, mapping has %d", t.MaxCols, len(cols))
	}

	for i := range cols {
		path := fmt.Sprintf("table.columns[%d].value", i)
		val := cols[i].Value
		switch {
		case !val.Bound():
			res.Add(path, "column is not bound")
		case val.Kind != form.RefKindSubtableField:
			res.Add(path, "column must be bound to a subtable field, not %s", val.Kind)
		}
	}
}
