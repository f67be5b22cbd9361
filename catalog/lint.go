package catalog

import (
	"fmt"

	"formc/form"
	"formc/structure"
)

// Lint checks every catalog reference the mapping makes: record field
// codes, the table source subtable and per column member field codes must
// exist. Structural problems (unbound required slots, disallowed kinds) are
// the schema validator's business; lint only answers "does this field
// exist". Paths follow the validator so a host UI can merge both reports.
func Lint(cat *Catalog, s *structure.Schema, m *form.Mapping) form.ValidationResult {
	res := form.ValidationResult{OK: true, Errors: []form.ValidationIssue{}}
	if cat == nil || s == nil || m == nil {
		return res
	}

	for i := range s.Regions {
		switch s.Regions[i].Kind {
		case structure.RegionDefSlots:
			lintSlots(cat, s.Regions[i].Slots, m, &res)
		case structure.RegionDefTable:
			lintTable(cat, m, &res)
		}
	}
	return res
}

func lintSlots(cat *Catalog, reg *structure.SlotsRegionDef, m *form.Mapping, res *form.ValidationResult) {
	for i := range reg.Slots {
		slot := &reg.Slots[i]

		ref, ok := m.Slot(reg.Region, slot.ID)
		if !ok || !ref.BoundAs(form.RefKindRecordField) {
			continue
		}
		if !cat.HasRecordField(ref.FieldCode) {
			res.Add(string(reg.Region)+"."+slot.ID, "record field %q is not in the catalog", ref.FieldCode)
		}
	}
}

func lintTable(cat *Catalog, m *form.Mapping, res *form.ValidationResult) {
	src := m.Table.Source
	if src.BoundAs(form.RefKindSubtable) && !cat.HasSubtable(src.SubtableCode) {
		// columns would all fail the same way, one issue tells the story
		res.Add("table.source", "subtable %q is not in the catalog", src.SubtableCode)
		return
	}

	for i := range m.Table.Columns {
		val := m.Table.Columns[i].Value
		if !val.BoundAs(form.RefKindSubtableField) {
			continue
		}
		sub := val.SubtableCode
		if sub == "" && src.BoundAs(form.RefKindSubtable) {
			sub = src.SubtableCode
		}
		if !cat.HasSubtableField(sub, val.FieldCode) {
			if sub != "" {
				res.Add(fmt.Sprintf("table.columns[%d].value", i), "field %q is not in subtable %q", val.FieldCode, sub)
			} else {
				res.Add(fmt.Sprintf("table.columns[%d].value", i), "field %q is not in any subtable", val.FieldCode)
			}
		}
	}
}
