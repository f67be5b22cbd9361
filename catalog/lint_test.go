package catalog

import (
	"strings"
	"testing"

	"formc/form"
	"formc/structure"
)

func estimateSchema(t *testing.T) *structure.Schema {
	t.Helper()
	a, err := structure.ForKind(structure.KindEstimate)
	if err != nil {
		t.Fatalf("ForKind(estimate) error = %v", err)
	}
	return a.Schema()
}

func boundMapping() *form.Mapping {
	return &form.Mapping{
		Header: map[string]form.FieldRef{
			"to_name": form.RecordFieldRef("customer_name"),
			"subject": form.StaticTextRef("御見積書の件"),
			"logo":    form.ImageURLRef("https://example.jp/logo.png"),
		},
		Footer: map[string]form.FieldRef{
			"total": form.RecordFieldRef("total_amount"),
		},
		Table: form.TableMapping{
			Source: form.SubtableRef("line_items"),
			Columns: []form.TableColumn{
				{ID: "name", Label: "品名", Value: form.SubtableFieldRef("line_items", "item_name"), WidthPct: 40},
				{ID: "qty", Label: "数量", Value: form.SubtableFieldRef("line_items", "quantity"), WidthPct: 15},
				{ID: "amount", Label: "金額", Value: form.SubtableFieldRef("line_items", "amount"), WidthPct: 45},
			},
		},
	}
}

func requireLintIssue(t *testing.T, res form.ValidationResult, path, fragment string) {
	t.Helper()
	if res.OK {
		t.Fatal("lint reported OK, want an issue")
	}
	if len(res.Errors) != 1 {
		t.Fatalf("lint reported %d issues, want 1: %v", len(res.Errors), res.Errors)
	}
	if res.Errors[0].Path != path {
		t.Errorf("issue path = %q, want %q", res.Errors[0].Path, path)
	}
	if !strings.Contains(res.Errors[0].Message, fragment) {
		t.Errorf("issue message = %q, want mention of %q", res.Errors[0].Message, fragment)
	}
}

func TestLintClean(t *testing.T) {
	cat := Build(sampleEntries())
	res := Lint(cat, estimateSchema(t), boundMapping())

	if !res.OK {
		t.Errorf("lint reported issues for a fully known mapping: %v", res.Errors)
	}
	if res.Errors == nil {
		t.Error("Errors should be empty, not nil")
	}
}

func TestLintUnknownRecordField(t *testing.T) {
	cat := Build(sampleEntries())
	m := boundMapping()
	m.Header["to_name"] = form.RecordFieldRef("client_name")

	res := Lint(cat, estimateSchema(t), m)
	requireLintIssue(t, res, "header.to_name", `"client_name"`)
}

func TestLintUnknownSubtable(t *testing.T) {
	cat := Build(sampleEntries())
	m := boundMapping()
	m.Table.Source = form.SubtableRef("items")
	for i := range m.Table.Columns {
		m.Table.Columns[i].Value = form.SubtableFieldRef("items", m.Table.Columns[i].Value.FieldCode)
	}

	// one issue for the source, columns are not piled on top
	res := Lint(cat, estimateSchema(t), m)
	requireLintIssue(t, res, "table.source", `"items"`)
}

func TestLintUnknownSubtableField(t *testing.T) {
	cat := Build(sampleEntries())
	m := boundMapping()
	m.Table.Columns[1].Value = form.SubtableFieldRef("line_items", "tax")

	res := Lint(cat, estimateSchema(t), m)
	requireLintIssue(t, res, "table.columns[1].value", `"tax"`)
}

func TestLintColumnInheritsSourceSubtable(t *testing.T) {
	cat := Build(sampleEntries())
	m := boundMapping()

	// column ref without its own subtable code rides on the table source
	m.Table.Columns[2].Value = form.FieldRef{Kind: form.RefKindSubtableField, FieldCode: "amount"}
	if res := Lint(cat, estimateSchema(t), m); !res.OK {
		t.Errorf("lint reported issues for inherited subtable lookup: %v", res.Errors)
	}

	m.Table.Columns[2].Value = form.FieldRef{Kind: form.RefKindSubtableField, FieldCode: "tax"}
	res := Lint(cat, estimateSchema(t), m)
	requireLintIssue(t, res, "table.columns[2].value", "line_items")
}

func TestLintColumnWithoutAnySubtable(t *testing.T) {
	cat := Build(sampleEntries())
	m := boundMapping()
	m.Table.Source = form.FieldRef{}
	m.Table.Columns = m.Table.Columns[:1]
	m.Table.Columns[0].Value = form.FieldRef{Kind: form.RefKindSubtableField, FieldCode: "serial"}

	res := Lint(cat, estimateSchema(t), m)
	requireLintIssue(t, res, "table.columns[0].value", "any subtable")
}

func TestLintIgnoresUnboundAndNonFieldRefs(t *testing.T) {
	cat := Build(sampleEntries())

	// a default mapping binds nothing, there is nothing to look up
	schema := estimateSchema(t)
	m := schema.DefaultMapping()
	if res := Lint(cat, schema, &m); !res.OK {
		t.Errorf("lint reported issues for an unbound mapping: %v", res.Errors)
	}

	// static text and image urls never reference the catalog
	bound := boundMapping()
	bound.Header["subject"] = form.StaticTextRef("nonexistent_field")
	bound.Header["logo"] = form.ImageURLRef("file:logo.svg")
	if res := Lint(cat, schema, bound); !res.OK {
		t.Errorf("lint reported issues for static bindings: %v", res.Errors)
	}
}

func TestLintNilArguments(t *testing.T) {
	schema := estimateSchema(t)
	m := boundMapping()

	if res := Lint(nil, schema, m); !res.OK {
		t.Error("nil catalog should lint clean")
	}
	if res := Lint(Build(sampleEntries()), schema, nil); !res.OK {
		t.Error("nil mapping should lint clean")
	}
}
