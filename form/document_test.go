package form

import (
	"bytes"
	"encoding/json"
	"reflect"
	"testing"

	"formc/layout"
)

func sampleDocument(t *testing.T) *Document {
	t.Helper()
	id, err := NewDocumentID()
	if err != nil {
		t.Fatalf("NewDocumentID() error = %v", err)
	}
	return &Document{
		ID:        id,
		Name:      "8月見積書",
		Structure: "estimate",
		Page: layout.PageSetup{
			Paper:        layout.PaperA4,
			Orientation:  layout.OrientationPortrait,
			Margin:       40,
			HeaderHeight: 280,
			FooterHeight: 220,
		},
		Bands: &layout.BandOverride{HeaderBottom: 300},
		Elements: []Element{
			{
				ID: "to_name", SlotID: "to_name", Kind: ElementKindText, Region: layout.RegionHeader,
				X: 48, Y: 110, Width: 280, Height: 28,
				DataSource: &DataSource{Type: DataSourceTypeRecord, FieldCode: "customer_name"},
			},
			{
				ID: "items_table", Kind: ElementKindTable, Region: layout.RegionBody,
				X: 48, Y: 340, Width: 698, Height: 500,
				RepeatOnEveryPage: true,
				DataSource:        &DataSource{Type: DataSourceTypeSubtable, FieldCode: "line_items"},
				Columns: []RenderColumn{
					{ID: "name", Label: "品名", FieldCode: "item_name", Kind: ValueKindText, Width: 279},
					{ID: "amount", Label: "金額", FieldCode: "amount", Kind: ValueKindCurrency, Width: 419, Align: AlignmentRight},
				},
				Summary: &SummarySpec{Mode: SummaryModeLastPage, FieldCode: "amount", Label: "合計"},
			},
			{
				ID: "label_cards", Kind: ElementKindCardList, Region: layout.RegionBody,
				X: 40, Y: 60, Width: 694, Height: 958, Hidden: true,
				Grid: &CardGrid{Rows: 7, Cols: 2, CardWidth: 337, CardHeight: 124, GapX: 20, GapY: 15},
			},
		},
		Mapping: Mapping{
			Header: map[string]FieldRef{
				"to_name": RecordFieldRef("customer_name"),
			},
			Footer: map[string]FieldRef{
				"total": RecordFieldRef("total_amount"),
			},
			Table: TableMapping{
				Source: SubtableRef("line_items"),
				Columns: []TableColumn{
					{ID: "name", Label: "品名", Value: SubtableFieldRef("line_items", "item_name"), WidthPct: 40},
					{ID: "amount", Label: "金額", Value: SubtableFieldRef("line_items", "amount"), WidthPct: 60, Align: AlignmentRight},
				},
				Summary:           SummaryModeLastPage,
				HeaderOnEveryPage: true,
			},
		},
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	doc := sampleDocument(t)
	for _, pretty := range []bool{true, false} {
		data, err := Encode(doc, pretty)
		if err != nil {
			t.Fatalf("Encode(pretty=%v) error = %v", pretty, err)
		}
		if !bytes.HasSuffix(data, []byte("\n")) {
			t.Errorf("Encode(pretty=%v) output does not end with a newline", pretty)
		}
		back, err := Decode(data)
		if err != nil {
			t.Fatalf("Decode(pretty=%v) error = %v", pretty, err)
		}
		if !reflect.DeepEqual(back, doc) {
			t.Errorf("round trip (pretty=%v) changed the document:\ngot  %+v\nwant %+v", pretty, back, doc)
		}
	}
}

// Wire names are the contract with every host that stores documents; a
// rename is a silent data loss for them.
func TestDocumentWireNames(t *testing.T) {
	data, err := Encode(sampleDocument(t), false)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	for _, key := range []string{"id", "name", "structureType", "pageSetup", "regionBands", "elements", "mapping"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("wire document lacks key %q", key)
		}
	}

	var mapping struct {
		Table map[string]json.RawMessage `json:"table"`
	}
	if err := json.Unmarshal(raw["mapping"], &mapping); err != nil {
		t.Fatalf("Unmarshal(mapping) error = %v", err)
	}
	for _, key := range []string{"source", "columns", "summaryMode", "headerOnEveryPage"} {
		if _, ok := mapping.Table[key]; !ok {
			t.Errorf("wire table mapping lacks key %q", key)
		}
	}
}

// Column order is user intent; serialization must not sort it.
func TestDocumentColumnOrderSurvives(t *testing.T) {
	doc := sampleDocument(t)
	doc.Mapping.Table.Columns[0], doc.Mapping.Table.Columns[1] = doc.Mapping.Table.Columns[1], doc.Mapping.Table.Columns[0]

	data, err := Encode(doc, true)
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}
	back, err := Decode(data)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if back.Mapping.Table.Columns[0].ID != "amount" || back.Mapping.Table.Columns[1].ID != "name" {
		t.Errorf("column order changed: %s, %s", back.Mapping.Table.Columns[0].ID, back.Mapping.Table.Columns[1].ID)
	}
}

func TestDecodeRejectsMalformedJSON(t *testing.T) {
	if _, err := Decode([]byte(`{"id": `)); err == nil {
		t.Fatal("Decode of truncated JSON succeeded")
	}
	if _, err := Decode([]byte(`[]`)); err == nil {
		t.Fatal("Decode of a JSON array succeeded")
	}
}

func TestValidID(t *testing.T) {
	doc := sampleDocument(t)
	if !doc.ValidID() {
		t.Errorf("fresh id %q reported invalid", doc.ID)
	}
	doc.ID = "not-a-uuid"
	if doc.ValidID() {
		t.Error("garbage id reported valid")
	}
	doc.ID = ""
	if doc.ValidID() {
		t.Error("empty id reported valid")
	}
}

func TestDocumentBounds(t *testing.T) {
	doc := sampleDocument(t)
	bounds := doc.Bounds()
	// The override moves the header boundary from 320 to 300.
	if bounds.Header.Bottom != 300 {
		t.Errorf("Header.Bottom = %d, want the overridden 300", bounds.Header.Bottom)
	}
	doc.Bands = nil
	if got := doc.Bounds().Header.Bottom; got != 320 {
		t.Errorf("Header.Bottom = %d, want the default 320", got)
	}
}

func TestCloneElementsIsDeep(t *testing.T) {
	doc := sampleDocument(t)
	clone := CloneElements(doc.Elements)

	clone[0].X = 999
	clone[0].DataSource.FieldCode = "changed"
	clone[1].Columns[0].Width = 1
	clone[2].Grid.Rows = 99

	if doc.Elements[0].X == 999 || doc.Elements[0].DataSource.FieldCode == "changed" {
		t.Error("clone shares element state with the original")
	}
	if doc.Elements[1].Columns[0].Width == 1 {
		t.Error("clone shares column state with the original")
	}
	if doc.Elements[2].Grid.Rows == 99 {
		t.Error("clone shares grid state with the original")
	}
}
