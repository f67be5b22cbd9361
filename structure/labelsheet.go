package structure

import (
	"formc/form"
	"formc/layout"
)

// Address label sheet, A4 portrait, 2x7 cards. No header or footer - the
// body band covers the whole printable area and holds a single card grid
// fed by an address subtable. Each mapped column becomes one line on every
// card, with an optional customer barcode.
func labelSheetSchema() *Schema {
	return &Schema{
		Kind:  KindLabelSheet,
		Title: "Label sheet",
		Page: layout.PageSetup{
			Paper:       layout.PaperA4,
			Orientation: layout.OrientationPortrait,
			Margin:      layout.DefaultMargin,
		},
		Regions: []RegionDef{
			{Kind: RegionDefTable, Table: &TableRegionDef{
				Region:         layout.RegionBody,
				ElementID:      "label_cards",
				Presents:       form.ElementKindCardList,
				SourceRequired: true,
				MinCols:        1,
				MaxCols:        5,
				BaseColumns: []BaseColumn{
					{ID: "postal_code", Label: "〒", Kind: form.ValueKindText, WidthPct: 20},
					{ID: "address", Label: "住所", Kind: form.ValueKindMultiline, WidthPct: 40},
					{ID: "name", Label: "氏名", Kind: form.ValueKindText, WidthPct: 25},
					{ID: "code", Label: "顧客コード", Kind: form.ValueKindBarcode, WidthPct: 15},
				},
				Fallback: Geometry{X: 40, Y: 60, Width: 694, Height: 958},
				Grid: &form.CardGrid{
					Rows:       7,
					Cols:       2,
					CardWidth:  337,
					CardHeight: 124,
					GapX:       20,
					GapY:       15,
				},
			}},
		},
	}
}
