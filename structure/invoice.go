package structure

import (
	"formc/form"
	"formc/layout"
)

// Invoice layout. Same bones as the estimate plus what Japanese invoicing
// actually needs: a required invoice number, the issuer's qualified invoice
// registration number, subtotal and tax rows above the total, and a bank
// account block for the transfer.
func invoiceSchema() *Schema {
	return &Schema{
		Kind:  KindInvoice,
		Title: "Invoice",
		Page: layout.PageSetup{
			Paper:        layout.PaperA4,
			Orientation:  layout.OrientationPortrait,
			Margin:       layout.DefaultMargin,
			HeaderHeight: layout.DefaultHeaderHeight,
			FooterHeight: layout.DefaultFooterHeight,
		},
		Regions: []RegionDef{
			{Kind: RegionDefSlots, Slots: &SlotsRegionDef{
				Region: layout.RegionHeader,
				Slots: []SlotDef{
					{
						ID: "to_name", Label: "Customer name", Kind: form.ValueKindText, Required: true,
						Allowed:  []form.RefKind{form.RefKindRecordField, form.RefKindStaticText},
						Fallback: Geometry{X: 48, Y: 110, Width: 280, Height: 28},
					},
					{
						ID: "to_address", Label: "Customer address", Kind: form.ValueKindMultiline,
						Allowed:  []form.RefKind{form.RefKindRecordField, form.RefKindStaticText},
						Fallback: Geometry{X: 48, Y: 142, Width: 300, Height: 56},
					},
					{
						ID: "subject", Label: "Subject", Kind: form.ValueKindText,
						Allowed:  []form.RefKind{form.RefKindRecordField, form.RefKindStaticText},
						Fallback: Geometry{X: 48, Y: 210, Width: 320, Height: 24},
					},
					{
						ID: "invoice_no", Label: "Invoice number", Kind: form.ValueKindText, Required: true,
						Allowed:  []form.RefKind{form.RefKindRecordField, form.RefKindStaticText},
						Align:    form.AlignmentRight,
						Fallback: Geometry{X: 540, Y: 100, Width: 180, Height: 22},
					},
					{
						ID: "issue_date", Label: "Issue date", Kind: form.ValueKindDate, Required: true,
						Allowed:  []form.RefKind{form.RefKindRecordField, form.RefKindStaticText},
						Align:    form.AlignmentRight,
						Fallback: Geometry{X: 540, Y: 130, Width: 180, Height: 22},
					},
					{
						ID: "due_date", Label: "Payment due", Kind: form.ValueKindDate,
						Allowed:  []form.RefKind{form.RefKindRecordField, form.RefKindStaticText},
						Align:    form.AlignmentRight,
						Fallback: Geometry{X: 540, Y: 160, Width: 180, Height: 22},
					},
					{
						ID: "from_name", Label: "Issuer name", Kind: form.ValueKindText,
						Allowed:  []form.RefKind{form.RefKindStaticText, form.RefKindRecordField},
						Fallback: Geometry{X: 460, Y: 200, Width: 220, Height: 24},
					},
					{
						ID: "from_address", Label: "Issuer address", Kind: form.ValueKindMultiline,
						Allowed:  []form.RefKind{form.RefKindStaticText, form.RefKindRecordField},
						Fallback: Geometry{X: 460, Y: 228, Width: 240, Height: 60},
					},
					{
						ID: "registration_no", Label: "Registration number", Kind: form.ValueKindText,
						Allowed:  []form.RefKind{form.RefKindStaticText, form.RefKindRecordField},
						Fallback: Geometry{X: 460, Y: 292, Width: 240, Height: 22},
					},
					{
						ID: "logo", Label: "Logo", Kind: form.ValueKindImage,
						Allowed:  []form.RefKind{form.RefKindImageUrl},
						Fallback: Geometry{X: 620, Y: 48, Width: 120, Height: 48},
					},
					{
						ID: "stamp", Label: "Company seal", Kind: form.ValueKindImage,
						Allowed:  []form.RefKind{form.RefKindImageUrl},
						Fallback: Geometry{X: 690, Y: 200, Width: 60, Height: 60},
					},
				},
				Labels: []LabelDef{
					{
						ID: "title", Text: "請求書", Align: form.AlignmentCenter,
						Fallback: Geometry{X: 297, Y: 48, Width: 200, Height: 36},
					},
					{
						ID: "to_name_honorific", Text: "様", CompanionOf: "to_name",
						Fallback: Geometry{X: 336, Y: 110, Width: 40, Height: 28},
					},
				},
			}},
			{Kind: RegionDefTable, Table: &TableRegionDef{
				Region:         layout.RegionBody,
				ElementID:      "items_table",
				Presents:       form.ElementKindTable,
				SourceRequired: true,
				MinCols:        1,
				MaxCols:        8,
				BaseColumns: []BaseColumn{
					{ID: "name", Label: "品名", Kind: form.ValueKindText, WidthPct: 40},
					{ID: "qty", Label: "数量", Kind: form.ValueKindNumber, WidthPct: 15, Align: form.AlignmentRight},
					{ID: "unit_price", Label: "単価", Kind: form.ValueKindCurrency, WidthPct: 20, Align: form.AlignmentRight},
					{ID: "amount", Label: "金額", Kind: form.ValueKindCurrency, WidthPct: 25, Align: form.AlignmentRight},
				},
				Fallback:            Geometry{X: 48, Y: 340, Width: 698, Height: 500},
				RepeatHeaderDefault: true,
				SummaryColumn:       "amount",
				SummaryLabel:        "合計",
			}},
			{Kind: RegionDefSlots, Slots: &SlotsRegionDef{
				Region: layout.RegionFooter,
				Slots: []SlotDef{
					{
						ID: "subtotal", Label: "Subtotal", Kind: form.ValueKindCurrency,
						Allowed:  []form.RefKind{form.RefKindRecordField},
						Align:    form.AlignmentRight,
						Fallback: Geometry{X: 530, Y: 880, Width: 190, Height: 24},
					},
					{
						ID: "tax", Label: "Tax", Kind: form.ValueKindCurrency,
						Allowed:  []form.RefKind{form.RefKindRecordField},
						Align:    form.AlignmentRight,
						Fallback: Geometry{X: 530, Y: 910, Width: 190, Height: 24},
					},
					{
						ID: "total", Label: "Total", Kind: form.ValueKindCurrency, Required: true,
						Allowed:  []form.RefKind{form.RefKindRecordField},
						Align:    form.AlignmentRight,
						Fallback: Geometry{X: 530, Y: 942, Width: 190, Height: 28},
					},
					{
						ID: "notes", Label: "Notes", Kind: form.ValueKindMultiline,
						Allowed:  []form.RefKind{form.RefKindStaticText, form.RefKindRecordField},
						Fallback: Geometry{X: 48, Y: 930, Width: 360, Height: 60},
					},
					{
						ID: "bank_account", Label: "Bank account", Kind: form.ValueKindMultiline,
						Allowed:  []form.RefKind{form.RefKindStaticText, form.RefKindRecordField},
						Fallback: Geometry{X: 48, Y: 1000, Width: 360, Height: 70},
					},
				},
				Labels: []LabelDef{
					{
						ID: "subtotal_caption", Text: "小計", Align: form.AlignmentRight,
						Fallback: Geometry{X: 420, Y: 880, Width: 100, Height: 24},
					},
					{
						ID: "tax_caption", Text: "消費税", Align: form.AlignmentRight,
						Fallback: Geometry{X: 420, Y: 910, Width: 100, Height: 24},
					},
					{
						ID: "total_caption", Text: "合計金額", Align: form.AlignmentRight,
						Fallback: Geometry{X: 420, Y: 942, Width: 100, Height: 28},
					},
					{
						ID: "notes_caption", Text: "備考",
						Fallback: Geometry{X: 48, Y: 900, Width: 80, Height: 22},
					},
				},
			}},
		},
	}
}
