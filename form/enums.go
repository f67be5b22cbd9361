// Package form defines the serialized shape of a printable form document:
// the element tree handed to renderers, the user-edited field mapping and
// the references binding the two to record data. Everything here is plain
// data - JSON in, JSON out, no behavior beyond resolution and comparison -
// so the host plugin, the canvas editor and the renderer all speak the same
// contract.
package form

// Kind of a field reference inside a mapping.
// ENUM(recordField, staticText, imageUrl, subtable, subtableField)
type RefKind string

// Kind of a rendered element.
// ENUM(text, label, image, barcode, table, cardList)
type ElementKind string

// Kind of data carried by a slot or table column.
// ENUM(text, multiline, date, number, currency, image, barcode)
type ValueKind string

// Kind of a resolved element data source.
// ENUM(static, record, subtable)
type DataSourceType string

// Placement of table aggregation rows.
// ENUM(none, lastPage, everyPage)
type SummaryMode string

// Horizontal alignment of rendered content.
// ENUM(left, center, right)
type Alignment string
