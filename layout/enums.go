// Package layout provides page geometry for printable documents: paper
// sizes, layout region bands and table column width allocation. Everything
// operates in integer pixels at 96 dpi with the origin in the top-left
// corner of the page, y growing downward.
package layout

// Paper size of the printed page.
// ENUM(a4, a5, b5, letter)
type Paper string

// Page orientation.
// ENUM(portrait, landscape)
type Orientation string

// Layout region of the page. Regions form non-overlapping horizontal bands
// ordered header, body, footer from the top of the page down.
// ENUM(header, body, footer)
type Region string
