// Package catalog models the field catalog of the record system documents
// print from: which record fields and subtables exist and what their member
// fields are. The catalog arrives as a flat export (JSON or CSV) from the
// discovery collaborator; nothing here talks to the network.
package catalog

// Entry is one row of the flat catalog export. Subtables appear as entries
// with IsSubtable set; their member fields reference the owner through
// SubtableCode.
type Entry struct {
	Code         string `json:"code"`
	Label        string `json:"label"`
	Type         string `json:"type,omitempty"`
	IsSubtable   bool   `json:"isSubtable,omitempty"`
	SubtableCode string `json:"subtableCode,omitempty"`
}

// Subtable groups a subtable entry with its member fields keyed by code.
type Subtable struct {
	Entry
	Fields map[string]Entry
}

// Catalog is the grouped view lint works against.
type Catalog struct {
	RecordFields map[string]Entry
	Subtables    map[string]*Subtable
}

// Build groups flat entries. Entries without a code are dropped. A member
// field whose subtable never appears as its own entry still creates the
// subtable - discovery exports are not always complete.
func Build(entries []Entry) *Catalog {
	c := &Catalog{
		RecordFields: make(map[string]Entry),
		Subtables:    make(map[string]*Subtable),
	}

	sub := func(code string) *Subtable {
		if s, ok := c.Subtables[code]; ok {
			return s
		}
		s := &Subtable{Entry: Entry{Code: code, IsSubtable: true}, Fields: make(map[string]Entry)}
		c.Subtables[code] = s
		return s
	}

	for _, e := range entries {
		switch {
		case e.Code == "":
		case e.IsSubtable:
			s := sub(e.Code)
			s.Entry = e
		case e.SubtableCode != "":
			sub(e.SubtableCode).Fields[e.Code] = e
		default:
			c.RecordFields[e.Code] = e
		}
	}
	return c
}

// HasRecordField reports whether a top level record field exists.
func (c *Catalog) HasRecordField(code string) bool {
	_, ok := c.RecordFields[code]
	return ok
}

// HasSubtable reports whether a subtable exists.
func (c *Catalog) HasSubtable(code string) bool {
	_, ok := c.Subtables[code]
	return ok
}

// HasSubtableField reports whether a member field exists inside the given
// subtable. With an empty subtable code every subtable is searched.
func (c *Catalog) HasSubtableField(subtable, code string) bool {
	if subtable != "" {
		s, ok := c.Subtables[subtable]
		if !ok {
			return false
		}
		_, ok = s.Fields[code]
		return ok
	}
	for _, s := range c.Subtables {
		if _, ok := s.Fields[code]; ok {
			return true
		}
	}
	return false
}
