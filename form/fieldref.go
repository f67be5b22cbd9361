package form

// FieldRef points a slot or table column at its data: a record field, a
// piece of static text, an image URL, a subtable or a field inside one. The
// kind selects which payload field is meaningful; the rest stay empty. A
// zero FieldRef means the slot is not bound. The struct is comparable, two
// refs are the same binding exactly when they are ==.
//
// For subtableField the payload is the member field code; SubtableCode is
// informational and may be empty since the owning table binds the subtable
// itself.
type FieldRef struct {
	Kind         RefKind `json:"kind,omitempty"`
	FieldCode    string  `json:"fieldCode,omitempty"`
	Text         string  `json:"text,omitempty"`
	URL          string  `json:"url,omitempty"`
	SubtableCode string  `json:"subtableCode,omitempty"`
}

func RecordFieldRef(code string) FieldRef {
	return FieldRef{Kind: RefKindRecordField, FieldCode: code}
}

func StaticTextRef(text string) FieldRef {
	return FieldRef{Kind: RefKindStaticText, Text: text}
}

func ImageURLRef(url string) FieldRef {
	return FieldRef{Kind: RefKindImageUrl, URL: url}
}

func SubtableRef(code string) FieldRef {
	return FieldRef{Kind: RefKindSubtable, SubtableCode: code}
}

func SubtableFieldRef(subtable, code string) FieldRef {
	return FieldRef{Kind: RefKindSubtableField, SubtableCode: subtable, FieldCode: code}
}

// Payload returns the value the kind designates. Unknown kinds have no
// payload.
func (r FieldRef) Payload() string {
	switch r.Kind {
	case RefKindRecordField, RefKindSubtableField:
		return r.FieldCode
	case RefKindStaticText:
		return r.Text
	case RefKindImageUrl:
		return r.URL
	case RefKindSubtable:
		return r.SubtableCode
	default:
		return ""
	}
}

// Bound reports whether the reference actually points somewhere: a known
// kind with a non-blank payload. Anything else - the zero value, an unknown
// kind, a kind without its payload - counts as unbound and is what the
// synthesizer silently absorbs.
func (r FieldRef) Bound() bool {
	return r.Kind.IsValid() && r.Payload() != ""
}

// BoundAs reports whether the reference is bound with one of the given
// kinds.
func (r FieldRef) BoundAs(kinds ...RefKind) bool {
	if !r.Bound() {
		return false
	}
	for _, k := range kinds {
		if r.Kind == k {
			return true
		}
	}
	return false
}

// Resolve converts the reference into the render-ready data source shape.
// Unbound references resolve to nil.
func (r FieldRef) Resolve() *DataSource {
	if !r.Bound() {
		return nil
	}
	switch r.Kind {
	case RefKindRecordField:
		return &DataSource{Type: DataSourceTypeRecord, FieldCode: r.FieldCode}
	case RefKindStaticText:
		return &DataSource{Type: DataSourceTypeStatic, Value: r.Text}
	case RefKindImageUrl:
		return &DataSource{Type: DataSourceTypeStatic, Value: r.URL}
	case RefKindSubtable:
		return &DataSource{Type: DataSourceTypeSubtable, FieldCode: r.SubtableCode}
	case RefKindSubtableField:
		return &DataSource{Type: DataSourceTypeRecord, FieldCode: r.FieldCode}
	default:
		return nil
	}
}
