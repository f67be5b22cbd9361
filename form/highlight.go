package form

// HighlightedElementIDs answers the canvas editor's hover query: which
// elements visualize the given binding. Matching is by slot id when one is
// supplied, and by resolved data source otherwise - including table and
// cardList elements when the reference is their source subtable or one of
// their column fields. Read-only; ids come back in tree order without
// duplicates.
func HighlightedElementIDs(els []Element, ref FieldRef, slotID string) []string {
	var out []string
	seen := make(map[string]bool)
	add := func(id string) {
		if id != "" && !seen[id] {
			seen[id] = true
			out = append(out, id)
		}
	}

	want := ref.Resolve()
	for i := range els {
		el := &els[i]
		if slotID != "" && el.SlotID == slotID {
			add(el.ID)
			continue
		}
		if want == nil {
			continue
		}
		if el.DataSource != nil && *el.DataSource == *want {
			add(el.ID)
			continue
		}
		if ref.Kind == RefKindSubtableField && (el.Kind == ElementKindTable || el.Kind == ElementKindCardList) {
			for j := range el.Columns {
				if el.Columns[j].FieldCode == ref.FieldCode {
					add(el.ID)
					break
				}
			}
		}
	}
	return out
}
