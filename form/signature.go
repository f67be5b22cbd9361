package form

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"slices"
	"strings"
)

// Signature returns a stable digest of an element tree for change
// detection. Element order does not participate - trees that differ only in
// slice order sign identically - while geometry, bindings, columns and
// flags all do. Hosts compare signatures around synthesis to decide whether
// anything effectively changed; synthesis idempotence is exactly signature
// equality between the first and second pass.
func Signature(els []Element) string {
	sorted := CloneElements(els)
	slices.SortFunc(sorted, func(a, b Element) int {
		if c := strings.Compare(a.ID, b.ID); c != 0 {
			return c
		}
		return strings.Compare(a.SlotID, b.SlotID)
	})
	data, err := json.Marshal(sorted)
	if err != nil {
		// Elements are plain data, this cannot fail; keep the signature
		// deterministic anyway.
		return "invalid"
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
