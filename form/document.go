package form

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"formc/layout"
)

// Document is the complete serialized state of one printable form: identity,
// page setup, the element tree and the mapping it was synthesized from.
// Everything a host stores or ships to a renderer is here; the compiler
// itself keeps no state between calls.
type Document struct {
	ID        string               `json:"id"`
	Name      string               `json:"name"`
	Structure string               `json:"structureType"`
	Page      layout.PageSetup     `json:"pageSetup"`
	Bands     *layout.BandOverride `json:"regionBands,omitempty"`
	Elements  []Element            `json:"elements"`
	Mapping   Mapping              `json:"mapping"`
}

// Bounds resolves the document's region bands.
func (d *Document) Bounds() layout.Bounds {
	return layout.Resolve(d.Page, d.Bands)
}

// ValidID reports whether the document carries a well-formed id.
func (d *Document) ValidID() bool {
	_, err := uuid.Parse(d.ID)
	return err == nil
}

// NewDocumentID mints a fresh document id.
func NewDocumentID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("unable to generate document UUID: %w", err)
	}
	return id.String(), nil
}

// Decode parses a document from its JSON wire form. Shape problems are
// errors; semantic problems (unknown structure type, bad bindings) are for
// the structure adapter and validator to report.
func Decode(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("unable to parse document: %w", err)
	}
	return &doc, nil
}

// Encode serializes a document to its JSON wire form. The output ends with
// a newline so written files diff cleanly.
func Encode(doc *Document, pretty bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if pretty {
		data, err = json.MarshalIndent(doc, "", "  ")
	} else {
		data, err = json.Marshal(doc)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to serialize document: %w", err)
	}
	if !bytes.HasSuffix(data, []byte("\n")) {
		data = append(data, '\n')
	}
	return data, nil
}
