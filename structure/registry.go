package structure

import (
	"fmt"

	"go.uber.org/zap"

	"formc/form"
	"formc/layout"
)

// Adapter is the compiler surface for one structure type: its schema, the
// mapping validator and the template synthesizer. Adapters are stateless
// and safe for concurrent use; every operation is a pure function of its
// arguments.
type Adapter struct {
	schema *Schema
}

var adapters = make(map[Kind]*Adapter)

func init() {
	for _, s := range []*Schema{estimateSchema(), invoiceSchema(), labelSheetSchema()} {
		adapters[s.Kind] = &Adapter{schema: s}
	}
}

// ForKind returns the adapter for a structure type. Unknown types are an
// error - callers are expected to treat it as fatal for the document at
// hand, nothing sensible can be compiled without a schema.
func ForKind(k Kind) (*Adapter, error) {
	a, ok := adapters[k]
	if !ok {
		return nil, fmt.Errorf("unknown structure type %q", string(k))
	}
	return a, nil
}

// ForName parses a wire-level structure type name and returns its adapter.
func ForName(name string) (*Adapter, error) {
	k, err := ParseKind(name)
	if err != nil {
		return nil, fmt.Errorf("unknown structure type: %w", err)
	}
	return ForKind(k)
}

func (a *Adapter) Kind() Kind {
	return a.schema.Kind
}

func (a *Adapter) Schema() *Schema {
	return a.schema
}

// DefaultPage returns the page setup new documents of this structure start
// with.
func (a *Adapter) DefaultPage() layout.PageSetup {
	return a.schema.Page
}

// DefaultMapping returns the mapping new documents of this structure start
// with.
func (a *Adapter) DefaultMapping() form.Mapping {
	return a.schema.DefaultMapping()
}

// Validate checks a mapping against the schema and reports what a host UI
// should surface. It never mutates and never fails.
func (a *Adapter) Validate(m *form.Mapping) form.ValidationResult {
	return validate(a.schema, m)
}

// Synthesize reconciles the document's element tree with its mapping and
// returns the new tree. The input document is not modified. The logger
// receives diagnostics only - ambiguous summary columns, dropped duplicate
// tables - and never influences the result; nil is accepted.
func (a *Adapter) Synthesize(doc *form.Document, log *zap.Logger) []form.Element {
	return synthesize(a.schema, doc, log)
}

// NewDocument creates a fresh document of this structure with the default
// page setup and mapping. The element tree starts empty; the first
// synthesis materializes it.
func (a *Adapter) NewDocument(name string) (*form.Document, error) {
	id, err := form.NewDocumentID()
	if err != nil {
		return nil, err
	}
	return &form.Document{
		ID:        id,
		Name:      name,
		Structure: string(a.schema.Kind),
		Page:      a.schema.Page,
		Mapping:   a.schema.DefaultMapping(),
	}, nil
}
