// Package structure holds the closed catalog of document structure types -
// estimate, invoice, label sheet - and everything derived from it: the
// declarative schemas, the mapping validator and the template synthesizer
// that reconciles an element tree with a mapping. The catalog is fixed at
// compile time; hosts select a structure by name and get a fatal error for
// anything unknown, there is no dynamic registration.
package structure

// Kind of document structure.
// ENUM(estimate, invoice, labelSheet)
type Kind string
