// Package css parses the small stylesheet dialect preview themes are
// written in. Selectors name element kinds (text, label, image, barcode,
// table, cardList), page regions (header, body, footer), the page frame
// ("page") or the "hidden" class; properties are limited to fill, stroke,
// color, font-size and opacity.
package css

import (
	"cmp"
	"fmt"
	"io"
	"maps"
	"slices"
	"sort"
	"strings"
	"unicode"
)

// Value represents a parsed property value.
type Value struct {
	Raw     string  // original value text (e.g. "12px", "#1a1a1a", "none")
	Value   float64 // numeric component if applicable
	Unit    string  // unit if applicable: "px", "pt", "%"
	Keyword string  // keyword, hash color or function text if applicable
}

// IsNumeric returns true if the value has a numeric component.
// This includes explicit zero values like "0" or "0px".
func (v Value) IsNumeric() bool {
	if v.Unit != "" {
		return true
	}
	if v.Value != 0 && v.Keyword == "" {
		return true
	}
	if v.Raw != "" && v.Keyword == "" {
		first := rune(v.Raw[0])
		if unicode.IsDigit(first) || first == '.' || first == '-' || first == '+' {
			return true
		}
	}
	return false
}

// IsKeyword returns true if the value is a keyword (no numeric component).
func (v Value) IsKeyword() bool {
	return v.Keyword != "" && v.Unit == ""
}

// Paint returns the value as paint text usable in an SVG attribute:
// the keyword form when the value is a color or keyword, the raw text
// otherwise.
func (v Value) Paint() string {
	if v.Keyword != "" {
		return v.Keyword
	}
	return v.Raw
}

// Selector matches a single element kind, region name or class. Only
// combinator-free forms exist in the theme dialect: "table", ".hidden",
// "logo.hidden". The element "*" matches any element.
type Selector struct {
	Raw     string // original selector text
	Element string // element kind, region name or "*", empty for class-only
	Class   string // class name without the dot, or empty
}

// IsSimple returns true if the selector parsed into a usable form.
func (s Selector) IsSimple() bool {
	return s.Element != "" || s.Class != ""
}

// Specificity orders competing rules: a class beats an element and
// element.class beats both. The universal element contributes nothing.
func (s Selector) Specificity() int {
	n := 0
	if s.Element != "" && s.Element != "*" {
		n++
	}
	if s.Class != "" {
		n += 10
	}
	return n
}

// Matches reports whether the selector applies to an element with the
// given name carrying the given classes.
func (s Selector) Matches(element string, classes ...string) bool {
	if !s.IsSimple() {
		return false
	}
	if s.Element != "" && s.Element != "*" && s.Element != element {
		return false
	}
	if s.Class != "" && !slices.Contains(classes, s.Class) {
		return false
	}
	return true
}

// Rule represents a single rule (selector + properties).
type Rule struct {
	Selector   Selector         // Parsed selector
	Properties map[string]Value // Property name -> value
}

// GetProperty returns the value for a property, or empty Value if not found.
func (r Rule) GetProperty(name string) (Value, bool) {
	v, ok := r.Properties[name]
	return v, ok
}

// Stylesheet represents a parsed theme: a flat rule list in source order
// plus warnings for everything outside the dialect.
type Stylesheet struct {
	Rules    []Rule   // All rules in source order
	Warnings []string // Warnings for unsupported features
}

// RulesBySelector returns all rules whose selector text matches exactly.
func (s *Stylesheet) RulesBySelector(selector string) []Rule {
	var matches []Rule
	for _, r := range s.Rules {
		if r.Selector.Raw == selector {
			matches = append(matches, r)
		}
	}
	return matches
}

// Style resolves the cascade for one element: matching rules apply in
// source order, higher specificity wins.
func (s *Stylesheet) Style(element string, classes ...string) map[string]Value {
	type match struct {
		specificity int
		rule        Rule
	}
	var matches []match
	for _, r := range s.Rules {
		if r.Selector.Matches(element, classes...) {
			matches = append(matches, match{r.Selector.Specificity(), r})
		}
	}
	slices.SortStableFunc(matches, func(a, b match) int {
		return cmp.Compare(a.specificity, b.specificity)
	})

	style := make(map[string]Value)
	for _, m := range matches {
		maps.Copy(style, m.rule.Properties)
	}
	return style
}

// WriteTo writes the stylesheet to w in source order, implementing io.WriterTo.
// Property order within a rule is sorted alphabetically for deterministic output.
func (s *Stylesheet) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for i := range s.Rules {
		n, err := writeRule(w, &s.Rules[i])
		total += int64(n)
		if err != nil {
			return total, err
		}

		// Add blank line between rules (except after last)
		if i < len(s.Rules)-1 {
			n, err = fmt.Fprint(w, "\n")
			total += int64(n)
			if err != nil {
				return total, err
			}
		}
	}
	return total, nil
}

// String returns the CSS text of the stylesheet.
func (s *Stylesheet) String() string {
	var sb strings.Builder
	s.WriteTo(&sb) //nolint:errcheck
	return sb.String()
}

// writeRule writes a single rule to w.
func writeRule(w io.Writer, rule *Rule) (int, error) {
	var total int
	n, err := fmt.Fprintf(w, "%s {\n", rule.Selector.Raw)
	total += n
	if err != nil {
		return total, err
	}

	names := make([]string, 0, len(rule.Properties))
	for name := range rule.Properties {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		n, err = fmt.Fprintf(w, "  %s: %s;\n", name, rule.Properties[name].Raw)
		total += n
		if err != nil {
			return total, err
		}
	}

	n, err = fmt.Fprint(w, "}\n")
	total += n
	return total, err
}
