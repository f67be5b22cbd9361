package form

import "fmt"

// ValidationIssue pinpoints one mapping problem: a dotted path into the
// mapping (header.to_name, table.source, table.columns[2].value) plus a
// message a host UI can show next to the offending control.
type ValidationIssue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (i ValidationIssue) String() string {
	return i.Path + ": " + i.Message
}

// ValidationResult is the full outcome of checking a mapping. It is a
// report, not an error: validation never fails, it describes.
type ValidationResult struct {
	OK     bool              `json:"ok"`
	Errors []ValidationIssue `json:"errors"`
}

// Add appends a formatted issue and flips OK off.
func (r *ValidationResult) Add(path, format string, args ...any) {
	r.OK = false
	r.Errors = append(r.Errors, ValidationIssue{Path: path, Message: fmt.Sprintf(format, args...)})
}

// Merge folds another result in.
func (r *ValidationResult) Merge(other ValidationResult) {
	if len(other.Errors) > 0 {
		r.OK = false
		r.Errors = append(r.Errors, other.Errors...)
	}
}
