package debug

import (
	"fmt"
	"strconv"
	"strings"
)

// TreeWriter accumulates an indented text tree for debug dumps.
type TreeWriter struct {
	sb strings.Builder
}

func NewTreeWriter() *TreeWriter {
	return &TreeWriter{}
}

func (tw *TreeWriter) String() string {
	return tw.sb.String()
}

// Line writes a formatted line at the given depth.
func (tw *TreeWriter) Line(depth int, format string, args ...any) {
	tw.pad(depth)
	fmt.Fprintf(&tw.sb, format, args...)
	tw.sb.WriteByte('\n')
}

// TextBlock writes a "label: value" line with the value quoted, so embedded
// newlines and full width whitespace stay visible in the dump.
func (tw *TreeWriter) TextBlock(depth int, label, value string) {
	tw.pad(depth)
	tw.sb.WriteString(label)
	tw.sb.WriteString(": ")
	if value != "" {
		value = strconv.Quote(value)
	}
	tw.sb.WriteString(value)
	tw.sb.WriteByte('\n')
}

// Field writes a "name: value" line, quoting string values.
func (tw *TreeWriter) Field(depth int, name string, value any) {
	if s, ok := value.(string); ok {
		tw.TextBlock(depth, name, s)
		return
	}
	tw.Line(depth, "%s: %v", name, value)
}

func (tw *TreeWriter) pad(depth int) {
	for range depth {
		tw.sb.WriteString("  ")
	}
}
