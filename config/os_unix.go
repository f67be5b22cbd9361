//go:build !windows

package config

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// separators never allowed inside a single path segment
var reservedRunes = string(os.PathSeparator) + string(os.PathListSeparator)

// CleanFileName strips path separators from a name and makes sure the result
// is not empty or hidden.
func CleanFileName(in string) string {
	out := strings.Map(func(r rune) rune {
		if strings.ContainsRune(reservedRunes, r) {
			return -1
		}
		return r
	}, in)
	out = strings.TrimLeft(out, ".")
	if out == "" {
		out = "_bad_file_name_"
	}
	return out
}

// EnableColorOutput checks if colorized output is possible.
func EnableColorOutput(stream *os.File) bool {
	return term.IsTerminal(int(stream.Fd()))
}
