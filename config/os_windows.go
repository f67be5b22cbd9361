//go:build windows

package config

import (
	"os"
	"strings"

	"golang.org/x/sys/windows"
	"golang.org/x/sys/windows/registry"
	"golang.org/x/term"
)

// characters never allowed in a Windows file name
var reservedRunes = `<>":/\|?*` + string(os.PathSeparator) + string(os.PathListSeparator)

// CleanFileName strips reserved characters from a name and makes sure the
// result is not empty.
func CleanFileName(in string) string {
	out := strings.Map(func(r rune) rune {
		if r == 0 || strings.ContainsRune(reservedRunes, r) {
			return -1
		}
		return r
	}, in)
	if out == "" {
		out = "_bad_file_name_"
	}
	return out
}

// EnableColorOutput reports whether stream is an interactive console capable
// of VT100 sequences and turns their processing on. Requires Windows 10 or
// later.
func EnableColorOutput(stream *os.File) bool {
	if !term.IsTerminal(int(stream.Fd())) {
		return false
	}

	k, err := registry.OpenKey(registry.LOCAL_MACHINE, `SOFTWARE\Microsoft\Windows NT\CurrentVersion`, registry.QUERY_VALUE)
	if err != nil {
		return false
	}
	defer k.Close()

	if v, _, err := k.GetIntegerValue("CurrentMajorVersionNumber"); err != nil || v < 10 {
		return false
	}

	var mode uint32
	if err := windows.GetConsoleMode(windows.Handle(stream.Fd()), &mode); err != nil {
		return false
	}
	const enableVirtualTerminalProcessing uint32 = 0x4
	if err := windows.SetConsoleMode(windows.Handle(stream.Fd()), mode|enableVirtualTerminalProcessing); err != nil {
		return false
	}
	return true
}
